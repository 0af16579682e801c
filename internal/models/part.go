package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Part is one row of the spare parts catalog.
type Part struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Compatibility  string          `json:"compatibility"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	ExpirationDays *int            `json:"expiration_days,omitempty"`
}

// Brand returns the first whitespace-delimited token of the compatibility
// descriptor. A blank descriptor has the empty brand.
func (p Part) Brand() string {
	return brandOf(p.Compatibility)
}

func brandOf(descriptor string) string {
	fields := strings.Fields(descriptor)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
