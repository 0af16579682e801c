// Package data holds the fixed vocabularies used to generate demo catalogs.
package data

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"Inventory/internal/models"
)

// PartNames lists the part names a generated catalog draws from.
var PartNames = []string{
	"Air Filter",
	"Brake Pads",
	"12V Battery",
	"Shock Absorbers",
	"Timing Belt",
	"Oxygen Sensor",
	"Fuel Pump",
	"Alternator",
	"Radiator",
}

// CompatibleVehicles lists the compatibility descriptors a generated catalog
// draws from. The first token of each is the vehicle brand.
var CompatibleVehicles = []string{
	"Toyota Hilux 2020",
	"Chevrolet Spark 2015",
	"Ford Fiesta 2018",
	"Honda Civic 2022",
}

// ExpirationChoices are the shelf lives a part may have; nil means none.
var ExpirationChoices = []*int{days(30), days(60), days(90), nil}

const (
	minPrice = 10
	maxPrice = 200
	maxStock = 15
)

func days(n int) *int { return &n }

// Generate builds n random parts with ids 1..n.
func Generate(rng *rand.Rand, n int) []models.Part {
	parts := make([]models.Part, 0, max(n, 0))
	for i := 0; i < n; i++ {
		price := minPrice + rng.Float64()*(maxPrice-minPrice)
		var expiration *int
		if choice := ExpirationChoices[rng.IntN(len(ExpirationChoices))]; choice != nil {
			expiration = days(*choice)
		}
		parts = append(parts, models.Part{
			ID:             i + 1,
			Name:           PartNames[rng.IntN(len(PartNames))],
			Compatibility:  CompatibleVehicles[rng.IntN(len(CompatibleVehicles))],
			Price:          decimal.NewFromFloat(price).Round(2),
			Stock:          rng.IntN(maxStock + 1),
			ExpirationDays: expiration,
		})
	}
	return parts
}
