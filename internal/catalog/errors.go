package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogNotFound is returned when the catalog file does not exist.
	ErrCatalogNotFound = errors.New("catalog: file not found")

	// ErrInvalidHeader is returned when the header row is missing or does not
	// list the expected columns in order.
	ErrInvalidHeader = errors.New("catalog: invalid header")

	// ErrMalformedRow is returned when a data row cannot be parsed.
	ErrMalformedRow = errors.New("catalog: malformed row")
)

// RowError describes the first unparseable cell of a data row.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("catalog: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("catalog: line %d: column %s: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}
