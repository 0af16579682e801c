// Package benchmark times the catalog orderings against an enlarged sample.
package benchmark

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"Inventory/internal/models"
	"Inventory/internal/sorting"
)

// DefaultMultiplier is how many copies of the catalog make up the sample.
const DefaultMultiplier = 5

// Result is the wall-clock time one algorithm took on the sample.
type Result struct {
	Algorithm string  `json:"algorithm"`
	Key       string  `json:"key"`
	Seconds   float64 `json:"seconds"`
}

// Report collects the results of one benchmark run.
type Report struct {
	ID         uuid.UUID `json:"id"`
	SampleSize int       `json:"sample_size"`
	Results    []Result  `json:"results"`
}

// Names returns the algorithm names in run order.
func (r Report) Names() []string {
	return lo.Map(r.Results, func(res Result, _ int) string { return res.Algorithm })
}

// Seconds returns the elapsed times in run order.
func (r Report) Seconds() []float64 {
	return lo.Map(r.Results, func(res Result, _ int) float64 { return res.Seconds })
}

// Sample concatenates multiplier copies of parts. Ids repeat across copies.
func Sample(parts []models.Part, multiplier int) []models.Part {
	multiplier = max(multiplier, 1)
	return lo.Flatten(lo.Times(multiplier, func(int) []models.Part { return parts }))
}

// Run times every algorithm in sorting.Algorithms on its own copy of the
// sample. parts is never modified and the sorted output is discarded.
func Run(parts []models.Part, multiplier int) Report {
	sample := Sample(parts, multiplier)
	report := Report{
		ID:         uuid.New(),
		SampleSize: len(sample),
		Results:    make([]Result, 0, len(sorting.Algorithms)),
	}
	for _, algorithm := range sorting.Algorithms {
		work := slices.Clone(sample)
		start := time.Now()
		algorithm.InPlace(work)
		elapsed := time.Since(start)
		report.Results = append(report.Results, Result{
			Algorithm: algorithm.Name,
			Key:       algorithm.Key,
			Seconds:   max(elapsed.Seconds(), 0),
		})
	}
	return report
}
