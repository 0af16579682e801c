// Package presentation renders parts and benchmark timings for a terminal.
package presentation

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"Inventory/internal/models"
)

const (
	// DefaultTableRows is how many parts a table shows.
	DefaultTableRows = 10
	// DefaultChartWidth is the length of the longest bar.
	DefaultChartWidth = 40

	// minChartSeconds replaces non-positive times so the scale is never zero.
	minChartSeconds = 0.0001
	barChar         = "█"
)

// Sink receives everything the inventory tool shows to the user.
type Sink interface {
	WriteTable(title string, parts []models.Part)
	WriteLine(line string)
}

// Console is a Sink writing plain text to W.
type Console struct {
	W         io.Writer
	TableRows int
}

// NewConsole returns a Console showing at most tableRows parts per table.
// Non-positive values fall back to DefaultTableRows.
func NewConsole(w io.Writer, tableRows int) *Console {
	if tableRows <= 0 {
		tableRows = DefaultTableRows
	}
	return &Console{W: w, TableRows: tableRows}
}

// WriteLine writes line followed by a newline.
func (c *Console) WriteLine(line string) {
	fmt.Fprintln(c.W, line)
}

// WriteTable writes title and the first TableRows parts. Extra parts are
// dropped without notice.
func (c *Console) WriteTable(title string, parts []models.Part) {
	fmt.Fprintln(c.W)
	fmt.Fprintln(c.W, title)

	tw := tabwriter.NewWriter(c.W, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tPrice\tStock\tCompatibility")
	fmt.Fprintln(tw, "--\t----\t-----\t-----\t-------------")
	for _, p := range parts[:min(len(parts), c.TableRows)] {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", p.ID, p.Name, FormatPrice(p), p.Stock, p.Compatibility)
	}
	tw.Flush()
}

// FormatPrice renders a price with a currency prefix and two decimals.
func FormatPrice(p models.Part) string {
	return "$" + p.Price.StringFixed(2)
}

// Chart writes one bar per algorithm. Bars are scaled on the square root of
// each time so that fast and slow algorithms both stay visible. names and
// times must have the same length.
func Chart(sink Sink, names []string, times []float64, width int) {
	if len(names) != len(times) {
		panic(fmt.Sprintf("presentation: %d names for %d times", len(names), len(times)))
	}
	if width <= 0 {
		width = DefaultChartWidth
	}

	roots := make([]float64, len(times))
	maxRoot := 0.0
	for i, t := range times {
		roots[i] = math.Sqrt(math.Max(t, minChartSeconds))
		maxRoot = math.Max(maxRoot, roots[i])
	}

	sink.WriteLine("")
	sink.WriteLine("Performance comparison")
	for i, name := range names {
		bar := int(roots[i] / maxRoot * float64(width))
		sink.WriteLine(fmt.Sprintf("%-14s %s (%.5fs)", name, strings.Repeat(barChar, bar), times[i]))
	}
	sink.WriteLine("")
}
