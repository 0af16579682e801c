// Package menu runs the interactive inventory menu.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"Inventory/internal/benchmark"
	"Inventory/internal/models"
	"Inventory/internal/presentation"
	"Inventory/internal/sorting"
)

// Choice is one of the six menu entries.
type Choice int

const (
	SortByPrice Choice = iota + 1
	SortByStock
	SortByName
	SortByCompatibility
	RunBenchmark
	Exit
)

var entries = []struct {
	choice Choice
	label  string
}{
	{SortByPrice, "Sort by price (QuickSort)"},
	{SortByStock, "Sort by stock (InsertionSort)"},
	{SortByName, "Sort by name (MergeSort)"},
	{SortByCompatibility, "Sort by compatibility (BubbleSort)"},
	{RunBenchmark, "Compare performance"},
	{Exit, "Exit"},
}

var sorts = map[Choice]struct {
	title string
	sort  sorting.Func
}{
	SortByPrice:         {"Parts sorted by price", sorting.ByPrice},
	SortByStock:         {"Parts sorted by stock", sorting.ByStock},
	SortByName:          {"Parts sorted alphabetically", sorting.ByName},
	SortByCompatibility: {"Parts sorted by compatibility (brand)", sorting.ByCompatibility},
}

// ParseChoice maps one line of user input to a menu entry. ok is false when
// the input names no entry.
func ParseChoice(input string) (choice Choice, ok bool) {
	input = strings.TrimSpace(input)
	for _, e := range entries {
		if input == fmt.Sprint(int(e.choice)) {
			return e.choice, true
		}
	}
	return 0, false
}

// Options tune the benchmark and chart.
type Options struct {
	Multiplier int
	ChartWidth int
}

// Loop shows the menu and handles choices read from in until the user exits
// or in is exhausted. parts is never modified.
func Loop(in io.Reader, sink presentation.Sink, parts []models.Part, opts Options) error {
	scanner := bufio.NewScanner(in)
	for {
		showMenu(sink)
		if !scanner.Scan() {
			return scanner.Err()
		}

		choice, ok := ParseChoice(scanner.Text())
		if !ok {
			sink.WriteLine(fmt.Sprintf("Unrecognized option %q.", strings.TrimSpace(scanner.Text())))
			continue
		}
		if choice == Exit {
			return nil
		}
		Handle(choice, sink, parts, opts)
	}
}

// Handle performs a single non-exit choice.
func Handle(choice Choice, sink presentation.Sink, parts []models.Part, opts Options) {
	if s, ok := sorts[choice]; ok {
		sink.WriteTable(s.title, s.sort(parts))
		return
	}
	if choice == RunBenchmark {
		multiplier := opts.Multiplier
		if multiplier <= 0 {
			multiplier = benchmark.DefaultMultiplier
		}
		report := benchmark.Run(parts, multiplier)
		presentation.Chart(sink, report.Names(), report.Seconds(), opts.ChartWidth)
	}
}

func showMenu(sink presentation.Sink) {
	sink.WriteLine("")
	sink.WriteLine("=== CarFix Inventory ===")
	for _, e := range entries {
		sink.WriteLine(fmt.Sprintf("%d. %s", e.choice, e.label))
	}
	sink.WriteLine("")
	sink.WriteLine("Select an option:")
}
