// Command inventory is the interactive CarFix spare parts menu.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"Inventory/internal/catalog"
	"Inventory/internal/helpers"
	"Inventory/internal/menu"
	"Inventory/internal/presentation"
)

func main() {
	helpers.ReadConfig()
	settings, err := helpers.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}

	parts, err := catalog.Load(settings.Catalog.Path)
	if errors.Is(err, catalog.ErrCatalogNotFound) {
		fmt.Fprintf(os.Stderr, "Error: catalog file %q not found. Run the generator first (go run ./cmd/generator).\n", settings.Catalog.Path)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Cannot load the catalog. Reason: %s\n", err)
	}

	console := presentation.NewConsole(os.Stdout, settings.Display.TableRows)
	err = menu.Loop(os.Stdin, console, parts, menu.Options{
		Multiplier: settings.Benchmark.Multiplier,
		ChartWidth: settings.Display.ChartWidth,
	})
	if err != nil {
		log.Fatalf("Cannot read input. Reason: %s\n", err)
	}
}
