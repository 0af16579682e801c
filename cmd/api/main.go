package main

import (
	"log"

	"Inventory/internal/catalog"
	"Inventory/internal/helpers"
)

func main() {
	helpers.ReadConfig()
	settings, err := helpers.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	a := App{Multiplier: settings.Benchmark.Multiplier}
	if err := a.Initialize(catalog.CreateCatalogHandler(settings.Catalog.Path)); err != nil {
		log.Fatalf("Cannot load the catalog. Reason: %s\n", err)
	}
	a.Run(settings.API.Address)
}
