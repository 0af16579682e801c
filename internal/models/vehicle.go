package models

import (
	"regexp"
	"strconv"
	"strings"
)

var yearMatcher = regexp.MustCompile(`\b\d{4}\b`)

// Vehicle is a compatibility descriptor split into its parts,
// e.g. "Ford Fiesta 2018" is brand Ford, model Fiesta, year 2018.
type Vehicle struct {
	Descriptor string `json:"descriptor"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Year       int    `json:"year,omitempty"`
}

// ParseVehicle splits a compatibility descriptor. The brand is always the
// first token; the model is whatever sits between the brand and the year.
func ParseVehicle(descriptor string) Vehicle {
	descriptor = standardizeSpaces(descriptor)
	vehicle := Vehicle{Descriptor: descriptor, Brand: brandOf(descriptor)}
	if vehicle.Brand == "" {
		return vehicle
	}

	rest := strings.TrimSpace(strings.TrimPrefix(descriptor, vehicle.Brand))
	loc := yearMatcher.FindStringIndex(rest)
	if loc == nil {
		vehicle.Model = rest
		return vehicle
	}
	year, err := strconv.Atoi(rest[loc[0]:loc[1]])
	if err == nil {
		vehicle.Year = year
	}
	vehicle.Model = strings.TrimSpace(rest[:loc[0]])
	return vehicle
}

func standardizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
