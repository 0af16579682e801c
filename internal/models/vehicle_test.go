package models

import "testing"

func TestPart_Brand(t *testing.T) {
	tests := []struct {
		name          string
		compatibility string
		want          string
	}{
		{"Test plain brand", "Suzuki", "Suzuki"},
		{"Test brand with model and year", "Ford Fiesta 2018", "Ford"},
		{"Test leading spaces", "   Honda Civic", "Honda"},
		{"Test tabs", "Toyota\tHilux", "Toyota"},
		{"Test dashed brand stays one token", "Harley-Davidson RX203 2020", "Harley-Davidson"},
		{"Test empty", "", ""},
		{"Test only whitespace", " \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Part{Compatibility: tt.compatibility}).Brand(); got != tt.want {
				t.Errorf("Brand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseVehicle(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       Vehicle
	}{
		{"Test brand model year", "Ford Fiesta 2018", Vehicle{"Ford Fiesta 2018", "Ford", "Fiesta", 2018}},
		{"Test multi word model", "Suzuki RX 3 2019", Vehicle{"Suzuki RX 3 2019", "Suzuki", "RX 3", 2019}},
		{"Test numbers after year", "Suzuki RX 2019 203", Vehicle{"Suzuki RX 2019 203", "Suzuki", "RX", 2019}},
		{"Test dashes in model", "Suzuki RX-3 2019", Vehicle{"Suzuki RX-3 2019", "Suzuki", "RX-3", 2019}},
		{"Test no year", "Honda Civic", Vehicle{"Honda Civic", "Honda", "Civic", 0}},
		{"Test brand only", "Toyota", Vehicle{"Toyota", "Toyota", "", 0}},
		{"Test extra spaces", "  Chevrolet   Spark  2015 ", Vehicle{"Chevrolet Spark 2015", "Chevrolet", "Spark", 2015}},
		{"Test empty", "", Vehicle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseVehicle(tt.descriptor); got != tt.want {
				t.Errorf("ParseVehicle() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
