package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"Inventory/internal/benchmark"
	"Inventory/internal/models"
)

type fakeCatalog struct {
	parts []models.Part
	err   error
}

func (f fakeCatalog) GetParts() ([]models.Part, error) { return f.parts, f.err }

func newTestApp(t *testing.T) *App {
	t.Helper()
	parts := []models.Part{
		{ID: 1, Name: "Radiator", Compatibility: "Ford Fiesta 2018", Price: decimal.RequireFromString("150.00"), Stock: 4},
		{ID: 2, Name: "Alternator", Compatibility: "Chevrolet Spark 2015", Price: decimal.RequireFromString("20.00"), Stock: 9},
		{ID: 3, Name: "Fuel Pump", Compatibility: "Ford Focus 2019", Price: decimal.RequireFromString("75.50"), Stock: 1},
		{ID: 4, Name: "Battery", Compatibility: "Ford Fiesta 2018", Price: decimal.RequireFromString("99.99"), Stock: 2},
	}
	a := &App{Multiplier: 2}
	require.NoError(t, a.Initialize(fakeCatalog{parts: parts}))
	return a
}

func get(t *testing.T, a *App, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec
}

func partIDs(t *testing.T, rec *httptest.ResponseRecorder) []int {
	t.Helper()
	var parts []models.Part
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parts))
	return lo.Map(parts, func(p models.Part, _ int) int { return p.ID })
}

func TestInitialize_CatalogError(t *testing.T) {
	a := &App{}
	require.Error(t, a.Initialize(fakeCatalog{err: errors.New("no file")}))
}

func TestPartsHandler(t *testing.T) {
	rec := get(t, newTestApp(t), "/parts")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []int{1, 2, 3, 4}, partIDs(t, rec))
}

func TestSortedPartsHandler(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantCode int
		wantIDs  []int
	}{
		{"Test price", "/parts/sorted/price", http.StatusOK, []int{2, 3, 4, 1}},
		{"Test stock", "/parts/sorted/stock", http.StatusOK, []int{3, 4, 1, 2}},
		{"Test name", "/parts/sorted/name", http.StatusOK, []int{2, 4, 3, 1}},
		{"Test compatibility", "/parts/sorted/compatibility", http.StatusOK, []int{2, 1, 3, 4}},
		{"Test limit", "/parts/sorted/price?limit=2", http.StatusOK, []int{2, 3}},
		{"Test limit zero", "/parts/sorted/price?limit=0", http.StatusOK, []int{}},
		{"Test limit above size", "/parts/sorted/price?limit=50", http.StatusOK, []int{2, 3, 4, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			rec := get(t, a, tt.url)
			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, tt.wantIDs, partIDs(t, rec))
			require.Equal(t, 1, a.Parts[0].ID)
		})
	}
}

func TestSortedPartsHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantCode int
	}{
		{"Test unknown key", "/parts/sorted/color", http.StatusNotFound},
		{"Test negative limit", "/parts/sorted/price?limit=-1", http.StatusBadRequest},
		{"Test non numeric limit", "/parts/sorted/price?limit=ten", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestApp(t), tt.url)
			require.Equal(t, tt.wantCode, rec.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotEmpty(t, body.Error)
		})
	}
}

func TestBrandsHandler(t *testing.T) {
	rec := get(t, newTestApp(t), "/parts/brands")
	require.Equal(t, http.StatusOK, rec.Code)
	var brands []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &brands))
	require.Equal(t, []string{"Chevrolet", "Ford"}, brands)
}

func TestVehiclesHandler(t *testing.T) {
	rec := get(t, newTestApp(t), "/vehicles")
	require.Equal(t, http.StatusOK, rec.Code)
	var vehicles []models.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
	require.Equal(t, []models.Vehicle{
		{Descriptor: "Chevrolet Spark 2015", Brand: "Chevrolet", Model: "Spark", Year: 2015},
		{Descriptor: "Ford Fiesta 2018", Brand: "Ford", Model: "Fiesta", Year: 2018},
		{Descriptor: "Ford Focus 2019", Brand: "Ford", Model: "Focus", Year: 2019},
	}, vehicles)
}

func TestBenchmarkHandler(t *testing.T) {
	rec := get(t, newTestApp(t), "/benchmark")
	require.Equal(t, http.StatusOK, rec.Code)
	var report benchmark.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Equal(t, 8, report.SampleSize)
	require.Equal(t, []string{"QuickSort", "MergeSort", "InsertionSort", "BubbleSort"}, report.Names())
}

func TestMethodNotAllowed(t *testing.T) {
	a := newTestApp(t)
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/parts", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
