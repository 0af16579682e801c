package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"Inventory/internal/benchmark"
	"Inventory/internal/models"
	"Inventory/internal/sorting"
)

type App struct {
	Router     *mux.Router
	Parts      []models.Part
	Multiplier int
}

type errorResponse struct {
	Error string `json:"error"`
}

// Initialize loads the catalog once and registers the routes. Handlers only
// read a.Parts; every sort works on its own copy.
func (a *App) Initialize(handler models.CatalogHandler) error {
	parts, err := handler.GetParts()
	if err != nil {
		return err
	}
	a.Parts = parts
	a.Router = mux.NewRouter()
	a.Router.StrictSlash(true)
	a.Router.HandleFunc("/parts", a.PartsHandler).Methods("GET")
	a.Router.HandleFunc("/parts/brands", a.BrandsHandler).Methods("GET")
	a.Router.HandleFunc("/parts/sorted/{key}", a.SortedPartsHandler).Methods("GET")
	a.Router.HandleFunc("/vehicles", a.VehiclesHandler).Methods("GET")
	a.Router.HandleFunc("/benchmark", a.BenchmarkHandler).Methods("GET")
	a.Router.Use(contentTypeApplicationJsonMiddleware)
	return nil
}

func (a *App) Run(addr string) {
	srv := &http.Server{
		Handler:      a.Router,
		Addr:         addr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Printf("Listening on %s", addr)
	log.Fatal(srv.ListenAndServe())
}

func contentTypeApplicationJsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("Cannot marshal: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	w.Write(payload)
}

func (a *App) PartsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Parts)
}

func (a *App) SortedPartsHandler(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	algorithm, ok := sorting.Lookup(key)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown sort key " + strconv.Quote(key)})
		return
	}

	sorted := algorithm.Sort(a.Parts)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			log.Printf("Bad limit %q", raw)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		sorted = sorted[:min(limit, len(sorted))]
	}
	writeJSON(w, http.StatusOK, sorted)
}

func (a *App) BrandsHandler(w http.ResponseWriter, r *http.Request) {
	brands := lo.Uniq(lo.Map(sorting.ByCompatibility(a.Parts), func(p models.Part, _ int) string { return p.Brand() }))
	writeJSON(w, http.StatusOK, brands)
}

func (a *App) VehiclesHandler(w http.ResponseWriter, r *http.Request) {
	vehicles := lo.UniqBy(
		lo.Map(sorting.ByCompatibility(a.Parts), func(p models.Part, _ int) models.Vehicle { return models.ParseVehicle(p.Compatibility) }),
		func(v models.Vehicle) string { return v.Descriptor },
	)
	writeJSON(w, http.StatusOK, vehicles)
}

func (a *App) BenchmarkHandler(w http.ResponseWriter, r *http.Request) {
	multiplier := a.Multiplier
	if multiplier <= 0 {
		multiplier = benchmark.DefaultMultiplier
	}
	writeJSON(w, http.StatusOK, benchmark.Run(a.Parts, multiplier))
}
