package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/broccolitours/itinerary-api/internal/api/catalog"
	"github.com/broccolitours/itinerary-api/internal/api/itinerary"
)

// Config carries the handlers and settings the router wires together.
// Server-wide middleware (request ID, structured logger, recoverer) is applied
// in main.go before this router is mounted.
type Config struct {
	CatalogHandler   *catalog.Handler
	ItineraryHandler *itinerary.Handler
	AllowedOrigins   []string
}

// SetupRouter builds the application route tree.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{itinerary.FallbackHeader, itinerary.RepairAttemptsHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/campers", cfg.CatalogHandler.GetCampers)
		r.Get("/locations", cfg.CatalogHandler.GetLocations)
		r.Get("/rentallocations", cfg.CatalogHandler.GetRentalLocations)

		r.Route("/itineraries", func(r chi.Router) {
			r.Post("/suggest", cfg.ItineraryHandler.Suggest)
			r.Get("/{id}", cfg.ItineraryHandler.Get)
			r.Get("/{id}/pdf", cfg.ItineraryHandler.ExportPDF)
		})
	})

	return r
}
