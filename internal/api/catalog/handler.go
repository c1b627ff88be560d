package catalog

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/broccolitours/itinerary-api/internal/api"
)

// Handler serves the read-only catalog endpoints.
type Handler struct {
	locations LocationCatalog
	rentals   RentalLocationCatalog
	campers   CamperCatalog
	logger    *slog.Logger
}

func NewHandler(locations LocationCatalog, rentals RentalLocationCatalog, campers CamperCatalog, logger *slog.Logger) *Handler {
	return &Handler{
		locations: locations,
		rentals:   rentals,
		campers:   campers,
		logger:    logger,
	}
}

// GetLocations returns the anchor destinations.
func (h *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetLocations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/locations"),
	))
	defer span.End()

	locations := h.locations.GetAll()
	h.logger.DebugContext(ctx, "Serving locations", slog.Int("count", len(locations)))
	api.WriteJSONResponse(w, r, http.StatusOK, locations)
}

// GetRentalLocations returns the rental stations sorted by country and city.
func (h *Handler) GetRentalLocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetRentalLocations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/rentallocations"),
	))
	defer span.End()

	stations := h.rentals.GetAll()
	h.logger.DebugContext(ctx, "Serving rental stations", slog.Int("count", len(stations)))
	api.WriteJSONResponse(w, r, http.StatusOK, stations)
}

// GetCampers returns the rentable fleet.
func (h *Handler) GetCampers(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetCampers", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/campers"),
	))
	defer span.End()

	campers := h.campers.GetAll()
	h.logger.DebugContext(ctx, "Serving campers", slog.Int("count", len(campers)))
	api.WriteJSONResponse(w, r, http.StatusOK, campers)
}
