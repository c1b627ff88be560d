package itinerary

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/broccolitours/itinerary-api/app/observability/metrics"
	"github.com/broccolitours/itinerary-api/internal/api"
	"github.com/broccolitours/itinerary-api/internal/api/engine"
	"github.com/broccolitours/itinerary-api/internal/api/pdf"
	"github.com/broccolitours/itinerary-api/internal/types"
)

// FallbackHeader marks responses served by the deterministic stub after every
// AI provider failed. Clients read the header, never the itinerary prose.
const FallbackHeader = "X-Broccoli-Fallback"

// RepairAttemptsHeader carries the number of JSON repair rounds spent while
// producing the response, across all tiers that ran.
const RepairAttemptsHeader = "X-Json-Repair-Attempts"

type Handler struct {
	engine engine.Engine
	store  Store
	logger *slog.Logger
}

func NewHandler(eng engine.Engine, store Store, logger *slog.Logger) *Handler {
	return &Handler{engine: eng, store: store, logger: logger}
}

// Suggest generates an itinerary from the posted travel preferences.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Suggest", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/itineraries/suggest"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Suggest"))
	start := time.Now()

	var prefs types.TravelPreferences
	if err := api.DecodeJSONBody(w, r, &prefs); err != nil {
		l.WarnContext(ctx, "Invalid preferences payload", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.engine.Suggest(ctx, prefs)
	if err != nil {
		if ctx.Err() != nil {
			l.InfoContext(ctx, "Suggestion cancelled by client")
			return
		}
		l.ErrorContext(ctx, "Itinerary generation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "Itinerary generation failed")
		return
	}

	h.store.Save(s.Itinerary)

	m := metrics.Get()
	tierAttr := metric.WithAttributes(attribute.String("tier", string(s.Tier)))
	m.SuggestRequestsTotal.Add(ctx, 1, tierAttr)
	m.SuggestDurationSeconds.Record(ctx, time.Since(start).Seconds(), tierAttr)
	if s.RepairAttempts > 0 {
		m.RepairRoundsTotal.Add(ctx, int64(s.RepairAttempts))
	}

	if s.Tier == engine.TierStub {
		w.Header().Set(FallbackHeader, "stub")
	}
	if s.RepairAttempts > 0 {
		w.Header().Set(RepairAttemptsHeader, strconv.Itoa(s.RepairAttempts))
	}

	l.InfoContext(ctx, "Itinerary generated",
		slog.String("itinerary_id", s.Itinerary.ID),
		slog.String("tier", string(s.Tier)),
		slog.Int("repair_attempts", s.RepairAttempts))
	api.WriteJSONResponse(w, r, http.StatusOK, s.Itinerary)
}

// Get returns a previously generated itinerary by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Get", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/itineraries/{id}"),
	))
	defer span.End()

	id := chi.URLParam(r, "id")
	itin, ok := h.store.Get(id)
	if !ok {
		api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found")
		return
	}

	h.logger.DebugContext(ctx, "Serving stored itinerary", slog.String("itinerary_id", id))
	api.WriteJSONResponse(w, r, http.StatusOK, itin)
}

// ExportPDF renders a stored itinerary as a downloadable PDF.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "ExportPDF", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/itineraries/{id}/pdf"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ExportPDF"))

	id := chi.URLParam(r, "id")
	itin, ok := h.store.Get(id)
	if !ok {
		api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found")
		return
	}

	mode := pdf.ParseMode(r.URL.Query().Get("mode"))
	doc, err := pdf.Generate(itin, mode)
	if err != nil {
		l.ErrorContext(ctx, "PDF rendering failed", slog.Any("error", err), slog.String("itinerary_id", id))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	metrics.Get().PDFExportsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", string(mode))))

	filename := fmt.Sprintf("BroccoliTours-%s-%s.pdf", id, mode)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		l.ErrorContext(ctx, "Failed to write PDF body", slog.Any("error", err))
	}
}
