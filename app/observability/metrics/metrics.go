package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	SuggestRequestsTotal   metric.Int64Counter
	SuggestDurationSeconds metric.Float64Histogram
	RepairRoundsTotal      metric.Int64Counter
	PDFExportsTotal        metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, from the
// globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("broccolitours-itinerary-api")
		var err error
		m := &AppMetrics{}

		m.SuggestRequestsTotal, err = meter.Int64Counter(
			"itinerary_suggest_requests_total",
			metric.WithDescription("Total itinerary suggestions served, by tier"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_suggest_requests_total: %v", err)
		}

		m.SuggestDurationSeconds, err = meter.Float64Histogram(
			"itinerary_suggest_duration_seconds",
			metric.WithDescription("End-to-end duration of itinerary suggestions"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_suggest_duration_seconds: %v", err)
		}

		m.RepairRoundsTotal, err = meter.Int64Counter(
			"itinerary_json_repair_rounds_total",
			metric.WithDescription("Total JSON repair rounds spent across all suggestions"),
			metric.WithUnit("{round}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_json_repair_rounds_total: %v", err)
		}

		m.PDFExportsTotal, err = meter.Int64Counter(
			"itinerary_pdf_exports_total",
			metric.WithDescription("Total PDF exports served"),
			metric.WithUnit("{export}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_pdf_exports_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance, initializing it
// on first use.
func Get() *AppMetrics {
	if appMetrics == nil {
		InitAppMetrics()
	}
	return appMetrics
}
