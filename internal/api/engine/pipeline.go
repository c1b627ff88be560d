package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/broccolitours/itinerary-api/internal/api/catalog"
	"github.com/broccolitours/itinerary-api/internal/types"
)

// generateCallTimeout caps every single provider call, initial and repair
// rounds alike.
const generateCallTimeout = 60 * time.Second

// repairGenOptions is shared by all providers: continuations are generated
// cold and short, they only have to finish a JSON document.
var repairGenOptions = GenOptions{Temperature: 0.2, MaxOutputTokens: 2048}

// providerEngine is the shared pipeline behind both AI providers: resolve the
// anchor, build the prompt, call the provider, parse with repair, backfill
// coordinates. Only the textGenerator and the generation options differ
// between Gemini and OpenAI.
type providerEngine struct {
	gen      textGenerator
	genOpts  GenOptions
	locations catalog.LocationCatalog
	rentals   catalog.RentalLocationCatalog
	logger    *slog.Logger
}

var _ Engine = (*providerEngine)(nil)

// NewGeminiEngine wires the Gemini client into the shared pipeline.
func NewGeminiEngine(client *GeminiClient, locations catalog.LocationCatalog, rentals catalog.RentalLocationCatalog, logger *slog.Logger) Engine {
	return &providerEngine{
		gen:       client,
		genOpts:   GenOptions{Temperature: 0.6, MaxOutputTokens: 8192},
		locations: locations,
		rentals:   rentals,
		logger:    logger,
	}
}

// NewOpenAIEngine wires the OpenAI client into the shared pipeline.
func NewOpenAIEngine(client *OpenAIClient, locations catalog.LocationCatalog, rentals catalog.RentalLocationCatalog, logger *slog.Logger) Engine {
	return &providerEngine{
		gen:       client,
		genOpts:   GenOptions{Temperature: 0.6, MaxOutputTokens: 1400},
		locations: locations,
		rentals:   rentals,
		logger:    logger,
	}
}

func (e *providerEngine) Suggest(ctx context.Context, prefs types.TravelPreferences) (*Suggestion, error) {
	ctx, span := otel.Tracer("ItineraryEngine").Start(ctx, "Suggest")
	defer span.End()
	span.SetAttributes(attribute.String("engine.provider", e.gen.Name()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	location := ResolveLocation(prefs, e.locations)
	var rental *types.RentalLocation
	if prefs.RentalLocationID != "" {
		rental = e.rentals.FindByID(prefs.RentalLocationID)
		if rental == nil {
			e.logger.WarnContext(ctx, "rental station not found, prompting without it",
				slog.String("rental_location_id", prefs.RentalLocationID))
		}
	}

	prompt := BuildPrompt(prefs, location, rental)
	gen := &timeoutGenerator{inner: e.gen, timeout: generateCallTimeout}

	raw, err := gen.GenerateText(ctx, prompt, e.genOpts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider call failed")
		return nil, fmt.Errorf("generate itinerary with %s: %w", e.gen.Name(), err)
	}

	itin, repairs, err := parseWithRepair(ctx, gen, e.logger, raw, prefs, repairGenOptions)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "response unusable")
		return nil, err
	}

	if location != nil {
		itin = BackfillCoordinates(itin, *location)
	}
	warnOnDayNumberGaps(ctx, e.logger, e.gen.Name(), itin)

	span.SetStatus(codes.Ok, "itinerary generated")
	return &Suggestion{Itinerary: itin, Tier: TierPrimary, RepairAttempts: repairs}, nil
}

// warnOnDayNumberGaps flags non-sequential day numbering. The numbers are
// passed through as generated; renumbering would desynchronize them from
// titles and dates the text already refers to.
func warnOnDayNumberGaps(ctx context.Context, logger *slog.Logger, provider string, itin *types.Itinerary) {
	for i, day := range itin.Days {
		if day.DayNumber != i+1 {
			logger.WarnContext(ctx, "itinerary day numbers are not sequential",
				slog.String("provider", provider),
				slog.Int("position", i+1),
				slog.Int("day_number", day.DayNumber))
			return
		}
	}
}

// timeoutGenerator bounds each provider call without affecting the parent
// context shared by the repair loop.
type timeoutGenerator struct {
	inner   textGenerator
	timeout time.Duration
}

func (g *timeoutGenerator) Name() string { return g.inner.Name() }

func (g *timeoutGenerator) GenerateText(ctx context.Context, prompt string, opts GenOptions) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.inner.GenerateText(callCtx, prompt, opts)
}
