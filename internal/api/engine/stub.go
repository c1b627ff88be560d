package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/broccolitours/itinerary-api/internal/api/catalog"
	"github.com/broccolitours/itinerary-api/internal/types"
)

// StubEngine deterministically synthesizes a plausible itinerary with no
// network calls. It is the terminal tier of the fallback chain and must never
// fail for any preferences; cancellation is the only error it returns.
type StubEngine struct {
	locations catalog.LocationCatalog
	logger    *slog.Logger
}

var _ Engine = (*StubEngine)(nil)

func NewStubEngine(locations catalog.LocationCatalog, logger *slog.Logger) *StubEngine {
	return &StubEngine{locations: locations, logger: logger}
}

func (e *StubEngine) Suggest(ctx context.Context, prefs types.TravelPreferences) (*Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	anchor := e.resolveOrSynthesize(prefs)
	dayCount := stubDayCount(prefs)
	period := stubPeriod(prefs)

	e.logger.InfoContext(ctx, "generating stub itinerary",
		slog.String("anchor", anchor.Name),
		slog.Int("days", dayCount))

	days := make([]types.ItineraryDay, 0, dayCount)
	var startDate *types.Date
	if prefs.PeriodType == types.PeriodFixedDates && prefs.StartDate != nil {
		startDate = prefs.StartDate
	}

	for i := 0; i < dayCount; i++ {
		dayNum := i + 1
		offset := float64(i)
		drive := 2.0

		day := types.ItineraryDay{
			DayNumber: dayNum,
			Title:     fmt.Sprintf("Day %d: %s", dayNum, anchor.Name),
			Stops: []types.ItineraryStop{
				{
					Name:        fmt.Sprintf("Panoramic viewpoint %d", dayNum),
					Description: "A scenic lookout with easy camper parking nearby.",
					Latitude:    anchor.Latitude + 0.03*offset + 0.01,
					Longitude:   anchor.Longitude + 0.02*offset + 0.01,
					Type:        "viewpoint",
				},
				{
					Name:        fmt.Sprintf("Camper area %d", dayNum),
					Description: "Flat pitches, fresh water and grey-water disposal.",
					Latitude:    anchor.Latitude + 0.03*offset - 0.01,
					Longitude:   anchor.Longitude + 0.02*offset - 0.01,
					Type:        "camper_area",
				},
				{
					Name:        fmt.Sprintf("Old village %d", dayNum),
					Description: "A quiet historic village; park outside the walls and walk in.",
					Latitude:    anchor.Latitude + 0.03*offset + 0.02,
					Longitude:   anchor.Longitude + 0.02*offset - 0.02,
					Type:        "village",
				},
			},
			Activities: []string{
				"Morning drive along the scenic route",
				"Short walk and photo stop",
				"Local food tasting",
			},
			DriveHoursEstimate: &drive,
		}

		if startDate != nil {
			d := startDate.AddDays(i)
			day.Date = &d
		}
		if dayNum < dayCount {
			overnight := fmt.Sprintf("Camper area %d near %s", dayNum, anchor.Name)
			day.OvernightStopRecommendation = &overnight
		}

		days = append(days, day)
	}

	tips := []string{
		"Arrive at camper areas before late afternoon to find a pitch.",
		"Top up water and empty grey water at every equipped stop.",
		"Keep fuel above half a tank in rural stretches.",
	}
	if prefs.WeekendTrip {
		tips = append(tips, "Leave early on the first morning to beat weekend traffic.")
	}
	if prefs.OvertourismLevel() >= 3 {
		tips = append(tips, "Visit headline sights at opening time or skip them for the listed alternatives.")
	}

	itin := &types.Itinerary{
		ID:             fmt.Sprintf("iti-%d-%s", time.Now().Unix(), uuid.New().String()[:8]),
		Title:          fmt.Sprintf("%s by camper: %d days", anchor.Name, dayCount),
		Summary:        fmt.Sprintf("A %d-day camper route around %s with practical overnight stops.", dayCount, anchor.Name),
		Period:         period,
		Days:           days,
		Tips:           tips,
		GeneratedAtUTC: time.Now().UTC(),
	}

	return &Suggestion{Itinerary: itin, Tier: TierStub, RepairAttempts: 0}, nil
}

// resolveOrSynthesize always yields an anchor: an unmatched free-text query
// becomes a synthetic location centred on Italy, so the stub can still route
// around something.
func (e *StubEngine) resolveOrSynthesize(prefs types.TravelPreferences) types.Location {
	if loc := ResolveLocation(prefs, e.locations); loc != nil {
		return *loc
	}
	name := prefs.LocationQuery
	if name == "" {
		name = "Italy"
	}
	return types.Location{
		ID:          uuid.New().String(),
		Name:        name,
		CountryCode: "IT",
		Latitude:    42.0,
		Longitude:   12.0,
	}
}

// stubDayCount clamps an explicit duration to [2,21] days and otherwise falls
// back to 2 days for a weekend and 3 for everything else.
func stubDayCount(prefs types.TravelPreferences) int {
	if prefs.TripDurationDays != nil && *prefs.TripDurationDays > 0 {
		n := *prefs.TripDurationDays
		if n < 2 {
			return 2
		}
		if n > 21 {
			return 21
		}
		return n
	}
	if prefs.WeekendTrip {
		return 2
	}
	return 3
}

func stubPeriod(prefs types.TravelPreferences) types.TravelPeriod {
	period := types.TravelPeriod{Type: prefs.PeriodType}
	if period.Type == "" {
		period.Type = types.PeriodSuggestBest
	}
	switch prefs.PeriodType {
	case types.PeriodFixedDates:
		period.StartDate = prefs.StartDate
		period.EndDate = prefs.EndDate
	default:
		period.Month = prefs.Month
		period.Year = prefs.Year
	}
	return period
}
