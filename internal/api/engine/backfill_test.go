package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/broccolitours/itinerary-api/internal/types"
)

func itineraryWithStops(stops ...types.ItineraryStop) *types.Itinerary {
	return &types.Itinerary{
		ID:    "x",
		Title: "t",
		Days:  []types.ItineraryDay{{DayNumber: 1, Title: "Day 1", Stops: stops}},
	}
}

func TestBackfillCoordinates_ReplacesNullIslandOnly(t *testing.T) {
	anchor := types.Location{Latitude: 43.77, Longitude: 11.25}
	in := itineraryWithStops(
		types.ItineraryStop{Name: "real", Latitude: 43.58, Longitude: 11.31},
		types.ItineraryStop{Name: "zeroed", Latitude: 0, Longitude: 0},
	)

	out := BackfillCoordinates(in, anchor)

	assert.InDelta(t, 43.58, out.Days[0].Stops[0].Latitude, 1e-9)
	assert.InDelta(t, 11.31, out.Days[0].Stops[0].Longitude, 1e-9)

	backfilled := out.Days[0].Stops[1]
	assert.InDelta(t, anchor.Latitude+0.03*1-0.01*2, backfilled.Latitude, 1e-9)
	assert.InDelta(t, anchor.Longitude+0.02*2-0.01*1, backfilled.Longitude, 1e-9)
}

func TestBackfillCoordinates_DoesNotMutateInput(t *testing.T) {
	in := itineraryWithStops(types.ItineraryStop{Name: "zeroed"})

	_ = BackfillCoordinates(in, types.Location{Latitude: 43.77, Longitude: 11.25})

	assert.Zero(t, in.Days[0].Stops[0].Latitude)
	assert.Zero(t, in.Days[0].Stops[0].Longitude)
}

func TestBackfillCoordinates_Idempotent(t *testing.T) {
	anchor := types.Location{Latitude: 43.77, Longitude: 11.25}
	in := itineraryWithStops(types.ItineraryStop{Name: "zeroed"})

	once := BackfillCoordinates(in, anchor)
	twice := BackfillCoordinates(once, anchor)

	assert.Equal(t, once, twice)
}

func TestBackfillCoordinates_NearZeroAnchorStillMoves(t *testing.T) {
	// Offsets from a null-island anchor could land back on (0,0).
	anchor := types.Location{Latitude: -0.01, Longitude: -0.03}
	in := itineraryWithStops(
		types.ItineraryStop{Name: "a"},
		types.ItineraryStop{Name: "b"},
	)

	out := BackfillCoordinates(in, anchor)

	for _, stop := range out.Days[0].Stops {
		assert.False(t, isNullIsland(stop.Latitude, stop.Longitude), "stop %s still at null island", stop.Name)
	}
}
