package engine

import (
	"math"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// coordEpsilon is the tolerance under which a coordinate pair counts as the
// (0,0) sentinel the providers sometimes emit instead of real coordinates.
const coordEpsilon = 1e-5

func isNullIsland(lat, lon float64) bool {
	return math.Abs(lat) < coordEpsilon && math.Abs(lon) < coordEpsilon
}

// BackfillCoordinates returns a copy of the itinerary in which every (0,0)
// stop has been replaced by a coordinate derived from the anchor location and
// the stop's position. The offsets are deterministic, so identical inputs
// always produce identical output and re-running the backfill changes nothing.
// Stops that already carry real coordinates are left untouched, and the input
// itinerary is never mutated.
func BackfillCoordinates(itin *types.Itinerary, anchor types.Location) *types.Itinerary {
	if itin == nil {
		return nil
	}

	out := *itin
	out.Days = make([]types.ItineraryDay, len(itin.Days))
	for i, day := range itin.Days {
		outDay := day
		outDay.Stops = make([]types.ItineraryStop, len(day.Stops))
		for j, stop := range day.Stops {
			outStop := stop
			if isNullIsland(stop.Latitude, stop.Longitude) {
				dayIdx := float64(i + 1)
				stopIdx := float64(j + 1)
				outStop.Latitude = anchor.Latitude + 0.03*dayIdx - 0.01*stopIdx
				outStop.Longitude = anchor.Longitude + 0.02*stopIdx - 0.01*dayIdx
				// An anchor near null island can cancel the offsets back out.
				if isNullIsland(outStop.Latitude, outStop.Longitude) {
					outStop.Latitude += 0.05
					outStop.Longitude += 0.05
				}
			}
			outDay.Stops[j] = outStop
		}
		out.Days[i] = outDay
	}
	return &out
}
