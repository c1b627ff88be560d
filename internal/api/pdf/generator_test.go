package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broccolitours/itinerary-api/internal/types"
)

func sampleItinerary() *types.Itinerary {
	drive := 2.5
	overnight := "Greve camper area"
	date := types.NewDate(2025, 7, 10)
	return &types.Itinerary{
		ID:      "iti-pdf-1",
		Title:   "Tuscany loop",
		Summary: "Hill towns and back roads.",
		Period:  types.TravelPeriod{Type: types.PeriodFixedDates, StartDate: &date},
		Days: []types.ItineraryDay{{
			DayNumber: 1,
			Date:      &date,
			Title:     "Florence to Chianti",
			Stops: []types.ItineraryStop{
				{Name: "Piazzale Michelangelo", Description: "City panorama", Latitude: 43.76, Longitude: 11.26, Type: "viewpoint"},
				{Name: "Greve camper area", Latitude: 43.58, Longitude: 11.31, Type: "camper_area"},
			},
			Activities:                  []string{"Wine tasting"},
			DriveHoursEstimate:          &drive,
			OvernightStopRecommendation: &overnight,
		}},
		Tips:           []string{"Arrive early"},
		GeneratedAtUTC: time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeDetailed, ParseMode(""))
	assert.Equal(t, ModeDetailed, ParseMode("detailed"))
	assert.Equal(t, ModeBrochure, ParseMode("brochure"))
	assert.Equal(t, ModeBrochure, ParseMode("BROCHURE"))
	assert.Equal(t, ModeDetailed, ParseMode("garbage"))
}

func TestGenerate_DetailedProducesPDF(t *testing.T) {
	doc, err := Generate(sampleItinerary(), ModeDetailed)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF"))
	assert.Greater(t, len(doc), 500)
}

func TestGenerate_BrochureIsSmallerThanDetailed(t *testing.T) {
	itin := sampleItinerary()

	detailed, err := Generate(itin, ModeDetailed)
	require.NoError(t, err)
	brochure, err := Generate(itin, ModeBrochure)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(brochure), "%PDF"))
	assert.LessOrEqual(t, len(brochure), len(detailed))
}

func TestGenerate_EmptyDays(t *testing.T) {
	itin := &types.Itinerary{ID: "x", Title: "Empty", GeneratedAtUTC: time.Now().UTC()}

	doc, err := Generate(itin, ModeDetailed)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF"))
}
