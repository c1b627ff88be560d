package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broccolitours/itinerary-api/internal/types"
)

const validItineraryJSON = `{
	"id": "abc-123",
	"title": "Tuscany loop",
	"summary": "Hill towns and back roads.",
	"period": {"type": "Month", "month": 7, "year": 2025},
	"days": [
		{
			"dayNumber": 1,
			"date": "2025-07-10",
			"title": "Florence to Chianti",
			"stops": [
				{"name": "Piazzale Michelangelo", "description": "City panorama", "latitude": 43.7629, "longitude": 11.2658, "type": "viewpoint"},
				{"name": "Greve camper area", "latitude": 43.5843, "longitude": 11.3158, "type": "camper_area"}
			],
			"activities": ["Wine tasting", "  ", "Evening walk"],
			"driveHoursEstimate": 2.5,
			"overnightStopRecommendation": "Greve camper area"
		}
	],
	"tips": ["Arrive early", ""],
	"generatedAtUtc": "2025-07-01T10:00:00Z"
}`

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}

func TestParseItinerary_FullDocument(t *testing.T) {
	itin, err := parseItinerary(validItineraryJSON, types.TravelPreferences{})

	require.NoError(t, err)
	assert.Equal(t, "abc-123", itin.ID)
	assert.Equal(t, "Tuscany loop", itin.Title)
	assert.Equal(t, types.PeriodMonth, itin.Period.Type)
	require.NotNil(t, itin.Period.Month)
	assert.Equal(t, 7, *itin.Period.Month)

	require.Len(t, itin.Days, 1)
	day := itin.Days[0]
	assert.Equal(t, 1, day.DayNumber)
	require.NotNil(t, day.Date)
	assert.Equal(t, "2025-07-10", day.Date.String())
	require.Len(t, day.Stops, 2)
	assert.Equal(t, "camper_area", day.Stops[1].Type)
	assert.Equal(t, []string{"Wine tasting", "Evening walk"}, day.Activities)
	require.NotNil(t, day.DriveHoursEstimate)
	assert.InDelta(t, 2.5, *day.DriveHoursEstimate, 1e-9)

	assert.Equal(t, []string{"Arrive early"}, itin.Tips)
	assert.Equal(t, "2025-07-01T10:00:00Z", itin.GeneratedAtUTC.Format("2006-01-02T15:04:05Z07:00"))
}

func TestParseItinerary_TruncatedJSONIsSyntaxError(t *testing.T) {
	_, err := parseItinerary(validItineraryJSON[:len(validItineraryJSON)/2], types.TravelPreferences{})

	require.Error(t, err)
	var missing *types.MissingFieldError
	assert.NotErrorAs(t, err, &missing)
}

func TestParseItinerary_AbsentRequiredKeyIsMissingField(t *testing.T) {
	_, err := parseItinerary(`{"title": "t", "period": {"type": "Month"}}`, types.TravelPreferences{})

	var missing *types.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "id", missing.Field)
}

func TestParseItinerary_NullIDGetsFreshUUID(t *testing.T) {
	itin, err := parseItinerary(`{"id": null, "title": "t", "period": {"type": "Month"}}`, types.TravelPreferences{})

	require.NoError(t, err)
	assert.NotEmpty(t, itin.ID)
}

func TestParseItinerary_NullTitleGetsDefault(t *testing.T) {
	itin, err := parseItinerary(`{"id": "x", "title": null, "period": {"type": "Month"}}`, types.TravelPreferences{})

	require.NoError(t, err)
	assert.Equal(t, "Camper Itinerary", itin.Title)
}

func TestParseItinerary_MissingPeriodType(t *testing.T) {
	_, err := parseItinerary(`{"id": "x", "title": "t", "period": {}}`, types.TravelPreferences{})

	var missing *types.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "period.type", missing.Field)
}

func TestParseItinerary_StopWithoutCoordinatesIsMissingField(t *testing.T) {
	doc := `{"id": "x", "title": "t", "period": {"type": "Month"},
		"days": [{"dayNumber": 1, "stops": [{"name": "Somewhere", "latitude": 43.0}]}]}`

	_, err := parseItinerary(doc, types.TravelPreferences{})

	var missing *types.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "days[0].stops[0].longitude", missing.Field)
}

func TestParseItinerary_LenientExtras(t *testing.T) {
	doc := `{"id": "x", "title": "t",
		"period": {"type": "Month", "month": "7", "year": "2025", "startDate": "not-a-date"},
		"days": [{"dayNumber": "2", "stops": [{"name": "S", "latitude": "43.5", "longitude": "11.2"}]}]}`

	itin, err := parseItinerary(doc, types.TravelPreferences{})

	require.NoError(t, err)
	require.NotNil(t, itin.Period.Month)
	assert.Equal(t, 7, *itin.Period.Month)
	require.NotNil(t, itin.Period.Year)
	assert.Equal(t, 2025, *itin.Period.Year)
	assert.Nil(t, itin.Period.StartDate)

	require.Len(t, itin.Days, 1)
	day := itin.Days[0]
	assert.Equal(t, 2, day.DayNumber)
	assert.Equal(t, "Day 2", day.Title)
	require.Len(t, day.Stops, 1)
	assert.InDelta(t, 43.5, day.Stops[0].Latitude, 1e-9)
	assert.Equal(t, "attraction", day.Stops[0].Type)
	assert.False(t, itin.GeneratedAtUTC.IsZero())
}
