package catalog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broccolitours/itinerary-api/internal/types"
)

func TestLocationCatalog_FindByIDCaseInsensitive(t *testing.T) {
	c := NewLocationCatalog()

	loc := c.FindByID("IT-TUSCANY")

	require.NotNil(t, loc)
	assert.Equal(t, "Toscana Slow Roads", loc.Name)
	assert.Nil(t, c.FindByID("nope"))
}

func TestLocationCatalog_GetAllReturnsCopy(t *testing.T) {
	c := NewLocationCatalog()

	first := c.GetAll()
	first[0].Name = "mutated"

	assert.NotEqual(t, "mutated", c.GetAll()[0].Name)
}

func TestRentalCatalog_SortedByCountryThenCity(t *testing.T) {
	stations := NewRentalLocationCatalog().GetAll()

	require.NotEmpty(t, stations)
	sorted := sort.SliceIsSorted(stations, func(i, j int) bool {
		if stations[i].Country != stations[j].Country {
			return stations[i].Country < stations[j].Country
		}
		return stations[i].City < stations[j].City
	})
	assert.True(t, sorted)
}

func newTestHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewLocationCatalog(), NewRentalLocationCatalog(), NewCamperCatalog(), logger)
}

func TestHandler_GetLocations(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)

	newTestHandler().GetLocations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var locations []types.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locations))
	assert.NotEmpty(t, locations)
}

func TestHandler_GetCampers(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/campers", nil)

	newTestHandler().GetCampers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var campers []types.Camper
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campers))
	assert.NotEmpty(t, campers)
}

func TestHandler_GetRentalLocations(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rentallocations", nil)

	newTestHandler().GetRentalLocations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stations []types.RentalLocation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stations))
	assert.NotEmpty(t, stations)
}
