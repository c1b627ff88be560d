package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// fakeGenerator replays canned responses and counts calls; it stands in for a
// provider SDK on both the initial call and the repair loop.
type fakeGenerator struct {
	name      string
	responses []string
	errs      []error
	calls     int
	lastPrompt string
	lastOpts   GenOptions
}

func (f *fakeGenerator) Name() string {
	if f.name == "" {
		return "fake"
	}
	return f.name
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string, opts GenOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	idx := f.calls
	f.calls++
	f.lastPrompt = prompt
	f.lastOpts = opts
	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return "", errors.New("fakeGenerator: no response scripted for call")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const truncatedHead = `{"id": "abc", "title": "Tuscany loop", "period": {"type": "Month", "month": 7, "year": 2025}, "days": [{"dayNumber": 1, "stops": [{"name": "Piazzale", "latitude": 43.76, "longi`

const continuationTail = `tude": 11.26}]}], "tips": []}`

func TestParseWithRepair_ValidOnFirstParse(t *testing.T) {
	gen := &fakeGenerator{}

	itin, repairs, err := parseWithRepair(context.Background(), gen, testLogger(), validItineraryJSON, types.TravelPreferences{}, repairGenOptions)

	require.NoError(t, err)
	assert.Equal(t, 0, repairs)
	assert.Equal(t, "abc-123", itin.ID)
	assert.Equal(t, 0, gen.calls, "no repair call expected for valid JSON")
}

func TestParseWithRepair_OneRoundRecoversTruncation(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"```json\n" + continuationTail + "\n```"}}

	itin, repairs, err := parseWithRepair(context.Background(), gen, testLogger(), truncatedHead, types.TravelPreferences{}, repairGenOptions)

	require.NoError(t, err)
	assert.Equal(t, 1, repairs)
	assert.Equal(t, 1, gen.calls)
	require.Len(t, itin.Days, 1)
	assert.InDelta(t, 11.26, itin.Days[0].Stops[0].Longitude, 1e-9)

	assert.Contains(t, gen.lastPrompt, truncatedHead, "continuation prompt must embed the truncated text verbatim")
	assert.Contains(t, gen.lastPrompt, "ONLY the continuation")
	assert.Equal(t, repairGenOptions, gen.lastOpts)
}

func TestParseWithRepair_GivesUpAfterThreeRounds(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"garbage", "more garbage", "still garbage", "never requested"}}

	_, repairs, err := parseWithRepair(context.Background(), gen, testLogger(), `{"id":`, types.TravelPreferences{}, repairGenOptions)

	require.Error(t, err)
	assert.Equal(t, 3, repairs)
	assert.Equal(t, 3, gen.calls, "a fourth repair call must never happen")

	var invalid *types.InvalidAIResponseError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 3, invalid.Attempts)
}

func TestParseWithRepair_MissingFieldNotRepaired(t *testing.T) {
	gen := &fakeGenerator{}

	_, repairs, err := parseWithRepair(context.Background(), gen, testLogger(), `{"title": "t", "period": {"type": "Month"}}`, types.TravelPreferences{}, repairGenOptions)

	require.Error(t, err)
	assert.Equal(t, 0, repairs)
	assert.Equal(t, 0, gen.calls, "repair fixes syntax, not missing fields")

	var invalid *types.InvalidAIResponseError
	require.ErrorAs(t, err, &invalid)
	var missing *types.MissingFieldError
	assert.ErrorAs(t, err, &missing)
}

func TestParseWithRepair_CancellationStopsTheLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gen := &fakeGenerator{responses: []string{continuationTail}}

	_, _, err := parseWithRepair(ctx, gen, testLogger(), truncatedHead, types.TravelPreferences{}, repairGenOptions)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, gen.calls)
}

func TestScanUnclosedDepth(t *testing.T) {
	assert.Equal(t, 0, scanUnclosedDepth(`{"a": [1, 2]}`))
	assert.Equal(t, 2, scanUnclosedDepth(`{"a": [1, 2`))
	assert.Equal(t, 1, scanUnclosedDepth(`{"brace in string": "}{]["`))
	assert.Equal(t, 1, scanUnclosedDepth(`{"escaped quote": "a\"}"`))
}
