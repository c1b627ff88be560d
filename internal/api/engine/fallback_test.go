package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broccolitours/itinerary-api/internal/api/catalog"
	"github.com/broccolitours/itinerary-api/internal/types"
)

// scriptedEngine returns a fixed suggestion or error; it stands in for a
// full provider pipeline in fallback tests.
type scriptedEngine struct {
	suggestion *Suggestion
	err        error
	calls      int
}

func (s *scriptedEngine) Suggest(ctx context.Context, prefs types.TravelPreferences) (*Suggestion, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.suggestion, nil
}

func okSuggestion() *Suggestion {
	return &Suggestion{Itinerary: &types.Itinerary{ID: "x", Title: "t"}}
}

func TestResilient_PrimarySuccess(t *testing.T) {
	primary := &scriptedEngine{suggestion: okSuggestion()}
	secondary := &scriptedEngine{suggestion: okSuggestion()}
	stub := NewStubEngine(catalog.NewLocationCatalog(), testLogger())

	s, err := NewResilient(primary, secondary, stub, testLogger()).Suggest(context.Background(), types.TravelPreferences{})

	require.NoError(t, err)
	assert.Equal(t, TierPrimary, s.Tier)
	assert.Equal(t, 0, secondary.calls, "secondary must not run when primary succeeds")
}

func TestResilient_SecondaryTakesOverAndKeepsRepairCount(t *testing.T) {
	primary := &scriptedEngine{err: &types.InvalidAIResponseError{Attempts: 3, Err: errors.New("unparseable")}}
	secondary := &scriptedEngine{suggestion: &Suggestion{Itinerary: &types.Itinerary{ID: "y"}, RepairAttempts: 1}}
	stub := NewStubEngine(catalog.NewLocationCatalog(), testLogger())

	s, err := NewResilient(primary, secondary, stub, testLogger()).Suggest(context.Background(), types.TravelPreferences{})

	require.NoError(t, err)
	assert.Equal(t, TierSecondary, s.Tier)
	assert.Equal(t, 3, s.RepairAttempts, "repairs spent on the failed primary must survive")
}

func TestResilient_StubWhenAllProvidersFail(t *testing.T) {
	primary := &scriptedEngine{err: &types.ProviderError{Provider: "gemini", Err: errors.New("boom")}}
	secondary := &scriptedEngine{err: &types.ExtractionError{Provider: "openai", Reason: "no choices"}}
	stub := NewStubEngine(catalog.NewLocationCatalog(), testLogger())

	s, err := NewResilient(primary, secondary, stub, testLogger()).Suggest(context.Background(), types.TravelPreferences{WeekendTrip: true})

	require.NoError(t, err)
	assert.Equal(t, TierStub, s.Tier)
	assert.Len(t, s.Itinerary.Days, 2)
}

func TestResilient_NoSecondaryConfigured(t *testing.T) {
	primary := &scriptedEngine{err: &types.ProviderError{Provider: "gemini", Err: errors.New("boom")}}
	stub := NewStubEngine(catalog.NewLocationCatalog(), testLogger())

	s, err := NewResilient(primary, nil, stub, testLogger()).Suggest(context.Background(), types.TravelPreferences{})

	require.NoError(t, err)
	assert.Equal(t, TierStub, s.Tier)
}

func TestResilient_StubOutputMatchesDirectStubCall(t *testing.T) {
	primary := &scriptedEngine{err: &types.ProviderError{Provider: "gemini", Err: errors.New("boom")}}
	stub := NewStubEngine(catalog.NewLocationCatalog(), testLogger())
	prefs := types.TravelPreferences{PeriodType: types.PeriodMonth, Month: intPtr(7), Year: intPtr(2025), TripDurationDays: intPtr(4)}

	viaChain, err := NewResilient(primary, nil, stub, testLogger()).Suggest(context.Background(), prefs)
	require.NoError(t, err)
	direct, err := stub.Suggest(context.Background(), prefs)
	require.NoError(t, err)

	// IDs and timestamps differ per call; the structural output must not.
	assert.Equal(t, direct.Itinerary.Title, viaChain.Itinerary.Title)
	assert.Equal(t, direct.Itinerary.Period, viaChain.Itinerary.Period)
	require.Len(t, viaChain.Itinerary.Days, len(direct.Itinerary.Days))
	for i := range direct.Itinerary.Days {
		assert.Equal(t, direct.Itinerary.Days[i].Stops, viaChain.Itinerary.Days[i].Stops)
	}
}

func TestResilient_CancellationNeverDegrades(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	primary := &scriptedEngine{suggestion: okSuggestion()}
	secondary := &scriptedEngine{suggestion: okSuggestion()}
	stub := NewStubEngine(catalog.NewLocationCatalog(), testLogger())

	_, err := NewResilient(primary, secondary, stub, testLogger()).Suggest(ctx, types.TravelPreferences{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, secondary.calls)
}
