package engine

import (
	"context"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// Tier identifies which stage of the fallback chain produced an itinerary.
type Tier string

const (
	TierPrimary   Tier = "primary"
	TierSecondary Tier = "secondary"
	TierStub      Tier = "stub"
)

// Suggestion is the tagged result of a suggest call. Degradation is carried
// here explicitly instead of being sniffed out of the generated prose, and
// the repair counter travels with the result instead of living in ambient
// state, so concurrent requests can never cross-talk.
type Suggestion struct {
	Itinerary      *types.Itinerary
	Tier           Tier
	RepairAttempts int
}

// Engine turns travel preferences into an itinerary.
type Engine interface {
	Suggest(ctx context.Context, prefs types.TravelPreferences) (*Suggestion, error)
}

// GenOptions tunes a single text-generation call. The repair loop reuses the
// same provider with a colder, smaller configuration.
type GenOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// textGenerator is the seam between the shared pipeline and a provider SDK.
// Implementations return the assistant's raw text and classify failures as
// *types.ProviderError or *types.ExtractionError; cancellation passes through.
type textGenerator interface {
	Name() string
	GenerateText(ctx context.Context, prompt string, opts GenOptions) (string, error)
}
