package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// Resilient chains up to two AI providers and the stub. Each tier is tried in
// order and the first success wins; the result carries the tier that produced
// it so callers never have to infer degradation from the generated prose.
// Repair rounds spent on failed tiers are not lost: the final suggestion
// reports the maximum across every tier that ran.
type Resilient struct {
	primary   Engine
	secondary Engine
	fallback  Engine
	logger    *slog.Logger
}

var _ Engine = (*Resilient)(nil)

// NewResilient builds the fallback chain. secondary may be nil; primary and
// fallback must not be.
func NewResilient(primary, secondary, fallback Engine, logger *slog.Logger) *Resilient {
	return &Resilient{primary: primary, secondary: secondary, fallback: fallback, logger: logger}
}

func (r *Resilient) Suggest(ctx context.Context, prefs types.TravelPreferences) (*Suggestion, error) {
	maxRepairs := 0

	s, err := r.primary.Suggest(ctx, prefs)
	if err == nil {
		s.Tier = TierPrimary
		return s, nil
	}
	if isCancellation(ctx, err) {
		return nil, err
	}
	maxRepairs = maxInt(maxRepairs, repairAttemptsOf(err))
	r.logger.WarnContext(ctx, "primary engine failed, degrading",
		slog.String("error", err.Error()))

	if r.secondary != nil {
		s, err = r.secondary.Suggest(ctx, prefs)
		if err == nil {
			s.Tier = TierSecondary
			s.RepairAttempts = maxInt(maxRepairs, s.RepairAttempts)
			return s, nil
		}
		if isCancellation(ctx, err) {
			return nil, err
		}
		maxRepairs = maxInt(maxRepairs, repairAttemptsOf(err))
		r.logger.WarnContext(ctx, "secondary engine failed, degrading",
			slog.String("error", err.Error()))
	}

	s, err = r.fallback.Suggest(ctx, prefs)
	if err != nil {
		return nil, fmt.Errorf("fallback engine failed: %w", err)
	}
	s.Tier = TierStub
	s.RepairAttempts = maxInt(maxRepairs, s.RepairAttempts)
	r.logger.InfoContext(ctx, "served stub itinerary after provider failures",
		slog.Int("repair_attempts", s.RepairAttempts))
	return s, nil
}

// isCancellation tells a caller-driven abort apart from a provider failure.
// Only the latter may degrade to the next tier.
func isCancellation(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func repairAttemptsOf(err error) int {
	var invalid *types.InvalidAIResponseError
	if errors.As(err, &invalid) {
		return invalid.Attempts
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
