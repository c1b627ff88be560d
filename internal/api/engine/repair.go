package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// maxRepairRounds bounds the self-healing loop: one initial parse plus at most
// this many continuation calls before the payload is declared unrecoverable.
const maxRepairRounds = 3

const continuationInstruction = "The following JSON response was cut off mid-stream. " +
	"Continue it from the exact character where it stops so that the concatenation " +
	"of the two pieces forms one valid JSON document. Return ONLY the continuation, " +
	"with no markdown fences and without repeating any part of the original.\n\n" +
	"Truncated JSON:\n"

// parseWithRepair parses raw provider text into an itinerary, asking the same
// provider for a continuation whenever the text fails to parse as JSON. The
// returned int is the number of repair rounds actually performed, whether the
// call succeeds or not; callers surface it instead of keeping ambient state.
//
// Missing-field errors abort immediately: the JSON was structurally fine, so
// another continuation cannot help.
func parseWithRepair(ctx context.Context, gen textGenerator, logger *slog.Logger, raw string, prefs types.TravelPreferences, repairOpts GenOptions) (*types.Itinerary, int, error) {
	text := stripCodeFences(raw)
	repairs := 0

	for {
		itin, err := parseItinerary(text, prefs)
		if err == nil {
			if repairs > 0 {
				logger.InfoContext(ctx, "itinerary recovered after repair",
					slog.String("provider", gen.Name()),
					slog.Int("repair_rounds", repairs))
			}
			return itin, repairs, nil
		}

		var missing *types.MissingFieldError
		if errors.As(err, &missing) {
			return nil, repairs, &types.InvalidAIResponseError{Attempts: repairs, Err: err}
		}

		if repairs >= maxRepairRounds {
			return nil, repairs, &types.InvalidAIResponseError{Attempts: repairs, Err: err}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, repairs, ctxErr
		}

		depth := scanUnclosedDepth(text)
		logger.WarnContext(ctx, "itinerary JSON failed to parse, requesting continuation",
			slog.String("provider", gen.Name()),
			slog.Int("round", repairs+1),
			slog.Int("unclosed_depth", depth),
			slog.String("parse_error", err.Error()))

		continuation, genErr := gen.GenerateText(ctx, continuationInstruction+text, repairOpts)
		if genErr != nil {
			return nil, repairs, fmt.Errorf("continuation call failed: %w", genErr)
		}
		repairs++
		text += stripCodeFences(continuation)
	}
}

// scanUnclosedDepth walks the text tracking brace/bracket nesting while
// skipping string literals and escapes. A positive result means the document
// stops inside that many unclosed containers, the classic truncation shape.
func scanUnclosedDepth(s string) int {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				depth++
			}
		case '}', ']':
			if !inString {
				depth--
			}
		}
	}
	return depth
}
