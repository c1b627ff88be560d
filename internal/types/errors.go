package types

import "fmt"

// ProviderError covers transport-level provider failures: network errors,
// timeouts and non-2xx statuses. The fallback orchestrator treats it as total
// provider failure; it is never retried inside a provider client.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider call failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ExtractionError means the provider returned a well-formed envelope but the
// expected content path (candidates/content/parts for Gemini,
// choices/message/content for OpenAI) was absent or empty.
type ExtractionError struct {
	Provider string
	Reason   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s response missing content: %s", e.Provider, e.Reason)
}

// InvalidAIResponseError means the payload text never became parseable JSON,
// even after the repair rounds, or a required field was semantically missing.
type InvalidAIResponseError struct {
	Attempts int
	Err      error
}

func (e *InvalidAIResponseError) Error() string {
	return fmt.Sprintf("invalid AI response after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *InvalidAIResponseError) Unwrap() error { return e.Err }

// MissingFieldError is raised when the JSON parsed fine but a required field
// (id, title, period.type, a stop's name/latitude/longitude) is structurally
// absent. Repair never targets this: it fixes syntax, not semantics.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q missing from AI response", e.Field)
}
