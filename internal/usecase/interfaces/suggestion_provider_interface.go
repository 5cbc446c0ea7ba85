package interfaces

import "context"

// ISuggestionProvider abstracts the external AI provider (e.g. Gemini).
//
// Generate returns the provider's raw text for a prompt. The response is
// untrusted: the suggestion use case strips formatting fences and parses it
// into a validated shape before anything touches the draft.

type ISuggestionProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
