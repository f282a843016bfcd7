package driving

import "context"

// AssistService provides AI-backed markdown editing operations.
// All methods return domain.ErrAssistUnavailable when no LLM service is
// configured.
type AssistService interface {
	// Enhance improves the given markdown while preserving its structure.
	// When prompt is non-empty it replaces the default instruction.
	Enhance(ctx context.Context, content, prompt string) (string, error)

	// Generate creates new markdown content from a user prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// FixGrammar corrects grammar and spelling without rewording.
	FixGrammar(ctx context.Context, content string) (string, error)

	// Available reports whether an LLM service is configured.
	Available() bool
}
