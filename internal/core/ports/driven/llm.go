package driven

import "context"

// LLMService provides language model operations for document assistance.
// This is an optional service - when nil, AI enhancement features are
// disabled and the assist service returns domain.ErrAssistUnavailable.
//
// Implementations may include:
//   - Ollama (local models)
//   - LM Studio (local inference server)
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test
	// request. Used at startup before enabling assist features.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
