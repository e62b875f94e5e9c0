package qwen

import "context"

// IQwen is a client for the OpenAI-compatible Qwen chat completions API.
// Implementations are safe for concurrent use.
type IQwen interface {
	// GenerateContent returns one choice per requested sample, capped at MaxChoices.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New creates a new Qwen client with the given configuration
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
