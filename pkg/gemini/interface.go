package gemini

import "context"

// IGemini is a client for the generateContent endpoint. Implementations are
// safe for concurrent use.
type IGemini interface {
	// GenerateContent returns one entry per requested candidate, capped at
	// MaxCandidateCount.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

var _ IGemini = (*geminiImpl)(nil)

// New validates cfg and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
