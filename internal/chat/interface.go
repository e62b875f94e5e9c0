package chat

import "context"

// UseCase answers one chat request end to end.
type UseCase interface {
	// Handle returns an error only for invalid input. Every downstream failure
	// degrades into the answer text instead.
	Handle(ctx context.Context, input HandleInput) (HandleOutput, error)
}
