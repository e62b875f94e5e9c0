package session

import (
	"context"

	"rag-intent-chat/internal/model"
)

// Recorder persists chat turns.
type Recorder interface {
	RecordTurn(ctx context.Context, sc model.Scope, turn model.Turn) error
}

//go:generate mockery --name UseCase
type UseCase interface {
	Recorder
	ListSessions(ctx context.Context, sc model.Scope, input ListSessionsInput) (ListSessionsOutput, error)
	ListMessages(ctx context.Context, sc model.Scope, sessionID string) (ListMessagesOutput, error)
	Delete(ctx context.Context, sc model.Scope, sessionID string) error
}
