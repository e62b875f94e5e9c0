package repository

import (
	"context"

	"rag-intent-chat/internal/session"
)

// Repository is the session store.
type Repository interface {
	SessionRepository
	MessageRepository
}

type SessionRepository interface {
	// CreateSession is a no-op when the id already exists.
	CreateSession(ctx context.Context, opt CreateSessionOptions) error
	// GetOneSession returns a zero-value Session (ID == "") when not found.
	GetOneSession(ctx context.Context, id string) (session.Session, error)
	TouchSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context, opt ListSessionsOptions) ([]session.Session, int, error)
	// DeleteSession removes the session and its messages.
	DeleteSession(ctx context.Context, id string) error
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) error
	ListMessages(ctx context.Context, sessionID string) ([]session.Message, error)
}
