package usecase

import (
	"context"

	"rag-intent-chat/internal/model"
	"rag-intent-chat/internal/session"
	repo "rag-intent-chat/internal/session/repository"
)

// ListSessions returns the caller's sessions, most recently active first.
func (uc *implUseCase) ListSessions(ctx context.Context, sc model.Scope, input session.ListSessionsInput) (session.ListSessionsOutput, error) {
	if sc.TenantID == "" || sc.UserID == "" {
		return session.ListSessionsOutput{}, session.ErrMissingScope
	}

	limit := input.Limit
	if limit <= 0 || limit > session.MaxListLimit {
		limit = session.DefaultListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, total, err := uc.repo.ListSessions(ctx, repo.ListSessionsOptions{
		TenantID: sc.TenantID,
		UserID:   sc.UserID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.ListSessions: %v", err)
		return session.ListSessionsOutput{}, err
	}

	return session.ListSessionsOutput{
		Sessions: sessions,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope, sessionID string) (session.ListMessagesOutput, error) {
	s, err := uc.owned(ctx, sc, sessionID)
	if err != nil {
		return session.ListMessagesOutput{}, err
	}

	messages, err := uc.repo.ListMessages(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.ListMessages: %v", err)
		return session.ListMessagesOutput{}, err
	}
	return session.ListMessagesOutput{Session: s, Messages: messages}, nil
}

// Delete removes a session and its messages. Sessions of other users are
// reported as not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, sessionID string) error {
	if _, err := uc.owned(ctx, sc, sessionID); err != nil {
		return err
	}
	if err := uc.repo.DeleteSession(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) owned(ctx context.Context, sc model.Scope, sessionID string) (session.Session, error) {
	if sc.TenantID == "" || sc.UserID == "" || sessionID == "" {
		return session.Session{}, session.ErrMissingScope
	}
	s, err := uc.repo.GetOneSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.owned GetOneSession: %v", err)
		return session.Session{}, err
	}
	if s.ID == "" || !owns(s, sc) {
		return session.Session{}, session.ErrSessionNotFound
	}
	return s, nil
}
