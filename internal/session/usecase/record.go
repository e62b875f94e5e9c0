package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"rag-intent-chat/internal/model"
	"rag-intent-chat/internal/session"
	repo "rag-intent-chat/internal/session/repository"
)

// RecordTurn creates the session on first use and appends the turn.
func (uc *implUseCase) RecordTurn(ctx context.Context, sc model.Scope, turn model.Turn) error {
	if sc.TenantID == "" || sc.UserID == "" || sc.SessionID == "" {
		return session.ErrMissingScope
	}

	existing, err := uc.repo.GetOneSession(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.RecordTurn GetOneSession: %v", err)
		return err
	}

	switch {
	case existing.ID == "":
		err = uc.repo.CreateSession(ctx, repo.CreateSessionOptions{
			ID:       sc.SessionID,
			TenantID: sc.TenantID,
			UserID:   sc.UserID,
			Title:    title(turn.Prompt),
		})
	case !owns(existing, sc):
		return session.ErrSessionNotFound
	default:
		err = uc.repo.TouchSession(ctx, sc.SessionID)
	}
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.RecordTurn: %v", err)
		return err
	}

	if err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ID:           uc.newID(),
		SessionID:    sc.SessionID,
		Prompt:       turn.Prompt,
		Completion:   turn.Completion,
		Label:        turn.Label,
		ArtifactURI:  turn.ArtifactURI,
		InputTokens:  turn.InputTokens,
		OutputTokens: turn.OutputTokens,
		TotalTokens:  turn.TotalTokens,
	}); err != nil {
		uc.l.Errorf(ctx, "session.usecase.RecordTurn CreateMessage: %v", err)
		return err
	}
	return nil
}

func owns(s session.Session, sc model.Scope) bool {
	return s.TenantID == sc.TenantID && s.UserID == sc.UserID
}

func title(prompt string) string {
	t := strings.Join(strings.Fields(prompt), " ")
	if utf8.RuneCountInString(t) <= session.TitleMaxRunes {
		return t
	}
	r := []rune(t)
	return string(r[:session.TitleMaxRunes-1]) + "…"
}
