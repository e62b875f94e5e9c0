package postgre

import (
	"context"

	"rag-intent-chat/internal/session"
	repo "rag-intent-chat/internal/session/repository"
)

func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) error {
	m := chatMessage{
		ID:           opt.ID,
		SessionID:    opt.SessionID,
		Prompt:       opt.Prompt,
		Completion:   opt.Completion,
		Label:        opt.Label,
		ArtifactURI:  opt.ArtifactURI,
		InputTokens:  opt.InputTokens,
		OutputTokens: opt.OutputTokens,
		TotalTokens:  opt.TotalTokens,
		CreatedAt:    r.now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ListMessages returns the turns of a session, oldest first.
func (r *implRepository) ListMessages(ctx context.Context, sessionID string) ([]session.Message, error) {
	var rows []chatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}

	messages := make([]session.Message, len(rows))
	for i, m := range rows {
		messages[i] = m.toDomain()
	}
	return messages, nil
}
