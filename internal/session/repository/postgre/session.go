package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rag-intent-chat/internal/session"
	repo "rag-intent-chat/internal/session/repository"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repo.CreateSessionOptions) error {
	now := r.now().UTC()
	m := chatSession{
		ID:        opt.ID,
		TenantID:  opt.TenantID,
		UserID:    opt.UserID,
		Title:     opt.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&m).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) GetOneSession(ctx context.Context, id string) (session.Session, error) {
	var m chatSession
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return session.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneSession"), err)
		return session.Session{}, repo.ErrFailedToGet
	}
	return m.toDomain(), nil
}

func (r *implRepository) TouchSession(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&chatSession{}).
		Where("id = ?", id).
		Update("updated_at", r.now().UTC()).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchSession"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func (r *implRepository) ListSessions(ctx context.Context, opt repo.ListSessionsOptions) ([]session.Session, int, error) {
	q := r.db.WithContext(ctx).Model(&chatSession{}).
		Where("tenant_id = ? AND user_id = ?", opt.TenantID, opt.UserID).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListSessions"), err)
		return nil, 0, repo.ErrFailedToList
	}

	var rows []chatSession
	page := q.Order("updated_at DESC")
	if opt.Limit > 0 {
		page = page.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		page = page.Offset(opt.Offset)
	}
	if err := page.Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSessions"), err)
		return nil, 0, repo.ErrFailedToList
	}

	sessions := make([]session.Session, len(rows))
	for i, m := range rows {
		sessions[i] = m.toDomain()
	}
	return sessions, int(total), nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&chatMessage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&chatSession{}).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
