package postgre

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rag-intent-chat/internal/session/repository"
	"rag-intent-chat/pkg/log"
)

type implRepository struct {
	db  *gorm.DB
	l   log.Logger
	now func() time.Time
}

// New creates a gorm-backed Repository for chat sessions.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("session/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// Migrate creates or updates the chat_sessions and chat_messages tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&chatSession{}, &chatMessage{}); err != nil {
		return fmt.Errorf("session/repository/postgre: migrate: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/postgre.%s", method)
}
