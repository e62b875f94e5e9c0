package postgre

import (
	"time"

	"rag-intent-chat/internal/session"
)

type chatSession struct {
	ID        string    `gorm:"primaryKey;type:text"`
	TenantID  string    `gorm:"type:text;not null;index:idx_chat_sessions_owner,priority:1"`
	UserID    string    `gorm:"type:text;not null;index:idx_chat_sessions_owner,priority:2"`
	Title     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

func (chatSession) TableName() string { return "chat_sessions" }

type chatMessage struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	SessionID    string    `gorm:"type:text;not null;index"`
	Prompt       string    `gorm:"type:text"`
	Completion   string    `gorm:"type:text"`
	Label        string    `gorm:"type:text"`
	ArtifactURI  string    `gorm:"type:text"`
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	CreatedAt    time.Time `gorm:"not null;index"`
}

func (chatMessage) TableName() string { return "chat_messages" }

func (m chatSession) toDomain() session.Session {
	return session.Session{
		ID:        m.ID,
		TenantID:  m.TenantID,
		UserID:    m.UserID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m chatMessage) toDomain() session.Message {
	return session.Message{
		ID:           m.ID,
		SessionID:    m.SessionID,
		Prompt:       m.Prompt,
		Completion:   m.Completion,
		Label:        m.Label,
		ArtifactURI:  m.ArtifactURI,
		InputTokens:  m.InputTokens,
		OutputTokens: m.OutputTokens,
		TotalTokens:  m.TotalTokens,
		CreatedAt:    m.CreatedAt,
	}
}
