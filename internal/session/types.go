package session

import "time"

// Session groups the turns of one conversation.
type Session struct {
	ID        string
	TenantID  string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one persisted turn.
type Message struct {
	ID           string
	SessionID    string
	Prompt       string
	Completion   string
	Label        string
	ArtifactURI  string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	CreatedAt    time.Time
}

type ListSessionsInput struct {
	Limit  int
	Offset int
}

type ListSessionsOutput struct {
	Sessions []Session
	Total    int
	Limit    int
	Offset   int
}

type ListMessagesOutput struct {
	Session  Session
	Messages []Message
}
