package repository

type CreateSessionOptions struct {
	ID       string
	TenantID string
	UserID   string
	Title    string
}

// ListSessionsOptions filters by owner. Results are newest first.
type ListSessionsOptions struct {
	TenantID string
	UserID   string
	Limit    int
	Offset   int
}

type CreateMessageOptions struct {
	ID           string
	SessionID    string
	Prompt       string
	Completion   string
	Label        string
	ArtifactURI  string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
