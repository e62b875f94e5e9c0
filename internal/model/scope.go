package model

// Scope identifies who a request is made on behalf of.
type Scope struct {
	TenantID  string
	UserID    string
	SessionID string
}

// Turn is one prompt/answer exchange of a session.
type Turn struct {
	Prompt       string
	Completion   string
	Label        string
	ArtifactURI  string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
