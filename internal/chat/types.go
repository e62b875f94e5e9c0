package chat

import "rag-intent-chat/internal/model"

type HandleInput struct {
	UserID    string `validate:"required,notblank"`
	SessionID string `validate:"required,notblank"`
	TenantID  string `validate:"required,notblank"`
	Prompt    string `validate:"required,notblank"`
}

// Scope returns the identity the request is made on behalf of.
func (in HandleInput) Scope() model.Scope {
	return model.Scope{TenantID: in.TenantID, UserID: in.UserID, SessionID: in.SessionID}
}

type HandleOutput struct {
	AnswerText string
	// ArtifactURI is empty unless a file was generated and published.
	ArtifactURI   string
	Label         string
	WantsArtifact bool
	Usage         Usage
}

// Usage is the token consumption summed over every model call of a request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
