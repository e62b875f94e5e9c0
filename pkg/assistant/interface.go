package assistant

import "context"

// IAssistant is a client for an Assistants v2 compatible API with the
// code interpreter tool. Implementations are safe for concurrent use.
type IAssistant interface {
	CreateAssistant(ctx context.Context, req CreateAssistantRequest) (*Assistant, error)
	DeleteAssistant(ctx context.Context, assistantID string) error
	CreateThread(ctx context.Context) (*Thread, error)
	CreateMessage(ctx context.Context, threadID, content string) (*Message, error)
	ListMessages(ctx context.Context, threadID string) ([]Message, error)
	CreateRun(ctx context.Context, threadID, assistantID string) (*Run, error)
	GetRun(ctx context.Context, threadID, runID string) (*Run, error)
	CancelRun(ctx context.Context, threadID, runID string) error
	FileContent(ctx context.Context, fileID string) ([]byte, error)
}

// New creates a new client with the given configuration
func New(cfg Config) (IAssistant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newAssistantImpl(cfg), nil
}
