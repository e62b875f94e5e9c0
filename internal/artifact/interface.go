package artifact

import (
	"context"
	"io"

	"rag-intent-chat/pkg/assistant"
)

// Generator runs an ephemeral code-execution agent that produces one file.
type Generator interface {
	// Generate never returns an error; failures are reported in GenerateOutput.
	Generate(ctx context.Context, input GenerateInput) GenerateOutput
	// Shutdown waits for background agent cleanup.
	Shutdown(ctx context.Context) error
}

// Publisher stores artifact bytes and issues retrieval handles.
type Publisher interface {
	Publish(ctx context.Context, data []byte, agentID, fileType string) (string, error)
}

// Store is the blob store behind the Publisher.
type Store interface {
	// Upload writes name, overwriting an existing object.
	Upload(ctx context.Context, name, contentType string, data []byte) error
	Exists(ctx context.Context, name string) (bool, error)
	// Open returns ErrObjectNotFound when name does not exist.
	Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
}

// Signer issues and verifies time-limited retrieval tokens.
type Signer interface {
	Issue(name string) (token string, err error)
	Verify(token string) (name string, err error)
}

// AgentClient is the code-execution agent API.
type AgentClient interface {
	CreateAssistant(ctx context.Context, req assistant.CreateAssistantRequest) (*assistant.Assistant, error)
	DeleteAssistant(ctx context.Context, assistantID string) error
	CreateThread(ctx context.Context) (*assistant.Thread, error)
	CreateMessage(ctx context.Context, threadID, content string) (*assistant.Message, error)
	ListMessages(ctx context.Context, threadID string) ([]assistant.Message, error)
	CreateRun(ctx context.Context, threadID, assistantID string) (*assistant.Run, error)
	GetRun(ctx context.Context, threadID, runID string) (*assistant.Run, error)
	CancelRun(ctx context.Context, threadID, runID string) error
	FileContent(ctx context.Context, fileID string) ([]byte, error)
}
