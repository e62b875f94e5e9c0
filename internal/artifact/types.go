package artifact

import "rag-intent-chat/pkg/assistant"

// GenerateInput is the artifact request built from one answered turn.
type GenerateInput struct {
	Instructions string
	AnswerText   string
	Utterance    string
	FileType     string
}

// GenerateOutput never carries Data unless Success is set.
type GenerateOutput struct {
	Success  bool
	Data     []byte
	FileType string
	AgentID  string
	Status   assistant.RunStatus
	Err      error
}

// ObjectInfo describes a stored artifact.
type ObjectInfo struct {
	Name        string
	ContentType string
	Size        int64
}
