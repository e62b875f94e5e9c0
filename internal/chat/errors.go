package chat

import (
	"errors"
	"fmt"

	"rag-intent-chat/internal/artifact"
	"rag-intent-chat/internal/intent"
)

var ErrInvalidRequest = errors.New("invalid chat request")

var (
	ErrClassificationDegraded   = intent.ErrClassificationDegraded
	ErrAnswerGenerationFailed   = errors.New("answer generation failed")
	ErrArtifactGenerationFailed = artifact.ErrGenerationFailed
	ErrArtifactPublishFailed    = artifact.ErrPublishFailed
)

// ValidationError reports the first invalid field of a HandleInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRequest, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
