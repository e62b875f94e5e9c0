package artifact

import "errors"

var (
	ErrGenerationFailed = errors.New("artifact generation failed")
	ErrPublishFailed    = errors.New("artifact publish failed")
	ErrRunTimeout       = errors.New("artifact: run did not finish in time")
	ErrRunNotCompleted  = errors.New("artifact: run did not complete")
	ErrNoFile           = errors.New("artifact: run produced no file")
	ErrObjectNotFound   = errors.New("artifact: object not found")
	ErrInvalidName      = errors.New("artifact: invalid object name")
	ErrInvalidToken     = errors.New("artifact: invalid or expired token")
	ErrEmptyData        = errors.New("artifact: empty data")
)
