package gateway

import "errors"

var (
	ErrEmptyConversation        = errors.New("gateway: conversation has no messages")
	ErrEmptyCompletion          = errors.New("gateway: model returned no completion")
	ErrToolStepsExceeded        = errors.New("gateway: tool step limit exceeded")
	ErrToolsWithMultipleResults = errors.New("gateway: tool auto-invocation supports a single result")
)
