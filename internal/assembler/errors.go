package assembler

import "errors"

var (
	ErrUnknownLabel    = errors.New("assembler: no context branch for label")
	ErrRetrievalFailed = errors.New("assembler: retrieval failed")
)
