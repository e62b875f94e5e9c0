package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMissingScope    = errors.New("tenant, user and session ids are required")
)
