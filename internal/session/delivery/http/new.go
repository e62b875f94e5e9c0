package http

import (
	"rag-intent-chat/internal/session"
	"rag-intent-chat/pkg/log"
)

type handler struct {
	l  log.Logger
	uc session.UseCase
}

// New creates the HTTP handler for the session domain.
func New(l log.Logger, uc session.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
