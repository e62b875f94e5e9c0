package http

import (
	"rag-intent-chat/internal/chat"
	"rag-intent-chat/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates the HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
