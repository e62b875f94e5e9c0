package http

import (
	"rag-intent-chat/internal/artifact"
	"rag-intent-chat/pkg/log"
)

type handler struct {
	l      log.Logger
	store  artifact.Store
	signer artifact.Signer
}

// New creates the artifact download handler.
func New(l log.Logger, store artifact.Store, signer artifact.Signer) *handler {
	return &handler{l: l, store: store, signer: signer}
}
