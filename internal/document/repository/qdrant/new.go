package qdrant

import (
	"rag-intent-chat/internal/document"
	pkgLog "rag-intent-chat/pkg/log"
	pkgQdrant "rag-intent-chat/pkg/qdrant"
	"rag-intent-chat/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	topK           int
	l              pkgLog.Logger
}

// New creates a manual searcher backed by a Qdrant collection. Points carry
// "title" and "chunk" payload fields.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, topK int, l pkgLog.Logger) document.Searcher {
	if topK <= 0 {
		topK = document.DefaultTopK
	}
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		topK:           topK,
		l:              l,
	}
}
