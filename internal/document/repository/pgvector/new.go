package pgvector

import (
	"gorm.io/gorm"

	"rag-intent-chat/internal/document"
	pkgLog "rag-intent-chat/pkg/log"
	"rag-intent-chat/pkg/voyage"
)

type implRepository struct {
	db       *gorm.DB
	embedder voyage.IVoyage
	table    string
	topK     int
	l        pkgLog.Logger
}

// New creates a manual searcher over a pgvector table with title, chunk and
// embedding columns.
func New(db *gorm.DB, embedder voyage.IVoyage, table string, topK int, l pkgLog.Logger) document.Searcher {
	if topK <= 0 {
		topK = document.DefaultTopK
	}
	return &implRepository{
		db:       db,
		embedder: embedder,
		table:    table,
		topK:     topK,
		l:        l,
	}
}
