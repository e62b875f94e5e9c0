package pgvector

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"rag-intent-chat/internal/document"
)

type fragmentRow struct {
	Title string
	Chunk string
	Score float64
}

func (r *implRepository) Search(ctx context.Context, query string) ([]document.Fragment, error) {
	if strings.TrimSpace(query) == "" {
		return nil, document.ErrEmptyQuery
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "document.pgvector.Search: failed to embed query: %v", err)
		return nil, fmt.Errorf("%w: %v", document.ErrEmbedding, err)
	}
	vec := pgvector.NewVector(vectors[0])

	// <=> is cosine distance; score is reported as similarity.
	var rows []fragmentRow
	err = r.db.WithContext(ctx).
		Table(r.table).
		Select("title, chunk, 1 - (embedding <=> ?) AS score", vec).
		Order(gorm.Expr("embedding <=> ?", vec)).
		Limit(r.topK).
		Scan(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "document.pgvector.Search: failed to search %s: %v", r.table, err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	fragments := make([]document.Fragment, 0, len(rows))
	for _, row := range rows {
		fragments = append(fragments, document.Fragment{Title: row.Title, Chunk: row.Chunk, Score: row.Score})
	}
	return fragments, nil
}
