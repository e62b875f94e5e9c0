package qdrant

import (
	"context"
	"fmt"
	"strings"

	"rag-intent-chat/internal/document"
	pkgQdrant "rag-intent-chat/pkg/qdrant"
)

func (r *implRepository) Search(ctx context.Context, query string) ([]document.Fragment, error) {
	if strings.TrimSpace(query) == "" {
		return nil, document.ErrEmptyQuery
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "document.qdrant.Search: failed to embed query: %v", err)
		return nil, fmt.Errorf("%w: %v", document.ErrEmbedding, err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       r.topK,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "document.qdrant.Search: failed to search %s: %v", r.collectionName, err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	fragments := make([]document.Fragment, 0, len(resp.Result))
	for _, p := range resp.Result {
		chunk, _ := p.Payload[document.PayloadChunk].(string)
		if chunk == "" {
			r.l.Warnf(ctx, "document.qdrant.Search: point %v has no chunk payload", p.ID)
			continue
		}
		title, _ := p.Payload[document.PayloadTitle].(string)
		fragments = append(fragments, document.Fragment{Title: title, Chunk: chunk, Score: p.Score})
	}

	r.l.Infof(ctx, "document.qdrant.Search: %d fragments for query", len(fragments))
	return fragments, nil
}
