package tools

import (
	"context"
	"fmt"

	"rag-intent-chat/internal/agent"
	"rag-intent-chat/internal/document"
)

// SearchManualsTool searches the indexed product manuals.
type SearchManualsTool struct {
	searcher document.Searcher
}

// NewSearchManualsTool creates a new search manuals tool.
func NewSearchManualsTool(searcher document.Searcher) agent.Tool {
	return &SearchManualsTool{searcher: searcher}
}

func (t *SearchManualsTool) Name() string {
	return "search_manuals"
}

func (t *SearchManualsTool) Description() string {
	return "Search the product manuals using a natural language query. Returns the most relevant manual passages."
}

func (t *SearchManualsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Natural language search query",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchManualsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	fragments, err := t.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(fragments))
	for _, f := range fragments {
		results = append(results, map[string]interface{}{
			"title": f.Title,
			"chunk": f.Chunk,
			"score": f.Score,
		})
	}

	return map[string]interface{}{
		"count":   len(results),
		"results": results,
	}, nil
}
