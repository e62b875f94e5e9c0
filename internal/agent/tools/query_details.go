package tools

import (
	"context"
	"fmt"
	"strings"

	"rag-intent-chat/internal/agent"
	"rag-intent-chat/internal/schema"
)

// QueryDetailsTool runs a read-only SQL query for one structured-query domain.
type QueryDetailsTool struct {
	domain      string
	description string
	tables      []string
	executor    schema.QueryExecutor
}

// NewQueryDetailsTool creates the query_<domain>_details tool.
func NewQueryDetailsTool(domain, description string, tables []string, executor schema.QueryExecutor) agent.Tool {
	return &QueryDetailsTool{
		domain:      domain,
		description: description,
		tables:      tables,
		executor:    executor,
	}
}

// QueryToolName is the tool name registered for a domain.
func QueryToolName(domain string) string {
	return "query_" + domain + "_details"
}

func (t *QueryDetailsTool) Name() string {
	return QueryToolName(t.domain)
}

func (t *QueryDetailsTool) Description() string {
	return fmt.Sprintf("Executes a read-only PostgreSQL SELECT query to provide information about %s (%s). "+
		"Only these tables may be used: %s.", t.domain, t.description, strings.Join(t.tables, ", "))
}

func (t *QueryDetailsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "A single SELECT statement",
			},
		},
		"required": []string{"query"},
	}
}

func (t *QueryDetailsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	result, err := t.executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return result, nil
}
