package tools

import (
	"rag-intent-chat/internal/agent"
	"rag-intent-chat/internal/document"
	"rag-intent-chat/internal/schema"
)

// Domain is a structured-query domain exposed as a SQL tool.
type Domain struct {
	Label       string
	Description string
	Tables      []string
}

// NewRegistry registers search_manuals and one query tool per domain.
// A nil searcher or executor skips the tools that need it.
func NewRegistry(searcher document.Searcher, executor schema.QueryExecutor, domains []Domain) *agent.ToolRegistry {
	registry := agent.NewToolRegistry()
	if searcher != nil {
		registry.Register(NewSearchManualsTool(searcher))
	}
	if executor != nil {
		for _, d := range domains {
			registry.Register(NewQueryDetailsTool(d.Label, d.Description, d.Tables, executor))
		}
	}
	return registry
}
