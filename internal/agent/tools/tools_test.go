package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rag-intent-chat/internal/agent/tools"
	"rag-intent-chat/internal/document"
	"rag-intent-chat/internal/schema"
)

type mockSearcher struct {
	fragments []document.Fragment
	err       error
	lastQuery string
}

func (m *mockSearcher) Search(ctx context.Context, query string) ([]document.Fragment, error) {
	m.lastQuery = query
	return m.fragments, m.err
}

type mockExecutor struct {
	result    schema.QueryResult
	err       error
	lastQuery string
}

func (m *mockExecutor) Query(ctx context.Context, statement string) (schema.QueryResult, error) {
	m.lastQuery = statement
	return m.result, m.err
}

func TestSearchManualsTool(t *testing.T) {
	searcher := &mockSearcher{fragments: []document.Fragment{{Title: "Model Y", Chunk: "Open the glovebox.", Score: 0.9}}}
	tool := tools.NewSearchManualsTool(searcher)

	if tool.Name() != "search_manuals" {
		t.Errorf("unexpected name %s", tool.Name())
	}

	t.Run("Success", func(t *testing.T) {
		res, err := tool.Execute(context.Background(), map[string]interface{}{"query": "cabin filter"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := res.(map[string]interface{})
		if out["count"] != 1 || searcher.lastQuery != "cabin filter" {
			t.Errorf("unexpected result: %+v", out)
		}
	})

	t.Run("Missing query", func(t *testing.T) {
		if _, err := tool.Execute(context.Background(), map[string]interface{}{}); err == nil {
			t.Error("expected error for missing query")
		}
	})

	t.Run("Search error", func(t *testing.T) {
		failing := tools.NewSearchManualsTool(&mockSearcher{err: errors.New("index offline")})
		if _, err := failing.Execute(context.Background(), map[string]interface{}{"query": "q"}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestQueryDetailsTool(t *testing.T) {
	executor := &mockExecutor{result: schema.QueryResult{Columns: []string{"n"}, Rows: []map[string]interface{}{{"n": 3}}}}
	tool := tools.NewQueryDetailsTool("customer", "customers and addresses", []string{"saleslt.customer"}, executor)

	if tool.Name() != "query_customer_details" {
		t.Errorf("unexpected name %s", tool.Name())
	}
	if !strings.Contains(tool.Description(), "saleslt.customer") {
		t.Errorf("description should list the tables: %s", tool.Description())
	}

	res, err := tool.Execute(context.Background(), map[string]interface{}{"query": "SELECT count(*) AS n FROM saleslt.customer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.(schema.QueryResult).Rows[0]["n"] != 3 {
		t.Errorf("unexpected result: %+v", res)
	}

	failing := tools.NewQueryDetailsTool("customer", "", nil, &mockExecutor{err: schema.ErrNotReadOnly})
	if _, err := failing.Execute(context.Background(), map[string]interface{}{"query": "DELETE FROM x"}); !errors.Is(err, schema.ErrNotReadOnly) {
		t.Errorf("expected ErrNotReadOnly, got %v", err)
	}
}

func TestNewRegistry(t *testing.T) {
	domains := []tools.Domain{
		{Label: "product", Tables: []string{"saleslt.product"}},
		{Label: "customer", Tables: []string{"saleslt.customer"}},
	}

	registry := tools.NewRegistry(&mockSearcher{}, &mockExecutor{}, domains)
	defs := registry.ToFunctionDefinitions()
	if len(defs) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(defs))
	}
	want := []string{"query_customer_details", "query_product_details", "search_manuals"}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, defs[i].Name)
		}
	}

	if n := tools.NewRegistry(nil, &mockExecutor{}, domains).Len(); n != 2 {
		t.Errorf("expected 2 tools without searcher, got %d", n)
	}
	if n := tools.NewRegistry(nil, nil, domains).Len(); n != 0 {
		t.Errorf("expected empty registry, got %d", n)
	}
}
