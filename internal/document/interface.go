package document

import "context"

// Searcher runs a semantic search over the indexed manuals.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Fragment, error)
}
