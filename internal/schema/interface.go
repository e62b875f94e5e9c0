package schema

import "context"

// Describer introspects tables into a schema Document.
type Describer interface {
	// Describe returns the schema of exactly the given "schema.table" identifiers, in order.
	Describe(ctx context.Context, tables []string) (Document, error)
}

// QueryExecutor runs model-generated read-only SQL.
type QueryExecutor interface {
	Query(ctx context.Context, statement string) (QueryResult, error)
}

// Repository is the database collaborator of the structured-query branch.
type Repository interface {
	Describer
	QueryExecutor
	Ping(ctx context.Context) error
}
