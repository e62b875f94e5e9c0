package schema

import "errors"

var (
	ErrNoTables          = errors.New("schema: no tables requested")
	ErrInvalidIdentifier = errors.New("schema: invalid table identifier")
	ErrTableNotFound     = errors.New("schema: table not found")
	ErrEmptyStatement    = errors.New("schema: empty statement")
	ErrNotReadOnly       = errors.New("schema: only a single SELECT or WITH statement is allowed")
	ErrFailedToDescribe  = errors.New("schema: failed to describe tables")
	ErrFailedToQuery     = errors.New("schema: failed to run query")
)
