package document

import "errors"

var (
	ErrEmptyQuery = errors.New("document: empty query")
	ErrEmbedding  = errors.New("document: failed to embed query")
)
