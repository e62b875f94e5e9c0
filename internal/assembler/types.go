package assembler

import "rag-intent-chat/pkg/llmprovider"

// Domain binds a structured-query label to its tables.
type Domain struct {
	Label       string
	Description string
	Tables      []string
}

// StructuredQueryContext is built once per structured-query request.
type StructuredQueryContext struct {
	Domain string
	Tables []string
	Schema string
}

type Output struct {
	// Messages are in evidence-then-utterance order.
	Messages   []llmprovider.Message
	Fragments  int
	Structured *StructuredQueryContext
}
