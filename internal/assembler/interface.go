package assembler

import "context"

// Assembler turns a classified utterance into the conversation messages of
// its branch. Each call makes exactly one retrieval.
type Assembler interface {
	Assemble(ctx context.Context, label, utterance string) (Output, error)
}
