package gateway

import (
	"context"

	"rag-intent-chat/pkg/llmprovider"
)

// Gateway is the single entry point every pipeline stage uses to talk to a model.
type Gateway interface {
	// Complete runs one completion request. With ToolAutoInvoke the model may call
	// registered tools; their results are fed back until the model answers in text.
	Complete(ctx context.Context, input CompleteInput) (CompleteOutput, error)
}

// generator is satisfied by *llmprovider.Manager and by any single provider.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
