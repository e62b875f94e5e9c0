package gateway

import "rag-intent-chat/pkg/llmprovider"

// Sampling is the per-call sampling profile.
type Sampling struct {
	Temperature float64
	TopP        float64
	// ResultCount is the number of independent completions wanted; zero means one.
	ResultCount    int
	MaxTokens      int
	ToolAutoInvoke bool
}

type CompleteInput struct {
	System   string
	Messages []llmprovider.Message
	Sampling Sampling
}

type Completion struct {
	Text string
}

type CompleteOutput struct {
	Completions []Completion
	Usage       llmprovider.Usage
	Provider    string
	Model       string
	ToolCalls   int
}

// Text returns the first completion text, or "" when there is none.
func (o CompleteOutput) Text() string {
	if len(o.Completions) == 0 {
		return ""
	}
	return o.Completions[0].Text
}
