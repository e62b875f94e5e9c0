package deepseek

import "context"

// IDeepSeek is a client for the DeepSeek chat completions API, which speaks
// the OpenAI wire format including tool calls.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IDeepSeek = (*Client)(nil)
