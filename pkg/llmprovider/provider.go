package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	// TopP of zero leaves nucleus sampling at the provider default.
	TopP float64
	// CandidateCount asks for several independent samples. Providers that
	// cannot batch return fewer candidates than asked for.
	CandidateCount int
	MaxTokens      int
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system", "tool"
	Parts []Part
}

// Part represents a message part (text or function call)
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool represents a function declaration
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall represents a model's function call request.
// ID is echoed back on the matching FunctionResponse when the provider issues one.
type FunctionCall struct {
	ID   string
	Name string
	Args map[string]interface{}
}

// FunctionResponse represents a function execution result
type FunctionResponse struct {
	ID       string
	Name     string
	Response interface{}
}

// Response represents a normalized LLM generation response.
// Content is always Candidates[0] when at least one candidate exists.
type Response struct {
	Content      Message
	Candidates   []Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Add accumulates another usage record into u.
func (u *Usage) Add(other *Usage) {
	if u == nil || other == nil {
		return
	}
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// TextMessage builds a single-part text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// Text joins the text parts of the message.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Parts {
		if p.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// FunctionCalls returns the function call parts of the message in order.
func (m Message) FunctionCalls() []*FunctionCall {
	var calls []*FunctionCall
	for _, p := range m.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, p.FunctionCall)
		}
	}
	return calls
}

func newResponse(provider, model string, candidates []Message, usage Usage) *Response {
	resp := &Response{
		Candidates:   candidates,
		ProviderName: provider,
		ModelName:    model,
		Usage:        &usage,
	}
	if len(candidates) > 0 {
		resp.Content = candidates[0]
	} else {
		resp.Content = Message{Role: "assistant"}
	}
	return resp
}
