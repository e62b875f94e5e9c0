package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"rag-intent-chat/pkg/deepseek"
	"rag-intent-chat/pkg/gemini"
	"rag-intent-chat/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Tools:             toGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		TopP:              req.TopP,
		CandidateCount:    req.CandidateCount,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]Message, len(resp.Candidates))
	for i, c := range resp.Candidates {
		candidates[i] = fromGeminiContent(c)
	}
	return newResponse(a.Name(), a.Model(), candidates, Usage(resp.Usage)), nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		SystemInstruction: toQwenContent(req.SystemInstruction),
		Messages:          toQwenContents(req.Messages),
		Tools:             toQwenTools(req.Tools),
		Temperature:       req.Temperature,
		TopP:              req.TopP,
		N:                 req.CandidateCount,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]Message, len(resp.Choices))
	for i, c := range resp.Choices {
		candidates[i] = fromQwenContent(c)
	}
	return newResponse(a.Name(), a.Model(), candidates, Usage(resp.Usage)), nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface.
// DeepSeek ignores n, so multi-candidate requests come back with one choice.
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	temperature := req.Temperature
	dsReq := &deepseek.Request{
		Messages:    toDeepSeekMessages(req.Messages),
		Tools:       toDeepSeekTools(req.Tools),
		Temperature: &temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	}
	if req.CandidateCount > 1 {
		dsReq.N = req.CandidateCount
	}

	if req.SystemInstruction != nil {
		system := deepseek.Message{Role: "system", Content: req.SystemInstruction.Text()}
		dsReq.Messages = append([]deepseek.Message{system}, dsReq.Messages...)
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}

	candidates := make([]Message, len(resp.Choices))
	for i, c := range resp.Choices {
		candidates[i] = fromDeepSeekMessage(c.Message)
	}
	usage := Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	return newResponse(a.Name(), a.Model(), candidates, usage), nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toGeminiContent(&msgs[i])
	}
	return contents
}

func toGeminiTools(tools []Tool) []gemini.Tool {
	out := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		out[i] = gemini.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
	}
	return Message{Role: "assistant", Parts: parts}
}

// Conversion helpers for Qwen

func toQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &qwen.FunctionCall{ID: p.FunctionCall.ID, Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &qwen.FunctionResponse{ID: p.FunctionResponse.ID, Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}

func toQwenContents(msgs []Message) []qwen.Content {
	contents := make([]qwen.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toQwenContent(&msgs[i])
	}
	return contents
}

func toQwenTools(tools []Tool) []qwen.Tool {
	out := make([]qwen.Tool, len(tools))
	for i, t := range tools {
		out[i] = qwen.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func fromQwenContent(content qwen.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{ID: p.FunctionCall.ID, Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
	}
	return Message{Role: "assistant", Parts: parts}
}

// Conversion helpers for DeepSeek

func toDeepSeekMessages(msgs []Message) []deepseek.Message {
	out := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		dsMsg := deepseek.Message{Role: msg.Role, Content: msg.Text()}

		for _, p := range msg.Parts {
			if fc := p.FunctionCall; fc != nil {
				argsJSON, _ := json.Marshal(fc.Args)
				dsMsg.ToolCalls = append(dsMsg.ToolCalls, deepseek.ToolCall{
					ID:   deepSeekCallID(fc.ID, fc.Name),
					Type: "function",
					Function: deepseek.FunctionCall{
						Name:      fc.Name,
						Arguments: string(argsJSON),
					},
				})
			}
			if fr := p.FunctionResponse; fr != nil {
				responseJSON, _ := json.Marshal(fr.Response)
				dsMsg.Role = "tool"
				dsMsg.ToolCallID = deepSeekCallID(fr.ID, fr.Name)
				dsMsg.Name = fr.Name
				dsMsg.Content = string(responseJSON)
			}
		}

		out = append(out, dsMsg)
	}
	return out
}

func deepSeekCallID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}

func toDeepSeekTools(tools []Tool) []deepseek.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]deepseek.Tool, len(tools))
	for i, t := range tools {
		out[i] = deepseek.Tool{
			Type: "function",
			Function: deepseek.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func fromDeepSeekMessage(msg deepseek.Message) Message {
	parts := []Part{}
	if msg.Content != "" {
		parts = append(parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			args = map[string]interface{}{}
		}
		parts = append(parts, Part{FunctionCall: &FunctionCall{ID: tc.ID, Name: tc.Function.Name, Args: args}})
	}
	return Message{Role: "assistant", Parts: parts}
}
