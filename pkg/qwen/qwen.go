package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
)

func newQwenImpl(cfg Config) *qwenImpl {
	return &qwenImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to Qwen API
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(q.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		q.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("qwen: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("qwen: failed to decode response: %w", err)
	}

	return transformResponse(&wireResp), nil
}

// Model returns the model being used
func (q *qwenImpl) Model() string {
	return q.model
}

func (q *qwenImpl) transformRequest(req *Request) *wireRequest {
	temperature := req.Temperature
	out := &wireRequest{
		Model:       q.model,
		Temperature: &temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]wireMessage, 0, len(req.Messages)+1),
	}
	if req.N > 1 {
		out.N = min(req.N, MaxChoices)
	}

	if req.SystemInstruction != nil {
		systemMsg := transformMessage(req.SystemInstruction)
		systemMsg.Role = "system"
		out.Messages = append(out.Messages, systemMsg)
	}

	for i := range req.Messages {
		out.Messages = append(out.Messages, transformMessage(&req.Messages[i]))
	}

	if len(req.Tools) > 0 {
		out.Tools = make([]wireTool, len(req.Tools))
		for i, tool := range req.Tools {
			out.Tools[i] = wireTool{
				Type: "function",
				Function: wireFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
	}

	return out
}

func transformMessage(msg *Content) wireMessage {
	out := wireMessage{Role: msg.Role}

	for _, part := range msg.Parts {
		if part.Text != "" {
			if out.Content != "" {
				out.Content += "\n"
			}
			out.Content += part.Text
		}

		if part.FunctionCall != nil {
			argsJSON, _ := json.Marshal(part.FunctionCall.Args)
			out.ToolCalls = append(out.ToolCalls, wireToolCall{
				ID:   callID(part.FunctionCall.ID, part.FunctionCall.Name),
				Type: "function",
				Function: wireFunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(argsJSON),
				},
			})
		}

		if part.FunctionResponse != nil {
			out.Role = "tool"
			out.ToolCallID = callID(part.FunctionResponse.ID, part.FunctionResponse.Name)
			responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
			out.Content = string(responseJSON)
		}
	}

	return out
}

func callID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}

func transformResponse(resp *wireResponse) *Response {
	out := &Response{
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	choices := resp.Choices
	sort.SliceStable(choices, func(i, j int) bool { return choices[i].Index < choices[j].Index })

	for _, choice := range choices {
		message := Content{Role: "assistant", Parts: make([]Part, 0, 1)}

		if choice.Message.Content != "" {
			message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
		}

		for _, toolCall := range choice.Message.ToolCalls {
			if toolCall.Type != "function" {
				continue
			}
			var args map[string]interface{}
			if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
				args = make(map[string]interface{})
			}
			message.Parts = append(message.Parts, Part{
				FunctionCall: &FunctionCall{
					ID:   toolCall.ID,
					Name: toolCall.Function.Name,
					Args: args,
				},
			})
		}

		out.Choices = append(out.Choices, message)
	}

	return out
}
