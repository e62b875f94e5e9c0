package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("gemini: request has no messages")
	}
	geminiResp, err := g.callAPI(ctx, g.transformRequest(req))
	if err != nil {
		return nil, err
	}
	return transformResponse(geminiResp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) callAPI(ctx context.Context, req generateRequest) (*generateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest maps roles onto the Gemini vocabulary. System-role turns
// inside the conversation are folded into the system instruction because the
// contents array only accepts user and model turns.
func (g *geminiImpl) transformRequest(req *Request) generateRequest {
	out := generateRequest{
		Contents: make([]wireContent, 0, len(req.Messages)),
	}

	var systemParts []wirePart
	if req.SystemInstruction != nil {
		systemParts = append(systemParts, transformParts(req.SystemInstruction.Parts)...)
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			systemParts = append(systemParts, transformParts(msg.Parts)...)
			continue
		case "assistant", roleModel:
			out.Contents = append(out.Contents, wireContent{Role: roleModel, Parts: transformParts(msg.Parts)})
		default:
			out.Contents = append(out.Contents, wireContent{Role: "user", Parts: transformParts(msg.Parts)})
		}
	}
	if len(systemParts) > 0 {
		out.SystemInstruction = &wireContent{Parts: systemParts}
	}

	if len(req.Tools) > 0 {
		decls := make([]functionDeclaration, len(req.Tools))
		for i, tool := range req.Tools {
			decls[i] = functionDeclaration{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			}
		}
		out.Tools = []wireTool{{FunctionDeclarations: decls}}
	}

	temperature := req.Temperature
	gc := &generationConfig{
		Temperature:     &temperature,
		MaxOutputTokens: req.MaxTokens,
	}
	if req.TopP > 0 {
		topP := req.TopP
		gc.TopP = &topP
	}
	if req.CandidateCount > 1 {
		gc.CandidateCount = min(req.CandidateCount, MaxCandidateCount)
	}
	out.GenerationConfig = gc

	return out
}

func transformParts(parts []Part) []wirePart {
	out := make([]wirePart, len(parts))
	for i, part := range parts {
		out[i] = wirePart{Text: part.Text}
		if part.FunctionCall != nil {
			out[i].FunctionCall = &wireFunctionCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			}
		}
		if part.FunctionResponse != nil {
			out[i].FunctionResponse = &wireFunctionResponse{
				Name:     part.FunctionResponse.Name,
				Response: wrapFunctionResponse(part.FunctionResponse.Response),
			}
		}
	}
	return out
}

// wrapFunctionResponse ensures the response is a JSON object; the API rejects
// bare strings and arrays.
func wrapFunctionResponse(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{"result": v}
}

func transformResponse(resp *generateResponse) *Response {
	out := &Response{
		Candidates: make([]Content, 0, len(resp.Candidates)),
		Usage: Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		},
	}

	for _, candidate := range resp.Candidates {
		parts := make([]Part, len(candidate.Content.Parts))
		for i, part := range candidate.Content.Parts {
			parts[i] = Part{Text: part.Text}
			if part.FunctionCall != nil {
				parts[i].FunctionCall = &FunctionCall{
					Name: part.FunctionCall.Name,
					Args: part.FunctionCall.Args,
				}
			}
		}
		out.Candidates = append(out.Candidates, Content{Role: "assistant", Parts: parts})
	}

	return out
}
