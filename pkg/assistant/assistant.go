package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

func newAssistantImpl(cfg Config) *assistantImpl {
	return &assistantImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		apiVersion: cfg.APIVersion,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// CreateAssistant creates an assistant with the code interpreter tool enabled.
func (a *assistantImpl) CreateAssistant(ctx context.Context, req CreateAssistantRequest) (*Assistant, error) {
	model := req.Model
	if model == "" {
		model = a.model
	}
	var out Assistant
	err := a.doJSON(ctx, http.MethodPost, "/assistants", createAssistantBody{
		Model:        model,
		Name:         req.Name,
		Instructions: req.Instructions,
		Tools:        []toolSpec{{Type: toolCodeInterpreter}},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAssistant removes the assistant.
func (a *assistantImpl) DeleteAssistant(ctx context.Context, assistantID string) error {
	return a.doJSON(ctx, http.MethodDelete, "/assistants/"+url.PathEscape(assistantID), nil, nil)
}

// CreateThread creates an empty thread.
func (a *assistantImpl) CreateThread(ctx context.Context) (*Thread, error) {
	var out Thread
	if err := a.doJSON(ctx, http.MethodPost, "/threads", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMessage posts a user message to the thread.
func (a *assistantImpl) CreateMessage(ctx context.Context, threadID, content string) (*Message, error) {
	var out Message
	err := a.doJSON(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/messages",
		createMessageBody{Role: "user", Content: content}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages returns the thread messages, newest first.
func (a *assistantImpl) ListMessages(ctx context.Context, threadID string) ([]Message, error) {
	var out listMessagesResponse
	err := a.doJSON(ctx, http.MethodGet, "/threads/"+url.PathEscape(threadID)+"/messages?order=desc&limit=100", nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateRun starts the assistant on the thread.
func (a *assistantImpl) CreateRun(ctx context.Context, threadID, assistantID string) (*Run, error) {
	var out Run
	err := a.doJSON(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/runs",
		createRunBody{AssistantID: assistantID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRun fetches the current run state.
func (a *assistantImpl) GetRun(ctx context.Context, threadID, runID string) (*Run, error) {
	var out Run
	err := a.doJSON(ctx, http.MethodGet, "/threads/"+url.PathEscape(threadID)+"/runs/"+url.PathEscape(runID), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelRun asks the API to stop a pending run.
func (a *assistantImpl) CancelRun(ctx context.Context, threadID, runID string) error {
	return a.doJSON(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/runs/"+url.PathEscape(runID)+"/cancel", struct{}{}, nil)
}

// FileContent downloads the raw bytes of a file.
func (a *assistantImpl) FileContent(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := a.send(ctx, http.MethodGet, "/files/"+url.PathEscape(fileID)+"/content", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to read file %s: %w", fileID, err)
	}
	return data, nil
}

func (a *assistantImpl) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("assistant: failed to marshal request: %w", err)
		}
		body = raw
	}

	resp, err := a.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("assistant: failed to decode response: %w", err)
	}
	return nil
}

func (a *assistantImpl) send(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, a.endpoint(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("OpenAI-Beta", betaHeader)
	if a.apiVersion != "" {
		httpReq.Header.Set("api-key", a.apiKey)
	} else {
		httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to call API: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := string(raw)
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return resp, nil
}

func (a *assistantImpl) endpoint(path string) string {
	if a.apiVersion == "" {
		return a.baseURL + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return a.baseURL + path + sep + "api-version=" + url.QueryEscape(a.apiVersion)
}
