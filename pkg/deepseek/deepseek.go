package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failed response is read into the error.
const maxErrorBody = 4096

// Client implements IDeepSeek over the chat completions endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New validates cfg and returns a client.
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent posts req to /chat/completions. req is not modified; an
// empty Model falls back to the client's model.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body := *req
	if body.Model == "" {
		body.Model = c.model
	}

	var out Response
	if err := c.post(ctx, "/chat/completions", &body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError keeps the "API error <status>" prefix the provider manager classifies on.
func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
		return fmt.Errorf("API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}
	return fmt.Errorf("API error %d: %s", resp.StatusCode, string(raw))
}
