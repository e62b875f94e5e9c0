package deepseek_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rag-intent-chat/pkg/deepseek"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer ds-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
			return
		}
		w.Write([]byte(`{"id":"1","model":"deepseek-chat","choices":[{"index":0,"message":{"role":"assistant","content":"hello"}}],"usage":{"prompt_tokens":3,"completion_tokens":1,"total_tokens":4}}`))
	}))
	defer ts.Close()

	t.Run("Success", func(t *testing.T) {
		client, err := deepseek.New(deepseek.Config{APIKey: "ds-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if client.Model() != deepseek.DefaultModel {
			t.Errorf("expected default model, got %s", client.Model())
		}
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "hello" {
			t.Errorf("unexpected response: %+v", resp)
		}
	})

	t.Run("API error message", func(t *testing.T) {
		client, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || !strings.Contains(err.Error(), "invalid api key") {
			t.Fatalf("expected API error message, got %v", err)
		}
	})
}

func TestGenerateContent_DoesNotMutateRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "k", Model: "deepseek-reasoner", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	req := &deepseek.Request{Messages: []deepseek.Message{{Role: "user", Content: "hi"}}}
	if _, err := client.GenerateContent(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Model != "" {
		t.Errorf("request model was set to %q", req.Model)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestGenerateContent_RawErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	}))
	defer ts.Close()

	client, _ := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
	_, err := client.GenerateContent(context.Background(), &deepseek.Request{})
	if err == nil || !strings.Contains(err.Error(), "API error 429: slow down") {
		t.Fatalf("expected raw API error, got %v", err)
	}
}
