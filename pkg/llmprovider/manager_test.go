package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger records formatted info and warn lines.
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	m.infoMessages = append(m.infoMessages, fmt.Sprint(arg...))
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprint(arg...))
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func helloRequest() *Request {
	return &Request{Messages: []Message{TextMessage("user", "Hello")}}
}

func textResponse(provider, text string) *Response {
	return newResponse(provider, provider+"-model", []Message{TextMessage("assistant", text)}, Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150})
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: textResponse("primary", "Hello from primary provider")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: 100 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if resp.Content.Text() != "Hello from primary provider" {
		t.Errorf("Unexpected content: %q", resp.Content.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn messages, got: %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: textResponse("secondary", "Hello from secondary provider")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: 10 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 info and 1 warn messages, got: %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", shouldFail: true}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: 10 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("Expected error when all providers fail, got nil")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 || secondary.callCount != 2 {
		t.Errorf("Expected 2 calls each, got: %d/%d", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: textResponse("secondary", "unused")}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false, RetryAttempts: 2, RetryDelay: 10 * time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "primary" {
		t.Errorf("Expected ProviderError for primary, got: %v", err)
	}
}

func TestGenerateContent_ZeroRetryAttemptsStillCallsOnce(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", response: textResponse("primary", "ok")}
	manager := NewManager([]Provider{primary}, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), helloRequest()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected 1 call, got %d", primary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager([]Provider{}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: 100 * time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

func TestGenerateContent_CancelledContext(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", response: textResponse("primary", "ok")}
	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := manager.GenerateContent(ctx, helloRequest()); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("Expected no provider call after cancellation, got %d", primary.callCount)
	}
}

// erroringProvider fails every call with err.
type erroringProvider struct {
	mockProvider
	err error
}

func (e *erroringProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	e.callCount++
	return nil, e.err
}

func TestGenerateContent_InvalidRequestNotRetried(t *testing.T) {
	primary := &erroringProvider{mockProvider: mockProvider{name: "primary", model: "m"}, err: errors.New("qwen: API error 400: bad tool schema")}
	secondary := &mockProvider{name: "secondary", model: "m", response: textResponse("secondary", "unused")}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("Expected ErrInvalidRequest, got: %v", err)
	}
	if primary.callCount != 1 || secondary.callCount != 0 {
		t.Errorf("Expected one primary call and no fallback, got %d/%d", primary.callCount, secondary.callCount)
	}
}

func TestGenerateContent_RateLimitedFallsBack(t *testing.T) {
	primary := &erroringProvider{mockProvider: mockProvider{name: "primary", model: "m"}, err: errors.New("gemini: API error 429: quota")}
	secondary := &mockProvider{name: "secondary", model: "m", response: textResponse("secondary", "ok")}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected fallback success, got: %v", err)
	}
	if resp.ProviderName != "secondary" || primary.callCount != 2 {
		t.Errorf("Expected 2 primary attempts then secondary, got %d and %s", primary.callCount, resp.ProviderName)
	}
}

func TestGenerateContent_EmptyRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", response: textResponse("primary", "ok")}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("Expected no provider call, got %d", primary.callCount)
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		err  error
		want error
	}{
		{errors.New("gemini: API error 429: slow down"), ErrProviderRateLimited},
		{errors.New("API error 400: bad"), ErrInvalidRequest},
		{errors.New("qwen: API error 504: upstream"), ErrProviderTimeout},
		{fmt.Errorf("call: %w", context.DeadlineExceeded), ErrProviderTimeout},
		{errors.New("API error 500: boom"), nil},
	}
	for _, c := range cases {
		if got := classify(ctx, c.err); got != c.want {
			t.Errorf("classify(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestMessageHelpers(t *testing.T) {
	msg := Message{Role: "assistant", Parts: []Part{
		{Text: "first"},
		{FunctionCall: &FunctionCall{Name: "search_manuals"}},
		{Text: "second"},
	}}

	if got := msg.Text(); got != "first\nsecond" {
		t.Errorf("Text() = %q", got)
	}
	if calls := msg.FunctionCalls(); len(calls) != 1 || calls[0].Name != "search_manuals" {
		t.Errorf("FunctionCalls() = %+v", calls)
	}

	total := &Usage{}
	total.Add(&Usage{InputTokens: 1, OutputTokens: 2, TotalTokens: 3})
	total.Add(nil)
	if total.TotalTokens != 3 {
		t.Errorf("Add() total = %d", total.TotalTokens)
	}
}
