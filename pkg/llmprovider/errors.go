package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest is never retried and never falls back to another provider.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout is a provider call that ran out of time while the caller's ctx was still live.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited is an HTTP 429 from a provider.
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors. Kind is one of the sentinels
// above when the failure could be classified.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Kind != nil {
		return fmt.Sprintf("provider %s: %v: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	if e.Kind != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Err}
}

// classify maps a raw client error to a sentinel. The pkg clients report
// non-200 replies as "API error <status>: ...".
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return ErrInvalidRequest
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return ErrProviderTimeout
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, fmt.Sprintf("API error %d", http.StatusTooManyRequests)):
		return ErrProviderRateLimited
	case strings.Contains(msg, fmt.Sprintf("API error %d", http.StatusBadRequest)):
		return ErrInvalidRequest
	case strings.Contains(msg, fmt.Sprintf("API error %d", http.StatusGatewayTimeout)):
		return ErrProviderTimeout
	}
	return nil
}

// retryable reports whether another attempt could succeed.
func retryable(err error) bool {
	return !errors.Is(err, ErrInvalidRequest) &&
		!errors.Is(err, context.Canceled)
}
