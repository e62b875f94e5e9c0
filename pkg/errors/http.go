// Package errors holds error types shared by the HTTP delivery layers.
package errors

import "net/http"

// HTTPError is an error that knows the status code and public message it maps to.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError builds a 400-class error with an application error code.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: http.StatusBadRequest, Code: code, Message: msg}
}

// NewHTTPErrorWithStatus builds an error with an explicit status code.
func NewHTTPErrorWithStatus(status, code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: code, Message: msg}
}

func (e *HTTPError) Error() string {
	return e.Message
}
