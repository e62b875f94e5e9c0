package http

import (
	"errors"
	"net/http"

	"rag-intent-chat/internal/session"
	pkgErrors "rag-intent-chat/pkg/errors"
)

var (
	errSessionNotFound = pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 40401, "session not found")
	errMissingScope    = pkgErrors.NewHTTPError(40001, "tenant and user ids are required")
	errInternal        = pkgErrors.NewHTTPErrorWithStatus(http.StatusInternalServerError, 50000, "internal server error")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, session.ErrMissingScope):
		return errMissingScope
	default:
		return errInternal
	}
}
