package http

import (
	"errors"
	"net/http"

	"rag-intent-chat/internal/chat"
	pkgErrors "rag-intent-chat/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(40002, "request body must be a JSON object")
	errInternal    = pkgErrors.NewHTTPErrorWithStatus(http.StatusInternalServerError, 50000, "internal server error")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var verr *chat.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkgErrors.NewHTTPError(40003, verr.Field+" "+verr.Reason)
	case errors.Is(err, chat.ErrInvalidRequest):
		return pkgErrors.NewHTTPError(40003, err.Error())
	default:
		return errInternal
	}
}
