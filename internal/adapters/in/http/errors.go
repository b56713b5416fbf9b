package http

import (
	"errors"
	"net/http"

	"bookstore/internal/pkg/errs"
)

// classifyError maps domain error kinds to stable HTTP status and message
// pairs. Anything unclassified is an internal error: the caller logs the
// original and the response exposes only a generic message.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrAuthorizationFailed):
		return http.StatusUnauthorized, "authorization failed"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidOrderStatus):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
