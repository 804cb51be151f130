package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/storefront/internal/model"
)

// handleError maps a domain error to the HTTP status and the message shown to
// the client. Unknown errors become a generic internal error.
func handleError(err error) (int, string, map[string]string) {
	var domainErr *model.Error
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError, model.ErrInternal.Error(), nil
	}

	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, domainErr.Public(), domainErr.Fields
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, domainErr.Public(), nil
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, domainErr.Public(), nil
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, domainErr.Public(), domainErr.Fields
	default:
		return http.StatusInternalServerError, model.ErrInternal.Error(), nil
	}
}

// formError returns the message and field errors of an error shown inside a
// re-rendered form.
func formError(err error) (string, map[string]string) {
	var domainErr *model.Error
	if errors.As(err, &domainErr) {
		return domainErr.Public(), domainErr.Fields
	}
	return model.ErrInternal.Error(), nil
}
