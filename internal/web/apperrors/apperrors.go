// Package apperrors defines typed web application errors.
package apperrors

import (
	stderrors "errors"
	"net/http"

	"github.com/louisbranch/listkeeper/internal/list/service"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// FromService classifies a service-layer failure into a typed web error so
// handlers and tests can distinguish absence from storage failure.
func FromService(err error) error {
	if err == nil {
		return nil
	}
	var appErr Error
	switch {
	case stderrors.As(err, &appErr):
		return err
	case stderrors.Is(err, service.ErrListNotFound):
		return Error{Kind: KindNotFound, Message: err.Error()}
	case stderrors.Is(err, service.ErrEmptyName):
		return Error{Kind: KindInvalidInput, Message: err.Error()}
	default:
		return Error{Kind: KindUnavailable, Message: err.Error()}
	}
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
