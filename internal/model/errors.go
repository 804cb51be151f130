package model

import (
	"errors"
	"sort"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("invalid email or password")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal server error")
)

// Error is a domain error of a given kind with a caller-visible message.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Public() + ": " + e.Err.Error()
	}
	return e.Public()
}

// Public returns the message safe to show to the caller.
func (e *Error) Public() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewErrValidation returns a validation error with per-field messages.
func NewErrValidation(fields map[string]string) *Error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}

	return &Error{
		Kind:    ErrValidation,
		Message: "validation failed: " + strings.Join(parts, "; "),
		Fields:  fields,
	}
}

// NewErrConflict returns a uniqueness violation on field.
func NewErrConflict(field string, err error) *Error {
	msg := "already taken"
	if field != "" {
		msg = field + " is already taken"
	}
	return &Error{
		Kind:    ErrConflict,
		Message: msg,
		Fields:  map[string]string{field: "already taken"},
		Err:     err,
	}
}

// NewErrUnauthorized returns the single bad-credentials error.
func NewErrUnauthorized() *Error {
	return &Error{Kind: ErrUnauthorized}
}

// NewErrNotFound returns a not found error for the named entity.
func NewErrNotFound(entity string, err error) *Error {
	return &Error{Kind: ErrNotFound, Message: entity + " not found", Err: err}
}

// NewErrInternal hides err behind a generic message.
func NewErrInternal(err error) *Error {
	return &Error{Kind: ErrInternal, Err: err}
}
