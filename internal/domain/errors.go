package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrRejected    = errors.New("rejected by server")
)

// ErrTaskNotFound is returned when an operation references a task that is
// absent from the in-memory store. No remote call is made in that case.
var ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.fieldNames() {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Messages returns one human-readable sentence per field, ordered by field
// name, e.g. "title is required".
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, field := range e.fieldNames() {
		msgs = append(msgs, field+" "+e.Fields[field])
	}
	return msgs
}

func (e *ValidationError) fieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return names
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ApplicationError is a request the server received and answered with a
// non-zero result code. Messages carries the server's human-readable detail
// in the order it was returned.
//
// SuppressMessage marks rejections the caller expects and renders itself;
// the classifier then leaves the global error message untouched. A captcha
// challenge is always suppressed: the sign-in form renders it.
type ApplicationError struct {
	ResultCode      int
	Messages        []string
	SuppressMessage bool
}

// NewApplicationError builds an ApplicationError from a rejected envelope.
func NewApplicationError[T any](env Envelope[T]) *ApplicationError {
	return &ApplicationError{
		ResultCode:      env.ResultCode,
		Messages:        env.Messages,
		SuppressMessage: env.ResultCode == ResultCodeCaptcha,
	}
}

func (e *ApplicationError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s: result code %d", ErrRejected.Error(), e.ResultCode)
	}
	return fmt.Sprintf("%s: result code %d: %s", ErrRejected.Error(), e.ResultCode, strings.Join(e.Messages, "; "))
}

func (e *ApplicationError) Unwrap() error {
	return ErrRejected
}
