package model

import (
	"errors"
	"strings"
)

// Error categories. Every error that leaves the services layer matches
// exactly one of these with errors.Is, or none for unexpected faults.
var (
	ErrValidation      = errors.New("validation failed")
	ErrIntegrity       = errors.New("referential integrity violated")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// ValidationError reports a malformed request body. Missing holds the JSON
// names of required fields that were absent or null.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "Missing field(s): " + strings.Join(e.Missing, ", ")
	}
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func MissingFields(fields ...string) error {
	return &ValidationError{Missing: fields}
}

func InvalidRequest(reason string) error {
	return &ValidationError{Reason: reason}
}

// Error is a failure whose Message is safe to show to clients. It matches
// its Kind with errors.Is.
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}
