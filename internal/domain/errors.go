package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a StoreError for callers that map failures to
// transport status codes or console output.
type ErrorKind string

const (
	KindNotFound             ErrorKind = "NotFound"
	KindDuplicateEntity      ErrorKind = "DuplicateEntity"
	KindInvalidArgument      ErrorKind = "InvalidArgument"
	KindPreconditionFailed   ErrorKind = "PreconditionFailed"
	KindUnsupportedOperation ErrorKind = "UnsupportedOperation"
	KindParseError           ErrorKind = "ParseError"
	KindIOFailure            ErrorKind = "IOFailure"
)

// StoreError is the error type for every domain and service failure.
// Action names the operation that failed, Reason says why.
type StoreError struct {
	Kind   ErrorKind
	Action string
	Reason string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Action, e.Reason)
}

// NewStoreError creates a new StoreError.
func NewStoreError(kind ErrorKind, action, reason string) *StoreError {
	return &StoreError{Kind: kind, Action: action, Reason: reason}
}

// Common error constructors
func NewNotFound(action, reason string) *StoreError {
	return NewStoreError(KindNotFound, action, reason)
}

func NewDuplicateEntity(action, reason string) *StoreError {
	return NewStoreError(KindDuplicateEntity, action, reason)
}

func NewInvalidArgument(action, reason string) *StoreError {
	return NewStoreError(KindInvalidArgument, action, reason)
}

func NewPreconditionFailed(action, reason string) *StoreError {
	return NewStoreError(KindPreconditionFailed, action, reason)
}

func NewUnsupportedOperation(action, reason string) *StoreError {
	return NewStoreError(KindUnsupportedOperation, action, reason)
}

func NewParseError(action, reason string) *StoreError {
	return NewStoreError(KindParseError, action, reason)
}

func NewIOFailure(action, reason string) *StoreError {
	return NewStoreError(KindIOFailure, action, reason)
}

// KindOf returns the ErrorKind of err, or an empty kind if err is not a
// StoreError.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
