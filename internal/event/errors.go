package event

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes event-level failures.
type ErrorCode string

const (
	// ErrCodeInvalidEvent indicates a construction request with a blank
	// title or an inverted/zero-length interval.
	ErrCodeInvalidEvent ErrorCode = "INVALID_EVENT"

	// ErrCodeMalformedRecord indicates a persisted record that could not
	// be decoded back into a valid Event.
	ErrCodeMalformedRecord ErrorCode = "MALFORMED_RECORD"
)

// Error is a structured event-level error.
type Error struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// NewInvalidEventError creates an Error for a rejected construction.
func NewInvalidEventError(message string) *Error {
	return &Error{Code: ErrCodeInvalidEvent, Message: message}
}

// NewMalformedRecordError creates an Error for an undecodable record.
func NewMalformedRecordError(message string, err error) *Error {
	return &Error{Code: ErrCodeMalformedRecord, Message: message, Err: err}
}

// IsInvalidEventError returns true if the error is a rejected
// construction. Uses errors.As to handle wrapped errors.
func IsInvalidEventError(err error) bool {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeInvalidEvent
	}
	return false
}

// IsMalformedRecordError returns true if the error is a record decode
// failure. Uses errors.As to handle wrapped errors.
func IsMalformedRecordError(err error) bool {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeMalformedRecord
	}
	return false
}
