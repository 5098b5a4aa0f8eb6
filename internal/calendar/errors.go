package calendar

import (
	"errors"
	"fmt"
	"time"

	"agenda/internal/event"
)

// Error represents a failure of a store operation.
//
// Store failures include:
//   - Conflict: a candidate event overlaps an existing one
//   - Not found: a deletion target is absent
//   - Invalid duration: a non-positive slot request
//   - No slot available: the business-hours window is exhausted
//   - Corrupt store: persisted state exists but cannot be decoded
//
// All failures are recoverable at the caller; the store never terminates
// the process.
type Error struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// ID identifies the affected event (for not-found errors).
	ID string

	// Conflict is the first overlapping event in chronological order
	// (for conflict errors).
	Conflict *event.Event

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeConflict indicates the candidate overlaps an existing event.
	ErrCodeConflict ErrorCode = "CONFLICT"

	// ErrCodeNotFound indicates the deletion target does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInvalidDuration indicates a non-positive slot request.
	ErrCodeInvalidDuration ErrorCode = "INVALID_DURATION"

	// ErrCodeNoSlot indicates no free interval of the requested length
	// fits in the business-hours window.
	ErrCodeNoSlot ErrorCode = "NO_SLOT_AVAILABLE"

	// ErrCodeCorruptStore indicates persisted state that exists but
	// cannot be decoded into valid events.
	ErrCodeCorruptStore ErrorCode = "CORRUPT_STORE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// NewConflictError creates an Error carrying the conflicting event.
func NewConflictError(conflicting event.Event) *Error {
	iv := event.Interval{Start: conflicting.Start(), End: conflicting.End()}
	return &Error{
		Code:     ErrCodeConflict,
		Message:  fmt.Sprintf("overlaps existing event %q (%s)", conflicting.Title(), iv),
		Conflict: &conflicting,
	}
}

// NewNotFoundError creates an Error for an absent deletion target.
func NewNotFoundError(id string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("no event with id %q", id),
		ID:      id,
	}
}

// NewInvalidDurationError creates an Error for a non-positive slot request.
func NewInvalidDurationError(minutes int) *Error {
	return &Error{
		Code:    ErrCodeInvalidDuration,
		Message: fmt.Sprintf("slot duration must be positive, got %d", minutes),
	}
}

// NewNoSlotError creates an Error for an exhausted business-hours window.
func NewNoSlotError(date time.Time, minutes int) *Error {
	return &Error{
		Code:    ErrCodeNoSlot,
		Message: fmt.Sprintf("no %d-minute slot available on %s", minutes, date.Format("2006-01-02")),
	}
}

// NewCorruptStoreError creates an Error for undecodable persisted state.
func NewCorruptStoreError(message string, err error) *Error {
	return &Error{Code: ErrCodeCorruptStore, Message: message, Err: err}
}

// IsConflictError returns true if the error is an overlap rejection.
// Uses errors.As to handle wrapped errors.
func IsConflictError(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeConflict
	}
	return false
}

// IsNotFoundError returns true if the error is a missing deletion target.
// Uses errors.As to handle wrapped errors.
func IsNotFoundError(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeNotFound
	}
	return false
}

// IsInvalidDurationError returns true if the error is a non-positive
// slot request. Uses errors.As to handle wrapped errors.
func IsInvalidDurationError(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvalidDuration
	}
	return false
}

// IsNoSlotError returns true if the error is an exhausted slot search.
// Uses errors.As to handle wrapped errors.
func IsNoSlotError(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeNoSlot
	}
	return false
}

// IsCorruptStoreError returns true if the error is a persisted-state
// decode failure. Uses errors.As to handle wrapped errors.
func IsCorruptStoreError(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeCorruptStore
	}
	return false
}
