package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks caller-fixable request validation failures
	// (subject, attendees, email shape, duration, time range). Raised before
	// any engine call and never retried automatically.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidSlot marks a malformed or inverted time window supplied to
	// confirm. Checked only on the confirm path.
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrEngineUnavailable marks a backend transport/auth failure. Recoverable
	// by caller retry or engine switch; distinct from "no slots found".
	ErrEngineUnavailable = errors.New("engine unavailable")

	// ErrSlotConflict marks a booking attempted on a slot that is no longer
	// free. The caller must re-propose.
	ErrSlotConflict = errors.New("slot conflict")
)

// RequestError is a validation failure naming the violated field. It unwraps
// to ErrInvalidRequest so callers can match the whole class with errors.Is.
type RequestError struct {
	// Field names the violated request field ("subject", "attendees",
	// "email", "duration", "time_range").
	Field string

	// Email carries the offending attendee address for email violations.
	Email string

	// Reason is the caller-facing message, surfaced verbatim.
	Reason string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Email != "" {
		return fmt.Sprintf("invalid request: %s (%s)", e.Reason, e.Email)
	}
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// Unwrap ties the error into the ErrInvalidRequest class.
func (e *RequestError) Unwrap() error { return ErrInvalidRequest }

// SlotError is a slot validation failure on the confirm path. It unwraps to
// ErrInvalidSlot.
type SlotError struct {
	Reason string
}

// Error implements the error interface.
func (e *SlotError) Error() string { return fmt.Sprintf("invalid slot: %s", e.Reason) }

// Unwrap ties the error into the ErrInvalidSlot class.
func (e *SlotError) Unwrap() error { return ErrInvalidSlot }
