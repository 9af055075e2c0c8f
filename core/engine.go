package core

import "context"

// Engine is the capability contract every scheduling backend must satisfy,
// whether calendar-backed, AI-assistant-backed or a deterministic test double.
//
// A concrete implementation is responsible for:
//   - Proposing scored slots for an enhanced (policy-defaulted) request
//   - Booking a specific slot against its system of record
//
// Implementations MUST:
//   - Return proposals whose duration equals the enhanced request's duration,
//     each wholly contained in [Earliest, Latest] when those bounds are set
//   - Return proposals pre-sorted by descending score (ties by earliest start)
//   - Treat an empty proposal slice as a valid "no feasible slot" outcome,
//     never as an error
//   - Make Book idempotent for retried calls carrying the same
//     (subject, attendees, slot) tuple, and fail with ErrSlotConflict rather
//     than silently double-book when the slot is no longer free
//   - Signal backend failures as ErrEngineUnavailable or ErrSlotConflict,
//     never as a validation error
//
// Engines never perform request validation; that is the coordinator's
// exclusive responsibility.
type Engine interface {
	// Name identifies the engine in logs and trace records.
	Name() string

	// Propose returns scored candidate slots for the enhanced request.
	Propose(ctx context.Context, req MeetingRequest) ([]Proposal, error)

	// Book confirms the given slot and returns the backend-assigned event ID.
	Book(ctx context.Context, req MeetingRequest, slot TimeWindow) (BookingResult, error)
}
