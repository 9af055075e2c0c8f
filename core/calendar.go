package core

import "context"

// FreeBusySource resolves per-attendee calendar availability. Implementations
// can back lookups with a real calendar API, a cache or an in-memory fixture.
type FreeBusySource interface {
	// Busy returns the attendee's busy blocks overlapping the window, in
	// ascending start order. An unknown attendee has no busy blocks.
	Busy(ctx context.Context, email string, window TimeWindow) ([]TimeWindow, error)
}

// CalendarStore is the system of record an engine books against. State needed
// for idempotent booking (dedup keys, conflict detection) lives here, not in
// the coordinator.
type CalendarStore interface {
	FreeBusySource

	// Insert books the meeting, marking the slot busy for every attendee and
	// returning the assigned event ID. A retried insert carrying the same
	// (subject, emails, slot) tuple returns the original event ID; a booking
	// whose slot overlaps an attendee's existing busy block fails with
	// ErrSlotConflict.
	Insert(ctx context.Context, b Booking) (string, error)
}
