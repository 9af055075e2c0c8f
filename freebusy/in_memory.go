package freebusy

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hupe1980/meetmesh/core"
)

// bookingNamespace scopes the deterministic dedup UUIDs generated for retried
// bookings.
var bookingNamespace = uuid.MustParse("8a4bdfee-6f3a-4b36-9d3e-2f5a7f1c9b60")

// booked records a confirmed meeting under its dedup key.
type booked struct {
	eventID string
	booking core.Booking
}

// InMemoryStore is a volatile CalendarStore holding per-attendee busy blocks
// and confirmed bookings in process-local maps. It is safe for concurrent
// access and serves as the default system of record for development, tests
// and examples.
//
// Idempotence: Insert derives a deterministic dedup key from the
// (subject, emails, slot) tuple. A retried insert carrying the same tuple
// returns the original event ID instead of double-booking. A booking whose
// slot overlaps an attendee's existing busy block fails with
// core.ErrSlotConflict.
type InMemoryStore struct {
	mu       sync.RWMutex
	busy     map[string][]core.TimeWindow // email -> busy blocks, ascending by start
	bookings map[string]booked            // dedup key -> confirmed booking
}

// NewInMemoryStore constructs an empty in-memory calendar store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		busy:     make(map[string][]core.TimeWindow),
		bookings: make(map[string]booked),
	}
}

// AddBusy seeds busy blocks for an attendee, keeping the per-attendee slice
// sorted ascending by start. Invalid windows are rejected.
func (s *InMemoryStore) AddBusy(email string, windows ...core.TimeWindow) error {
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("busy block for %s: %w", email, err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy[email] = append(s.busy[email], windows...)
	sortWindows(s.busy[email])
	return nil
}

// Busy returns copies of the attendee's busy blocks overlapping the window,
// in ascending start order. An unknown attendee has no busy blocks.
func (s *InMemoryStore) Busy(ctx context.Context, email string, window core.TimeWindow) ([]core.TimeWindow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.TimeWindow
	for _, b := range s.busy[email] {
		if b.Overlaps(window) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Insert books the meeting, marking the slot busy for every attendee and
// returning the assigned event ID.
func (s *InMemoryStore) Insert(ctx context.Context, b core.Booking) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := DedupKey(b)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Retried booking: hand back the original event ID.
	if prev, ok := s.bookings[key]; ok {
		return prev.eventID, nil
	}

	for _, email := range b.Emails {
		for _, busy := range s.busy[email] {
			if busy.Overlaps(b.Slot) {
				return "", fmt.Errorf("%w: %s is busy %s", core.ErrSlotConflict, email, busy)
			}
		}
	}

	eventID := uuid.NewString()
	s.bookings[key] = booked{eventID: eventID, booking: b}
	for _, email := range b.Emails {
		s.busy[email] = append(s.busy[email], b.Slot)
		sortWindows(s.busy[email])
	}

	return eventID, nil
}

// Booking returns the confirmed booking for an event ID, with a found flag.
// Used by debrief generation and tests.
func (s *InMemoryStore) Booking(eventID string) (core.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, bk := range s.bookings {
		if bk.eventID == eventID {
			return bk.booking, true
		}
	}
	return core.Booking{}, false
}

// DedupKey derives the deterministic idempotence key for a booking: a v5 UUID
// over the normalized (subject, emails, slot) tuple. Attendee order does not
// affect the key.
func DedupKey(b core.Booking) string {
	emails := make([]string, len(b.Emails))
	copy(emails, b.Emails)
	sort.Strings(emails)
	raw := strings.Join([]string{b.Subject, strings.Join(emails, ","), b.Slot.String()}, "|")
	return uuid.NewSHA1(bookingNamespace, []byte(raw)).String()
}

func sortWindows(ws []core.TimeWindow) {
	sort.Slice(ws, func(i, j int) bool { return ws[i].Start.Before(ws[j].Start) })
}
