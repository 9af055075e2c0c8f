package core

import "sort"

// Proposal is a scored candidate time slot for a meeting. Scores live in
// [0,100]; engines return proposals pre-sorted by descending score with ties
// broken by earliest start.
type Proposal struct {
	Slot   TimeWindow `json:"slot"`
	Score  float64    `json:"score"`
	Reason string     `json:"reason,omitempty"`
}

// SortProposals orders proposals in place by descending score, ties broken by
// earliest start time. Engines use it to satisfy the ordering contract.
func SortProposals(ps []Proposal) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].Score != ps[j].Score {
			return ps[i].Score > ps[j].Score
		}
		return ps[i].Slot.Start.Before(ps[j].Slot.Start)
	})
}

// BookingResult is the engine's confirmation of a booked slot. EventID is
// opaque, engine-assigned and non-empty on success; the coordinator returns it
// unchanged.
type BookingResult struct {
	EventID string `json:"event_id"`
}

// Booking is the record an engine hands to a CalendarStore when confirming a
// slot. The (Subject, Emails, Slot) tuple is the idempotence key for retried
// bookings.
type Booking struct {
	Subject string     `json:"subject"`
	Emails  []string   `json:"emails"`
	Slot    TimeWindow `json:"slot"`
}
