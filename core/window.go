package core

import (
	"fmt"
	"time"
)

// TimeWindow is an immutable half-open time range [Start, End) with the
// invariant Start < End. It is the unit of currency for busy blocks, candidate
// slots and confirmed bookings.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeWindow constructs a TimeWindow without validating it. Call Validate
// before trusting caller-supplied values.
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start, End: end}
}

// Validate checks the window invariant: both endpoints set and Start < End.
func (w TimeWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return &SlotError{Reason: "invalid time slot format"}
	}
	if !w.Start.Before(w.End) {
		return &SlotError{Reason: "start must precede end"}
	}
	return nil
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration { return w.End.Sub(w.Start) }

// Overlaps reports whether the two windows share any instant. Touching
// endpoints (w.End == o.Start) do not overlap.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Contains reports whether o lies wholly within w (endpoints inclusive).
func (w TimeWindow) Contains(o TimeWindow) bool {
	return !o.Start.Before(w.Start) && !o.End.After(w.End)
}

// Input converts the window into its wire form (RFC 3339 strings), the shape
// accepted at the confirm boundary.
func (w TimeWindow) Input() SlotInput {
	return SlotInput{
		Start: w.Start.Format(time.RFC3339),
		End:   w.End.Format(time.RFC3339),
	}
}

// String renders the window for logs and proposal reasons.
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s - %s", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// SlotInput is a time window as received from a caller confirming a slot:
// two RFC 3339 timestamp strings that have not been validated yet. Parsing
// failures surface as InvalidSlot errors, never as request validation errors.
type SlotInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Parse converts the raw input into a validated TimeWindow.
func (s SlotInput) Parse() (TimeWindow, error) {
	start, err := time.Parse(time.RFC3339, s.Start)
	if err != nil {
		return TimeWindow{}, &SlotError{Reason: "invalid time slot format"}
	}
	end, err := time.Parse(time.RFC3339, s.End)
	if err != nil {
		return TimeWindow{}, &SlotError{Reason: "invalid time slot format"}
	}
	w := TimeWindow{Start: start, End: end}
	if !start.Before(end) {
		return TimeWindow{}, &SlotError{Reason: "start must precede end"}
	}
	return w, nil
}
