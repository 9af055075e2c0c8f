package core

import (
	"regexp"
	"time"
)

// emailPattern is a deliberately loose shape check: one '@', a non-empty local
// part and a dotted domain. Full RFC 5322 validation is not attempted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s matches the basic address shape accepted for
// attendees and contact profiles.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// Attendee is a meeting participant identified by email. Email is the join
// key to contact/profile data; there is no other identity. Required attendees
// gate slot feasibility, optional attendees only influence scoring.
type Attendee struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Required bool   `json:"required"`
}

// NewAttendee constructs a required attendee (the default per the data model).
func NewAttendee(email string) Attendee {
	return Attendee{Email: email, Required: true}
}

// NewOptionalAttendee constructs an attendee whose availability is scored but
// never gates a slot.
func NewOptionalAttendee(email string) Attendee {
	return Attendee{Email: email, Required: false}
}

// Minutes returns a pointer to n, for populating MeetingRequest.DurationMinutes
// inline. A nil duration means "absent, fill from policy"; an explicit
// non-positive value is a validation error, so presence must be distinguishable
// from zero.
func Minutes(n int) *int { return &n }

// MeetingRequest is the caller-supplied description of a meeting to schedule.
// Zero-value Earliest/Latest mean "unbounded"; a nil DurationMinutes is filled
// from policy during enhancement. Requests are validated and discarded after
// the call completes; the coordinator never mutates the caller's value.
type MeetingRequest struct {
	Subject         string            `json:"subject"`
	Attendees       []Attendee        `json:"attendees"`
	DurationMinutes *int              `json:"duration_minutes,omitempty"`
	Earliest        time.Time         `json:"earliest,omitzero"`
	Latest          time.Time         `json:"latest,omitzero"`
	Constraints     map[string]string `json:"constraints,omitempty"`
}

// Clone returns a deep copy. Enhancement derives a new request from the
// caller's input, so shared slices and maps must not alias.
func (r MeetingRequest) Clone() MeetingRequest {
	out := r
	if r.Attendees != nil {
		out.Attendees = make([]Attendee, len(r.Attendees))
		copy(out.Attendees, r.Attendees)
	}
	if r.DurationMinutes != nil {
		d := *r.DurationMinutes
		out.DurationMinutes = &d
	}
	if r.Constraints != nil {
		out.Constraints = make(map[string]string, len(r.Constraints))
		for k, v := range r.Constraints {
			out.Constraints[k] = v
		}
	}
	return out
}

// Emails returns the attendee emails in request order.
func (r MeetingRequest) Emails() []string {
	emails := make([]string, len(r.Attendees))
	for i, a := range r.Attendees {
		emails[i] = a.Email
	}
	return emails
}

// Duration returns the enhanced duration as a time.Duration. It is only
// meaningful after enhancement has filled DurationMinutes.
func (r MeetingRequest) Duration() time.Duration {
	if r.DurationMinutes == nil {
		return 0
	}
	return time.Duration(*r.DurationMinutes) * time.Minute
}
