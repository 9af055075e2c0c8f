package testutil

import (
	"time"

	"github.com/hupe1980/meetmesh/core"
)

// RequestBuilder helps construct meeting requests with fluent chaining for tests.
// Example:
//
//	req := NewRequestBuilder("Sync").Attendee("a@x.com").Duration(30).Build()
type RequestBuilder struct {
	req core.MeetingRequest
}

// NewRequestBuilder creates a new builder for a request with the given subject.
// Use chainable methods (Attendee, Duration, Between) then call Build.
func NewRequestBuilder(subject string) *RequestBuilder {
	return &RequestBuilder{req: core.MeetingRequest{Subject: subject}}
}

// Attendee appends a required attendee (chainable).
func (b *RequestBuilder) Attendee(email string) *RequestBuilder {
	b.req.Attendees = append(b.req.Attendees, core.NewAttendee(email))
	return b
}

// OptionalAttendee appends an optional attendee (chainable).
func (b *RequestBuilder) OptionalAttendee(email string) *RequestBuilder {
	b.req.Attendees = append(b.req.Attendees, core.NewOptionalAttendee(email))
	return b
}

// Duration sets the requested duration in minutes (chainable).
func (b *RequestBuilder) Duration(minutes int) *RequestBuilder {
	b.req.DurationMinutes = core.Minutes(minutes)
	return b
}

// Between sets the earliest and latest bounds (chainable).
func (b *RequestBuilder) Between(earliest, latest time.Time) *RequestBuilder {
	b.req.Earliest = earliest
	b.req.Latest = latest
	return b
}

// Constraint sets a free-form constraint key/value pair (chainable).
func (b *RequestBuilder) Constraint(key, value string) *RequestBuilder {
	if b.req.Constraints == nil {
		b.req.Constraints = map[string]string{}
	}
	b.req.Constraints[key] = value
	return b
}

// Build returns the assembled core.MeetingRequest.
func (b *RequestBuilder) Build() core.MeetingRequest {
	return b.req.Clone()
}
