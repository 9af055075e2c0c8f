package coordinator

import (
	"strings"

	"github.com/hupe1980/meetmesh/core"
	"github.com/hupe1980/meetmesh/policy"
)

// validateRequest enforces the request preconditions in a fixed order; the
// first failing check wins and no partial validation state leaks.
func validateRequest(req core.MeetingRequest) error {
	if strings.TrimSpace(req.Subject) == "" {
		return &core.RequestError{Field: "subject", Reason: "subject required"}
	}

	if len(req.Attendees) == 0 {
		return &core.RequestError{Field: "attendees", Reason: "attendee required"}
	}

	for _, a := range req.Attendees {
		if !core.ValidEmail(a.Email) {
			return &core.RequestError{Field: "email", Email: a.Email, Reason: "invalid email"}
		}
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return &core.RequestError{Field: "duration", Reason: "duration must be positive"}
	}

	if !req.Earliest.IsZero() && !req.Latest.IsZero() && !req.Earliest.Before(req.Latest) {
		return &core.RequestError{Field: "time_range", Reason: "earliest must precede latest"}
	}

	return nil
}

// enhance derives the policy-defaulted request handed to the engine. The
// caller's value is never mutated; a deep copy carries the filled duration.
func enhance(req core.MeetingRequest, pol policy.Policy) core.MeetingRequest {
	out := req.Clone()
	if out.DurationMinutes == nil {
		d := pol.DefaultDurationMinutes
		out.DurationMinutes = &d
	}
	return out
}
