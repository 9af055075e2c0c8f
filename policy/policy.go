// Package policy holds the process-wide scheduling defaults (business hours,
// buffers, limits) consumed read-only by the coordinator and engines. A Policy
// is loaded once, from code or from a YAML file, validated, and passed as an
// explicit constructor argument; nothing in MeetMesh reaches for it through a
// global at call time.
package policy

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// BusinessHours is the daily scheduling window in a single IANA timezone.
// Start and End use the 24h "HH:MM" form.
type BusinessHours struct {
	Start    string `yaml:"start" json:"start"`
	End      string `yaml:"end" json:"end"`
	Timezone string `yaml:"timezone" json:"timezone"`
}

// Policy is the immutable set of organizational scheduling defaults. It is
// never mutated by the coordinator; enhancement produces derived requests
// instead.
type Policy struct {
	BusinessHours              BusinessHours `yaml:"business_hours" json:"business_hours"`
	MinBufferMinutes           int           `yaml:"min_buffer_minutes" json:"min_buffer_minutes"`
	MaxMeetingsPerDay          int           `yaml:"max_meetings_per_day" json:"max_meetings_per_day"`
	DefaultDurationMinutes     int           `yaml:"default_duration_minutes" json:"default_duration_minutes"`
	AutoApproveTrustedContacts bool          `yaml:"auto_approve_trusted_contacts" json:"auto_approve_trusted_contacts"`
}

// Default returns the baseline organizational policy: 09:00-17:00 Asia/Dubai,
// 15 minute buffers, at most 6 meetings per attendee per day and a 45 minute
// default meeting length.
func Default() Policy {
	return Policy{
		BusinessHours: BusinessHours{
			Start:    "09:00",
			End:      "17:00",
			Timezone: "Asia/Dubai",
		},
		MinBufferMinutes:           15,
		MaxMeetingsPerDay:          6,
		DefaultDurationMinutes:     45,
		AutoApproveTrustedContacts: false,
	}
}

// FromYAML parses a policy document, filling unset fields from Default and
// validating the result.
func FromYAML(data []byte) (Policy, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// LoadFile reads and parses a policy YAML file.
func LoadFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file: %w", err)
	}
	return FromYAML(data)
}

// Validate checks internal consistency: parseable business hours that start
// before they end, a loadable timezone and positive limits.
func (p Policy) Validate() error {
	start, err := parseClock(p.BusinessHours.Start)
	if err != nil {
		return fmt.Errorf("invalid business hours start %q: %w", p.BusinessHours.Start, err)
	}
	end, err := parseClock(p.BusinessHours.End)
	if err != nil {
		return fmt.Errorf("invalid business hours end %q: %w", p.BusinessHours.End, err)
	}
	if start >= end {
		return fmt.Errorf("business hours start %q must precede end %q", p.BusinessHours.Start, p.BusinessHours.End)
	}
	if _, err := time.LoadLocation(p.BusinessHours.Timezone); err != nil {
		return fmt.Errorf("invalid business hours timezone %q: %w", p.BusinessHours.Timezone, err)
	}
	if p.MinBufferMinutes < 0 {
		return fmt.Errorf("min buffer minutes must be non-negative, got %d", p.MinBufferMinutes)
	}
	if p.MaxMeetingsPerDay <= 0 {
		return fmt.Errorf("max meetings per day must be positive, got %d", p.MaxMeetingsPerDay)
	}
	if p.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("default duration minutes must be positive, got %d", p.DefaultDurationMinutes)
	}
	return nil
}

// Location loads the policy timezone. Policies are validated before use, so
// lookup failures fall back to UTC rather than surfacing mid-scheduling.
func (p Policy) Location() *time.Location {
	loc, err := time.LoadLocation(p.BusinessHours.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayStart and DayEnd return the business-hours bounds as offsets from local
// midnight.
func (p Policy) DayStart() time.Duration {
	d, _ := parseClock(p.BusinessHours.Start)
	return d
}

// DayEnd returns the business-hours end offset from local midnight.
func (p Policy) DayEnd() time.Duration {
	d, _ := parseClock(p.BusinessHours.End)
	return d
}

// MinBuffer returns the buffer requirement as a time.Duration.
func (p Policy) MinBuffer() time.Duration {
	return time.Duration(p.MinBufferMinutes) * time.Minute
}

// parseClock converts "HH:MM" into an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("expected HH:MM: %w", err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}
