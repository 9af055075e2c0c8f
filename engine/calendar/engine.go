// Package calendar implements the primary scheduling engine: deterministic,
// policy-driven slot generation and scoring over a core.CalendarStore.
//
// Candidates are generated at a fixed granularity inside the request window
// intersected with business hours, scored by attendee availability, proximity
// to the middle of the business day and buffer pressure against adjacent busy
// blocks, then returned top-N by descending score. Scoring is side-effect free
// and exactly reproducible given the same store contents.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/meetmesh/core"
	"github.com/hupe1980/meetmesh/policy"
)

// Name identifies the engine in logs and trace records.
const Name = "calendar"

// Options configures the calendar engine.
type Options struct {
	// Granularity is the candidate slot boundary step. Defaults to 15 minutes.
	Granularity time.Duration

	// TopN caps the number of returned proposals. Defaults to 3, matching the
	// organizational "propose top 3" policy.
	TopN int

	// Horizon bounds the search when the request has no Latest. Defaults to
	// seven days past the effective earliest.
	Horizon time.Duration

	// MaxDays caps the number of days scanned regardless of the request
	// window, bounding work on degenerate inputs. Defaults to 60.
	MaxDays int

	// Clock supplies the current time when the request has no Earliest.
	// Overridable for deterministic tests. Defaults to time.Now.
	Clock func() time.Time
}

// WithTopN overrides the proposal cap.
func WithTopN(n int) func(o *Options) {
	return func(o *Options) { o.TopN = n }
}

// WithGranularity overrides the candidate boundary step.
func WithGranularity(d time.Duration) func(o *Options) {
	return func(o *Options) { o.Granularity = d }
}

// WithHorizon overrides the open-ended search horizon.
func WithHorizon(d time.Duration) func(o *Options) {
	return func(o *Options) { o.Horizon = d }
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) func(o *Options) {
	return func(o *Options) { o.Clock = clock }
}

// Engine proposes and books slots against a CalendarStore. It holds no
// mutable state of its own; idempotence and conflict detection live in the
// store, so the engine is safe for unlimited concurrent callers.
type Engine struct {
	store core.CalendarStore
	pol   policy.Policy
	opts  Options
}

// New constructs a calendar engine over the given system of record.
func New(store core.CalendarStore, pol policy.Policy, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Granularity: 15 * time.Minute,
		TopN:        3,
		Horizon:     7 * 24 * time.Hour,
		MaxDays:     60,
		Clock:       time.Now,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{store: store, pol: pol, opts: opts}
}

// Name implements core.Engine.
func (e *Engine) Name() string { return Name }

// Propose implements core.Engine. The request is assumed enhanced (duration
// filled); an empty result means no feasible slot, not an error.
func (e *Engine) Propose(ctx context.Context, req core.MeetingRequest) ([]core.Proposal, error) {
	duration := req.Duration()
	if duration <= 0 {
		duration = time.Duration(e.pol.DefaultDurationMinutes) * time.Minute
	}

	window := e.searchWindow(req)

	proposals, err := e.scoreCandidates(ctx, req, window, duration)
	if err != nil {
		return nil, err
	}

	core.SortProposals(proposals)
	if len(proposals) > e.opts.TopN {
		proposals = proposals[:e.opts.TopN]
	}
	return proposals, nil
}

// Book implements core.Engine by delegating to the store, which owns dedup
// keys and conflict detection.
func (e *Engine) Book(ctx context.Context, req core.MeetingRequest, slot core.TimeWindow) (core.BookingResult, error) {
	eventID, err := e.store.Insert(ctx, core.Booking{
		Subject: req.Subject,
		Emails:  req.Emails(),
		Slot:    slot,
	})
	if err != nil {
		return core.BookingResult{}, fmt.Errorf("calendar engine: %w", err)
	}
	return core.BookingResult{EventID: eventID}, nil
}

// searchWindow resolves the effective [earliest, latest] bounds: an absent
// earliest starts now (rounded up to the next boundary), an absent latest
// closes the horizon.
func (e *Engine) searchWindow(req core.MeetingRequest) core.TimeWindow {
	earliest := req.Earliest
	if earliest.IsZero() {
		earliest = roundUp(e.opts.Clock(), e.opts.Granularity)
	}
	latest := req.Latest
	if latest.IsZero() {
		latest = earliest.Add(e.opts.Horizon)
	}
	return core.TimeWindow{Start: earliest, End: latest}
}

// roundUp aligns t to the next granularity boundary (no-op when aligned).
func roundUp(t time.Time, g time.Duration) time.Time {
	aligned := t.Truncate(g)
	if aligned.Before(t) {
		aligned = aligned.Add(g)
	}
	return aligned
}
