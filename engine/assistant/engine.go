// Package assistant implements the secondary scheduling engine: slot
// proposals produced by a language model behind the llm.Model contract.
//
// The enhanced request is rendered into a single JSON prompt; the model is
// asked for a strict JSON array of scored slots, which is then parsed,
// filtered against the request bounds and normalized into the ordering
// contract. Model transport failures and unparseable replies surface as
// core.ErrEngineUnavailable, never as validation errors and never as a
// silent empty result.
//
// Booking is delegated to the shared CalendarStore so idempotence and
// conflict detection live in the system of record, exactly as for the
// calendar engine.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/meetmesh/core"
	"github.com/hupe1980/meetmesh/llm"
	"github.com/hupe1980/meetmesh/policy"
)

// Name identifies the engine in logs and trace records.
const Name = "assistant"

// instructions frames every completion. The reply contract is strict JSON so
// normalization stays mechanical.
const instructions = `You are a meeting scheduling assistant. Given a meeting request as JSON,
propose candidate time slots. Respond with ONLY a JSON array, no prose:
[{"start":"RFC3339","end":"RFC3339","score":0-100,"reason":"short text"}]
Every slot must have exactly the requested duration, lie inside the given
bounds and business hours, and the array must be sorted by descending score.`

// Options configures the assistant engine.
type Options struct {
	// TopN caps the number of returned proposals. Defaults to 3.
	TopN int
}

// WithTopN overrides the proposal cap.
func WithTopN(n int) func(o *Options) {
	return func(o *Options) { o.TopN = n }
}

// Engine proposes slots via a language model and books them against a
// CalendarStore. Stateless; safe for concurrent callers.
type Engine struct {
	model llm.Model
	store core.CalendarStore
	pol   policy.Policy
	opts  Options
}

// New constructs an assistant engine. The store is required: booking without
// a system of record could not honor the idempotence and conflict contract.
func New(model llm.Model, store core.CalendarStore, pol policy.Policy, optFns ...func(o *Options)) *Engine {
	opts := Options{TopN: 3}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{model: model, store: store, pol: pol, opts: opts}
}

// Name implements core.Engine.
func (e *Engine) Name() string { return Name }

// promptPayload is the request rendering handed to the model.
type promptPayload struct {
	Subject         string               `json:"subject"`
	DurationMinutes int                  `json:"duration_minutes"`
	Earliest        string               `json:"earliest,omitempty"`
	Latest          string               `json:"latest,omitempty"`
	Attendees       []promptAttendee     `json:"attendees"`
	BusinessHours   policy.BusinessHours `json:"business_hours"`
}

type promptAttendee struct {
	Email    string `json:"email"`
	Required bool   `json:"required"`
}

// rawSlot is the reply element shape expected from the model.
type rawSlot struct {
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Propose implements core.Engine.
func (e *Engine) Propose(ctx context.Context, req core.MeetingRequest) ([]core.Proposal, error) {
	prompt, err := e.buildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("assistant engine: render request: %w: %w", core.ErrEngineUnavailable, err)
	}

	reply, err := e.model.Complete(ctx, instructions, prompt)
	if err != nil {
		return nil, fmt.Errorf("assistant engine: model call: %w: %w", core.ErrEngineUnavailable, err)
	}

	slots, err := parseReply(reply)
	if err != nil {
		return nil, fmt.Errorf("assistant engine: %w: %w", core.ErrEngineUnavailable, err)
	}

	proposals := e.normalize(req, slots)
	core.SortProposals(proposals)
	if len(proposals) > e.opts.TopN {
		proposals = proposals[:e.opts.TopN]
	}
	return proposals, nil
}

// Book implements core.Engine by delegating to the store.
func (e *Engine) Book(ctx context.Context, req core.MeetingRequest, slot core.TimeWindow) (core.BookingResult, error) {
	eventID, err := e.store.Insert(ctx, core.Booking{
		Subject: req.Subject,
		Emails:  req.Emails(),
		Slot:    slot,
	})
	if err != nil {
		return core.BookingResult{}, fmt.Errorf("assistant engine: %w", err)
	}
	return core.BookingResult{EventID: eventID}, nil
}

// buildPrompt renders the enhanced request and policy window into the model
// prompt.
func (e *Engine) buildPrompt(req core.MeetingRequest) (string, error) {
	payload := promptPayload{
		Subject:         req.Subject,
		DurationMinutes: e.duration(req),
		BusinessHours:   e.pol.BusinessHours,
	}
	if !req.Earliest.IsZero() {
		payload.Earliest = req.Earliest.Format(time.RFC3339)
	}
	if !req.Latest.IsZero() {
		payload.Latest = req.Latest.Format(time.RFC3339)
	}
	for _, a := range req.Attendees {
		payload.Attendees = append(payload.Attendees, promptAttendee{Email: a.Email, Required: a.Required})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (e *Engine) duration(req core.MeetingRequest) int {
	if req.DurationMinutes != nil {
		return *req.DurationMinutes
	}
	return e.pol.DefaultDurationMinutes
}

// parseReply extracts and decodes the JSON array from the model reply,
// tolerating surrounding prose or code fences.
func parseReply(reply string) ([]rawSlot, error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in assistant reply")
	}

	var slots []rawSlot
	if err := json.Unmarshal([]byte(reply[start:end+1]), &slots); err != nil {
		return nil, fmt.Errorf("unparseable assistant reply: %v", err)
	}
	return slots, nil
}

// normalize drops slots that break the engine contract (bad timestamps,
// duration mismatch, outside the request bounds) and clamps scores to [0,100].
func (e *Engine) normalize(req core.MeetingRequest, slots []rawSlot) []core.Proposal {
	want := time.Duration(e.duration(req)) * time.Minute

	var out []core.Proposal
	for _, s := range slots {
		w, err := (core.SlotInput{Start: s.Start, End: s.End}).Parse()
		if err != nil {
			continue
		}
		if w.Duration() != want {
			continue
		}
		if !req.Earliest.IsZero() && w.Start.Before(req.Earliest) {
			continue
		}
		if !req.Latest.IsZero() && w.End.After(req.Latest) {
			continue
		}

		score := s.Score
		if score < 0 {
			score = 0
		} else if score > 100 {
			score = 100
		}

		out = append(out, core.Proposal{Slot: w, Score: score, Reason: s.Reason})
	}
	return out
}
