// Package meetmesh provides a high-level façade over the scheduling
// coordinator and service abstractions (engines, calendar, contacts &
// logging) enabling rapid construction of meeting scheduling assistants.
// Most applications interact with this package by:
//  1. Creating a MeetMesh via New() (optionally overriding default in-memory services)
//  2. Proposing ranked time slots for a meeting request (ProposeSlots)
//  3. Confirming one of the proposed slots into a booking (ConfirmSlot)
//
// The façade delegates validation, enhancement and dispatch to
// coordinator.Coordinator while keeping setup and usage ergonomics concise.
// All defaults are safe for local development and testing; production
// deployments typically supply a durable calendar store, a real language
// model and a structured logger.
package meetmesh

import (
	"context"
	"fmt"

	"github.com/hupe1980/meetmesh/brief"
	"github.com/hupe1980/meetmesh/contact"
	"github.com/hupe1980/meetmesh/coordinator"
	"github.com/hupe1980/meetmesh/core"
	"github.com/hupe1980/meetmesh/engine/assistant"
	"github.com/hupe1980/meetmesh/engine/calendar"
	"github.com/hupe1980/meetmesh/freebusy"
	"github.com/hupe1980/meetmesh/llm"
	"github.com/hupe1980/meetmesh/logging"
	"github.com/hupe1980/meetmesh/policy"
)

// Options configures the MeetMesh instance.
type Options struct {
	// Policy holds the organizational scheduling defaults. Defaults to
	// policy.Default().
	Policy policy.Policy

	// EngineToggle is the external selection signal, read exactly once at
	// construction: "true" selects the assistant engine, anything else the
	// calendar engine. Ignored when Engine is set.
	EngineToggle string

	// Engine overrides selection entirely with a caller-supplied engine.
	Engine core.Engine

	// Calendar is the system of record engines book against.
	// Defaults to an in-memory implementation.
	Calendar core.CalendarStore

	// Contacts stores attendee profiles for brief generation.
	// Defaults to an in-memory implementation.
	Contacts core.ContactStore

	// Model backs the assistant engine when selected. Defaults to a mock
	// model suitable for development only.
	Model llm.Model

	// TopN caps the number of proposals per request. Zero keeps the engine
	// default (3).
	TopN int

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// MeetMesh is the high-level façade aggregating the coordinator and services.
type MeetMesh struct {
	opts        Options
	coordinator *coordinator.Coordinator
	calendar    core.CalendarStore
	contacts    core.ContactStore
}

// New creates a new MeetMesh instance with optional overrides. Any unset
// service is initialized with an in-memory implementation, and the engine is
// resolved exactly once from the selection toggle.
func New(optFns ...func(o *Options)) *MeetMesh {
	opts := Options{
		Policy:   policy.Default(),
		Calendar: freebusy.NewInMemoryStore(),
		Contacts: contact.NewInMemoryStore(),
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	eng := opts.Engine
	if eng == nil {
		eng = buildEngine(opts)
	}

	coord := coordinator.New(eng, opts.Policy, coordinator.WithLogger(opts.Logger))

	return &MeetMesh{
		opts:        opts,
		coordinator: coord,
		calendar:    opts.Calendar,
		contacts:    opts.Contacts,
	}
}

// buildEngine instantiates the engine the selector resolves for the toggle.
func buildEngine(opts Options) core.Engine {
	switch coordinator.ResolveEngineKind(opts.EngineToggle) {
	case coordinator.EngineAssistant:
		model := opts.Model
		if model == nil {
			model = llm.NewMockModel("assistant-dev")
		}
		var engOpts []func(o *assistant.Options)
		if opts.TopN > 0 {
			engOpts = append(engOpts, assistant.WithTopN(opts.TopN))
		}
		return assistant.New(model, opts.Calendar, opts.Policy, engOpts...)
	default:
		var engOpts []func(o *calendar.Options)
		if opts.TopN > 0 {
			engOpts = append(engOpts, calendar.WithTopN(opts.TopN))
		}
		return calendar.New(opts.Calendar, opts.Policy, engOpts...)
	}
}

// ProposeSlots validates the request, applies policy defaults and returns the
// active engine's ranked slot proposals.
func (m *MeetMesh) ProposeSlots(ctx context.Context, req core.MeetingRequest) ([]core.Proposal, error) {
	return m.coordinator.ProposeSlots(ctx, req)
}

// ConfirmSlot validates the request and slot, then books the slot through the
// active engine, returning the engine-assigned event ID.
func (m *MeetMesh) ConfirmSlot(ctx context.Context, req core.MeetingRequest, slot core.SlotInput) (core.BookingResult, error) {
	return m.coordinator.ConfirmSlot(ctx, req, slot)
}

// EngineName reports the identity of the engine resolved at construction.
func (m *MeetMesh) EngineName() string { return m.coordinator.EngineName() }

// Calendar returns the calendar store the engines book against.
func (m *MeetMesh) Calendar() core.CalendarStore { return m.calendar }

// Contacts returns the contact store used for brief generation.
func (m *MeetMesh) Contacts() core.ContactStore { return m.contacts }

// BuildBrief renders a markdown attendee brief for the given emails from the
// contact store.
func (m *MeetMesh) BuildBrief(emails []string) (string, error) {
	return brief.Build(m.contacts, emails)
}

// Debrief renders a markdown post-meeting summary skeleton for a confirmed
// event. The calendar store must support booking lookup (the in-memory store
// does).
func (m *MeetMesh) Debrief(eventID string) (string, error) {
	type bookingLookup interface {
		Booking(eventID string) (core.Booking, bool)
	}

	src, ok := m.calendar.(bookingLookup)
	if !ok {
		return "", fmt.Errorf("calendar store does not support booking lookup")
	}
	b, found := src.Booking(eventID)
	if !found {
		return "", fmt.Errorf("event %s not found", eventID)
	}
	return brief.Debrief(eventID, b), nil
}
