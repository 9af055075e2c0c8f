package coordinator

import (
	"context"

	"github.com/google/uuid"

	"github.com/hupe1980/meetmesh/core"
	"github.com/hupe1980/meetmesh/logging"
	"github.com/hupe1980/meetmesh/policy"
)

// Options configures a Coordinator.
type Options struct {
	// Logger receives the trace/debug records emitted around engine
	// delegation. Defaults to NoOp if nil.
	Logger logging.Logger
}

// WithLogger sets the coordinator's logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Coordinator validates meeting requests, fills in policy defaults and
// delegates to the engine selected at construction. It touches no mutable
// state beyond the read-only policy and the fixed engine reference, so it is
// safe for unlimited concurrent callers.
type Coordinator struct {
	engine core.Engine
	pol    policy.Policy
	logger logging.Logger
}

// New constructs a Coordinator bound to the given engine and policy for its
// whole lifetime.
func New(engine core.Engine, pol policy.Policy, optFns ...func(o *Options)) *Coordinator {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Coordinator{engine: engine, pol: pol, logger: opts.Logger}
}

// EngineName reports the identity of the active engine, for observability and
// selection-determinism checks.
func (c *Coordinator) EngineName() string { return c.engine.Name() }

// ProposeSlots validates the request, enhances it from policy and asks the
// active engine for scored candidate slots. An empty slice is a valid "no
// feasible slot found" outcome. Engine failures propagate unchanged.
func (c *Coordinator) ProposeSlots(ctx context.Context, req core.MeetingRequest) ([]core.Proposal, error) {
	if err := validateRequest(req); err != nil {
		c.logger.Warn("request rejected engine=%s subject=%q attendees=%d", c.engine.Name(), req.Subject, len(req.Attendees))
		return nil, err
	}

	traceID := uuid.NewString()
	enhanced := enhance(req, c.pol)

	c.logger.Debug("coordinator dispatching propose trace_id=%s engine=%s subject=%q attendees=%d duration_min=%d",
		traceID, c.engine.Name(), enhanced.Subject, len(enhanced.Attendees), *enhanced.DurationMinutes)

	proposals, err := c.engine.Propose(ctx, enhanced)
	if err != nil {
		c.logger.Error("engine propose failed trace_id=%s engine=%s subject=%q attendees=%d",
			traceID, c.engine.Name(), enhanced.Subject, len(enhanced.Attendees))
		return nil, err
	}

	c.logger.Debug("coordinator propose completed trace_id=%s engine=%s proposals=%d",
		traceID, c.engine.Name(), len(proposals))

	return proposals, nil
}

// ConfirmSlot validates the request and the raw slot, enhances the request
// identically to ProposeSlots and delegates booking to the active engine. The
// engine's BookingResult is returned unchanged.
func (c *Coordinator) ConfirmSlot(ctx context.Context, req core.MeetingRequest, slot core.SlotInput) (core.BookingResult, error) {
	if err := validateRequest(req); err != nil {
		c.logger.Warn("request rejected engine=%s subject=%q attendees=%d", c.engine.Name(), req.Subject, len(req.Attendees))
		return core.BookingResult{}, err
	}

	window, err := slot.Parse()
	if err != nil {
		c.logger.Warn("slot rejected engine=%s subject=%q", c.engine.Name(), req.Subject)
		return core.BookingResult{}, err
	}

	traceID := uuid.NewString()
	enhanced := enhance(req, c.pol)

	c.logger.Debug("coordinator dispatching book trace_id=%s engine=%s subject=%q attendees=%d slot=%s",
		traceID, c.engine.Name(), enhanced.Subject, len(enhanced.Attendees), window)

	result, err := c.engine.Book(ctx, enhanced, window)
	if err != nil {
		c.logger.Error("engine book failed trace_id=%s engine=%s subject=%q attendees=%d",
			traceID, c.engine.Name(), enhanced.Subject, len(enhanced.Attendees))
		return core.BookingResult{}, err
	}

	c.logger.Debug("coordinator book completed trace_id=%s engine=%s event_id=%s",
		traceID, c.engine.Name(), result.EventID)

	return result, nil
}
