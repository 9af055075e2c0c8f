package coordinator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meetmesh/core"
	"github.com/hupe1980/meetmesh/internal/testutil"
	"github.com/hupe1980/meetmesh/policy"
)

// stubEngine records delegation without any backend behavior, so tests can
// assert exactly when the coordinator crosses the engine boundary.
type stubEngine struct {
	proposeCalls int
	bookCalls    int
	lastRequest  core.MeetingRequest
	lastSlot     core.TimeWindow

	proposals []core.Proposal
	booking   core.BookingResult
	err       error
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Propose(ctx context.Context, req core.MeetingRequest) ([]core.Proposal, error) {
	s.proposeCalls++
	s.lastRequest = req
	return s.proposals, s.err
}

func (s *stubEngine) Book(ctx context.Context, req core.MeetingRequest, slot core.TimeWindow) (core.BookingResult, error) {
	s.bookCalls++
	s.lastRequest = req
	s.lastSlot = slot
	return s.booking, s.err
}

var _ core.Engine = (*stubEngine)(nil)

func validRequest() core.MeetingRequest {
	return testutil.NewRequestBuilder("Sync").Attendee("a@x.com").Build()
}

func TestProposeSlots_ValidationOrder(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		req    core.MeetingRequest
		reason string
	}{
		{
			name:   "empty subject",
			req:    testutil.NewRequestBuilder("").Attendee("a@x.com").Build(),
			reason: "subject required",
		},
		{
			name:   "whitespace subject",
			req:    testutil.NewRequestBuilder("   \t").Attendee("a@x.com").Build(),
			reason: "subject required",
		},
		{
			name:   "no attendees",
			req:    testutil.NewRequestBuilder("Sync").Build(),
			reason: "attendee required",
		},
		{
			name:   "email without at sign",
			req:    testutil.NewRequestBuilder("Sync").Attendee("not-an-email").Build(),
			reason: "invalid email",
		},
		{
			name:   "zero duration",
			req:    testutil.NewRequestBuilder("Sync").Attendee("a@x.com").Duration(0).Build(),
			reason: "duration must be positive",
		},
		{
			name:   "negative duration",
			req:    testutil.NewRequestBuilder("Sync").Attendee("a@x.com").Duration(-30).Build(),
			reason: "duration must be positive",
		},
		{
			name:   "earliest equals latest",
			req:    testutil.NewRequestBuilder("Sync").Attendee("a@x.com").Between(t0, t0).Build(),
			reason: "earliest must precede latest",
		},
		{
			name:   "earliest after latest",
			req:    testutil.NewRequestBuilder("Sync").Attendee("a@x.com").Between(t0.Add(time.Hour), t0).Build(),
			reason: "earliest must precede latest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := &stubEngine{}
			c := New(eng, policy.Default())

			_, err := c.ProposeSlots(context.Background(), tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.reason)
			assert.Zero(t, eng.proposeCalls, "engine must not be invoked on validation failure")
		})
	}
}

func TestProposeSlots_FirstFailingCheckWins(t *testing.T) {
	// Both subject and email are invalid; the subject check runs first.
	eng := &stubEngine{}
	c := New(eng, policy.Default())

	_, err := c.ProposeSlots(context.Background(), testutil.NewRequestBuilder(" ").Attendee("bad").Build())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject required")
	assert.Zero(t, eng.proposeCalls)
}

func TestProposeSlots_InvalidEmailNamesAddress(t *testing.T) {
	eng := &stubEngine{}
	c := New(eng, policy.Default())

	_, err := c.ProposeSlots(context.Background(),
		testutil.NewRequestBuilder("Sync").Attendee("a@x.com").Attendee("broken@").Build())

	require.Error(t, err)
	var re *core.RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "broken@", re.Email)
}

func TestProposeSlots_EnhancesDurationFromPolicy(t *testing.T) {
	eng := &stubEngine{}
	pol := policy.Default()
	c := New(eng, pol)

	req := validRequest()
	_, err := c.ProposeSlots(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, eng.lastRequest.DurationMinutes)
	assert.Equal(t, pol.DefaultDurationMinutes, *eng.lastRequest.DurationMinutes)

	// The caller's request is never mutated; enhancement derives a copy.
	assert.Nil(t, req.DurationMinutes)
}

func TestProposeSlots_KeepsExplicitDuration(t *testing.T) {
	eng := &stubEngine{}
	c := New(eng, policy.Default())

	_, err := c.ProposeSlots(context.Background(),
		testutil.NewRequestBuilder("Sync").Attendee("a@x.com").Duration(25).Build())

	require.NoError(t, err)
	require.NotNil(t, eng.lastRequest.DurationMinutes)
	assert.Equal(t, 25, *eng.lastRequest.DurationMinutes)
}

func TestProposeSlots_PropagatesEngineErrorUnchanged(t *testing.T) {
	engineErr := fmt.Errorf("calendar engine: %w: backend down", core.ErrEngineUnavailable)
	eng := &stubEngine{err: engineErr}
	c := New(eng, policy.Default())

	_, err := c.ProposeSlots(context.Background(), validRequest())

	require.Error(t, err)
	assert.Equal(t, engineErr, err, "engine errors pass through without wrapping")
	assert.ErrorIs(t, err, core.ErrEngineUnavailable)
}

func TestProposeSlots_EmptyResultIsSuccess(t *testing.T) {
	eng := &stubEngine{proposals: nil}
	c := New(eng, policy.Default())

	proposals, err := c.ProposeSlots(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, proposals)
}

func TestConfirmSlot_InvalidSlotFormat(t *testing.T) {
	eng := &stubEngine{}
	c := New(eng, policy.Default())

	_, err := c.ConfirmSlot(context.Background(), validRequest(),
		core.SlotInput{Start: "not-a-date", End: "2026-03-02T14:30:00Z"})

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidSlot)
	assert.Contains(t, err.Error(), "invalid time slot format")
	assert.Zero(t, eng.bookCalls)
}

func TestConfirmSlot_InvertedSlot(t *testing.T) {
	eng := &stubEngine{}
	c := New(eng, policy.Default())

	_, err := c.ConfirmSlot(context.Background(), validRequest(),
		core.SlotInput{Start: "2026-03-02T14:30:00Z", End: "2026-03-02T14:00:00Z"})

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidSlot)
	assert.Contains(t, err.Error(), "start must precede end")
	assert.Zero(t, eng.bookCalls)
}

func TestConfirmSlot_RequestValidatedBeforeSlot(t *testing.T) {
	eng := &stubEngine{}
	c := New(eng, policy.Default())

	_, err := c.ConfirmSlot(context.Background(),
		testutil.NewRequestBuilder("").Attendee("a@x.com").Build(),
		core.SlotInput{Start: "not-a-date", End: "also-not-a-date"})

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidRequest)
}

func TestConfirmSlot_DelegatesAndReturnsResultUnchanged(t *testing.T) {
	eng := &stubEngine{booking: core.BookingResult{EventID: "evt-123"}}
	pol := policy.Default()
	c := New(eng, pol)

	result, err := c.ConfirmSlot(context.Background(), validRequest(),
		core.SlotInput{Start: "2026-03-02T14:00:00Z", End: "2026-03-02T14:45:00Z"})

	require.NoError(t, err)
	assert.Equal(t, "evt-123", result.EventID)
	assert.Equal(t, 1, eng.bookCalls)
	assert.Equal(t, 45*time.Minute, eng.lastSlot.Duration())

	// Book receives the enhanced request.
	require.NotNil(t, eng.lastRequest.DurationMinutes)
	assert.Equal(t, pol.DefaultDurationMinutes, *eng.lastRequest.DurationMinutes)
}

func TestConfirmSlot_PropagatesSlotConflict(t *testing.T) {
	conflict := fmt.Errorf("calendar engine: %w: a@x.com is busy", core.ErrSlotConflict)
	eng := &stubEngine{err: conflict}
	c := New(eng, policy.Default())

	_, err := c.ConfirmSlot(context.Background(), validRequest(),
		core.SlotInput{Start: "2026-03-02T14:00:00Z", End: "2026-03-02T14:45:00Z"})

	require.Error(t, err)
	assert.Equal(t, conflict, err)
	assert.ErrorIs(t, err, core.ErrSlotConflict)
}

func TestResolveEngineKind(t *testing.T) {
	assert.Equal(t, EngineAssistant, ResolveEngineKind("true"))

	for _, signal := range []string{"", "false", "TRUE", "1", "yes"} {
		assert.Equal(t, EngineCalendar, ResolveEngineKind(signal), "signal %q", signal)
	}
}

func TestResolveEngineKind_Deterministic(t *testing.T) {
	for _, signal := range []string{"", "true", "false"} {
		assert.Equal(t, ResolveEngineKind(signal), ResolveEngineKind(signal))
	}
}
