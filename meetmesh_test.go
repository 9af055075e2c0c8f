package meetmesh

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/meetmesh/core"
	"github.com/hupe1980/meetmesh/engine/assistant"
	"github.com/hupe1980/meetmesh/engine/calendar"
	"github.com/hupe1980/meetmesh/internal/testutil"
	"github.com/hupe1980/meetmesh/llm"
	"github.com/hupe1980/meetmesh/policy"
)

func TestNew_DefaultsToCalendarEngine(t *testing.T) {
	m := New()
	assert.Equal(t, calendar.Name, m.EngineName())
	assert.NotNil(t, m.Calendar())
	assert.NotNil(t, m.Contacts())
}

func TestNew_ToggleSelectsAssistant(t *testing.T) {
	m := New(func(o *Options) { o.EngineToggle = "true" })
	assert.Equal(t, assistant.Name, m.EngineName())

	// Only the exact lowercase "true" switches engines.
	for _, signal := range []string{"TRUE", "1", "yes", "false", ""} {
		m := New(func(o *Options) { o.EngineToggle = signal })
		assert.Equal(t, calendar.Name, m.EngineName(), "signal %q", signal)
	}
}

func TestNew_ExplicitEngineWinsOverToggle(t *testing.T) {
	custom := calendar.New(nil, policy.Default())
	m := New(func(o *Options) {
		o.EngineToggle = "true"
		o.Engine = custom
	})
	assert.Equal(t, calendar.Name, m.EngineName())
}

func TestProposeAndConfirmEndToEnd(t *testing.T) {
	ctx := context.Background()
	pol := policy.Default()
	day := testutil.Day(2026, time.March, 2, pol.Location())

	m := New()

	req := testutil.NewRequestBuilder("Roadmap review").
		Attendee("a@x.com").
		Attendee("b@x.com").
		Between(day.Add(9*time.Hour), day.Add(17*time.Hour)).
		Build()

	proposals, err := m.ProposeSlots(ctx, req)
	require.NoError(t, err)
	require.Len(t, proposals, 3)

	// Duration fell back to the policy default.
	assert.Equal(t, 45*time.Minute, proposals[0].Slot.Duration())

	result, err := m.ConfirmSlot(ctx, req, proposals[0].Slot.Input())
	require.NoError(t, err)
	require.NotEmpty(t, result.EventID)

	// Confirming the same slot again is a retry, not a conflict.
	again, err := m.ConfirmSlot(ctx, req, proposals[0].Slot.Input())
	require.NoError(t, err)
	assert.Equal(t, result.EventID, again.EventID)

	// The booked slot now shows up busy for the attendees.
	busy, err := m.Calendar().Busy(ctx, "a@x.com", proposals[0].Slot)
	require.NoError(t, err)
	assert.Len(t, busy, 1)

	// A second meeting over the same slot conflicts.
	other := testutil.NewRequestBuilder("Budget check-in").Attendee("a@x.com").Build()
	_, err = m.ConfirmSlot(ctx, other, proposals[0].Slot.Input())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSlotConflict)
}

func TestAssistantEndToEnd(t *testing.T) {
	ctx := context.Background()
	day := testutil.Day(2026, time.March, 2, time.UTC)
	start := day.Add(13 * time.Hour)

	model := llm.NewMockModel("test")
	model.SetDefaultReply(fmt.Sprintf(
		`[{"start":%q,"end":%q,"score":90,"reason":"midday"}]`,
		start.Format(time.RFC3339), start.Add(45*time.Minute).Format(time.RFC3339)))

	m := New(func(o *Options) {
		o.EngineToggle = "true"
		o.Model = model
	})

	req := testutil.NewRequestBuilder("Roadmap review").Attendee("a@x.com").Build()

	proposals, err := m.ProposeSlots(ctx, req)
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, 90.0, proposals[0].Score)

	result, err := m.ConfirmSlot(ctx, req, proposals[0].Slot.Input())
	require.NoError(t, err)
	assert.NotEmpty(t, result.EventID)
}

func TestValidationSurfacesThroughFacade(t *testing.T) {
	m := New()

	_, err := m.ProposeSlots(context.Background(), testutil.NewRequestBuilder("").Build())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidRequest)

	_, err = m.ConfirmSlot(context.Background(),
		testutil.NewRequestBuilder("Sync").Attendee("a@x.com").Build(),
		core.SlotInput{Start: "soon", End: "later"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidSlot)
}

func TestTopNOptionFlowsToEngine(t *testing.T) {
	pol := policy.Default()
	day := testutil.Day(2026, time.March, 2, pol.Location())

	m := New(func(o *Options) { o.TopN = 1 })

	req := testutil.NewRequestBuilder("Sync").
		Attendee("a@x.com").
		Between(day.Add(9*time.Hour), day.Add(17*time.Hour)).
		Build()

	proposals, err := m.ProposeSlots(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, proposals, 1)
}

func TestBriefAndDebrief(t *testing.T) {
	ctx := context.Background()
	pol := policy.Default()
	day := testutil.Day(2026, time.March, 2, pol.Location())

	m := New()
	require.NoError(t, m.Contacts().Set(core.Profile{
		Email:    "lina@x.com",
		Name:     "Lina",
		Timezone: "Europe/Berlin",
	}))

	out, err := m.BuildBrief([]string{"lina@x.com", "stranger@x.com"})
	require.NoError(t, err)
	assert.Contains(t, out, "## Lina (lina@x.com)")
	assert.Contains(t, out, "- No profile on record")

	req := testutil.NewRequestBuilder("Roadmap review").Attendee("lina@x.com").Build()
	slot := testutil.Window(day, 14, 0, 45*time.Minute)

	result, err := m.ConfirmSlot(ctx, req, slot.Input())
	require.NoError(t, err)

	debrief, err := m.Debrief(result.EventID)
	require.NoError(t, err)
	assert.Contains(t, debrief, "# Debrief: Roadmap review")
	assert.Contains(t, debrief, result.EventID)

	_, err = m.Debrief("no-such-event")
	assert.Error(t, err)
}
