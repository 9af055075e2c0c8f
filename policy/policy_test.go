package policy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()

	require.NoError(t, p.Validate())
	assert.Equal(t, "09:00", p.BusinessHours.Start)
	assert.Equal(t, "17:00", p.BusinessHours.End)
	assert.Equal(t, "Asia/Dubai", p.BusinessHours.Timezone)
	assert.Equal(t, 15, p.MinBufferMinutes)
	assert.Equal(t, 6, p.MaxMeetingsPerDay)
	assert.Equal(t, 45, p.DefaultDurationMinutes)
	assert.False(t, p.AutoApproveTrustedContacts)

	assert.Equal(t, 9*time.Hour, p.DayStart())
	assert.Equal(t, 17*time.Hour, p.DayEnd())
	assert.Equal(t, 15*time.Minute, p.MinBuffer())
	assert.Equal(t, "Asia/Dubai", p.Location().String())
}

func TestFromYAML_OverridesAndDefaults(t *testing.T) {
	p, err := FromYAML([]byte(`
business_hours:
  start: "08:30"
  end: "16:00"
  timezone: Europe/Berlin
max_meetings_per_day: 4
`))
	require.NoError(t, err)

	assert.Equal(t, 8*time.Hour+30*time.Minute, p.DayStart())
	assert.Equal(t, 16*time.Hour, p.DayEnd())
	assert.Equal(t, "Europe/Berlin", p.BusinessHours.Timezone)
	assert.Equal(t, 4, p.MaxMeetingsPerDay)

	// Unset fields keep the baseline values.
	assert.Equal(t, 15, p.MinBufferMinutes)
	assert.Equal(t, 45, p.DefaultDurationMinutes)
}

func TestFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":::"},
		{"bad clock", "business_hours:\n  start: \"nine\""},
		{"clock out of range", "business_hours:\n  start: \"25:00\""},
		{"start after end", "business_hours:\n  start: \"18:00\"\n  end: \"09:00\""},
		{"unknown timezone", "business_hours:\n  timezone: Mars/Olympus"},
		{"negative buffer", "min_buffer_minutes: -1"},
		{"zero meeting limit", "max_meetings_per_day: 0"},
		{"zero duration", "default_duration_minutes: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromYAML([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_duration_minutes: 30\n"), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 30, p.DefaultDurationMinutes)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	p := Policy{BusinessHours: BusinessHours{Timezone: "Mars/Olympus"}}
	assert.Equal(t, time.UTC, p.Location())
}
