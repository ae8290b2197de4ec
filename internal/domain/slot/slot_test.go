//go:build unit

package slot_test

import (
	"testing"
	"time"

	"grocery-pool/internal/domain/slot"
	"grocery-pool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := map[string]string{
		"6:00AM":   "6am",
		"6:00 AM":  "6am",
		" 12:00PM": "12pm",
		"9pm":      "9pm",
		"6:30PM":   "6:30pm",
		"NOW":      "now",
	}
	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, slot.Normalize(in))
		})
	}
	assert.True(t, slot.IsNow(" Now "))
	assert.False(t, slot.IsNow("6am"))
}

func TestTimeOfDay(t *testing.T) {
	testCases := []struct {
		label        string
		hour, minute int
	}{
		{"6am", 6, 0},
		{"12pm", 12, 0},
		{"12:00AM", 0, 0},
		{"9:00PM", 21, 0},
		{"6:30pm", 18, 30},
	}
	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			h, m, err := slot.TimeOfDay(tc.label)
			require.NoError(t, err)
			assert.Equal(t, tc.hour, h)
			assert.Equal(t, tc.minute, m)
		})
	}

	_, _, err := slot.TimeOfDay("teatime")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestSchedule_RunAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC)

	t.Run("later slot today", func(t *testing.T) {
		s := slot.Schedule{Location: time.UTC}

		at, err := s.RunAt("3pm", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), at)
	})

	t.Run("slot already passed is clamped to now", func(t *testing.T) {
		s := slot.Schedule{Location: time.UTC}

		at, err := s.RunAt("6am", now)
		require.NoError(t, err)
		assert.Equal(t, now, at)
	})

	t.Run("slot time follows the configured zone", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		s := slot.Schedule{Location: tokyo}

		at, err := s.RunAt("9pm", now)
		require.NoError(t, err)
		assert.True(t, at.Equal(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("development delay ignores the label", func(t *testing.T) {
		s := slot.Schedule{Development: true, DevDelay: 20 * time.Second}

		at, err := s.RunAt("whenever", now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(20*time.Second), at)
	})

	t.Run("unreadable label", func(t *testing.T) {
		_, err := slot.Schedule{}.RunAt("teatime", now)
		assert.ErrorIs(t, err, slot.ErrUnparseableSlot)
	})
}
