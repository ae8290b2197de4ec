package slot

import (
	"strings"
	"time"

	"grocery-pool/internal/pkg/errs"
)

// Now is the label that skips pooling and places the order immediately.
const Now = "now"

var (
	ErrOrderSlotNotFound = errs.Kind("order slot not found", errs.ErrNotFound)
	ErrUnparseableSlot   = errs.Kind("delivery slot label cannot be read as a time of day", errs.ErrValidation)
)

var layouts = []string{"3pm", "3:04pm", "15:04", "15"}

// Normalize folds user input such as "6:00 AM" into the stored form "6am".
func Normalize(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, ":00", "")
}

func IsNow(label string) bool {
	return Normalize(label) == Now
}

// TimeOfDay parses a normalized label into an hour and minute.
func TimeOfDay(label string) (hour, minute int, err error) {
	s := Normalize(label)
	for _, layout := range layouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, errs.Wrapf(ErrUnparseableSlot, "label %q", label)
}

// Schedule decides when a shared cart for a slot is settled.
type Schedule struct {
	Location    *time.Location
	Development bool
	DevDelay    time.Duration
}

// RunAt is the slot's time today in the schedule's zone, never earlier than
// now. Development runs settle after DevDelay regardless of the label.
func (s Schedule) RunAt(label string, now time.Time) (time.Time, error) {
	if s.Development {
		return now.Add(s.DevDelay), nil
	}
	hour, minute, err := TimeOfDay(label)
	if err != nil {
		return time.Time{}, err
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	at := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if at.Before(now) {
		return now, nil
	}
	return at, nil
}
