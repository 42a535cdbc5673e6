// Package schedule expands a time-of-day and frequency into the fixed 7-day
// dosing schedule stored with each medicine.
package schedule

import (
	"fmt"
	"time"
)

// Frequency is how often a dose is due each day.
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyTwiceDaily Frequency = "twice_daily"
)

// Days is the fixed horizon a schedule covers.
const Days = 7

// ParseFrequency validates a frequency string from the API boundary.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyTwiceDaily:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// ParseTimeOfDay parses an "HH:MM" wall-clock time.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q, use HH:MM: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// Generate produces the absolute dose timestamps for the next 7 calendar days
// starting today, in now's location. Daily emits one timestamp per day at the
// given time; twice-daily adds a second one 12 hours later. Today's slot is
// emitted even when the time has already passed, so it shows up as overdue
// rather than silently skipped.
func Generate(hour, minute int, freq Frequency, now time.Time) []time.Time {
	out := make([]time.Time, 0, Days*doses(freq))
	for i := 0; i < Days; i++ {
		at := time.Date(now.Year(), now.Month(), now.Day()+i, hour, minute, 0, 0, now.Location())
		out = append(out, at)
		if freq == FrequencyTwiceDaily {
			out = append(out, at.Add(12*time.Hour))
		}
	}
	return out
}

func doses(freq Frequency) int {
	if freq == FrequencyTwiceDaily {
		return 2
	}
	return 1
}
