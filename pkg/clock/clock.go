// Package clock parses HH:MM wall-clock strings and computes
// overnight-aware sleep durations in minutes.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ErrInvalidClock indicates a string that is not a valid HH:MM clock time.
var ErrInvalidClock = errors.New("invalid clock time")

// ToMinutes converts an "HH:MM" string to minutes after midnight.
func ToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hours*60 + minutes, nil
}

// Duration returns the sleep duration in minutes between a bedtime and a
// wake-up time, both "HH:MM". A wake time at or before the bedtime is
// treated as the following day, so "23:00" to "07:00" is 480 minutes and
// identical clocks count as a full 24-hour session.
func Duration(sleepTime, wakeTime string) (int, error) {
	sleepMinutes, err := ToMinutes(sleepTime)
	if err != nil {
		return 0, err
	}
	wakeMinutes, err := ToMinutes(wakeTime)
	if err != nil {
		return 0, err
	}

	if wakeMinutes <= sleepMinutes {
		wakeMinutes += MinutesPerDay
	}

	return wakeMinutes - sleepMinutes, nil
}

// Format renders minutes after midnight as "HH:MM", wrapping around midnight.
func Format(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
