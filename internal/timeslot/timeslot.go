// Package timeslot provides minute-of-day arithmetic for the daily
// availability window. All intervals are half-open [Start, End) and
// expressed as minutes since midnight.
package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinutesPerDay bounds every minute-of-day value.
	MinutesPerDay = 24 * 60

	// WindowStart is the opening of the daily play window (10:00).
	WindowStart = 10 * 60
	// WindowEnd is the close of the daily play window (23:00).
	WindowEnd = 23 * 60
)

// ErrInvalidClock indicates a clock string could not be parsed as HH:MM.
var ErrInvalidClock = errors.New("timeslot: invalid clock string")

// Interval is a half-open [Start, End) range of minutes within a day.
type Interval struct {
	Start int
	End   int
}

// Duration returns the interval length in minutes.
func (i Interval) Duration() int {
	return i.End - i.Start
}

// Overlaps reports whether the receiver and other share any minute.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether the given minute falls inside the interval.
func (i Interval) Contains(minute int) bool {
	return minute >= i.Start && minute < i.End
}

// ParseClock converts an HH:MM clock string into minutes since midnight.
// Both components must be numeric, the hour in 0..23 and the minute in
// 0..59; anything else reports ErrInvalidClock.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as a zero-padded HH:MM
// string. It round-trips with ParseClock for every value in 0..1439.
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	minutes %= MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
