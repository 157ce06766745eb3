package scheduler

import (
	"sort"
	"time"

	"github.com/example/game-scheduler/internal/timeslot"
)

// BlockedIntervals collects the time ranges made unavailable on the given
// calendar day by the supplied fixed events.
//
// A recurring event is relevant when the day's weekday appears in its
// weekday set; a one-off event is relevant when its date falls on the same
// calendar day. The result is sorted ascending by start but deliberately
// not merged: the slot sweep tolerates overlapping and adjacent intervals
// through its cursor extension rule.
func BlockedIntervals(date time.Time, events []FixedEvent) []timeslot.Interval {
	weekday := date.Weekday()

	blocked := make([]timeslot.Interval, 0, len(events))
	for _, event := range events {
		if !eventAppliesOn(event, date, weekday) {
			continue
		}
		blocked = append(blocked, timeslot.Interval{Start: event.Start, End: event.End})
	}

	sort.SliceStable(blocked, func(i, j int) bool {
		return blocked[i].Start < blocked[j].Start
	})

	return blocked
}

func eventAppliesOn(event FixedEvent, date time.Time, weekday time.Weekday) bool {
	if event.Recurring {
		for _, day := range event.Weekdays {
			if day == weekday {
				return true
			}
		}
		return false
	}
	return sameDay(event.Date, date)
}
