package scheduler

import "github.com/example/game-scheduler/internal/timeslot"

// AvailableSlots subtracts blocked intervals from the daily availability
// window and returns the maximal free intervals of at least minDuration
// minutes, in ascending order.
//
// The sweep walks the blocked intervals in start order and advances its
// cursor via max(cursor, blocked.End). The max extension is what makes
// overlapping blocked intervals safe; do not replace it with an
// assumption of pre-merged input.
func AvailableSlots(blocked []timeslot.Interval, minDuration int) []timeslot.Interval {
	slots := make([]timeslot.Interval, 0, len(blocked)+1)
	cursor := timeslot.WindowStart

	for _, b := range blocked {
		if cursor < b.Start && b.Start-cursor >= minDuration {
			slots = append(slots, timeslot.Interval{Start: cursor, End: b.Start})
		}
		if b.End > cursor {
			cursor = b.End
		}
	}

	if cursor < timeslot.WindowEnd && timeslot.WindowEnd-cursor >= minDuration {
		slots = append(slots, timeslot.Interval{Start: cursor, End: timeslot.WindowEnd})
	}

	return slots
}
