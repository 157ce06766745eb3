package scheduler

import (
	"reflect"
	"testing"
	"time"

	"github.com/example/game-scheduler/internal/timeslot"
)

// 2024-01-02 is a Tuesday.
var tuesday = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

func TestBlockedIntervalsRecurring(t *testing.T) {
	t.Parallel()

	events := []FixedEvent{
		{Start: 540, End: 1080, Recurring: true, Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}},
		{Start: 1200, End: 1260, Recurring: true, Weekdays: []time.Weekday{time.Saturday}},
	}

	got := BlockedIntervals(tuesday, events)
	want := []timeslot.Interval{{Start: 540, End: 1080}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBlockedIntervalsOneOff(t *testing.T) {
	t.Parallel()

	events := []FixedEvent{
		{Start: 720, End: 780, Date: tuesday},
		{Start: 840, End: 900, Date: tuesday.AddDate(0, 0, 1)},
	}

	got := BlockedIntervals(tuesday, events)
	want := []timeslot.Interval{{Start: 720, End: 780}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBlockedIntervalsSortsByStart(t *testing.T) {
	t.Parallel()

	events := []FixedEvent{
		{Start: 1200, End: 1260, Date: tuesday},
		{Start: 600, End: 660, Date: tuesday},
		{Start: 900, End: 960, Date: tuesday},
	}

	got := BlockedIntervals(tuesday, events)
	want := []timeslot.Interval{
		{Start: 600, End: 660},
		{Start: 900, End: 960},
		{Start: 1200, End: 1260},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBlockedIntervalsKeepsOverlaps(t *testing.T) {
	t.Parallel()

	events := []FixedEvent{
		{Start: 600, End: 720, Date: tuesday},
		{Start: 660, End: 780, Date: tuesday},
	}

	got := BlockedIntervals(tuesday, events)
	if len(got) != 2 {
		t.Fatalf("expected overlapping intervals preserved, got %v", got)
	}
}

func TestBlockedIntervalsEmpty(t *testing.T) {
	t.Parallel()

	got := BlockedIntervals(tuesday, nil)
	if len(got) != 0 {
		t.Fatalf("expected no intervals, got %v", got)
	}
}

func TestBlockedIntervalsIgnoresClockOnOneOffDate(t *testing.T) {
	t.Parallel()

	// The stored date may carry a clock component; only the calendar day
	// decides relevance.
	events := []FixedEvent{
		{Start: 720, End: 780, Date: tuesday.Add(15 * time.Hour)},
	}

	got := BlockedIntervals(tuesday, events)
	if len(got) != 1 {
		t.Fatalf("expected the event to apply, got %v", got)
	}
}
