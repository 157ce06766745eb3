package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/game-scheduler/internal/persistence"
)

func TestAddFixedEventRecurring(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	service := NewFixedEventService(store, sequentialIDs("event"))

	event, err := service.AddFixedEvent(context.Background(), FixedEventInput{
		Title:       "仕事",
		StartTime:   "09:00",
		EndTime:     "18:00",
		IsRecurring: true,
		Weekdays:    []int{1, 2, 3, 4, 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.ID != "event-1" {
		t.Fatalf("expected generated id, got %q", event.ID)
	}
	if !event.IsRecurring || len(event.Weekdays) != 5 {
		t.Fatalf("expected recurring event with five weekdays, got %+v", event)
	}
	if event.SpecificDate != "" {
		t.Fatal("expected no specific date on recurring event")
	}
	if len(store.fixedEvents) != 1 {
		t.Fatalf("expected one persisted event, got %d", len(store.fixedEvents))
	}
}

func TestAddFixedEventOneOff(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	service := NewFixedEventService(store, sequentialIDs("event"))

	event, err := service.AddFixedEvent(context.Background(), FixedEventInput{
		Title:        "通院",
		StartTime:    "14:00",
		EndTime:      "15:00",
		SpecificDate: "2024-01-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.IsRecurring {
		t.Fatal("expected one-off event")
	}
	if event.SpecificDate != "2024-01-15" {
		t.Fatalf("expected specific date kept, got %q", event.SpecificDate)
	}
	if len(event.Weekdays) != 0 {
		t.Fatal("expected no weekdays on one-off event")
	}
}

func TestAddFixedEventValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input FixedEventInput
		field string
	}{
		{
			name:  "missing title",
			input: FixedEventInput{StartTime: "10:00", EndTime: "11:00", SpecificDate: "2024-01-15"},
			field: "title",
		},
		{
			name:  "bad start time",
			input: FixedEventInput{Title: "x", StartTime: "25:00", EndTime: "11:00", SpecificDate: "2024-01-15"},
			field: "start_time",
		},
		{
			name:  "bad end time",
			input: FixedEventInput{Title: "x", StartTime: "10:00", EndTime: "11", SpecificDate: "2024-01-15"},
			field: "end_time",
		},
		{
			name:  "end before start",
			input: FixedEventInput{Title: "x", StartTime: "11:00", EndTime: "10:00", SpecificDate: "2024-01-15"},
			field: "time",
		},
		{
			name:  "recurring without weekdays",
			input: FixedEventInput{Title: "x", StartTime: "10:00", EndTime: "11:00", IsRecurring: true},
			field: "weekdays",
		},
		{
			name:  "weekday out of range",
			input: FixedEventInput{Title: "x", StartTime: "10:00", EndTime: "11:00", IsRecurring: true, Weekdays: []int{7}},
			field: "weekdays",
		},
		{
			name:  "recurring with specific date",
			input: FixedEventInput{Title: "x", StartTime: "10:00", EndTime: "11:00", IsRecurring: true, Weekdays: []int{1}, SpecificDate: "2024-01-15"},
			field: "specific_date",
		},
		{
			name:  "one off without date",
			input: FixedEventInput{Title: "x", StartTime: "10:00", EndTime: "11:00"},
			field: "specific_date",
		},
		{
			name:  "one off with malformed date",
			input: FixedEventInput{Title: "x", StartTime: "10:00", EndTime: "11:00", SpecificDate: "15/01/2024"},
			field: "specific_date",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := newStubStore()
			service := NewFixedEventService(store, sequentialIDs("event"))

			_, err := service.AddFixedEvent(context.Background(), tc.input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := vErr.FieldErrors[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tc.field, vErr.FieldErrors)
			}
		})
	}
}

func TestListFixedEvents(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.fixedEvents = []persistence.FixedEvent{{ID: "e1"}, {ID: "e2"}}
	service := NewFixedEventService(store, nil)

	events, err := service.ListFixedEvents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected two events, got %d", len(events))
	}
}

func TestDeleteFixedEvent(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.fixedEvents = []persistence.FixedEvent{{ID: "e1"}, {ID: "e2"}}
	service := NewFixedEventService(store, nil)

	if err := service.DeleteFixedEvent(context.Background(), "e1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.fixedEvents) != 1 || store.fixedEvents[0].ID != "e2" {
		t.Fatalf("expected only e2 to remain, got %v", store.fixedEvents)
	}
}

func TestDeleteFixedEventUnknown(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	service := NewFixedEventService(store, nil)

	if err := service.DeleteFixedEvent(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
