package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/game-scheduler/internal/persistence"
)

// FixedEventStore captures the persistence slot needed by the event service.
type FixedEventStore interface {
	LoadFixedEvents(ctx context.Context) ([]persistence.FixedEvent, error)
	SaveFixedEvents(ctx context.Context, events []persistence.FixedEvent) error
}

// FixedEventService manages immovable commitments. Events are immutable
// once created; the only mutations are add and delete.
type FixedEventService struct {
	store       FixedEventStore
	idGenerator func() string
	logger      *slog.Logger
}

// NewFixedEventService wires dependencies for fixed-event operations.
func NewFixedEventService(store FixedEventStore, idGenerator func() string) *FixedEventService {
	return NewFixedEventServiceWithLogger(store, idGenerator, nil)
}

// NewFixedEventServiceWithLogger wires dependencies including a base logger.
func NewFixedEventServiceWithLogger(store FixedEventStore, idGenerator func() string, logger *slog.Logger) *FixedEventService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &FixedEventService{store: store, idGenerator: idGenerator, logger: defaultLogger(logger)}
}

// AddFixedEvent validates and stores a new fixed event.
func (s *FixedEventService) AddFixedEvent(ctx context.Context, input FixedEventInput) (persistence.FixedEvent, error) {
	if s == nil || s.store == nil {
		return persistence.FixedEvent{}, fmt.Errorf("FixedEventService is not configured")
	}

	if vErr := validateFixedEventInput(input); vErr.HasErrors() {
		return persistence.FixedEvent{}, vErr
	}

	events, err := s.store.LoadFixedEvents(ctx)
	if err != nil {
		return persistence.FixedEvent{}, err
	}

	event := persistence.FixedEvent{
		ID:          s.idGenerator(),
		Title:       strings.TrimSpace(input.Title),
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		IsRecurring: input.IsRecurring,
	}
	if input.IsRecurring {
		event.Weekdays = append([]int(nil), input.Weekdays...)
	} else {
		event.SpecificDate = input.SpecificDate
	}

	events = append(events, event)
	if err := s.store.SaveFixedEvents(ctx, events); err != nil {
		return persistence.FixedEvent{}, err
	}

	serviceLogger(ctx, s.logger, "fixed_event", "add", "event_id", event.ID).InfoContext(ctx, "fixed event added")
	return event, nil
}

// ListFixedEvents returns all fixed events in stored order.
func (s *FixedEventService) ListFixedEvents(ctx context.Context) ([]persistence.FixedEvent, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("FixedEventService is not configured")
	}
	return s.store.LoadFixedEvents(ctx)
}

// DeleteFixedEvent removes the named event.
func (s *FixedEventService) DeleteFixedEvent(ctx context.Context, eventID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("FixedEventService is not configured")
	}

	events, err := s.store.LoadFixedEvents(ctx)
	if err != nil {
		return err
	}

	kept := make([]persistence.FixedEvent, 0, len(events))
	found := false
	for _, event := range events {
		if event.ID == eventID {
			found = true
			continue
		}
		kept = append(kept, event)
	}
	if !found {
		return ErrNotFound
	}

	if err := s.store.SaveFixedEvents(ctx, kept); err != nil {
		return err
	}

	serviceLogger(ctx, s.logger, "fixed_event", "delete", "event_id", eventID).InfoContext(ctx, "fixed event deleted")
	return nil
}

func validateFixedEventInput(input FixedEventInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}

	start, startOK := parseClockMinutes(input.StartTime)
	if !startOK {
		vErr.add("start_time", "start time must be HH:MM")
	}
	end, endOK := parseClockMinutes(input.EndTime)
	if !endOK {
		vErr.add("end_time", "end time must be HH:MM")
	}
	if startOK && endOK && end <= start {
		vErr.add("time", "end time must be after start time")
	}

	if input.IsRecurring {
		if len(input.Weekdays) == 0 {
			vErr.add("weekdays", "at least one weekday is required for recurring events")
		}
		for _, day := range input.Weekdays {
			if day < 0 || day > 6 {
				vErr.add("weekdays", "weekdays must be in 0..6")
				break
			}
		}
		if input.SpecificDate != "" {
			vErr.add("specific_date", "recurring events cannot carry a specific date")
		}
	} else {
		if input.SpecificDate == "" {
			vErr.add("specific_date", "a specific date is required for one-off events")
		} else if _, ok := parseDate(input.SpecificDate); !ok {
			vErr.add("specific_date", "specific date must be YYYY-MM-DD")
		}
	}

	return vErr
}
