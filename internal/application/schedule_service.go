package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/game-scheduler/internal/persistence"
	"github.com/example/game-scheduler/internal/points"
	"github.com/example/game-scheduler/internal/scheduler"
	"github.com/example/game-scheduler/internal/timeslot"
)

// ScheduleStore captures the persistence slots needed by the schedule
// service. Outcome events touch the points and bonus/penalty slots in the
// same logical action as the schedule mutation.
type ScheduleStore interface {
	LoadGames(ctx context.Context) ([]persistence.Game, error)
	LoadFixedEvents(ctx context.Context) ([]persistence.FixedEvent, error)
	LoadSchedules(ctx context.Context) ([]persistence.Schedule, error)
	SaveSchedules(ctx context.Context, schedules []persistence.Schedule) error
	LoadPoints(ctx context.Context) (persistence.UserPoints, error)
	SavePoints(ctx context.Context, pts persistence.UserPoints) error
	LoadBonusPenaltyRecords(ctx context.Context) ([]persistence.BonusPenaltyRecord, error)
	SaveBonusPenaltyRecords(ctx context.Context, records []persistence.BonusPenaltyRecord) error
}

// ScheduleService generates and resolves play sessions.
type ScheduleService struct {
	store       ScheduleStore
	opts        scheduler.Options
	ledger      *points.Ledger
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewScheduleService wires dependencies for schedule operations.
func NewScheduleService(store ScheduleStore, opts scheduler.Options, idGenerator func() string, now func() time.Time) *ScheduleService {
	return NewScheduleServiceWithLogger(store, opts, idGenerator, now, nil)
}

// NewScheduleServiceWithLogger wires dependencies including a base logger.
func NewScheduleServiceWithLogger(store ScheduleStore, opts scheduler.Options, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ScheduleService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ScheduleService{
		store:       store,
		opts:        opts,
		ledger:      points.NewLedger(idGenerator, now),
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// Generate computes a fresh session set over the configured horizon
// starting today and REPLACES the stored schedule collection with it.
// Prior schedules are discarded wholesale, completion history included;
// generation is destructive by design. Zero eligible games or fully
// blocked days yield fewer or zero schedules, never an error.
func (s *ScheduleService) Generate(ctx context.Context) ([]persistence.Schedule, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("ScheduleService is not configured")
	}

	games, err := s.store.LoadGames(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.store.LoadFixedEvents(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]scheduler.Game, 0, len(games))
	for _, game := range games {
		candidates = append(candidates, toSchedulerGame(game))
	}
	blocked := make([]scheduler.FixedEvent, 0, len(events))
	for _, event := range events {
		blocked = append(blocked, toSchedulerEvent(event))
	}

	generator := scheduler.NewGenerator(s.opts, s.idGenerator)
	sessions := generator.Generate(candidates, blocked, s.now())

	schedules := make([]persistence.Schedule, 0, len(sessions))
	for _, session := range sessions {
		schedules = append(schedules, persistence.Schedule{
			ID:        session.ID,
			GameID:    session.GameID,
			Date:      formatDate(session.Date),
			StartTime: timeslot.FormatClock(session.Start),
			EndTime:   timeslot.FormatClock(session.End),
		})
	}

	if err := s.store.SaveSchedules(ctx, schedules); err != nil {
		return nil, err
	}

	serviceLogger(ctx, s.logger, "schedule", "generate", "count", len(schedules)).InfoContext(ctx, "schedules generated")
	return schedules, nil
}

// ListSchedules returns the stored schedule set.
func (s *ScheduleService) ListSchedules(ctx context.Context) ([]persistence.Schedule, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("ScheduleService is not configured")
	}
	return s.store.LoadSchedules(ctx)
}

// Move reschedules a session to a new date and start time, preserving its
// duration. Moves that would run past midnight are rejected.
func (s *ScheduleService) Move(ctx context.Context, scheduleID string, input MoveScheduleInput) (persistence.Schedule, error) {
	if s == nil || s.store == nil {
		return persistence.Schedule{}, fmt.Errorf("ScheduleService is not configured")
	}

	vErr := &ValidationError{}
	if _, ok := parseDate(input.Date); !ok {
		vErr.add("date", "date must be YYYY-MM-DD")
	}
	start, startOK := parseClockMinutes(input.StartTime)
	if !startOK {
		vErr.add("start_time", "start time must be HH:MM")
	}
	if vErr.HasErrors() {
		return persistence.Schedule{}, vErr
	}

	schedules, err := s.store.LoadSchedules(ctx)
	if err != nil {
		return persistence.Schedule{}, err
	}

	for i := range schedules {
		if schedules[i].ID != scheduleID {
			continue
		}

		oldStart, ok1 := parseClockMinutes(schedules[i].StartTime)
		oldEnd, ok2 := parseClockMinutes(schedules[i].EndTime)
		duration := scheduler.DefaultSessionMinutes
		if ok1 && ok2 && oldEnd > oldStart {
			duration = oldEnd - oldStart
		}

		if start+duration > timeslot.MinutesPerDay {
			vErr.add("start_time", "session would run past midnight")
			return persistence.Schedule{}, vErr
		}

		schedules[i].Date = input.Date
		schedules[i].StartTime = timeslot.FormatClock(start)
		schedules[i].EndTime = timeslot.FormatClock(start + duration)

		if err := s.store.SaveSchedules(ctx, schedules); err != nil {
			return persistence.Schedule{}, err
		}

		serviceLogger(ctx, s.logger, "schedule", "move", "schedule_id", scheduleID).InfoContext(ctx, "schedule moved")
		return schedules[i], nil
	}

	return persistence.Schedule{}, ErrNotFound
}

// Complete marks a schedule completed and fires the ledger completion
// event: points award, streak transition, and a bonus record, all in one
// logical action with the flag mutation.
func (s *ScheduleService) Complete(ctx context.Context, scheduleID string) (persistence.Schedule, error) {
	return s.resolve(ctx, scheduleID, "complete", func(schedule *persistence.Schedule) {
		schedule.Completed = true
	}, s.ledger.Complete)
}

// Skip marks a schedule skipped and fires the ledger penalty event.
func (s *ScheduleService) Skip(ctx context.Context, scheduleID string) (persistence.Schedule, error) {
	return s.resolve(ctx, scheduleID, "skip", func(schedule *persistence.Schedule) {
		schedule.Skipped = true
	}, s.ledger.Skip)
}

func (s *ScheduleService) resolve(
	ctx context.Context,
	scheduleID string,
	operation string,
	mutate func(*persistence.Schedule),
	event func(points.UserPoints, string) (points.UserPoints, points.Record),
) (persistence.Schedule, error) {
	if s == nil || s.store == nil {
		return persistence.Schedule{}, fmt.Errorf("ScheduleService is not configured")
	}

	schedules, err := s.store.LoadSchedules(ctx)
	if err != nil {
		return persistence.Schedule{}, err
	}

	index := -1
	for i := range schedules {
		if schedules[i].ID == scheduleID {
			index = i
			break
		}
	}
	if index < 0 {
		return persistence.Schedule{}, ErrNotFound
	}

	if schedules[index].Completed || schedules[index].Skipped {
		vErr := &ValidationError{}
		vErr.add("schedule", "schedule is already resolved")
		return persistence.Schedule{}, vErr
	}

	mutate(&schedules[index])
	if err := s.store.SaveSchedules(ctx, schedules); err != nil {
		return persistence.Schedule{}, err
	}

	gameTitle := s.lookupGameTitle(ctx, schedules[index].GameID)

	stored, err := s.store.LoadPoints(ctx)
	if err != nil {
		return persistence.Schedule{}, err
	}

	state, record := event(toLedgerState(stored), gameTitle)

	if err := s.store.SavePoints(ctx, fromLedgerState(state)); err != nil {
		return persistence.Schedule{}, err
	}

	records, err := s.store.LoadBonusPenaltyRecords(ctx)
	if err != nil {
		return persistence.Schedule{}, err
	}
	records = append([]persistence.BonusPenaltyRecord{fromLedgerRecord(record)}, records...)
	if err := s.store.SaveBonusPenaltyRecords(ctx, records); err != nil {
		return persistence.Schedule{}, err
	}

	serviceLogger(ctx, s.logger, "schedule", operation,
		"schedule_id", scheduleID,
		"points_delta", record.Points,
	).InfoContext(ctx, "schedule resolved")
	return schedules[index], nil
}

func (s *ScheduleService) lookupGameTitle(ctx context.Context, gameID string) string {
	games, err := s.store.LoadGames(ctx)
	if err != nil {
		return ""
	}
	for _, game := range games {
		if game.ID == gameID {
			return game.Title
		}
	}
	return ""
}

func toLedgerState(stored persistence.UserPoints) points.UserPoints {
	state := points.UserPoints{Total: stored.Total, Streak: stored.Streak}
	if date, ok := parseDate(stored.LastPlayedDate); ok {
		state.LastPlayed = &date
	}
	return state
}

func fromLedgerState(state points.UserPoints) persistence.UserPoints {
	stored := persistence.UserPoints{Total: state.Total, Streak: state.Streak}
	if state.LastPlayed != nil {
		stored.LastPlayedDate = formatDate(*state.LastPlayed)
	}
	return stored
}

func fromLedgerRecord(record points.Record) persistence.BonusPenaltyRecord {
	return persistence.BonusPenaltyRecord{
		ID:        record.ID,
		Type:      string(record.Type),
		Points:    record.Points,
		Reason:    record.Reason,
		GameTitle: record.GameTitle,
		CreatedAt: record.CreatedAt,
	}
}
