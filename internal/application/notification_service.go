package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/game-scheduler/internal/persistence"
)

// NotificationStore captures the persistence slots needed by the
// notification service.
type NotificationStore interface {
	LoadSchedules(ctx context.Context) ([]persistence.Schedule, error)
	LoadGames(ctx context.Context) ([]persistence.Game, error)
	LoadNotifications(ctx context.Context) ([]persistence.NotificationRecord, error)
	SaveNotifications(ctx context.Context, records []persistence.NotificationRecord) error
	LoadNotificationSettings(ctx context.Context) (persistence.NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, settings persistence.NotificationSettings) error
}

// NotificationService maintains the reminder log and its settings.
type NotificationService struct {
	store       NotificationStore
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewNotificationService wires dependencies for reminder operations.
func NewNotificationService(store NotificationStore, idGenerator func() string, now func() time.Time) *NotificationService {
	return NewNotificationServiceWithLogger(store, idGenerator, now, nil)
}

// NewNotificationServiceWithLogger wires dependencies including a base logger.
func NewNotificationServiceWithLogger(store NotificationStore, idGenerator func() string, now func() time.Time, logger *slog.Logger) *NotificationService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &NotificationService{store: store, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

// Sweep scans upcoming schedules and appends a reminder record for each
// unresolved session starting within the configured lead window that has
// not been notified yet. The whole sweep works from one loaded snapshot:
// the dedup check and the append see the same state, so overlapping ticks
// cannot double-notify. The newly appended records are returned for
// delivery; a disabled configuration yields none.
func (s *NotificationService) Sweep(ctx context.Context) ([]persistence.NotificationRecord, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("NotificationService is not configured")
	}

	settings, err := s.store.LoadNotificationSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, nil
	}

	schedules, err := s.store.LoadSchedules(ctx)
	if err != nil {
		return nil, err
	}
	games, err := s.store.LoadGames(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.store.LoadNotifications(ctx)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(games))
	for _, game := range games {
		titles[game.ID] = game.Title
	}
	notified := make(map[string]struct{}, len(existing))
	for _, record := range existing {
		notified[record.ScheduleID] = struct{}{}
	}

	now := s.now()
	created := make([]persistence.NotificationRecord, 0)

	for _, schedule := range schedules {
		if schedule.Completed || schedule.Skipped {
			continue
		}
		if _, done := notified[schedule.ID]; done {
			continue
		}
		title, known := titles[schedule.GameID]
		if !known {
			continue
		}

		startsAt, ok := scheduleStartsAt(schedule, now.Location())
		if !ok {
			continue
		}

		lead := startsAt.Sub(now)
		if lead <= 0 || lead > time.Duration(settings.MinutesBefore)*time.Minute {
			continue
		}

		created = append(created, persistence.NotificationRecord{
			ID:            s.idGenerator(),
			ScheduleID:    schedule.ID,
			GameTitle:     title,
			ScheduledTime: schedule.Date + "T" + schedule.StartTime,
			CreatedAt:     now,
		})
		notified[schedule.ID] = struct{}{}
	}

	if len(created) == 0 {
		return nil, nil
	}

	updated := append(append([]persistence.NotificationRecord{}, created...), existing...)
	if err := s.store.SaveNotifications(ctx, updated); err != nil {
		return nil, err
	}

	serviceLogger(ctx, s.logger, "notification", "sweep", "created", len(created)).InfoContext(ctx, "reminders raised")
	return created, nil
}

// ListNotifications returns the reminder log, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context) ([]persistence.NotificationRecord, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("NotificationService is not configured")
	}
	return s.store.LoadNotifications(ctx)
}

// MarkRead flags a single reminder as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("NotificationService is not configured")
	}

	records, err := s.store.LoadNotifications(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID != notificationID {
			continue
		}
		records[i].Read = true
		return s.store.SaveNotifications(ctx, records)
	}

	return ErrNotFound
}

// MarkAllRead flags every reminder as read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("NotificationService is not configured")
	}

	records, err := s.store.LoadNotifications(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		records[i].Read = true
	}
	return s.store.SaveNotifications(ctx, records)
}

// Settings returns the current reminder preferences.
func (s *NotificationService) Settings(ctx context.Context) (persistence.NotificationSettings, error) {
	if s == nil || s.store == nil {
		return persistence.NotificationSettings{}, fmt.Errorf("NotificationService is not configured")
	}
	return s.store.LoadNotificationSettings(ctx)
}

// UpdateSettings validates and replaces the reminder preferences.
func (s *NotificationService) UpdateSettings(ctx context.Context, input NotificationSettingsInput) (persistence.NotificationSettings, error) {
	if s == nil || s.store == nil {
		return persistence.NotificationSettings{}, fmt.Errorf("NotificationService is not configured")
	}

	if input.MinutesBefore <= 0 {
		vErr := &ValidationError{}
		vErr.add("minutes_before", "minutes before must be positive")
		return persistence.NotificationSettings{}, vErr
	}

	settings := persistence.NotificationSettings{
		Enabled:       input.Enabled,
		MinutesBefore: input.MinutesBefore,
		SoundEnabled:  input.SoundEnabled,
	}
	if err := s.store.SaveNotificationSettings(ctx, settings); err != nil {
		return persistence.NotificationSettings{}, err
	}
	return settings, nil
}

// scheduleStartsAt combines a schedule's date and start clock into an
// instant in the given location.
func scheduleStartsAt(schedule persistence.Schedule, loc *time.Location) (time.Time, bool) {
	date, ok := parseDate(schedule.Date)
	if !ok {
		return time.Time{}, false
	}
	start, ok := parseClockMinutes(schedule.StartTime)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), start/60, start%60, 0, 0, loc), true
}
