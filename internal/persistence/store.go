package persistence

import "context"

// Store is the durable storage consumed by the application services. It
// exposes seven independent logical slots, each a whole-value load/save
// pair: loading an absent slot returns the slot's empty default, never an
// error, and saving replaces the slot's previous contents entirely.
type Store interface {
	LoadGames(ctx context.Context) ([]Game, error)
	SaveGames(ctx context.Context, games []Game) error

	LoadSchedules(ctx context.Context) ([]Schedule, error)
	SaveSchedules(ctx context.Context, schedules []Schedule) error

	LoadFixedEvents(ctx context.Context) ([]FixedEvent, error)
	SaveFixedEvents(ctx context.Context, events []FixedEvent) error

	LoadNotifications(ctx context.Context) ([]NotificationRecord, error)
	SaveNotifications(ctx context.Context, records []NotificationRecord) error

	LoadPoints(ctx context.Context) (UserPoints, error)
	SavePoints(ctx context.Context, points UserPoints) error

	LoadBonusPenaltyRecords(ctx context.Context) ([]BonusPenaltyRecord, error)
	SaveBonusPenaltyRecords(ctx context.Context, records []BonusPenaltyRecord) error

	LoadNotificationSettings(ctx context.Context) (NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, settings NotificationSettings) error
}
