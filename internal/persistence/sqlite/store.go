// Package sqlite implements the persistence store on a local SQLite
// database, one JSON-encoded row per logical slot.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/example/game-scheduler/internal/persistence"
)

// Slot keys. The exact naming is an implementation detail of this store.
const (
	slotGames                = "games"
	slotSchedules            = "schedules"
	slotFixedEvents          = "fixed_events"
	slotNotifications        = "notifications"
	slotPoints               = "points"
	slotBonusPenalty         = "bonus_penalty"
	slotNotificationSettings = "notification_settings"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store persists the seven slots in a single SQLite table.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ persistence.Store = (*Store)(nil)

// Open connects to the SQLite database at the given DSN. SQLite serializes
// writers itself; the pool is capped at one connection so slot saves from
// the request path and the reminder loop never contend inside the driver.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the slot table when it does not exist yet. It is safe to
// call on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func loadSlot[T any](ctx context.Context, s *Store, key string, empty T) (T, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, `SELECT value FROM slots WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return empty, nil
	}
	if err != nil {
		return empty, fmt.Errorf("sqlite: load slot %s: %w", key, err)
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return empty, fmt.Errorf("%w: slot %s: %v", persistence.ErrCorruptSlot, key, err)
	}
	return value, nil
}

func saveSlot(ctx context.Context, s *Store, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("sqlite: encode slot %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(encoded), s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("sqlite: save slot %s: %w", key, err)
	}
	return nil
}

// LoadGames returns the games slot, empty when never saved.
func (s *Store) LoadGames(ctx context.Context) ([]persistence.Game, error) {
	return loadSlot(ctx, s, slotGames, []persistence.Game{})
}

// SaveGames replaces the games slot.
func (s *Store) SaveGames(ctx context.Context, games []persistence.Game) error {
	return saveSlot(ctx, s, slotGames, games)
}

// LoadSchedules returns the schedules slot, empty when never saved.
func (s *Store) LoadSchedules(ctx context.Context) ([]persistence.Schedule, error) {
	return loadSlot(ctx, s, slotSchedules, []persistence.Schedule{})
}

// SaveSchedules replaces the schedules slot.
func (s *Store) SaveSchedules(ctx context.Context, schedules []persistence.Schedule) error {
	return saveSlot(ctx, s, slotSchedules, schedules)
}

// LoadFixedEvents returns the fixed-events slot, empty when never saved.
func (s *Store) LoadFixedEvents(ctx context.Context) ([]persistence.FixedEvent, error) {
	return loadSlot(ctx, s, slotFixedEvents, []persistence.FixedEvent{})
}

// SaveFixedEvents replaces the fixed-events slot.
func (s *Store) SaveFixedEvents(ctx context.Context, events []persistence.FixedEvent) error {
	return saveSlot(ctx, s, slotFixedEvents, events)
}

// LoadNotifications returns the notifications slot, empty when never saved.
func (s *Store) LoadNotifications(ctx context.Context) ([]persistence.NotificationRecord, error) {
	return loadSlot(ctx, s, slotNotifications, []persistence.NotificationRecord{})
}

// SaveNotifications replaces the notifications slot.
func (s *Store) SaveNotifications(ctx context.Context, records []persistence.NotificationRecord) error {
	return saveSlot(ctx, s, slotNotifications, records)
}

// LoadPoints returns the points slot, zeroed when never saved.
func (s *Store) LoadPoints(ctx context.Context) (persistence.UserPoints, error) {
	return loadSlot(ctx, s, slotPoints, persistence.UserPoints{})
}

// SavePoints replaces the points slot.
func (s *Store) SavePoints(ctx context.Context, points persistence.UserPoints) error {
	return saveSlot(ctx, s, slotPoints, points)
}

// LoadBonusPenaltyRecords returns the bonus/penalty slot, empty when never saved.
func (s *Store) LoadBonusPenaltyRecords(ctx context.Context) ([]persistence.BonusPenaltyRecord, error) {
	return loadSlot(ctx, s, slotBonusPenalty, []persistence.BonusPenaltyRecord{})
}

// SaveBonusPenaltyRecords replaces the bonus/penalty slot.
func (s *Store) SaveBonusPenaltyRecords(ctx context.Context, records []persistence.BonusPenaltyRecord) error {
	return saveSlot(ctx, s, slotBonusPenalty, records)
}

// LoadNotificationSettings returns the settings slot, defaulted when never saved.
func (s *Store) LoadNotificationSettings(ctx context.Context) (persistence.NotificationSettings, error) {
	return loadSlot(ctx, s, slotNotificationSettings, persistence.DefaultNotificationSettings())
}

// SaveNotificationSettings replaces the settings slot.
func (s *Store) SaveNotificationSettings(ctx context.Context, settings persistence.NotificationSettings) error {
	return saveSlot(ctx, s, slotNotificationSettings, settings)
}
