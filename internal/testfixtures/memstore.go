package testfixtures

import (
	"context"
	"sync"

	"github.com/example/game-scheduler/internal/persistence"
)

// MemoryStore is an in-memory persistence.Store for tests. Every slot
// starts at its empty default, matching a freshly migrated database.
type MemoryStore struct {
	mu            sync.Mutex
	games         []persistence.Game
	schedules     []persistence.Schedule
	fixedEvents   []persistence.FixedEvent
	notifications []persistence.NotificationRecord
	points        *persistence.UserPoints
	bonusPenalty  []persistence.BonusPenaltyRecord
	settings      *persistence.NotificationSettings

	// Err, when set, is returned by every subsequent operation.
	Err error
}

var _ persistence.Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadGames(ctx context.Context) ([]persistence.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]persistence.Game{}, s.games...), nil
}

func (s *MemoryStore) SaveGames(ctx context.Context, games []persistence.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.games = append([]persistence.Game{}, games...)
	return nil
}

func (s *MemoryStore) LoadSchedules(ctx context.Context) ([]persistence.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]persistence.Schedule{}, s.schedules...), nil
}

func (s *MemoryStore) SaveSchedules(ctx context.Context, schedules []persistence.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.schedules = append([]persistence.Schedule{}, schedules...)
	return nil
}

func (s *MemoryStore) LoadFixedEvents(ctx context.Context) ([]persistence.FixedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]persistence.FixedEvent{}, s.fixedEvents...), nil
}

func (s *MemoryStore) SaveFixedEvents(ctx context.Context, events []persistence.FixedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.fixedEvents = append([]persistence.FixedEvent{}, events...)
	return nil
}

func (s *MemoryStore) LoadNotifications(ctx context.Context) ([]persistence.NotificationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]persistence.NotificationRecord{}, s.notifications...), nil
}

func (s *MemoryStore) SaveNotifications(ctx context.Context, records []persistence.NotificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.notifications = append([]persistence.NotificationRecord{}, records...)
	return nil
}

func (s *MemoryStore) LoadPoints(ctx context.Context) (persistence.UserPoints, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return persistence.UserPoints{}, s.Err
	}
	if s.points == nil {
		return persistence.UserPoints{}, nil
	}
	return *s.points, nil
}

func (s *MemoryStore) SavePoints(ctx context.Context, points persistence.UserPoints) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.points = &points
	return nil
}

func (s *MemoryStore) LoadBonusPenaltyRecords(ctx context.Context) ([]persistence.BonusPenaltyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]persistence.BonusPenaltyRecord{}, s.bonusPenalty...), nil
}

func (s *MemoryStore) SaveBonusPenaltyRecords(ctx context.Context, records []persistence.BonusPenaltyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.bonusPenalty = append([]persistence.BonusPenaltyRecord{}, records...)
	return nil
}

func (s *MemoryStore) LoadNotificationSettings(ctx context.Context) (persistence.NotificationSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return persistence.NotificationSettings{}, s.Err
	}
	if s.settings == nil {
		return persistence.DefaultNotificationSettings(), nil
	}
	return *s.settings, nil
}

func (s *MemoryStore) SaveNotificationSettings(ctx context.Context, settings persistence.NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.settings = &settings
	return nil
}
