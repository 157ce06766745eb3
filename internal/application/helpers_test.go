package application

import (
	"context"
	"fmt"
	"time"

	"github.com/example/game-scheduler/internal/persistence"
)

// stubStore implements every store interface the services consume, backed
// by plain slices.
type stubStore struct {
	games         []persistence.Game
	schedules     []persistence.Schedule
	fixedEvents   []persistence.FixedEvent
	notifications []persistence.NotificationRecord
	points        persistence.UserPoints
	bonusPenalty  []persistence.BonusPenaltyRecord
	settings      persistence.NotificationSettings
	settingsSet   bool
}

func newStubStore() *stubStore {
	return &stubStore{}
}

func (s *stubStore) LoadGames(ctx context.Context) ([]persistence.Game, error) {
	return append([]persistence.Game{}, s.games...), nil
}

func (s *stubStore) SaveGames(ctx context.Context, games []persistence.Game) error {
	s.games = append([]persistence.Game{}, games...)
	return nil
}

func (s *stubStore) LoadSchedules(ctx context.Context) ([]persistence.Schedule, error) {
	return append([]persistence.Schedule{}, s.schedules...), nil
}

func (s *stubStore) SaveSchedules(ctx context.Context, schedules []persistence.Schedule) error {
	s.schedules = append([]persistence.Schedule{}, schedules...)
	return nil
}

func (s *stubStore) LoadFixedEvents(ctx context.Context) ([]persistence.FixedEvent, error) {
	return append([]persistence.FixedEvent{}, s.fixedEvents...), nil
}

func (s *stubStore) SaveFixedEvents(ctx context.Context, events []persistence.FixedEvent) error {
	s.fixedEvents = append([]persistence.FixedEvent{}, events...)
	return nil
}

func (s *stubStore) LoadNotifications(ctx context.Context) ([]persistence.NotificationRecord, error) {
	return append([]persistence.NotificationRecord{}, s.notifications...), nil
}

func (s *stubStore) SaveNotifications(ctx context.Context, records []persistence.NotificationRecord) error {
	s.notifications = append([]persistence.NotificationRecord{}, records...)
	return nil
}

func (s *stubStore) LoadPoints(ctx context.Context) (persistence.UserPoints, error) {
	return s.points, nil
}

func (s *stubStore) SavePoints(ctx context.Context, points persistence.UserPoints) error {
	s.points = points
	return nil
}

func (s *stubStore) LoadBonusPenaltyRecords(ctx context.Context) ([]persistence.BonusPenaltyRecord, error) {
	return append([]persistence.BonusPenaltyRecord{}, s.bonusPenalty...), nil
}

func (s *stubStore) SaveBonusPenaltyRecords(ctx context.Context, records []persistence.BonusPenaltyRecord) error {
	s.bonusPenalty = append([]persistence.BonusPenaltyRecord{}, records...)
	return nil
}

func (s *stubStore) LoadNotificationSettings(ctx context.Context) (persistence.NotificationSettings, error) {
	if !s.settingsSet {
		return persistence.DefaultNotificationSettings(), nil
	}
	return s.settings, nil
}

func (s *stubStore) SaveNotificationSettings(ctx context.Context, settings persistence.NotificationSettings) error {
	s.settings = settings
	s.settingsSet = true
	return nil
}

func sequentialIDs(prefix string) func() string {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("%s-%d", prefix, counter)
	}
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
