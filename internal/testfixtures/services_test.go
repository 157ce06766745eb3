package testfixtures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/game-scheduler/internal/application"
	"github.com/example/game-scheduler/internal/persistence"
)

func TestServiceFactoryDefaults(t *testing.T) {
	t.Parallel()

	factory := NewServiceFactory()
	if factory.Clock == nil || factory.IDGenerator == nil {
		t.Fatal("expected defaults populated")
	}
	if !factory.Clock.Now().Equal(ReferenceTime()) {
		t.Fatalf("expected clock at reference time, got %v", factory.Clock.Now())
	}
}

func TestServiceFactoryOverrides(t *testing.T) {
	t.Parallel()

	clock := NewClock(ReferenceTime().Add(time.Hour))
	generator := NewIDGenerator("custom")
	factory := NewServiceFactory(WithClock(clock), WithIDGenerator(generator))

	if factory.Clock != clock {
		t.Fatal("expected clock override applied")
	}
	if factory.IDGenerator != generator {
		t.Fatal("expected generator override applied")
	}
}

func TestFactoryBuildsWorkingGameService(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	factory := NewServiceFactory(WithIDGenerator(NewIDGenerator("game")))
	service := factory.NewGameService(GameServiceDeps{Store: store})

	game, err := service.AddGame(context.Background(), application.GameInput{Title: "テスト", Genre: "RPG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.ID != "game-1" {
		t.Fatalf("expected factory generated id, got %q", game.ID)
	}
	if !game.AddedAt.Equal(ReferenceTime()) {
		t.Fatalf("expected factory clock timestamp, got %v", game.AddedAt)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	game := NewGameFixture(WithGameTitle("テスト"))
	if err := store.SaveGames(ctx, []persistence.Game{game}); err != nil {
		t.Fatalf("save games: %v", err)
	}

	loaded, err := store.LoadGames(ctx)
	if err != nil {
		t.Fatalf("load games: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "テスト" {
		t.Fatalf("unexpected games %v", loaded)
	}
}

func TestMemoryStoreDefaults(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	points, err := store.LoadPoints(ctx)
	if err != nil {
		t.Fatalf("load points: %v", err)
	}
	if points.Total != 0 || points.Streak != 0 || points.LastPlayedDate != "" {
		t.Fatalf("expected zero points state, got %+v", points)
	}

	settings, err := store.LoadNotificationSettings(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if !settings.Enabled || settings.MinutesBefore != 15 {
		t.Fatalf("expected default settings, got %+v", settings)
	}
}

func TestFixedEventFixtureModes(t *testing.T) {
	t.Parallel()

	recurring := NewFixedEventFixture(WithEventWeekdays(0, 6))
	if !recurring.IsRecurring || len(recurring.Weekdays) != 2 || recurring.SpecificDate != "" {
		t.Fatalf("unexpected recurring fixture %+v", recurring)
	}

	oneOff := NewFixedEventFixture(WithEventDate("2024-01-15"))
	if oneOff.IsRecurring || oneOff.SpecificDate != "2024-01-15" || len(oneOff.Weekdays) != 0 {
		t.Fatalf("unexpected one-off fixture %+v", oneOff)
	}
}

func TestMemoryStoreErrInjection(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	store.Err = errors.New("storage offline")
	service := NewServiceFactory().NewGameService(GameServiceDeps{Store: store})

	if _, err := service.ListGames(context.Background()); err == nil {
		t.Fatal("expected the injected store failure to surface")
	}
}
