package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/game-scheduler/internal/persistence"
)

var testNow = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

func TestAddGame(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	service := NewGameService(store, sequentialIDs("game"), fixedNow(testNow))

	game, err := service.AddGame(context.Background(), GameInput{Title: "  ゼルダの伝説  ", Genre: "RPG"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if game.ID != "game-1" {
		t.Fatalf("expected generated id, got %q", game.ID)
	}
	if game.Title != "ゼルダの伝説" {
		t.Fatalf("expected trimmed title, got %q", game.Title)
	}
	if game.Status != "unstarted" {
		t.Fatalf("expected new games to be unstarted, got %q", game.Status)
	}
	if !game.AddedAt.Equal(testNow) {
		t.Fatalf("expected added at %v, got %v", testNow, game.AddedAt)
	}
	if len(store.games) != 1 {
		t.Fatalf("expected one persisted game, got %d", len(store.games))
	}
}

func TestAddGameValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input GameInput
		field string
	}{
		{name: "missing title", input: GameInput{Genre: "RPG"}, field: "title"},
		{name: "blank title", input: GameInput{Title: "   "}, field: "title"},
		{name: "unknown genre", input: GameInput{Title: "ゲーム", Genre: "ホラー"}, field: "genre"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := newStubStore()
			service := NewGameService(store, sequentialIDs("game"), fixedNow(testNow))

			_, err := service.AddGame(context.Background(), tc.input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := vErr.FieldErrors[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tc.field, vErr.FieldErrors)
			}
			if len(store.games) != 0 {
				t.Fatal("expected nothing persisted on validation failure")
			}
		})
	}
}

func TestAddGameWithoutGenre(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	service := NewGameService(store, sequentialIDs("game"), fixedNow(testNow))

	game, err := service.AddGame(context.Background(), GameInput{Title: "ポケモン"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.Genre != "" {
		t.Fatalf("expected empty genre accepted, got %q", game.Genre)
	}
}

func TestListGames(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.games = []persistence.Game{
		{ID: "g1", Title: "First"},
		{ID: "g2", Title: "Second"},
	}
	service := NewGameService(store, nil, nil)

	games, err := service.ListGames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 2 || games[0].ID != "g1" || games[1].ID != "g2" {
		t.Fatalf("expected stored order preserved, got %v", games)
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.games = []persistence.Game{{ID: "g1", Title: "ゲーム", Status: "unstarted"}}
	service := NewGameService(store, nil, nil)

	game, err := service.UpdateStatus(context.Background(), "g1", "playing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.Status != "playing" {
		t.Fatalf("expected status playing, got %q", game.Status)
	}
	if store.games[0].Status != "playing" {
		t.Fatal("expected persisted status to change")
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.games = []persistence.Game{{ID: "g1", Status: "unstarted"}}
	service := NewGameService(store, nil, nil)

	_, err := service.UpdateStatus(context.Background(), "g1", "paused")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatusUnknownGame(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	service := NewGameService(store, nil, nil)

	_, err := service.UpdateStatus(context.Background(), "missing", "playing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateGenre(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.games = []persistence.Game{{ID: "g1", Genre: "RPG"}}
	service := NewGameService(store, nil, nil)

	game, err := service.UpdateGenre(context.Background(), "g1", "アクション")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.Genre != "アクション" {
		t.Fatalf("expected genre updated, got %q", game.Genre)
	}
}

func TestDeleteGameCascadesSchedules(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.games = []persistence.Game{{ID: "g1"}, {ID: "g2"}}
	store.schedules = []persistence.Schedule{
		{ID: "s1", GameID: "g1"},
		{ID: "s2", GameID: "g2"},
		{ID: "s3", GameID: "g1"},
	}
	service := NewGameService(store, nil, nil)

	if err := service.DeleteGame(context.Background(), "g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.games) != 1 || store.games[0].ID != "g2" {
		t.Fatalf("expected only g2 to remain, got %v", store.games)
	}
	if len(store.schedules) != 1 || store.schedules[0].ID != "s2" {
		t.Fatalf("expected schedules for g1 removed, got %v", store.schedules)
	}
}

func TestDeleteGameUnknown(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	store.games = []persistence.Game{{ID: "g1"}}
	service := NewGameService(store, nil, nil)

	err := service.DeleteGame(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(store.games) != 1 {
		t.Fatal("expected catalog unchanged")
	}
}
