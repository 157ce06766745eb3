package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/game-scheduler/internal/persistence"
	"github.com/example/game-scheduler/internal/scheduler"
)

// GameStore captures the persistence slots needed by the game service.
// Deleting a game rewrites the schedules slot as well, hence both pairs.
type GameStore interface {
	LoadGames(ctx context.Context) ([]persistence.Game, error)
	SaveGames(ctx context.Context, games []persistence.Game) error
	LoadSchedules(ctx context.Context) ([]persistence.Schedule, error)
	SaveSchedules(ctx context.Context, schedules []persistence.Schedule) error
}

// GameService manages the game catalog.
type GameService struct {
	store       GameStore
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewGameService wires dependencies for catalog operations.
func NewGameService(store GameStore, idGenerator func() string, now func() time.Time) *GameService {
	return NewGameServiceWithLogger(store, idGenerator, now, nil)
}

// NewGameServiceWithLogger wires dependencies including a base logger.
func NewGameServiceWithLogger(store GameStore, idGenerator func() string, now func() time.Time, logger *slog.Logger) *GameService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &GameService{store: store, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

// AddGame validates input and appends a new unstarted game to the catalog.
func (s *GameService) AddGame(ctx context.Context, input GameInput) (persistence.Game, error) {
	if s == nil || s.store == nil {
		return persistence.Game{}, fmt.Errorf("GameService is not configured")
	}

	vErr := &ValidationError{}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		vErr.add("title", "title is required")
	}
	if input.Genre != "" && !validGenre(input.Genre) {
		vErr.add("genre", "genre is not in the accepted set")
	}
	if vErr.HasErrors() {
		return persistence.Game{}, vErr
	}

	games, err := s.store.LoadGames(ctx)
	if err != nil {
		return persistence.Game{}, err
	}

	game := persistence.Game{
		ID:      s.idGenerator(),
		Title:   title,
		Genre:   input.Genre,
		Status:  string(scheduler.StatusUnstarted),
		AddedAt: s.now(),
	}
	games = append(games, game)

	if err := s.store.SaveGames(ctx, games); err != nil {
		return persistence.Game{}, err
	}

	serviceLogger(ctx, s.logger, "game", "add", "game_id", game.ID).InfoContext(ctx, "game added")
	return game, nil
}

// ListGames returns the catalog in stored order.
func (s *GameService) ListGames(ctx context.Context) ([]persistence.Game, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("GameService is not configured")
	}
	return s.store.LoadGames(ctx)
}

// UpdateStatus changes a game's play status.
func (s *GameService) UpdateStatus(ctx context.Context, gameID, status string) (persistence.Game, error) {
	if !validStatus(status) {
		vErr := &ValidationError{}
		vErr.add("status", "status is not in the accepted set")
		return persistence.Game{}, vErr
	}
	return s.updateGame(ctx, gameID, "update_status", func(game *persistence.Game) {
		game.Status = status
	})
}

// UpdateGenre changes a game's genre.
func (s *GameService) UpdateGenre(ctx context.Context, gameID, genre string) (persistence.Game, error) {
	if !validGenre(genre) {
		vErr := &ValidationError{}
		vErr.add("genre", "genre is not in the accepted set")
		return persistence.Game{}, vErr
	}
	return s.updateGame(ctx, gameID, "update_genre", func(game *persistence.Game) {
		game.Genre = genre
	})
}

// DeleteGame removes a game and every schedule referencing it, so no
// schedule is ever left dangling.
func (s *GameService) DeleteGame(ctx context.Context, gameID string) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("GameService is not configured")
	}

	games, err := s.store.LoadGames(ctx)
	if err != nil {
		return err
	}

	kept := make([]persistence.Game, 0, len(games))
	found := false
	for _, game := range games {
		if game.ID == gameID {
			found = true
			continue
		}
		kept = append(kept, game)
	}
	if !found {
		return ErrNotFound
	}

	schedules, err := s.store.LoadSchedules(ctx)
	if err != nil {
		return err
	}
	remaining := make([]persistence.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		if schedule.GameID == gameID {
			continue
		}
		remaining = append(remaining, schedule)
	}

	if err := s.store.SaveGames(ctx, kept); err != nil {
		return err
	}
	if err := s.store.SaveSchedules(ctx, remaining); err != nil {
		return err
	}

	serviceLogger(ctx, s.logger, "game", "delete",
		"game_id", gameID,
		"cascaded_schedules", len(schedules)-len(remaining),
	).InfoContext(ctx, "game deleted")
	return nil
}

func (s *GameService) updateGame(ctx context.Context, gameID, operation string, mutate func(*persistence.Game)) (persistence.Game, error) {
	if s == nil || s.store == nil {
		return persistence.Game{}, fmt.Errorf("GameService is not configured")
	}

	games, err := s.store.LoadGames(ctx)
	if err != nil {
		return persistence.Game{}, err
	}

	for i := range games {
		if games[i].ID != gameID {
			continue
		}
		mutate(&games[i])
		if err := s.store.SaveGames(ctx, games); err != nil {
			return persistence.Game{}, err
		}
		serviceLogger(ctx, s.logger, "game", operation, "game_id", gameID).InfoContext(ctx, "game updated")
		return games[i], nil
	}

	return persistence.Game{}, ErrNotFound
}
