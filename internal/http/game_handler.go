package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/example/game-scheduler/internal/application"
	"github.com/example/game-scheduler/internal/persistence"
)

type gameService interface {
	AddGame(ctx context.Context, input application.GameInput) (persistence.Game, error)
	ListGames(ctx context.Context) ([]persistence.Game, error)
	UpdateStatus(ctx context.Context, gameID, status string) (persistence.Game, error)
	UpdateGenre(ctx context.Context, gameID, genre string) (persistence.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
}

// GameHandler serves the game catalog endpoints.
type GameHandler struct {
	service   gameService
	responder responder
}

// NewGameHandler constructs a GameHandler.
func NewGameHandler(service gameService, logger *slog.Logger) *GameHandler {
	return &GameHandler{service: service, responder: newResponder(logger)}
}

type gameDTO struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Genre   string    `json:"genre,omitempty"`
	Status  string    `json:"status"`
	AddedAt time.Time `json:"added_at"`
}

type createGameRequest struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
}

type updateGameStatusRequest struct {
	Status string `json:"status"`
}

type updateGameGenreRequest struct {
	Genre string `json:"genre"`
}

// Create registers a new game.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	game, err := h.service.AddGame(r.Context(), application.GameInput{Title: req.Title, Genre: req.Genre})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toGameDTO(game))
}

// List returns the catalog.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	games, err := h.service.ListGames(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]gameDTO, 0, len(games))
	for _, game := range games {
		dtos = append(dtos, toGameDTO(game))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// UpdateStatus changes a game's play status.
func (h *GameHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, func(ctx context.Context, id string, body json.RawMessage) (persistence.Game, error) {
		var req updateGameStatusRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return persistence.Game{}, errBadRequestBody
		}
		return h.service.UpdateStatus(ctx, id, req.Status)
	})
}

// UpdateGenre changes a game's genre.
func (h *GameHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, func(ctx context.Context, id string, body json.RawMessage) (persistence.Game, error) {
		var req updateGameGenreRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return persistence.Game{}, errBadRequestBody
		}
		return h.service.UpdateGenre(ctx, id, req.Genre)
	})
}

// Delete removes a game and its schedules.
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGameID)
		return
	}

	if err := h.service.DeleteGame(r.Context(), id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *GameHandler) patch(w http.ResponseWriter, r *http.Request, apply func(context.Context, string, json.RawMessage) (persistence.Game, error)) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidGameID)
		return
	}

	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	game, err := apply(r.Context(), id, body)
	if err != nil {
		if err == errBadRequestBody {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
			return
		}
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toGameDTO(game))
}

func toGameDTO(game persistence.Game) gameDTO {
	return gameDTO{
		ID:      game.ID,
		Title:   game.Title,
		Genre:   game.Genre,
		Status:  game.Status,
		AddedAt: game.AddedAt,
	}
}
