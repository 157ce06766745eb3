package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/example/game-scheduler/internal/persistence"
	"github.com/example/game-scheduler/internal/points"
)

type pointsService interface {
	Points(ctx context.Context) (persistence.UserPoints, error)
	Records(ctx context.Context) ([]persistence.BonusPenaltyRecord, error)
	Motivation(ctx context.Context) (points.Motivation, error)
}

// PointsHandler serves the points and motivation endpoints.
type PointsHandler struct {
	service   pointsService
	responder responder
}

// NewPointsHandler constructs a PointsHandler.
func NewPointsHandler(service pointsService, logger *slog.Logger) *PointsHandler {
	return &PointsHandler{service: service, responder: newResponder(logger)}
}

type userPointsDTO struct {
	TotalPoints    int    `json:"total_points"`
	CurrentStreak  int    `json:"current_streak"`
	LastPlayedDate string `json:"last_played_date,omitempty"`
}

type bonusPenaltyDTO struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Points    int    `json:"points"`
	Reason    string `json:"reason"`
	GameTitle string `json:"game_title,omitempty"`
	CreatedAt string `json:"created_at"`
}

type motivationDTO struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// Points returns the current points balance and streak.
func (h *PointsHandler) Points(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	state, err := h.service.Points(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, userPointsDTO{
		TotalPoints:    state.Total,
		CurrentStreak:  state.Streak,
		LastPlayedDate: state.LastPlayedDate,
	})
}

// Records returns the bonus and penalty history, newest first.
func (h *PointsHandler) Records(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	records, err := h.service.Records(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]bonusPenaltyDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, bonusPenaltyDTO{
			ID:        record.ID,
			Type:      record.Type,
			Points:    record.Points,
			Reason:    record.Reason,
			GameTitle: record.GameTitle,
			CreatedAt: record.CreatedAt.Format(time.RFC3339),
		})
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// Motivation returns the derived motivation score and level.
func (h *PointsHandler) Motivation(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	motivation, err := h.service.Motivation(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, motivationDTO{
		Score: motivation.Score,
		Level: motivation.Level,
	})
}
