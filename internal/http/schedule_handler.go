package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/example/game-scheduler/internal/application"
	"github.com/example/game-scheduler/internal/persistence"
)

type scheduleService interface {
	Generate(ctx context.Context) ([]persistence.Schedule, error)
	ListSchedules(ctx context.Context) ([]persistence.Schedule, error)
	Move(ctx context.Context, scheduleID string, input application.MoveScheduleInput) (persistence.Schedule, error)
	Complete(ctx context.Context, scheduleID string) (persistence.Schedule, error)
	Skip(ctx context.Context, scheduleID string) (persistence.Schedule, error)
}

// ScheduleHandler serves the play-session endpoints.
type ScheduleHandler struct {
	service   scheduleService
	responder responder
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(service scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, responder: newResponder(logger)}
}

type scheduleDTO struct {
	ID        string `json:"id"`
	GameID    string `json:"game_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Completed bool   `json:"completed"`
	Skipped   bool   `json:"skipped"`
}

type moveScheduleRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

// Generate replaces the stored schedule set with a freshly computed one.
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	schedules, err := h.service.Generate(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toScheduleDTOs(schedules))
}

// List returns the stored schedule set.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	schedules, err := h.service.ListSchedules(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toScheduleDTOs(schedules))
}

// Move reschedules a session to a new date and start time.
func (h *ScheduleHandler) Move(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidScheduleID)
		return
	}

	var req moveScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	schedule, err := h.service.Move(r.Context(), id, application.MoveScheduleInput{
		Date:      req.Date,
		StartTime: req.StartTime,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toScheduleDTO(schedule))
}

// Complete resolves a session as played and awards the completion bonus.
func (h *ScheduleHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.serviceComplete)
}

// Skip resolves a session as skipped and applies the penalty.
func (h *ScheduleHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.serviceSkip)
}

func (h *ScheduleHandler) serviceComplete(ctx context.Context, id string) (persistence.Schedule, error) {
	return h.service.Complete(ctx, id)
}

func (h *ScheduleHandler) serviceSkip(ctx context.Context, id string) (persistence.Schedule, error) {
	return h.service.Skip(ctx, id)
}

func (h *ScheduleHandler) resolve(w http.ResponseWriter, r *http.Request, apply func(context.Context, string) (persistence.Schedule, error)) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidScheduleID)
		return
	}

	schedule, err := apply(r.Context(), id)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toScheduleDTO(schedule))
}

func toScheduleDTO(schedule persistence.Schedule) scheduleDTO {
	return scheduleDTO{
		ID:        schedule.ID,
		GameID:    schedule.GameID,
		Date:      schedule.Date,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		Completed: schedule.Completed,
		Skipped:   schedule.Skipped,
	}
}

func toScheduleDTOs(schedules []persistence.Schedule) []scheduleDTO {
	dtos := make([]scheduleDTO, 0, len(schedules))
	for _, schedule := range schedules {
		dtos = append(dtos, toScheduleDTO(schedule))
	}
	return dtos
}
