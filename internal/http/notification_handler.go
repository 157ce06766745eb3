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

type notificationService interface {
	ListNotifications(ctx context.Context) ([]persistence.NotificationRecord, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) error
	Settings(ctx context.Context) (persistence.NotificationSettings, error)
	UpdateSettings(ctx context.Context, input application.NotificationSettingsInput) (persistence.NotificationSettings, error)
}

// NotificationHandler serves the reminder log and settings endpoints.
type NotificationHandler struct {
	service   notificationService
	responder responder
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(service notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{service: service, responder: newResponder(logger)}
}

type notificationDTO struct {
	ID            string `json:"id"`
	ScheduleID    string `json:"schedule_id"`
	GameTitle     string `json:"game_title"`
	ScheduledTime string `json:"scheduled_time"`
	Read          bool   `json:"read"`
	CreatedAt     string `json:"created_at"`
}

type notificationSettingsDTO struct {
	Enabled       bool `json:"enabled"`
	MinutesBefore int  `json:"minutes_before"`
	SoundEnabled  bool `json:"sound_enabled"`
}

type updateNotificationSettingsRequest struct {
	Enabled       bool `json:"enabled"`
	MinutesBefore int  `json:"minutes_before"`
	SoundEnabled  bool `json:"sound_enabled"`
}

// List returns the reminder log, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	records, err := h.service.ListNotifications(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]notificationDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, toNotificationDTO(record))
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// MarkRead marks a single reminder as read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidNotifyID)
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead marks every reminder as read.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.service.MarkAllRead(r.Context()); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Settings returns the stored reminder settings.
func (h *NotificationHandler) Settings(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	settings, err := h.service.Settings(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toNotificationSettingsDTO(settings))
}

// UpdateSettings replaces the reminder settings.
func (h *NotificationHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req updateNotificationSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), application.NotificationSettingsInput{
		Enabled:       req.Enabled,
		MinutesBefore: req.MinutesBefore,
		SoundEnabled:  req.SoundEnabled,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toNotificationSettingsDTO(settings))
}

func toNotificationDTO(record persistence.NotificationRecord) notificationDTO {
	return notificationDTO{
		ID:            record.ID,
		ScheduleID:    record.ScheduleID,
		GameTitle:     record.GameTitle,
		ScheduledTime: record.ScheduledTime,
		Read:          record.Read,
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
	}
}

func toNotificationSettingsDTO(settings persistence.NotificationSettings) notificationSettingsDTO {
	return notificationSettingsDTO{
		Enabled:       settings.Enabled,
		MinutesBefore: settings.MinutesBefore,
		SoundEnabled:  settings.SoundEnabled,
	}
}
