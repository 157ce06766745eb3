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

type fixedEventService interface {
	AddFixedEvent(ctx context.Context, input application.FixedEventInput) (persistence.FixedEvent, error)
	ListFixedEvents(ctx context.Context) ([]persistence.FixedEvent, error)
	DeleteFixedEvent(ctx context.Context, eventID string) error
}

// FixedEventHandler serves the immovable-commitment endpoints.
type FixedEventHandler struct {
	service   fixedEventService
	responder responder
}

// NewFixedEventHandler constructs a FixedEventHandler.
func NewFixedEventHandler(service fixedEventService, logger *slog.Logger) *FixedEventHandler {
	return &FixedEventHandler{service: service, responder: newResponder(logger)}
}

type fixedEventDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsRecurring  bool   `json:"is_recurring"`
	Weekdays     []int  `json:"weekdays,omitempty"`
	SpecificDate string `json:"specific_date,omitempty"`
}

type createFixedEventRequest struct {
	Title        string `json:"title"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsRecurring  bool   `json:"is_recurring"`
	Weekdays     []int  `json:"weekdays"`
	SpecificDate string `json:"specific_date"`
}

// Create registers a new fixed event.
func (h *FixedEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req createFixedEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	event, err := h.service.AddFixedEvent(r.Context(), application.FixedEventInput{
		Title:        req.Title,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsRecurring:  req.IsRecurring,
		Weekdays:     req.Weekdays,
		SpecificDate: req.SpecificDate,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toFixedEventDTO(event))
}

// List returns every fixed event.
func (h *FixedEventHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	events, err := h.service.ListFixedEvents(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]fixedEventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, toFixedEventDTO(event))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// Delete removes a fixed event.
func (h *FixedEventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidEventID)
		return
	}

	if err := h.service.DeleteFixedEvent(r.Context(), id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func toFixedEventDTO(event persistence.FixedEvent) fixedEventDTO {
	return fixedEventDTO{
		ID:           event.ID,
		Title:        event.Title,
		StartTime:    event.StartTime,
		EndTime:      event.EndTime,
		IsRecurring:  event.IsRecurring,
		Weekdays:     event.Weekdays,
		SpecificDate: event.SpecificDate,
	}
}
