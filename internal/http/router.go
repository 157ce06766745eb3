package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterConfig lists the handlers to mount. Nil handlers are skipped so
// tests can route only the surface they exercise.
type RouterConfig struct {
	Games         *GameHandler
	FixedEvents   *FixedEventHandler
	Schedules     *ScheduleHandler
	Points        *PointsHandler
	Notifications *NotificationHandler
	Middleware    []mux.MiddlewareFunc
}

// NewRouter mounts the configured handlers on a fresh router.
func NewRouter(cfg RouterConfig) http.Handler {
	router := mux.NewRouter()

	if cfg.Games != nil {
		router.HandleFunc("/games", cfg.Games.Create).Methods(http.MethodPost)
		router.HandleFunc("/games", cfg.Games.List).Methods(http.MethodGet)
		router.HandleFunc("/games/{id}/status", cfg.Games.UpdateStatus).Methods(http.MethodPatch)
		router.HandleFunc("/games/{id}/genre", cfg.Games.UpdateGenre).Methods(http.MethodPatch)
		router.HandleFunc("/games/{id}", cfg.Games.Delete).Methods(http.MethodDelete)
	}

	if cfg.FixedEvents != nil {
		router.HandleFunc("/fixed-events", cfg.FixedEvents.Create).Methods(http.MethodPost)
		router.HandleFunc("/fixed-events", cfg.FixedEvents.List).Methods(http.MethodGet)
		router.HandleFunc("/fixed-events/{id}", cfg.FixedEvents.Delete).Methods(http.MethodDelete)
	}

	if cfg.Schedules != nil {
		router.HandleFunc("/schedules/generate", cfg.Schedules.Generate).Methods(http.MethodPost)
		router.HandleFunc("/schedules", cfg.Schedules.List).Methods(http.MethodGet)
		router.HandleFunc("/schedules/{id}/move", cfg.Schedules.Move).Methods(http.MethodPatch)
		router.HandleFunc("/schedules/{id}/complete", cfg.Schedules.Complete).Methods(http.MethodPost)
		router.HandleFunc("/schedules/{id}/skip", cfg.Schedules.Skip).Methods(http.MethodPost)
	}

	if cfg.Points != nil {
		router.HandleFunc("/points", cfg.Points.Points).Methods(http.MethodGet)
		router.HandleFunc("/points/records", cfg.Points.Records).Methods(http.MethodGet)
		router.HandleFunc("/points/motivation", cfg.Points.Motivation).Methods(http.MethodGet)
	}

	if cfg.Notifications != nil {
		router.HandleFunc("/notifications", cfg.Notifications.List).Methods(http.MethodGet)
		router.HandleFunc("/notifications/read-all", cfg.Notifications.MarkAllRead).Methods(http.MethodPost)
		router.HandleFunc("/notifications/{id}/read", cfg.Notifications.MarkRead).Methods(http.MethodPost)
		router.HandleFunc("/notification-settings", cfg.Notifications.Settings).Methods(http.MethodGet)
		router.HandleFunc("/notification-settings", cfg.Notifications.UpdateSettings).Methods(http.MethodPut)
	}

	for _, mw := range cfg.Middleware {
		if mw != nil {
			router.Use(mw)
		}
	}

	return router
}
