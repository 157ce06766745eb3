package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/example/game-scheduler/internal/application"
	"github.com/example/game-scheduler/internal/config"
	httptransport "github.com/example/game-scheduler/internal/http"
	"github.com/example/game-scheduler/internal/logging"
	"github.com/example/game-scheduler/internal/persistence"
	"github.com/example/game-scheduler/internal/persistence/sqlite"
	"github.com/example/game-scheduler/internal/reminder"
	"github.com/example/game-scheduler/internal/scheduler"
)

func main() {
	logger := logging.New(os.Stdout, slog.LevelInfo)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	storage, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := storage.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	idGenerator := uuid.NewString
	now := time.Now

	gameService := application.NewGameServiceWithLogger(storage, idGenerator, now, logger)
	fixedEventService := application.NewFixedEventServiceWithLogger(storage, idGenerator, logger)
	scheduleService := application.NewScheduleServiceWithLogger(storage, scheduler.Options{HorizonDays: cfg.HorizonDays}, idGenerator, now, logger)
	pointsService := application.NewPointsService(storage)
	notificationService := application.NewNotificationServiceWithLogger(storage, idGenerator, now, logger)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Games:         httptransport.NewGameHandler(gameService, logger),
		FixedEvents:   httptransport.NewFixedEventHandler(fixedEventService, logger),
		Schedules:     httptransport.NewScheduleHandler(scheduleService, logger),
		Points:        httptransport.NewPointsHandler(pointsService, logger),
		Notifications: httptransport.NewNotificationHandler(notificationService, logger),
		Middleware:    []mux.MiddlewareFunc{httptransport.RequestLogger(logger)},
	})

	scanner := reminder.NewScanner(notificationService, logAlertSink{logger: logger}, cfg.ReminderInterval, logger)
	go scanner.Run(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("game scheduler API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// logAlertSink surfaces raised reminders on the process log. A desktop or
// push delivery channel would slot in here.
type logAlertSink struct {
	logger *slog.Logger
}

func (s logAlertSink) Deliver(ctx context.Context, record persistence.NotificationRecord) {
	s.logger.InfoContext(ctx, "reminder raised",
		"schedule_id", record.ScheduleID,
		"game_title", record.GameTitle,
		"scheduled_time", record.ScheduledTime,
	)
}
