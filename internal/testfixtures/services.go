package testfixtures

import (
	"log/slog"
	"time"

	"github.com/example/game-scheduler/internal/application"
	"github.com/example/game-scheduler/internal/scheduler"
)

// ServiceFactory assists tests with constructing application services using
// deterministic identifiers and clocks.
type ServiceFactory struct {
	Clock       *Clock
	IDGenerator *IDGenerator
}

// ServiceFactoryOption configures a ServiceFactory instance.
type ServiceFactoryOption func(*ServiceFactory)

// NewServiceFactory constructs a ServiceFactory with defaults.
func NewServiceFactory(opts ...ServiceFactoryOption) *ServiceFactory {
	factory := &ServiceFactory{
		Clock:       NewClock(time.Time{}),
		IDGenerator: NewIDGenerator("id"),
	}
	for _, opt := range opts {
		opt(factory)
	}
	if factory.Clock == nil {
		factory.Clock = NewClock(time.Time{})
	}
	if factory.IDGenerator == nil {
		factory.IDGenerator = NewIDGenerator("id")
	}
	return factory
}

// WithClock overrides the clock used by the factory.
func WithClock(clock *Clock) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.Clock = clock
	}
}

// WithIDGenerator overrides the identifier generator used by the factory.
func WithIDGenerator(generator *IDGenerator) ServiceFactoryOption {
	return func(factory *ServiceFactory) {
		factory.IDGenerator = generator
	}
}

// GameServiceDeps captures dependencies for constructing a game service.
type GameServiceDeps struct {
	Store       application.GameStore
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewGameService builds a game service using the supplied dependencies
// combined with the factory defaults.
func (f *ServiceFactory) NewGameService(deps GameServiceDeps) *application.GameService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewGameServiceWithLogger(deps.Store, idGen, now, deps.Logger)
}

// FixedEventServiceDeps captures dependencies for constructing a fixed
// event service.
type FixedEventServiceDeps struct {
	Store       application.FixedEventStore
	IDGenerator func() string
	Logger      *slog.Logger
}

// NewFixedEventService builds a fixed event service using the supplied
// dependencies.
func (f *ServiceFactory) NewFixedEventService(deps FixedEventServiceDeps) *application.FixedEventService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	return application.NewFixedEventServiceWithLogger(deps.Store, idGen, deps.Logger)
}

// ScheduleServiceDeps captures dependencies for constructing a schedule
// service.
type ScheduleServiceDeps struct {
	Store       application.ScheduleStore
	Options     scheduler.Options
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewScheduleService builds a schedule service using the supplied
// dependencies.
func (f *ServiceFactory) NewScheduleService(deps ScheduleServiceDeps) *application.ScheduleService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewScheduleServiceWithLogger(deps.Store, deps.Options, idGen, now, deps.Logger)
}

// NotificationServiceDeps captures dependencies for constructing a
// notification service.
type NotificationServiceDeps struct {
	Store       application.NotificationStore
	IDGenerator func() string
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewNotificationService builds a notification service using the supplied
// dependencies.
func (f *ServiceFactory) NewNotificationService(deps NotificationServiceDeps) *application.NotificationService {
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = f.IDGenerator.NextFunc()
	}
	now := deps.Now
	if now == nil {
		now = f.Clock.NowFunc()
	}
	return application.NewNotificationServiceWithLogger(deps.Store, idGen, now, deps.Logger)
}
