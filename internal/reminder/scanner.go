// Package reminder runs the periodic reminder scan. The scan itself is a
// pure read-and-append sweep owned by the notification service; this
// package only provides the cancellable loop around it and the delivery
// side channel.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/example/game-scheduler/internal/persistence"
)

// DefaultInterval is the tick period when none is configured.
const DefaultInterval = 60 * time.Second

// Sweeper performs one reminder scan and reports newly raised records.
type Sweeper interface {
	Sweep(ctx context.Context) ([]persistence.NotificationRecord, error)
}

// AlertSink receives newly raised reminders for presentation (system
// notification, in-app toast). Delivery failures are the sink's concern.
type AlertSink interface {
	Deliver(ctx context.Context, record persistence.NotificationRecord)
}

// Scanner drives the sweep on a fixed interval until its context ends.
// Sweeps run on the scanner's single goroutine, so consecutive ticks can
// never interleave their dedup check and append.
type Scanner struct {
	sweeper  Sweeper
	sink     AlertSink
	interval time.Duration
	logger   *slog.Logger
}

// NewScanner constructs a Scanner. A nil sink drops records after they
// are persisted; a non-positive interval falls back to DefaultInterval.
func NewScanner(sweeper Sweeper, sink AlertSink, interval time.Duration, logger *slog.Logger) *Scanner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{sweeper: sweeper, sink: sink, interval: interval, logger: logger}
}

// Run sweeps once immediately, then on every tick, and blocks until ctx
// is cancelled. After Run returns no further sweep fires.
func (s *Scanner) Run(ctx context.Context) {
	if s == nil || s.sweeper == nil {
		return
	}

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scanner) tick(ctx context.Context) {
	records, err := s.sweeper.Sweep(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.ErrorContext(ctx, "reminder sweep failed", "error", err)
		return
	}

	if s.sink == nil {
		return
	}
	for _, record := range records {
		s.sink.Deliver(ctx, record)
	}
}
