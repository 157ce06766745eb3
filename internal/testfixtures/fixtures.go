package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/game-scheduler/internal/persistence"
)

var (
	gameCounter  uint64
	eventCounter uint64
)

var referenceTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ----------------------------- Game fixtures -----------------------------

// GameOption configures the generated game fixture.
type GameOption func(*persistence.Game)

// NewGameFixture returns a deterministic game record with optional overrides.
func NewGameFixture(opts ...GameOption) persistence.Game {
	idx := atomic.AddUint64(&gameCounter, 1)
	game := persistence.Game{
		ID:      fmt.Sprintf("game-%03d", idx),
		Title:   fmt.Sprintf("Game %03d", idx),
		Genre:   "RPG",
		Status:  "unstarted",
		AddedAt: referenceTime.Add(time.Duration(idx) * time.Minute),
	}
	for _, opt := range opts {
		opt(&game)
	}
	return game
}

// WithGameID overrides the generated game ID.
func WithGameID(id string) GameOption {
	return func(g *persistence.Game) {
		g.ID = id
	}
}

// WithGameTitle overrides the generated title.
func WithGameTitle(title string) GameOption {
	return func(g *persistence.Game) {
		g.Title = title
	}
}

// WithGameStatus overrides the generated play status.
func WithGameStatus(status string) GameOption {
	return func(g *persistence.Game) {
		g.Status = status
	}
}

// WithGameGenre overrides the generated genre.
func WithGameGenre(genre string) GameOption {
	return func(g *persistence.Game) {
		g.Genre = genre
	}
}

// -------------------------- Fixed event fixtures --------------------------

// FixedEventOption configures the generated fixed event fixture.
type FixedEventOption func(*persistence.FixedEvent)

// NewFixedEventFixture returns a deterministic recurring event blocking a
// weekday evening, with optional overrides.
func NewFixedEventFixture(opts ...FixedEventOption) persistence.FixedEvent {
	idx := atomic.AddUint64(&eventCounter, 1)
	event := persistence.FixedEvent{
		ID:          fmt.Sprintf("event-%03d", idx),
		Title:       fmt.Sprintf("Event %03d", idx),
		StartTime:   "19:00",
		EndTime:     "20:00",
		IsRecurring: true,
		Weekdays:    []int{1, 2, 3, 4, 5},
	}
	for _, opt := range opts {
		opt(&event)
	}
	return event
}

// WithEventID overrides the generated event ID.
func WithEventID(id string) FixedEventOption {
	return func(e *persistence.FixedEvent) {
		e.ID = id
	}
}

// WithEventTimes overrides the start and end clock times.
func WithEventTimes(start, end string) FixedEventOption {
	return func(e *persistence.FixedEvent) {
		e.StartTime = start
		e.EndTime = end
	}
}

// WithEventWeekdays marks the event recurring on the given weekdays.
func WithEventWeekdays(weekdays ...int) FixedEventOption {
	return func(e *persistence.FixedEvent) {
		e.IsRecurring = true
		e.Weekdays = weekdays
		e.SpecificDate = ""
	}
}

// WithEventDate marks the event as a one-off on the given date.
func WithEventDate(date string) FixedEventOption {
	return func(e *persistence.FixedEvent) {
		e.IsRecurring = false
		e.Weekdays = nil
		e.SpecificDate = date
	}
}
