// Package scheduler computes conflict-free play sessions for a rolling
// horizon. It is a pure package: callers supply games and fixed events,
// the generator returns dated sessions without touching persistence.
package scheduler

import "time"

// PlayStatus tracks how far a game has progressed.
type PlayStatus string

const (
	// StatusUnstarted marks a game that has not been played yet.
	StatusUnstarted PlayStatus = "unstarted"
	// StatusPlaying marks a game currently in progress.
	StatusPlaying PlayStatus = "playing"
	// StatusCompleted marks a finished game; it is never scheduled.
	StatusCompleted PlayStatus = "completed"
)

// Game carries the attributes the generator needs to pick candidates.
type Game struct {
	ID     string
	Status PlayStatus
}

// Eligible reports whether the game should receive play sessions.
func (g Game) Eligible() bool {
	return g.Status == StatusUnstarted || g.Status == StatusPlaying
}

// FixedEvent is an immovable block of time that sessions must avoid.
// Recurring events repeat on the listed weekdays; one-off events apply to
// the single calendar day in Date.
type FixedEvent struct {
	Start     int
	End       int
	Recurring bool
	Weekdays  []time.Weekday
	Date      time.Time
}

// Session is a generated play block assigned to one game. Start and End
// are minutes since midnight on Date's calendar day.
type Session struct {
	ID     string
	GameID string
	Date   time.Time
	Start  int
	End    int
}

// sameDay compares two instants by calendar day, ignoring clock time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
