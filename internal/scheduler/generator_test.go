package scheduler

import (
	"fmt"
	"testing"
	"time"
)

func sequentialIDs(prefix string) func() string {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("%s-%d", prefix, counter)
	}
}

func TestGenerateNoEligibleGames(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Options{}, sequentialIDs("session"))

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()
		sessions := gen.Generate(nil, nil, tuesday)
		if sessions == nil || len(sessions) != 0 {
			t.Fatalf("expected empty non-nil result, got %v", sessions)
		}
	})

	t.Run("only completed games", func(t *testing.T) {
		t.Parallel()
		games := []Game{{ID: "g1", Status: StatusCompleted}}
		sessions := gen.Generate(games, nil, tuesday)
		if len(sessions) != 0 {
			t.Fatalf("expected no sessions, got %v", sessions)
		}
	})
}

func TestGenerateSingleWeekday(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Options{HorizonDays: 1}, sequentialIDs("session"))
	games := []Game{{ID: "g1", Status: StatusUnstarted}}

	sessions := gen.Generate(games, nil, tuesday)
	if len(sessions) != 1 {
		t.Fatalf("expected one session on a weekday, got %d", len(sessions))
	}

	session := sessions[0]
	if session.GameID != "g1" {
		t.Fatalf("expected session for g1, got %q", session.GameID)
	}
	if session.Start != 600 || session.End != 690 {
		t.Fatalf("expected 10:00-11:30 session, got %d-%d", session.Start, session.End)
	}
	if !session.Date.Equal(tuesday) {
		t.Fatalf("expected session dated %v, got %v", tuesday, session.Date)
	}
	if session.ID != "session-1" {
		t.Fatalf("expected generated id, got %q", session.ID)
	}
}

func TestGenerateWeekendQuota(t *testing.T) {
	t.Parallel()

	// 2024-01-06 is a Saturday.
	saturday := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	gen := NewGenerator(Options{HorizonDays: 1}, sequentialIDs("session"))
	games := []Game{{ID: "g1", Status: StatusPlaying}}

	sessions := gen.Generate(games, nil, saturday)
	if len(sessions) != 3 {
		t.Fatalf("expected three sessions on a weekend day, got %d", len(sessions))
	}

	// Sessions pack back to back from the window start.
	wantStarts := []int{600, 690, 780}
	for i, session := range sessions {
		if session.Start != wantStarts[i] {
			t.Fatalf("session %d: expected start %d, got %d", i, wantStarts[i], session.Start)
		}
		if session.End-session.Start != DefaultSessionMinutes {
			t.Fatalf("session %d: expected %d minute session", i, DefaultSessionMinutes)
		}
	}
}

func TestGenerateRoundRobinAcrossDays(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Options{HorizonDays: 4}, sequentialIDs("session"))
	games := []Game{
		{ID: "g1", Status: StatusUnstarted},
		{ID: "g2", Status: StatusPlaying},
	}

	// Tuesday through Friday, one session per day.
	sessions := gen.Generate(games, nil, tuesday)
	if len(sessions) != 4 {
		t.Fatalf("expected four sessions, got %d", len(sessions))
	}

	wantGames := []string{"g1", "g2", "g1", "g2"}
	for i, session := range sessions {
		if session.GameID != wantGames[i] {
			t.Fatalf("session %d: expected game %q, got %q", i, wantGames[i], session.GameID)
		}
	}
}

func TestGenerateSkipsCompletedGames(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Options{HorizonDays: 2}, sequentialIDs("session"))
	games := []Game{
		{ID: "done", Status: StatusCompleted},
		{ID: "active", Status: StatusPlaying},
	}

	sessions := gen.Generate(games, nil, tuesday)
	for _, session := range sessions {
		if session.GameID == "done" {
			t.Fatal("completed game received a session")
		}
	}
	if len(sessions) == 0 {
		t.Fatal("expected sessions for the active game")
	}
}

func TestGenerateAvoidsFixedEvents(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Options{HorizonDays: 1}, sequentialIDs("session"))
	games := []Game{{ID: "g1", Status: StatusUnstarted}}
	events := []FixedEvent{
		{Start: 600, End: 700, Recurring: true, Weekdays: []time.Weekday{time.Tuesday}},
	}

	sessions := gen.Generate(games, events, tuesday)
	if len(sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions))
	}
	if sessions[0].Start != 700 {
		t.Fatalf("expected session after the blocked interval, got start %d", sessions[0].Start)
	}
}

func TestGenerateFullyBlockedDayContributesNothing(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(Options{HorizonDays: 2}, sequentialIDs("session"))
	games := []Game{{ID: "g1", Status: StatusUnstarted}}
	events := []FixedEvent{
		{Start: 0, End: 1440, Date: tuesday},
	}

	sessions := gen.Generate(games, events, tuesday)
	if len(sessions) != 1 {
		t.Fatalf("expected only the second day to contribute, got %d sessions", len(sessions))
	}
	if sameDay(sessions[0].Date, tuesday) {
		t.Fatal("expected no session on the fully blocked day")
	}
}

func TestGenerateQuotaLimitsPackedSlots(t *testing.T) {
	t.Parallel()

	// A weekday has quota one even when the free slot fits several sessions.
	gen := NewGenerator(Options{HorizonDays: 1}, sequentialIDs("session"))
	games := []Game{
		{ID: "g1", Status: StatusUnstarted},
		{ID: "g2", Status: StatusUnstarted},
	}

	sessions := gen.Generate(games, nil, tuesday)
	if len(sessions) != 1 {
		t.Fatalf("expected weekday quota of one, got %d sessions", len(sessions))
	}
}
