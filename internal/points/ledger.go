// Package points keeps the motivation bookkeeping: a total, a
// consecutive-day streak, and an append-only bonus/penalty log. It is
// decoupled from schedule generation; callers fire completion and skip
// events as sessions are resolved.
package points

import "time"

const (
	// CompletionBonus is awarded each time a session is completed.
	CompletionBonus = 10
	// SkipPenalty is deducted (floor-clamped) when a session is skipped.
	SkipPenalty = 5

	completionReason = "プレイスケジュールを完了しました"
	skipReason       = "スケジュールをスキップしました"
)

// UserPoints is the ledger state. Total never goes below zero and Streak
// counts consecutive calendar days with at least one completion.
type UserPoints struct {
	Total      int
	Streak     int
	LastPlayed *time.Time
}

// RecordType distinguishes the two kinds of ledger entries.
type RecordType string

const (
	// RecordBonus marks a point award.
	RecordBonus RecordType = "bonus"
	// RecordPenalty marks a point deduction.
	RecordPenalty RecordType = "penalty"
)

// Record is one append-only ledger entry. GameTitle is a denormalized
// snapshot of the title at event time, not a live reference.
type Record struct {
	ID        string
	Type      RecordType
	Points    int
	Reason    string
	GameTitle string
	CreatedAt time.Time
}

// Ledger applies completion and skip events to UserPoints state.
type Ledger struct {
	idGenerator func() string
	now         func() time.Time
}

// NewLedger wires the id and clock dependencies.
func NewLedger(idGenerator func() string, now func() time.Time) *Ledger {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &Ledger{idGenerator: idGenerator, now: now}
}

// Complete awards the completion bonus. The streak grows when the last
// played day was yesterday or has never been set, and resets to 1 after a
// gap. The last played day becomes today. Events always succeed.
func (l *Ledger) Complete(state UserPoints, gameTitle string) (UserPoints, Record) {
	today := l.now()

	streak := 1
	if l.isConsecutive(state.LastPlayed, today) {
		streak = state.Streak + 1
	}

	state.Total += CompletionBonus
	state.Streak = streak
	state.LastPlayed = &today

	return state, l.record(RecordBonus, CompletionBonus, completionReason, gameTitle)
}

// Skip deducts the penalty, clamped at zero, and resets the streak. The
// last played day is left untouched.
func (l *Ledger) Skip(state UserPoints, gameTitle string) (UserPoints, Record) {
	state.Total -= SkipPenalty
	if state.Total < 0 {
		state.Total = 0
	}
	state.Streak = 0

	return state, l.record(RecordPenalty, -SkipPenalty, skipReason, gameTitle)
}

func (l *Ledger) isConsecutive(lastPlayed *time.Time, today time.Time) bool {
	if lastPlayed == nil {
		return true
	}
	return sameDay(*lastPlayed, today.AddDate(0, 0, -1))
}

func (l *Ledger) record(kind RecordType, pts int, reason, gameTitle string) Record {
	return Record{
		ID:        l.idGenerator(),
		Type:      kind,
		Points:    pts,
		Reason:    reason,
		GameTitle: gameTitle,
		CreatedAt: l.now(),
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
