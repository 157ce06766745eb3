package scheduler

import "time"

const (
	// DefaultSessionMinutes is the fixed length of a generated session.
	DefaultSessionMinutes = 90
	// DefaultHorizonDays is the number of consecutive days scheduled per run.
	DefaultHorizonDays = 14
	// DefaultWeekdayQuota caps sessions per weekday.
	DefaultWeekdayQuota = 1
	// DefaultWeekendQuota caps sessions per Saturday or Sunday.
	DefaultWeekendQuota = 3
)

// Options tune a generation run. Zero values fall back to the defaults.
type Options struct {
	SessionMinutes int
	HorizonDays    int
	WeekdayQuota   int
	WeekendQuota   int
}

func (o Options) withDefaults() Options {
	if o.SessionMinutes <= 0 {
		o.SessionMinutes = DefaultSessionMinutes
	}
	if o.HorizonDays <= 0 {
		o.HorizonDays = DefaultHorizonDays
	}
	if o.WeekdayQuota <= 0 {
		o.WeekdayQuota = DefaultWeekdayQuota
	}
	if o.WeekendQuota <= 0 {
		o.WeekendQuota = DefaultWeekendQuota
	}
	return o
}

// Generator produces the full session set for a horizon.
type Generator struct {
	opts        Options
	idGenerator func() string
}

// NewGenerator constructs a Generator. A nil idGenerator yields sessions
// with empty identifiers, which suits callers that assign ids themselves.
func NewGenerator(opts Options, idGenerator func() string) *Generator {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &Generator{opts: opts.withDefaults(), idGenerator: idGenerator}
}

// Generate walks each day of the horizon starting at startDate, fills the
// day's available slots with fixed-length sessions up to the day's quota,
// and assigns games round-robin with a single index shared across the
// whole run. Games whose status is completed are skipped; when no game is
// eligible the result is empty. There are no error conditions: days whose
// window is fully blocked simply contribute nothing.
func (g *Generator) Generate(games []Game, events []FixedEvent, startDate time.Time) []Session {
	candidates := make([]Game, 0, len(games))
	for _, game := range games {
		if game.Eligible() {
			candidates = append(candidates, game)
		}
	}
	if len(candidates) == 0 {
		return []Session{}
	}

	sessions := make([]Session, 0)
	gameIndex := 0

	for offset := 0; offset < g.opts.HorizonDays; offset++ {
		day := startDate.AddDate(0, 0, offset)
		quota := g.dailyQuota(day.Weekday())

		slots := AvailableSlots(BlockedIntervals(day, events), g.opts.SessionMinutes)

		scheduled := 0
		for _, slot := range slots {
			if scheduled >= quota {
				break
			}

			fits := slot.Duration() / g.opts.SessionMinutes
			for i := 0; i < fits && scheduled < quota; i++ {
				start := slot.Start + i*g.opts.SessionMinutes

				game := candidates[gameIndex%len(candidates)]
				sessions = append(sessions, Session{
					ID:     g.idGenerator(),
					GameID: game.ID,
					Date:   day,
					Start:  start,
					End:    start + g.opts.SessionMinutes,
				})

				gameIndex++
				scheduled++
			}
		}
	}

	return sessions
}

func (g *Generator) dailyQuota(day time.Weekday) int {
	if day == time.Saturday || day == time.Sunday {
		return g.opts.WeekendQuota
	}
	return g.opts.WeekdayQuota
}
