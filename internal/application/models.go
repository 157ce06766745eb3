package application

import (
	"time"

	"github.com/example/game-scheduler/internal/persistence"
	"github.com/example/game-scheduler/internal/scheduler"
	"github.com/example/game-scheduler/internal/timeslot"
)

// dateLayout is the calendar-day encoding used across stored records.
const dateLayout = "2006-01-02"

// Genres is the closed set of accepted game genres.
var Genres = []string{
	"RPG",
	"アクション",
	"アドベンチャー",
	"シミュレーション",
	"パズル",
	"スポーツ",
	"その他",
}

// PlayStatuses is the closed set of accepted game statuses.
var PlayStatuses = []string{
	string(scheduler.StatusUnstarted),
	string(scheduler.StatusPlaying),
	string(scheduler.StatusCompleted),
}

// GameInput captures caller provided game fields.
type GameInput struct {
	Title string
	Genre string
}

// FixedEventInput captures caller provided fixed-event fields. Weekdays
// uses 0=Sunday..6=Saturday; SpecificDate is a "2006-01-02" string.
type FixedEventInput struct {
	Title        string
	StartTime    string
	EndTime      string
	IsRecurring  bool
	Weekdays     []int
	SpecificDate string
}

// MoveScheduleInput captures the target slot for a schedule move.
type MoveScheduleInput struct {
	Date      string
	StartTime string
}

// NotificationSettingsInput captures caller provided reminder preferences.
type NotificationSettingsInput struct {
	Enabled       bool
	MinutesBefore int
	SoundEnabled  bool
}

func validGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	for _, s := range PlayStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func parseDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseClockMinutes(clock string) (int, bool) {
	minutes, err := timeslot.ParseClock(clock)
	if err != nil {
		return 0, false
	}
	return minutes, true
}

// toSchedulerGame narrows a stored game to what the generator needs.
func toSchedulerGame(game persistence.Game) scheduler.Game {
	return scheduler.Game{ID: game.ID, Status: scheduler.PlayStatus(game.Status)}
}

// toSchedulerEvent converts a stored fixed event for the blocked-time
// resolver. Clock strings are assumed validated at creation time; a
// malformed record contributes a zero interval rather than failing the
// whole generation run.
func toSchedulerEvent(event persistence.FixedEvent) scheduler.FixedEvent {
	start, _ := parseClockMinutes(event.StartTime)
	end, _ := parseClockMinutes(event.EndTime)

	converted := scheduler.FixedEvent{
		Start:     start,
		End:       end,
		Recurring: event.IsRecurring,
	}

	if event.IsRecurring {
		converted.Weekdays = make([]time.Weekday, 0, len(event.Weekdays))
		for _, day := range event.Weekdays {
			converted.Weekdays = append(converted.Weekdays, time.Weekday(day))
		}
		return converted
	}

	if date, ok := parseDate(event.SpecificDate); ok {
		converted.Date = date
	}
	return converted
}
