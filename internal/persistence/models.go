package persistence

import "time"

// Layout of stored values. Calendar dates are "2006-01-02" strings,
// clock times are "HH:MM" strings, timestamps are RFC 3339.

// Game is a catalog entry owned by the user.
type Game struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Genre   string    `json:"genre,omitempty"`
	Status  string    `json:"status"`
	AddedAt time.Time `json:"added_at"`
}

// FixedEvent is an immovable commitment blocking play time. Exactly one
// of the two modes is active: recurring events carry a non-empty weekday
// set (0=Sunday..6=Saturday) and no specific date, one-off events carry a
// specific date and an ignored weekday set.
type FixedEvent struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsRecurring  bool   `json:"is_recurring"`
	Weekdays     []int  `json:"weekdays,omitempty"`
	SpecificDate string `json:"specific_date,omitempty"`
}

// Schedule is one generated play session. GameID is a non-owning
// reference; game deletion cascades so it never dangles.
type Schedule struct {
	ID        string `json:"id"`
	GameID    string `json:"game_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Completed bool   `json:"completed"`
	Skipped   bool   `json:"skipped"`
}

// NotificationRecord logs a reminder that has been raised for a schedule.
// ScheduleID doubles as the dedup key for the reminder sweep.
type NotificationRecord struct {
	ID            string    `json:"id"`
	ScheduleID    string    `json:"schedule_id"`
	GameTitle     string    `json:"game_title"`
	ScheduledTime string    `json:"scheduled_time"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserPoints is the single points/streak record. An empty LastPlayedDate
// means no session has ever been completed.
type UserPoints struct {
	Total          int    `json:"total"`
	Streak         int    `json:"streak"`
	LastPlayedDate string `json:"last_played_date,omitempty"`
}

// BonusPenaltyRecord is one entry of the append-only points log.
type BonusPenaltyRecord struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	GameTitle string    `json:"game_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationSettings controls the reminder sweep.
type NotificationSettings struct {
	Enabled       bool `json:"enabled"`
	MinutesBefore int  `json:"minutes_before"`
	SoundEnabled  bool `json:"sound_enabled"`
}

// DefaultNotificationSettings returns the values used before the user has
// saved any preference.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{Enabled: true, MinutesBefore: 15, SoundEnabled: true}
}
