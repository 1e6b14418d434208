package models

import "time"

// Entry is a confirmed journal entry as stored in PostgreSQL.
//
// IdempotencyKey carries the client draft id when the entry was created by a
// draft flush; retried flushes of the same draft resolve to the same row.
// It is empty for entries created directly online.
type Entry struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Content        string     `json:"content"`
	MoodLevel      int        `json:"mood_level"`
	EnergyLevel    int        `json:"energy_level"`
	StressLevel    int        `json:"stress_level"`
	SleepHours     *float64   `json:"sleep_hours,omitempty"`
	WorkHours      *float64   `json:"work_hours,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Activities     []string   `json:"activities,omitempty"`
	Reflection     string     `json:"reflection,omitempty"`
	IdempotencyKey string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
