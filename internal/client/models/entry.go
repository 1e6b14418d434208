// Package models defines client-side data models for Reflecta journal entries.
package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/reflecta-app/reflecta/internal/common"
)

// EntryFields is the user-supplied shape of a journal entry, shared by draft
// creation and remote create calls.
type EntryFields struct {
	Content     string   `json:"content"`
	MoodLevel   int      `json:"mood_level"`
	EnergyLevel int      `json:"energy_level"`
	StressLevel int      `json:"stress_level"`
	SleepHours  *float64 `json:"sleep_hours,omitempty"`
	WorkHours   *float64 `json:"work_hours,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Activities  []string `json:"activities,omitempty"`
}

// Validate checks bounds on the fields. An invalid entry is a programming
// error on the caller's side; everything downstream assumes valid input.
func (f *EntryFields) Validate() error {
	if f.Content == "" {
		return fmt.Errorf("%w: empty content", common.ErrInvalidEntry)
	}
	for _, l := range []struct {
		name  string
		value int
	}{
		{"mood_level", f.MoodLevel},
		{"energy_level", f.EnergyLevel},
		{"stress_level", f.StressLevel},
	} {
		if l.value < 1 || l.value > 10 {
			return fmt.Errorf("%w: %s must be between 1 and 10, got %d", common.ErrInvalidEntry, l.name, l.value)
		}
	}
	if f.SleepHours != nil && (*f.SleepHours < 0 || *f.SleepHours > 24) {
		return fmt.Errorf("%w: sleep_hours out of range", common.ErrInvalidEntry)
	}
	if f.WorkHours != nil && (*f.WorkHours < 0 || *f.WorkHours > 24) {
		return fmt.Errorf("%w: work_hours out of range", common.ErrInvalidEntry)
	}
	return nil
}

// DraftEntry is a journal entry written while the remote service could not
// confirm it. It lives in the draft queue until a flush confirms it remotely.
type DraftEntry struct {
	Id          string    `json:"id"`
	EntryFields           // embedded user-supplied fields
	CreatedAt   time.Time `json:"created_at"`
}

// CachedEntry is a server-confirmed journal entry mirrored locally. The cache
// holding these is a snapshot: replaced wholesale, never patched field-by-field.
type CachedEntry struct {
	Id          string    `json:"id"`
	UserId      string    `json:"user_id"`
	EntryFields           // embedded user-supplied fields
	Reflection  string    `json:"reflection,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SyncState is a derived, never-persisted view of the engine state.
type SyncState struct {
	IsOnline   bool       `json:"is_online"`
	DraftCount int        `json:"draft_count"`
	LastSync   *time.Time `json:"last_sync,omitempty"`
	NeedsSync  bool       `json:"needs_sync"`
	IsSyncing  bool       `json:"is_syncing"`
}

const draftSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewDraftID generates a draft identifier of the form
// draft_<unixmilli>_<alnum suffix>, unique per device session.
func NewDraftID(now time.Time) string {
	suffix := make([]byte, 9)
	max := big.NewInt(int64(len(draftSuffixAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back to
			// a time-derived suffix rather than crash a journaling app.
			suffix[i] = draftSuffixAlphabet[(now.UnixNano()>>uint(i))%int64(len(draftSuffixAlphabet))]
			continue
		}
		suffix[i] = draftSuffixAlphabet[n.Int64()]
	}
	return fmt.Sprintf("draft_%d_%s", now.UnixMilli(), suffix)
}
