// This file implements EntryService: idempotent entry creation with attached
// reflections, and paginated listing.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/server/models"
	"github.com/reflecta-app/reflecta/internal/server/repositories/repomanager"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Reflector produces a short written reflection for a freshly created entry.
type Reflector interface {
	Reflect(ctx context.Context, entry *models.Entry) (string, error)
}

// EntryService persists journal entries.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	reflector   Reflector
	now         func() time.Time
}

// NewEntryService constructs an EntryService.
func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, r Reflector) *EntryService {
	return &EntryService{db: db, repomanager: m, reflector: r, now: time.Now}
}

// Create stores a new entry for userID. The entry's user-supplied fields must
// already be set; Create assigns id, timestamps, and the reflection. The
// returned bool reports whether a new row was written.
//
// When idempotencyKey is non-empty and an entry with that key already exists
// for the user, the existing entry is returned unchanged. A retried draft
// flush therefore never produces a duplicate.
func (s *EntryService) Create(ctx context.Context, userID, idempotencyKey string, entry *models.Entry) (*models.Entry, bool, error) {
	repo := s.repomanager.Entries(s.db)

	if idempotencyKey != "" {
		existing, err := repo.GetByIdempotencyKey(ctx, userID, idempotencyKey)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, false, fmt.Errorf("error checking idempotency key: %v", err)
		}
	}

	now := s.now().UTC()
	entry.ID = uuid.NewString()
	entry.UserID = userID
	entry.IdempotencyKey = idempotencyKey
	entry.CreatedAt = now
	entry.UpdatedAt = now

	// Reflections are best-effort: a failed generator never blocks the write.
	if reflection, err := s.reflector.Reflect(ctx, entry); err == nil {
		entry.Reflection = reflection
	}

	if err := repo.Create(ctx, entry); err != nil {
		// Two flushes racing on the same key: the loser returns the winner's row.
		if errors.Is(err, common.ErrDuplicateKey) && idempotencyKey != "" {
			existing, getErr := repo.GetByIdempotencyKey(ctx, userID, idempotencyKey)
			return existing, false, getErr
		}
		return nil, false, fmt.Errorf("error creating entry: %v", err)
	}

	return entry, true, nil
}

// List returns a page of the user's entries, newest first. Page numbers start
// at 1; out-of-range sizes fall back to the defaults.
func (s *EntryService) List(ctx context.Context, userID string, page, pageSize int) ([]*models.Entry, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	repo := s.repomanager.Entries(s.db)
	result, err := repo.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %v", err)
	}
	return result, nil
}
