// Package entries provides the journal entry repository.
package entries

import (
	"context"

	"github.com/reflecta-app/reflecta/internal/server/models"
)

type Repository interface {
	// Create persists a new entry. When the entry carries an idempotency key
	// already used by the same user, common.ErrDuplicateKey is returned and
	// the caller should fetch the existing row instead.
	Create(ctx context.Context, entry *models.Entry) error
	// GetByIdempotencyKey returns common.ErrNotFound when no entry with the
	// given key exists for the user.
	GetByIdempotencyKey(ctx context.Context, userID, key string) (*models.Entry, error)
	// ListByUser returns entries newest-first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*models.Entry, error)
}
