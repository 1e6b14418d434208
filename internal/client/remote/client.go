// Package remote contains the client-side contract for talking to the
// Reflecta backend, and its HTTP/JSON implementation.
//
// The sync engine never distinguishes failure subtypes coming from here:
// every error means "attempt failed, fall back to local state".
package remote

import (
	"context"

	"github.com/reflecta-app/reflecta/internal/client/models"
)

// Client is the transport-agnostic contract for the Remote Entry Service.
type Client interface {
	// Register creates an account and authenticates the client.
	Register(ctx context.Context, email, password string) error

	// Login authenticates the client; subsequent calls carry the token.
	Login(ctx context.Context, email, password string) error

	// CreateEntry submits a journal entry. idempotencyKey deduplicates
	// resubmissions of the same draft after a partial flush.
	CreateEntry(ctx context.Context, fields models.EntryFields, idempotencyKey string) (*models.CachedEntry, error)

	// ListEntries fetches one page of confirmed entries, newest first.
	ListEntries(ctx context.Context, page, pageSize int) ([]models.CachedEntry, error)
}
