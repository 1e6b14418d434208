package cache

import (
	"context"
	"time"

	"github.com/reflecta-app/reflecta/internal/client/models"
)

// Store is the last-known-good snapshot of server-confirmed entries. The
// snapshot is replaced wholesale on each successful list fetch and only
// prepended to when a create succeeds online; it is never patched
// field-by-field.
type Store interface {
	// Replace overwrites the full snapshot and stamps the last-sync time.
	Replace(ctx context.Context, entries []models.CachedEntry) error

	// Prepend puts a freshly confirmed entry in front of the snapshot.
	Prepend(ctx context.Context, entry models.CachedEntry) error

	// List returns the snapshot, newest first. A corrupted or unreadable
	// snapshot degrades to an empty list; no error is surfaced.
	List(ctx context.Context) []models.CachedEntry

	// LastSync returns the last successful snapshot replacement time.
	// ok is false when no sync has happened yet.
	LastSync(ctx context.Context) (t time.Time, ok bool)

	// Clear drops the snapshot and the last-sync stamp.
	Clear(ctx context.Context) error
}
