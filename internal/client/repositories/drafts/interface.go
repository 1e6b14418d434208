package drafts

import (
	"context"

	"github.com/reflecta-app/reflecta/internal/client/models"
)

// Store is the durable queue of journal entries not yet confirmed by the
// server. Drafts are created when a write cannot be confirmed remotely and
// destroyed only after remote confirmation.
type Store interface {
	// Save builds a DraftEntry from the fields, appends it to the queue and
	// returns the generated draft id. Write failures propagate: losing a
	// user's input is unacceptable.
	Save(ctx context.Context, fields models.EntryFields) (string, error)

	// List returns all drafts, oldest first. A corrupted or unreadable queue
	// degrades to an empty list; no error is surfaced on the read path.
	List(ctx context.Context) []models.DraftEntry

	// Delete removes a draft by id. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error
}
