// Package storage provides the generic persistent key-value store the sync
// engine sits on. All structured records are serialized to strings under a
// single key each, keeping the engine storage-agnostic.
package storage

import "context"

// KV is a minimal string-valued key-value store.
//
// Get returns common.ErrNotFound (wrapped) when the key is absent, so callers
// can distinguish "no data yet" from an actual read failure with errors.Is.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
