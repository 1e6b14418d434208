// Package cache implements the confirmed-entry snapshot on top of the generic
// key-value store, one JSON blob per key.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reflecta-app/reflecta/internal/client/models"
	"github.com/reflecta-app/reflecta/internal/client/storage"
)

const (
	entriesKey  = "cached_entries"
	lastSyncKey = "last_sync"
)

// KVStore is the KV-backed Store implementation.
type KVStore struct {
	kv  storage.KV
	now func() time.Time
}

// NewKVStore returns a Store backed by the given key-value storage.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv, now: time.Now}
}

func (s *KVStore) Replace(ctx context.Context, entries []models.CachedEntry) error {
	if err := s.write(ctx, entries); err != nil {
		return fmt.Errorf("failed to replace cache: %w", err)
	}
	stamp := s.now().UTC().Format(time.RFC3339Nano)
	if err := s.kv.Set(ctx, lastSyncKey, stamp); err != nil {
		return fmt.Errorf("failed to stamp last sync: %w", err)
	}
	return nil
}

func (s *KVStore) Prepend(ctx context.Context, entry models.CachedEntry) error {
	list := append([]models.CachedEntry{entry}, s.List(ctx)...)
	if err := s.write(ctx, list); err != nil {
		return fmt.Errorf("failed to prepend to cache: %w", err)
	}
	return nil
}

func (s *KVStore) List(ctx context.Context) []models.CachedEntry {
	raw, err := s.kv.Get(ctx, entriesKey)
	if err != nil {
		return []models.CachedEntry{}
	}

	var list []models.CachedEntry
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []models.CachedEntry{}
	}
	return list
}

func (s *KVStore) LastSync(ctx context.Context) (time.Time, bool) {
	raw, err := s.kv.Get(ctx, lastSyncKey)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *KVStore) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, entriesKey); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	if err := s.kv.Remove(ctx, lastSyncKey); err != nil {
		return fmt.Errorf("failed to clear last sync: %w", err)
	}
	return nil
}

func (s *KVStore) write(ctx context.Context, list []models.CachedEntry) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, entriesKey, string(data))
}
