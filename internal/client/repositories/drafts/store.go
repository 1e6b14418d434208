// Package drafts implements the draft queue on top of the generic key-value
// store. The whole queue is serialized as one JSON array under a single key,
// so each write is a single atomic key replace.
package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reflecta-app/reflecta/internal/client/models"
	"github.com/reflecta-app/reflecta/internal/client/storage"
)

const draftsKey = "drafts"

// KVStore is the KV-backed Store implementation.
type KVStore struct {
	kv  storage.KV
	now func() time.Time
}

// NewKVStore returns a Store backed by the given key-value storage.
func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv, now: time.Now}
}

func (s *KVStore) Save(ctx context.Context, fields models.EntryFields) (string, error) {
	now := s.now()
	draft := models.DraftEntry{
		Id:          models.NewDraftID(now),
		EntryFields: fields,
		CreatedAt:   now.UTC(),
	}

	list := s.List(ctx)
	list = append(list, draft)

	if err := s.write(ctx, list); err != nil {
		return "", fmt.Errorf("failed to save draft: %w", err)
	}
	return draft.Id, nil
}

func (s *KVStore) List(ctx context.Context) []models.DraftEntry {
	raw, err := s.kv.Get(ctx, draftsKey)
	if err != nil {
		// Absent key and read failures both degrade to an empty queue.
		return []models.DraftEntry{}
	}

	var list []models.DraftEntry
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		// Corrupted payload: keep the app usable at the cost of silently
		// orphaning the stored data.
		return []models.DraftEntry{}
	}
	return list
}

func (s *KVStore) Delete(ctx context.Context, id string) error {
	list := s.List(ctx)

	kept := list[:0]
	for _, d := range list {
		if d.Id != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(list) {
		return nil
	}

	if err := s.write(ctx, kept); err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", id, err)
	}
	return nil
}

func (s *KVStore) write(ctx context.Context, list []models.DraftEntry) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, draftsKey, string(data))
}
