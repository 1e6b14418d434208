package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/dbx"
	"github.com/reflecta-app/reflecta/internal/server/models"
	"github.com/reflecta-app/reflecta/internal/server/repositories/entries"
	"github.com/reflecta-app/reflecta/internal/server/repositories/users"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrEmailAlreadyTaken
	}
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

type fakeEntryRepo struct {
	mu      sync.Mutex
	entries []*models.Entry

	// createErr, when set, is returned by the next Create call.
	createErr error
	// notFoundOnce makes the next GetByIdempotencyKey miss, simulating a
	// conflicting row that lands after the pre-insert check.
	notFoundOnce bool
}

func (r *fakeEntryRepo) Create(_ context.Context, entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	if entry.IdempotencyKey != "" {
		for _, e := range r.entries {
			if e.UserID == entry.UserID && e.IdempotencyKey == entry.IdempotencyKey {
				return common.ErrDuplicateKey
			}
		}
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeEntryRepo) GetByIdempotencyKey(_ context.Context, userID, key string) (*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.notFoundOnce {
		r.notFoundOnce = false
		return nil, common.ErrNotFound
	}
	for _, e := range r.entries {
		if e.UserID == userID && e.IdempotencyKey == key {
			return e, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeEntryRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*models.Entry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			all = append(all, r.entries[i])
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

type fakeManager struct {
	userRepo  *fakeUserRepo
	entryRepo *fakeEntryRepo
}

func newFakeManager() *fakeManager {
	return &fakeManager{userRepo: newFakeUserRepo(), entryRepo: &fakeEntryRepo{}}
}

func (m *fakeManager) RunMigrations(context.Context) error            { return nil }
func (m *fakeManager) DB() *sql.DB                                    { return nil }
func (m *fakeManager) Users(dbx.DBTX) users.Repository                { return m.userRepo }
func (m *fakeManager) Entries(dbx.DBTX) entries.Repository            { return m.entryRepo }
func (m *fakeManager) Close() error                                   { return nil }
