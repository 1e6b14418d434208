package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/server/models"
)

func newEntryService(m *fakeManager) *EntryService {
	s := NewEntryService(nil, m, NewTemplateReflector())
	s.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestEntryCreate_AssignsFields(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newEntryService(m)

	got, created, err := s.Create(context.Background(), "u-1", "", &models.Entry{
		Content: "rough day", MoodLevel: 2, EnergyLevel: 2, StressLevel: 8,
	})
	require.NoError(t, err)

	assert.True(t, created)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	assert.NotEmpty(t, got.Reflection)
	assert.Empty(t, got.IdempotencyKey)
}

func TestEntryCreate_IdempotentReplay(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newEntryService(m)
	ctx := context.Background()

	first, created, err := s.Create(ctx, "u-1", "draft_1_a", &models.Entry{
		Content: "once", MoodLevel: 5, EnergyLevel: 5, StressLevel: 5,
	})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := s.Create(ctx, "u-1", "draft_1_a", &models.Entry{
		Content: "once", MoodLevel: 5, EnergyLevel: 5, StressLevel: 5,
	})
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, m.entryRepo.entries, 1)
}

func TestEntryCreate_SameKeyDifferentUsers(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newEntryService(m)
	ctx := context.Background()

	a, _, err := s.Create(ctx, "u-1", "draft_1_a", &models.Entry{
		Content: "mine", MoodLevel: 5, EnergyLevel: 5, StressLevel: 5,
	})
	require.NoError(t, err)

	b, _, err := s.Create(ctx, "u-2", "draft_1_a", &models.Entry{
		Content: "theirs", MoodLevel: 5, EnergyLevel: 5, StressLevel: 5,
	})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, m.entryRepo.entries, 2)
}

func TestEntryCreate_DuplicateKeyRace(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newEntryService(m)
	ctx := context.Background()

	winner := &models.Entry{
		ID: "e-winner", UserID: "u-1", Content: "won",
		MoodLevel: 5, EnergyLevel: 5, StressLevel: 5,
		IdempotencyKey: "draft_1_a",
	}

	// The conflicting row lands between the key check and the insert.
	m.entryRepo.notFoundOnce = true
	m.entryRepo.createErr = common.ErrDuplicateKey
	m.entryRepo.entries = append(m.entryRepo.entries, winner)

	got, created, err := s.Create(ctx, "u-1", "draft_1_a", &models.Entry{
		Content: "lost", MoodLevel: 5, EnergyLevel: 5, StressLevel: 5,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "e-winner", got.ID)
}

func TestEntryList_PaginatesNewestFirst(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newEntryService(m)
	ctx := context.Background()

	for _, content := range []string{"one", "two", "three"} {
		_, _, err := s.Create(ctx, "u-1", "", &models.Entry{
			Content: content, MoodLevel: 5, EnergyLevel: 5, StressLevel: 5,
		})
		require.NoError(t, err)
	}

	page1, err := s.List(ctx, "u-1", 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "three", page1[0].Content)
	assert.Equal(t, "two", page1[1].Content)

	page2, err := s.List(ctx, "u-1", 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "one", page2[0].Content)
}

func TestEntryList_ClampsPageArgs(t *testing.T) {
	t.Parallel()
	m := newFakeManager()
	s := newEntryService(m)
	ctx := context.Background()

	_, _, err := s.Create(ctx, "u-1", "", &models.Entry{
		Content: "only", MoodLevel: 5, EnergyLevel: 5, StressLevel: 5,
	})
	require.NoError(t, err)

	got, err := s.List(ctx, "u-1", 0, -3)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
