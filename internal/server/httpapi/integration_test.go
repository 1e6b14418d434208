package httpapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientmodels "github.com/reflecta-app/reflecta/internal/client/models"
	"github.com/reflecta-app/reflecta/internal/client/remote"
	"github.com/reflecta-app/reflecta/internal/common"
)

// TestClientRoundTrip drives the server through the real client transport,
// pinning the wire format both sides agree on.
func TestClientRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	c := remote.NewHTTPClient(ts.URL, 5*time.Second)

	require.NoError(t, c.Register(ctx, "alice@example.com", "pa55word1"))
	require.NotEmpty(t, c.Token())

	sleep := 7.5
	key := clientmodels.NewDraftID(time.Now())
	created, err := c.CreateEntry(ctx, clientmodels.EntryFields{
		Content:     "integration day",
		MoodLevel:   6,
		EnergyLevel: 5,
		StressLevel: 4,
		SleepHours:  &sleep,
		Tags:        []string{"test"},
	}, key)
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "integration day", created.Content)

	// Replaying the same draft id yields the same server entry.
	replayed, err := c.CreateEntry(ctx, clientmodels.EntryFields{
		Content:     "integration day",
		MoodLevel:   6,
		EnergyLevel: 5,
		StressLevel: 4,
		SleepHours:  &sleep,
		Tags:        []string{"test"},
	}, key)
	require.NoError(t, err)
	assert.Equal(t, created.Id, replayed.Id)

	entries, err := c.ListEntries(ctx, 1, common.DefaultPageLen)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, created.Id, entries[0].Id)
	require.NotNil(t, entries[0].SleepHours)
	assert.InDelta(t, 7.5, *entries[0].SleepHours, 0.001)

	// A fresh client without a token is rejected.
	anon := remote.NewHTTPClient(ts.URL, 5*time.Second)
	_, err = anon.ListEntries(ctx, 1, common.DefaultPageLen)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
