package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflecta-app/reflecta/internal/client/models"
	"github.com/reflecta-app/reflecta/internal/common"
)

func fields() models.EntryFields {
	return models.EntryFields{Content: "hi", MoodLevel: 5, EnergyLevel: 5, StressLevel: 5}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, common.LoginPath, r.URL.Path)

		var req authRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.c", req.Email)

		_ = json.NewEncoder(w).Encode(authResponse{Token: "tok123"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, c.Login(context.Background(), "a@b.c", "pw"))
	assert.Equal(t, "tok123", c.Token())
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	err := c.Login(context.Background(), "a@b.c", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestCreateEntry_SendsAuthAndIdempotencyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get(common.AuthHeaderName))
		assert.Equal(t, "draft_1_abc", r.Header.Get(common.IdempotencyKeyHeaderName))

		var f models.EntryFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.CachedEntry{
			Id: "e1", UserId: "u1", EntryFields: f,
			CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("tok")

	entry, err := c.CreateEntry(context.Background(), fields(), "draft_1_abc")
	require.NoError(t, err)
	assert.Equal(t, "e1", entry.Id)
	assert.Equal(t, "hi", entry.Content)
}

func TestCreateEntry_ServerErrorMapsToRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.CreateEntry(context.Background(), fields(), "")
	assert.ErrorIs(t, err, common.ErrRemoteFailure)
}

func TestCreateEntry_TransportErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, 500*time.Millisecond)
	_, err := c.CreateEntry(context.Background(), fields(), "")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestListEntries_PagingParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("page_size"))

		_ = json.NewEncoder(w).Encode(listResponse{Entries: []models.CachedEntry{
			{Id: "e2"}, {Id: "e1"},
		}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	entries, err := c.ListEntries(context.Background(), 2, 25)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[0].Id)
}

func TestListEntries_UnauthorizedSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.ListEntries(context.Background(), 1, 50)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
