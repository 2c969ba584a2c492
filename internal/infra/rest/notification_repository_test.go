package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voltfeed/config"
	"voltfeed/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, handler http.Handler) repository.NotificationRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 2 * time.Second

	return NewNotificationRepository(RepositoryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestFetchNotifications(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("userId"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 7, "userId": 42, "title": "Charging complete", "type": "charging_complete", "isRead": false},
			{"id": 5, "userId": 42, "title": "Payment received", "type": "payment", "isRead": true},
		})
	}))

	records, err := repo.FetchNotifications(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(7), records[0].ID)
	assert.False(t, records[0].IsRead)
	assert.True(t, records[1].IsRead)
}

func TestFetchNotificationsNotFoundIsEmptyFeed(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	records, err := repo.FetchNotifications(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchNotificationsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = time.Second

	repo := NewNotificationRepository(RepositoryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err := repo.FetchNotifications(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestMarkReadNotFound(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/notifications/9/read", r.URL.Path)
		http.NotFound(w, r)
	}))

	err := repo.MarkRead(context.Background(), 9)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestMarkAllReadServerError(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := repo.MarkAllRead(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestRegisterTokenSendsPayload(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/fcm-tokens/register", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("userId"))

		var body registerTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "token-abc", body.Token)
		assert.Equal(t, "web", body.DeviceType)

		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, repo.RegisterToken(context.Background(), 42, "token-abc", "web"))
}

func TestUnregisterTokenSendsPayload(t *testing.T) {
	repo := newTestRepository(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/fcm-tokens/unregister", r.URL.Path)

		var body unregisterTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "token-abc", body.Token)

		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, repo.UnregisterToken(context.Background(), 42, "token-abc"))
}
