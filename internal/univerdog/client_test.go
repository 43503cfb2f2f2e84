package univerdog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ACHGAR2024/univerdog-client/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Manager) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := session.NewManager(&session.MemoryStore{}, zap.NewNop())
	return NewClient(srv.URL, 5*time.Second, sessions, zap.NewNop()), sessions
}

func TestLoginSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "dog@example.com", body["email"])
		assert.Equal(t, "hunter2hunter2", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "tok-abc",
			"refresh_token": "ref-xyz",
		})
	}))

	pair, err := client.Login(context.Background(), "dog@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", pair.AccessToken)
	assert.Equal(t, "ref-xyz", pair.RefreshToken)
}

func TestLoginValidationError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "The given data was invalid.",
			"errors":  map[string][]string{"email": {"The email field is required."}},
		})
	}))

	_, err := client.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "The given data was invalid.", apiErr.Message)
	assert.Equal(t, []string{"The email field is required."}, apiErr.Fields["email"])
}

func TestLoginWithoutTokenInResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))

	_, err := client.Login(context.Background(), "a@b.c", "password123")
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestBearerAndRequestIDAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}))

	require.NoError(t, sessions.Login("tok-abc", ""))

	_, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestUnauthorizedForcesLogoutAndNotifies(t *testing.T) {
	client, sessions := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	require.NoError(t, sessions.Login("stale-token", ""))

	notified := 0
	client.OnUnauthorized(func() { notified++ })

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	// The 401 is authoritative: session torn down, watcher fired.
	assert.False(t, sessions.IsAuthenticated())
	assert.Empty(t, sessions.Token())
	assert.Equal(t, 1, notified)
}
