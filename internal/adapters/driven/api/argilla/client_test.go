package argilla

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins up a stub backend and a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://localhost:6900/api"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{APIKey: "k"}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestClient_SetsAuthAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(HeaderRequestID)
		w.Write([]byte(`{}`))
	})

	err := client.get(context.Background(), "/v1/me/datasets", nil, &struct{}{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_MapsErrorDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "dataset not found"}`))
	})

	err := client.get(context.Background(), "/v1/datasets/nope", nil, &struct{}{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "dataset not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
}

func TestClient_RateLimitResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderRetryAfter, "7")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	err := client.get(context.Background(), "/v1/me/datasets", nil, &struct{}{})

	require.True(t, IsRateLimited(err))
	var rateLimitErr *RateLimitError
	require.ErrorAs(t, err, &rateLimitErr)
	assert.Equal(t, "7s", rateLimitErr.RetryAfter.String())
}
