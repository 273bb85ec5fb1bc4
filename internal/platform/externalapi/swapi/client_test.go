package swapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SWAPI_BASE_URL", "http://localhost:9000/api/")
	t.Setenv("SWAPI_RATE_LIMIT", "5")

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:9000/api", cfg.BaseURL)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SWAPI_BASE_URL", "")
	t.Setenv("SWAPI_RATE_LIMIT", "lots")

	cfg := LoadConfig()

	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultRateLimit, cfg.RateLimit)
}

func TestClient_People(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/people/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "1":
			_, _ = w.Write([]byte(`{"count":3,"next":"http://x/api/people/?page=2","results":[{"name":"Luke Skywalker","height":"172"},{"name":"C-3PO"}]}`))
		case "2":
			_, _ = w.Write([]byte(`{"count":3,"next":null,"results":[{"name":"R2-D2"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found"}`))
		}
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL + "/api"}, server.Client())

	names, next, err := c.People(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Luke Skywalker", "C-3PO"}, names)
	assert.True(t, next)

	names, next, err = c.People(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"R2-D2"}, names)
	assert.False(t, next)

	names, next, err = c.People(context.Background(), 3)
	require.NoError(t, err, "a page past the end is not an error")
	assert.Empty(t, names)
	assert.False(t, next)
}

func TestClient_Planets(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/planets/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"next":null,"results":[{"name":"Tatooine"},{"name":"Alderaan"}]}`))
	}))
	defer server.Close()

	names, next, err := NewClient(Config{BaseURL: server.URL}, server.Client()).Planets(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"Tatooine", "Alderaan"}, names)
	assert.False(t, next)
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusBadGateway, `bad gateway`, "http 502"},
		{"invalid json", http.StatusOK, `{not json`, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, _, err := NewClient(Config{BaseURL: server.URL}, server.Client()).People(context.Background(), 1)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"next":null,"results":[]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewClient(Config{BaseURL: server.URL}, server.Client()).People(ctx, 1)

	assert.ErrorIs(t, err, context.Canceled)
}
