package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/storefront-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen/storefront-web/internal/platform/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// newTestClient points a client at a test server running handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&Config{
		BaseURL:     server.URL + "/wp-json/wp/v2/",
		ServiceName: "content-api",
		Timeout:     2 * time.Second,
		UserAgent:   "storefront-web/test",
	})
	require.NoError(t, err)

	return client
}

func drain(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return string(body)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
		timeout time.Duration
	}{
		{name: "nil config", cfg: nil, wantErr: "config is required"},
		{name: "no service name", cfg: &Config{BaseURL: "http://localhost"}, wantErr: "service name is required"},
		{
			name:    "default timeout",
			cfg:     &Config{ServiceName: "publisher-api"},
			timeout: defaultTimeout,
		},
		{
			name:    "configured timeout",
			cfg:     &Config{ServiceName: "publisher-api", Timeout: 3 * time.Second},
			timeout: 3 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.timeout, client.http.Timeout)
			assert.Equal(t, tt.cfg.ServiceName, client.ServiceName())
		})
	}
}

func TestNew_UsesRoundTripper(t *testing.T) {
	var called bool

	client, err := New(&Config{
		ServiceName: "marketo",
		BaseURL:     "https://example.mktorest.com",
		RoundTripper: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			called = true
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
		}),
	})
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/rest/v1/leads.json")
	require.NoError(t, err)
	drain(t, resp)

	assert.True(t, called)
}

func TestNewTransport(t *testing.T) {
	defaults := NewTransport(config.TransportConfig{})
	assert.Equal(t, config.DefaultTransportMaxIdleConns, defaults.MaxIdleConns)
	assert.Equal(t, config.DefaultTransportMaxIdleConnsPerHost, defaults.MaxIdleConnsPerHost)
	assert.Equal(t, config.DefaultTransportIdleConnTimeout, defaults.IdleConnTimeout)

	custom := NewTransport(config.TransportConfig{
		MaxIdleConns:        4,
		MaxIdleConnsPerHost: 1,
		IdleConnTimeout:     time.Second,
	})
	assert.Equal(t, 4, custom.MaxIdleConns)
	assert.Equal(t, 1, custom.MaxIdleConnsPerHost)
	assert.Equal(t, time.Second, custom.IdleConnTimeout)
}

func TestClient_Resolve(t *testing.T) {
	client, err := New(&Config{ServiceName: "content-api", BaseURL: "https://cms.example.com/wp-json/wp/v2/"})
	require.NoError(t, err)

	tests := map[string]string{
		"/posts?page=2":                  "https://cms.example.com/wp-json/wp/v2/posts?page=2",
		"tags":                           "https://cms.example.com/wp-json/wp/v2/tags",
		"https://blog.example.com/feed":  "https://blog.example.com/feed",
		"http://localhost:8080/feed?x=1": "http://localhost:8080/feed?x=1",
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, client.resolve(path))
		})
	}
}

func TestClient_Get_PropagatesHeaders(t *testing.T) {
	var got http.Header

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := middleware.ContextWithRequestID(context.Background(), "req-1")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-1")

	resp, err := client.Get(ctx, "/posts")
	require.NoError(t, err)
	assert.Equal(t, "[]", drain(t, resp))

	assert.Equal(t, "req-1", got.Get(middleware.HeaderRequestID))
	assert.Equal(t, "corr-1", got.Get(middleware.HeaderCorrelationID))
	assert.Equal(t, "storefront-web/test", got.Get("User-Agent"))
}

func TestClient_GetWithHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Macaroon root=abc, discharge=def", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	})

	resp, err := client.GetWithHeaders(context.Background(), "/accounts", http.Header{
		"Authorization": {"Macaroon root=abc, discharge=def"},
	})
	require.NoError(t, err, "HTTP errors are returned as responses")
	drain(t, resp)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestClient_SendJSON(t *testing.T) {
	type agreement struct {
		Accepted bool `json:"accepted"`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "token", r.Header.Get("Authorization"))

		var body agreement
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Accepted)

		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := client.SendJSON(context.Background(), http.MethodPatch, "/accounts/agreement",
		agreement{Accepted: true}, http.Header{"Authorization": {"token"}})
	require.NoError(t, err)
	drain(t, resp)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestClient_SendJSON_Unencodable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.SendJSON(context.Background(), http.MethodPost, "/leads", make(chan int), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding request body")
}

func TestClient_Get_TransportFailure(t *testing.T) {
	client, err := New(&Config{
		ServiceName: "publisher-api",
		BaseURL:     "http://publisher.invalid",
		RoundTripper: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, context.DeadlineExceeded
		}),
	})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/accounts")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "publisher-api")
}

func TestClient_Get_Timeout(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)

	client, err := New(&Config{ServiceName: "content-api", BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/posts")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestClient_Ping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		healthy bool
	}{
		{name: "ok", status: http.StatusOK, healthy: true},
		{name: "unauthorized still reachable", status: http.StatusUnauthorized, healthy: true},
		{name: "not found still reachable", status: http.StatusNotFound, healthy: true},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			err := client.Ping(context.Background(), "/")
			if tt.healthy {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrUnhealthy)
		})
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[int]string{
		http.StatusOK:                 "2xx",
		http.StatusNoContent:          "2xx",
		http.StatusFound:              "3xx",
		http.StatusNotFound:           "4xx",
		http.StatusServiceUnavailable: "5xx",
	}

	for status, want := range tests {
		assert.Equal(t, want, statusClass(status), status)
	}
}
