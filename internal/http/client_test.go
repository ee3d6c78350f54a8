package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robinhood/pkg/core"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(&Config{Timeout: 5 * time.Second, UserAgent: "test-agent"}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(&Config{Timeout: time.Second}, zerolog.Nop())

	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	client, err := NewClient(&Config{Timeout: 0}, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/fundamentals/AAPL/", r.URL.Path)
		assert.Equal(t, "value", r.URL.Query().Get("key"))
		assert.Equal(t, "yes", r.Header.Get("X-Custom"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"result":"success"}`))
	}))
	defer server.Close()

	client := newTestClient(t)
	resp, err := client.Do(context.Background(), &Request{
		Method:  http.MethodGet,
		URL:     server.URL + "/fundamentals/{ticker}/",
		Headers: map[string]string{"X-Custom": "yes"},
		Query:   map[string]string{"key": "value"},
		Path:    map[string]string{"ticker": "AAPL"},
	})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.JSONEq(t, `{"result":"success"}`, string(resp.Body))
}

func TestClient_PostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "u", r.PostForm.Get("username"))
		assert.Equal(t, "p", r.PostForm.Get("password"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"abc"}`))
	}))
	defer server.Close()

	client := newTestClient(t)
	resp, err := client.Do(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    server.URL + "/api-token-auth/",
		Form:   map[string]string{"username": "u", "password": "p"},
	})

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestClient_GetIgnoresForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t)
	resp, err := client.Do(context.Background(), &Request{
		Method: http.MethodGet,
		URL:    server.URL,
		Form:   map[string]string{"ignored": "1"},
	})

	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestClient_ErrorStatusIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid token."}`))
	}))
	defer server.Close()

	client := newTestClient(t)
	resp, err := client.Do(context.Background(), &Request{Method: http.MethodGet, URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.Contains(t, string(resp.Body), "Invalid token.")
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(&Config{Timeout: 20 * time.Millisecond}, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Do(context.Background(), &Request{Method: http.MethodGet, URL: server.URL})
	assert.Error(t, err)
}

func TestClient_Closed(t *testing.T) {
	client, err := NewClient(&Config{Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err = client.Do(context.Background(), &Request{Method: http.MethodGet, URL: "http://localhost"})
	assert.ErrorIs(t, err, core.ErrClientClosed)
}

func TestResponse_IsSuccess(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   bool
	}{
		{"200 OK", 200, true},
		{"201 Created", 201, true},
		{"204 No Content", 204, true},
		{"301 Redirect", 301, false},
		{"400 Bad Request", 400, false},
		{"500 Server Error", 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{StatusCode: tt.statusCode}
			assert.Equal(t, tt.expected, resp.IsSuccess())
		})
	}
}
