package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer mimics the server's status/body contract closely enough for the
// client-side mapping to be exercised.
func fakeServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	gate := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if got == "" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte("API Key was not provided"))
				return
			}
			if got != apiKey {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte("Invalid API Key"))
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("/api/ping", gate(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	}))
	mux.HandleFunc("/api/auth/register", gate(func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Username string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username == "taken" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("Username already exists"))
			return
		}
		w.Write([]byte("User registered successfully"))
	}))
	mux.HandleFunc("/api/auth/login", gate(func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "alice" || req.Password != "pass123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid username or password"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Token":"signed-token"}`))
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient_Register(t *testing.T) {
	srv := fakeServer(t, "key")
	ctx := context.Background()

	c := NewHTTPClient(srv.URL, "key", time.Second)
	require.NoError(t, c.Register(ctx, "alice", []byte("pass123")))

	err := c.Register(ctx, "taken", []byte("pass123"))
	assert.ErrorIs(t, err, ErrUsernameTaken)

	bad := NewHTTPClient(srv.URL, "wrong", time.Second)
	err = bad.Register(ctx, "alice", []byte("pass123"))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHTTPClient_Login(t *testing.T) {
	srv := fakeServer(t, "key")
	ctx := context.Background()

	c := NewHTTPClient(srv.URL, "key", time.Second)

	token, err := c.Login(ctx, "alice", []byte("pass123"))
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)

	_, err = c.Login(ctx, "alice", []byte("wrong"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	bad := NewHTTPClient(srv.URL, "wrong", time.Second)
	_, err = bad.Login(ctx, "alice", []byte("pass123"))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHTTPClient_Ping(t *testing.T) {
	srv := fakeServer(t, "key")
	ctx := context.Background()

	require.NoError(t, NewHTTPClient(srv.URL, "key", time.Second).Ping(ctx))
	assert.ErrorIs(t, NewHTTPClient(srv.URL, "wrong", time.Second).Ping(ctx), ErrAccessDenied)
}

func TestHTTPClient_ServerUnavailable(t *testing.T) {
	srv := fakeServer(t, "key")
	srv.Close()

	c := NewHTTPClient(srv.URL, "key", time.Second)
	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
