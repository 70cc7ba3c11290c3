package superset

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient creates a Client pointed at a test server with the given
// handler and registers server cleanup.
func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "admin", "admin", discardLogger())
}

func TestAuthenticate(t *testing.T) {
	var gotPayload map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/security/login" {
			t.Errorf("path = %q, want /api/v1/security/login", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&gotPayload)
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	}))

	if err := c.Authenticate(context.Background()); err != nil {
		t.Fatalf("Authenticate() error: %v", err)
	}
	if c.token != "tok-123" {
		t.Errorf("token = %q, want tok-123", c.token)
	}
	if gotPayload["provider"] != "db" {
		t.Errorf("provider = %q, want db", gotPayload["provider"])
	}
	if gotPayload["username"] != "admin" || gotPayload["password"] != "admin" {
		t.Errorf("credentials = %v, want admin/admin", gotPayload)
	}
}

func TestAuthenticateUnauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if err := c.Authenticate(context.Background()); err == nil {
		t.Fatal("Authenticate() = nil, want error")
	}
}

func TestAuthenticateEmptyToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": ""})
	}))

	if err := c.Authenticate(context.Background()); err == nil {
		t.Fatal("Authenticate() = nil, want error for empty token")
	}
}

func TestHealth(t *testing.T) {
	for _, tc := range []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"Healthy", http.StatusOK, false},
		{"ServerError", http.StatusInternalServerError, true},
		{"NotFound", http.StatusNotFound, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/health" {
					t.Errorf("path = %q, want /health", r.URL.Path)
				}
				w.WriteHeader(tc.status)
			}))

			err := c.Health(context.Background())
			if tc.wantErr && err == nil {
				t.Error("Health() = nil, want error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Health() error: %v", err)
			}
		})
	}
}

func TestWaitHealthyAfterRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.WaitHealthy(ctx, time.Millisecond); err != nil {
		t.Fatalf("WaitHealthy() error: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("health endpoint called %d times, want 3", calls.Load())
	}
}

func TestWaitHealthyContextCancelled(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.WaitHealthy(ctx, time.Millisecond)
	if err == nil {
		t.Fatal("WaitHealthy() = nil, want context error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitHealthy() error = %v, want deadline exceeded", err)
	}
}

func TestDatabases(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/security/login":
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-abc"})
		case "/api/v1/database/":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
				t.Errorf("Authorization = %q, want Bearer tok-abc", got)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"result": []map[string]any{
					{"id": 1, "database_name": "examples"},
					{"id": 2, "database_name": "warehouse"},
				},
			})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	dbs, err := c.Databases(context.Background())
	if err != nil {
		t.Fatalf("Databases() error: %v", err)
	}
	if len(dbs) != 2 {
		t.Fatalf("Databases() returned %d entries, want 2", len(dbs))
	}
	if dbs[0].ID != 1 || dbs[0].Name != "examples" {
		t.Errorf("dbs[0] = %+v", dbs[0])
	}
	if dbs[1].ID != 2 || dbs[1].Name != "warehouse" {
		t.Errorf("dbs[1] = %+v", dbs[1])
	}
}

func TestDatabasesAuthFailure(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if _, err := c.Databases(context.Background()); err == nil {
		t.Fatal("Databases() = nil, want auth error")
	}
}
