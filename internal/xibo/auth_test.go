package xibo

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthorizationValueOAuth(t *testing.T) {
	var tokenRequests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/authorize/access_token" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q, want client_credentials", got)
		}
		if got := r.PostForm.Get("client_id"); got != "id1" {
			t.Errorf("client_id = %q, want id1", got)
		}
		tokenRequests++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "abc123", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer server.Close()

	source := newTokenSource(server.URL, "id1", "secret1", AuthOAuth, server.Client())

	auth, err := source.AuthorizationValue(context.Background())
	if err != nil {
		t.Fatalf("AuthorizationValue failed: %v", err)
	}
	if auth != "Bearer abc123" {
		t.Errorf("auth = %q, want %q", auth, "Bearer abc123")
	}

	// Second call must reuse the cached token
	if _, err := source.AuthorizationValue(context.Background()); err != nil {
		t.Fatalf("second AuthorizationValue failed: %v", err)
	}
	if tokenRequests != 1 {
		t.Errorf("token endpoint hit %d times, want 1", tokenRequests)
	}

	// Invalidation forces a refetch
	source.Invalidate()
	if _, err := source.AuthorizationValue(context.Background()); err != nil {
		t.Fatalf("AuthorizationValue after invalidate failed: %v", err)
	}
	if tokenRequests != 2 {
		t.Errorf("token endpoint hit %d times after invalidate, want 2", tokenRequests)
	}
}

func TestAuthorizationValueRefetchesNearExpiry(t *testing.T) {
	var tokenRequests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		w.Header().Set("Content-Type", "application/json")
		// Lifetime shorter than the refresh margin, so the cached token is
		// already stale on the next call.
		w.Write([]byte(`{"access_token": "shortlived", "token_type": "Bearer", "expires_in": 30}`))
	}))
	defer server.Close()

	source := newTokenSource(server.URL, "id1", "secret1", AuthOAuth, server.Client())

	for i := 0; i < 2; i++ {
		auth, err := source.AuthorizationValue(context.Background())
		if err != nil {
			t.Fatalf("AuthorizationValue call %d failed: %v", i+1, err)
		}
		if auth != "Bearer shortlived" {
			t.Errorf("auth = %q, want %q", auth, "Bearer shortlived")
		}
	}
	if tokenRequests != 2 {
		t.Errorf("token endpoint hit %d times, want a refetch per call", tokenRequests)
	}
}

func TestAuthorizationValueBasic(t *testing.T) {
	// Basic auth is computed locally; any network call is a failure
	source := newTokenSource("https://cms.example.com", "id1", "secret1", AuthBasic, failingHTTPClient{t})

	auth, err := source.AuthorizationValue(context.Background())
	if err != nil {
		t.Fatalf("AuthorizationValue failed: %v", err)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("id1:secret1"))
	if auth != want {
		t.Errorf("auth = %q, want %q", auth, want)
	}
}

func TestAuthorizationValueMissingURL(t *testing.T) {
	source := newTokenSource("", "id1", "secret1", AuthOAuth, failingHTTPClient{nil})

	_, err := source.AuthorizationValue(context.Background())
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestAuthorizationValueRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid_client"}`))
	}))
	defer server.Close()

	source := newTokenSource(server.URL, "id1", "wrong", AuthOAuth, server.Client())

	_, err := source.AuthorizationValue(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", authErr.Status)
	}
}

func TestAuthorizationValueMalformedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token_type": "Bearer"}`))
	}))
	defer server.Close()

	source := newTokenSource(server.URL, "id1", "secret1", AuthOAuth, server.Client())

	_, err := source.AuthorizationValue(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

// failingHTTPClient fails the test if any request is attempted.
type failingHTTPClient struct {
	t *testing.T
}

func (f failingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if f.t != nil {
		f.t.Errorf("unexpected HTTP request to %s", req.URL)
	}
	return nil, errors.New("no network expected")
}
