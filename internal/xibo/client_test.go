package xibo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// countingClient records how many requests pass through it.
type countingClient struct {
	calls int64
	inner HTTPClient
}

func (c *countingClient) Do(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&c.calls, 1)
	if c.inner == nil {
		return nil, errors.New("no transport")
	}
	return c.inner.Do(req)
}

// newTestServer returns a CMS stub that issues tokens and delegates API
// paths to the given handler.
func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/authorize/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "testtoken", "expires_in": 3600}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer testtoken" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer testtoken")
		}
		handler(w, r)
	})
	return httptest.NewServer(mux)
}

func newTestClient(server *httptest.Server) *Client {
	return New(Options{
		BaseURL:      server.URL,
		ClientID:     "id1",
		ClientSecret: "secret1",
		HTTPClient:   server.Client(),
		RatePerMin:   6000,
		Burst:        100,
	})
}

func TestMissingBaseURLFailsBeforeNetwork(t *testing.T) {
	counting := &countingClient{}
	client := New(Options{HTTPClient: counting})

	_, err := client.About(context.Background())
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if counting.calls != 0 {
		t.Errorf("HTTP calls = %d, want 0", counting.calls)
	}
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"message": "Tag not found", "code": 404}}`))
	})
	defer server.Close()

	client := newTestClient(server)
	_, err := client.ListTags(context.Background(), TagFilter{TagID: 99})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.Status)
	}
	if apiErr.Message != "Tag not found" {
		t.Errorf("message = %q, want %q", apiErr.Message, "Tag not found")
	}
}

func TestNoContentDeleteSucceeds(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/api/tag/5" {
			t.Errorf("path = %s, want /api/tag/5", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	client := newTestClient(server)
	if err := client.DeleteTag(context.Background(), 5); err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}
}

func TestGridEnvelopeIsUnwrapped(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"tagId": 3, "tag": "promo"}], "recordsTotal": 1}`))
	})
	defer server.Close()

	client := newTestClient(server)
	tags, err := client.ListTags(context.Background(), TagFilter{})
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
	if tags[0].TagID != 3 || tags[0].Tag != "promo" {
		t.Errorf("tag = %+v, want tagId 3 / promo", tags[0])
	}
}

func TestMalformedEntityFailsValidation(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		// Entries with no displayId violate the entity contract
		w.Write([]byte(`[{"display": "lobby"}]`))
	})
	defer server.Close()

	client := newTestClient(server)
	_, err := client.ListDisplays(context.Background(), DisplayFilter{})

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(valErr.Raw) == 0 {
		t.Error("ValidationError should carry the raw payload")
	}
}

func TestTransportFailureIsClassified(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	client := newTestClient(server)
	// Prime the token, then kill the server so the API call fails at the
	// network level.
	if _, err := client.About(context.Background()); err != nil {
		t.Fatalf("priming call failed: %v", err)
	}
	server.Close()

	_, err := client.About(context.Background())
	var transErr *TransportError
	if !errors.As(err, &transErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}
