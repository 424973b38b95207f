package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

// countingTransport fails every request and records the attempt count.
type countingTransport struct {
	calls int
}

func (c *countingTransport) Do(req *http.Request) (*http.Response, error) {
	c.calls++
	return nil, errors.New("no network expected")
}

func decodeResponse(t *testing.T, result *Result) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal([]byte(result.Output), &resp); err != nil {
		t.Fatalf("tool output is not a response envelope: %v\n%s", err, result.Output)
	}
	return resp
}

func newCMSRegistry(t *testing.T, handler http.HandlerFunc) (*Registry, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/authorize/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "testtoken", "expires_in": 3600}`))
	})
	mux.HandleFunc("/", handler)
	server := httptest.NewServer(mux)

	client := xibo.New(xibo.Options{
		BaseURL:      server.URL,
		ClientID:     "id1",
		ClientSecret: "secret1",
		HTTPClient:   server.Client(),
		RatePerMin:   6000,
		Burst:        100,
	})
	registry := NewRegistry()
	if err := RegisterCMSTools(registry, client); err != nil {
		server.Close()
		t.Fatalf("RegisterCMSTools failed: %v", err)
	}
	return registry, server
}

func TestToolReportsMissingConfiguration(t *testing.T) {
	transport := &countingTransport{}
	client := xibo.New(xibo.Options{HTTPClient: transport})
	registry := NewRegistry()
	if err := RegisterCMSTools(registry, client); err != nil {
		t.Fatalf("RegisterCMSTools failed: %v", err)
	}

	result, err := registry.Execute(context.Background(), "list_tags", nil)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError")
	}

	resp := decodeResponse(t, result)
	if resp.Success {
		t.Error("success should be false")
	}
	if resp.Error != ErrConfiguration {
		t.Errorf("error category = %q, want %q", resp.Error, ErrConfiguration)
	}
	if transport.calls != 0 {
		t.Errorf("HTTP calls = %d, want 0", transport.calls)
	}
}

func TestToolReportsInvalidInput(t *testing.T) {
	transport := &countingTransport{}
	client := xibo.New(xibo.Options{BaseURL: "https://cms.example.com", HTTPClient: transport})
	registry := NewRegistry()
	if err := RegisterCMSTools(registry, client); err != nil {
		t.Fatalf("RegisterCMSTools failed: %v", err)
	}

	result, err := registry.Execute(context.Background(), "delete_tag", json.RawMessage(`{"tagId": "not a number"}`))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError")
	}

	resp := decodeResponse(t, result)
	if resp.Error != ErrInput {
		t.Errorf("error category = %q, want %q", resp.Error, ErrInput)
	}
}

func TestToolCarriesAPIFailure(t *testing.T) {
	registry, server := newCMSRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "Tag is in use"}`))
	})
	defer server.Close()

	result, err := registry.Execute(context.Background(), "delete_tag", json.RawMessage(`{"tagId": 3}`))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError")
	}

	resp := decodeResponse(t, result)
	if resp.Error != ErrAPI {
		t.Errorf("error category = %q, want %q", resp.Error, ErrAPI)
	}
	if resp.Status != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.Status)
	}
	if len(resp.ErrorData) == 0 {
		t.Error("expected ErrorData to carry the CMS body")
	}
}

func TestDeleteToolReportsSuccessMessage(t *testing.T) {
	registry, server := newCMSRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	result, err := registry.Execute(context.Background(), "delete_tag", json.RawMessage(`{"tagId": 5}`))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected failure: %s", result.Output)
	}

	resp := decodeResponse(t, result)
	if !resp.Success {
		t.Error("success should be true")
	}
	if resp.Message != "tag 5 deleted" {
		t.Errorf("message = %q, want %q", resp.Message, "tag 5 deleted")
	}
}

func TestListToolReturnsData(t *testing.T) {
	registry, server := newCMSRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"tagId": 3, "tag": "promo", "isSystem": 0, "isRequired": 0}]`))
	})
	defer server.Close()

	result, err := registry.Execute(context.Background(), "list_tags", json.RawMessage(`{"tag": "promo"}`))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected failure: %s", result.Output)
	}

	resp := decodeResponse(t, result)
	if !resp.Success {
		t.Error("success should be true")
	}
	tags, ok := resp.Data.([]any)
	if !ok || len(tags) != 1 {
		t.Fatalf("data = %#v, want one tag entry", resp.Data)
	}
}
