package xibo

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestUploadMediaSingleRequest(t *testing.T) {
	var requests []string
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)

		if r.Method != http.MethodPost || r.URL.Path != "/api/library" {
			t.Errorf("unexpected request %s %s, upload must not trigger follow-up calls", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "multipart/form-data") {
			t.Errorf("Content-Type = %q, want multipart form", ct)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		if _, _, err := r.FormFile("files"); err != nil {
			t.Errorf("missing files part: %v", err)
		}
		w.Write([]byte(`{"files": [{"mediaId": 9, "name": "poster.png", "mediaType": "image", "storedAs": "9.png", "fileSize": 4}]}`))
	})
	defer server.Close()

	client := newTestClient(server)

	media, err := client.UploadMedia(context.Background(), "poster.png", strings.NewReader("data"), 2)
	if err != nil {
		t.Fatalf("UploadMedia failed: %v", err)
	}
	if media.MediaID != 9 || media.Name != "poster.png" || media.MediaType != "image" {
		t.Errorf("media = %+v, want the uploaded entry", media)
	}
	if media.FolderID != 2 {
		t.Errorf("folderId = %d, want 2", media.FolderID)
	}
	if len(requests) != 1 {
		t.Errorf("requests = %v, want exactly one upload call", requests)
	}
}

func TestUploadMediaReportsFileError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"files": [{"error": "File too large"}]}`))
	})
	defer server.Close()

	client := newTestClient(server)

	_, err := client.UploadMedia(context.Background(), "movie.mp4", strings.NewReader("data"), 0)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !strings.Contains(apiErr.Message, "File too large") {
		t.Errorf("message = %q, want the per-file error", apiErr.Message)
	}
}
