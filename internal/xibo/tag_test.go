package xibo

import (
	"context"
	"net/http"
	"reflect"
	"testing"
)

func TestAddThenListTag(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/tag":
			if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
				t.Errorf("Content-Type = %q, want form encoding", ct)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("failed to parse form: %v", err)
			}
			if got := r.PostForm.Get("name"); got != "promo" {
				t.Errorf("name = %q, want promo", got)
			}
			w.Write([]byte(`{"tagId": 7, "tag": "promo", "isSystem": 0, "isRequired": 0}`))

		case r.Method == http.MethodGet && r.URL.Path == "/api/tag":
			if got := r.URL.Query().Get("exactTag"); got != "promo" {
				t.Errorf("exactTag = %q, want promo", got)
			}
			w.Write([]byte(`[{"tagId": 7, "tag": "promo", "isSystem": 0, "isRequired": 0}]`))

		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	defer server.Close()

	client := newTestClient(server)

	created, err := client.AddTag(context.Background(), TagFields{Name: "promo"})
	if err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}
	if created.TagID != 7 {
		t.Errorf("created tagId = %d, want 7", created.TagID)
	}

	tags, err := client.ListTags(context.Background(), TagFilter{ExactTag: "promo"})
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 1 || tags[0].TagID != created.TagID {
		t.Errorf("list = %+v, want the created tag", tags)
	}
}

func TestListTagsRepeatedReadsMatch(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"tagId": 1, "tag": "lobby", "isSystem": 0, "isRequired": 0},
			{"tagId": 2, "tag": "promo", "isSystem": 1, "isRequired": 0}]`))
	})
	defer server.Close()

	client := newTestClient(server)

	first, err := client.ListTags(context.Background(), TagFilter{})
	if err != nil {
		t.Fatalf("first ListTags failed: %v", err)
	}
	second, err := client.ListTags(context.Background(), TagFilter{})
	if err != nil {
		t.Fatalf("second ListTags failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated reads differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
