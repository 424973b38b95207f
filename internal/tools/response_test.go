package tools

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshalResponseFallback(t *testing.T) {
	// Channels are not serializable; the envelope must degrade to an
	// internal failure rather than emitting invalid JSON.
	out := marshalResponse(Response{Success: true, Data: make(chan int)})

	var resp Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("fallback output is not valid JSON: %v", err)
	}
	if resp.Success {
		t.Error("fallback should report failure")
	}
	if resp.Error != ErrInternal {
		t.Errorf("error category = %q, want %q", resp.Error, ErrInternal)
	}
	if !strings.Contains(resp.Message, "serialize") {
		t.Errorf("message %q should mention serialization", resp.Message)
	}
}

func TestRawOrQuoted(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"json object kept", `{"message": "x"}`, `{"message": "x"}`},
		{"plain text quoted", `upstream exploded`, `"upstream exploded"`},
		{"html quoted", `<html>502</html>`, `"<html>502</html>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rawOrQuoted(tt.body)
			if !json.Valid(got) {
				t.Fatalf("rawOrQuoted(%q) is not valid JSON: %s", tt.body, got)
			}
			if string(got) != tt.want {
				t.Errorf("rawOrQuoted(%q) = %s, want %s", tt.body, got, tt.want)
			}
		})
	}
}
