package xibo

import "testing"

func TestDecodeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain text passthrough", "not json at all", "not json at all"},
		{"html passthrough", "<html><body>Bad Gateway</body></html>", "<html><body>Bad Gateway</body></html>"},
		{"empty passthrough", "", ""},
		{"bare json string", `"upstream timeout"`, "upstream timeout"},
		{"top-level message", `{"message": "Tag not found"}`, "Tag not found"},
		{"error string", `{"error": "invalid_client"}`, "invalid_client"},
		{"nested error message", `{"error": {"message": "Access denied", "code": 403}}`, "Access denied"},
		{"validation field map", `{"name": ["Name is required"], "code": "Code already in use"}`, "code: Code already in use; name: Name is required"},
		{"unrecognized object passthrough", `{"foo": 1}`, `{"foo": 1}`},
		{"json array passthrough", `[1,2,3]`, `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeErrorMessage(tt.raw); got != tt.want {
				t.Errorf("DecodeErrorMessage(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
