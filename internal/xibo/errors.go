package xibo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ConfigError indicates required CMS configuration is missing. It is
// returned before any network call is attempted.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("CMS configuration missing: %s", e.Missing)
}

// AuthError indicates token acquisition failed, either because the token
// endpoint rejected the credentials or because it could not be reached.
type AuthError struct {
	Status int    // HTTP status from the token endpoint, 0 for transport failures
	Body   string // raw response body, empty for transport failures
	Err    error  // underlying transport error, nil for HTTP rejections
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token request failed: %v", e.Err)
	}
	return fmt.Sprintf("token request failed (status %d): %s", e.Status, e.Body)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError indicates a network-level failure reaching the CMS,
// distinct from the CMS answering with an error status.
type TransportError struct {
	Op  string // method and path of the attempted request
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError indicates the CMS responded with a non-2xx status.
type APIError struct {
	Status  int
	Message string // decoded human-readable message
	Body    string // raw response body for diagnostics
}

func (e *APIError) Error() string {
	return fmt.Sprintf("CMS API error (status %d): %s", e.Status, e.Message)
}

// ValidationError indicates the CMS responded 2xx but the payload did not
// match the expected shape for the resource. Raw carries the original
// payload to aid debugging.
type ValidationError struct {
	Reason string
	Raw    json.RawMessage
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unexpected CMS response: %s", e.Reason)
}

// DecodeErrorMessage converts a raw CMS error payload into a human-readable
// message. The CMS is inconsistent about its error envelope: sometimes
// {"message": ...}, sometimes {"error": {"message": ...}}, sometimes a
// field->messages validation object, sometimes a bare JSON string or plain
// text/HTML. On anything it cannot interpret it returns the input unchanged.
func DecodeErrorMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}

	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return raw
	}

	switch v := parsed.(type) {
	case string:
		return v
	case map[string]any:
		if msg := messageFrom(v); msg != "" {
			return msg
		}
		// Validation-style object: field -> message or field -> [messages]
		if msg := fieldMessages(v); msg != "" {
			return msg
		}
	}

	return raw
}

func messageFrom(obj map[string]any) string {
	if msg, ok := obj["message"].(string); ok && msg != "" {
		return msg
	}
	switch e := obj["error"].(type) {
	case string:
		if e != "" {
			return e
		}
	case map[string]any:
		if msg, ok := e["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return ""
}

func fieldMessages(obj map[string]any) string {
	var parts []string
	for field, val := range obj {
		switch m := val.(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s: %s", field, m))
		case []any:
			for _, item := range m {
				if s, ok := item.(string); ok {
					parts = append(parts, fmt.Sprintf("%s: %s", field, s))
				}
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
