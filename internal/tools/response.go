package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

// Response is the structured result envelope every tool returns. Expected
// failures (missing configuration, CMS errors, schema violations) are
// reported through it rather than raised, so the agent framework has one
// contract to handle.
type Response struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Data      any             `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"` // failure category
	ErrorData json.RawMessage `json:"errorData,omitempty"`
	Status    int             `json:"status,omitempty"` // HTTP status for api failures
}

// Failure categories.
const (
	ErrInput          = "input"
	ErrConfiguration  = "configuration"
	ErrAuthentication = "authentication"
	ErrTransport      = "transport"
	ErrAPI            = "api"
	ErrValidation     = "validation"
	ErrInternal       = "internal"
)

// statusMessage lets a handler return a plain confirmation instead of an
// entity (deletes and other 204 operations).
type statusMessage string

// inputError marks a failure to parse the tool's input parameters.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return fmt.Sprintf("invalid input: %v", e.err) }
func (e *inputError) Unwrap() error { return e.err }

func parseInput(input json.RawMessage, dest any) error {
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}
	if err := json.Unmarshal(input, dest); err != nil {
		return &inputError{err: err}
	}
	return nil
}

func successResult(data any) *Result {
	resp := Response{Success: true}
	switch v := data.(type) {
	case nil:
		resp.Message = "ok"
	case statusMessage:
		resp.Message = string(v)
	default:
		resp.Data = data
	}
	return &Result{Output: marshalResponse(resp)}
}

func failureResult(err error) *Result {
	resp := Response{Success: false, Message: err.Error(), Error: classify(err)}

	var apiErr *xibo.APIError
	var valErr *xibo.ValidationError
	switch {
	case errors.As(err, &apiErr):
		resp.Status = apiErr.Status
		if apiErr.Body != "" {
			resp.ErrorData = rawOrQuoted(apiErr.Body)
		}
	case errors.As(err, &valErr):
		resp.ErrorData = valErr.Raw
	}

	return &Result{Output: marshalResponse(resp), IsError: true}
}

func classify(err error) string {
	var (
		inErr    *inputError
		cfgErr   *xibo.ConfigError
		authErr  *xibo.AuthError
		transErr *xibo.TransportError
		apiErr   *xibo.APIError
		valErr   *xibo.ValidationError
	)
	switch {
	case errors.As(err, &inErr):
		return ErrInput
	case errors.As(err, &cfgErr):
		return ErrConfiguration
	case errors.As(err, &authErr):
		return ErrAuthentication
	case errors.As(err, &apiErr):
		return ErrAPI
	case errors.As(err, &valErr):
		return ErrValidation
	case errors.As(err, &transErr):
		return ErrTransport
	default:
		return ErrInternal
	}
}

func marshalResponse(resp Response) string {
	out, err := json.Marshal(resp)
	if err != nil {
		// Data was not serializable; report that instead of failing the tool.
		fallback, _ := json.Marshal(Response{
			Success: false,
			Message: fmt.Sprintf("failed to serialize result: %v", err),
			Error:   ErrInternal,
		})
		return string(fallback)
	}
	return string(out)
}

// rawOrQuoted keeps JSON bodies as-is and wraps plain text as a JSON string
// so ErrorData is always valid JSON. CMS failure bodies are often HTML, so
// the string is encoded without HTML escaping to keep it readable.
func rawOrQuoted(body string) json.RawMessage {
	if json.Valid([]byte(body)) {
		return json.RawMessage(body)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n"))
}
