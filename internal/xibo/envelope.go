package xibo

import (
	"bytes"
	"encoding/json"
)

// normalize unwraps the grid envelope the CMS sometimes puts around list
// payloads ({"data": [...], "recordsTotal": n}) and returns the inner
// payload. Bare arrays and plain objects pass through untouched, so callers
// always decode one consistent shape.
func normalize(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}

	var envelope struct {
		Data         json.RawMessage `json:"data"`
		RecordsTotal *int            `json:"recordsTotal"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return raw
	}
	if envelope.Data == nil {
		return raw
	}
	// Only treat it as an envelope when the grid metadata is present or the
	// object carries nothing but the data key. Entities never have both.
	if envelope.RecordsTotal != nil || soleKeyIsData(trimmed) {
		return envelope.Data
	}
	return raw
}

func soleKeyIsData(raw []byte) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	_, ok := obj["data"]
	return ok && len(obj) == 1
}
