package xibo

import (
	"encoding/json"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare array passthrough", `[{"tagId": 1}]`, `[{"tagId": 1}]`},
		{"grid envelope", `{"data": [{"tagId": 1}], "recordsTotal": 1}`, `[{"tagId": 1}]`},
		{"sole data key", `{"data": [{"tagId": 2}]}`, `[{"tagId": 2}]`},
		{"entity with data field", `{"dataSetId": 3, "data": "csv"}`, `{"dataSetId": 3, "data": "csv"}`},
		{"plain object passthrough", `{"tagId": 4, "tag": "promo"}`, `{"tagId": 4, "tag": "promo"}`},
		{"not json passthrough", `oops`, `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(json.RawMessage(tt.raw))
			if string(got) != tt.want {
				t.Errorf("normalize(%s) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}
