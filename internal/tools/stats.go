package tools

import (
	"context"
	"encoding/json"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func statsTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "get_stats",
			description: "Fetch proof-of-play statistics for layouts, media or events over a date range.",
			schema: objectSchema(nil, map[string]Property{
				"type":      Property{Type: "string", Description: "Record type to report on", Enum: []any{"layout", "media", "event"}},
				"fromDt":    strProp("Range start, format 2006-01-02 15:04:05"),
				"toDt":      strProp("Range end, format 2006-01-02 15:04:05"),
				"displayId": intProp("Filter by display ID"),
				"layoutId":  intProp("Filter by layout ID"),
				"mediaId":   intProp("Filter by media ID"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Type      string `json:"type"`
					FromDt    string `json:"fromDt"`
					ToDt      string `json:"toDt"`
					DisplayID int    `json:"displayId"`
					LayoutID  int    `json:"layoutId"`
					MediaID   int    `json:"mediaId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.Stats(ctx, xibo.StatsFilter{
					Type:      params.Type,
					FromDt:    params.FromDt,
					ToDt:      params.ToDt,
					DisplayID: params.DisplayID,
					LayoutID:  params.LayoutID,
					MediaID:   params.MediaID,
				})
			},
		},
	}
}
