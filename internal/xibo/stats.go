package xibo

import (
	"context"
	"net/url"
)

// StatsFilter narrows the proof-of-play report.
type StatsFilter struct {
	Type      string // "layout", "media" or "event"
	FromDt    string // "2006-01-02 15:04:05"
	ToDt      string
	DisplayID int
	LayoutID  int
	MediaID   int
}

// Stats returns proof-of-play statistics matching the filter.
func (c *Client) Stats(ctx context.Context, filter StatsFilter) ([]Stat, error) {
	q := url.Values{}
	setStr(q, "type", filter.Type)
	setStr(q, "fromDt", filter.FromDt)
	setStr(q, "toDt", filter.ToDt)
	setInt(q, "displayId", filter.DisplayID)
	setInt(q, "layoutId", filter.LayoutID)
	setInt(q, "mediaId", filter.MediaID)

	var stats []Stat
	if err := c.get(ctx, "stats", "/api/stats", q, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
