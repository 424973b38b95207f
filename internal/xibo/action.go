package xibo

import (
	"context"
	"net/url"
)

// ActionFilter narrows the interactive-action list.
type ActionFilter struct {
	ActionID int
	SourceID int
	Source   string
}

// ListActions returns interactive-control actions matching the filter.
func (c *Client) ListActions(ctx context.Context, filter ActionFilter) ([]Action, error) {
	q := url.Values{}
	setInt(q, "actionId", filter.ActionID)
	setInt(q, "sourceId", filter.SourceID)
	setStr(q, "source", filter.Source)

	var actions []Action
	if err := c.get(ctx, "action", "/api/action", q, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}
