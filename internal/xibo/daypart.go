package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// ListDayparts returns the scheduler's named time windows.
func (c *Client) ListDayparts(ctx context.Context) ([]Daypart, error) {
	var dayparts []Daypart
	if err := c.get(ctx, "daypart", "/api/daypart", nil, &dayparts); err != nil {
		return nil, err
	}
	return dayparts, nil
}

// AddDaypart creates a named time window.
func (c *Client) AddDaypart(ctx context.Context, name, startTime, endTime string) (*Daypart, error) {
	form := url.Values{}
	setStr(form, "name", name)
	setStr(form, "startTime", startTime)
	setStr(form, "endTime", endTime)

	var daypart Daypart
	if err := c.postForm(ctx, "daypart", "/api/daypart", form, &daypart); err != nil {
		return nil, err
	}
	return &daypart, nil
}

// DeleteDaypart removes a named time window.
func (c *Client) DeleteDaypart(ctx context.Context, dayPartID int) error {
	return c.delete(ctx, "daypart", fmt.Sprintf("/api/daypart/%d", dayPartID), nil)
}
