package xibo

import "context"

// About returns the CMS version information. Also the cheapest way to
// verify that the configured credentials work.
func (c *Client) About(ctx context.Context) (*About, error) {
	var about About
	if err := c.get(ctx, "about", "/api/about", nil, &about); err != nil {
		return nil, err
	}
	return &about, nil
}

// Clock returns the CMS server time.
func (c *Client) Clock(ctx context.Context) (*ClockInfo, error) {
	var clock ClockInfo
	if err := c.get(ctx, "about", "/api/clock", nil, &clock); err != nil {
		return nil, err
	}
	return &clock, nil
}
