package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// ListResolutions returns the configured design resolutions.
func (c *Client) ListResolutions(ctx context.Context) ([]Resolution, error) {
	var resolutions []Resolution
	if err := c.get(ctx, "resolution", "/api/resolution", nil, &resolutions); err != nil {
		return nil, err
	}
	return resolutions, nil
}

// AddResolution creates a design resolution.
func (c *Client) AddResolution(ctx context.Context, name string, width, height int) (*Resolution, error) {
	form := url.Values{}
	setStr(form, "resolution", name)
	setInt(form, "width", width)
	setInt(form, "height", height)

	var resolution Resolution
	if err := c.postForm(ctx, "resolution", "/api/resolution", form, &resolution); err != nil {
		return nil, err
	}
	return &resolution, nil
}

// DeleteResolution removes a design resolution.
func (c *Client) DeleteResolution(ctx context.Context, resolutionID int) error {
	return c.delete(ctx, "resolution", fmt.Sprintf("/api/resolution/%d", resolutionID), nil)
}
