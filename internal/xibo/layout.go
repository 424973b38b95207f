package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// LayoutFilter narrows the layout list.
type LayoutFilter struct {
	LayoutID int
	Layout   string
	Tags     string
	Retired  string // "0" or "1", empty for all
	FolderID int
}

// ListLayouts returns layouts matching the filter.
func (c *Client) ListLayouts(ctx context.Context, filter LayoutFilter) ([]Layout, error) {
	q := url.Values{}
	setInt(q, "layoutId", filter.LayoutID)
	setStr(q, "layout", filter.Layout)
	setStr(q, "tags", filter.Tags)
	setStr(q, "retired", filter.Retired)
	setInt(q, "folderId", filter.FolderID)

	var layouts []Layout
	if err := c.get(ctx, "layout", "/api/layout", q, &layouts); err != nil {
		return nil, err
	}
	return layouts, nil
}

// LayoutFields are the writable layout attributes.
type LayoutFields struct {
	Name         string
	Description  string
	LayoutID     int // source layout to copy from, optional
	ResolutionID int
	FolderID     int
}

// AddLayout creates a layout, optionally from a template or source layout.
func (c *Client) AddLayout(ctx context.Context, fields LayoutFields) (*Layout, error) {
	form := url.Values{}
	setStr(form, "name", fields.Name)
	setStr(form, "description", fields.Description)
	setInt(form, "layoutId", fields.LayoutID)
	setInt(form, "resolutionId", fields.ResolutionID)
	setInt(form, "folderId", fields.FolderID)

	var layout Layout
	if err := c.postForm(ctx, "layout", "/api/layout", form, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

// EditLayout updates layout metadata. The layout must be checked out.
func (c *Client) EditLayout(ctx context.Context, layoutID int, fields LayoutFields) (*Layout, error) {
	form := url.Values{}
	setStr(form, "name", fields.Name)
	setStr(form, "description", fields.Description)
	setInt(form, "folderId", fields.FolderID)

	var layout Layout
	if err := c.putForm(ctx, "layout", fmt.Sprintf("/api/layout/%d", layoutID), form, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

// DeleteLayout removes a layout.
func (c *Client) DeleteLayout(ctx context.Context, layoutID int) error {
	return c.delete(ctx, "layout", fmt.Sprintf("/api/layout/%d", layoutID), nil)
}

// RetireLayout marks a layout retired so it can no longer be scheduled.
func (c *Client) RetireLayout(ctx context.Context, layoutID int) error {
	return c.putForm(ctx, "layout", fmt.Sprintf("/api/layout/retire/%d", layoutID), url.Values{}, nil)
}

// CheckoutLayout creates an editable draft of a published layout.
func (c *Client) CheckoutLayout(ctx context.Context, layoutID int) (*Layout, error) {
	var layout Layout
	if err := c.putForm(ctx, "layout", fmt.Sprintf("/api/layout/checkout/%d", layoutID), url.Values{}, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}

// PublishLayout publishes the draft of a layout.
func (c *Client) PublishLayout(ctx context.Context, layoutID int) (*Layout, error) {
	var layout Layout
	if err := c.putForm(ctx, "layout", fmt.Sprintf("/api/layout/publish/%d", layoutID), url.Values{}, &layout); err != nil {
		return nil, err
	}
	return &layout, nil
}
