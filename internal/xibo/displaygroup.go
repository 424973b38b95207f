package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// DisplayGroupFilter narrows the display group list.
type DisplayGroupFilter struct {
	DisplayGroupID int
	DisplayGroup   string
	DisplayID      int
	IsDynamic      string // "0" or "1", empty for all
}

// ListDisplayGroups returns display groups matching the filter.
func (c *Client) ListDisplayGroups(ctx context.Context, filter DisplayGroupFilter) ([]DisplayGroup, error) {
	q := url.Values{}
	setInt(q, "displayGroupId", filter.DisplayGroupID)
	setStr(q, "displayGroup", filter.DisplayGroup)
	setInt(q, "displayId", filter.DisplayID)
	setStr(q, "isDynamic", filter.IsDynamic)

	var groups []DisplayGroup
	if err := c.get(ctx, "displaygroup", "/api/displaygroup", q, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// DisplayGroupFields are the writable display group attributes.
type DisplayGroupFields struct {
	DisplayGroup    string
	Description     string
	IsDynamic       int
	DynamicCriteria string
}

func displayGroupForm(fields DisplayGroupFields) url.Values {
	form := url.Values{}
	setStr(form, "displayGroup", fields.DisplayGroup)
	setStr(form, "description", fields.Description)
	setFlag(form, "isDynamic", fields.IsDynamic)
	setStr(form, "dynamicCriteria", fields.DynamicCriteria)
	return form
}

// AddDisplayGroup creates a display group.
func (c *Client) AddDisplayGroup(ctx context.Context, fields DisplayGroupFields) (*DisplayGroup, error) {
	var group DisplayGroup
	if err := c.postForm(ctx, "displaygroup", "/api/displaygroup", displayGroupForm(fields), &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// EditDisplayGroup updates a display group.
func (c *Client) EditDisplayGroup(ctx context.Context, groupID int, fields DisplayGroupFields) (*DisplayGroup, error) {
	var group DisplayGroup
	if err := c.putForm(ctx, "displaygroup", fmt.Sprintf("/api/displaygroup/%d", groupID), displayGroupForm(fields), &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteDisplayGroup removes a display group.
func (c *Client) DeleteDisplayGroup(ctx context.Context, groupID int) error {
	return c.delete(ctx, "displaygroup", fmt.Sprintf("/api/displaygroup/%d", groupID), nil)
}

// AssignDisplays adds displays to a display group.
func (c *Client) AssignDisplays(ctx context.Context, groupID int, displayIDs []int) error {
	form := url.Values{}
	setInts(form, "displayId[]", displayIDs)
	return c.postForm(ctx, "displaygroup", fmt.Sprintf("/api/displaygroup/%d/display/assign", groupID), form, nil)
}

// UnassignDisplays removes displays from a display group.
func (c *Client) UnassignDisplays(ctx context.Context, groupID int, displayIDs []int) error {
	form := url.Values{}
	setInts(form, "displayId[]", displayIDs)
	return c.postForm(ctx, "displaygroup", fmt.Sprintf("/api/displaygroup/%d/display/unassign", groupID), form, nil)
}
