package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// DisplayFilter narrows the display list.
type DisplayFilter struct {
	DisplayID      int
	Display        string
	DisplayGroupID int
	Tags           string
	ClientType     string
	Authorised     string // "0" or "1", empty for all
}

// ListDisplays returns displays matching the filter.
func (c *Client) ListDisplays(ctx context.Context, filter DisplayFilter) ([]Display, error) {
	q := url.Values{}
	setInt(q, "displayId", filter.DisplayID)
	setStr(q, "display", filter.Display)
	setInt(q, "displayGroupId", filter.DisplayGroupID)
	setStr(q, "tags", filter.Tags)
	setStr(q, "clientType", filter.ClientType)
	setStr(q, "authorised", filter.Authorised)

	var displays []Display
	if err := c.get(ctx, "display", "/api/display", q, &displays); err != nil {
		return nil, err
	}
	return displays, nil
}

// DisplayEdit holds the writable display attributes.
type DisplayEdit struct {
	Display         string
	Description     string
	Licensed        int
	DefaultLayoutID int
	AuditingUntil   string
}

// EditDisplay updates a display.
func (c *Client) EditDisplay(ctx context.Context, displayID int, edit DisplayEdit) (*Display, error) {
	form := url.Values{}
	setStr(form, "display", edit.Display)
	setStr(form, "description", edit.Description)
	setFlag(form, "licensed", edit.Licensed)
	setInt(form, "defaultLayoutId", edit.DefaultLayoutID)
	setStr(form, "auditingUntil", edit.AuditingUntil)

	var display Display
	if err := c.putForm(ctx, "display", fmt.Sprintf("/api/display/%d", displayID), form, &display); err != nil {
		return nil, err
	}
	return &display, nil
}

// DeleteDisplay removes a display.
func (c *Client) DeleteDisplay(ctx context.Context, displayID int) error {
	return c.delete(ctx, "display", fmt.Sprintf("/api/display/%d", displayID), nil)
}

// AuthoriseDisplay toggles the display's authorised state.
func (c *Client) AuthoriseDisplay(ctx context.Context, displayID int) error {
	return c.putForm(ctx, "display", fmt.Sprintf("/api/display/authorise/%d", displayID), url.Values{}, nil)
}

// SetDefaultLayout assigns the display's default layout.
func (c *Client) SetDefaultLayout(ctx context.Context, displayID, layoutID int) error {
	form := url.Values{}
	setInt(form, "layoutId", layoutID)
	return c.putForm(ctx, "display", fmt.Sprintf("/api/display/defaultlayout/%d", displayID), form, nil)
}

// WakeOnLan sends a wake-on-LAN packet to the display.
func (c *Client) WakeOnLan(ctx context.Context, displayID int) error {
	return c.postForm(ctx, "display", fmt.Sprintf("/api/display/wol/%d", displayID), url.Values{}, nil)
}
