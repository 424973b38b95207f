package xibo

import (
	"context"
	"fmt"
	"net/url"
)

// CampaignFilter narrows the campaign list.
type CampaignFilter struct {
	CampaignID int
	Name       string
	Tags       string
	FolderID   int
}

// ListCampaigns returns campaigns matching the filter.
func (c *Client) ListCampaigns(ctx context.Context, filter CampaignFilter) ([]Campaign, error) {
	q := url.Values{}
	setInt(q, "campaignId", filter.CampaignID)
	setStr(q, "name", filter.Name)
	setStr(q, "tags", filter.Tags)
	setInt(q, "folderId", filter.FolderID)

	var campaigns []Campaign
	if err := c.get(ctx, "campaign", "/api/campaign", q, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// CampaignFields are the writable campaign attributes.
type CampaignFields struct {
	Name     string
	Type     string // "list" or "ad"
	FolderID int
}

// AddCampaign creates a campaign.
func (c *Client) AddCampaign(ctx context.Context, fields CampaignFields) (*Campaign, error) {
	form := url.Values{}
	setStr(form, "name", fields.Name)
	setStr(form, "type", fields.Type)
	setInt(form, "folderId", fields.FolderID)

	var campaign Campaign
	if err := c.postForm(ctx, "campaign", "/api/campaign", form, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// EditCampaign updates a campaign.
func (c *Client) EditCampaign(ctx context.Context, campaignID int, fields CampaignFields) (*Campaign, error) {
	form := url.Values{}
	setStr(form, "name", fields.Name)
	setInt(form, "folderId", fields.FolderID)

	var campaign Campaign
	if err := c.putForm(ctx, "campaign", fmt.Sprintf("/api/campaign/%d", campaignID), form, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// DeleteCampaign removes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, campaignID int) error {
	return c.delete(ctx, "campaign", fmt.Sprintf("/api/campaign/%d", campaignID), nil)
}

// AssignLayoutToCampaign appends a layout to the campaign's rotation.
func (c *Client) AssignLayoutToCampaign(ctx context.Context, campaignID, layoutID, displayOrder int) error {
	form := url.Values{}
	setInt(form, "layoutId", layoutID)
	setInt(form, "displayOrder", displayOrder)
	return c.postForm(ctx, "campaign", fmt.Sprintf("/api/campaign/layout/assign/%d", campaignID), form, nil)
}

// RemoveLayoutFromCampaign removes a layout from the campaign's rotation.
func (c *Client) RemoveLayoutFromCampaign(ctx context.Context, campaignID, layoutID int) error {
	form := url.Values{}
	setInt(form, "layoutId", layoutID)
	return c.postForm(ctx, "campaign", fmt.Sprintf("/api/campaign/layout/unassign/%d", campaignID), form, nil)
}
