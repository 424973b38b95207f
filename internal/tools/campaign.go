package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func campaignTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_campaigns",
			description: "List campaigns, optionally filtered by id, name or tags.",
			schema: objectSchema(nil, map[string]Property{
				"campaignId": intProp("Filter by campaign ID"),
				"name":       strProp("Filter by partial campaign name"),
				"tags":       strProp("Filter by comma separated tags"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					CampaignID int    `json:"campaignId"`
					Name       string `json:"name"`
					Tags       string `json:"tags"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListCampaigns(ctx, xibo.CampaignFilter{
					CampaignID: params.CampaignID,
					Name:       params.Name,
					Tags:       params.Tags,
				})
			},
		},
		&apiTool{
			name:        "add_campaign",
			description: "Create a campaign - an ordered list of layouts scheduled as one unit.",
			schema: objectSchema([]string{"name"}, map[string]Property{
				"name":     strProp("Name for the new campaign"),
				"type":     Property{Type: "string", Description: "Campaign type", Enum: []any{"list", "ad"}},
				"folderId": intProp("Folder to create the campaign in"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Name     string `json:"name"`
					Type     string `json:"type"`
					FolderID int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddCampaign(ctx, xibo.CampaignFields{
					Name:     params.Name,
					Type:     params.Type,
					FolderID: params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "edit_campaign",
			description: "Rename a campaign or move it to a different folder.",
			schema: objectSchema([]string{"campaignId"}, map[string]Property{
				"campaignId": intProp("ID of the campaign to edit"),
				"name":       strProp("New campaign name"),
				"folderId":   intProp("Move the campaign into this folder"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					CampaignID int    `json:"campaignId"`
					Name       string `json:"name"`
					FolderID   int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditCampaign(ctx, params.CampaignID, xibo.CampaignFields{
					Name:     params.Name,
					FolderID: params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "delete_campaign",
			description: "Delete a campaign. Its layouts are not deleted.",
			schema: objectSchema([]string{"campaignId"}, map[string]Property{
				"campaignId": intProp("ID of the campaign to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					CampaignID int `json:"campaignId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteCampaign(ctx, params.CampaignID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("campaign %d deleted", params.CampaignID)), nil
			},
		},
		&apiTool{
			name:        "assign_layout_to_campaign",
			description: "Append a layout to a campaign's rotation.",
			schema: objectSchema([]string{"campaignId", "layoutId"}, map[string]Property{
				"campaignId":   intProp("ID of the campaign"),
				"layoutId":     intProp("ID of the layout to assign"),
				"displayOrder": intProp("Position in the rotation, 1-based"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					CampaignID   int `json:"campaignId"`
					LayoutID     int `json:"layoutId"`
					DisplayOrder int `json:"displayOrder"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.AssignLayoutToCampaign(ctx, params.CampaignID, params.LayoutID, params.DisplayOrder); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("layout %d assigned to campaign %d", params.LayoutID, params.CampaignID)), nil
			},
		},
		&apiTool{
			name:        "remove_layout_from_campaign",
			description: "Remove a layout from a campaign's rotation.",
			schema: objectSchema([]string{"campaignId", "layoutId"}, map[string]Property{
				"campaignId": intProp("ID of the campaign"),
				"layoutId":   intProp("ID of the layout to remove"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					CampaignID int `json:"campaignId"`
					LayoutID   int `json:"layoutId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.RemoveLayoutFromCampaign(ctx, params.CampaignID, params.LayoutID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("layout %d removed from campaign %d", params.LayoutID, params.CampaignID)), nil
			},
		},
	}
}
