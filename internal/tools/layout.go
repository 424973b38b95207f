package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func layoutTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_layouts",
			description: "List layouts, optionally filtered by id, name, tags or retired state.",
			schema: objectSchema(nil, map[string]Property{
				"layoutId": intProp("Filter by layout ID"),
				"layout":   strProp("Filter by partial layout name"),
				"tags":     strProp("Filter by comma separated tags"),
				"retired":  strProp("Filter by retired state: \"0\" or \"1\""),
				"folderId": intProp("Filter by folder ID"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					LayoutID int    `json:"layoutId"`
					Layout   string `json:"layout"`
					Tags     string `json:"tags"`
					Retired  string `json:"retired"`
					FolderID int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListLayouts(ctx, xibo.LayoutFilter{
					LayoutID: params.LayoutID,
					Layout:   params.Layout,
					Tags:     params.Tags,
					Retired:  params.Retired,
					FolderID: params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "add_layout",
			description: "Create a layout, optionally copying an existing layout or template.",
			schema: objectSchema([]string{"name"}, map[string]Property{
				"name":         strProp("Name for the new layout"),
				"description":  strProp("Description"),
				"layoutId":     intProp("Source layout or template to copy from"),
				"resolutionId": intProp("Design resolution for a blank layout"),
				"folderId":     intProp("Folder to create the layout in"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Name         string `json:"name"`
					Description  string `json:"description"`
					LayoutID     int    `json:"layoutId"`
					ResolutionID int    `json:"resolutionId"`
					FolderID     int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddLayout(ctx, xibo.LayoutFields{
					Name:         params.Name,
					Description:  params.Description,
					LayoutID:     params.LayoutID,
					ResolutionID: params.ResolutionID,
					FolderID:     params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "edit_layout",
			description: "Update a layout's name or description. The layout must be checked out as a draft first.",
			schema: objectSchema([]string{"layoutId"}, map[string]Property{
				"layoutId":    intProp("ID of the layout to edit"),
				"name":        strProp("New layout name"),
				"description": strProp("New description"),
				"folderId":    intProp("Move the layout into this folder"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					LayoutID    int    `json:"layoutId"`
					Name        string `json:"name"`
					Description string `json:"description"`
					FolderID    int    `json:"folderId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditLayout(ctx, params.LayoutID, xibo.LayoutFields{
					Name:        params.Name,
					Description: params.Description,
					FolderID:    params.FolderID,
				})
			},
		},
		&apiTool{
			name:        "delete_layout",
			description: "Delete a layout from the CMS.",
			schema: objectSchema([]string{"layoutId"}, map[string]Property{
				"layoutId": intProp("ID of the layout to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					LayoutID int `json:"layoutId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteLayout(ctx, params.LayoutID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("layout %d deleted", params.LayoutID)), nil
			},
		},
		&apiTool{
			name:        "retire_layout",
			description: "Retire a layout so it can no longer be scheduled.",
			schema: objectSchema([]string{"layoutId"}, map[string]Property{
				"layoutId": intProp("ID of the layout to retire"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					LayoutID int `json:"layoutId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.RetireLayout(ctx, params.LayoutID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("layout %d retired", params.LayoutID)), nil
			},
		},
		&apiTool{
			name:        "checkout_layout",
			description: "Check out a published layout, creating an editable draft.",
			schema: objectSchema([]string{"layoutId"}, map[string]Property{
				"layoutId": intProp("ID of the layout to check out"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					LayoutID int `json:"layoutId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.CheckoutLayout(ctx, params.LayoutID)
			},
		},
		&apiTool{
			name:        "publish_layout",
			description: "Publish a layout's draft, making it live.",
			schema: objectSchema([]string{"layoutId"}, map[string]Property{
				"layoutId": intProp("ID of the layout to publish"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					LayoutID int `json:"layoutId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.PublishLayout(ctx, params.LayoutID)
			},
		},
	}
}
