package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func displayTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_displays",
			description: "List displays registered with the CMS, with their authorisation and login state.",
			schema: objectSchema(nil, map[string]Property{
				"displayId":      intProp("Filter by display ID"),
				"display":        strProp("Filter by partial display name"),
				"displayGroupId": intProp("Filter by display group ID"),
				"tags":           strProp("Filter by comma separated tags"),
				"clientType":     strProp("Filter by player type, e.g. android or windows"),
				"authorised":     strProp("Filter by authorised state: \"0\" or \"1\""),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayID      int    `json:"displayId"`
					Display        string `json:"display"`
					DisplayGroupID int    `json:"displayGroupId"`
					Tags           string `json:"tags"`
					ClientType     string `json:"clientType"`
					Authorised     string `json:"authorised"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListDisplays(ctx, xibo.DisplayFilter{
					DisplayID:      params.DisplayID,
					Display:        params.Display,
					DisplayGroupID: params.DisplayGroupID,
					Tags:           params.Tags,
					ClientType:     params.ClientType,
					Authorised:     params.Authorised,
				})
			},
		},
		&apiTool{
			name:        "edit_display",
			description: "Update a display's name, description, licence state or default layout.",
			schema: objectSchema([]string{"displayId"}, map[string]Property{
				"displayId":       intProp("ID of the display to edit"),
				"display":         strProp("New display name"),
				"description":     strProp("New description"),
				"licensed":        boolIntProp("Licence the display (1) or revoke (0)"),
				"defaultLayoutId": intProp("Layout shown when nothing is scheduled"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayID       int    `json:"displayId"`
					Display         string `json:"display"`
					Description     string `json:"description"`
					Licensed        int    `json:"licensed"`
					DefaultLayoutID int    `json:"defaultLayoutId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditDisplay(ctx, params.DisplayID, xibo.DisplayEdit{
					Display:         params.Display,
					Description:     params.Description,
					Licensed:        params.Licensed,
					DefaultLayoutID: params.DefaultLayoutID,
				})
			},
		},
		&apiTool{
			name:        "delete_display",
			description: "Remove a display from the CMS. The player must re-register to come back.",
			schema: objectSchema([]string{"displayId"}, map[string]Property{
				"displayId": intProp("ID of the display to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayID int `json:"displayId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteDisplay(ctx, params.DisplayID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("display %d deleted", params.DisplayID)), nil
			},
		},
		&apiTool{
			name:        "authorise_display",
			description: "Toggle a display's authorised state so it may (or may no longer) fetch content.",
			schema: objectSchema([]string{"displayId"}, map[string]Property{
				"displayId": intProp("ID of the display to toggle"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayID int `json:"displayId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.AuthoriseDisplay(ctx, params.DisplayID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("display %d authorisation toggled", params.DisplayID)), nil
			},
		},
		&apiTool{
			name:        "set_display_default_layout",
			description: "Set the layout a display shows when nothing is scheduled.",
			schema: objectSchema([]string{"displayId", "layoutId"}, map[string]Property{
				"displayId": intProp("ID of the display"),
				"layoutId":  intProp("ID of the layout to use as default"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayID int `json:"displayId"`
					LayoutID  int `json:"layoutId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.SetDefaultLayout(ctx, params.DisplayID, params.LayoutID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("display %d default layout set to %d", params.DisplayID, params.LayoutID)), nil
			},
		},
		&apiTool{
			name:        "wake_display",
			description: "Send a wake-on-LAN packet to a display.",
			schema: objectSchema([]string{"displayId"}, map[string]Property{
				"displayId": intProp("ID of the display to wake"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayID int `json:"displayId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.WakeOnLan(ctx, params.DisplayID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("wake-on-LAN sent to display %d", params.DisplayID)), nil
			},
		},
	}
}
