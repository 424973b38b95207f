package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

// miscTools covers the small singleton endpoints: CMS info, resolutions,
// player commands, dayparts and interactive actions.
func miscTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "get_cms_info",
			description: "Return the CMS version. Useful as a connectivity and credentials check.",
			schema:      objectSchema(nil, nil),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				return c.About(ctx)
			},
		},
		&apiTool{
			name:        "get_cms_time",
			description: "Return the CMS server time.",
			schema:      objectSchema(nil, nil),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				return c.Clock(ctx)
			},
		},
		&apiTool{
			name:        "list_resolutions",
			description: "List the design resolutions layouts can target.",
			schema:      objectSchema(nil, nil),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				return c.ListResolutions(ctx)
			},
		},
		&apiTool{
			name:        "add_resolution",
			description: "Create a design resolution.",
			schema: objectSchema([]string{"resolution", "width", "height"}, map[string]Property{
				"resolution": strProp("Name, e.g. 4k Portrait"),
				"width":      intProp("Width in pixels"),
				"height":     intProp("Height in pixels"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Resolution string `json:"resolution"`
					Width      int    `json:"width"`
					Height     int    `json:"height"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddResolution(ctx, params.Resolution, params.Width, params.Height)
			},
		},
		&apiTool{
			name:        "delete_resolution",
			description: "Delete a design resolution.",
			schema: objectSchema([]string{"resolutionId"}, map[string]Property{
				"resolutionId": intProp("ID of the resolution to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					ResolutionID int `json:"resolutionId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteResolution(ctx, params.ResolutionID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("resolution %d deleted", params.ResolutionID)), nil
			},
		},
		&apiTool{
			name:        "list_commands",
			description: "List the shell commands registered for players.",
			schema:      objectSchema(nil, nil),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				return c.ListCommands(ctx)
			},
		},
		&apiTool{
			name:        "add_command",
			description: "Register a shell command that can be scheduled to players.",
			schema: objectSchema([]string{"command", "code"}, map[string]Property{
				"command":     strProp("Human readable command name"),
				"code":        strProp("Unique code players match the command by"),
				"description": strProp("Description"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Command     string `json:"command"`
					Code        string `json:"code"`
					Description string `json:"description"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddCommand(ctx, params.Command, params.Code, params.Description)
			},
		},
		&apiTool{
			name:        "delete_command",
			description: "Delete a player shell command.",
			schema: objectSchema([]string{"commandId"}, map[string]Property{
				"commandId": intProp("ID of the command to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					CommandID int `json:"commandId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteCommand(ctx, params.CommandID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("command %d deleted", params.CommandID)), nil
			},
		},
		&apiTool{
			name:        "list_dayparts",
			description: "List the named scheduling windows, e.g. Trading Hours.",
			schema:      objectSchema(nil, nil),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				return c.ListDayparts(ctx)
			},
		},
		&apiTool{
			name:        "add_daypart",
			description: "Create a named scheduling window.",
			schema: objectSchema([]string{"name", "startTime", "endTime"}, map[string]Property{
				"name":      strProp("Name for the window, e.g. Trading Hours"),
				"startTime": strProp("Daily start, format 15:04:05"),
				"endTime":   strProp("Daily end, format 15:04:05"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Name      string `json:"name"`
					StartTime string `json:"startTime"`
					EndTime   string `json:"endTime"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddDaypart(ctx, params.Name, params.StartTime, params.EndTime)
			},
		},
		&apiTool{
			name:        "delete_daypart",
			description: "Delete a named scheduling window.",
			schema: objectSchema([]string{"dayPartId"}, map[string]Property{
				"dayPartId": intProp("ID of the daypart to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DayPartID int `json:"dayPartId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteDaypart(ctx, params.DayPartID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("daypart %d deleted", params.DayPartID)), nil
			},
		},
		&apiTool{
			name:        "list_actions",
			description: "List interactive-control actions attached to layouts and widgets.",
			schema: objectSchema(nil, map[string]Property{
				"actionId": intProp("Filter by action ID"),
				"sourceId": intProp("Filter by the layout, region or widget the action hangs off"),
				"source":   strProp("Filter by source type: layout, region or widget"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					ActionID int    `json:"actionId"`
					SourceID int    `json:"sourceId"`
					Source   string `json:"source"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListActions(ctx, xibo.ActionFilter{
					ActionID: params.ActionID,
					SourceID: params.SourceID,
					Source:   params.Source,
				})
			},
		},
	}
}
