package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func displayGroupTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_display_groups",
			description: "List display groups, optionally filtered by id, name or member display.",
			schema: objectSchema(nil, map[string]Property{
				"displayGroupId": intProp("Filter by display group ID"),
				"displayGroup":   strProp("Filter by partial group name"),
				"displayId":      intProp("Filter to groups containing this display"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayGroupID int    `json:"displayGroupId"`
					DisplayGroup   string `json:"displayGroup"`
					DisplayID      int    `json:"displayId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListDisplayGroups(ctx, xibo.DisplayGroupFilter{
					DisplayGroupID: params.DisplayGroupID,
					DisplayGroup:   params.DisplayGroup,
					DisplayID:      params.DisplayID,
				})
			},
		},
		&apiTool{
			name:        "add_display_group",
			description: "Create a display group. Dynamic groups populate themselves from a criteria string.",
			schema: objectSchema([]string{"displayGroup"}, map[string]Property{
				"displayGroup":    strProp("Name for the new group"),
				"description":     strProp("Description"),
				"isDynamic":       boolIntProp("Make the group dynamic (1) or static (0)"),
				"dynamicCriteria": strProp("Name filter used to populate a dynamic group"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayGroup    string `json:"displayGroup"`
					Description     string `json:"description"`
					IsDynamic       int    `json:"isDynamic"`
					DynamicCriteria string `json:"dynamicCriteria"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddDisplayGroup(ctx, xibo.DisplayGroupFields{
					DisplayGroup:    params.DisplayGroup,
					Description:     params.Description,
					IsDynamic:       params.IsDynamic,
					DynamicCriteria: params.DynamicCriteria,
				})
			},
		},
		&apiTool{
			name:        "edit_display_group",
			description: "Update a display group's name, description or dynamic criteria.",
			schema: objectSchema([]string{"displayGroupId"}, map[string]Property{
				"displayGroupId":  intProp("ID of the group to edit"),
				"displayGroup":    strProp("New group name"),
				"description":     strProp("New description"),
				"isDynamic":       boolIntProp("Make the group dynamic (1) or static (0)"),
				"dynamicCriteria": strProp("Name filter used to populate a dynamic group"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayGroupID  int    `json:"displayGroupId"`
					DisplayGroup    string `json:"displayGroup"`
					Description     string `json:"description"`
					IsDynamic       int    `json:"isDynamic"`
					DynamicCriteria string `json:"dynamicCriteria"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditDisplayGroup(ctx, params.DisplayGroupID, xibo.DisplayGroupFields{
					DisplayGroup:    params.DisplayGroup,
					Description:     params.Description,
					IsDynamic:       params.IsDynamic,
					DynamicCriteria: params.DynamicCriteria,
				})
			},
		},
		&apiTool{
			name:        "delete_display_group",
			description: "Delete a display group.",
			schema: objectSchema([]string{"displayGroupId"}, map[string]Property{
				"displayGroupId": intProp("ID of the group to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayGroupID int `json:"displayGroupId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteDisplayGroup(ctx, params.DisplayGroupID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("display group %d deleted", params.DisplayGroupID)), nil
			},
		},
		&apiTool{
			name:        "assign_displays_to_group",
			description: "Add one or more displays to a static display group.",
			schema: objectSchema([]string{"displayGroupId", "displayIds"}, map[string]Property{
				"displayGroupId": intProp("ID of the target group"),
				"displayIds":     intArrayProp("IDs of the displays to assign"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayGroupID int   `json:"displayGroupId"`
					DisplayIDs     []int `json:"displayIds"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.AssignDisplays(ctx, params.DisplayGroupID, params.DisplayIDs); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("%d display(s) assigned to group %d", len(params.DisplayIDs), params.DisplayGroupID)), nil
			},
		},
		&apiTool{
			name:        "unassign_displays_from_group",
			description: "Remove one or more displays from a static display group.",
			schema: objectSchema([]string{"displayGroupId", "displayIds"}, map[string]Property{
				"displayGroupId": intProp("ID of the group"),
				"displayIds":     intArrayProp("IDs of the displays to remove"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					DisplayGroupID int   `json:"displayGroupId"`
					DisplayIDs     []int `json:"displayIds"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.UnassignDisplays(ctx, params.DisplayGroupID, params.DisplayIDs); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("%d display(s) removed from group %d", len(params.DisplayIDs), params.DisplayGroupID)), nil
			},
		},
	}
}
