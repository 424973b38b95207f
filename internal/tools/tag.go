package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func tagTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_tags",
			description: "List tags defined in the CMS, optionally filtered by id or name.",
			schema: objectSchema(nil, map[string]Property{
				"tagId":    intProp("Filter by tag ID"),
				"tag":      strProp("Filter by partial tag name"),
				"exactTag": strProp("Filter by exact tag name"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					TagID    int    `json:"tagId"`
					Tag      string `json:"tag"`
					ExactTag string `json:"exactTag"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListTags(ctx, xibo.TagFilter{
					TagID:    params.TagID,
					Tag:      params.Tag,
					ExactTag: params.ExactTag,
				})
			},
		},
		&apiTool{
			name:        "add_tag",
			description: "Create a new tag in the CMS.",
			schema: objectSchema([]string{"name"}, map[string]Property{
				"name":       strProp("The tag name"),
				"isRequired": boolIntProp("Flag the tag as required (1) or not (0)"),
				"options":    strProp("Comma separated list of allowed values for this tag"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Name       string `json:"name"`
					IsRequired int    `json:"isRequired"`
					Options    string `json:"options"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddTag(ctx, xibo.TagFields{
					Name:       params.Name,
					IsRequired: params.IsRequired,
					Options:    params.Options,
				})
			},
		},
		&apiTool{
			name:        "edit_tag",
			description: "Update an existing tag.",
			schema: objectSchema([]string{"tagId", "name"}, map[string]Property{
				"tagId":      intProp("ID of the tag to edit"),
				"name":       strProp("The new tag name"),
				"isRequired": boolIntProp("Flag the tag as required (1) or not (0)"),
				"options":    strProp("Comma separated list of allowed values for this tag"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					TagID      int    `json:"tagId"`
					Name       string `json:"name"`
					IsRequired int    `json:"isRequired"`
					Options    string `json:"options"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.EditTag(ctx, params.TagID, xibo.TagFields{
					Name:       params.Name,
					IsRequired: params.IsRequired,
					Options:    params.Options,
				})
			},
		},
		&apiTool{
			name:        "delete_tag",
			description: "Delete a tag from the CMS.",
			schema: objectSchema([]string{"tagId"}, map[string]Property{
				"tagId": intProp("ID of the tag to delete"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					TagID int `json:"tagId"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				if err := c.DeleteTag(ctx, params.TagID); err != nil {
					return nil, err
				}
				return statusMessage(fmt.Sprintf("tag %d deleted", params.TagID)), nil
			},
		},
	}
}
