package tools

import (
	"context"
	"encoding/json"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

func templateTools(c *xibo.Client) []Tool {
	return []Tool{
		&apiTool{
			name:        "list_templates",
			description: "List layout templates, optionally filtered by name or tags.",
			schema: objectSchema(nil, map[string]Property{
				"template": strProp("Filter by partial template name"),
				"tags":     strProp("Filter by comma separated tags"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					Template string `json:"template"`
					Tags     string `json:"tags"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.ListTemplates(ctx, xibo.TemplateFilter{
					Template: params.Template,
					Tags:     params.Tags,
				})
			},
		},
		&apiTool{
			name:        "save_layout_as_template",
			description: "Save an existing layout as a reusable template.",
			schema: objectSchema([]string{"layoutId", "name"}, map[string]Property{
				"layoutId":       intProp("ID of the layout to save"),
				"name":           strProp("Name for the new template"),
				"description":    strProp("Description"),
				"includeWidgets": boolIntProp("Copy the layout's widgets into the template (1) or structure only (0)"),
			}),
			run: func(ctx context.Context, input json.RawMessage) (any, error) {
				var params struct {
					LayoutID       int    `json:"layoutId"`
					Name           string `json:"name"`
					Description    string `json:"description"`
					IncludeWidgets int    `json:"includeWidgets"`
				}
				if err := parseInput(input, &params); err != nil {
					return nil, err
				}
				return c.AddTemplateFromLayout(ctx, params.LayoutID, params.Name, params.Description, params.IncludeWidgets)
			},
		},
	}
}
