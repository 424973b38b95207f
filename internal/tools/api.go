package tools

import (
	"context"
	"encoding/json"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

// apiTool is the canonical CMS tool: a declarative descriptor (name,
// description, input schema) plus one handler performing exactly one CMS
// operation. Every entity tool is an instance of this type, so control flow
// never varies per tool - only the schema and the handler do.
type apiTool struct {
	name        string
	description string
	schema      InputSchema
	run         func(ctx context.Context, input json.RawMessage) (any, error)
}

func (t *apiTool) Name() string        { return t.name }
func (t *apiTool) Description() string { return t.description }

func (t *apiTool) InputSchema() InputSchema {
	if t.schema.Type == "" {
		return InputSchema{Type: "object", Properties: map[string]Property{}}
	}
	return t.schema
}

func (t *apiTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	data, err := t.run(ctx, input)
	if err != nil {
		return failureResult(err), nil
	}
	return successResult(data), nil
}

// RegisterCMSTools registers every CMS entity tool against the given client.
func RegisterCMSTools(registry *Registry, client *xibo.Client) error {
	var all []Tool
	all = append(all, miscTools(client)...)
	all = append(all, displayTools(client)...)
	all = append(all, displayGroupTools(client)...)
	all = append(all, layoutTools(client)...)
	all = append(all, campaignTools(client)...)
	all = append(all, scheduleTools(client)...)
	all = append(all, tagTools(client)...)
	all = append(all, templateTools(client)...)
	all = append(all, userTools(client)...)
	all = append(all, notificationTools(client)...)
	all = append(all, statsTools(client)...)
	all = append(all, libraryTools(client)...)
	all = append(all, playlistTools(client)...)
	all = append(all, datasetTools(client)...)

	for _, tool := range all {
		if err := registry.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// Schema building helpers shared by the entity tool files.

func objectSchema(required []string, props map[string]Property) InputSchema {
	return InputSchema{Type: "object", Properties: props, Required: required}
}

func strProp(desc string) Property {
	return Property{Type: "string", Description: desc}
}

func intProp(desc string) Property {
	return Property{Type: "integer", Description: desc}
}

func boolIntProp(desc string) Property {
	return Property{Type: "integer", Description: desc, Enum: []any{0, 1}}
}

func intArrayProp(desc string) Property {
	return Property{Type: "array", Description: desc, Items: &Property{Type: "integer"}}
}
