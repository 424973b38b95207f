package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/opensignage/xibo-agent/internal/xibo"
)

type stubTool struct {
	name string
}

func (s *stubTool) Name() string             { return s.name }
func (s *stubTool) Description() string      { return "stub" }
func (s *stubTool) InputSchema() InputSchema { return InputSchema{Type: "object"} }
func (s *stubTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	return successResult(statusMessage("ran " + s.name)), nil
}

func TestRegistryRegisterAndList(t *testing.T) {
	registry := NewRegistry()

	for _, name := range []string{"b_tool", "a_tool", "c_tool"} {
		if err := registry.Register(&stubTool{name: name}); err != nil {
			t.Fatalf("Register(%s) failed: %v", name, err)
		}
	}

	if err := registry.Register(&stubTool{name: "a_tool"}); err == nil {
		t.Error("expected duplicate registration to fail")
	}

	list := registry.List()
	if len(list) != 3 {
		t.Fatalf("got %d tools, want 3", len(list))
	}
	for i, want := range []string{"a_tool", "b_tool", "c_tool"} {
		if list[i].Name() != want {
			t.Errorf("list[%d] = %s, want %s", i, list[i].Name(), want)
		}
	}
}

func TestRegistryExecuteUnknown(t *testing.T) {
	registry := NewRegistry()

	result, err := registry.Execute(context.Background(), "missing_tool", nil)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.IsError {
		t.Error("expected IsError for unknown tool")
	}
}

func TestRegisterCMSTools(t *testing.T) {
	registry := NewRegistry()
	client := xibo.New(xibo.Options{BaseURL: "https://cms.example.com"})

	if err := RegisterCMSTools(registry, client); err != nil {
		t.Fatalf("RegisterCMSTools failed: %v", err)
	}

	defs := registry.GetDefinitions()
	if len(defs) < 60 {
		t.Errorf("got %d tool definitions, expected the full CMS set", len(defs))
	}
	for _, def := range defs {
		if def.Name == "" || def.Description == "" {
			t.Errorf("definition %+v missing name or description", def)
		}
		if def.InputSchema.Type != "object" {
			t.Errorf("tool %s schema type = %q, want object", def.Name, def.InputSchema.Type)
		}
		for name, prop := range def.InputSchema.Properties {
			for _, value := range prop.Enum {
				switch prop.Type {
				case "string":
					if _, ok := value.(string); !ok {
						t.Errorf("tool %s property %s: enum value %v (%T) does not match type string", def.Name, name, value, value)
					}
				case "integer":
					if _, ok := value.(int); !ok {
						t.Errorf("tool %s property %s: enum value %v (%T) does not match type integer", def.Name, name, value, value)
					}
				}
			}
		}
	}
}
