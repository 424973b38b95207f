package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Registry manages the collection of available tools
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry
func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}

	r.tools[name] = tool
	return nil
}

// Get retrieves a tool by name
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// GetDefinitions returns tool definitions for the AI API
func (r *Registry) GetDefinitions() []Definition {
	tools := r.List()
	defs := make([]Definition, 0, len(tools))
	for _, tool := range tools {
		defs = append(defs, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}
	return defs
}

// Execute runs a tool by name with the given input
func (r *Registry) Execute(ctx context.Context, name string, input json.RawMessage) (*Result, error) {
	tool, ok := r.Get(name)
	if !ok {
		return &Result{
			Output:  fmt.Sprintf("unknown tool: %s", name),
			IsError: true,
		}, nil
	}

	return tool.Execute(ctx, input)
}

// ExecuteCall executes a tool call and returns the result
func (r *Registry) ExecuteCall(ctx context.Context, call Call) CallResult {
	result, err := r.Execute(ctx, call.Name, call.Input)
	if err != nil {
		return CallResult{
			CallID:  call.ID,
			Content: fmt.Sprintf("error executing tool: %v", err),
			IsError: true,
		}
	}

	return CallResult{
		CallID:  call.ID,
		Content: result.Output,
		IsError: result.IsError,
	}
}
