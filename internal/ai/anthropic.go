package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/opensignage/xibo-agent/internal/tools"
)

// DefaultAPITimeout is the default timeout for single-turn API calls
const DefaultAPITimeout = 30 * time.Second

// AgentAPITimeout is the timeout for agentic API calls (longer due to multi-turn)
const AgentAPITimeout = 5 * time.Minute

// DefaultMaxIterations is the default max tool-use iterations
const DefaultMaxIterations = 10

// AnthropicProvider implements the Provider interface using Anthropic's Claude API
type AnthropicProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

// ProviderConfig holds configuration for creating an Anthropic provider
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional custom base URL
}

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	return NewAnthropicProviderWithConfig(ProviderConfig{
		APIKey: apiKey,
		Model:  model,
	})
}

// NewAnthropicProviderWithConfig creates a new Anthropic provider with full configuration
func NewAnthropicProviderWithConfig(cfg ProviderConfig) *AnthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return &AnthropicProvider{
		client: client,
		model:  anthropic.Model(cfg.Model),
	}
}

// SetModel updates the model used for API calls
func (p *AnthropicProvider) SetModel(model string) {
	p.model = anthropic.Model(model)
}

const chatSystemPrompt = `You are a digital signage assistant for a Xibo CMS.
The user is asking a question or wants information about digital signage concepts:
displays, layouts, campaigns, schedules, playlists, the media library and so on.

Provide a helpful, concise response. Keep responses brief and terminal-friendly.
If the user asks you to actually change something in the CMS, suggest they phrase
it as a task so the agent can use its CMS tools.`

// Chat provides a conversational response without tool use
func (p *AnthropicProvider) Chat(ctx context.Context, query string, chatCtx ChatContext) (*ChatResult, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultAPITimeout)
	defer cancel()

	messages := historyMessages(chatCtx)
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(query)))

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: int64(1024),
		System: []anthropic.TextBlockParam{
			{Text: chatSystemPrompt},
		},
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate chat response: %w", err)
	}

	var response string
	for _, block := range message.Content {
		if block.Type == "text" {
			response = strings.TrimSpace(block.Text)
			break
		}
	}

	return &ChatResult{
		Response: response,
	}, nil
}

// RunAgent executes an agentic task with tool use
func (p *AnthropicProvider) RunAgent(ctx context.Context, query string, chatCtx ChatContext, cfg AgentConfig) (*AgentResult, error) {
	// Set defaults
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}

	// Build system prompt with dynamic tool list
	var toolList strings.Builder
	if cfg.Registry != nil {
		for _, tool := range cfg.Registry.List() {
			fmt.Fprintf(&toolList, "- %s: %s\n", tool.Name(), tool.Description())
		}
	}

	systemPrompt := fmt.Sprintf(`You are a digital signage agent with tools for managing a Xibo CMS:
displays, display groups, layouts, campaigns, schedules, the media library,
playlists, datasets, users and more.

You MUST use the available tools to complete tasks. Do not describe what the user
should click in the CMS - perform the operation directly using tools.

Available tools:
%s
Every tool returns a JSON envelope with a "success" flag. When success is false,
read the "error" category and "message" before deciding how to proceed: a
"configuration" or "authentication" failure will not resolve by retrying, while an
"api" failure usually means the request itself needs adjusting.

Typical workflows chain several tools: look entities up by name first to find
their IDs, then act on those IDs. Confirm destructive operations (deletes,
unassigns) against the right ID by listing first.`, toolList.String())

	// Build initial messages from conversation history
	messages := historyMessages(chatCtx)
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(query)))

	// Build tool definitions from registry
	var apiTools []anthropic.ToolUnionParam
	if cfg.Registry != nil {
		for _, tool := range cfg.Registry.List() {
			schema := tool.InputSchema()
			inputSchema := anthropic.ToolInputSchemaParam{
				Properties: schemaProperties(schema),
				Required:   schema.Required,
			}

			toolParam := anthropic.ToolParam{
				Name:        tool.Name(),
				Description: anthropic.String(tool.Description()),
				InputSchema: inputSchema,
			}
			apiTools = append(apiTools, anthropic.ToolUnionParam{OfTool: &toolParam})
		}
	}

	result := &AgentResult{
		ToolCalls: []ToolCall{},
	}

	// Agentic loop
	for iteration := 0; iteration < cfg.MaxIterations; iteration++ {
		result.Iterations = iteration + 1

		// Use OfAny on first iteration to force tool use
		// Use OfAuto on subsequent iterations to allow completion
		var toolChoice anthropic.ToolChoiceUnionParam
		if iteration == 0 {
			toolChoice = anthropic.ToolChoiceUnionParam{
				OfAny: &anthropic.ToolChoiceAnyParam{},
			}
		} else {
			toolChoice = anthropic.ToolChoiceUnionParam{
				OfAuto: &anthropic.ToolChoiceAutoParam{},
			}
		}

		// Make API call
		message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     p.model,
			MaxTokens: int64(4096),
			System: []anthropic.TextBlockParam{
				{Text: systemPrompt},
			},
			Messages:   messages,
			Tools:      apiTools,
			ToolChoice: toolChoice,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to run agent: %w", err)
		}

		// Process response blocks
		var toolResults []anthropic.ContentBlockParamUnion
		var responseText strings.Builder

		for _, block := range message.Content {
			switch block.Type {
			case "text":
				responseText.WriteString(block.Text)

			case "tool_use":
				if block.Name == "" {
					continue
				}

				toolCall := ToolCall{
					ID:   block.ID,
					Name: block.Name,
				}
				if block.Input != nil {
					toolCall.Input = block.Input
				}

				// Execute tool if registry available
				if cfg.Registry != nil {
					toolResult := cfg.Registry.ExecuteCall(ctx, tools.Call{
						ID:    block.ID,
						Name:  block.Name,
						Input: toolCall.Input,
					})
					toolCall.Output = toolResult.Content
					toolCall.IsError = toolResult.IsError

					// Build tool result for next API call
					toolResults = append(toolResults, anthropic.NewToolResultBlock(
						block.ID,
						toolResult.Content,
						toolResult.IsError,
					))
				}

				result.ToolCalls = append(result.ToolCalls, toolCall)

				// Call callback if provided
				if cfg.OnToolCall != nil {
					cfg.OnToolCall(toolCall)
				}
			}
		}

		// If no tool calls, we're done
		if len(toolResults) == 0 {
			result.Response = strings.TrimSpace(responseText.String())
			return result, nil
		}

		// Add assistant message and tool results to continue conversation
		messages = append(messages, message.ToParam())
		messages = append(messages, anthropic.NewUserMessage(toolResults...))
	}

	return result, fmt.Errorf("max iterations (%d) reached", cfg.MaxIterations)
}

func historyMessages(chatCtx ChatContext) []anthropic.MessageParam {
	var messages []anthropic.MessageParam
	for _, msg := range chatCtx.History {
		if msg.Role == "user" {
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		} else {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return messages
}

// schemaProperties converts a tool's input schema to the wire format,
// including nested item types for array parameters.
func schemaProperties(schema tools.InputSchema) map[string]any {
	properties := make(map[string]any)
	for name, prop := range schema.Properties {
		propDef := map[string]any{
			"type":        prop.Type,
			"description": prop.Description,
		}
		if len(prop.Enum) > 0 {
			propDef["enum"] = prop.Enum
		}
		if prop.Items != nil {
			propDef["items"] = map[string]any{"type": prop.Items.Type}
		}
		properties[name] = propDef
	}
	return properties
}
