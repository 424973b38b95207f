package ai

import (
	"context"
	"encoding/json"

	"github.com/opensignage/xibo-agent/internal/tools"
)

// ChatResult holds the response for plain chat turns
type ChatResult struct {
	Response string
}

// AgentResult holds the result of an agentic task
type AgentResult struct {
	Response   string     // Final response text
	ToolCalls  []ToolCall // All tool calls made during execution
	Iterations int        // Number of API round-trips
}

// ToolCall represents a single tool invocation during agentic execution
type ToolCall struct {
	ID      string          // Tool use ID from the API
	Name    string          // Tool name
	Input   json.RawMessage // Tool input parameters
	Output  string          // Tool execution output
	IsError bool            // Whether the tool execution failed
}

// AgentConfig holds configuration for agentic execution
type AgentConfig struct {
	MaxIterations int             // Maximum number of tool-use iterations (default 10)
	Registry      *tools.Registry // Tool registry to use
	OnToolCall    func(ToolCall)  // Optional callback for each tool call
}

// ConversationMessage represents a single message in a conversation
type ConversationMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// ChatContext holds conversation history for multi-turn chats
type ChatContext struct {
	History []ConversationMessage
}

// Provider defines the interface for AI providers
type Provider interface {
	// Chat provides a conversational response without tool use
	Chat(ctx context.Context, query string, chatCtx ChatContext) (*ChatResult, error)

	// RunAgent executes an agentic task with tool use
	RunAgent(ctx context.Context, query string, chatCtx ChatContext, cfg AgentConfig) (*AgentResult, error)

	// SetModel updates the model used for API calls
	SetModel(model string)
}
