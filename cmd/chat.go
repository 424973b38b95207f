package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/opensignage/xibo-agent/internal/ai"
	"github.com/opensignage/xibo-agent/internal/config"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	toolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

var chatMaxIterations int

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session with the signage agent",
	Long: `Start a conversational session. Each message you type becomes a task for
the agent, which uses its CMS tools to carry it out and reports back.

Type "exit" or press Ctrl+D to leave, "new" to reset the conversation.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().IntVar(&chatMaxIterations, "max-iterations", ai.DefaultMaxIterations, "maximum tool-use round trips per task")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured; run xibo-agent init or set ANTHROPIC_API_KEY")
	}

	registry, _, err := newToolRegistry(cfg)
	if err != nil {
		return err
	}

	provider := ai.NewAnthropicProvider(cfg.APIKey, cfg.Model)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(100),
	)

	sessionID := uuid.New().String()
	var history []ai.ConversationMessage

	fmt.Println(promptStyle.Render("xibo-agent") + " " + mutedStyle.Render("digital signage assistant"))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("session %s | model %s | %d tools", sessionID[:8], cfg.Model, len(registry.List()))))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("> "))
		line, err := reader.ReadString('\n')
		if err != nil {
			// Ctrl+D
			fmt.Println()
			return nil
		}

		query := strings.TrimSpace(line)
		switch query {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "new":
			history = nil
			sessionID = uuid.New().String()
			fmt.Println(mutedStyle.Render("conversation reset, session " + sessionID[:8]))
			continue
		}

		agentCfg := ai.AgentConfig{
			MaxIterations: chatMaxIterations,
			Registry:      registry,
			OnToolCall: func(call ai.ToolCall) {
				line := fmt.Sprintf("  %s %s", toolStyle.Render(call.Name), string(call.Input))
				fmt.Println(line)
				if call.IsError {
					fmt.Println(errorStyle.Render("    failed: ") + mutedStyle.Render(truncateOutput(call.Output)))
				}
			},
		}

		result, err := provider.RunAgent(cmd.Context(), query, ai.ChatContext{History: history}, agentCfg)
		if err != nil {
			fmt.Println(errorStyle.Render("error: ") + err.Error())
			continue
		}

		if result.Response != "" {
			if renderer == nil {
				fmt.Println(result.Response)
			} else if rendered, rerr := renderer.Render(result.Response); rerr != nil {
				fmt.Println(result.Response)
			} else {
				fmt.Print(rendered)
			}
		}
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%d iteration(s), %d tool call(s)", result.Iterations, len(result.ToolCalls))))
		fmt.Println()

		history = append(history,
			ai.ConversationMessage{Role: "user", Content: query},
			ai.ConversationMessage{Role: "assistant", Content: result.Response},
		)
	}
}

func truncateOutput(output string) string {
	if len(output) > 300 {
		return output[:300] + "..."
	}
	return output
}
