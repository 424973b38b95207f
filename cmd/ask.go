package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opensignage/xibo-agent/internal/ai"
	"github.com/opensignage/xibo-agent/internal/config"
	"github.com/opensignage/xibo-agent/internal/stdin"
)

var askVerbose bool

var askCmd = &cobra.Command{
	Use:   "ask <task...>",
	Short: "Run a single task through the agent",
	Long: `Run one task non-interactively and print the agent's answer. Extra
context (a report, a list of names) can be piped on stdin.

Examples:
  xibo-agent ask "how many displays are offline?"
  cat names.txt | xibo-agent ask "create a tag for each name in this list"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		query := strings.Join(args, " ")
		if stdin.IsPiped() {
			piped, err := stdin.Read()
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			piped = stdin.Truncate(piped, stdin.MaxInputSize)
			if piped != "" {
				query = fmt.Sprintf("%s\n\nInput:\n%s", query, piped)
			}
		}

		provider := ai.NewAnthropicProvider(cfg.APIKey, cfg.Model)

		agentCfg := ai.AgentConfig{
			Registry: registry,
		}
		if askVerbose {
			agentCfg.OnToolCall = func(call ai.ToolCall) {
				fmt.Printf("  %s %s\n", call.Name, string(call.Input))
			}
		}

		result, err := provider.RunAgent(cmd.Context(), query, ai.ChatContext{}, agentCfg)
		if err != nil {
			return err
		}

		fmt.Println(result.Response)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "print tool calls as they happen")
	rootCmd.AddCommand(askCmd)
}
