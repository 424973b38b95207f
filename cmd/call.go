package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opensignage/xibo-agent/internal/config"
	"github.com/opensignage/xibo-agent/internal/stdin"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-input]",
	Short: "Call a single CMS tool directly",
	Long: `Call one tool by name without going through the AI agent. Input is a
JSON object matching the tool's schema, passed as an argument or piped
on stdin.

Examples:
  xibo-agent call list_displays
  xibo-agent call list_layouts '{"layout": "welcome"}'
  echo '{"tagId": 3}' | xibo-agent call delete_tag`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		registry, _, err := newToolRegistry(cfg)
		if err != nil {
			return err
		}

		name := args[0]
		if _, ok := registry.Get(name); !ok {
			return fmt.Errorf("unknown tool %q (run: xibo-agent tools)", name)
		}

		input := "{}"
		if len(args) == 2 {
			input = args[1]
		} else if stdin.IsPiped() {
			piped, err := stdin.Read()
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			if piped != "" {
				input = piped
			}
		}

		result, err := registry.Execute(cmd.Context(), name, json.RawMessage(input))
		if err != nil {
			return err
		}

		// Pretty-print the response envelope
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, []byte(result.Output), "", "  "); err != nil {
			fmt.Println(result.Output)
		} else {
			fmt.Println(pretty.String())
		}

		if result.IsError {
			return fmt.Errorf("tool reported failure")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
}
