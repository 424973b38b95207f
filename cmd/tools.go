package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opensignage/xibo-agent/internal/config"
)

var toolsYAML bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available CMS tools",
	Long: `List every tool the agent can call against the CMS. With --yaml the
full definitions (including input schemas) are printed, which is useful
for wiring the tools into another agent framework.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		registry, _, err := newToolRegistry(cfg)
		if err != nil {
			return err
		}

		if toolsYAML {
			out, err := yaml.Marshal(registry.GetDefinitions())
			if err != nil {
				return fmt.Errorf("failed to marshal definitions: %w", err)
			}
			fmt.Print(string(out))
			return nil
		}

		for _, tool := range registry.List() {
			fmt.Printf("%-32s %s\n", tool.Name(), tool.Description())
		}
		fmt.Printf("\n%d tools registered\n", len(registry.List()))
		return nil
	},
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsYAML, "yaml", false, "print full tool definitions as YAML")
	rootCmd.AddCommand(toolsCmd)
}
