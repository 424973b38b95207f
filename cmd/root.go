package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xibo-agent",
	Short: "AI agent for Xibo digital signage",
	Long: `xibo-agent is an AI-powered assistant for the Xibo CMS. It exposes the
CMS REST API as a set of tools an AI agent can call, so you can manage
displays, layouts, campaigns, schedules and the media library from
natural language.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
}
