package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opensignage/xibo-agent/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize xibo-agent configuration",
	Long:  `Interactive setup wizard to configure the CMS connection and AI provider.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Welcome to xibo-agent setup!")
	fmt.Println()

	// Check if config already exists
	if config.ConfigExists() {
		fmt.Print("Configuration already exists. Overwrite? [y/N]: ")
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Setup cancelled.")
			return nil
		}
		fmt.Println()
	}

	cfg := &config.Config{
		Provider: config.DefaultProvider,
		Model:    config.DefaultModel,
		CMS: config.CMSConfig{
			Auth:    config.DefaultAuth,
			Timeout: config.DefaultTimeout,
		},
	}

	// CMS connection
	fmt.Println("Enter your CMS base URL:")
	fmt.Println("(e.g. https://cms.example.com)")
	fmt.Print("> ")
	cmsURL, _ := reader.ReadString('\n')
	cfg.CMS.URL = strings.TrimRight(strings.TrimSpace(cmsURL), "/")

	fmt.Println()
	fmt.Println("Enter the CMS application client ID:")
	fmt.Println("(Created under Applications in the CMS admin interface)")
	fmt.Print("> ")
	clientID, _ := reader.ReadString('\n')
	cfg.CMS.ClientID = strings.TrimSpace(clientID)

	fmt.Println()
	fmt.Println("Enter the CMS application client secret:")
	fmt.Print("> ")
	clientSecret, _ := reader.ReadString('\n')
	cfg.CMS.ClientSecret = strings.TrimSpace(clientSecret)

	fmt.Println()
	fmt.Println("Select authentication method:")
	fmt.Println("1. oauth - OAuth2 client credentials (recommended)")
	fmt.Println("2. basic - HTTP Basic with the client credentials")
	fmt.Print("> ")
	authChoice, _ := reader.ReadString('\n')
	if strings.TrimSpace(authChoice) == "2" {
		cfg.CMS.Auth = "basic"
	}

	// AI provider
	fmt.Println()
	fmt.Println("Enter your Anthropic API key:")
	fmt.Println("(Get one at https://console.anthropic.com/, or leave empty to use ANTHROPIC_API_KEY)")
	fmt.Print("> ")
	apiKey, _ := reader.ReadString('\n')
	cfg.APIKey = strings.TrimSpace(apiKey)

	// Select model
	fmt.Println()
	fmt.Println("Select model:")
	fmt.Println("1. claude-sonnet-4-5-20250929 (recommended)")
	fmt.Println("2. claude-haiku-4-5-20251001 (faster, cheaper)")
	fmt.Println("3. claude-opus-4-5-20251101 (most capable)")
	fmt.Print("> ")
	modelChoice, _ := reader.ReadString('\n')
	modelChoice = strings.TrimSpace(modelChoice)

	switch modelChoice {
	case "2":
		cfg.Model = "claude-haiku-4-5-20251001"
	case "3":
		cfg.Model = "claude-opus-4-5-20251101"
	default:
		cfg.Model = "claude-sonnet-4-5-20250929"
	}

	// Save config
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, _ := config.DefaultConfigPath()
	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Verify the connection: xibo-agent auth test")
	fmt.Println("  2. Browse the tools:      xibo-agent tools")
	fmt.Println("  3. Start the assistant:   xibo-agent chat")

	return nil
}
