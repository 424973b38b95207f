package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opensignage/xibo-agent/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage CMS authentication",
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured CMS connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if cfg.CMS.URL == "" {
			fmt.Println("No CMS configured. Run: xibo-agent init")
			return nil
		}

		fmt.Printf("CMS URL:     %s\n", cfg.CMS.URL)
		fmt.Printf("Auth method: %s\n", cfg.CMS.Auth)
		if cfg.CMS.ClientID != "" {
			fmt.Printf("Client ID:   %s\n", cfg.CMS.ClientID)
		} else {
			fmt.Println("Client ID:   (not set)")
		}
		if cfg.CMS.ClientSecret != "" {
			fmt.Println("Secret:      (set)")
		} else {
			fmt.Println("Secret:      (not set)")
		}
		return nil
	},
}

var authTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Verify the CMS connection and credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client := newCMSClient(cfg)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		about, err := client.About(ctx)
		if err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}

		fmt.Printf("Connected to %s\n", cfg.CMS.URL)
		fmt.Printf("CMS version: %s\n", about.Version)
		return nil
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authTestCmd)
	rootCmd.AddCommand(authCmd)
}
