package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration. CMS credentials live under the
// cms key; the AI provider settings sit at the root level.
type Config struct {
	Provider string    `mapstructure:"provider"` // AI provider (e.g., "anthropic")
	APIKey   string    `mapstructure:"api_key"`  // AI provider API key
	Model    string    `mapstructure:"model"`    // Model to use
	CMS      CMSConfig `mapstructure:"cms"`
}

// CMSConfig holds the connection settings for the CMS.
type CMSConfig struct {
	URL          string `mapstructure:"url"`           // base URL, e.g. https://cms.example.com
	ClientID     string `mapstructure:"client_id"`     // OAuth2 application client ID
	ClientSecret string `mapstructure:"client_secret"` // OAuth2 application client secret
	Auth         string `mapstructure:"auth"`          // "oauth" (default) or "basic"
	Timeout      int    `mapstructure:"timeout"`       // HTTP timeout in seconds
	RateLimit    int    `mapstructure:"rate_limit"`    // requests per minute per resource
	Burst        int    `mapstructure:"burst"`         // rate limiter burst size
}

const (
	DefaultProvider = "anthropic"
	DefaultModel    = "claude-sonnet-4-5-20250929"
	DefaultAuth     = "oauth"
	DefaultTimeout  = 30
)

func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "xibo-agent"), nil
}

func DefaultConfigPath() (string, error) {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func Load() (*Config, error) {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	// Set defaults
	viper.SetDefault("provider", DefaultProvider)
	viper.SetDefault("model", DefaultModel)
	viper.SetDefault("cms.auth", DefaultAuth)
	viper.SetDefault("cms.timeout", DefaultTimeout)

	// Allow environment variable overrides
	viper.SetEnvPrefix("XIBO_AGENT")
	viper.AutomaticEnv()

	// Read config file (if exists)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// Config file not found is okay, we use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyEnvOverrides()
	return &cfg, nil
}

// applyEnvOverrides honours the conventional environment variables so the
// agent works in CI and containers without a config file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("XIBO_API_URL"); v != "" {
		c.CMS.URL = v
	}
	if v := os.Getenv("XIBO_CLIENT_ID"); v != "" {
		c.CMS.ClientID = v
	}
	if v := os.Getenv("XIBO_CLIENT_SECRET"); v != "" {
		c.CMS.ClientSecret = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" && c.APIKey == "" {
		c.APIKey = v
	}
}

func Save(cfg *Config) error {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")

	viper.Set("provider", cfg.Provider)
	viper.Set("model", cfg.Model)
	if cfg.APIKey != "" {
		viper.Set("api_key", cfg.APIKey)
	}
	viper.Set("cms.url", cfg.CMS.URL)
	viper.Set("cms.client_id", cfg.CMS.ClientID)
	viper.Set("cms.client_secret", cfg.CMS.ClientSecret)
	viper.Set("cms.auth", cfg.CMS.Auth)
	if cfg.CMS.Timeout > 0 {
		viper.Set("cms.timeout", cfg.CMS.Timeout)
	}
	if cfg.CMS.RateLimit > 0 {
		viper.Set("cms.rate_limit", cfg.CMS.RateLimit)
	}
	if cfg.CMS.Burst > 0 {
		viper.Set("cms.burst", cfg.CMS.Burst)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func ConfigExists() bool {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(configPath)
	return err == nil
}

// HTTPTimeout returns the configured timeout as a duration.
func (c *CMSConfig) HTTPTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}
