package cmd

import (
	"fmt"

	"github.com/opensignage/xibo-agent/internal/config"
	"github.com/opensignage/xibo-agent/internal/tools"
	"github.com/opensignage/xibo-agent/internal/xibo"
)

// newCMSClient builds a CMS client from the loaded configuration. Missing
// credentials are not an error here; the client reports them per request so
// tools can return a structured configuration failure.
func newCMSClient(cfg *config.Config) *xibo.Client {
	return xibo.New(xibo.Options{
		BaseURL:      cfg.CMS.URL,
		ClientID:     cfg.CMS.ClientID,
		ClientSecret: cfg.CMS.ClientSecret,
		AuthMethod:   cfg.CMS.Auth,
		Timeout:      cfg.CMS.HTTPTimeout(),
		RatePerMin:   cfg.CMS.RateLimit,
		Burst:        cfg.CMS.Burst,
	})
}

// newToolRegistry builds a registry with every CMS tool registered.
func newToolRegistry(cfg *config.Config) (*tools.Registry, *xibo.Client, error) {
	client := newCMSClient(cfg)
	registry := tools.NewRegistry()
	if err := tools.RegisterCMSTools(registry, client); err != nil {
		return nil, nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return registry, client, nil
}
