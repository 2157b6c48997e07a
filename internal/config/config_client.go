package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DemoUserID is the reserved user whose albums live only in local storage.
	DemoUserID string
	// FrontendURL is printed by the login command as the browser entry point.
	FrontendURL string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Local holds the persistent key/value store settings.
	Local Local
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AuthCheckInterval defines how often the stored token is re-validated.
	AuthCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view.
//
// overrides carries values taken from command-line flags; it ranks below
// environment variables and above the config file.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withConfig(overrides).
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DemoUserID:  cfg.App.DemoUserID,
			FrontendURL: cfg.App.FrontendURL,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Local: cfg.Storage.Local,
		},
		Workers: ClientWorkers{AuthCheckInterval: cfg.Workers.AuthCheckInterval},
	}
}
