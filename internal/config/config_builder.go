package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
)

// Defaults applied after every other source.
const (
	defaultTokenDuration     = 7 * 24 * time.Hour
	defaultTokenIssuer       = "go-photo-album"
	defaultFrontendURL       = "http://localhost:3000"
	defaultDemoUserID        = "test-user-1"
	defaultHTTPAddress       = ":8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultAdapterAddress    = "http://localhost:8080"
	defaultLocalDriver       = "sqlite"
	defaultLocalDSN          = "photo-album.db"
	defaultLocalQuotaBytes   = 10 * 1024 * 1024
	defaultAuthCheckInterval = 5 * time.Minute

	defaultLineAuthURL    = "https://access.line.me/oauth2/v2.1/authorize"
	defaultLineTokenURL   = "https://api.line.me/oauth2/v2.1/token"
	defaultLineProfileURL = "https://api.line.me/v2/profile"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	if err := loadDotEnv(); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withConfig appends an already assembled config, e.g. one built from cobra flags.
func (b *configBuilder) withConfig(cfg *StructuredConfig) *configBuilder {
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
			break
		}
	}

	if path == "" {
		return b
	}

	var (
		fileCfg *StructuredConfig
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		fileCfg, err = parseYAML(path)
	default:
		fileCfg, err = parseJSON(path)
	}
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fileCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			FrontendURL:   defaultFrontendURL,
			DemoUserID:    defaultDemoUserID,
		},
		Line: Line{
			AuthURL:    defaultLineAuthURL,
			TokenURL:   defaultLineTokenURL,
			ProfileURL: defaultLineProfileURL,
		},
		Storage: Storage{
			Local: Local{
				Driver:     defaultLocalDriver,
				DSN:        defaultLocalDSN,
				QuotaBytes: defaultLocalQuotaBytes,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			AuthCheckInterval: defaultAuthCheckInterval,
		},
	})
	return b
}
