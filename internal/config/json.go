package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredFileConfig is the on-disk layout shared by JSON and YAML files.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		SessionSecret string   `json:"session_secret" yaml:"session_secret"`
		FrontendURL   string   `json:"frontend_url" yaml:"frontend_url"`
		DemoUserID    string   `json:"demo_user_id" yaml:"demo_user_id"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Line struct {
		ChannelID     string `json:"channel_id" yaml:"channel_id"`
		ChannelSecret string `json:"channel_secret" yaml:"channel_secret"`
		CallbackURL   string `json:"callback_url" yaml:"callback_url"`
		LiffID        string `json:"liff_id" yaml:"liff_id"`
	} `json:"line,omitempty" yaml:"line,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Local struct {
			Driver     string `json:"driver" yaml:"driver"`
			DSN        string `json:"dsn" yaml:"dsn"`
			QuotaBytes int64  `json:"quota_bytes" yaml:"quota_bytes"`
		} `json:"local,omitempty" yaml:"local,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		AuthCheckInterval Duration `json:"auth_check_interval" yaml:"auth_check_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.toStructuredConfig(), nil
}

func (f StructuredFileConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			SessionSecret: f.App.SessionSecret,
			FrontendURL:   f.App.FrontendURL,
			DemoUserID:    f.App.DemoUserID,
			Version:       f.App.Version,
		},
		Line: Line{
			ChannelID:     f.Line.ChannelID,
			ChannelSecret: f.Line.ChannelSecret,
			CallbackURL:   f.Line.CallbackURL,
			LiffID:        f.Line.LiffID,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.Storage.DB.DSN,
			},
			Local: Local{
				Driver:     f.Storage.Local.Driver,
				DSN:        f.Storage.Local.DSN,
				QuotaBytes: f.Storage.Local.QuotaBytes,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			AuthCheckInterval: time.Duration(f.Workers.AuthCheckInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
