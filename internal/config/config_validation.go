// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

var localDrivers = []string{"sqlite", "bolt", "memory"}

// validate checks that the final merged [StructuredConfig] carries everything
// the server needs before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	local := cfg.Storage.Local
	if !slices.Contains(localDrivers, local.Driver) {
		return ErrInvalidStorageConfigs
	}
	if local.Driver != "memory" && local.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if local.QuotaBytes < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.AuthCheckInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.DemoUserID == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
