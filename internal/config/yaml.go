// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	yamlFile, err := os.Open(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer yamlFile.Close()

	var fileCfg StructuredFileConfig
	if err := yaml.NewDecoder(yamlFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return fileCfg.toStructuredConfig(), nil
}

// UnmarshalYAML accepts "30s"-style strings and plain nanosecond integers.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if n, err := strconv.ParseInt(value.Value, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(tmp)
	return nil
}
