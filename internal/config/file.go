// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for file decoding.
// Durations accept strings such as "30s" or raw nanosecond numbers.
type StructuredFileConfig struct {
	App struct {
		LogFile string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Files struct {
			ImportPattern string `json:"import_pattern" yaml:"import_pattern"`
		} `json:"files,omitempty" yaml:"files,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Assistant struct {
		URL            string   `json:"url" yaml:"url"`
		Model          string   `json:"model" yaml:"model"`
		APIKey         string   `json:"api_key" yaml:"api_key"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"assistant,omitempty" yaml:"assistant,omitempty"`

	Security struct {
		HashTime      uint32 `json:"hash_time" yaml:"hash_time"`
		HashMemoryKiB uint32 `json:"hash_memory_kib" yaml:"hash_memory_kib"`
		HashThreads   uint8  `json:"hash_threads" yaml:"hash_threads"`
	} `json:"security,omitempty" yaml:"security,omitempty"`

	UI struct {
		Theme      string `json:"theme" yaml:"theme"`
		AIDisabled bool   `json:"ai_disabled" yaml:"ai_disabled"`
	} `json:"ui,omitempty" yaml:"ui,omitempty"`
}

// parseFile decodes the configuration file at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{LogFile: fileCfg.App.LogFile},
		Storage: Storage{
			DB:    DB{DSN: fileCfg.Storage.DB.DSN},
			Files: Files{ImportPattern: fileCfg.Storage.Files.ImportPattern},
		},
		Assistant: Assistant{
			URL:            fileCfg.Assistant.URL,
			Model:          fileCfg.Assistant.Model,
			APIKey:         fileCfg.Assistant.APIKey,
			RequestTimeout: time.Duration(fileCfg.Assistant.RequestTimeout),
		},
		Security: Security{
			HashTime:      fileCfg.Security.HashTime,
			HashMemoryKiB: fileCfg.Security.HashMemoryKiB,
			HashThreads:   fileCfg.Security.HashThreads,
		},
		UI: UI{
			Theme:      fileCfg.UI.Theme,
			AIDisabled: fileCfg.UI.AIDisabled,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := node.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}

	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
