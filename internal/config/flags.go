// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses all configuration flags from args (without the program
// name) into a fresh [StructuredConfig]. Unset flags leave zero values so
// they do not override other sources during merging.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-c/-config json or yaml file path with configs
//	-log-file log file path
//	-import-pattern glob for files picked up by note import
//	-ai-url generative API models endpoint
//	-ai-model generative model name
//	-ai-key generative API key
//	-request-timeout assistant request timeout (e.g., "30s", "1m")
//	-theme initial theme (Light, Dark, Custom)
//	-no-ai start with the assistant panel switched off
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		databaseDSN    string
		configPath     string
		logFile        string
		importPattern  string
		aiURL          string
		aiModel        string
		aiKey          string
		requestTimeout time.Duration
		theme          string
		noAI           bool
	)

	fs := flag.NewFlagSet("atmost-notes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (json or yaml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&importPattern, "import-pattern", "", "Glob for imported note files")
	fs.StringVar(&aiURL, "ai-url", "", "Generative API models endpoint")
	fs.StringVar(&aiModel, "ai-model", "", "Generative model name")
	fs.StringVar(&aiKey, "ai-key", "", "Generative API key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Assistant request timeout (e.g., 30s, 1m)")
	fs.StringVar(&theme, "theme", "", "Initial theme: Light, Dark or Custom")
	fs.BoolVar(&noAI, "no-ai", false, "Start with the assistant panel switched off")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{ImportPattern: importPattern},
		},
		Assistant: Assistant{
			URL:            aiURL,
			Model:          aiModel,
			APIKey:         aiKey,
			RequestTimeout: requestTimeout,
		},
		UI: UI{
			Theme:      theme,
			AIDisabled: noAI,
		},
		ConfigFilePath: configPath,
	}, nil
}
