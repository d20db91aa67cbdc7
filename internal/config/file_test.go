// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"log_file": "notes.log"},
		"storage": {"db": {"dsn": "notes.db"}, "files": {"import_pattern": "*.htm"}},
		"assistant": {"url": "http://x", "model": "m", "api_key": "k", "request_timeout": "45s"},
		"security": {"hash_time": 2, "hash_memory_kib": 2048, "hash_threads": 1},
		"ui": {"theme": "Dark", "ai_disabled": true}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "notes.log", cfg.App.LogFile)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "*.htm", cfg.Storage.Files.ImportPattern)
	assert.Equal(t, "k", cfg.Assistant.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Assistant.RequestTimeout)
	assert.Equal(t, uint32(2048), cfg.Security.HashMemoryKiB)
	assert.Equal(t, "Dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.AIDisabled)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yml", `
storage:
  db:
    dsn: yaml.db
assistant:
  request_timeout: 2m
ui:
  theme: Custom
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "yaml.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Assistant.RequestTimeout)
	assert.Equal(t, "Custom", cfg.UI.Theme)
}

func TestParseFile_Malformed(t *testing.T) {
	path := writeTempConfig(t, "bad.json", "{not valid json")
	_, err := parseFile(path)
	assert.Error(t, err)

	path = writeTempConfig(t, "bad.yaml", "storage: [unclosed")
	_, err = parseFile(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h"`), &d))
	assert.Equal(t, time.Hour, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
