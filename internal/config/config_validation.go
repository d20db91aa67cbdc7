// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/atmost-notes/models"
	"github.com/bmatcuk/doublestar/v4"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the Err* sentinels
// wrapped with the offending value otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || isInMemoryDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if !doublestar.ValidatePattern(cfg.Storage.Files.ImportPattern) {
		return fmt.Errorf("%w: import pattern %q", ErrInvalidStorageConfigs, cfg.Storage.Files.ImportPattern)
	}

	if cfg.Assistant.URL == "" || cfg.Assistant.Model == "" || cfg.Assistant.RequestTimeout <= 0 {
		return ErrInvalidAssistantConfigs
	}

	if cfg.Security.HashTime == 0 || cfg.Security.HashMemoryKiB == 0 || cfg.Security.HashThreads == 0 {
		return ErrInvalidSecurityConfigs
	}

	if _, ok := models.ThemeByName(cfg.UI.Theme); !ok {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidUIConfigs, cfg.UI.Theme)
	}

	return nil
}

// isInMemoryDSN reports whether dsn names an SQLite in-memory database, which
// would lose every note on exit.
func isInMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
