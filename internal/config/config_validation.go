// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// applyDefaults fills the remaining zero-value fields after all sources have
// been merged. Defaults keep a local single-binary setup working with no
// configuration at all: sqlite file store, localhost addresses.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "formkeeper"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = 24 * time.Hour
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = "sqlite3"
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == "sqlite3" {
		cfg.Storage.DB.DSN = "formkeeper.db"
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.App.PublicBaseURL == "" {
		cfg.App.PublicBaseURL = "http://" + cfg.Server.HTTPAddress
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
