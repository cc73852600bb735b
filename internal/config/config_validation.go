// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Fallbacks applied to fields for which no source supplied a value.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-job-board"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultCookieDuration = 7 * 24 * time.Hour
	defaultUploadDir      = "./public/uploads"
	defaultMaxUploadSize  = 2 << 20 // 2 MiB
)

// applyDefaults fills zero-valued optional fields after all sources are
// merged. Required fields (DSN, sign key) stay empty and are caught by
// validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.CookieDuration == 0 {
		cfg.App.CookieDuration = defaultCookieDuration
	}
	if cfg.App.Mode == "" {
		cfg.App.Mode = ModeDevelopment
	}
	if cfg.Storage.Files.UploadDir == "" {
		cfg.Storage.Files.UploadDir = defaultUploadDir
	}
	if cfg.Storage.Files.MaxUploadSize == 0 {
		cfg.Storage.Files.MaxUploadSize = defaultMaxUploadSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.Mode != ModeDevelopment && cfg.App.Mode != ModeProduction {
		return ErrInvalidAppConfigs
	}

	return nil
}
