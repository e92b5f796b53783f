// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	switch cfg.Cookie.SameSite {
	case SameSiteStrict, SameSiteLax:
	case SameSiteNone:
		// browsers reject SameSite=None without Secure
		if cfg.Cookie.Insecure {
			return fmt.Errorf("%w: same-site none requires a secure cookie", ErrInvalidCookieConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported same-site mode %q", ErrInvalidCookieConfigs, cfg.Cookie.SameSite)
	}
	if cfg.Cookie.Name == "" {
		return fmt.Errorf("%w: cookie name is required", ErrInvalidCookieConfigs)
	}

	return nil
}
