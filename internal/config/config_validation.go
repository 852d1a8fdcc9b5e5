// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: negative connection pool size", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.App.PasswordHashCost < DefaultPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be at least %d", ErrInvalidAppConfigs, DefaultPasswordHashCost)
	}

	return nil
}
