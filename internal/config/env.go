// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a T from the environment following its `env` and
// `envPrefix` tags. Unset variables leave zero values for mergo to skip.
func parseEnv[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
