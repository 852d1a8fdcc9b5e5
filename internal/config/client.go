// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	// DefaultClientAddress is the admin API base URL catalogctl talks to
	// when none is configured.
	DefaultClientAddress = "http://localhost:3002"

	// DefaultClientRequestTimeout bounds each catalogctl request.
	DefaultClientRequestTimeout = 10 * time.Second
)

// ErrInvalidClientConfigs indicates unusable catalogctl settings.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures the catalogctl command-line client.
type ClientConfig struct {
	// Address is the base URL of the admin API, with or without scheme.
	// Env: CATALOG_ADDRESS
	Address string `env:"CATALOG_ADDRESS"`

	// Token is a session token obtained from a previous login.
	// Env: CATALOG_TOKEN
	Token string `env:"CATALOG_TOKEN"`

	// RequestTimeout bounds every request.
	// Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CATALOG_REQUEST_TIMEOUT"`
}

// GetClientConfig merges environment variables and the flags in args (flags
// win) and returns the config together with the remaining positional
// arguments.
//
// Flags:
//
//	-addr admin API base URL
//	-token session token
//	-timeout request timeout (e.g., "10s")
func GetClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, []string, error) {
	envCfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, nil, err
	}

	flagCfg := &ClientConfig{}
	fs.StringVar(&flagCfg.Address, "addr", "", "Admin API base URL")
	fs.StringVar(&flagCfg.Token, "token", "", "Session token")
	fs.DurationVar(&flagCfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Address == "" {
		cfg.Address = DefaultClientAddress
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}
	if cfg.RequestTimeout < 0 {
		return nil, nil, fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	return cfg, fs.Args(), nil
}
