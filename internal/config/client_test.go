package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, rest, err := GetClientConfig(newTestFlagSet(), []string{"list", "categories"})
	require.NoError(t, err)

	assert.Equal(t, DefaultClientAddress, cfg.Address)
	assert.Equal(t, DefaultClientRequestTimeout, cfg.RequestTimeout)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, []string{"list", "categories"}, rest)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CATALOG_ADDRESS":         "http://env:3002",
		"CATALOG_TOKEN":           "env-token",
		"CATALOG_REQUEST_TIMEOUT": "3s",
	})

	cfg, rest, err := GetClientConfig(newTestFlagSet(), []string{"-addr", "http://flag:9000", "get", "products", "7"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:9000", cfg.Address)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"get", "products", "7"}, rest)
}

func TestGetClientConfig_Errors(t *testing.T) {
	t.Run("bad env duration", func(t *testing.T) {
		setEnvVars(t, map[string]string{"CATALOG_REQUEST_TIMEOUT": "soon"})
		_, _, err := GetClientConfig(newTestFlagSet(), nil)
		assert.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		clearEnvVars(t)
		_, _, err := GetClientConfig(newTestFlagSet(), []string{"-verbose"})
		assert.Error(t, err)
	})

	t.Run("negative timeout", func(t *testing.T) {
		clearEnvVars(t)
		_, _, err := GetClientConfig(newTestFlagSet(), []string{"-timeout", "-1s"})
		assert.ErrorIs(t, err, ErrInvalidClientConfigs)
	})
}
