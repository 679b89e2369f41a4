// SPDX-License-Identifier: MIT
package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	MaxOrder int `env:"MATRIXCALC_TEST_MAX_ORDER" envDefault:"10"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 10, cfg.MaxOrder)
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("MATRIXCALC_TEST_MAX_ORDER", "4")
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 4, cfg.MaxOrder)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("MATRIXCALC_TEST_MAX_ORDER", "not-an-int")
	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env:")
}
