package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, initConfig())

	assert.Equal(t, "hisat.output", viper.GetString(keyHISATDir))
	assert.Equal(t, "comparison_results", viper.GetString(keyOutputDir))
}

func TestInitConfig_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HLA_COMPARE_DIRS_HISAT", "/data/hisat.output")

	require.NoError(t, initConfig())

	assert.Equal(t, "/data/hisat.output", viper.GetString(keyHISATDir))
	// Untouched keys keep their defaults.
	assert.Equal(t, "estimation", viper.GetString(keyEstimationDir))
}
