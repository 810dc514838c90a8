package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/debuglog/pkg/config"
	"github.com/dmitrymomot/debuglog/pkg/format"
	"github.com/dmitrymomot/debuglog/pkg/level"
)

func TestRead_Defaults(t *testing.T) {
	s := config.Read(config.WithEnvironment(map[string]string{}))

	assert.Equal(t, level.Info, s.Threshold)
	assert.Equal(t, format.LengthDefault, s.Length)
	assert.Equal(t, 80, s.MaxLength())
	assert.Empty(t, s.AllowedKeys)
	assert.False(t, s.ForceTest)
	assert.Equal(t, config.Defaults(), s)
}

func TestRead_AllValues(t *testing.T) {
	s := config.Read(config.WithEnvironment(map[string]string{
		config.EnvLevel:     "WARN",
		config.EnvLength:    "w",
		config.EnvKeys:      "auth/cache",
		config.EnvForceTest: "true",
	}))

	assert.Equal(t, level.Warn, s.Threshold)
	assert.Equal(t, format.LengthWhole, s.Length)
	assert.Equal(t, format.Unbounded, s.MaxLength())
	assert.Equal(t, []string{"auth", "cache"}, s.AllowedKeys)
	assert.True(t, s.ForceTest)
}

func TestRead_MalformedValuesFallBack(t *testing.T) {
	s := config.Read(config.WithEnvironment(map[string]string{
		config.EnvLevel:     "INVALID_LEVEL",
		config.EnvLength:    "huge",
		config.EnvKeys:      ",,,:::/ /",
		config.EnvForceTest: "yes",
	}))

	assert.Equal(t, config.Defaults(), s)
}

func TestRead_ProcessEnvironment(t *testing.T) {
	t.Setenv(config.EnvLevel, "debug")
	t.Setenv(config.EnvLength, "S")
	t.Setenv(config.EnvKeys, "  key1  ,  key2  ")

	s := config.Read()
	assert.Equal(t, level.Debug, s.Threshold)
	assert.Equal(t, 160, s.MaxLength())
	assert.Equal(t, []string{"  key1  ", "  key2  "}, s.AllowedKeys)
}

func TestRead_SnapshotsAreIndependent(t *testing.T) {
	t.Setenv(config.EnvLevel, "error")
	before := config.Read()

	t.Setenv(config.EnvLevel, "debug")
	after := config.Read()

	assert.Equal(t, level.Error, before.Threshold)
	assert.Equal(t, level.Debug, after.Threshold)
}

func TestRead_FromEnvFile(t *testing.T) {
	vars, err := config.ReadEnvFile("testdata/.env.test")
	require.NoError(t, err)

	s := config.Read(config.WithEnvironment(vars))
	assert.Equal(t, level.Debug, s.Threshold)
	assert.Equal(t, format.LengthWhole, s.Length)
	assert.Equal(t, []string{"auth", "cache"}, s.AllowedKeys)
}
