package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/hrms-lite/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_PATH", "HRMS_ENV", "MONGODB_URI", "MONGODB_TIMEOUT", "HTTP_PORT", "HRMS_SEED", "HRMS_PROBE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017/hrms_lite", cfg.Mongo.URI)
	assert.Equal(t, "hrms_lite", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, config.SeedAsk, cfg.Setup.Seed)
	assert.Equal(t, 10*time.Second, cfg.Setup.ProbeTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HRMS_ENV", "production")
	t.Setenv("MONGODB_URI", "mongodb://db:27017/staff")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HRMS_SEED", "YES")

	cfg, err := config.Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "mongodb://db:27017/staff", cfg.Mongo.URI)
	assert.Equal(t, "staff", cfg.Mongo.Database)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.SeedYes, cfg.Setup.Seed)
}

func TestLoad_URIWithoutDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := config.Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "hrms_lite", cfg.Mongo.Database)
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
env: development
mongo:
  uri: mongodb://filehost:27017/from_file
  timeout: 2s
http:
  port: 8181
setup:
  seed: "no"
`)
	t.Setenv("CONFIG_PATH", file.Name())

	cfg, err := config.Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "from_file", cfg.Mongo.Database)
	assert.Equal(t, 2*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 8181, cfg.HTTP.Port)
	assert.Equal(t, config.SeedNo, cfg.Setup.Seed)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", "mongo:\n  uri: mongodb://filehost:27017/from_file\n")
	t.Setenv("CONFIG_PATH", file.Name())
	t.Setenv("MONGODB_URI", "mongodb://envhost:27017/from_env")

	cfg, err := config.Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Mongo.Database)
}

func TestLoad_Flags(t *testing.T) {
	clearEnv(t)
	t.Setenv("HRMS_SEED", "ask")

	flags := config.SetupFlags()
	require.NoError(t, flags.Parse([]string{"--seed=no", "--uri=mongodb://flaghost:27017/from_flag"}))

	cfg, err := config.Load(flags)

	require.NoError(t, err)
	assert.Equal(t, config.SeedNo, cfg.Setup.Seed)
	assert.Equal(t, "from_flag", cfg.Mongo.Database)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", "/definitely/not/here.yaml")

	_, err := config.Load(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/definitely/not/here.yaml")
}

func TestLoad_InvalidSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("HRMS_SEED", "maybe")

	_, err := config.Load(nil)

	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMustLoad_Panics(t *testing.T) {
	clearEnv(t)
	t.Setenv("HRMS_SEED", "maybe")

	assert.Panics(t, func() {
		config.MustLoad(nil)
	})
}
