package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/UnknownOlympus/hrms-lite/internal/schema"
)

// Seed modes for the setup utility.
const (
	SeedAsk = "ask"
	SeedYes = "yes"
	SeedNo  = "no"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env   string      `yaml:"env"`   // Env is the current environment: local, development, production.
	Mongo MongoConfig `yaml:"mongo"` // Mongo holds the database connection settings.
	HTTP  HTTPConfig  `yaml:"http"`  // HTTP holds the API server settings.
	Setup SetupConfig `yaml:"setup"` // Setup holds the settings of the setup utility.
}

// MongoConfig holds the connection details for the MongoDB deployment.
type MongoConfig struct {
	URI      string        `yaml:"uri"`      // URI is the connection string, MONGODB_URI in the environment.
	Database string        `yaml:"-"`        // Database is resolved from the URI path.
	Timeout  time.Duration `yaml:"timeout"`  // Timeout bounds connection and server selection.
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SetupConfig holds the settings of the one-shot setup utility.
type SetupConfig struct {
	Seed         string        `yaml:"seed"`          // Seed is one of ask, yes, no.
	ProbeTimeout time.Duration `yaml:"probe_timeout"` // ProbeTimeout bounds each shell --version call.
}

const (
	defaultMongoTimeout = 5 * time.Second
	defaultProbeTimeout = 10 * time.Second
	defaultShutdown     = 5 * time.Second
	defaultHTTPPort     = 8000
)

// SetupFlags returns the command line flags understood by the setup utility.
func SetupFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("setup", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file (overrides CONFIG_PATH)")
	fs.String("seed", SeedAsk, "insert sample data: ask, yes or no")
	fs.String("uri", "", "MongoDB connection URI (overrides MONGODB_URI)")

	return fs
}

// Load reads configuration from an optional .env file, an optional YAML file named by
// CONFIG_PATH or the --config flag, environment variables and flags, in increasing
// order of precedence. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.SetDefault("env", "local")
	vpr.SetDefault("mongo.uri", schema.DefaultURI)
	vpr.SetDefault("mongo.timeout", defaultMongoTimeout)
	vpr.SetDefault("http.port", defaultHTTPPort)
	vpr.SetDefault("http.shutdown_timeout", defaultShutdown)
	vpr.SetDefault("setup.seed", SeedAsk)
	vpr.SetDefault("setup.probe_timeout", defaultProbeTimeout)

	bindings := map[string]string{
		"env":                 "HRMS_ENV",
		"mongo.uri":           "MONGODB_URI",
		"mongo.timeout":       "MONGODB_TIMEOUT",
		"http.port":           "HTTP_PORT",
		"setup.seed":          "HRMS_SEED",
		"setup.probe_timeout": "HRMS_PROBE_TIMEOUT",
	}
	for key, env := range bindings {
		if err := vpr.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	configPath := os.Getenv("CONFIG_PATH")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			configPath = f.Value.String()
		}
		for key, name := range map[string]string{"setup.seed": "seed", "mongo.uri": "uri"} {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := vpr.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
		vpr.SetConfigFile(configPath)
		vpr.SetConfigType("yaml")
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		Mongo: MongoConfig{
			URI:     strings.TrimSpace(vpr.GetString("mongo.uri")),
			Timeout: vpr.GetDuration("mongo.timeout"),
		},
		HTTP: HTTPConfig{
			Port:            vpr.GetInt("http.port"),
			ShutdownTimeout: vpr.GetDuration("http.shutdown_timeout"),
		},
		Setup: SetupConfig{
			Seed:         strings.ToLower(vpr.GetString("setup.seed")),
			ProbeTimeout: vpr.GetDuration("setup.probe_timeout"),
		},
	}
	cfg.Mongo.Database = schema.ResolveDatabase(cfg.Mongo.URI)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad is Load for binaries: any error panics.
func MustLoad(flags *pflag.FlagSet) *Config {
	cfg, err := Load(flags)
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

func (c *Config) validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("%w: mongo uri is empty", ErrInvalidConfig)
	}
	switch c.Setup.Seed {
	case SeedAsk, SeedYes, SeedNo:
	default:
		return fmt.Errorf("%w: seed must be ask, yes or no, got %q", ErrInvalidConfig, c.Setup.Seed)
	}
	if c.Mongo.Timeout <= 0 || c.Setup.ProbeTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}

	return nil
}
