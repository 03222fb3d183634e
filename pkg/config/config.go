package config

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvironmentDevelopment enables query debug logging and error detail on
	// rendered error pages.
	EnvironmentDevelopment = "development"
	EnvironmentTest        = "test"
	EnvironmentProduction  = "production"
)

const (
	envPrefix      = "LIBRARY_"
	configFileENV  = "LIBRARY_CONFIG_FILE"
	defaultConfig  = "config.yaml"
	defaultTimeout = 10 * time.Second
)

type Config struct {
	DatabaseBusyTimeout       time.Duration `koanf:"database_busy_timeout"`
	DatabaseConnectRetryCount int           `koanf:"database_connect_retry_count"`
	DatabaseConnectRetryDelay time.Duration `koanf:"database_connect_retry_delay"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path"`
	DatabaseMaxRetries        int           `koanf:"database_max_retries"`
	Environment               string        `koanf:"environment"`
	Hostname                  string        `koanf:"-"`
	RequestTimeout            time.Duration `koanf:"request_timeout"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
}

// New builds the configuration from defaults, then an optional yaml file
// (LIBRARY_CONFIG_FILE, ./config.yaml by default), then LIBRARY_-prefixed
// environment variables. Later sources win.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseFilePath:          "./tmp/catalog.sqlite",
		DatabaseMaxRetries:        3,
		Environment:               EnvironmentDevelopment,
		Hostname:                  hostname,
		RequestTimeout:            defaultTimeout,
		ServerHost:                "127.0.0.1",
		ServerPort:                3000,
	}

	k := koanf.New(".")

	path := os.Getenv(configFileENV)
	if path == "" {
		path = defaultConfig
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, "loading config file %s", path)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	switch cfg.Environment {
	case EnvironmentDevelopment:
		cfg.DatabaseDebug = true
	case EnvironmentTest:
		cfg.DatabaseFilePath = ":memory:"
	case EnvironmentProduction:
	default:
		return nil, errors.Errorf("unknown environment %q", cfg.Environment)
	}

	return cfg, nil
}

// IsDevelopment reports whether error pages should include internal detail.
func (cfg *Config) IsDevelopment() bool {
	return cfg.Environment == EnvironmentDevelopment
}
