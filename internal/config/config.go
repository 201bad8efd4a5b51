// Package config loads and validates application configuration.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults (DefaultConfig)
//  2. an optional YAML file
//  3. PIZZERIA_ environment variables, e.g. PIZZERIA_DATABASE_HOST -> database.host
//
// A .env file in the working directory is loaded into the environment first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "PIZZERIA_"

	// ConfigFileEnv names an optional YAML config file.
	ConfigFileEnv = "PIZZERIA_CONFIG_FILE"
)

type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production test"`
}

type ServerConfig struct {
	Port string `koanf:"port" validate:"required"`

	// Timeouts are in seconds.
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required,min=1,max=65535"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`

	MaxOpenConns int `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns int `koanf:"max_idle_conns" validate:"min=0"`

	// Lifetimes are in seconds.
	ConnMaxLifetime int `koanf:"conn_max_lifetime" validate:"required,min=1"`
	ConnMaxIdleTime int `koanf:"conn_max_idle_time" validate:"required,min=1"`
}

// RedisConfig is optional. An empty Address disables the list cache and
// background jobs.
type RedisConfig struct {
	Address string `koanf:"address" validate:"omitempty,hostname_port"`

	// CacheTTL is in seconds.
	CacheTTL int `koanf:"cache_ttl" validate:"min=0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// DefaultConfig returns a configuration suitable for local development
// against a Postgres on localhost.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "local"},
		Server: ServerConfig{
			Port:               "5555",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			Name:            "pizzeria",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 60,
		},
		Redis: RedisConfig{
			CacheTTL: 300,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// sections lists nested config paths, longest first, so env keys can be
// split at the right underscore.
var sections = []string{
	"observability.health_checks",
	"observability.new_relic",
	"observability.logging",
	"observability",
	"primary",
	"server",
	"database",
	"redis",
}

// envKey maps PIZZERIA_SERVER_READ_TIMEOUT to server.read_timeout. Unknown
// keys map to "" and are skipped by the provider.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))

	for _, section := range sections {
		flat := strings.ReplaceAll(section, ".", "_") + "_"
		if strings.HasPrefix(key, flat) {
			return section + "." + strings.TrimPrefix(key, flat)
		}
	}

	return ""
}

// LoadConfig builds the configuration. path may be empty, in which case
// PIZZERIA_CONFIG_FILE is consulted; a missing file is not an error when
// neither was set explicitly.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(ConfigFileEnv)
		explicit = path != ""
	}
	if path == "" {
		path = "config.yaml"
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(name, value string) (string, interface{}) {
		key := envKey(name)
		if key == "server.cors_allowed_origins" {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	if mainConfig.Observability.ServiceName == "" {
		mainConfig.Observability.ServiceName = "pizzeria"
	}
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
