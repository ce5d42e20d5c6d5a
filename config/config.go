package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort int            `mapstructure:"http_port"`
	LogLevel string         `mapstructure:"log_level"`
	GinMode  string         `mapstructure:"gin_mode"` // debug, release or test
	Database DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig selects the gorm dialector and the connection it opens.
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // sqlite, mysql or postgres
	DSN          string `mapstructure:"dsn"`
	LogLevel     string `mapstructure:"log_level"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// Load reads config.yaml from the given directories (falling back to "." and
// "./config"), applies ENROLL_* environment overrides and fills in defaults.
// A missing config file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// ENROLL_DATABASE_DSN overrides database.dsn
	v.SetEnvPrefix("ENROLL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "database.sqlite3")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.max_open_conns", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
