// Package config loads the back-office configuration with viper.
//
// Values come from an optional config file and environment variables; the
// environment wins. Nested keys map to env names by replacing dots with
// underscores: api.base_url is read from API_BASE_URL.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	API     APIConfig     `mapstructure:"api"`
	Cache   CacheConfig   `mapstructure:"cache"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AppConfig holds the general application settings.
type AppConfig struct {
	Env  string `mapstructure:"env"` // development, staging, production
	Port int    `mapstructure:"port"`
}

// IsDevelopment reports whether the app runs in development mode.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns the listen address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// APIConfig points at the remote inventory API.
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// CacheConfig holds the query cache staleness windows.
type CacheConfig struct {
	FastTTL time.Duration `mapstructure:"fast_ttl"`
	SlowTTL time.Duration `mapstructure:"slow_ttl"`
}

// JWTConfig holds the settings for validating caller tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("api.user_agent", "backoffice/1.0")
	v.SetDefault("cache.fast_ttl", 2*time.Minute)
	v.SetDefault("cache.slow_ttl", 5*time.Minute)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "")
	v.SetDefault("metrics.enabled", true)
}

// Load reads the configuration. An empty path looks for an optional
// config.yaml in the working directory and ./config; a non-empty path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url is required")
	}
	if c.Cache.FastTTL <= 0 || c.Cache.SlowTTL <= 0 {
		return errors.New("cache staleness windows must be positive")
	}
	return nil
}
