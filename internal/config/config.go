package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application's configuration structure. Values come
// from an optional config file with environment variables taking precedence.
type Config struct {
	Port            int           `json:"port" mapstructure:"port"`
	Env             string        `json:"env" mapstructure:"env"`
	DSN             string        `json:"dsn" mapstructure:"dsn"`
	StaticDir       string        `json:"static-dir" mapstructure:"static-dir"`
	ReadTimeout     time.Duration `json:"read-timeout" mapstructure:"read-timeout"`
	WriteTimeout    time.Duration `json:"write-timeout" mapstructure:"write-timeout"`
	IdleTimeout     time.Duration `json:"idle-timeout" mapstructure:"idle-timeout"`
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`
	RateLimitRPS    int           `json:"rate-limit-rps" mapstructure:"rate-limit-rps"`
	RateLimitBurst  int           `json:"rate-limit-burst" mapstructure:"rate-limit-burst"`
}

var requiredFields = []string{
	"dsn",
}

// field: default value
var optionalFields = map[string]interface{}{
	"port":             6001,
	"env":              "development",
	"static-dir":       "./frontend/build",
	"read-timeout":     "10s",
	"write-timeout":    "30s",
	"idle-timeout":     "60s",
	"shutdown-timeout": "20s",
	"rate-limit-rps":   100,
	"rate-limit-burst": 20,
}

// Load reads configuration from an optional JSON file and environment
// variables. Environment variables take precedence over the config file.
func Load(configFilePath string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}
	for field := range optionalFields {
		v.BindEnv(field)
	}

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	// Set defaults for optional fields if not set
	for optField, defaultValue := range optionalFields {
		if !v.IsSet(optField) {
			v.Set(optField, defaultValue)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit RPS must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be positive")
	}
	return nil
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
