package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	// Upstream is the fixed platform REST API the gateway fronts.
	Upstream struct {
		BaseURL string `yaml:"base_url" env:"UPSTREAM_BASE_URL"`
		Timeout string `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
	} `yaml:"upstream"`

	JWT struct {
		// Secret is the shared HMAC secret for verifying upstream-issued
		// tokens. Empty means decode-without-verify.
		Secret string `yaml:"secret" env:"JWT_SECRET"`
	} `yaml:"jwt"`

	Export struct {
		Dir string `yaml:"dir" env:"EXPORT_DIR"`
	} `yaml:"export"`

	Sentry struct {
		DSN         string `yaml:"dsn" env:"SENTRY_DSN"`
		Environment string `yaml:"environment" env:"SENTRY_ENVIRONMENT"`
		Release     string `yaml:"release" env:"SENTRY_RELEASE"`
	} `yaml:"sentry"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone are a valid setup
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Upstream.Timeout = "15s"

	config.Export.Dir = os.TempDir()

	config.Sentry.Environment = "development"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base_url is required")
	}
	if _, err := url.Parse(config.Upstream.BaseURL); err != nil {
		return fmt.Errorf("invalid upstream base_url: %w", err)
	}
	if _, err := time.ParseDuration(config.Upstream.Timeout); err != nil {
		return fmt.Errorf("invalid upstream timeout format: %w", err)
	}
	return nil
}

// UpstreamTimeout returns the parsed upstream request timeout.
func (c *Config) UpstreamTimeout() time.Duration {
	d, err := time.ParseDuration(c.Upstream.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}
