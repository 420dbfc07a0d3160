package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the client configuration
type Config struct {
	API struct {
		// BaseURL is the fixed backend origin every request is resolved
		// against, e.g. http://localhost:1234
		BaseURL string `yaml:"base_url" env:"ALUMNET_API_BASE_URL"`
		// Timeout bounds each HTTP request. Zero keeps the transport
		// default, which mirrors the original client behavior.
		Timeout time.Duration `yaml:"timeout" env:"ALUMNET_API_TIMEOUT"`
	} `yaml:"api"`

	Logging struct {
		Level  string `yaml:"level" env:"ALUMNET_LOG_LEVEL"`
		Pretty bool   `yaml:"pretty" env:"ALUMNET_LOG_PRETTY"`
	} `yaml:"logging"`
}

// Load reads configuration from an optional YAML file and the environment.
// A .env file next to the process is honored when present. Environment
// variables win over file values.
func Load(configPath string) (*Config, error) {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
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
	config.API.BaseURL = "http://localhost:1234"
	config.API.Timeout = 0

	config.Logging.Level = "info"
	config.Logging.Pretty = false
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is usable
func validateConfig(config *Config) error {
	parsed, err := url.Parse(config.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got %q", config.API.BaseURL)
	}
	if config.API.Timeout < 0 {
		return fmt.Errorf("api.timeout cannot be negative")
	}
	return nil
}
