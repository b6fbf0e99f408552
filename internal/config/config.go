package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"apichangeguard/internal/models"
)

// Config holds all configuration for api-change-guard
type Config struct {
	// Output format (json, text)
	Format string `mapstructure:"format"`

	// Pretty-print JSON output
	Pretty bool `mapstructure:"pretty"`

	// Fail the run (exit 1) when any violation at or above this
	// severity is found. Empty disables the gate.
	FailOn string `mapstructure:"fail_on"`

	// Verbose output
	Verbose bool `mapstructure:"verbose"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Format:  "json",
		Pretty:  false,
		FailOn:  "",
		Verbose: false,
		Debug:   false,
	}
}

// Load loads configuration with the following precedence (lowest to highest):
// 1. Default values
// 2. Config file (~/.api-change-guard.yaml or ./.api-change-guard.yaml)
// 3. Environment variables (APIGUARD_*)
// 4. CLI flags (handled by caller)
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile loads configuration from a specific file path
// If path is empty, it searches for config in standard locations
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("pretty", defaults.Pretty)
	v.SetDefault("fail_on", defaults.FailOn)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("debug", defaults.Debug)

	// Set config file settings
	v.SetConfigName(".api-change-guard")
	v.SetConfigType("yaml")

	if configPath != "" {
		// Use explicit config file path
		v.SetConfigFile(configPath)
	} else {
		// Search for config in standard locations
		// 1. Current directory
		v.AddConfigPath(".")

		// 2. Home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}

		// 3. XDG config directory
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "api-change-guard"))
		}
	}

	// Enable environment variable support
	v.SetEnvPrefix("APIGUARD")
	v.AutomaticEnv()

	// Try to read config file (ignore error if not found)
	if err := v.ReadInConfig(); err != nil {
		// Only return error if it's not a "file not found" error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Unmarshal into config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (must be json or text)", c.Format)
	}

	validSeverities := map[string]bool{
		"":                    true,
		models.SeverityLow:    true,
		models.SeverityMedium: true,
		models.SeverityHigh:   true,
	}
	if !validSeverities[c.FailOn] {
		return fmt.Errorf("invalid fail_on: %s (must be LOW, MEDIUM, or HIGH)", c.FailOn)
	}

	return nil
}

// GenerateSampleConfig generates a sample configuration file content
func GenerateSampleConfig() string {
	return `# api-change-guard configuration
# Save this file as ~/.api-change-guard.yaml or ./.api-change-guard.yaml

# Output format: json or text
format: json

# Pretty-print JSON output
pretty: false

# Fail with exit code 1 when any violation at or above this severity
# is found (LOW, MEDIUM, HIGH). Empty disables the gate.
fail_on: ""

# Verbose output
verbose: false
`
}
