// Package config provides the optional repository-level configuration file
// for detection runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the default location of the holiday detection config.
const ConfigFilename = ".github/holiday.yml"

// DefaultUsername is the profile checked when nothing else names one.
const DefaultUsername = "diverger"

// UsernameEnv overrides the config-file username; a positional argument
// overrides both.
const UsernameEnv = "GITHUB_USERNAME"

// Config is the repository-level configuration. Every field is optional.
type Config struct {
	// Username is the profile whose contribution graph is inspected.
	Username string `yaml:"username"`

	// TimeoutSeconds bounds each page fetch.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// BaseURL points detection at a different host, mainly for testing
	// against a fixture server.
	BaseURL string `yaml:"base_url"`

	// OutputJSON is where the result artifact is written, overriding the
	// OUTPUT_JSON environment variable.
	OutputJSON string `yaml:"output_json"`
}

// Load loads the configuration from the default location under repoRoot.
// A missing file is not an error: it returns (nil, nil).
func Load(repoRoot string) (*Config, error) {
	return LoadFrom(filepath.Join(repoRoot, ConfigFilename))
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("timeout_seconds must not be negative: %d", config.TimeoutSeconds)
	}

	return &config, nil
}

// ResolveUsername applies the target-user precedence: positional argument,
// then environment, then config file, then the built-in default.
func ResolveUsername(arg string, cfg *Config) string {
	if arg != "" {
		return arg
	}

	if env := os.Getenv(UsernameEnv); env != "" {
		return env
	}

	if cfg != nil && cfg.Username != "" {
		return cfg.Username
	}

	return DefaultUsername
}
