// Package config provides hierarchical configuration management for chlog using koanf.
// Configuration is loaded with priority: environment variables > project config
// (.chlog.yml) > user config (~/.config/chlog/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment variable overrides (CHLOG_CHANGELOG etc.).
const envPrefix = "CHLOG_"

// Configuration represents the chlog CLI tool configuration.
type Configuration struct {
	// Changelog is the path of the changelog file to operate on.
	// Can be set via CHLOG_CHANGELOG.
	Changelog string `koanf:"changelog"`

	// Plain disables colors and icons in terminal output.
	// Can be set via CHLOG_PLAIN.
	Plain bool `koanf:"plain"`

	// RemoteURL is the default URL for `chlog check --url` when the flag is
	// given without a value. Can be set via CHLOG_REMOTE_URL.
	RemoteURL string `koanf:"remote_url"`

	// RemoteTimeout is the remote fetch timeout in seconds.
	// Can be set via CHLOG_REMOTE_TIMEOUT.
	RemoteTimeout int `koanf:"remote_timeout"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .chlog.yml)
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.RemoteTimeout <= 0 {
		return nil, fmt.Errorf("remote_timeout must be positive, got %d", cfg.RemoteTimeout)
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level config file if present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil
	}
	if !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig loads the project-level config file if present.
// Supports custom path override (for testing).
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		path = customPath
	}
	if !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load project config %s: %w", path, err)
	}
	return nil
}

// envTransform maps CHLOG_REMOTE_URL to remote_url etc.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// fileExists reports whether the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
