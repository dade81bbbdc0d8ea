// Package config provides layered configuration for the semlog CLI using
// koanf. Values are loaded with priority: environment variables > project
// config (.semlog/config.yml) > user config > defaults. A legacy JSON
// project config (.semlog/config.json) is still honored when no YAML
// config exists. Explicit command-line flags always win over all of these;
// that resolution happens in the cli package.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the semlog tool configuration. It covers the
// ambient knobs of the CLI, not the changelog document itself: the
// document is an input, never configuration.
type Configuration struct {
	// File is the default changelog document path used when -f is not
	// given. Can be set via SEMLOG_FILE.
	File string `koanf:"file"`

	// UTCOffsetHours is the default offset written by init when -u is
	// not given. Can be set via SEMLOG_UTC_OFFSET_HOURS.
	UTCOffsetHours int `koanf:"utc_offset_hours"`

	// Plain disables colors and line wrapping in print output.
	// Can be set via SEMLOG_PLAIN.
	Plain bool `koanf:"plain"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default:
	// .semlog/config.yml). Used by tests.
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

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("SEMLOG_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// loadUserConfig loads the user-level YAML config when it exists.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		// No resolvable home directory means no user config to read.
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

// loadProjectConfig loads the project-level config. YAML is preferred;
// the legacy JSON path is used only when no YAML config exists.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		path = customPath
	}

	if fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load project config %s: %w", path, err)
		}
		return nil
	}

	legacyPath := LegacyProjectConfigPath()
	if customPath == "" && fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy project config %s: %w", legacyPath, err)
		}
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: SEMLOG_UTC_OFFSET_HOURS -> utc_offset_hours
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "SEMLOG_"))
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
