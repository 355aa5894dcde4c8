package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	appName        = "cleandeps"
	configFileName = "config.yaml"
)

var (
	validThemes = []string{"latte", "frappe", "macchiato", "mocha"}
	validColors = []string{"auto", "always", "never"}
	validLevels = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	Theme     string `yaml:"theme"`
	LogLevel  string `yaml:"log_level"`
	AssumeYes bool   `yaml:"assume_yes"`
	Color     string `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Theme:    "mocha",
		LogLevel: "info",
		Color:    "auto",
	}
}

// Load reads the config from the default location.
func Load() (Config, error) {
	return LoadFrom(getConfigPath())
}

// LoadFromDir reads config.yaml from dir.
func LoadFromDir(dir string) (Config, error) {
	return LoadFrom(filepath.Join(dir, configFileName))
}

// LoadFrom reads the config at configPath. A missing file yields defaults;
// an unreadable or malformed file yields defaults and the error.
func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", configPath, err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}

	return cfg, nil
}

// Validate rejects unknown theme, color and log level values.
func (c *Config) Validate() error {
	if !slices.Contains(validThemes, c.Theme) {
		return fmt.Errorf("theme must be one of %v, got: %s", validThemes, c.Theme)
	}
	if !slices.Contains(validColors, c.Color) {
		return fmt.Errorf("color must be one of %v, got: %s", validColors, c.Color)
	}
	if !slices.Contains(validLevels, c.LogLevel) {
		return fmt.Errorf("log_level must be one of %v, got: %s", validLevels, c.LogLevel)
	}
	return nil
}

// ResolveDataDir returns the directory for the log and lock files.
// If configDir is specified, uses that; otherwise the default config directory.
func ResolveDataDir(configDir string) string {
	if configDir != "" {
		return configDir
	}
	return filepath.Dir(getConfigPath())
}

func getConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName, configFileName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", appName, configFileName)
	}

	return filepath.Join(home, ".config", appName, configFileName)
}
