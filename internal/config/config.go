// Package config loads CLI configuration from file, environment, and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigDir  = ".larkmedia"
	defaultConfigName = "config.yaml"

	envPrefix = "LARKMEDIA"
)

// Config holds the Lark app credentials the CLI needs.
type Config struct {
	AppID      string `mapstructure:"app_id"`
	AppSecret  string `mapstructure:"app_secret"`
	BaseDomain string `mapstructure:"base_domain"`
}

// Validate reports missing required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppID) == "" {
		return fmt.Errorf("app_id is required (set it in %s or via %s_APP_ID)", defaultConfigName, envPrefix)
	}
	if strings.TrimSpace(c.AppSecret) == "" {
		return fmt.Errorf("app_secret is required (set it in %s or via %s_APP_SECRET)", defaultConfigName, envPrefix)
	}
	return nil
}

// ResolvePath returns the configuration file path and its source label.
// Priority order:
//  1. The explicit path argument (e.g. a --config flag).
//  2. LARKMEDIA_CONFIG.
//  3. $HOME/.larkmedia/config.yaml.
//  4. ./config.yaml (fallback when the home directory is unavailable).
func ResolvePath(explicit string) (string, string) {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return trimmed, "flag"
	}
	if value := strings.TrimSpace(os.Getenv(envPrefix + "_CONFIG")); value != "" {
		return value, envPrefix + "_CONFIG"
	}
	if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
		return filepath.Join(home, defaultConfigDir, defaultConfigName), "default"
	}
	return defaultConfigName, "fallback"
}

// Load reads the configuration from the resolved file, applying environment
// overrides. A missing file is not an error; env and defaults still apply.
func Load(explicitPath string) (*Config, string, error) {
	path, source := ResolvePath(explicitPath)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("app_id", "")
	v.SetDefault("app_secret", "")
	v.SetDefault("base_domain", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, source, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, source, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, source, nil
}
