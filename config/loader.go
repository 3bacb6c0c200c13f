// Package config loads secretkit tool configuration from a YAML file,
// environment variables and an optional .env file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/secretkit/errors"
	"github.com/kbukum/secretkit/logger"
)

const envConfigPath = "SECRETKIT_CONFIG"

// Load reads configuration from the given path, falling back to
// $SECRETKIT_CONFIG and then ~/.config/secretkit/config.yml. A missing
// file yields the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// A .env next to the working directory participates in env binding.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			logger.Warn("failed to load .env file", logger.ErrorFields("config", err))
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SECRETKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about, so bind the
	// logging keys explicitly for env-only configuration.
	for _, key := range []string{"logging.level", "logging.format", "logging.output", "logging.no_color"} {
		_ = v.BindEnv(key)
	}

	resolved := resolvePath(path)
	if resolved != "" {
		v.SetConfigFile(resolved)
		if err := v.ReadInConfig(); err != nil {
			if path != "" {
				// An explicitly requested file must load.
				return nil, errors.InvalidConfig("failed to read config file " + resolved).WithCause(err)
			}
			logger.Warn("failed to read config file, using defaults",
				logger.Fields("path", resolved, logger.FieldError, err.Error()))
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.InvalidConfig("failed to parse configuration").WithCause(err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePath picks the config file location: explicit flag, then
// $SECRETKIT_CONFIG, then the conventional user config path. Returns ""
// when nothing exists.
func resolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(envConfigPath); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	conventional := filepath.Join(home, ".config", "secretkit", "config.yml")
	if _, err := os.Stat(conventional); err == nil {
		return conventional
	}
	return ""
}
