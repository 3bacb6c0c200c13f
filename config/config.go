package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/secretkit/errors"
	"github.com/kbukum/secretkit/logger"
	"github.com/kbukum/secretkit/secret/providers"
)

// ProviderConfig overrides a built-in provider's registration defaults.
// Nil fields keep the built-in value.
type ProviderConfig struct {
	Enabled  *bool          `yaml:"enabled" mapstructure:"enabled"`
	Priority *int           `yaml:"priority" mapstructure:"priority" validate:"omitempty,gte=0"`
	Options  map[string]any `yaml:"options" mapstructure:"options"`
}

// Config is the tool configuration.
type Config struct {
	Logging   logger.Config             `yaml:"logging" mapstructure:"logging"`
	Providers map[string]ProviderConfig `yaml:"providers" mapstructure:"providers" validate:"dive"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error())
	}
	if err := getValidator().Struct(c); err != nil {
		return errors.InvalidConfig("invalid provider configuration").WithCause(err)
	}
	return nil
}

// Overrides converts the provider section into registration overrides.
func (c *Config) Overrides() map[string]providers.Override {
	out := make(map[string]providers.Override, len(c.Providers))
	for name, pc := range c.Providers {
		out[name] = providers.Override{
			Enabled:  pc.Enabled,
			Priority: pc.Priority,
			Options:  pc.Options,
		}
	}
	return out
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
