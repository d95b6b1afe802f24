// Package config reads Moonraker connection settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrConfig is returned when required connection settings are missing or
// malformed. It is always raised before any network activity.
var ErrConfig = errors.New("configuration error")

// DefaultEnvFile is loaded by LoadEnvFile when no path is given.
const DefaultEnvFile = ".env"

// Moonraker holds the settings needed to reach one Moonraker instance.
type Moonraker struct {
	Host   string `env:"MOONRAKER_HOST"`
	APIKey string `env:"MOONRAKER_API_KEY"`
	Port   int    `env:"MOONRAKER_PORT"`
}

// Source yields Moonraker settings. Adapters call it once per invocation.
type Source func() (Moonraker, error)

func (c Moonraker) validate() error {
	if strings.TrimSpace(c.Host) == "" || c.Port == 0 {
		return fmt.Errorf("%w: MOONRAKER_HOST and MOONRAKER_PORT must be set", ErrConfig)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: MOONRAKER_PORT %d out of range", ErrConfig, c.Port)
	}
	return nil
}

// FromEnv reads the settings from the process environment.
func FromEnv() (Moonraker, error) {
	return parse(env.Options{})
}

// FromMap reads the settings from environ instead of the process environment.
func FromMap(environ map[string]string) (Moonraker, error) {
	return parse(env.Options{Environment: environ})
}

// Static returns a Source that always yields cfg after validating it.
func Static(cfg Moonraker) Source {
	return func() (Moonraker, error) {
		if err := cfg.validate(); err != nil {
			return Moonraker{}, err
		}
		return cfg, nil
	}
}

func parse(opts env.Options) (Moonraker, error) {
	var cfg Moonraker
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Moonraker{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg.Host = strings.TrimSpace(cfg.Host)
	if err := cfg.validate(); err != nil {
		return Moonraker{}, err
	}
	return cfg, nil
}

// LoadEnvFile loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
