package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from the process environment.
func ParseEnv(target any) error {
	return ParseEnvFrom(target, nil)
}

// ParseEnvFrom loads configuration from environ instead of the process
// environment. A nil map reads the process environment.
func ParseEnvFrom(target any, environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
