// Package config loads rantai-pages command settings from RANTAI_PAGES_*
// environment variables and reports fatal startup errors.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from its `env` and `envDefault` struct tags.
// Flags parsed afterwards override the loaded values.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
