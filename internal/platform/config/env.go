// SPDX-License-Identifier: MIT

// Package config loads matrixcalc settings from MATRIXCALC_* environment
// variables and reports fatal startup errors.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from its `env`/`envDefault` struct tags. Command
// packages call it before registering flags, so flags override the
// environment. Failures are wrapped as "parse env: ...".
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
