// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
)

// Exitf prints a configuration or session error to stderr and terminates
// matrixcalc with exit code 1. Deferred calls do not run.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
