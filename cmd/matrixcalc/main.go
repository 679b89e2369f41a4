// SPDX-License-Identifier: MIT

// Package main provides the interactive matrix calculator.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/densecalc/internal/platform/config"

	matrixcalccmd "github.com/katalvlaran/densecalc/internal/cmd/matrixcalc"
)

func main() {
	cfg, err := matrixcalccmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := matrixcalccmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
