// SPDX-License-Identifier: MIT

// Package matrixcalc wires configuration, result sinks and the interactive
// calculator session for the matrixcalc command.
package matrixcalc

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/densecalc/internal/calc"
	"github.com/katalvlaran/densecalc/internal/platform/config"
	"github.com/katalvlaran/densecalc/internal/storage"
	"github.com/katalvlaran/densecalc/internal/storage/sqlite"
	"github.com/katalvlaran/densecalc/internal/storage/textfile"
)

// Config holds matrixcalc command configuration.
type Config struct {
	ResultFile string `env:"MATRIXCALC_RESULT_FILE" envDefault:"matrix_results.txt"`
	HistoryDB  string `env:"MATRIXCALC_HISTORY_DB"`
	MaxOrder   int    `env:"MATRIXCALC_MAX_ORDER"   envDefault:"10"`
	Verbose    bool   `env:"MATRIXCALC_VERBOSE"`
	// History, when positive, prints that many saved results from the
	// history database and exits without starting the menu.
	History int
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.ResultFile, "result-file", cfg.ResultFile, "file that saved results are appended to")
	fs.StringVar(&cfg.HistoryDB, "history-db", cfg.HistoryDB, "optional SQLite database that also records saved results")
	fs.IntVar(&cfg.MaxOrder, "max-order", cfg.MaxOrder, "largest order accepted by determinant, cofactor and inverse (0 = no limit)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log the duration of every computation")
	fs.IntVar(&cfg.History, "history", 0, "print the N most recent saved results from -history-db and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.MaxOrder < 0 {
		return Config{}, fmt.Errorf("max order must be non-negative, got %d", cfg.MaxOrder)
	}
	return cfg, nil
}

// Run executes the matrixcalc command, reading user input from in.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	var history *sqlite.Store
	if strings.TrimSpace(cfg.HistoryDB) != "" {
		store, err := sqlite.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Printf("close history: %v", err)
			}
		}()
		history = store
	}

	if cfg.History > 0 {
		if history == nil {
			return errors.New("history database is required to list results")
		}
		return printHistory(ctx, history, cfg.History, out)
	}

	file, err := textfile.New(cfg.ResultFile)
	if err != nil {
		return err
	}
	sinks := storage.Multi{file}
	if history != nil {
		sinks = append(sinks, history)
	}
	if cfg.Verbose {
		logger.Printf("saving results to %s", file.Path())
	}

	session := calc.NewSession(calc.Options{
		Sink:        sinks,
		Destination: file.Path(),
		MaxOrder:    cfg.MaxOrder,
		Logger:      logger,
		Verbose:     cfg.Verbose,
	})
	if err := session.Run(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printHistory(ctx context.Context, store *sqlite.Store, limit int, out io.Writer) error {
	entries, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No saved results.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "#%d %s %s %dx%d at %s\n", e.ID, e.Op, e.Kind, e.Rows, e.Cols, e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
		fmt.Fprint(out, e.Payload)
	}
	return nil
}
