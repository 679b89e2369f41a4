// SPDX-License-Identifier: MIT

// Package textfile appends saved results to a plain-text file using the
// record layout of matrix.WriteRecord.
package textfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/densecalc/matrix"
)

// Appender appends one record per save. The file is opened and closed on
// every call, so prior content is never truncated.
type Appender struct {
	path string
}

// New returns an Appender writing to path.
func New(path string) (*Appender, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("result file path is required")
	}
	return &Appender{path: filepath.Clean(path)}, nil
}

// Path reports the destination file.
func (a *Appender) Path() string { return a.path }

// SaveMatrix appends a matrix record. op is not part of the text layout.
func (a *Appender) SaveMatrix(ctx context.Context, _ string, m matrix.Matrix) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := matrix.WriteRecord(&buf, m); err != nil {
		return fmt.Errorf("encode matrix record: %w", err)
	}
	return a.append(buf.Bytes())
}

// SaveScalar appends a scalar record labelled with op.
func (a *Appender) SaveScalar(ctx context.Context, op string, v float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := matrix.WriteScalarRecord(&buf, op, v); err != nil {
		return fmt.Errorf("encode scalar record: %w", err)
	}
	return a.append(buf.Bytes())
}

// append writes the whole record in one call so a failed open leaves the
// file untouched.
func (a *Appender) append(rec []byte) error {
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open result file: %w", err)
	}
	if _, err := f.Write(rec); err != nil {
		_ = f.Close()
		return fmt.Errorf("write result file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close result file: %w", err)
	}
	return nil
}
