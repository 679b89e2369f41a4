// SPDX-License-Identifier: MIT

// Package sqlite keeps a queryable history of saved calculator results in
// a SQLite database (pure-Go driver, no cgo).
package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/densecalc/internal/storage"
	"github.com/katalvlaran/densecalc/internal/storage/sqlite/migrations"
	"github.com/katalvlaran/densecalc/matrix"
	_ "modernc.org/sqlite"
)

// Store persists results in the results table.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens (creating if needed) the database at path and applies
// pending migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveMatrix stores m with its text record as payload.
func (s *Store) SaveMatrix(ctx context.Context, op string, m matrix.Matrix) error {
	var buf bytes.Buffer
	if err := matrix.WriteRecord(&buf, m); err != nil {
		return fmt.Errorf("encode matrix record: %w", err)
	}
	return s.insert(ctx, storage.Entry{
		Op:      op,
		Kind:    storage.KindMatrix,
		Rows:    m.Rows(),
		Cols:    m.Cols(),
		Payload: buf.String(),
	})
}

// SaveScalar stores v as a 1x1 scalar entry.
func (s *Store) SaveScalar(ctx context.Context, op string, v float64) error {
	var buf bytes.Buffer
	if err := matrix.WriteScalarRecord(&buf, op, v); err != nil {
		return fmt.Errorf("encode scalar record: %w", err)
	}
	return s.insert(ctx, storage.Entry{
		Op:      op,
		Kind:    storage.KindScalar,
		Rows:    1,
		Cols:    1,
		Payload: buf.String(),
	})
}

func (s *Store) insert(ctx context.Context, e storage.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO results (op, kind, row_count, col_count, payload, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(e.Op), string(e.Kind), e.Rows, e.Cols, e.Payload, s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]storage.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, op, kind, row_count, col_count, payload, created_at
FROM results ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []storage.Entry
	for rows.Next() {
		var (
			e       storage.Entry
			kind    string
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Op, &kind, &e.Rows, &e.Cols, &e.Payload, &created); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		e.Kind = storage.Kind(kind)
		e.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}
