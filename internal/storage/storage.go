// SPDX-License-Identifier: MIT

// Package storage defines where calculator results are persisted.
//
// A Sink receives the result the user asked to save: either a matrix or a
// scalar (a determinant). Implementations live in subpackages: textfile
// appends the plain-text record format, sqlite keeps a queryable history.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/densecalc/matrix"
)

// Kind tells matrix results from scalar results.
type Kind string

const (
	KindMatrix Kind = "matrix"
	KindScalar Kind = "scalar"
)

// Sink persists a single result. op names the operation that produced it
// ("add", "determinant", ...).
type Sink interface {
	SaveMatrix(ctx context.Context, op string, m matrix.Matrix) error
	SaveScalar(ctx context.Context, op string, v float64) error
}

// Entry is one saved result as read back from a history store.
type Entry struct {
	ID        int64
	Op        string
	Kind      Kind
	Rows      int
	Cols      int
	Payload   string
	CreatedAt time.Time
}

// Multi fans every save out to all sinks in order. Every sink is attempted;
// the returned error joins all failures.
type Multi []Sink

// SaveMatrix implements Sink.
func (ms Multi) SaveMatrix(ctx context.Context, op string, m matrix.Matrix) error {
	var errs []error
	for _, s := range ms {
		if err := s.SaveMatrix(ctx, op, m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SaveScalar implements Sink.
func (ms Multi) SaveScalar(ctx context.Context, op string, v float64) error {
	var errs []error
	for _, s := range ms {
		if err := s.SaveScalar(ctx, op, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
