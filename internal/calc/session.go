// SPDX-License-Identifier: MIT

// Package calc implements the interactive matrix calculator: a numbered
// menu over the matrix engine that reads operands from a text stream,
// displays results and saves the most recent one to a storage.Sink.
package calc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/densecalc/internal/storage"
	"github.com/katalvlaran/densecalc/matrix"
)

// Operation names recorded with saved results.
const (
	OpAdd         = "add"
	OpSubtract    = "subtract"
	OpMultiply    = "multiply"
	OpTranspose   = "transpose"
	OpDeterminant = "determinant"
	OpCofactor    = "cofactor"
	OpInverse     = "inverse"
)

const menu = `
Menu:
1. Add two matrices
2. Subtract two matrices
3. Multiply two matrices
4. Transpose of a matrix
5. Determinant of a matrix
6. Cofactor matrix
7. Inverse of a matrix
8. Save last result to file
9. Exit
Enter your choice: `

// Options configures a Session.
type Options struct {
	// Sink receives saved results. Required for menu item 8.
	Sink storage.Sink
	// Destination is shown after a successful save.
	Destination string
	// MaxOrder bounds the order accepted by determinant, cofactor and
	// inverse. Zero or negative disables the bound.
	MaxOrder int
	// Logger receives diagnostics. Nil discards them.
	Logger *log.Logger
	// Verbose logs the duration of every computation.
	Verbose bool
}

// Session holds the calculator state between menu iterations.
// A Session is not safe for concurrent use.
type Session struct {
	opts   Options
	logger *log.Logger

	// At most one of lastMatrix and lastScalar is set.
	lastMatrix matrix.Matrix
	lastScalar *float64
	lastOp     string
}

// NewSession returns a Session with no result in memory.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{opts: opts, logger: logger}
}

// Run drives the menu loop until the user exits, input ends or ctx is
// canceled. Cancellation is observed between iterations and returned as
// ctx.Err(); a clean exit or end of input returns nil.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	defer s.clear()

	rd := NewReader(in)
	fmt.Fprintln(out, "Matrix Calculator - Full Version")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, menu)

		choice, err := rd.ReadInt()
		if errors.Is(err, errBadToken) {
			fmt.Fprintln(out, "Invalid input. Try again.")
			rd.DiscardLine()
			continue
		}
		if err != nil {
			return eofIsClean(err)
		}

		switch choice {
		case 1:
			err = s.binary(rd, out, OpAdd, "A + B", matrix.Add, "Addition not possible (size mismatch).")
		case 2:
			err = s.binary(rd, out, OpSubtract, "A - B", matrix.Sub, "Subtraction not possible (size mismatch).")
		case 3:
			err = s.binary(rd, out, OpMultiply, "A * B", matrix.Mul, "Multiplication not possible (incompatible sizes).")
		case 4:
			err = s.transpose(rd, out)
		case 5:
			err = s.determinant(rd, out)
		case 6:
			err = s.square(rd, out, OpCofactor, "Cofactor matrix", matrix.Cofactor)
		case 7:
			err = s.square(rd, out, OpInverse, "Inverse", matrix.Inverse)
		case 8:
			s.save(ctx, out)
		case 9:
			fmt.Fprintln(out, "Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice.")
		}
		if err != nil && !errors.Is(err, errAborted) {
			return eofIsClean(err)
		}
	}
}

func eofIsClean(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// readOperand prints the operand label and reads one matrix.
func readOperand(rd *Reader, out io.Writer, label string) (*matrix.Dense, error) {
	fmt.Fprintf(out, "Matrix %s:\n", label)
	return ReadMatrix(rd, out)
}

func (s *Session) binary(
	rd *Reader, out io.Writer,
	op, title string,
	fn func(a, b matrix.Matrix) (matrix.Matrix, error),
	mismatch string,
) error {
	a, err := readOperand(rd, out, "A")
	if err != nil {
		return err
	}
	defer a.Release()
	b, err := readOperand(rd, out, "B")
	if err != nil {
		return err
	}
	defer b.Release()

	r, err := s.timed(op, func() (matrix.Matrix, error) { return fn(a, b) })
	switch {
	case errors.Is(err, matrix.ErrShapeMismatch), errors.Is(err, matrix.ErrDimensionIncompatible):
		fmt.Fprintln(out, mismatch)
		return nil
	case err != nil:
		s.report(out, op, err)
		return nil
	}
	fmt.Fprintf(out, "Result (%s):\n", title)
	s.show(out, op, r)
	return nil
}

func (s *Session) transpose(rd *Reader, out io.Writer) error {
	a, err := readOperand(rd, out, "A")
	if err != nil {
		return err
	}
	defer a.Release()

	r, err := s.timed(OpTranspose, func() (matrix.Matrix, error) { return matrix.Transpose(a) })
	if err != nil {
		s.report(out, OpTranspose, err)
		return nil
	}
	fmt.Fprintln(out, "Transpose:")
	s.show(out, OpTranspose, r)
	return nil
}

func (s *Session) determinant(rd *Reader, out io.Writer) error {
	a, err := readOperand(rd, out, "A")
	if err != nil {
		return err
	}
	defer a.Release()

	if !matrix.IsSquare(a) {
		fmt.Fprintln(out, "Determinant requires a square matrix.")
		return nil
	}
	if !s.orderAllowed(out, a) {
		return nil
	}

	start := time.Now()
	v, err := matrix.Determinant(a)
	s.trace(OpDeterminant, start)
	if err != nil {
		s.report(out, OpDeterminant, err)
		return nil
	}
	fmt.Fprintf(out, "Determinant = %.6f\n", v)
	s.rememberScalar(OpDeterminant, v)
	return nil
}

// square runs a square-only matrix operation: cofactor or inverse.
func (s *Session) square(
	rd *Reader, out io.Writer,
	op, title string,
	fn func(matrix.Matrix) (matrix.Matrix, error),
) error {
	a, err := readOperand(rd, out, "A")
	if err != nil {
		return err
	}
	defer a.Release()

	if !matrix.IsSquare(a) {
		fmt.Fprintf(out, "%s requires a square matrix.\n", title)
		return nil
	}
	if !s.orderAllowed(out, a) {
		return nil
	}

	r, err := s.timed(op, func() (matrix.Matrix, error) { return fn(a) })
	switch {
	case errors.Is(err, matrix.ErrSingular):
		fmt.Fprintln(out, "Matrix is singular (determinant is zero).")
		return nil
	case err != nil:
		s.report(out, op, err)
		return nil
	}
	fmt.Fprintf(out, "%s:\n", title)
	s.show(out, op, r)
	return nil
}

// orderAllowed refuses matrices above the configured order. Laplace
// expansion grows factorially, so the bound keeps the prompt responsive.
func (s *Session) orderAllowed(out io.Writer, a matrix.Matrix) bool {
	if s.opts.MaxOrder > 0 && a.Rows() > s.opts.MaxOrder {
		fmt.Fprintf(out, "Matrix order %d exceeds the limit of %d.\n", a.Rows(), s.opts.MaxOrder)
		return false
	}
	return true
}

func (s *Session) save(ctx context.Context, out io.Writer) {
	if s.lastMatrix == nil && s.lastScalar == nil {
		fmt.Fprintln(out, "No result in memory to save.")
		return
	}
	if s.opts.Sink == nil {
		fmt.Fprintln(out, "Saving is not configured.")
		return
	}

	var err error
	if s.lastMatrix != nil {
		err = s.opts.Sink.SaveMatrix(ctx, s.lastOp, s.lastMatrix)
	} else {
		err = s.opts.Sink.SaveScalar(ctx, s.lastOp, *s.lastScalar)
	}
	if err != nil {
		s.logger.Printf("save %s: %v", s.lastOp, err)
		fmt.Fprintf(out, "Error saving result: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Saved result to %s\n", s.opts.Destination)
}

// show renders r and makes it the result in memory.
func (s *Session) show(out io.Writer, op string, r matrix.Matrix) {
	if err := matrix.Render(out, r); err != nil {
		s.logger.Printf("render %s: %v", op, err)
	}
	s.clear()
	s.lastMatrix, s.lastOp = r, op
}

func (s *Session) rememberScalar(op string, v float64) {
	s.clear()
	s.lastScalar, s.lastOp = &v, op
}

// clear releases the result in memory.
func (s *Session) clear() {
	matrix.Release(s.lastMatrix)
	s.lastMatrix, s.lastScalar, s.lastOp = nil, nil, ""
}

func (s *Session) report(out io.Writer, op string, err error) {
	s.logger.Printf("%s: %v", op, err)
	fmt.Fprintf(out, "Operation failed: %v\n", err)
}

func (s *Session) timed(op string, fn func() (matrix.Matrix, error)) (matrix.Matrix, error) {
	start := time.Now()
	r, err := fn()
	s.trace(op, start)
	return r, err
}

func (s *Session) trace(op string, start time.Time) {
	if s.opts.Verbose {
		s.logger.Printf("%s took %s", op, time.Since(start))
	}
}
