// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Kernels wrap with matrixErrorf("<Op>", err); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil/released operand -> shape contract (mismatch / incompatible / not square)
// -> numeric policy (NaN/Inf, singular).

var (
	// ErrInvalidDimensions is returned when requested rows or cols are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrAllocationFailure is returned when storage for the requested shape
	// cannot be obtained: rows*cols overflows int or exceeds MaxElements.
	// Nothing is allocated when this error is returned.
	ErrAllocationFailure = errors.New("matrix: allocation failure")

	// ErrShapeMismatch indicates elementwise operands (Add/Sub) of different shapes.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionIncompatible indicates Mul operands with a.Cols != b.Rows.
	ErrDimensionIncompatible = errors.New("matrix: inner dimensions incompatible")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil or released Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil or released matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (Set on a guarded matrix, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")
)
