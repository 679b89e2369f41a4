// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the numeric policy and storage limits shared by
//     every constructor in the package.

package matrix

const (
	// DefaultValidateNaNInf is the numeric policy applied by NewDense:
	// Set rejects NaN and ±Inf with ErrNaNInf. Kernel outputs are written
	// directly to storage and are not subject to the guard.
	DefaultValidateNaNInf = true

	// MaxElements bounds rows*cols for a single Dense (2^27 float64 = 1 GiB).
	// Requests above it fail with ErrAllocationFailure before allocating.
	MaxElements = 1 << 27
)

// checkedElems returns rows*cols or ErrAllocationFailure when the product
// overflows int or exceeds MaxElements. Inputs must be non-negative.
func checkedElems(rows, cols int) (int, error) {
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	if rows > MaxElements/cols {
		return 0, ErrAllocationFailure
	}

	return rows * cols, nil
}
