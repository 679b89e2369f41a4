// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Determinant by recursive Laplace (cofactor) expansion along row 0.
//   - Cofactor, adjugate and adjugate-based inverse built on the same expansion.
//
// Determinism & Performance:
//   - Columns are expanded in increasing order into one running sum, so results
//     are reproducible bit-for-bit for a given input.
//   - Time O(n!) and n! transient minors; recursion depth is n. There is no LU
//     fast path: callers bound n (see the calculator's max order).
//
// Ownership:
//   - Every minor is created by extractMinor and released in the same frame
//     right after its determinant is known, including on error paths.

package matrix

import (
	"fmt"
	"math"
)

// Sign multipliers for alternating cofactor terms.
const (
	signPos = 1.0
	signNeg = -1.0
)

// emptyDeterminant is the determinant of the 0×0 matrix (empty product).
// Reached only through the minor of a 1×1 matrix in Cofactor.
const emptyDeterminant = 1.0

// Determinant returns det(m) by Laplace expansion along the first row.
// MAIN DESCRIPTION:
//   - n==1: the sole entry; n==2: a00*a11 - a01*a10; n≥3: Σ_col (±1)·a0col·det(minor(0,col)).
//
// Behavior highlights:
//   - On failure the value is NaN AND err is non-nil; callers must check err,
//     NaN alone never signals failure (a legitimately computed NaN has err == nil).
//   - m is never mutated; non-Dense inputs are copied once up front.
//
// Errors:
//   - ErrNilMatrix (nil/released), ErrNotSquare (rows != cols).
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any moment (one minor per recursion level).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return math.NaN(), matrixErrorf(opDeterminant, err)
	}
	d, owned, err := denseView(m)
	if err != nil {
		return math.NaN(), matrixErrorf(opDeterminant, err)
	}
	if owned {
		defer d.Release()
	}

	v, err := det(d)
	if err != nil {
		return math.NaN(), matrixErrorf(opDeterminant, err)
	}

	return v, nil
}

// det is the recursive kernel. d must be square (including 0×0).
func det(d *Dense) (float64, error) {
	n := d.r
	switch n {
	case 0:
		return emptyDeterminant, nil
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	sum := ZeroSum
	sign := signPos
	for col := 0; col < n; col++ {
		minor, err := extractMinor(d, 0, col)
		if err != nil {
			return math.NaN(), err
		}
		sub, err := det(minor)
		minor.Release()
		if err != nil {
			return math.NaN(), err
		}
		sum += sign * d.data[col] * sub
		sign = -sign
	}

	return sum, nil
}

// extractMinor returns the (n-1)×(n-1) copy of d without excludeRow and
// excludeCol, keeping the relative order of the remaining rows and columns.
// The caller owns the result and must Release it.
// Complexity: Time O(n²), Space O(n²).
func extractMinor(d *Dense, excludeRow, excludeCol int) (*Dense, error) {
	if excludeRow < 0 || excludeRow >= d.r || excludeCol < 0 || excludeCol >= d.c {
		return nil, fmt.Errorf("extractMinor(%d,%d): %w", excludeRow, excludeCol, ErrOutOfRange)
	}

	return d.induced(without(d.r, excludeRow), without(d.c, excludeCol))
}

// without returns 0..n-1 with skip removed.
func without(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// Cofactor returns C with C[i,j] = (-1)^(i+j) · det(minor(i,j)).
// MAIN DESCRIPTION:
//   - Same shape as m; a 1×1 input yields [[1]] (the 0×0 minor has det 1).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare; any failure inside the expansion is returned
//     after the minor of the current frame has been released.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactor(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	d, owned, err := denseView(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if owned {
		defer d.Release()
	}

	n := d.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	var (
		i, j  int
		minor *Dense
		sub   float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if minor, err = extractMinor(d, i, j); err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			sub, err = det(minor)
			minor.Release()
			if err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			if (i+j)%2 == 0 {
				res.data[i*n+j] = signPos * sub
			} else {
				res.data[i*n+j] = signNeg * sub
			}
		}
	}

	return res, nil
}

// Adjugate returns adj(m) = Cofactor(m)ᵀ.
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: same as Cofactor.
func Adjugate(m Matrix) (Matrix, error) {
	cof, err := Cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	defer Release(cof)

	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Exact-zero determinant is singular; no pivoting or tolerance is applied.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular (det == 0),
//     ErrNaNInf (a quotient overflowed or det was not finite).
//
// Complexity:
//   - Dominated by Cofactor: O(n² · (n-1)!).
func Inverse(m Matrix) (Matrix, error) {
	dv, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if dv == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	if math.IsNaN(dv) || math.IsInf(dv, 0) {
		return nil, matrixErrorf(opInverse, ErrNaNInf)
	}

	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// adj is a fresh *Dense carrying the default finite-only policy.
	inv := adj.(*Dense)
	if err = inv.Apply(func(_, _ int, v float64) float64 { return v / dv }); err != nil {
		inv.Release()
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// denseView returns m itself when it is a *Dense (read-only use), or an owned
// copy otherwise. owned tells the caller to Release the copy.
func denseView(m Matrix) (*Dense, bool, error) {
	if d, ok := m.(*Dense); ok {
		return d, false, nil
	}
	d, err := toDense(m)
	if err != nil {
		return nil, false, err
	}

	return d, true, nil
}
