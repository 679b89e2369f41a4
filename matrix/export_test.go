// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Compiled only with the package's tests, so matrix_test can reach the
// minor-extraction helper and the zero-size constructor without widening the
// production API.

var (
	// ExportedExtractMinor exposes extractMinor.
	ExportedExtractMinor = extractMinor
	// ExportedNewDenseZeroOK exposes newDenseZeroOK.
	ExportedNewDenseZeroOK = newDenseZeroOK
	// ExportedDet exposes the unchecked recursive kernel (accepts 0×0).
	ExportedDet = det
)

// ExportedNewDenseWithPolicy builds a Dense with an explicit NaN/Inf policy,
// so tests can feed non-finite operands into the kernels.
func ExportedNewDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}
