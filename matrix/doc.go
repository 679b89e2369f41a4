// Package matrix is a dense float64 matrix engine.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked At/Set and explicit Release.
//   - Value-producing kernels: Add, Sub, Mul, Transpose, Scale. Operands are
//     never mutated and results never share storage with them.
//   - Determinant and Cofactor by recursive Laplace expansion, plus Adjugate
//     and an adjugate-based Inverse.
//   - Shape predicates (ShapeEquals, IsSquare) and Validate* helpers.
//   - Text contracts for display (Render) and persisted results (WriteRecord).
//
// Every failure is a wrapped sentinel from errors.go; match with errors.Is.
//
// Determinant expansion costs O(n!) time and allocates n! transient minors.
// It is meant for the small matrices typed into a calculator, not for
// numerical work at scale.
package matrix
