// Package densecalc is a small dense-matrix engine with an interactive
// calculator on top of it.
//
// What is in the box?
//
//	A pure-Go, row-major float64 matrix type plus the classic textbook kernels:
//		• Construction & release: NewDense, NewFromRows, NewIdentity, Release
//		• Shape queries: ShapeEquals, IsSquare
//		• Arithmetic: Add, Sub, Mul, Transpose, Scale
//		• Laplace expansion: Determinant, Cofactor, Adjugate, Inverse
//		• Text formats: Render (display) and WriteRecord (appendable result file)
//
// Layout:
//
//	matrix/                 — Dense type, validators, kernels, text formats
//	internal/calc/          — menu-driven session and token reader
//	internal/storage/       — result sinks: textfile (append) and sqlite (history)
//	internal/cmd/matrixcalc — configuration (env + flags) and wiring
//	cmd/matrixcalc          — the binary
//
// Quick example:
//
//	| 1 2 |
//	| 3 4 |   det = 1·4 − 2·3 = −2
//
// Determinant, Cofactor and Inverse expand along the first row recursively,
// so their cost grows factorially with the order. The calculator refuses
// orders above -max-order (default 10).
//
//	go run github.com/katalvlaran/densecalc/cmd/matrixcalc
package densecalc
