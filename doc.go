// Package linalg is a small dense linear-algebra core: vectors, row-major
// matrices and the algorithms that need real numerical design, namely row
// reduction to reduced row echelon form (Gaussian elimination with partial
// pivoting) and the operations derived from it.
//
// 🚀 What is linalg?
//
//	A pure-Go, deterministic library that brings together:
//		• Vectors: arithmetic, dot & cross products, L1/L2/L∞ norms, cosine,
//		  linear combination, linear interpolation
//		• Matrices: Dense storage, add/sub/scale, products, transpose, trace
//		• Row operations: swap, scale, divide, add-scaled-row as replayable records
//		• Row reduction: RREF with an optional operation log and pivot tracking
//		• Derived operations: determinant, rank, Gauss-Jordan inverse,
//		  row-echelon-form check
//
// ✨ Why choose linalg?
//
//   - Explicit errors: sentinel errors matched with errors.Is, no panics on user input
//   - Deterministic: fixed loop orders, bit-reproducible results by default
//   - Inspectable: every reduction can return the exact log of row operations
//   - Pure Go: no cgo
//
// Under the hood, everything is organized under two subpackages:
//
//	vector/ - the Vector type and its closed-form functions
//	matrix/ - Matrix/Dense, arithmetic kernels, row operations, the reduction
//	          engine and Determinant/Rank/Inverse/IsRowEchelonForm
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	det, _ := matrix.Determinant(A)   // -2
//	inv, _ := matrix.Inverse(A)       // [[-2, 1], [1.5, -0.5]]
//	r, _ := matrix.Rank(A)            // 2
//
//	go get github.com/katalvlaran/linalg
package linalg
