// Package matrix offers dense matrices and the row-reduction algorithms built on them.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix behind the small Matrix interface,
//     with constructors from rows, columns, identity and zeros.
//   - Arithmetic kernels (Add, Sub, Scale, Mul, MatVec, Transpose, Trace,
//     Lerp, AllClose) with *Dense fast paths.
//   - Elementary row operations as RowOperation values that can be applied,
//     inverted and replayed.
//   - RowEchelon / RowEchelonWithDetails: reduced row echelon form by Gaussian
//     elimination with partial pivoting, optionally returning the operation log
//     and the pivot values.
//   - Determinant, Rank, Inverse and IsRowEchelonForm on top of one reduction pass.
//
// Zero test: the engine treats x as zero iff |x| <= eps. The default eps is 0
// (exact equality); pass WithEpsilon for floating data with rounding residue.
//
// Inputs are never mutated; ReduceInPlace is the one explicit in-place entry point.
//
// See the examples in this package for usage patterns.
package matrix
