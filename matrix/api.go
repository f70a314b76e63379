// SPDX-License-Identifier: MIT
// Package matrix - public constructors and API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication - each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewFromRows for literals and NewFromColumns when data arrives as column vectors.
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/vector"
)

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields the empty matrix.
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Inverse replays its operation log onto this matrix.
func NewIdentity(n int) (*Dense, error) {
	I, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a Dense from row slices (copied).
// Implementation:
//   - Stage 1: every row must have len(rows[0]) entries (ErrDimensionMismatch).
//   - Stage 2: zero rows or zero columns → the empty matrix.
//   - Stage 3: copy in row-major order, rejecting NaN/Inf under the numeric policy.
//
// Errors:
//   - ErrDimensionMismatch (ragged rows), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNewFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
	}

	res, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	res.validateNaNInf = o.validateNaNInf
	if res.IsEmpty() {
		return res, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, matrixErrorf(opNewFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			res.data[i*c+j] = v
		}
	}

	return res, nil
}

// NewFromColumns builds a Dense whose j-th column is cols[j] (copied).
// No columns, or columns of length 0, yield the empty matrix.
//
// Errors:
//   - ErrNilMatrix (nil column), ErrDimensionMismatch (unequal lengths), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromColumns(cols ...*vector.Vector) (*Dense, error) {
	c := len(cols)
	r := 0
	if c > 0 {
		if cols[0] == nil {
			return nil, matrixErrorf(opNewFromColumns, fmt.Errorf("column 0: %w", ErrNilMatrix))
		}
		r = cols[0].Len()
	}
	res, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opNewFromColumns, err)
	}

	var i int
	var v float64
	for j, col := range cols {
		if col == nil {
			return nil, matrixErrorf(opNewFromColumns, fmt.Errorf("column %d: %w", j, ErrNilMatrix))
		}
		if col.Len() != r {
			return nil, matrixErrorf(opNewFromColumns, fmt.Errorf("column %d has %d entries, want %d: %w", j, col.Len(), r, ErrDimensionMismatch))
		}
		if res.IsEmpty() {
			continue
		}
		for i, v = range col.Values() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opNewFromColumns, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			res.data[i*c+j] = v
		}
	}

	return res, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDenseZeroOK(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
// AI-Hints: Prefer passing *Dense operands for single flat-loop fast-path.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = m·x.
// Complexity: O(rc).
func MatVecMul(m Matrix, x *vector.Vector) (*vector.Vector, error) { return MatVec(m, x) }

// ---------- Row reduction (O(r*c*min(r,c))) ----------

// RREF is an alias for RowEchelon: the reduced row echelon form of m.
func RREF(m Matrix, opts ...Option) (*Dense, error) { return RowEchelon(m, opts...) }

// Det is an alias for Determinant.
func Det(m Matrix, opts ...Option) (float64, error) { return Determinant(m, opts...) }

// InverseOf is an alias for Inverse: returns A^{-1} (Gauss-Jordan with partial pivoting).
// Complexity: O(n^3).
func InverseOf(m Matrix, opts ...Option) (Matrix, error) {
	inv, err := Inverse(m, opts...)
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// RankOf is an alias for Rank.
func RankOf(m Matrix, opts ...Option) (int, error) { return Rank(m, opts...) }
