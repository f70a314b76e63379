// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// matrix-vector multiplication, transpose, trace, scalar scaling and linear
// interpolation. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical container arithmetic kernels used around the row-reduction core.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel returns a freshly allocated *Dense; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other Matrix values fall back to At/Set.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// ZeroSum is the initial accumulator value for sums and products.
const ZeroSum = 0.0

// Interpolation parameter bounds for Lerp.
const (
	lerpMin = 0.0
	lerpMax = 1.0
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd              = "Add"
	opSub              = "Sub"
	opMul              = "Mul"
	opTranspose        = "Transpose"
	opScale            = "Scale"
	opMatVec           = "MatVec"
	opTrace            = "Trace"
	opLerp             = "Lerp"
	opAllClose         = "AllClose"
	opRowEchelon       = "RowEchelon"
	opReduceInPlace    = "ReduceInPlace"
	opDeterminant      = "Determinant"
	opRank             = "Rank"
	opInverse          = "Inverse"
	opIsRowEchelonForm = "IsRowEchelonForm"
	opReplay           = "Replay"
	opNewFromRows      = "NewFromRows"
	opNewFromColumns   = "NewFromColumns"
	opIdentity         = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if res.IsEmpty() {
		return res, nil
	}

	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Fast-path copies *Dense data via flat indexing; fallback uses At.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if res.IsEmpty() {
		return res, nil
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			base := i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha*m as a fresh Dense.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// MatVec computes y = m·x.
// Implementation:
//   - Stage 1: Validate m (non-nil) and len(x) == Cols(m).
//   - Stage 2: Dense fast path walks each row slice once; fallback uses At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
//
// AI-Hints:
//   - For repeated calls with the same m, keep it as *Dense.
func MatVec(m Matrix, x *vector.Vector) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	xs := x.Values()
	ys := make([]float64, rows)

	var i, j int
	var sum, v float64
	var err error
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			row := d.data[i*cols : (i+1)*cols]
			for j = 0; j < cols; j++ {
				sum += row[j] * xs[j]
			}
			ys[i] = sum
		}

		return vector.New(ys...), nil
	}

	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * xs[j]
		}
		ys[i] = sum
	}

	return vector.New(ys...), nil
}

// Trace returns Σ m[i,i] for a square matrix; the empty matrix has trace 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}

	return sum, nil
}

// Lerp returns a + (b-a)*t element-wise for t in [0, 1].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInterpolationParam.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Lerp(a, b Matrix, t float64) (Matrix, error) {
	if !(t >= lerpMin && t <= lerpMax) { // also rejects NaN
		return nil, matrixErrorf(opLerp, ErrInterpolationParam)
	}
	diff, err := Sub(b, a)
	if err != nil {
		return nil, matrixErrorf(opLerp, err)
	}
	step, err := Scale(diff, t)
	if err != nil {
		return nil, matrixErrorf(opLerp, err)
	}

	return Add(a, step)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerance).
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests (A·A⁻¹ ≈ I).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateFinite(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateFinite(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// closeTo reports |x-y| <= atol + rtol*|y|; NaN operands are never close.
func closeTo(x, y, rtol, atol float64) bool {
	diff := x - y
	if diff < 0 {
		diff = -diff
	}
	absY := y
	if absY < 0 {
		absY = -absY
	}

	return diff <= atol+rtol*absY
}
