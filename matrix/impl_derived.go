// SPDX-License-Identifier: MIT

// Package matrix - operations derived from one row-reduction pass:
// Determinant, Rank, Inverse and the IsRowEchelonForm oracle.
//
// All of them copy their input first; the caller's matrix is never mutated.
// Singularity is a normal outcome: Determinant returns 0, Rank returns the
// reduced rank, and only Inverse reports it, as ErrSingular.

package matrix

// Determinant returns det(m) for a square matrix.
// Implementation:
//   - Stage 1: validate (non-nil, square). 0×0 → 0, 1×1 → the single entry.
//   - Stage 2: forward elimination with pivot tracking.
//   - Stage 3: fewer than n pivots → 0; otherwise Π pivots × (-1)^swaps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - The empty matrix yields 0, not the algebraic convention 1.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	n := m.Rows()
	switch n {
	case 0:
		return 0, nil
	case 1:
		v, err := m.At(0, 0)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}

		return v, nil
	}

	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	rd := newReducer(d, o.eps, true)
	if rd.forward() < n {
		return 0, nil // singular
	}

	det := rd.details.Sign()
	for _, p := range rd.details.Pivots {
		det *= p
	}

	return det, nil
}

// Rank returns the number of pivots of m; defined for every shape.
// The empty matrix has rank 0.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Rank(m Matrix, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if d.IsEmpty() {
		return 0, nil
	}

	return newReducer(d, o.eps, false).forward(), nil
}

// Inverse returns A⁻¹ via Gauss-Jordan elimination.
// Implementation:
//   - Stage 1: validate (non-nil, square); 0×0 → empty result.
//   - Stage 2: forward elimination with logging; fewer than n pivots → ErrSingular.
//   - Stage 3: back-substitution, appending to the same log.
//   - Stage 4: replay the whole log (forward then back) onto Iₙ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²) plus the O(n²) log.
//
// AI-Hints:
//   - Use errors.Is(err, ErrSingular) to branch on non-invertible input.
//   - Verify with AllClose(Mul(A, inv), I, rtol, atol) on floating data.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	if n == 0 {
		return newDenseZeroOK(0, 0)
	}

	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	rd := newReducer(d, o.eps, true)
	if rd.forward() < n {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	rd.backSubstitute()

	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv.validateNaNInf = false // factors were derived from admitted input
	if err = inv.ApplyRowOps(rd.details.Operations); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv.validateNaNInf = d.validateNaNInf

	return inv, nil
}

// IsRowEchelonForm reports whether m is in row echelon form: the column of the
// first non-zero entry strictly increases from one non-zero row to the next,
// and all-zero rows appear only below every non-zero row. Pivot values are not
// required to be 1. An entry counts as zero when |x| <= eps (WithEpsilon).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the private copy.
func IsRowEchelonForm(m Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return false, matrixErrorf(opIsRowEchelonForm, err)
	}

	rows, cols := d.r, d.c
	lastLead := -1
	seenZeroRow := false

	var i, j, lead int
	for i = 0; i < rows; i++ {
		lead = -1
		for j = 0; j < cols; j++ {
			if d.data[i*cols+j] > o.eps || d.data[i*cols+j] < -o.eps {
				lead = j
				break
			}
		}
		if lead < 0 {
			seenZeroRow = true
			continue
		}
		if seenZeroRow || lead <= lastLead {
			return false, nil
		}
		lastLead = lead
	}

	return true, nil
}
