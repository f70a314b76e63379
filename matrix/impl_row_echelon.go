// SPDX-License-Identifier: MIT

// Package matrix - row-reduction engine (Gaussian elimination with partial pivoting).
//
// Purpose:
//   - Bring any matrix (any shape, including empty, all-zero or rectangular)
//     to reduced row echelon form (RREF).
//   - Optionally record every elementary row operation and the pivot values,
//     so Determinant, Rank and Inverse consume one reduction pass instead of
//     re-deriving it.
//
// Algorithm (column-major scan):
//   - Stage 1 (forward): for each column, left to right, pick the row at or below
//     the pivot cursor with the largest |entry|; skip the column if every candidate
//     is zero. Swap it up, record the pivot, divide the row by it, and eliminate
//     every non-zero entry below. Advance the cursor.
//   - Stage 2 (back-substitution, default on): for each pivot left to right,
//     eliminate the entries above it.
//
// Determinism:
//   - Fixed loop orders; ties in partial pivoting resolve to the upper row.
//   - With the default eps=0, a pivot row divided by its own pivot holds an exact 1,
//     and every eliminated entry is an exact 0, so RREF(RREF(A)) == RREF(A) bitwise.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c) for the private copy, plus O(ops) when tracking.

package matrix

import (
	"fmt"
	"math"
)

// RowEchelonDetails is the record of one reduction pass.
// A fresh value is created per call and owned by the caller.
type RowEchelonDetails struct {
	// Operations lists every applied row operation in application order.
	// Replaying them on the original matrix reproduces the reduced matrix.
	Operations []RowOperation
	// Pivots holds the pivot value found at each pivot step (before normalization),
	// in the order the pivots were fixed (left to right).
	Pivots []float64
	// PivotColumns holds the column index of each pivot, parallel to Pivots.
	PivotColumns []int
	// ForwardOps is the number of leading Operations produced by forward elimination;
	// the rest come from back-substitution.
	ForwardOps int
}

// Rank returns the number of pivots found.
func (d *RowEchelonDetails) Rank() int { return len(d.Pivots) }

// Swaps counts the recorded row exchanges.
func (d *RowEchelonDetails) Swaps() int {
	n := 0
	for _, op := range d.Operations {
		if op.Kind == OpSwap && op.Target != op.Source {
			n++
		}
	}

	return n
}

// Sign returns -1 for an odd number of row exchanges and +1 otherwise.
func (d *RowEchelonDetails) Sign() float64 {
	if d.Swaps()%2 == 1 {
		return -1
	}

	return 1
}

// ForwardOperations returns the forward-elimination prefix of Operations.
func (d *RowEchelonDetails) ForwardOperations() []RowOperation {
	return d.Operations[:d.ForwardOps]
}

// reducer carries the state of one reduction over an exclusively owned Dense.
type reducer struct {
	d         *Dense
	eps       float64
	details   *RowEchelonDetails // nil disables tracking
	pivotCols []int              // always kept: back-substitution needs it
}

func newReducer(d *Dense, eps float64, track bool) *reducer {
	rd := &reducer{d: d, eps: eps}
	if track {
		rd.details = &RowEchelonDetails{}
	}

	return rd
}

// isZero applies the engine's zero test |x| <= eps.
func (rd *reducer) isZero(x float64) bool { return math.Abs(x) <= rd.eps }

func (rd *reducer) record(op RowOperation) {
	if rd.details != nil {
		rd.details.Operations = append(rd.details.Operations, op)
	}
}

// forward runs Stage 1 and returns the number of pivots found.
func (rd *reducer) forward() int {
	d := rd.d
	rows, cols := d.r, d.c

	var (
		pivotRow, col, i, best int
		bestAbs, a, pivot, f   float64
	)
	for col = 0; col < cols && pivotRow < rows; col++ {
		// partial pivoting: strict > keeps the upper row on ties
		best = pivotRow
		bestAbs = math.Abs(d.data[pivotRow*cols+col])
		for i = pivotRow + 1; i < rows; i++ {
			if a = math.Abs(d.data[i*cols+col]); a > bestAbs {
				best, bestAbs = i, a
			}
		}
		if bestAbs <= rd.eps {
			continue // no pivot in this column
		}

		if best != pivotRow {
			d.swapRows(best, pivotRow)
			rd.record(SwapRowsOp(best, pivotRow))
		}

		pivot = d.data[pivotRow*cols+col]
		if rd.details != nil {
			rd.details.Pivots = append(rd.details.Pivots, pivot)
			rd.details.PivotColumns = append(rd.details.PivotColumns, col)
		}
		d.divideRow(pivotRow, pivot)
		rd.record(DivideRowOp(pivotRow, pivot))

		for i = pivotRow + 1; i < rows; i++ {
			f = d.data[i*cols+col]
			if rd.isZero(f) {
				continue
			}
			d.addScaledRow(i, pivotRow, -f)
			rd.record(AddScaledRowOp(i, pivotRow, -f))
		}

		rd.pivotCols = append(rd.pivotCols, col)
		pivotRow++
	}
	if rd.details != nil {
		rd.details.ForwardOps = len(rd.details.Operations)
	}

	return pivotRow
}

// backSubstitute runs Stage 2: zero out entries above each pivot, left to right.
// Requires forward to have run on the same reducer.
func (rd *reducer) backSubstitute() {
	d := rd.d
	cols := d.c

	var i int
	var f float64
	for k, col := range rd.pivotCols {
		for i = 0; i < k; i++ {
			f = d.data[i*cols+col]
			if rd.isZero(f) {
				continue
			}
			d.addScaledRow(i, k, -f)
			rd.record(AddScaledRowOp(i, k, -f))
		}
	}
}

// run executes the configured stages.
func (rd *reducer) run(backSubstitution bool) {
	if rd.d.IsEmpty() {
		return
	}
	rd.forward()
	if backSubstitution {
		rd.backSubstitute()
	}
}

// RowEchelon returns the reduced row echelon form of m as a new Dense.
// m is never mutated. With WithForwardOnly the result stops after forward
// elimination (unit pivots, zeros below, entries above pivots kept).
//
// Errors:
//   - ErrNilMatrix; At errors of a broken Matrix implementation.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
//
// AI-Hints:
//   - Use RowEchelonWithDetails when the operation log or the pivots are needed.
//   - Pass WithEpsilon for floating data that is rank-deficient in exact arithmetic.
func RowEchelon(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	newReducer(d, o.eps, false).run(o.backSubstitution)

	return d, nil
}

// RowEchelonWithDetails is RowEchelon plus the operation log and tracked pivots.
//
// Invariants of the returned pair:
//   - details.Rank() equals the rank of m under the configured eps.
//   - Replay(m, details.Operations) equals the returned matrix exactly.
//
// Errors:
//   - ErrNilMatrix; At errors of a broken Matrix implementation.
func RowEchelonWithDetails(m Matrix, opts ...Option) (*Dense, *RowEchelonDetails, error) {
	o := gatherOptions(opts...)
	d, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRowEchelon, err)
	}
	rd := newReducer(d, o.eps, true)
	rd.run(o.backSubstitution)

	return d, rd.details, nil
}

// ReduceInPlace reduces d itself and returns the details of the pass.
// It is the explicit mutating variant for callers that own d and want to skip the copy.
//
// Errors:
//   - ErrNilMatrix.
func ReduceInPlace(d *Dense, opts ...Option) (*RowEchelonDetails, error) {
	if d == nil {
		return nil, matrixErrorf(opReduceInPlace, fmt.Errorf("Dense: %w", ErrNilMatrix))
	}
	o := gatherOptions(opts...)
	rd := newReducer(d, o.eps, true)
	rd.run(o.backSubstitution)

	return rd.details, nil
}
