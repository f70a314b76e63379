// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations and their log.
//
// Purpose:
//   - Describe the three elementary row operations (swap, scale/divide, add a
//     multiple of another row) as plain values that can be stored, printed,
//     inverted and replayed.
//   - Provide checked Dense primitives that apply one operation and return its
//     record, plus unchecked internal variants used by the reduction engine.
//
// Determinism:
//   - Replaying a log on the matrix it was recorded from reproduces the
//     engine result bit-for-bit: both run the same primitives in the same order.
//
// AI-Hints:
//   - Replay a forward+back log onto the identity to obtain A⁻¹ (see Inverse).
//   - Apply op.Inverse() in reverse order to undo a log.

package matrix

import (
	"fmt"
	"math"
)

// RowOpKind enumerates the elementary row operations.
type RowOpKind uint8

// Row operation kinds. The zero value is not a valid kind.
const (
	// OpSwap exchanges rows Target and Source.
	OpSwap RowOpKind = iota + 1
	// OpScale multiplies row Target by Factor.
	OpScale
	// OpDivide divides row Target by a non-zero Factor.
	OpDivide
	// OpAddScaledRow adds Factor × row Source to row Target.
	OpAddScaledRow
)

// String returns the kind mnemonic.
func (k RowOpKind) String() string {
	switch k {
	case OpSwap:
		return "Swap"
	case OpScale:
		return "Scale"
	case OpDivide:
		return "Divide"
	case OpAddScaledRow:
		return "AddScaledRow"
	default:
		return fmt.Sprintf("RowOpKind(%d)", uint8(k))
	}
}

// RowOperation records one elementary row operation.
//   - OpSwap uses Target and Source; Factor is ignored.
//   - OpScale and OpDivide use Target and Factor; Source is ignored.
//   - OpAddScaledRow performs row[Target] += Factor * row[Source].
type RowOperation struct {
	Kind   RowOpKind
	Target int
	Source int
	Factor float64
}

// SwapRowsOp builds the record that exchanges rows a and b.
func SwapRowsOp(a, b int) RowOperation { return RowOperation{Kind: OpSwap, Target: a, Source: b} }

// ScaleRowOp builds the record that multiplies row by factor.
func ScaleRowOp(row int, factor float64) RowOperation {
	return RowOperation{Kind: OpScale, Target: row, Factor: factor}
}

// DivideRowOp builds the record that divides row by divisor.
func DivideRowOp(row int, divisor float64) RowOperation {
	return RowOperation{Kind: OpDivide, Target: row, Factor: divisor}
}

// AddScaledRowOp builds the record row[target] += factor * row[source].
func AddScaledRowOp(target, source int, factor float64) RowOperation {
	return RowOperation{Kind: OpAddScaledRow, Target: target, Source: source, Factor: factor}
}

// String renders the operation in a compact, human-readable form.
func (op RowOperation) String() string {
	switch op.Kind {
	case OpSwap:
		return fmt.Sprintf("R%d <-> R%d", op.Target, op.Source)
	case OpScale:
		return fmt.Sprintf("R%d *= %g", op.Target, op.Factor)
	case OpDivide:
		return fmt.Sprintf("R%d /= %g", op.Target, op.Factor)
	case OpAddScaledRow:
		return fmt.Sprintf("R%d += %g*R%d", op.Target, op.Factor, op.Source)
	default:
		return op.Kind.String()
	}
}

// Inverse returns the operation that undoes op.
//   - Swap is its own inverse.
//   - Scale(f) and Divide(f) invert each other.
//   - AddScaledRow(f) is undone by AddScaledRow(-f).
//
// An unknown kind is returned unchanged; applying it yields ErrUnknownOperation.
func (op RowOperation) Inverse() RowOperation {
	switch op.Kind {
	case OpScale:
		op.Kind = OpDivide
	case OpDivide:
		op.Kind = OpScale
	case OpAddScaledRow:
		op.Factor = -op.Factor
	}

	return op
}

// ---------- checked Dense primitives ----------

const (
	ctxSwapRows     = "SwapRows"
	ctxScaleRow     = "ScaleRow"
	ctxDivideRow    = "DivideRow"
	ctxAddScaledRow = "AddScaledRow"
	ctxApplyRowOp   = "ApplyRowOp"
)

// checkRow validates a row index against m.
func (m *Dense) checkRow(method string, row int) error {
	if err := ValidateRowIndex(m, row); err != nil {
		return fmt.Errorf("Dense.%s: %w", method, err)
	}

	return nil
}

// checkFactor applies the numeric policy to a row factor.
func (m *Dense) checkFactor(method string, f float64) error {
	if m.validateNaNInf && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return fmt.Errorf("Dense.%s: %w", method, ErrNaNInf)
	}

	return nil
}

// SwapRows exchanges rows a and b in place and returns the recorded operation.
// Swapping a row with itself is a valid no-op.
//
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) SwapRows(a, b int) (RowOperation, error) {
	if err := m.checkRow(ctxSwapRows, a); err != nil {
		return RowOperation{}, err
	}
	if err := m.checkRow(ctxSwapRows, b); err != nil {
		return RowOperation{}, err
	}
	m.swapRows(a, b)

	return SwapRowsOp(a, b), nil
}

// ScaleRow multiplies every entry of row by factor in place.
//
// Errors: ErrOutOfRange; ErrNaNInf for a non-finite factor under the numeric policy.
// Complexity: O(c).
func (m *Dense) ScaleRow(row int, factor float64) (RowOperation, error) {
	if err := m.checkRow(ctxScaleRow, row); err != nil {
		return RowOperation{}, err
	}
	if err := m.checkFactor(ctxScaleRow, factor); err != nil {
		return RowOperation{}, err
	}
	m.scaleRow(row, factor)

	return ScaleRowOp(row, factor), nil
}

// DivideRow divides every entry of row by divisor in place.
//
// Errors: ErrOutOfRange; ErrZeroDivisor; ErrNaNInf under the numeric policy.
// Complexity: O(c).
func (m *Dense) DivideRow(row int, divisor float64) (RowOperation, error) {
	if err := m.checkRow(ctxDivideRow, row); err != nil {
		return RowOperation{}, err
	}
	if divisor == 0 {
		return RowOperation{}, fmt.Errorf("Dense.%s: %w", ctxDivideRow, ErrZeroDivisor)
	}
	if err := m.checkFactor(ctxDivideRow, divisor); err != nil {
		return RowOperation{}, err
	}
	m.divideRow(row, divisor)

	return DivideRowOp(row, divisor), nil
}

// AddScaledRow performs row[target] += factor * row[source] in place.
// target == source is allowed and scales the row by (1 + factor).
//
// Errors: ErrOutOfRange; ErrNaNInf under the numeric policy.
// Complexity: O(c).
func (m *Dense) AddScaledRow(target, source int, factor float64) (RowOperation, error) {
	if err := m.checkRow(ctxAddScaledRow, target); err != nil {
		return RowOperation{}, err
	}
	if err := m.checkRow(ctxAddScaledRow, source); err != nil {
		return RowOperation{}, err
	}
	if err := m.checkFactor(ctxAddScaledRow, factor); err != nil {
		return RowOperation{}, err
	}
	m.addScaledRow(target, source, factor)

	return AddScaledRowOp(target, source, factor), nil
}

// ApplyRowOp applies a recorded operation to m in place.
//
// Errors: ErrUnknownOperation plus any error of the underlying primitive.
func (m *Dense) ApplyRowOp(op RowOperation) error {
	var err error
	switch op.Kind {
	case OpSwap:
		_, err = m.SwapRows(op.Target, op.Source)
	case OpScale:
		_, err = m.ScaleRow(op.Target, op.Factor)
	case OpDivide:
		_, err = m.DivideRow(op.Target, op.Factor)
	case OpAddScaledRow:
		_, err = m.AddScaledRow(op.Target, op.Source, op.Factor)
	default:
		err = fmt.Errorf("Dense.%s(%s): %w", ctxApplyRowOp, op.Kind, ErrUnknownOperation)
	}

	return err
}

// ApplyRowOps applies ops in order and stops at the first failure.
// Operations before the failing one stay applied.
func (m *Dense) ApplyRowOps(ops []RowOperation) error {
	for idx, op := range ops {
		if err := m.ApplyRowOp(op); err != nil {
			return fmt.Errorf("op #%d: %w", idx, err)
		}
	}

	return nil
}

// Replay applies ops to a private copy of m and returns the copy; m is untouched.
//
// Errors: ErrNilMatrix; any ApplyRowOp error.
// Complexity: O(len(ops) * c) plus the O(r*c) copy.
func Replay(m Matrix, ops []RowOperation) (*Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opReplay, err)
	}
	if err = d.ApplyRowOps(ops); err != nil {
		return nil, matrixErrorf(opReplay, err)
	}

	return d, nil
}

// ---------- unchecked primitives (engine hot path) ----------

// swapRows exchanges two rows; a == b is a no-op.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

func (m *Dense) scaleRow(row int, f float64) {
	r := m.data[row*m.c : (row+1)*m.c]
	for j := range r {
		r[j] *= f
	}
}

func (m *Dense) divideRow(row int, f float64) {
	r := m.data[row*m.c : (row+1)*m.c]
	for j := range r {
		r[j] /= f
	}
}

func (m *Dense) addScaledRow(target, source int, f float64) {
	rt := m.data[target*m.c : (target+1)*m.c]
	rs := m.data[source*m.c : (source+1)*m.c]
	for j := range rt {
		rt[j] += f * rs[j]
	}
}
