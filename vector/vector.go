// SPDX-License-Identifier: MIT

// Package vector - Vector storage & safe accessors.
//
// Purpose:
//   - Own a contiguous []float64 buffer; callers never alias it.
//   - Public accessors return errors instead of panicking.
//
// Complexity quicksheet:
//   - New/Clone/Values: O(n); At/Set/Len: O(1); Append: amortized O(k).

package vector

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered, fixed-length sequence of float64 scalars.
// The zero value is an empty vector ready to use with Append.
type Vector struct {
	data []float64 // exclusively owned storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New returns a vector holding a copy of values.
// Complexity: O(n).
func New(values ...float64) *Vector {
	buf := make([]float64, len(values))
	copy(buf, values) // never alias the caller's slice

	return &Vector{data: buf}
}

// NewZeros returns a zero-filled vector of length n.
// Errors: ErrInvalidLength when n < 0.
// Complexity: O(n).
func NewZeros(n int) (*Vector, error) {
	if n < 0 {
		return nil, vectorErrorf(opNewZeros, ErrInvalidLength)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// Len returns the number of scalars.
func (v *Vector) Len() int { return len(v.data) }

// IsEmpty reports whether the vector holds no scalars.
func (v *Vector) IsEmpty() bool { return len(v.data) == 0 }

// At returns the scalar at index i or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Append grows the vector by the given scalars.
// Intended for construction only; vectors are otherwise fixed-length.
func (v *Vector) Append(x ...float64) {
	v.data = append(v.data, x...)
}

// Clone returns a deep copy.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	return New(v.data...)
}

// Values returns a copy of the scalars.
// Complexity: O(n).
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the vector as "[a, b, c]" using %g.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// ---------- Element-wise arithmetic ----------

// validatePair checks both operands are non-nil and of equal length.
func validatePair(a, b *Vector) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns a + b.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Add(a, b *Vector) (*Vector, error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] + b.data[i]
	}

	return &Vector{data: out}, nil
}

// Sub returns a - b.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Sub(a, b *Vector) (*Vector, error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(opSub, err)
	}
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = a.data[i] - b.data[i]
	}

	return &Vector{data: out}, nil
}

// Scale returns alpha*v.
// Errors: ErrNilVector.
// Complexity: O(n).
func Scale(v *Vector, alpha float64) (*Vector, error) {
	if v == nil {
		return nil, vectorErrorf(opScale, ErrNilVector)
	}
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x * alpha
	}

	return &Vector{data: out}, nil
}
