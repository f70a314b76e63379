// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
//
// Every message is prefixed with "vector: ..." for consistency. Functions
// wrap these sentinels with an operation tag; callers match them via errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVector indicates that a nil *Vector was passed where a value is required.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmptyVector indicates an operation that is undefined on a zero-length vector.
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrZeroNorm indicates a vector whose norm is zero where a direction is required.
	ErrZeroNorm = errors.New("vector: zero norm")

	// ErrNotThreeDimensional is returned by Cross for operands of length != 3.
	ErrNotThreeDimensional = errors.New("vector: cross product requires 3D vectors")

	// ErrInterpolationParam indicates an interpolation parameter outside [0, 1].
	ErrInterpolationParam = errors.New("vector: interpolation parameter must lie in [0, 1]")

	// ErrInvalidLength indicates a negative requested length.
	ErrInvalidLength = errors.New("vector: length must be >= 0")
)

// Operation tags for uniform error wrapping.
const (
	opAdd               = "Add"
	opSub               = "Sub"
	opScale             = "Scale"
	opDot               = "Dot"
	opCross             = "Cross"
	opAngleCos          = "AngleCos"
	opLinearCombination = "LinearCombination"
	opLerp              = "Lerp"
	opNewZeros          = "NewZeros"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
