// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the arithmetic kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddSub_FastAndFallback checks both paths produce identical results.
func TestAddSub_FastAndFallback(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

	sumSlow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sumSlow)

	diff, err := matrix.Sub(b, hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{9, 18}, {27, 36}}, diff)

	// operands untouched
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
}

// TestAddSub_Errors covers nil and shape mismatches.
func TestAddSub_Errors(t *testing.T) {
	a := MustDense(t, 2, 2)
	_, err := matrix.Add(a, MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul covers the dense fast path, the fallback and the inner-dimension check.
func TestMul(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, got)

	got, err = matrix.Product(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, want, got)

	_, err = matrix.Mul(a, a)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	// identity is neutral
	got, err = matrix.Mul(IdentityDense(t, 2), a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, got)
}

// TestTransposeScale checks shape swap and scalar multiplication.
func TestTransposeScale(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	atSlow, err := matrix.T(hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, atSlow)

	s, err := matrix.ScaleBy(a, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s)

	_, err = matrix.Transpose(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec checks y = A·x on both paths and the length contract.
func TestMatVec(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	x := vector.New(1, -1)

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y.Values())

	y, err = matrix.MatVecMul(hide{a}, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y.Values())

	_, err = matrix.MatVec(a, vector.New(1, 2, 3))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTrace covers square, empty and non-square inputs.
func TestTrace(t *testing.T) {
	tr, err := matrix.Trace(MustFromRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)

	tr, err = matrix.Trace(IdentityDense(t, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, tr)

	_, err = matrix.Trace(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

// TestLerp checks endpoints, midpoint and parameter validation.
func TestLerp(t *testing.T) {
	a := MustFromRows(t, [][]float64{{0, 2}, {4, 6}})
	b := MustFromRows(t, [][]float64{{2, 4}, {6, 8}})

	mid, err := matrix.Lerp(a, b, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {5, 7}}, mid)

	start, err := matrix.Lerp(a, b, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 2}, {4, 6}}, start)

	end, err := matrix.Lerp(a, b, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 4}, {6, 8}}, end)

	for _, bad := range []float64{-0.1, 1.1, math.NaN()} {
		_, err = matrix.Lerp(a, b, bad)
		AssertErrorIs(t, err, matrix.ErrInterpolationParam)
	}
}

// TestAllClose checks the tolerance relation and its guards.
func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}})
	b := MustFromRows(t, [][]float64{{1 + 1e-12, 2}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, -1e-9, 0) // negative tolerance normalized
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	AssertErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	assert.False(t, matrix.ExportedCloseTo(math.NaN(), 1, 1, 1))
	assert.True(t, matrix.ExportedCloseTo(100, 101, 0.01, 0))
}
