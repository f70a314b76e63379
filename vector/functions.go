// SPDX-License-Identifier: MIT

package vector

import "math"

// Interpolation parameter bounds for Lerp/LerpScalar.
const (
	lerpMin = 0.0
	lerpMax = 1.0
)

// Dot returns Σ a[i]*b[i]. The dot product of two empty vectors is 0.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Dot(a, b *Vector) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	return dot(a.data, b.data), nil
}

// dot assumes equal lengths.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Cross returns the 3D cross product a × b.
//
//	(a.y*b.z - a.z*b.y, a.z*b.x - a.x*b.z, a.x*b.y - a.y*b.x)
//
// Errors: ErrNilVector, ErrNotThreeDimensional.
func Cross(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, vectorErrorf(opCross, ErrNilVector)
	}
	if len(a.data) != 3 || len(b.data) != 3 {
		return nil, vectorErrorf(opCross, ErrNotThreeDimensional)
	}
	ax, ay, az := a.data[0], a.data[1], a.data[2]
	bx, by, bz := b.data[0], b.data[1], b.data[2]

	return New(
		ay*bz-az*by,
		az*bx-ax*bz,
		ax*by-ay*bx,
	), nil
}

// Norm1 returns the Manhattan norm Σ|v[i]|.
func (v *Vector) Norm1() float64 {
	var sum float64
	for _, x := range v.data {
		sum += math.Abs(x)
	}

	return sum
}

// Norm returns the Euclidean norm sqrt(Σ v[i]^2).
func (v *Vector) Norm() float64 {
	return math.Sqrt(dot(v.data, v.data))
}

// NormInf returns the supremum norm max|v[i]| (0 for an empty vector).
func (v *Vector) NormInf() float64 {
	var best float64
	for _, x := range v.data {
		if ax := math.Abs(x); ax > best {
			best = ax
		}
	}

	return best
}

// AngleCos returns cos(θ) = (a·b) / (‖a‖·‖b‖).
// Errors: ErrNilVector, ErrDimensionMismatch, ErrEmptyVector, ErrZeroNorm.
// Complexity: O(n).
func AngleCos(a, b *Vector) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, vectorErrorf(opAngleCos, err)
	}
	if len(a.data) == 0 {
		return 0, vectorErrorf(opAngleCos, ErrEmptyVector)
	}
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0, vectorErrorf(opAngleCos, ErrZeroNorm)
	}

	return dot(a.data, b.data) / (na * nb), nil
}

// LinearCombination returns Σ coefs[k]*vs[k].
// All vectors must share one length and len(vs) must equal len(coefs).
//
// Errors:
//   - ErrEmptyVector when vs is empty (the result length is unknown).
//   - ErrNilVector, ErrDimensionMismatch.
//
// Complexity: O(k*n) for k vectors of length n.
func LinearCombination(vs []*Vector, coefs []float64) (*Vector, error) {
	if len(vs) != len(coefs) {
		return nil, vectorErrorf(opLinearCombination, ErrDimensionMismatch)
	}
	if len(vs) == 0 {
		return nil, vectorErrorf(opLinearCombination, ErrEmptyVector)
	}
	if vs[0] == nil {
		return nil, vectorErrorf(opLinearCombination, ErrNilVector)
	}
	n := len(vs[0].data)
	out := make([]float64, n)
	for k, v := range vs {
		if v == nil {
			return nil, vectorErrorf(opLinearCombination, ErrNilVector)
		}
		if len(v.data) != n {
			return nil, vectorErrorf(opLinearCombination, ErrDimensionMismatch)
		}
		c := coefs[k]
		for i, x := range v.data {
			out[i] += c * x
		}
	}

	return &Vector{data: out}, nil
}

// Lerp returns a + (b-a)*t for t in [0, 1].
// Errors: ErrNilVector, ErrDimensionMismatch, ErrInterpolationParam.
// Complexity: O(n).
func Lerp(a, b *Vector, t float64) (*Vector, error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(opLerp, err)
	}
	if !validLerpParam(t) {
		return nil, vectorErrorf(opLerp, ErrInterpolationParam)
	}
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = lerp(a.data[i], b.data[i], t)
	}

	return &Vector{data: out}, nil
}

// LerpScalar returns a + (b-a)*t for t in [0, 1].
// Errors: ErrInterpolationParam.
func LerpScalar(a, b, t float64) (float64, error) {
	if !validLerpParam(t) {
		return 0, vectorErrorf(opLerp, ErrInterpolationParam)
	}

	return lerp(a, b, t), nil
}

// validLerpParam rejects NaN as well as values outside [0, 1].
func validLerpParam(t float64) bool {
	return t >= lerpMin && t <= lerpMax
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
