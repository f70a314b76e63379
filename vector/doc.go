// SPDX-License-Identifier: MIT

// Package vector provides a fixed-length float64 Vector and the closed-form
// vector functions used around the row-reduction core:
//
//   - element-wise arithmetic: Add, Sub, Scale;
//   - products: Dot, Cross (3D only);
//   - norms: Norm1 (Manhattan), Norm (Euclidean), NormInf (supremum);
//   - AngleCos, LinearCombination, Lerp / LerpScalar.
//
// All binary operations validate their operands up front and return package
// sentinel errors (matched via errors.Is); inputs are never mutated and every
// result is freshly allocated.
//
// Complexity: every function is a single O(n) pass over the operands.
package vector
