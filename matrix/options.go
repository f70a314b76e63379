// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and the
// row-reduction engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Zero policy: the engine treats an entry x as zero iff |x| <= eps.
//     The default eps is 0, i.e. exact equality. Exact equality keeps results
//     bit-reproducible and matches exact-arithmetic expectations, but a tiny
//     residual left by earlier elimination steps then counts as a pivot.
//     Floating workloads that expect rank deficiency (e.g. [[1,2,3],[4,5,6],[7,8,9]])
//     should pass WithEpsilon.
//   - Entries within eps are never rewritten: the reduced matrix may still hold
//     residuals of magnitude <= eps. Validate such results with the same eps.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the zero tolerance of the reduction engine (exact equality).
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Reduction policy.
const (
	// DefaultBackSubstitution makes RowEchelon produce the reduced row echelon
	// form (entries above pivots zeroed). When false, only forward elimination runs.
	DefaultBackSubstitution = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Its fields are unexported; public entry points accept `...Option` and
// resolve them via gatherOptions.
type Options struct {
	eps              float64 // >= 0; DefaultEpsilon
	validateNaNInf   bool    // DefaultValidateNaNInf
	backSubstitution bool    // DefaultBackSubstitution
}

// Epsilon returns the effective zero tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether constructors reject NaN/±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// BackSubstitution reports whether the engine zeroes entries above pivots.
func (o Options) BackSubstitution() bool { return o.backSubstitution }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the zero tolerance used by the reduction engine, the
// derived operations and IsRowEchelonForm: |x| <= eps counts as zero.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - 1e-9 to 1e-12 is a reasonable band for well-scaled double-precision data.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Affects matrices created by constructors that accept options.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithForwardOnly stops the engine after forward elimination: the result is
// upper-triangular with unit pivots, and entries above pivots are kept.
// Determinant and Rank run in this mode internally.
func WithForwardOnly() Option {
	return func(o *Options) { o.backSubstitution = false }
}

// WithBackSubstitution restores the default full RREF behavior.
func WithBackSubstitution() Option {
	return func(o *Options) { o.backSubstitution = true }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:              DefaultEpsilon,
		validateNaNInf:   DefaultValidateNaNInf,
		backSubstitution: DefaultBackSubstitution,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order; last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
