// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the tolerance under which an approximate pivot candidate
// is treated as the additive identity. Exact scalars ignore it.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved zero tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the zero tolerance used by elimination-based kernels
// (Eliminate, Determinant, Rank, Inverse, Solve, LU, DivScalar).
//
// Behavior highlights:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//   - eps = 0 turns pivot detection into exact comparison even for Float.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts on top of the defaults. Useful for inspecting the
// effective policy; kernels call gatherOptions internally.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters in order on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
