// SPDX-License-Identifier: MIT

// Package scalar defines the element types a matrix can be built from.
//
// Purpose:
//   - Describe the arithmetic a matrix kernel needs as two capability sets:
//     Ring (add, sub, mul, neg, identities, equality) and Field (Ring + div).
//   - Ship four concrete scalars covering the exact and approximate families:
//     Int (exact ring), Rat (exact field), Float and Complex (approximate fields).
//
// Exact vs approximate:
//
//	Every scalar answers IsZero(eps) and ApproxEqual(other, eps). Exact types
//	ignore eps and compare by value; approximate types compare |a-b| <= eps.
//	Generic algorithms (pivot selection, singularity detection) only ever call
//	these methods, so no float special-casing leaks into the matrix kernels.
//
// Values are immutable: every method returns a fresh value and never modifies
// its receiver or argument (Rat allocates a new *big.Rat per operation).
package scalar
