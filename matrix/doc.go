// SPDX-License-Identifier: MIT

// Package matrix provides an immutable, generic dense matrix over the scalar
// types of package scalar (Int, Rat, Float, Complex).
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix whose values never change after
//     construction: Set returns a modified copy, every kernel returns a
//     fresh result.
//   - Vector[T], a column vector backed by an n×1 Dense; it is a Matrix, so
//     every kernel accepts it.
//   - Ring kernels (Add, Sub, Mul, Scale, Hadamard, Transpose, Trace, Pow)
//     for any scalar.Ring.
//   - Field kernels built on one partial-pivoting elimination routine:
//     Eliminate, ReducedEchelon, Determinant, Rank, Inverse, Solve, LU, and
//     the cofactor family (Minor, Cofactor, Adjugate).
//   - Float-only decompositions needing square roots (QR, Eigen) and the
//     tolerance comparison AllClose.
//
// Errors are package sentinels wrapped with an operation tag; match them with
// errors.Is. Refinements such as ErrNonSquare also match their kind
// (ErrDimensionMismatch). Kernels never panic on user input.
//
// Exact scalars (Int, Rat) make every result exact; Int is a Ring only, so
// convert with Map(m, scalar.IntToRat) before calling Field kernels.
// Approximate scalars (Float, Complex) treat values within the WithEpsilon
// tolerance (DefaultEpsilon) as zero when choosing pivots.
package matrix
