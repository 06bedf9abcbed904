// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical algebra kernels used across the package.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - Kernels never mutate operands; every result is a freshly allocated *Dense.
//   - Numeric semantics follow T's arithmetic exactly (no widening, no zero-skip).

package matrix

import (
	"fmt"

	"github.com/FelixDubois/mu/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opZeros        = "Zeros"
	opIdentity     = "Identity"
	opFilled       = "Filled"
	opFromFlat     = "FromFlat"
	opFromRows     = "FromRows"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opNeg          = "Neg"
	opHadamard     = "Hadamard"
	opTrace        = "Trace"
	opPow          = "Pow"
	opPowField     = "PowField"
	opDivScalar    = "DivScalar"
	opMap          = "Map"
	opMatVec       = "MatVec"
	opEliminate    = "Eliminate"
	opDeterminant  = "Determinant"
	opRank         = "Rank"
	opInverse      = "Inverse"
	opSolve        = "Solve"
	opLU           = "LU"
	opRREF         = "ReducedEchelon"
	opMinor        = "Minor"
	opCofactor     = "Cofactor"
	opAdjugate     = "Adjugate"
	opQR           = "QR"
	opEigen        = "Eigen"
	opAllClose     = "AllClose"
	opVector       = "Vector"
	opDot          = "Dot"
	opIdentityLike = "IdentityLike"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ∘ b for ∘ ∈ {+, −}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); materialize both as *Dense.
//   - Stage 2: single flat loop 0..n-1 into a fresh buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T scalar.Ring[T]](a, b Matrix[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense[T]{r: da.r, c: da.c, data: make([]T, len(da.data))}
	for idx := range res.data { // deterministic 0..n-1
		if subtract {
			res.data[idx] = da.data[idx].Sub(db.data[idx])
		} else {
			res.data[idx] = da.data[idx].Add(db.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Add[T scalar.Ring[T]](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub[T scalar.Ring[T]](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, true, opSub)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j triple loop with row-major strides, accumulating into C.
//
// Behavior highlights:
//   - Deterministic loop order; one allocation for C.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T scalar.Ring[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDense[T](aRows, bCols)
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	// da.data layout: i*aCols + k; db.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] = res.data[rowOffsetR+j].Add(av.Mul(db.data[rowOffsetB+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Total for any well-formed input; the only error is a nil operand.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T scalar.Ring[T]](m Matrix[T]) (*Dense[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := &Dense[T]{r: cols, c: rows, data: make([]T, len(dm.data))}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// mapDense applies f to every element of m into a fresh matrix of the same shape.
func mapDense[T scalar.Ring[T], U scalar.Ring[U]](m *Dense[T], f func(T) U) *Dense[U] {
	res := &Dense[U]{r: m.r, c: m.c, data: make([]U, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}

	return res
}

// Scale returns alpha·m. Total; alpha = Zero yields an explicit zero matrix.
func Scale[T scalar.Ring[T]](m Matrix[T], alpha T) (*Dense[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return mapDense(dm, func(v T) T { return alpha.Mul(v) }), nil
}

// Neg returns −m.
func Neg[T scalar.Ring[T]](m Matrix[T]) (*Dense[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return mapDense(dm, func(v T) T { return v.Neg() }), nil
}

// Map converts every element of m with f, possibly changing the scalar type
// (e.g. Int → Rat for exact elimination of integer matrices).
func Map[T scalar.Ring[T], U scalar.Ring[U]](m Matrix[T], f func(T) U) (*Dense[U], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	return mapDense(dm, f), nil
}

// DivScalar returns m / d (each element divided by d).
//
// Errors:
//   - ErrDivisionByZero (matches ErrSingular) when d is zero within the epsilon.
func DivScalar[T scalar.Field[T]](m Matrix[T], d T, opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if d.IsZero(o.eps) {
		return nil, matrixErrorf(opDivScalar, ErrDivisionByZero)
	}

	return mapDense(dm, func(v T) T { return v.Div(d) }), nil
}

// Hadamard computes the elementwise product (a ⊙ b).
// Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Hadamard[T scalar.Ring[T]](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	res := &Dense[T]{r: da.r, c: da.c, data: make([]T, len(da.data))}
	for idx := range res.data {
		res.data[idx] = da.data[idx].Mul(db.data[idx])
	}

	return res, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
//
// Errors:
//   - ErrNonSquare (matches ErrDimensionMismatch).
func Trace[T scalar.Ring[T]](m Matrix[T]) (T, error) {
	var z T
	if err := ValidateSquareNonNil(m); err != nil {
		return z, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return z, matrixErrorf(opTrace, err)
	}

	sum := z.Zero()
	for i := 0; i < dm.r; i++ {
		sum = sum.Add(dm.data[i*dm.c+i])
	}

	return sum, nil
}

// Pow returns mⁿ for n >= 0 by binary exponentiation (m⁰ = I).
// For negative powers of an invertible matrix, compose Inverse and Pow.
//
// Errors:
//   - ErrNonSquare, ErrNegativeExponent.
//
// Complexity:
//   - O(n³ · log k) multiplications for an n×n input and exponent k.
func Pow[T scalar.Ring[T]](m Matrix[T], n int) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("n=%d: %w", n, ErrNegativeExponent))
	}
	base, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	acc, err := Identity[T](base.r)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	for n > 0 {
		if n&1 == 1 {
			if acc, err = Mul[T](acc, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = Mul[T](base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return acc, nil
}

// PowField extends Pow to negative exponents: m⁻ⁿ = (m⁻¹)ⁿ.
//
// Errors:
//   - ErrNonSquare; ErrSingular when n < 0 and m is not invertible.
func PowField[T scalar.Field[T]](m Matrix[T], n int, opts ...Option) (*Dense[T], error) {
	if n >= 0 {
		return Pow(m, n)
	}
	inv, err := Inverse(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opPowField, err)
	}

	return Pow[T](inv, -n)
}
