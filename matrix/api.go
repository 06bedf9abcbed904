// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points that delegate to the canonical kernels.
//   - No loop duplication: every facade composes or forwards.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/FelixDubois/mu/scalar"

const (
	opZerosLike  = "ZerosLike"
	opSymmetrize = "Symmetrize"
	opRowSums    = "RowSums"
	opColSums    = "ColSums"
)

// ---------- Constructors ----------

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T scalar.Ring[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return Zeros[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires square shape.
func IdentityLike[T scalar.Ring[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}

	return Identity[T](m.Rows())
}

// ---------- Linear algebra aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T scalar.Ring[T]](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T scalar.Ring[T]](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T scalar.Ring[T]](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E scalar.Ring[E]](m Matrix[E]) (*Dense[E], error) { return Transpose(m) }

// InverseOf is an alias for Inverse.
func InverseOf[T scalar.Field[T]](m Matrix[T], opts ...Option) (*Dense[T], error) {
	return Inverse(m, opts...)
}

// ---------- Convenience facades (compositions only) ----------

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → DivScalar.
// Requires 1+1 ≠ 0 in T, which holds for every scalar in this module.
func Symmetrize[T scalar.Field[T]](m Matrix[T]) (*Dense[T], error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	sum, err := Add[T](m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	half, err := DivScalar[T](sum, countOf[T](2))
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	return half, nil
}

// RowSums returns r with r[i] = Σ_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
func RowSums[T scalar.Ring[T]](m Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones, err := Ones[T](m.Cols(), 1)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	y, err := MatVec(m, &Vector[T]{col: ones})
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return y.Data(), nil
}

// ColSums returns c with c[j] = Σ_i m[i,j].
// Implementation: T(m) then RowSums.
func ColSums[T scalar.Ring[T]](m Matrix[T]) ([]T, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return RowSums[T](mt)
}
