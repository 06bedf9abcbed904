// SPDX-License-Identifier: MIT

// Package matrix - Vector: a column vector backed by an n×1 Dense.
//
// Purpose:
//   - Give vector-shaped data its own accessors (Len, AtVec, SetVec) while
//     keeping it a Matrix, so every kernel accepts it directly.
//   - Share all storage rules with Dense: row-major, copied on write.

package matrix

import (
	"fmt"

	"github.com/FelixDubois/mu/scalar"
)

const (
	ctxAtVec  = "AtVec"
	ctxSetVec = "SetVec"
)

// Vector is an immutable column vector of length >= 1.
type Vector[T scalar.Ring[T]] struct {
	col *Dense[T] // n×1
}

var (
	_ Matrix[scalar.Float] = (*Vector[scalar.Float])(nil)
	_ fmt.Stringer         = (*Vector[scalar.Float])(nil)
)

// NewVector builds a vector from elems (copied).
//
// Errors:
//   - ErrEmpty when elems is empty.
func NewVector[T scalar.Ring[T]](elems []T) (*Vector[T], error) {
	if len(elems) == 0 {
		return nil, matrixErrorf(opVector, ErrEmpty)
	}
	col, err := FromFlat(elems, len(elems), 1)
	if err != nil {
		return nil, matrixErrorf(opVector, err)
	}

	return &Vector[T]{col: col}, nil
}

// VectorZeros returns the zero vector of length n.
func VectorZeros[T scalar.Ring[T]](n int) (*Vector[T], error) {
	col, err := Zeros[T](n, 1)
	if err != nil {
		return nil, matrixErrorf(opVector, err)
	}

	return &Vector[T]{col: col}, nil
}

// AsVector views a single-column matrix as a Vector (the data is copied).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m.Cols() != 1.
func AsVector[T scalar.Ring[T]](m Matrix[T]) (*Vector[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opVector, err)
	}
	if dm.c != 1 {
		return nil, matrixErrorf(opVector,
			fmt.Errorf("%d columns, want 1: %w", dm.c, ErrDimensionMismatch))
	}

	return &Vector[T]{col: dm.Clone()}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.col.r }

// Rows returns Len().
func (v *Vector[T]) Rows() int { return v.col.r }

// Cols is always 1.
func (v *Vector[T]) Cols() int { return 1 }

// At implements Matrix; only col == 0 is valid.
func (v *Vector[T]) At(row, col int) (T, error) { return v.col.At(row, col) }

// AtVec returns element i.
//
// Errors:
//   - ErrOutOfRange when i ∉ [0,Len).
func (v *Vector[T]) AtVec(i int) (T, error) {
	idx, err := v.col.indexOf(ctxAtVec, i, 0)
	if err != nil {
		var z T
		return z, err
	}

	return v.col.data[idx], nil
}

// SetVec returns a copy of v with element i replaced by x.
func (v *Vector[T]) SetVec(i int, x T) (*Vector[T], error) {
	if _, err := v.col.indexOf(ctxSetVec, i, 0); err != nil {
		return nil, err
	}
	out := v.col.Clone()
	out.data[i] = x

	return &Vector[T]{col: out}, nil
}

// Data returns a copy of the elements.
func (v *Vector[T]) Data() []T { return v.col.Data() }

// Dense returns the vector as a fresh n×1 matrix.
func (v *Vector[T]) Dense() *Dense[T] { return v.col.Clone() }

// String renders one element per line.
func (v *Vector[T]) String() string { return v.col.String() }

// Dot returns Σ a[i]·b[i].
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch on length mismatch.
func Dot[T scalar.Ring[T]](a, b *Vector[T]) (T, error) {
	var z T
	if err := ValidateBinarySameShape[T](a, b); err != nil {
		return z, matrixErrorf(opDot, err)
	}

	sum := z.Zero()
	for i, x := range a.col.data {
		sum = sum.Add(x.Mul(b.col.data[i]))
	}

	return sum, nil
}

// AddVec returns a + b.
func AddVec[T scalar.Ring[T]](a, b *Vector[T]) (*Vector[T], error) {
	sum, err := Add[T](a, b)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{col: sum}, nil
}

// SubVec returns a − b.
func SubVec[T scalar.Ring[T]](a, b *Vector[T]) (*Vector[T], error) {
	diff, err := Sub[T](a, b)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{col: diff}, nil
}

// ScaleVec returns alpha·v.
func ScaleVec[T scalar.Ring[T]](v *Vector[T], alpha T) (*Vector[T], error) {
	out, err := Scale[T](v, alpha)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{col: out}, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m.Cols() != x.Len().
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T scalar.Ring[T]](m Matrix[T], x *Vector[T]) (*Vector[T], error) {
	if err := ValidateMulCompatible[T](m, x); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y, err := Mul[T](m, x)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return &Vector[T]{col: y}, nil
}

// SolveVec returns x with a·x = b.
//
// Errors:
//   - as Solve.
func SolveVec[T scalar.Field[T]](a Matrix[T], b *Vector[T], opts ...Option) (*Vector[T], error) {
	if err := ValidateNotNil[T](b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := Solve[T](a, b, opts...)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{col: x}, nil
}
