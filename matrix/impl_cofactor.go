// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/FelixDubois/mu/scalar"
)

// Minor returns m with row `row` and column `col` removed.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch when m has fewer than 2 rows or 2 columns.
//   - ErrOutOfRange when row/col are outside m.
func Minor[T scalar.Ring[T]](m Matrix[T], row, col int) (*Dense[T], error) {
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if src.r < 2 || src.c < 2 {
		return nil, matrixErrorf(opMinor,
			fmt.Errorf("shape %d×%d, want at least 2×2: %w", src.r, src.c, ErrDimensionMismatch))
	}
	if _, err = src.indexOf(opMinor, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	out := &Dense[T]{r: src.r - 1, c: src.c - 1, data: make([]T, 0, (src.r-1)*(src.c-1))}
	var i, j int
	for i = 0; i < src.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < src.c; j++ {
			if j == col {
				continue
			}
			out.data = append(out.data, src.data[i*src.c+j])
		}
	}

	return out, nil
}

// Cofactor returns the cofactor matrix C with C[i,j] = (-1)^(i+j) · det(Minor(m,i,j)).
// The cofactor matrix of a 1×1 input is [1].
//
// Complexity:
//   - Time O(n⁵) (n² determinants of size n-1); intended for small matrices.
func Cofactor[T scalar.Field[T]](m Matrix[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	if n == 1 {
		return mustIdentity[T](1), nil
	}

	out := newDense[T](n, n)
	var (
		i, j int
		sub  *Dense[T]
		det  T
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if sub, err = Minor(m, i, j); err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			if det, err = Determinant[T](sub, opts...); err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			if (i+j)%2 == 1 {
				det = det.Neg()
			}
			out.data[i*n+j] = det
		}
	}

	return out, nil
}

// Adjugate returns the transpose of the cofactor matrix, so that
// m × Adjugate(m) = det(m) · I.
func Adjugate[T scalar.Field[T]](m Matrix[T], opts ...Option) (*Dense[T], error) {
	c, err := Cofactor(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return Transpose[T](c)
}
