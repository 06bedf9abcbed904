// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column/row centering and sample covariance as compositions over
//     canonical kernels (RowSums/ColSums, Transpose, Mul, DivScalar) and ew* broadcasts.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)  // subtract per-column mean
//   - CenterRows(X)    -> (Xc, means)  // subtract per-row mean
//   - Covariance(X)    -> (Cov, means) // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism:
//   - Fixed i→j traversal for all explicit loops; exact for Rat, rounded for Float.

package matrix

import (
	"fmt"

	"github.com/FelixDubois/mu/scalar"
)

const (
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
	opCovariance    = "Covariance"
)

// meansOf divides each sum by count.
func meansOf[T scalar.Field[T]](sums []T, count int) []T {
	n := countOf[T](count)
	out := make([]T, len(sums))
	for i, s := range sums {
		out[i] = s.Div(n)
	}

	return out
}

// CenterColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: ColSums, divided by Rows → column means.
//   - Stage 2: ewBroadcastSubCols into a fresh copy.
//
// Returns:
//   - centered copy (r×c) and the column means (len = c).
//
// Errors:
//   - ErrNilMatrix.
func CenterColumns[T scalar.Field[T]](x Matrix[T]) (*Dense[T], []T, error) {
	dx, err := asDense(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	sums, err := ColSums[T](dx)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means := meansOf(sums, dx.r)
	out, err := ewBroadcastSubCols(dx, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return out, means, nil
}

// CenterRows subtracts the per-row mean from every element; returns the copy and the row means.
func CenterRows[T scalar.Field[T]](x Matrix[T]) (*Dense[T], []T, error) {
	dx, err := asDense(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	sums, err := RowSums[T](dx)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	means := meansOf(sums, dx.c)
	out, err := ewBroadcastSubRows(dx, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return out, means, nil
}

// Covariance computes the sample covariance of the columns of x:
//
//	Cov = (Xcᵀ Xc)/(r-1), with Xc = CenterColumns(x).
//
// Returns Cov (c×c, symmetric) and the column means.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when x has fewer than 2 rows.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func Covariance[T scalar.Field[T]](x Matrix[T], opts ...Option) (*Dense[T], []T, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if x.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance,
			fmt.Errorf("%d rows, want at least 2: %w", x.Rows(), ErrDimensionMismatch))
	}
	xc, means, err := CenterColumns(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	xt, err := Transpose[T](xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	gram, err := Mul[T](xt, xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := DivScalar[T](gram, countOf[T](x.Rows()-1), opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}
