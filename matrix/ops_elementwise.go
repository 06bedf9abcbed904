// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private broadcast kernels (ew*) shared by the statistics helpers.
//   - Fixed i→j loops over flat row-major buffers; one allocation per call.

package matrix

import (
	"fmt"

	"github.com/FelixDubois/mu/scalar"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] − colVals[j].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubCols[T scalar.Ring[T]](x *Dense[T], colVals []T) (*Dense[T], error) {
	if len(colVals) != x.c {
		return nil, fmt.Errorf("broadcastSubCols: len=%d, want %d: %w", len(colVals), x.c, ErrDimensionMismatch)
	}
	out := &Dense[T]{r: x.r, c: x.c, data: make([]T, len(x.data))}
	var i, j, base int
	for i = 0; i < x.r; i++ {
		base = i * x.c
		for j = 0; j < x.c; j++ {
			out.data[base+j] = x.data[base+j].Sub(colVals[j])
		}
	}

	return out, nil
}

// ewBroadcastSubRows computes out[i,j] = X[i,j] − rowVals[i].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubRows[T scalar.Ring[T]](x *Dense[T], rowVals []T) (*Dense[T], error) {
	if len(rowVals) != x.r {
		return nil, fmt.Errorf("broadcastSubRows: len=%d, want %d: %w", len(rowVals), x.r, ErrDimensionMismatch)
	}
	out := &Dense[T]{r: x.r, c: x.c, data: make([]T, len(x.data))}
	var i, j, base int
	for i = 0; i < x.r; i++ {
		base = i * x.c
		for j = 0; j < x.c; j++ {
			out.data[base+j] = x.data[base+j].Sub(rowVals[i])
		}
	}

	return out, nil
}

// countOf returns n as an element of T (One added n times).
func countOf[T scalar.Ring[T]](n int) T {
	var z T
	acc, one := z.Zero(), z.One()
	for k := 0; k < n; k++ {
		acc = acc.Add(one)
	}

	return acc
}
