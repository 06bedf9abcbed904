// SPDX-License-Identifier: MIT

package matrix

import "github.com/FelixDubois/mu/scalar"

// Matrix is the read-only view every kernel accepts.
// *Dense[T] and *Vector[T] implement it; callers may supply their own
// implementations, which kernels materialize through At before computing.
type Matrix[T scalar.Ring[T]] interface {
	// Rows returns the number of rows (>= 1 for well-formed values).
	Rows() int

	// Cols returns the number of columns (>= 1 for well-formed values).
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (T, error)
}
