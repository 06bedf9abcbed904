// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR TAXONOMY
// --------------
// Three recoverable kinds: dimension, index, singularity. Refinements wrap the
// kind they belong to, so errors.Is(ErrNonSquare, ErrDimensionMismatch) holds
// and callers can match either the precise cause or the broad kind.

var (
	// ErrDimensionMismatch indicates operand shapes incompatible with the
	// requested operation (construction, Add/Sub/Mul, non-square inputs).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public accessors (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned when an inverse or solve is requested on a
	// rank-deficient matrix.
	ErrSingular = errors.New("matrix: singular matrix")
)

var (
	// ErrInvalidDimensions: a requested size is < 1.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrDimensionMismatch)

	// ErrNonSquare: a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrRaggedRows: nested rows of unequal length were given to FromRows.
	ErrRaggedRows = fmt.Errorf("%w: rows have unequal lengths", ErrDimensionMismatch)

	// ErrEmpty: no rows or no columns were given to a constructor.
	ErrEmpty = fmt.Errorf("%w: no elements", ErrDimensionMismatch)

	// ErrDivisionByZero: a matrix was divided by a zero scalar.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrSingular)
)

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNegativeExponent: Pow was called with n < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not,
	// within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrEigenFailed indicates that the Jacobi iteration did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNaNInf signals a NaN or ±Inf tolerance argument.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds is an alias of ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
