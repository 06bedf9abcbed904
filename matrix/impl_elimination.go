// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination with partial pivoting and its derivations.
//
// Purpose:
//   - One private routine (reduceInPlace) owns all pivoting logic.
//   - Eliminate, Determinant, Rank, Inverse, Solve and ReducedEchelon are thin
//     derivations over it; LU reuses the same pivot selection.
//
// Numeric policy:
//   - Pivot = candidate with the largest Magnitude() in the current column.
//   - A column whose candidates are all zero (IsZero(eps)) is skipped: no pivot,
//     rank unchanged, elimination continues with the next column.
//   - eps comes from WithEpsilon (DefaultEpsilon); exact scalars ignore it.

package matrix

import (
	"fmt"

	"github.com/FelixDubois/mu/scalar"
)

// Echelon is the result of Eliminate.
type Echelon[T scalar.Field[T]] struct {
	// Matrix is the row-echelon form (a fresh copy; the input is untouched).
	Matrix *Dense[T]
	// Sign is +1 or -1: the parity of the row swaps performed.
	Sign int
	// Rank is the number of pivots found.
	Rank int
	// Pivots lists the pivot column of each pivot row (len == Rank).
	Pivots []int
}

// selectPivot returns the row in [from, Rows) holding the largest-magnitude
// non-zero entry of column col, or -1 when every candidate is zero within eps.
func selectPivot[T scalar.Field[T]](w *Dense[T], from, col int, eps float64) int {
	best, bestMag := -1, 0.0
	var v T
	for i := from; i < w.r; i++ {
		v = w.data[i*w.c+col]
		if v.IsZero(eps) {
			continue
		}
		// The first non-zero candidate always wins over "none", even if its
		// float magnitude underflows to 0 (tiny exact rationals).
		if mag := v.Magnitude(); best < 0 || mag > bestMag {
			best, bestMag = i, mag
		}
	}

	return best
}

// reduceInPlace runs elimination on w, choosing pivots among the first
// pivotCols columns and applying row operations across all columns (so an
// augmented block [A | B] is carried along).
//
// Implementation:
//   - Stage 1: for each column, select a pivot (partial pivoting) or skip it.
//   - Stage 2: swap the pivot row up (flipping sign).
//   - Stage 3a (reduced=false): eliminate below the pivot → row-echelon form.
//   - Stage 3b (reduced=true):  normalize the pivot row to 1 and eliminate above
//     and below → reduced row-echelon form (Gauss–Jordan).
//
// Returns:
//   - sign: +1/-1 parity of row swaps.
//   - pivots: pivot column per pivot row; rank == len(pivots).
//
// Complexity:
//   - Time O(r · pivotCols · c), Space O(pivotCols).
func reduceInPlace[T scalar.Field[T]](w *Dense[T], pivotCols int, eps float64, reduced bool) (sign int, pivots []int) {
	var z T
	zero, one := z.Zero(), z.One()
	r, c := w.r, w.c
	sign = 1
	pivots = make([]int, 0, min(r, pivotCols))

	var (
		row, col, p, i, j int
		pivot, f          T
		pivotRowBase      int
	)
	for col = 0; col < pivotCols && row < r; col++ {
		p = selectPivot(w, row, col, eps)
		if p < 0 {
			// Singular column: flush the near-zero residue so the echelon shape is exact.
			for i = row; i < r; i++ {
				w.data[i*c+col] = zero
			}
			continue
		}
		if p != row {
			w.swapRows(p, row)
			sign = -sign
		}
		pivotRowBase = row * c
		pivot = w.data[pivotRowBase+col]

		if reduced {
			for j = col + 1; j < c; j++ {
				w.data[pivotRowBase+j] = w.data[pivotRowBase+j].Div(pivot)
			}
			w.data[pivotRowBase+col] = one
			for i = 0; i < r; i++ {
				if i == row {
					continue
				}
				f = w.data[i*c+col]
				w.data[i*c+col] = zero
				if f.IsZero(0) {
					continue
				}
				for j = col + 1; j < c; j++ {
					w.data[i*c+j] = w.data[i*c+j].Sub(f.Mul(w.data[pivotRowBase+j]))
				}
			}
		} else {
			for i = row + 1; i < r; i++ {
				f = w.data[i*c+col].Div(pivot)
				w.data[i*c+col] = zero
				if f.IsZero(0) {
					continue
				}
				for j = col + 1; j < c; j++ {
					w.data[i*c+j] = w.data[i*c+j].Sub(f.Mul(w.data[pivotRowBase+j]))
				}
			}
		}

		pivots = append(pivots, col)
		row++
	}

	return sign, pivots
}

// Eliminate reduces m to row-echelon form using partial pivoting.
//
// Behavior highlights:
//   - Total over any well-formed matrix: rank deficiency is reported through
//     Rank < min(Rows, Cols), never as an error.
//   - The input is not mutated; Echelon.Matrix is a fresh copy.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (zero-value Dense).
func Eliminate[T scalar.Field[T]](m Matrix[T], opts ...Option) (Echelon[T], error) {
	o := gatherOptions(opts...)
	src, err := asDense(m)
	if err != nil {
		return Echelon[T]{}, matrixErrorf(opEliminate, err)
	}
	work := src.Clone()
	sign, pivots := reduceInPlace(work, work.c, o.eps, false)

	return Echelon[T]{Matrix: work, Sign: sign, Rank: len(pivots), Pivots: pivots}, nil
}

// ReducedEchelon returns the reduced row-echelon form (RREF) of m and its rank.
func ReducedEchelon[T scalar.Field[T]](m Matrix[T], opts ...Option) (*Dense[T], int, error) {
	o := gatherOptions(opts...)
	src, err := asDense(m)
	if err != nil {
		return nil, 0, matrixErrorf(opRREF, err)
	}
	work := src.Clone()
	_, pivots := reduceInPlace(work, work.c, o.eps, true)

	return work, len(pivots), nil
}

// Determinant returns det(m) = Sign × ∏ diag(echelon).
// A rank-deficient input yields exactly Zero.
//
// Tolerance:
//   - For Float/Complex a pivot candidate with |x| <= eps counts as zero. eps is
//     absolute (DefaultEpsilon = 1e-9), so a well-conditioned matrix with small
//     entries such as diag(1e-10, 1e-10) is treated as singular; pass
//     WithEpsilon scaled to the data (or 0) in that case.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare (both match ErrDimensionMismatch).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant[T scalar.Field[T]](m Matrix[T], opts ...Option) (T, error) {
	var z T
	if err := ValidateSquareNonNil(m); err != nil {
		return z, matrixErrorf(opDeterminant, err)
	}
	e, err := Eliminate(m, opts...)
	if err != nil {
		return z, matrixErrorf(opDeterminant, err)
	}

	n := e.Matrix.r
	if e.Rank < n {
		return z.Zero(), nil
	}
	det := z.One()
	for i := 0; i < n; i++ {
		det = det.Mul(e.Matrix.data[i*n+i])
	}
	if e.Sign < 0 {
		det = det.Neg()
	}

	return det, nil
}

// Rank returns the number of pivots found by Eliminate.
func Rank[T scalar.Field[T]](m Matrix[T], opts ...Option) (int, error) {
	e, err := Eliminate(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return e.Rank, nil
}

// augment returns the r×(a.c+b.c) matrix [a | b]. Rows must match.
func augment[T scalar.Ring[T]](a, b *Dense[T]) *Dense[T] {
	w := &Dense[T]{r: a.r, c: a.c + b.c, data: make([]T, a.r*(a.c+b.c))}
	for i := 0; i < a.r; i++ {
		copy(w.data[i*w.c:], a.data[i*a.c:(i+1)*a.c])
		copy(w.data[i*w.c+a.c:], b.data[i*b.c:(i+1)*b.c])
	}

	return w
}

// rightBlock extracts columns [from, w.c) of w into a fresh matrix.
func rightBlock[T scalar.Ring[T]](w *Dense[T], from int) *Dense[T] {
	cols := w.c - from
	out := &Dense[T]{r: w.r, c: cols, data: make([]T, w.r*cols)}
	for i := 0; i < w.r; i++ {
		copy(out.data[i*cols:(i+1)*cols], w.data[i*w.c+from:(i+1)*w.c])
	}

	return out
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination of [m | I].
//
// Implementation:
//   - Stage 1: validate square; build the augmented block [m | I].
//   - Stage 2: reduceInPlace with pivots restricted to the left n columns.
//   - Stage 3: rank < n ⇒ ErrSingular; otherwise the right block is m⁻¹.
//
// Tolerance:
//   - Same absolute eps rule as Determinant: entries at or below eps (default
//     1e-9) are not pivots, so scale WithEpsilon to matrices with tiny entries.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T scalar.Field[T]](m Matrix[T], opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := src.r
	work := augment(src, mustIdentity[T](n))
	if _, pivots := reduceInPlace(work, n, o.eps, true); len(pivots) < n {
		return nil, matrixErrorf(opInverse, fmt.Errorf("rank %d < %d: %w", len(pivots), n, ErrSingular))
	}

	return rightBlock(work, n), nil
}

// Solve returns X with a×X = b for square a; b may carry several columns.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrNonSquare when a is not square; ErrDimensionMismatch when b.Rows != a.Rows.
//   - ErrSingular when a is rank-deficient.
func Solve[T scalar.Field[T]](a, b Matrix[T], opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.Rows() != a.Rows() {
		return nil, matrixErrorf(opSolve,
			fmt.Errorf("b has %d rows, want %d: %w", b.Rows(), a.Rows(), ErrDimensionMismatch))
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := da.r
	work := augment(da, db)
	if _, pivots := reduceInPlace(work, n, o.eps, true); len(pivots) < n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("rank %d < %d: %w", len(pivots), n, ErrSingular))
	}

	return rightBlock(work, n), nil
}

// LU computes the partially pivoted factorization P×A = L×U.
//
// Implementation:
//   - Stage 1: validate square; U starts as a copy of A, L as zeros, perm as 0..n-1.
//   - Stage 2: for each column k, select the pivot (same rule as Eliminate), swap
//     rows of U, perm and the already computed part of L, then store multipliers in L.
//   - Stage 3: set diag(L) = 1 and build P from perm.
//
// Behavior highlights:
//   - Singular inputs still factor: a skipped column leaves a zero on diag(U).
//
// Returns:
//   - P (permutation), L (unit lower triangular), U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func LU[T scalar.Field[T]](m Matrix[T], opts ...Option) (p, l, u *Dense[T], err error) {
	o := gatherOptions(opts...)
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	var z T
	zero, one := z.Zero(), z.One()
	n := src.r
	u = src.Clone()
	l = newDense[T](n, n)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, piv int
		f            T
	)
	for k = 0; k < n; k++ {
		piv = selectPivot(u, k, k, o.eps)
		if piv < 0 {
			for i = k; i < n; i++ {
				u.data[i*n+k] = zero
			}
			continue
		}
		if piv != k {
			u.swapRows(piv, k)
			perm[piv], perm[k] = perm[k], perm[piv]
			for j = 0; j < k; j++ { // only the computed multipliers move
				l.data[piv*n+j], l.data[k*n+j] = l.data[k*n+j], l.data[piv*n+j]
			}
		}
		for i = k + 1; i < n; i++ {
			f = u.data[i*n+k].Div(u.data[k*n+k])
			l.data[i*n+k] = f
			u.data[i*n+k] = zero
			for j = k + 1; j < n; j++ {
				u.data[i*n+j] = u.data[i*n+j].Sub(f.Mul(u.data[k*n+j]))
			}
		}
	}
	for i = 0; i < n; i++ {
		l.data[i*n+i] = one
	}

	p = newDense[T](n, n)
	for i = 0; i < n; i++ {
		p.data[i*n+perm[i]] = one
	}

	return p, l, u, nil
}

// mustIdentity builds I_n for an n already validated by the caller.
// A failure here is an internal invariant violation, hence the panic.
func mustIdentity[T scalar.Ring[T]](n int) *Dense[T] {
	id, err := Identity[T](n)
	if err != nil {
		panic(fmt.Sprintf("matrix: internal: identity(%d): %v", n, err))
	}

	return id
}
