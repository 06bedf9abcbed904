// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep values immutable: Set returns a modified copy, the receiver never changes.
//
// Complexity quicksheet:
//   - Constructors: O(r*c); At: O(1); Set/Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/FelixDubois/mu/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------

const (
	_fmtColSep = "  "
	_fmtRowSep = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the scalar type T.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Dense is never mutated after construction by any exported function.
type Dense[T scalar.Ring[T]] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[scalar.Float] = (*Dense[scalar.Float])(nil)
	_ fmt.Stringer         = (*Dense[scalar.Float])(nil)
)

// newDense allocates an r×c matrix filled with T's additive identity.
// Internal: dimensions are validated by callers.
func newDense[T scalar.Ring[T]](rows, cols int) *Dense[T] {
	var z T
	buf := make([]T, rows*cols)
	zero := z.Zero()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}
}

// Zeros returns a rows×cols matrix of additive identities.
//
// Errors:
//   - ErrInvalidDimensions (matches ErrDimensionMismatch) when rows < 1 or cols < 1.
func Zeros[T scalar.Ring[T]](rows, cols int) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newDense[T](rows, cols), nil
}

// NewDense is an alias of Zeros kept for symmetry with the Dense type name.
func NewDense[T scalar.Ring[T]](rows, cols int) (*Dense[T], error) {
	return Zeros[T](rows, cols)
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2).
func Identity[T scalar.Ring[T]](n int) (*Dense[T], error) {
	if err := validateDims(n, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	id := newDense[T](n, n)
	var z T
	one := z.One()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = one
	}

	return id, nil
}

// Filled returns a rows×cols matrix with every element equal to v.
func Filled[T scalar.Ring[T]](rows, cols int, v T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFilled, err)
	}
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = v
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Ones returns a rows×cols matrix of multiplicative identities.
func Ones[T scalar.Ring[T]](rows, cols int) (*Dense[T], error) {
	var z T
	return Filled(rows, cols, z.One())
}

// FromFlat builds a rows×cols matrix from a row-major slice.
// The slice is copied; later changes to data do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1 or cols < 1.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func FromFlat[T scalar.Ring[T]](data []T, rows, cols int) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFromFlat, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromFlat,
			fmt.Errorf("len(data)=%d, want %d×%d: %w", len(data), rows, cols, ErrDimensionMismatch))
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a matrix from nested rows (copied).
//
// Implementation:
//   - Stage 1: reject an empty outer slice or an empty first row (ErrEmpty).
//   - Stage 2: reject rows whose length differs from the first (ErrRaggedRows).
//   - Stage 3: copy rows into one flat row-major buffer.
//
// Errors:
//   - ErrEmpty, ErrRaggedRows (both match ErrDimensionMismatch).
func FromRows[T scalar.Ring[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrEmpty)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
	}
	buf := make([]T, 0, r*c)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,Rows) or col ∉ [0,Cols).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var z T
		return z, err
	}

	return m.data[idx], nil
}

// Set returns a copy of m with (row, col) replaced by v. m is unchanged.
//
// Errors:
//   - ErrOutOfRange when the index is invalid; no copy is made in that case.
func (m *Dense[T]) Set(row, col int, v T) (*Dense[T], error) {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return nil, err
	}
	out := m.Clone()
	out.data[idx] = v

	return out, nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if _, err := m.indexOf(ctxRow, i, 0); err != nil {
		return nil, err
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if _, err := m.indexOf(ctxCol, 0, j); err != nil {
		return nil, err
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns a row-major copy of the backing buffer.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// RawRows returns the elements as freshly allocated nested rows.
func (m *Dense[T]) RawRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders one row per line with right-aligned, space-separated columns.
// Intended for logs and debugging; not for hot paths.
//
//	1  -2
//	3  40
func (m *Dense[T]) String() string {
	cells := make([]string, len(m.data))
	widths := make([]int, m.c)
	for idx, v := range m.data {
		cells[idx] = v.String()
		if j := idx % m.c; len(cells[idx]) > widths[j] {
			widths[j] = len(cells[idx])
		}
	}

	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtColSep)
			}
			cell := cells[i*m.c+j]
			b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			b.WriteString(cell)
		}
	}

	return b.String()
}

// at and swapRows are unchecked helpers for kernels operating on private
// working copies. Indices are guaranteed valid by the caller's loop bounds.
func (m *Dense[T]) at(i, j int) T { return m.data[i*m.c+j] }

func (m *Dense[T]) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// asDense returns m as a *Dense for read-only use by kernels.
//
// Implementation:
//   - Fast path: *Dense is returned as-is; *Vector returns its backing column.
//     Both are shape-checked: a zero-value Dense (0×0) is ErrInvalidDimensions.
//   - Fallback: any other Matrix is materialized through At in i→j order.
//
// Callers MUST NOT mutate the returned value; clone it first.
func asDense[T scalar.Ring[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	switch v := m.(type) {
	case *Dense[T]:
		if err := validateDims(v.r, v.c); err != nil {
			return nil, err
		}
		return v, nil
	case *Vector[T]:
		if err := validateDims(v.col.r, v.col.c); err != nil {
			return nil, err
		}
		return v.col, nil
	}

	rows, cols := m.Rows(), m.Cols()
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	var i, j int
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out.data[i*cols+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}
