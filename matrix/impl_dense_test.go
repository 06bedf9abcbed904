// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/FelixDubois/mu/matrix"
	"github.com/FelixDubois/mu/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeros_AllElementsZero(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ rows, cols int }{{1, 1}, {3, 3}, {2, 5}} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := matrix.Zeros[F](tc.rows, tc.cols)
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			for _, v := range m.Data() {
				require.Equal(t, F(0), v)
			}
		})
	}
}

func TestConstructors_InvalidDimensions(t *testing.T) {
	t.Parallel()
	_, err := matrix.Zeros[F](0, 3)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Identity[F](-1)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Filled[F](2, 0, 1)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromFlat([]F{1, 2, 3}, 2, 2)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFromRows_RaggedAndEmpty(t *testing.T) {
	t.Parallel()
	_, err := matrix.FromRows([][]F{{1, 2}, {3}})
	AssertErrorIs(t, err, matrix.ErrRaggedRows)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([][]F{})
	AssertErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.FromRows([][]F{{}})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFromRows_CopiesInput(t *testing.T) {
	t.Parallel()
	rows := [][]F{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 99
	require.Equal(t, F(1), MustAt[F](t, m, 0, 0))

	flat := []F{1, 2, 3, 4}
	m2, err := matrix.FromFlat(flat, 2, 2)
	require.NoError(t, err)
	flat[3] = -1
	require.Equal(t, F(4), MustAt[F](t, m2, 1, 1))
}

func TestIdentity_Ones_Filled(t *testing.T) {
	t.Parallel()
	id := MustIdentity[F](t, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := F(0)
			if i == j {
				want = 1
			}
			require.Equal(t, want, MustAt[F](t, id, i, j))
		}
	}

	ones, err := matrix.Ones[scalar.Int](2, 3)
	require.NoError(t, err)
	assert.Equal(t, []scalar.Int{1, 1, 1, 1, 1, 1}, ones.Data())

	f, err := matrix.Filled(2, 2, scalar.NewRat(1, 3))
	require.NoError(t, err)
	assert.Equal(t, "1/3", MustAt[R](t, f, 1, 0).String())
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()
	m := MustFloat(t, [][]float64{{1, 2}, {3, 4}})
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		AssertErrorIs(t, err, matrix.ErrOutOfRange)
		AssertErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	}
	_, err := m.Row(5)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSet_ReturnsCopy(t *testing.T) {
	t.Parallel()
	m := MustFloat(t, [][]float64{{1, 2}, {3, 4}})
	m2, err := m.Set(0, 1, 7)
	require.NoError(t, err)
	require.Equal(t, F(2), MustAt[F](t, m, 0, 1), "receiver must stay unchanged")
	require.Equal(t, F(7), MustAt[F](t, m2, 0, 1))

	_, err = m.Set(2, 2, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestRowColData_AreCopies(t *testing.T) {
	t.Parallel()
	m := MustFloat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []F{4, 5, 6}, row)
	row[0] = 0

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []F{3, 6}, col)

	data := m.Data()
	data[0] = 100
	raw := m.RawRows()
	raw[1][1] = 100

	require.Equal(t, F(4), MustAt[F](t, m, 1, 0))
	require.Equal(t, F(1), MustAt[F](t, m, 0, 0))
	require.Equal(t, F(5), MustAt[F](t, m, 1, 1))
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()
	m := MustFloat(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	RequireExact[F](t, m, c)
	c2, err := c.Set(0, 0, 9)
	require.NoError(t, err)
	require.False(t, matrix.Equal[F](m, c2))
}

func TestString_Layout(t *testing.T) {
	t.Parallel()
	m := MustFloat(t, [][]float64{{1, -2}, {3, 40}})
	require.Equal(t, "1  -2\n3  40", m.String())

	r := MustRat(t, [][]int64{{1, 2}})
	half, err := matrix.DivScalar[R](r, scalar.RatFromInt(2))
	require.NoError(t, err)
	require.Equal(t, "1/2  1", half.String())
}

func TestFallbackPath_MatchesDense(t *testing.T) {
	t.Parallel()
	a := RandFloat(t, 4, 4, 7)
	b := RandFloat(t, 4, 4, 8)

	fast, err := matrix.Mul[F](a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul[F](hide[F]{a}, hide[F]{b})
	require.NoError(t, err)
	RequireExact[F](t, fast, slow)

	sumFast, err := matrix.Add[F](a, b)
	require.NoError(t, err)
	sumSlow, err := matrix.Add[F](hide[F]{a}, b)
	require.NoError(t, err)
	RequireExact[F](t, sumFast, sumSlow)

	detFast, err := matrix.Determinant[F](a)
	require.NoError(t, err)
	detSlow, err := matrix.Determinant[F](hide[F]{a})
	require.NoError(t, err)
	require.Equal(t, detFast, detSlow)
}

func TestNilOperands(t *testing.T) {
	t.Parallel()
	var nilDense *matrix.Dense[F]
	m := MustIdentity[F](t, 2)

	_, err := matrix.Add[F](nilDense, m)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul[F](m, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose[F](nilDense)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Inverse[F](nilDense)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestZeroValueDense_Rejected(t *testing.T) {
	t.Parallel()
	var empty matrix.Dense[F]
	r, c := empty.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)

	require.NotPanics(t, func() {
		_, err := matrix.Determinant[F](&empty)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
	require.NotPanics(t, func() {
		_, err := matrix.Add[F](&empty, &empty)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
	require.NotPanics(t, func() {
		_, err := matrix.Inverse[F](&empty)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
	require.NotPanics(t, func() {
		_, err := matrix.Trace[F](&empty)
		AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
	require.NotPanics(t, func() {
		_, err := matrix.Mul[F](&empty, &empty)
		AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	})
}
