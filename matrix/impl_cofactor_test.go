// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/FelixDubois/mu/matrix"
	"github.com/FelixDubois/mu/scalar"
	"github.com/stretchr/testify/require"
)

func TestMinor(t *testing.T) {
	t.Parallel()
	a := MustInt(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	m, err := matrix.Minor[scalar.Int](a, 1, 1)
	require.NoError(t, err)
	RequireExact[scalar.Int](t, MustInt(t, [][]int64{{1, 3}, {7, 9}}), m)

	rect := MustInt(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	m, err = matrix.Minor[scalar.Int](rect, 0, 2)
	require.NoError(t, err)
	RequireExact[scalar.Int](t, MustInt(t, [][]int64{{4, 5}}), m)

	_, err = matrix.Minor[scalar.Int](a, 3, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor[scalar.Int](MustInt(t, [][]int64{{1, 2, 3}}), 0, 0)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCofactorAdjugate(t *testing.T) {
	t.Parallel()
	a := MustRat(t, [][]int64{{1, 2}, {3, 4}})

	c, err := matrix.Cofactor[R](a)
	require.NoError(t, err)
	RequireExact[R](t, MustRat(t, [][]int64{{4, -3}, {-2, 1}}), c)

	adj, err := matrix.Adjugate[R](a)
	require.NoError(t, err)
	RequireExact[R](t, MustRat(t, [][]int64{{4, -2}, {-3, 1}}), adj)

	one, err := matrix.Adjugate[R](MustRat(t, [][]int64{{5}}))
	require.NoError(t, err)
	RequireExact[R](t, MustIdentity[R](t, 1), one)

	_, err = matrix.Cofactor[R](MustRat(t, [][]int64{{1, 2}}))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAdjugate_TimesMatrixIsDetIdentity(t *testing.T) {
	t.Parallel()
	a := RandRat(t, 4, 4, 5)
	adj, err := matrix.Adjugate[R](a)
	require.NoError(t, err)
	det, err := matrix.Determinant[R](a)
	require.NoError(t, err)

	got, err := matrix.Mul[R](a, adj)
	require.NoError(t, err)
	want, err := matrix.Scale[R](MustIdentity[R](t, 4), det)
	require.NoError(t, err)
	RequireExact[R](t, want, got)
}
