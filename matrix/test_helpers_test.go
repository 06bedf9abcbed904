// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/FelixDubois/mu/matrix"
	"github.com/FelixDubois/mu/scalar"
	"github.com/stretchr/testify/require"
)

type (
	F = scalar.Float
	R = scalar.Rat
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the At-based fallback path of the kernels.
type hide[T scalar.Ring[T]] struct{ matrix.Matrix[T] }

// MustFloat builds a Float matrix from nested rows or fails the test.
func MustFloat(t testing.TB, rows [][]float64) *matrix.Dense[F] {
	t.Helper()
	conv := make([][]F, len(rows))
	for i, row := range rows {
		conv[i] = scalar.FloatOf(row)
	}
	m, err := matrix.FromRows(conv)
	require.NoError(t, err)

	return m
}

// MustRat builds an exact Rat matrix from integer rows or fails the test.
func MustRat(t testing.TB, rows [][]int64) *matrix.Dense[R] {
	t.Helper()
	conv := make([][]R, len(rows))
	for i, row := range rows {
		conv[i] = make([]R, len(row))
		for j, v := range row {
			conv[i][j] = scalar.RatFromInt(v)
		}
	}
	m, err := matrix.FromRows(conv)
	require.NoError(t, err)

	return m
}

// MustInt builds an Int matrix from nested rows or fails the test.
func MustInt(t testing.TB, rows [][]int64) *matrix.Dense[scalar.Int] {
	t.Helper()
	conv := make([][]scalar.Int, len(rows))
	for i, row := range rows {
		conv[i] = make([]scalar.Int, len(row))
		for j, v := range row {
			conv[i][j] = scalar.Int(v)
		}
	}
	m, err := matrix.FromRows(conv)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T scalar.Ring[T]](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	id, err := matrix.Identity[T](n)
	require.NoError(t, err)

	return id
}

// MustAt reads (i,j) or fails the test.
func MustAt[T scalar.Ring[T]](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandFloat returns an r×c matrix with entries uniform in [-1, 1).
func RandFloat(t testing.TB, r, c int, seed int64) *matrix.Dense[F] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]F, r*c)
	for i := range buf {
		buf[i] = F(rng.Float64()*2 - 1)
	}
	m, err := matrix.FromFlat(buf, r, c)
	require.NoError(t, err)

	return m
}

// RandRat returns an r×c Rat matrix with small integer entries in [-5, 5].
func RandRat(t testing.TB, r, c int, seed int64) *matrix.Dense[R] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]R, r*c)
	for i := range buf {
		buf[i] = scalar.RatFromInt(int64(rng.Intn(11) - 5))
	}
	m, err := matrix.FromFlat(buf, r, c)
	require.NoError(t, err)

	return m
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t testing.TB, want, got matrix.Matrix[F], rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}

// RequireExact asserts exact equality (shape and elements).
func RequireExact[T scalar.Ring[T]](t testing.TB, want, got matrix.Matrix[T]) {
	t.Helper()
	require.Truef(t, matrix.Equal(want, got), "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}

// AssertErrorIs checks errors.Is(err, target) with a readable failure message.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.Is(err, target), "want errors.Is(%v, %v)", err, target)
}

// InDelta reports |a-b| <= delta.
func InDelta(a, b, delta float64) bool { return math.Abs(a-b) <= delta }
