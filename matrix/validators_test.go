// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"testing"

	"github.com/FelixDubois/mu/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	t.Parallel()
	sq := MustIdentity[F](t, 2)
	rect := RandFloat(t, 2, 3, 1)
	var nilDense *matrix.Dense[F]

	require.NoError(t, matrix.ValidateNotNil[F](sq))
	AssertErrorIs(t, matrix.ValidateNotNil[F](nil), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateNotNil[F](nilDense), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquare[F](sq))
	AssertErrorIs(t, matrix.ValidateSquare[F](rect), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateSameShape[F](sq, sq))
	AssertErrorIs(t, matrix.ValidateSameShape[F](sq, rect), matrix.ErrDimensionMismatch)

	AssertErrorIs(t, matrix.ValidateBinarySameShape[F](sq, nilDense), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateSquareNonNil[F](rect), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateMulCompatible[F](sq, rect))
	AssertErrorIs(t, matrix.ValidateMulCompatible[F](rect, sq), matrix.ErrDimensionMismatch)
}

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()
	for _, refined := range []error{
		matrix.ErrInvalidDimensions, matrix.ErrNonSquare, matrix.ErrRaggedRows, matrix.ErrEmpty,
	} {
		require.True(t, errors.Is(refined, matrix.ErrDimensionMismatch), refined.Error())
		require.False(t, errors.Is(refined, matrix.ErrSingular))
	}
	require.True(t, errors.Is(matrix.ErrDivisionByZero, matrix.ErrSingular))
	require.True(t, errors.Is(matrix.ErrIndexOutOfBounds, matrix.ErrOutOfRange))
}
