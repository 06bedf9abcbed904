// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/FelixDubois/mu/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	require.Equal(t, matrix.DefaultEpsilon, matrix.NewOptions().Epsilon())
	require.Equal(t, 1e-3, matrix.NewOptions(matrix.WithEpsilon(1e-3)).Epsilon())
	// last writer wins; nil setters are ignored
	require.Equal(t, 0.0, matrix.NewOptions(matrix.WithEpsilon(1), nil, matrix.WithEpsilon(0)).Epsilon())
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	t.Parallel()
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) })
	}
}
