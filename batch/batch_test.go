// SPDX-License-Identifier: MIT

package batch_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FelixDubois/mu/batch"
	"github.com/FelixDubois/mu/matrix"
	"github.com/FelixDubois/mu/scalar"
)

type F = scalar.Float

func mustFloat(t *testing.T, rows [][]F) *matrix.Dense[F] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	out, err := batch.Run(context.Background(), "square", in, func(_ context.Context, x int) (int, error) {
		return x * x, nil
	}, batch.WithLimit(4))
	require.NoError(t, err)
	require.Len(t, out, 100)
	for i, v := range out {
		require.Equal(t, i*i, v)
	}
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()
	out, err := batch.Run(context.Background(), "noop", nil, func(_ context.Context, x int) (int, error) {
		return x, nil
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestRun_RespectsLimit(t *testing.T) {
	t.Parallel()
	var inFlight, peak atomic.Int32
	var mu sync.Mutex
	in := make([]int, 32)
	_, err := batch.Run(context.Background(), "limit", in, func(_ context.Context, _ int) (int, error) {
		n := inFlight.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		defer inFlight.Add(-1)
		return 0, nil
	}, batch.WithLimit(2))
	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRun_FirstErrorReported(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	in := []int{0, 1, 2, 3}
	_, err := batch.Run(context.Background(), "fail", in, func(_ context.Context, x int) (int, error) {
		if x == 2 {
			return 0, boom
		}
		return x, nil
	}, batch.WithLimit(1))
	require.ErrorIs(t, err, boom)

	var item *batch.ItemError
	require.ErrorAs(t, err, &item)
	assert.Equal(t, 2, item.Index)
	assert.Equal(t, "fail", item.Op)
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	_, err := batch.Run(ctx, "cancelled", []int{1, 2, 3}, func(_ context.Context, x int) (int, error) {
		calls.Add(1)
		return x, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, calls.Load())
}

func TestRun_Logs(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := batch.Run(context.Background(), "logged", []int{1}, func(_ context.Context, x int) (int, error) {
		return x, nil
	}, batch.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "batch finished")
	assert.Contains(t, buf.String(), "op=logged")
}

func TestWithLimit_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { batch.WithLimit(0) })
}

func TestMulPairs(t *testing.T) {
	t.Parallel()
	a := mustFloat(t, [][]F{{1, 2}, {3, 4}})
	id, err := matrix.Identity[F](2)
	require.NoError(t, err)

	out, err := batch.MulPairs(context.Background(), []batch.Pair[F]{{A: a, B: id}, {A: id, B: a}, {A: a, B: a}})
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.True(t, matrix.Equal[F](a, out[0]))
	require.True(t, matrix.Equal[F](a, out[1]))
	require.True(t, matrix.Equal[F](mustFloat(t, [][]F{{7, 10}, {15, 22}}), out[2]))
}

func TestInversesDeterminants(t *testing.T) {
	t.Parallel()
	ms := []matrix.Matrix[F]{
		mustFloat(t, [][]F{{2, 0}, {0, 4}}),
		mustFloat(t, [][]F{{1, 2}, {3, 4}}),
	}
	dets, err := batch.Determinants(context.Background(), ms)
	require.NoError(t, err)
	require.InDelta(t, 8.0, float64(dets[0]), 1e-12)
	require.InDelta(t, -2.0, float64(dets[1]), 1e-12)

	invs, err := batch.Inverses(context.Background(), ms)
	require.NoError(t, err)
	require.True(t, matrix.ApproxEqual[F](mustFloat(t, [][]F{{0.5, 0}, {0, 0.25}}), invs[0], 1e-12))

	_, err = batch.Inverses(context.Background(), append(ms, mustFloat(t, [][]F{{1, 2}, {2, 4}})))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolves_WithMatrixOptions(t *testing.T) {
	t.Parallel()
	a := mustFloat(t, [][]F{{2, 1}, {1, 3}})
	b := mustFloat(t, [][]F{{3}, {5}})
	xs, err := batch.Solves(context.Background(), []batch.Pair[F]{{A: a, B: b}},
		batch.WithMatrixOptions(matrix.WithEpsilon(1e-12)))
	require.NoError(t, err)
	require.True(t, matrix.ApproxEqual[F](mustFloat(t, [][]F{{0.8}, {1.4}}), xs[0], 1e-12))

	// with a huge epsilon every pivot counts as zero
	_, err = batch.Solves(context.Background(), []batch.Pair[F]{{A: a, B: b}},
		batch.WithMatrixOptions(matrix.WithEpsilon(10)))
	require.ErrorIs(t, err, matrix.ErrSingular)
}
