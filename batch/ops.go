// SPDX-License-Identifier: MIT

package batch

import (
	"context"

	"github.com/FelixDubois/mu/matrix"
	"github.com/FelixDubois/mu/scalar"
)

const (
	opMulPairs     = "MulPairs"
	opInverses     = "Inverses"
	opDeterminants = "Determinants"
	opSolves       = "Solves"
)

// Pair holds the two operands of a binary operation (A×B, or A·X = B for Solves).
type Pair[T scalar.Ring[T]] struct {
	A, B matrix.Matrix[T]
}

// MulPairs computes A×B for every pair.
func MulPairs[T scalar.Ring[T]](ctx context.Context, pairs []Pair[T], opts ...Option) ([]*matrix.Dense[T], error) {
	return Run(ctx, opMulPairs, pairs, func(_ context.Context, p Pair[T]) (*matrix.Dense[T], error) {
		return matrix.Mul(p.A, p.B)
	}, opts...)
}

// Inverses inverts every matrix; a singular input fails the whole batch with matrix.ErrSingular.
func Inverses[T scalar.Field[T]](ctx context.Context, ms []matrix.Matrix[T], opts ...Option) ([]*matrix.Dense[T], error) {
	mo := gatherOptions(opts...).matrixOps
	return Run(ctx, opInverses, ms, func(_ context.Context, m matrix.Matrix[T]) (*matrix.Dense[T], error) {
		return matrix.Inverse(m, mo...)
	}, opts...)
}

// Determinants computes det(m) for every matrix.
func Determinants[T scalar.Field[T]](ctx context.Context, ms []matrix.Matrix[T], opts ...Option) ([]T, error) {
	mo := gatherOptions(opts...).matrixOps
	return Run(ctx, opDeterminants, ms, func(_ context.Context, m matrix.Matrix[T]) (T, error) {
		return matrix.Determinant(m, mo...)
	}, opts...)
}

// Solves solves A·X = B for every pair.
func Solves[T scalar.Field[T]](ctx context.Context, systems []Pair[T], opts ...Option) ([]*matrix.Dense[T], error) {
	mo := gatherOptions(opts...).matrixOps
	return Run(ctx, opSolves, systems, func(_ context.Context, p Pair[T]) (*matrix.Dense[T], error) {
		return matrix.Solve(p.A, p.B, mo...)
	}, opts...)
}
