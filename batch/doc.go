// SPDX-License-Identifier: MIT

// Package batch runs independent matrix operations concurrently.
//
// The matrix package is synchronous and its values are immutable, so many
// operations can safely share operands. Run fans a slice of inputs out over a
// bounded errgroup, cancels the remaining work on the first failure and
// returns results in input order. MulPairs, Inverses, Determinants and Solves
// wrap the common cases.
package batch
