// Package mu is a generic, immutable dense matrix toolkit for exact and
// approximate arithmetic.
//
// What is inside:
//
//	scalar/  element types: Int (exact ring), Rat (exact field),
//	         Float and Complex (approximate fields)
//	matrix/  Dense[T] and Vector[T], ring kernels (Add, Mul, Pow, ...),
//	         partial-pivoting elimination (Determinant, Rank, Inverse,
//	         Solve, LU), cofactors, float-only QR and Jacobi Eigen
//	interop/ copy and view adapters to gonum's mat package
//	batch/   bounded concurrent fan-out of independent matrix operations
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]scalar.Float{{2, 1}, {1, 3}})
//	b, _ := matrix.FromRows([][]scalar.Float{{3}, {5}})
//	x, err := matrix.Solve[scalar.Float](a, b) // [[0.8] [1.4]]
//	if errors.Is(err, matrix.ErrSingular) { ... }
//
// Every operation returns a new value; nothing is mutated in place, so values
// can be shared freely between goroutines.
package mu
