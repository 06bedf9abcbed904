// SPDX-License-Identifier: MIT

// Package interop bridges matrix.Dense[scalar.Float] and gonum's mat package.
//
// ToGonum and FromGonum copy; View wraps a Dense without copying and
// satisfies mat.Matrix, so gonum routines that only read through At (mat.Det,
// mat.Formatted, Dense.Mul operands, ...) accept it directly.
package interop
