// SPDX-License-Identifier: MIT

package scalar

// Ring is the capability set required by every matrix operation.
// T is the implementing type itself (F-bounded), e.g. Float implements Ring[Float].
type Ring[T any] interface {
	// Zero returns the additive identity. The receiver value is ignored.
	Zero() T
	// One returns the multiplicative identity. The receiver value is ignored.
	One() T

	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T

	// Equal reports exact value equality.
	Equal(T) bool
	// ApproxEqual reports |a-b| <= eps for approximate types; exact types ignore eps.
	ApproxEqual(other T, eps float64) bool
	// IsZero reports whether the value is the additive identity, exactly or within eps.
	IsZero(eps float64) bool
	// Magnitude returns |a| as float64; used to rank pivot candidates.
	Magnitude() float64

	String() string
}

// Field extends Ring with division. Div by a zero value is undefined per type
// (Float yields ±Inf/NaN, Rat panics); kernels divide only by non-zero pivots.
type Field[T any] interface {
	Ring[T]
	Div(T) T
}

// Sum returns x0 + x1 + ... (Zero for an empty list).
func Sum[T Ring[T]](xs ...T) T {
	var z T
	acc := z.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Product returns x0 * x1 * ... (One for an empty list).
func Product[T Ring[T]](xs ...T) T {
	var z T
	acc := z.One()
	for _, x := range xs {
		acc = acc.Mul(x)
	}

	return acc
}
