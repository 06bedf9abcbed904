// SPDX-License-Identifier: MIT

package scalar

import "math/big"

const panicZeroDenominator = "scalar: NewRat: zero denominator"

// Rat is an exact rational field element backed by math/big.
// The zero value is 0. Every operation allocates a fresh *big.Rat, so a Rat
// never shares mutable state with another value.
type Rat struct {
	v *big.Rat
}

var _ Field[Rat] = Rat{}

// NewRat returns num/den. It panics when den == 0 (programmer error).
func NewRat(num, den int64) Rat {
	if den == 0 {
		panic(panicZeroDenominator)
	}

	return Rat{v: big.NewRat(num, den)}
}

// RatFromInt returns n/1.
func RatFromInt(n int64) Rat { return Rat{v: new(big.Rat).SetInt64(n)} }

// RatFromFloat returns the exact rational value of f; ok is false for NaN/±Inf.
func RatFromFloat(f float64) (r Rat, ok bool) {
	v := new(big.Rat).SetFloat64(f)
	if v == nil {
		return Rat{}, false
	}

	return Rat{v: v}, true
}

// val returns the backing value, treating the zero Rat as 0.
// The result must never be mutated.
func (a Rat) val() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}

	return a.v
}

func (Rat) Zero() Rat { return Rat{} }
func (Rat) One() Rat  { return RatFromInt(1) }

func (a Rat) Add(b Rat) Rat { return Rat{v: new(big.Rat).Add(a.val(), b.val())} }
func (a Rat) Sub(b Rat) Rat { return Rat{v: new(big.Rat).Sub(a.val(), b.val())} }
func (a Rat) Mul(b Rat) Rat { return Rat{v: new(big.Rat).Mul(a.val(), b.val())} }
func (a Rat) Neg() Rat      { return Rat{v: new(big.Rat).Neg(a.val())} }

// Div returns a/b. It panics when b is zero (big.Rat semantics).
func (a Rat) Div(b Rat) Rat { return Rat{v: new(big.Rat).Quo(a.val(), b.val())} }

func (a Rat) Equal(b Rat) bool { return a.val().Cmp(b.val()) == 0 }

// ApproxEqual ignores eps: rationals compare exactly.
func (a Rat) ApproxEqual(b Rat, _ float64) bool { return a.Equal(b) }

// IsZero ignores eps.
func (a Rat) IsZero(_ float64) bool { return a.val().Sign() == 0 }

func (a Rat) Magnitude() float64 {
	f, _ := new(big.Rat).Abs(a.val()).Float64()
	return f
}

// Float64 returns the nearest float64 value.
func (a Rat) Float64() float64 {
	f, _ := a.val().Float64()
	return f
}

// String renders "n" for integers and "n/d" otherwise.
func (a Rat) String() string { return a.val().RatString() }
