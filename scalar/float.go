// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
)

// Float is an approximate (IEEE-754 double) field element.
type Float float64

// Compile-time conformance.
var _ Field[Float] = Float(0)

func (Float) Zero() Float { return 0 }
func (Float) One() Float  { return 1 }

func (a Float) Add(b Float) Float { return a + b }
func (a Float) Sub(b Float) Float { return a - b }
func (a Float) Mul(b Float) Float { return a * b }
func (a Float) Div(b Float) Float { return a / b }
func (a Float) Neg() Float        { return -a }

// Equal is bitwise-value equality (NaN is never equal, +0 == -0).
func (a Float) Equal(b Float) bool { return a == b }

// ApproxEqual reports |a-b| <= eps. Identical infinities compare equal.
func (a Float) ApproxEqual(b Float, eps float64) bool {
	if a == b {
		return true // covers ±Inf == ±Inf
	}

	return math.Abs(float64(a-b)) <= eps
}

// IsZero reports |a| <= eps.
func (a Float) IsZero(eps float64) bool { return math.Abs(float64(a)) <= eps }

// Magnitude returns |a|.
func (a Float) Magnitude() float64 { return math.Abs(float64(a)) }

// String uses the shortest representation that round-trips; -0 prints as 0.
func (a Float) String() string {
	if a == 0 {
		return "0"
	}

	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

// FloatOf converts any float64 slice into a []Float without aliasing.
func FloatOf(xs []float64) []Float {
	out := make([]Float, len(xs))
	for i, x := range xs {
		out[i] = Float(x)
	}

	return out
}
