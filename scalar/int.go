// SPDX-License-Identifier: MIT

package scalar

import "strconv"

// Int is an exact integer ring element (int64, two's-complement overflow).
// It deliberately does not implement Field: truncating division would break
// elimination. Convert to Rat (IntToRat) for determinant, inverse and solve.
type Int int64

var _ Ring[Int] = Int(0)

func (Int) Zero() Int { return 0 }
func (Int) One() Int  { return 1 }

func (a Int) Add(b Int) Int { return a + b }
func (a Int) Sub(b Int) Int { return a - b }
func (a Int) Mul(b Int) Int { return a * b }
func (a Int) Neg() Int      { return -a }

func (a Int) Equal(b Int) bool { return a == b }

// ApproxEqual ignores eps: integers compare exactly.
func (a Int) ApproxEqual(b Int, _ float64) bool { return a == b }

// IsZero ignores eps.
func (a Int) IsZero(_ float64) bool { return a == 0 }

func (a Int) Magnitude() float64 {
	if a < 0 {
		return -float64(a)
	}

	return float64(a)
}

func (a Int) String() string { return strconv.FormatInt(int64(a), 10) }

// IntToRat is the exact embedding Int → Rat.
func IntToRat(a Int) Rat { return RatFromInt(int64(a)) }
