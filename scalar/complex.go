// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Complex is an approximate complex field element.
type Complex complex128

var _ Field[Complex] = Complex(0)

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex { return Complex(complex(re, im)) }

func (Complex) Zero() Complex { return 0 }
func (Complex) One() Complex  { return 1 }

func (a Complex) Add(b Complex) Complex { return a + b }
func (a Complex) Sub(b Complex) Complex { return a - b }
func (a Complex) Mul(b Complex) Complex { return a * b }
func (a Complex) Div(b Complex) Complex { return a / b }
func (a Complex) Neg() Complex          { return -a }

func (a Complex) Equal(b Complex) bool { return a == b }

// ApproxEqual reports |a-b| <= eps (modulus of the difference).
func (a Complex) ApproxEqual(b Complex, eps float64) bool {
	if a == b {
		return true
	}

	return cmplx.Abs(complex128(a-b)) <= eps
}

func (a Complex) IsZero(eps float64) bool { return cmplx.Abs(complex128(a)) <= eps }
func (a Complex) Magnitude() float64      { return cmplx.Abs(complex128(a)) }

// Re returns the real part.
func (a Complex) Re() float64 { return real(a) }

// Im returns the imaginary part.
func (a Complex) Im() float64 { return imag(a) }

// Abs returns the modulus.
func (a Complex) Abs() float64 { return cmplx.Abs(complex128(a)) }

// Arg returns the phase in (-π, π].
func (a Complex) Arg() float64 { return math.Atan2(imag(a), real(a)) }

// Conj returns the complex conjugate.
func (a Complex) Conj() Complex { return Complex(cmplx.Conj(complex128(a))) }

// Exp returns e^a.
func (a Complex) Exp() Complex { return Complex(cmplx.Exp(complex128(a))) }

// Ln returns the principal natural logarithm (ln|a| + i·arg a).
func (a Complex) Ln() Complex { return NewComplex(math.Log(a.Abs()), a.Arg()) }

// Pow raises a to a real power in polar form: |a|^n · e^(i·n·arg a).
func (a Complex) Pow(n float64) Complex {
	r := math.Pow(a.Abs(), n)
	theta := a.Arg() * n

	return NewComplex(r*math.Cos(theta), r*math.Sin(theta))
}

// String renders "re + imi" or "re - |im|i".
func (a Complex) String() string {
	re, im := real(a), imag(a)
	if im < 0 {
		return formatPart(re) + " - " + formatPart(-im) + "i"
	}

	return formatPart(re) + " + " + formatPart(im) + "i"
}

func formatPart(f float64) string {
	if f == 0 {
		return "0"
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}
