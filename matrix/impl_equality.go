// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/FelixDubois/mu/scalar"
)

// Equal reports whether a and b have the same shape and exactly equal elements.
// A nil operand or a shape mismatch yields false, never an error.
func Equal[T scalar.Ring[T]](a, b Matrix[T]) bool {
	return equalWith(a, b, func(x, y T) bool { return x.Equal(y) })
}

// ApproxEqual reports whether a and b have the same shape and every pair of
// elements is within eps (scalar.Ring.ApproxEqual; exact scalars ignore eps).
func ApproxEqual[T scalar.Ring[T]](a, b Matrix[T], eps float64) bool {
	return equalWith(a, b, func(x, y T) bool { return x.ApproxEqual(y, eps) })
}

func equalWith[T scalar.Ring[T]](a, b Matrix[T], eq func(x, y T) bool) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if !eq(da.data[idx], db.data[idx]) {
			return false
		}
	}

	return true
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for all i,j.
//
// Behavior highlights:
//   - NaN on either side is never close; equal infinities are.
//   - Negative tolerances are normalized to their absolute values.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerance).
func AllClose(a, b Matrix[scalar.Float], rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, err := validateTolerance(rtol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = validateTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var x, y float64
	for idx := range da.data {
		x, y = float64(da.data[idx]), float64(db.data[idx])
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if x == y { // covers equal infinities
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
