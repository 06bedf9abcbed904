// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/FelixDubois/mu/matrix"
	"github.com/FelixDubois/mu/scalar"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

func interopErrorf(tag string, err error) error {
	return fmt.Errorf("interop: %s: %w", tag, err)
}

// ToGonum copies m into a new *mat.Dense with the same shape.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (zero-value Dense).
func ToGonum(m matrix.Matrix[scalar.Float]) (*mat.Dense, error) {
	var data []scalar.Float
	switch d := m.(type) {
	case *matrix.Dense[scalar.Float]:
		if d == nil {
			return nil, interopErrorf(opToGonum, matrix.ErrNilMatrix)
		}
		if r, c := d.Shape(); r < 1 || c < 1 {
			return nil, interopErrorf(opToGonum, matrix.ErrInvalidDimensions)
		}
		data = d.Data()
	default:
		// Identity Map materializes any other implementation through At.
		cp, err := matrix.Map(m, func(x scalar.Float) scalar.Float { return x })
		if err != nil {
			return nil, interopErrorf(opToGonum, err)
		}
		data = cp.Data()
	}

	buf := make([]float64, len(data))
	for i, v := range data {
		buf[i] = float64(v)
	}

	return mat.NewDense(m.Rows(), m.Cols(), buf), nil
}

// FromGonum copies any gonum matrix into a new Dense[scalar.Float].
//
// Errors:
//   - matrix.ErrNilMatrix when g is nil.
//   - matrix.ErrInvalidDimensions when g is empty (e.g. a zero-value mat.Dense).
func FromGonum(g mat.Matrix) (*matrix.Dense[scalar.Float], error) {
	if g == nil {
		return nil, interopErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	if d, ok := g.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return nil, interopErrorf(opFromGonum, matrix.ErrInvalidDimensions)
	}
	r, c := g.Dims()
	if r < 1 || c < 1 {
		return nil, interopErrorf(opFromGonum, matrix.ErrInvalidDimensions)
	}

	buf := make([]scalar.Float, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf = append(buf, scalar.Float(g.At(i, j)))
		}
	}
	out, err := matrix.FromFlat(buf, r, c)
	if err != nil {
		return nil, interopErrorf(opFromGonum, err)
	}

	return out, nil
}

// View adapts a Dense[scalar.Float] to gonum's mat.Matrix without copying.
// Like gonum's own types, At panics on an out-of-range index.
type View struct {
	m *matrix.Dense[scalar.Float]
}

var _ mat.Matrix = View{}

// NewView wraps m. m must not be nil.
func NewView(m *matrix.Dense[scalar.Float]) View { return View{m: m} }

// Dims returns the dimensions of the wrapped matrix.
func (v View) Dims() (r, c int) { return v.m.Shape() }

// At returns element (i, j).
func (v View) At(i, j int) float64 {
	r, c := v.m.Shape()
	if i < 0 || i >= r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= c {
		panic(mat.ErrColAccess)
	}
	x, _ := v.m.At(i, j)

	return float64(x)
}

// T returns the implicit transpose.
func (v View) T() mat.Matrix { return mat.Transpose{Matrix: v} }
