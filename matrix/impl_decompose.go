// SPDX-License-Identifier: MIT

// Package matrix - decompositions that need square roots and therefore only
// exist for the approximate real scalar (scalar.Float).
//
// Determinism:
//   - Fixed loop orders (k→{i,j} for Householder, i→j pivot scans for Jacobi).

package matrix

import (
	"fmt"
	"math"

	"github.com/FelixDubois/mu/scalar"
)

// floatsOf returns a private float64 copy of a Float matrix buffer.
func floatsOf(m *Dense[scalar.Float]) []float64 {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = float64(v)
	}

	return out
}

// denseOfFloats wraps a float64 buffer of an r×c matrix as a fresh Dense.
func denseOfFloats(r, c int, buf []float64) *Dense[scalar.Float] {
	return &Dense[scalar.Float]{r: r, c: c, data: scalar.FloatOf(buf)}
}

// QR computes a Householder factorization A = Q×R.
//
// Implementation:
//   - Stage 1: validate square; copy A into a working buffer; H starts as I.
//   - Stage 2: for k=0..n-1 build the reflector of column k and apply it to
//     the working copy (forming R) and to H (accumulating Hₙ₋₁…H₀).
//   - Stage 3: Q = Hᵀ, since H×A = R.
//
// Behavior highlights:
//   - Zero columns are skipped (no reflector), so rank-deficient inputs factor too.
//   - No sign canonicalization: diag(R) may be negative.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func QR(m Matrix[scalar.Float]) (q, r *Dense[scalar.Float], err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	n := src.r
	a := floatsOf(src)
	h := make([]float64, n*n)
	for i := 0; i < n; i++ {
		h[i*n+i] = 1.0
	}

	v := make([]float64, n)
	var (
		i, j, k    int
		norm, beta float64 // column norm and β = vᵀv
		alpha, tau float64 // reflection scalar and 2/β factor
		sum        float64
	)
	for k = 0; k < n; k++ {
		norm = 0
		for i = k; i < n; i++ {
			norm += a[i*n+k] * a[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column
		}
		alpha = -math.Copysign(norm, a[k*n+k])

		for i = 0; i < n; i++ {
			v[i] = 0
		}
		for i = k; i < n; i++ {
			v[i] = a[i*n+k]
		}
		v[k] -= alpha

		beta = 0
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		for j = k; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * a[i*n+j]
			}
			for i = k; i < n; i++ {
				a[i*n+j] -= tau * v[i] * sum
			}
		}
		for j = 0; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * h[i*n+j]
			}
			for i = k; i < n; i++ {
				h[i*n+j] -= tau * v[i] * sum
			}
		}
	}

	// Clean the strict lower triangle of R; reflections leave ~1e-16 residue there.
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			a[i*n+j] = 0
		}
	}

	hd := denseOfFloats(n, n, h)
	q, err = Transpose[scalar.Float](hd)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q, denseOfFloats(n, n, a), nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate square and symmetric within tol.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply a Jacobi rotation, accumulating rotations into Q.
//
// Inputs:
//   - m: symmetric matrix (within tol).
//   - tol: convergence threshold (typ. 1e-9..1e-12); 0 demands exact zeros off the diagonal.
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - eigenvalues (diagonal of the rotated matrix, unsorted).
//   - Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry,
//     ErrEigenFailed (max off-diagonal > tol after maxIter).
//
// Complexity:
//   - Time O(maxIter · n), plus O(n²) per pivot scan; Space O(n²).
func Eigen(m Matrix[scalar.Float], tol float64, maxIter int) ([]scalar.Float, *Dense[scalar.Float], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol, err := validateTolerance(tol)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := src.r
	a := floatsOf(src)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(a[i*n+j]-a[j*n+i]) > tol {
				return nil, nil, matrixErrorf(opEigen, fmt.Errorf("at (%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}
	qd := make([]float64, n*n)
	for i = 0; i < n; i++ {
		qd[i*n+i] = 1.0
	}

	var (
		iter, p, q         int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	maxOffDiag := func() (float64, int, int) {
		best, bp, bq := 0.0, 0, 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a[i*n+j]); off > best {
					best, bp, bq = off, i, j
				}
			}
		}
		return best, bp, bq
	}

	for iter = 0; iter < maxIter; iter++ {
		maxOff, p, q = maxOffDiag()
		if maxOff <= tol {
			break
		}
		app, aqq, apq = a[p*n+p], a[q*n+q], a[p*n+q]
		if math.Abs(apq) <= tol {
			continue
		}

		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1))
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a[i*n+p], a[i*n+q]
			a[i*n+p] = c*aip - s*aiq
			a[p*n+i] = a[i*n+p]
			a[i*n+q] = s*aip + c*aiq
			a[q*n+i] = a[i*n+q]
		}
		a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p*n+q], a[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip, qiq = qd[i*n+p], qd[i*n+q]
			qd[i*n+p] = c*qip - s*qiq
			qd[i*n+q] = s*qip + c*qiq
		}
	}

	if off, _, _ = maxOffDiag(); off > tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	vals := make([]scalar.Float, n)
	for i = 0; i < n; i++ {
		vals[i] = scalar.Float(a[i*n+i])
	}

	return vals, denseOfFloats(n, n, qd), nil
}
