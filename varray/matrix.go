// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"math"

	"github.com/garandria/april/config"
)

// Matrix inverse and divide. Square systems are solved directly by
// Gauss-Jordan elimination with partial pivoting; overdetermined
// systems (more rows than columns) go through the normal equations,
// giving the least-squares solution. A singular or underdetermined
// argument is a domain error.

// MatInverse inverts a: the reciprocal of a scalar, the pseudoinverse
// of a vector (treated as a column), or the (pseudo)inverse of a
// matrix.
func MatInverse(conf *config.Config, a Array) Array {
	c := render(a)
	switch len(c.shape) {
	case 0:
		x, ok := asFloat(c.data[0])
		if !ok {
			errorf(DomainError, "inverse of non-number %s", c.data[0])
		}
		if x == 0 {
			errorf(DomainError, "inverse of zero")
		}
		return NewScalar(demote(Float(1 / x)))
	case 1, 2:
		m, rows, cols := toFloatMatrix(c)
		inv := pseudoInverse(m, rows, cols)
		if len(c.shape) == 1 {
			return floatsToArray(inv, []int{rows})
		}
		return floatsToArray(inv, []int{cols, rows})
	}
	errorf(RankError, "inverse of rank %d", len(c.shape))
	return nil
}

// MatDivide solves the linear system y·r = x for r, least-squares
// when overdetermined: the APL domino x⌹y.
func MatDivide(conf *config.Config, x, y Array) Array {
	yc := render(y)
	xc := render(x)
	if len(yc.shape) == 0 && len(xc.shape) == 0 {
		xv, xok := asFloat(xc.data[0])
		yv, yok := asFloat(yc.data[0])
		if !xok || !yok {
			errorf(DomainError, "divide of non-numbers")
		}
		if yv == 0 {
			errorf(DomainError, "divide by zero")
		}
		return NewScalar(demote(Float(xv / yv)))
	}
	if len(yc.shape) == 0 || len(xc.shape) == 0 {
		errorf(RankError, "divide of scalar and array")
	}
	ym, yr, ycols := toFloatMatrix(yc)
	xm, xr, xcols := toFloatMatrix(xc)
	if yr != xr {
		errorf(LengthError, "divide row counts %d and %d mismatch", yr, xr)
	}
	sol := solveLeastSquares(ym, yr, ycols, xm, xcols)
	if len(xc.shape) == 1 {
		return floatsToArray(sol, []int{ycols})
	}
	return floatsToArray(sol, []int{ycols, xcols})
}

// toFloatMatrix flattens a vector or matrix into row-major floats.
// A vector is a single column.
func toFloatMatrix(c *Concrete) (m []float64, rows, cols int) {
	switch len(c.shape) {
	case 1:
		rows, cols = c.shape[0], 1
	case 2:
		rows, cols = c.shape[0], c.shape[1]
	default:
		errorf(RankError, "matrix operation on rank %d", len(c.shape))
	}
	m = make([]float64, len(c.data))
	for i, v := range c.data {
		x, ok := asFloat(v)
		if !ok {
			errorf(DomainError, "matrix operation on non-number %s", v)
		}
		m[i] = x
	}
	return m, rows, cols
}

// pseudoInverse returns the cols x rows (pseudo)inverse of the
// rows x cols matrix m.
func pseudoInverse(m []float64, rows, cols int) []float64 {
	if rows < cols {
		errorf(DomainError, "inverse of underdetermined %dx%d matrix", rows, cols)
	}
	// Solve against the rows x rows identity.
	id := make([]float64, rows*rows)
	for i := 0; i < rows; i++ {
		id[i*rows+i] = 1
	}
	return solveLeastSquares(m, rows, cols, id, rows)
}

// solveLeastSquares solves a·r = b for the rows x cols matrix a and
// rows x bcols right side b. Square systems solve directly; taller
// ones through the normal equations aᵀa·r = aᵀb.
func solveLeastSquares(a []float64, rows, cols int, b []float64, bcols int) []float64 {
	if rows < cols {
		errorf(DomainError, "underdetermined %dx%d system", rows, cols)
	}
	if rows == cols {
		return gaussSolve(append([]float64(nil), a...), cols, append([]float64(nil), b...), bcols)
	}
	ata := make([]float64, cols*cols)
	for i := 0; i < cols; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < rows; k++ {
				sum += a[k*cols+i] * a[k*cols+j]
			}
			ata[i*cols+j] = sum
		}
	}
	atb := make([]float64, cols*bcols)
	for i := 0; i < cols; i++ {
		for j := 0; j < bcols; j++ {
			sum := 0.0
			for k := 0; k < rows; k++ {
				sum += a[k*cols+i] * b[k*bcols+j]
			}
			atb[i*bcols+j] = sum
		}
	}
	return gaussSolve(ata, cols, atb, bcols)
}

// gaussSolve solves the square system m·r = b in place by
// Gauss-Jordan elimination with partial pivoting.
func gaussSolve(m []float64, n int, b []float64, bcols int) []float64 {
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(m[row*n+col]) > math.Abs(m[pivot*n+col]) {
				pivot = row
			}
		}
		if math.Abs(m[pivot*n+col]) < 1e-13 {
			errorf(DomainError, "singular matrix")
		}
		if pivot != col {
			swapRows(m, n, pivot, col)
			swapRows(b, bcols, pivot, col)
		}
		p := m[col*n+col]
		for j := 0; j < n; j++ {
			m[col*n+j] /= p
		}
		for j := 0; j < bcols; j++ {
			b[col*bcols+j] /= p
		}
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			f := m[row*n+col]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				m[row*n+j] -= f * m[col*n+j]
			}
			for j := 0; j < bcols; j++ {
				b[row*bcols+j] -= f * b[col*bcols+j]
			}
		}
	}
	return b
}

func swapRows(m []float64, width, i, j int) {
	for k := 0; k < width; k++ {
		m[i*width+k], m[j*width+k] = m[j*width+k], m[i*width+k]
	}
}

func floatsToArray(m []float64, shape []int) Array {
	data := make([]Value, len(m))
	for i, x := range m {
		data[i] = demote(Float(x))
	}
	return NewConcrete(shape, data)
}
