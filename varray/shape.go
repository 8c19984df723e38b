// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

// Shape and stride arithmetic. Shapes are []int, row-major. The
// dimensional factors (strides) of shape [a, b, c] are [b*c, c, 1],
// so linear = Σ coord[i]*factor[i] and the inverse is successive
// div/mod.

// Strides returns the row-major dimensional factors of shape.
func Strides(shape []int) []int {
	f := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		f[i] = acc
		acc *= shape[i]
	}
	return f
}

// CoordOf fills coord with the per-axis coordinate of linear index i
// in the given shape and returns it. coord must have len(shape)
// elements; callers reuse a scratch slice.
func CoordOf(i int, shape, coord []int) []int {
	for axis := len(shape) - 1; axis >= 0; axis-- {
		if shape[axis] > 0 {
			coord[axis] = i % shape[axis]
			i /= shape[axis]
		} else {
			coord[axis] = 0
		}
	}
	return coord
}

// LinearOf returns the linear index of coord in the given shape.
func LinearOf(coord, shape []int) int {
	i := 0
	for axis := range shape {
		i = i*shape[axis] + coord[axis]
	}
	return i
}

// size returns the element count of shape: the product of its
// extents, 1 for rank 0.
func size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, d := range a {
		if d != b[i] {
			return false
		}
	}
	return true
}

// checkShape validates a caller-supplied shape vector.
func checkShape(shape []int) {
	for _, d := range shape {
		if d < 0 {
			errorf(DomainError, "negative dimension %d in shape %v", d, shape)
		}
	}
}
