// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

// reshape gives its operand a new shape, independent of the operand's
// size: an output cell i draws from operand cell i mod size, the
// wraparound rule of APL's rho. An empty operand fills every cell
// with the operand's prototype.
type reshape struct {
	memo
	newShape []int
	operand  Array
}

// Reshape returns an array of the given shape drawing its elements
// cyclically from the row-major ravel of a.
func Reshape(shape []int, a Array) Array {
	checkShape(shape)
	return &reshape{newShape: append([]int(nil), shape...), operand: a}
}

// Ravel returns the row-major vector of a's elements.
func Ravel(a Array) Array {
	return Reshape([]int{SizeOf(a)}, a)
}

func (r *reshape) Shape() []int {
	return r.newShape
}

func (r *reshape) Etype() Etype {
	return r.operand.Etype()
}

func (r *reshape) Prototype() Value {
	return r.operand.Prototype()
}

func (r *reshape) Generator() Generator {
	return r.memo.gen.force(func() Generator { return composedGenerator(r) })
}

func (r *reshape) base() Array {
	return r.operand
}

func (r *reshape) step() step {
	n := SizeOf(r.operand)
	return step{
		enc:      encLinear,
		outShape: r.newShape,
		inShape:  r.operand.Shape(),
		lin: func(i int) (int, bool) {
			if n == 0 {
				return 0, false
			}
			return i % n, true
		},
	}
}
