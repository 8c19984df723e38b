// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

// A Concrete is a materialized array: a shape plus row-major element
// data. It is both the result of Render and a legal element value
// (an enclosed array) and operand. A rank-0 Concrete boxes a single
// element.
type Concrete struct {
	shape []int
	data  []Value
	etype cell[Etype]
}

// NewConcrete makes a concrete array, checking that the data length
// matches the shape. The shape and data slices are retained.
func NewConcrete(shape []int, data []Value) *Concrete {
	checkShape(shape)
	if size(shape) != len(data) {
		errorf(LengthError, "inconsistent shape %v for %d elements", shape, len(data))
	}
	return newConcreteUnchecked(shape, data)
}

func newConcreteUnchecked(shape []int, data []Value) *Concrete {
	return &Concrete{shape: shape, data: data}
}

// NewVector makes a rank-1 concrete array of the given elements.
func NewVector(elems ...Value) *Concrete {
	return newConcreteUnchecked([]int{len(elems)}, elems)
}

// NewIntVector makes a rank-1 concrete array of Ints.
func NewIntVector(elems ...int) *Concrete {
	data := make([]Value, len(elems))
	for i, x := range elems {
		data[i] = Int(x)
	}
	return newConcreteUnchecked([]int{len(elems)}, data)
}

// NewCharVector makes a rank-1 concrete array of the Chars of s.
func NewCharVector(s string) *Concrete {
	var data []Value
	for _, r := range s {
		data = append(data, Char(r))
	}
	return newConcreteUnchecked([]int{len(data)}, data)
}

// NewScalar boxes a single element as a rank-0 array.
func NewScalar(v Value) *Concrete {
	return newConcreteUnchecked(nil, []Value{v})
}

// Shape returns the dimension vector.
func (c *Concrete) Shape() []int {
	return c.shape
}

// Data returns the row-major element data.
func (c *Concrete) Data() []Value {
	return c.data
}

// At returns the element at linear index i.
func (c *Concrete) At(i int) Value {
	if i < 0 || i >= len(c.data) {
		errorf(IndexError, "index %d out of range for size %d", i, len(c.data))
	}
	return c.data[i]
}

// Etype scans the data once and memoizes the join of the element
// types.
func (c *Concrete) Etype() Etype {
	return c.etype.force(func() Etype {
		t := EtypeEmpty
		for _, v := range c.data {
			t = joinEtype(t, etypeOf(v))
			if t == EtypeMixed {
				break
			}
		}
		return t
	})
}

// Prototype derives the fill element from the first element, or from
// the element type for an empty array.
func (c *Concrete) Prototype() Value {
	if len(c.data) > 0 {
		return prototypeValue(c.data[0])
	}
	return protoForEtype(c.Etype())
}

// Generator returns an indexer over the data.
func (c *Concrete) Generator() Generator {
	return c.At
}

func (c *Concrete) String() string {
	return c.Sprint(nil)
}
