// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "github.com/garandria/april/config"

// compress replicates or elides cells along one axis as directed by a
// vector of non-negative degrees: degree 0 drops a cell, degree k
// repeats it k times. The position table is the node's own private
// buffer, built once at construction. A degree vector shorter than
// the axis silently limits the output to the cells it covers; that
// truncation is part of the operation's semantics, not a fault.
type compress struct {
	memo
	operand   Array
	axis      int
	positions []int
}

// Compress filters and replicates a along the origin-based axis. A
// scalar degree applies to every cell.
func Compress(conf *config.Config, degrees Array, axis int, a Array) Array {
	ax := axisOf(conf, axis, Rank(a))
	d := render(degrees)
	if len(d.shape) > 1 {
		errorf(RankError, "compress degrees of rank %d", len(d.shape))
	}
	extent := a.Shape()[ax]
	deg := make([]int, 0, extent)
	if len(d.shape) == 0 {
		k := intValue(d.data[0], "compress degree")
		for i := 0; i < extent; i++ {
			deg = append(deg, k)
		}
	} else {
		for _, v := range d.data {
			deg = append(deg, intValue(v, "compress degree"))
		}
		if len(deg) > extent {
			errorf(LengthError, "%d degrees for axis extent %d", len(deg), extent)
		}
	}
	var positions []int
	for i, k := range deg {
		if k < 0 {
			errorf(DomainError, "negative compress degree %d", k)
		}
		for ; k > 0; k-- {
			positions = append(positions, i)
		}
	}
	return &compress{operand: a, axis: ax, positions: positions}
}

func (c *compress) Shape() []int {
	return c.memo.shape.force(func() []int {
		sh := append([]int(nil), c.operand.Shape()...)
		sh[c.axis] = len(c.positions)
		return sh
	})
}

func (c *compress) Etype() Etype {
	return c.operand.Etype()
}

func (c *compress) Prototype() Value {
	return c.operand.Prototype()
}

func (c *compress) Generator() Generator {
	return c.memo.gen.force(func() Generator { return composedGenerator(c) })
}

func (c *compress) base() Array {
	return c.operand
}

func (c *compress) step() step {
	axis, positions := c.axis, c.positions
	return step{
		enc:      encDecoded,
		outShape: c.Shape(),
		inShape:  c.operand.Shape(),
		dec: func(out, in []int) bool {
			copy(in, out)
			in[axis] = positions[out[axis]]
			return true
		},
	}
}
