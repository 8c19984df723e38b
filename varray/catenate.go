// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"math"

	"github.com/garandria/april/config"
)

// catenate joins arrays along one axis. The operands' extents along
// the join axis are prefix-summed at construction; at render time a
// scan over the sums locates the operand supplying a given output
// coordinate. Operand counts are small, so the scan is linear.
type catenate struct {
	memo
	parts   []Array
	axis    int
	offsets []int // len(parts)+1 prefix sums along the join axis
}

// laminate joins same-shaped arrays along a new axis of extent
// len(parts) inserted at position pos.
type laminate struct {
	memo
	parts []Array
	pos   int
}

// Catenate joins the parts along the origin-based axis. A fractional
// axis laminates instead, inserting a new axis at the indicated
// position. Operand ranks may fall short of the result rank by one
// (a unit extent is supplied on the join axis); scalars broadcast.
// All other axes must agree.
func Catenate(conf *config.Config, axis float64, parts ...Array) Array {
	if len(parts) == 0 {
		errorf(LengthError, "catenate of no arrays")
	}
	origin := conf.Origin()
	if axis != math.Trunc(axis) {
		return newLaminate(int(math.Floor(axis))+1-origin, parts)
	}
	ax := int(axis) - origin

	rank := 1
	for _, p := range parts {
		if Rank(p) > rank {
			rank = Rank(p)
		}
	}
	if ax < 0 || ax >= rank {
		errorf(RankError, "catenate axis %v out of range for rank %d", axis, rank)
	}

	// Shape each part up to the common rank.
	common := commonShape(parts, rank, ax)
	shaped := make([]Array, len(parts))
	for i, p := range parts {
		switch Rank(p) {
		case rank:
			shaped[i] = p
		case 0:
			sh := append([]int(nil), common...)
			sh[ax] = 1
			shaped[i] = Reshape(sh, p)
		case rank - 1:
			sh := make([]int, 0, rank)
			sh = append(sh, p.Shape()[:ax]...)
			sh = append(sh, 1)
			sh = append(sh, p.Shape()[ax:]...)
			shaped[i] = Reshape(sh, p)
		default:
			errorf(RankError, "catenate rank %d with rank %d", Rank(p), rank)
		}
	}

	offsets := make([]int, len(shaped)+1)
	for i, p := range shaped {
		sh := p.Shape()
		for axis2, d := range sh {
			if axis2 != ax && d != common[axis2] {
				errorf(LengthError, "catenate shapes %v and %v mismatch on axis %d",
					common, sh, axis2+origin)
			}
		}
		offsets[i+1] = offsets[i] + sh[ax]
	}
	return &catenate{parts: shaped, axis: ax, offsets: offsets}
}

// commonShape finds the shape the operands must agree on, from the
// first part of full rank (or of rank one less, with a unit join
// axis supplied).
func commonShape(parts []Array, rank, ax int) []int {
	for _, p := range parts {
		if Rank(p) == rank {
			return p.Shape()
		}
	}
	for _, p := range parts {
		if Rank(p) == rank-1 {
			sh := make([]int, 0, rank)
			sh = append(sh, p.Shape()[:ax]...)
			sh = append(sh, 1)
			return append(sh, p.Shape()[ax:]...)
		}
	}
	// All scalars.
	sh := make([]int, rank)
	for i := range sh {
		sh[i] = 1
	}
	return sh
}

func (c *catenate) Shape() []int {
	return c.memo.shape.force(func() []int {
		sh := append([]int(nil), c.parts[0].Shape()...)
		sh[c.axis] = c.offsets[len(c.offsets)-1]
		return sh
	})
}

func (c *catenate) Etype() Etype {
	return c.memo.etype.force(func() Etype {
		t := EtypeEmpty
		for _, p := range c.parts {
			t = joinEtype(t, p.Etype())
		}
		return t
	})
}

func (c *catenate) Prototype() Value {
	return c.parts[0].Prototype()
}

func (c *catenate) Generator() Generator {
	return c.memo.gen.force(func() Generator {
		outShape := c.Shape()
		axis := c.axis
		offsets := c.offsets
		gens := make([]Generator, len(c.parts))
		shapes := make([][]int, len(c.parts))
		for i, p := range c.parts {
			gens[i] = p.Generator()
			shapes[i] = p.Shape()
		}
		coord := make([]int, len(outShape))
		return func(i int) Value {
			CoordOf(i, outShape, coord)
			x := coord[axis]
			k := 0
			for x >= offsets[k+1] {
				k++
			}
			coord[axis] = x - offsets[k]
			j := LinearOf(coord, shapes[k])
			coord[axis] = x
			return gens[k](j)
		}
	})
}

func newLaminate(pos int, parts []Array) Array {
	if len(parts) == 0 {
		errorf(LengthError, "laminate of no arrays")
	}
	var common []int
	for _, p := range parts {
		if Rank(p) > 0 {
			common = p.Shape()
			break
		}
	}
	if pos < 0 || pos > len(common) {
		errorf(DomainError, "laminate position %d out of range for rank %d", pos, len(common))
	}
	shaped := make([]Array, len(parts))
	for i, p := range parts {
		switch {
		case Rank(p) == 0:
			shaped[i] = Reshape(common, p)
		case sameShape(p.Shape(), common):
			shaped[i] = p
		default:
			errorf(LengthError, "laminate shapes %v and %v differ", common, p.Shape())
		}
	}
	return &laminate{parts: shaped, pos: pos}
}

func (l *laminate) Shape() []int {
	return l.memo.shape.force(func() []int {
		inner := l.parts[0].Shape()
		sh := make([]int, 0, len(inner)+1)
		sh = append(sh, inner[:l.pos]...)
		sh = append(sh, len(l.parts))
		return append(sh, inner[l.pos:]...)
	})
}

func (l *laminate) Etype() Etype {
	return l.memo.etype.force(func() Etype {
		t := EtypeEmpty
		for _, p := range l.parts {
			t = joinEtype(t, p.Etype())
		}
		return t
	})
}

func (l *laminate) Prototype() Value {
	return l.parts[0].Prototype()
}

func (l *laminate) Generator() Generator {
	return l.memo.gen.force(func() Generator {
		outShape := l.Shape()
		pos := l.pos
		inner := l.parts[0].Shape()
		gens := make([]Generator, len(l.parts))
		for i, p := range l.parts {
			gens[i] = p.Generator()
		}
		coord := make([]int, len(outShape))
		rest := make([]int, len(inner))
		return func(i int) Value {
			CoordOf(i, outShape, coord)
			k := coord[pos]
			rest = rest[:0]
			rest = append(rest, coord[:pos]...)
			rest = append(rest, coord[pos+1:]...)
			return gens[k](LinearOf(rest, inner))
		}
	})
}
