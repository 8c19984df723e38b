// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "github.com/garandria/april/config"

// bracket implements indexing a[i1; i2; ...]. Per axis the spec is
// nil (elided: keep the whole axis), a rank-0 array (collapse the
// axis), or an index array (gather: the spec's shape joins the
// output shape at that position). Index values are origin-based and
// validated at construction, not at render.
type bracket struct {
	memo
	operand  Array
	specs    [][]int // zero-based index data per operand axis; nil = elided
	shapes   [][]int // shape of each spec; nil for elided, empty for scalar
	outShape []int
}

// Bracket selects a[specs...]. Trailing axes without a spec are
// elided.
func Bracket(conf *config.Config, a Array, specs ...Array) Array {
	sh := a.Shape()
	if len(specs) > len(sh) {
		errorf(RankError, "%d indexes for rank %d", len(specs), len(sh))
	}
	origin := conf.Origin()
	b := &bracket{
		operand: a,
		specs:   make([][]int, len(sh)),
		shapes:  make([][]int, len(sh)),
	}
	for axis, spec := range specs {
		if spec == nil {
			continue
		}
		c := render(spec)
		idx := make([]int, len(c.data))
		for i, v := range c.data {
			x := intValue(v, "index") - origin
			if x < 0 || x >= sh[axis] {
				errorf(IndexError, "index %s out of range for axis %d of extent %d",
					v, axis+origin, sh[axis])
			}
			idx[i] = x
		}
		b.specs[axis] = idx
		b.shapes[axis] = c.shape
	}
	var out []int
	for axis := range sh {
		if b.specs[axis] == nil {
			out = append(out, sh[axis])
			continue
		}
		out = append(out, b.shapes[axis]...)
	}
	b.outShape = out
	return b
}

func (b *bracket) Shape() []int {
	return b.outShape
}

func (b *bracket) Etype() Etype {
	return b.operand.Etype()
}

func (b *bracket) Prototype() Value {
	return b.operand.Prototype()
}

func (b *bracket) Generator() Generator {
	return b.memo.gen.force(func() Generator { return composedGenerator(b) })
}

func (b *bracket) base() Array {
	return b.operand
}

func (b *bracket) step() step {
	specs, shapes := b.specs, b.shapes
	return step{
		enc:      encDecoded,
		outShape: b.outShape,
		inShape:  b.operand.Shape(),
		dec: func(out, in []int) bool {
			pos := 0
			for axis := range in {
				idx := specs[axis]
				if idx == nil {
					in[axis] = out[pos]
					pos++
					continue
				}
				r := len(shapes[axis])
				in[axis] = idx[LinearOf(out[pos:pos+r], shapes[axis])]
				pos += r
			}
			return true
		},
	}
}
