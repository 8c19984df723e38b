// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

// The index composition engine. A node that only renumbers its
// operand's elements (reshape, section, permute, rotate, bracket
// selection) advertises the renumberer capability. When such a node
// builds its generator, the whole chain of renumbering links below it
// is folded into one closure executed once per output cell, so no
// intermediate array is materialized.
//
// A link declares which index encoding it works in: linear (a single
// row-major index) or decoded (a per-axis coordinate). Encode/decode
// adapters are inserted only between links whose encodings differ;
// adjacent decoded links hand coordinates to each other directly,
// since one link's base space is the next link's output space.

type encoding int

const (
	encLinear encoding = iota
	encDecoded
)

// A step is one link of a renumbering chain.
type step struct {
	enc      encoding
	outShape []int // the link's own shape
	inShape  []int // its base's shape
	// lin maps an output linear index to a base linear index.
	// ok=false means the cell lies in fill territory and resolves
	// to the array's prototype.
	lin func(i int) (j int, ok bool)
	// dec fills in (len = rank of base) from out (len = rank of the
	// link). Same ok convention as lin.
	dec func(out, in []int) (ok bool)
}

// A renumberer is an Array whose elements come from a single base
// array through a pure index transform.
type renumberer interface {
	Array
	base() Array
	step() step
}

// renumberChain collects the maximal renumbering chain starting at a:
// the steps outermost-first, and the first non-renumbering base.
func renumberChain(a Array) ([]step, Array) {
	var steps []step
	cur := a
	for {
		r, ok := cur.(renumberer)
		if !ok {
			return steps, cur
		}
		steps = append(steps, r.step())
		cur = r.base()
	}
}

// composedGenerator builds the generator for renumbering node a by
// folding its chain into a single closure. The closure reuses
// per-step coordinate buffers; the engine is single-threaded.
func composedGenerator(a Array) Generator {
	steps, base := renumberChain(a)
	baseShape := base.Shape()

	var constVal Value
	var baseGen Generator
	if cv, ok := base.(constValuer); ok {
		constVal = cv.constValue()
	} else {
		baseGen = base.Generator()
	}

	inBuf := make([][]int, len(steps))
	outBuf := make([][]int, len(steps))
	for k := range steps {
		if steps[k].enc == encDecoded {
			inBuf[k] = make([]int, len(steps[k].inShape))
			outBuf[k] = make([]int, len(steps[k].outShape))
		}
	}

	var proto Value // fetched on first fill
	fill := func() Value {
		if proto == nil {
			proto = a.Prototype()
		}
		return proto
	}

	return func(i int) Value {
		lin := i
		var coord []int
		decoded := false
		for k := range steps {
			s := &steps[k]
			if s.enc == encLinear {
				if decoded {
					lin = LinearOf(coord, s.outShape)
					decoded = false
				}
				j, ok := s.lin(lin)
				if !ok {
					return fill()
				}
				lin = j
			} else {
				out := coord
				if !decoded {
					out = CoordOf(lin, s.outShape, outBuf[k])
				}
				if !s.dec(out, inBuf[k]) {
					return fill()
				}
				coord = inBuf[k]
				decoded = true
			}
		}
		if decoded {
			lin = LinearOf(coord, baseShape)
		}
		if constVal != nil {
			return constVal
		}
		return baseGen(lin)
	}
}
