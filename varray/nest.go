// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "github.com/garandria/april/config"

// subarray is a no-copy view of part of its base: the free axes
// remain visible, the rest are pinned at fixed coordinates. It is
// the core indexer behind split, enclose-with-axes, and partition;
// the elements those operations box are subarray views into the one
// shared base.
type subarray struct {
	memo
	operand Array
	free    []int // base axes that remain, in output order
	fixed   []int // per base axis: its pinned coordinate, or -1 if free
}

func newSubarray(a Array, free, fixed []int) *subarray {
	return &subarray{operand: a, free: free, fixed: fixed}
}

func (s *subarray) Shape() []int {
	return s.memo.shape.force(func() []int {
		sh := s.operand.Shape()
		out := make([]int, len(s.free))
		for i, ax := range s.free {
			out[i] = sh[ax]
		}
		return out
	})
}

func (s *subarray) Etype() Etype {
	return s.operand.Etype()
}

func (s *subarray) Prototype() Value {
	return s.operand.Prototype()
}

func (s *subarray) Generator() Generator {
	return s.memo.gen.force(func() Generator { return composedGenerator(s) })
}

func (s *subarray) base() Array {
	return s.operand
}

func (s *subarray) step() step {
	free, fixed := s.free, s.fixed
	return step{
		enc:      encDecoded,
		outShape: s.Shape(),
		inShape:  s.operand.Shape(),
		dec: func(out, in []int) bool {
			copy(in, fixed)
			for k, ax := range free {
				in[ax] = out[k]
			}
			return true
		},
	}
}

// mix discloses the elements of its operand into one flat array: the
// result shape is the operand shape followed by the elementwise
// maximum of the element shapes, every element padded out to that
// common shape with the common prototype. The operand is forced and
// its elements inspected once, when the shape is first needed.
type mix struct {
	memo
	operand Array
	elems   []*Concrete
	aligned [][]int // element shapes, 1-padded on the left to common rank
	inner   []int
	pad     Value
}

// Mix discloses a's elements into a single array of rank equal to
// a's rank plus the maximal element rank. Ragged elements are padded
// with the common prototype.
func Mix(conf *config.Config, a Array) Array {
	return &mix{operand: a}
}

func (m *mix) build() {
	if m.elems != nil {
		return
	}
	c := render(m.operand)
	elems := make([]*Concrete, len(c.data))
	innerRank := 0
	for i, v := range c.data {
		if e, ok := v.(*Concrete); ok {
			elems[i] = e
		} else {
			elems[i] = NewScalar(v)
		}
		if r := len(elems[i].shape); r > innerRank {
			innerRank = r
		}
	}
	inner := make([]int, innerRank)
	aligned := make([][]int, len(elems))
	for i, e := range elems {
		sh := make([]int, innerRank)
		for k := range sh {
			sh[k] = 1
		}
		copy(sh[innerRank-len(e.shape):], e.shape)
		aligned[i] = sh
		for k, d := range sh {
			if d > inner[k] {
				inner[k] = d
			}
		}
	}
	m.pad = Int(0)
	if len(elems) > 0 && len(elems[0].data) > 0 {
		m.pad = prototypeValue(firstLeaf(elems[0].data[0]))
	}
	m.elems, m.aligned, m.inner = elems, aligned, inner
}

// firstLeaf descends to the first scalar inside a possibly nested value.
func firstLeaf(v Value) Value {
	for {
		a, ok := v.(*Concrete)
		if !ok {
			return v
		}
		if len(a.data) == 0 {
			return Int(0)
		}
		v = a.data[0]
	}
}

func (m *mix) Shape() []int {
	return m.memo.shape.force(func() []int {
		m.build()
		outer := m.operand.Shape()
		sh := make([]int, 0, len(outer)+len(m.inner))
		sh = append(sh, outer...)
		return append(sh, m.inner...)
	})
}

func (m *mix) Etype() Etype {
	return m.memo.etype.force(func() Etype {
		m.build()
		t := EtypeEmpty
		for _, e := range m.elems {
			t = joinEtype(t, e.Etype())
		}
		return t
	})
}

func (m *mix) Prototype() Value {
	return m.memo.proto.force(func() Value {
		m.build()
		return m.pad
	})
}

func (m *mix) Generator() Generator {
	return m.memo.gen.force(func() Generator {
		outShape := m.Shape()
		outerRank := Rank(m.operand)
		coord := make([]int, len(outShape))
		return func(i int) Value {
			CoordOf(i, outShape, coord)
			k := LinearOf(coord[:outerRank], m.operand.Shape())
			e, sh := m.elems[k], m.aligned[k]
			innerCoord := coord[outerRank:]
			for axis, x := range innerCoord {
				if x >= sh[axis] {
					return m.pad
				}
			}
			return e.data[LinearOf(innerCoord, sh)]
		}
	})
}

// split is mix's inverse along one axis: the axis disappears from the
// shape and each cell becomes a boxed no-copy view vector along it.
type split struct {
	memo
	operand Array
	axis    int
}

// Split boxes the vectors of a along the origin-based axis, dropping
// the axis from the shape.
func Split(conf *config.Config, axis int, a Array) Array {
	return &split{operand: a, axis: axisOf(conf, axis, Rank(a))}
}

func (s *split) Shape() []int {
	return s.memo.shape.force(func() []int {
		return without(s.operand.Shape(), s.axis)
	})
}

func (s *split) Etype() Etype {
	return EtypeBox
}

func (s *split) Prototype() Value {
	return s.memo.proto.force(func() Value { return protoOf(s) })
}

func (s *split) Generator() Generator {
	return s.memo.gen.force(func() Generator {
		outShape := s.Shape()
		baseRank := Rank(s.operand)
		axis := s.axis
		coord := make([]int, len(outShape))
		return func(i int) Value {
			CoordOf(i, outShape, coord)
			fixed := make([]int, baseRank)
			fixed[axis] = -1
			for k, ax := 0, 0; ax < baseRank; ax++ {
				if ax != axis {
					fixed[ax] = coord[k]
					k++
				}
			}
			return deferred{newSubarray(s.operand, []int{axis}, fixed)}
		}
	})
}

// enclose boxes its whole operand as a rank-0 scalar.
type enclose struct {
	memo
	operand Array
}

// Enclose boxes a as a rank-0 scalar. Enclosing a simple scalar
// yields the scalar itself.
func Enclose(conf *config.Config, a Array) Array {
	if Rank(a) == 0 && a.Etype() != EtypeBox && a.Etype() != EtypeMixed {
		return a
	}
	return &enclose{operand: a}
}

func (e *enclose) Shape() []int {
	return nil
}

func (e *enclose) Etype() Etype {
	return EtypeBox
}

func (e *enclose) Prototype() Value {
	return e.memo.proto.force(func() Value { return protoOf(e) })
}

func (e *enclose) constValue() Value {
	return deferred{e.operand}
}

func (e *enclose) Generator() Generator {
	return e.memo.gen.force(func() Generator {
		v := deferred{e.operand}
		return func(i int) Value { return v }
	})
}

// encloseAxes splits the operand's axes into kept (outer) and
// enclosed (inner): the result has the kept axes' shape and each cell
// boxes the sub-array over the enclosed axes.
type encloseAxes struct {
	memo
	operand Array
	inner   []int // enclosed axes
	outer   []int // kept axes
}

// EncloseAxes boxes, per cell of the remaining axes, the sub-arrays
// of a over the given origin-based axes.
func EncloseAxes(conf *config.Config, axes []int, a Array) Array {
	rank := Rank(a)
	taken := make([]bool, rank)
	for _, axis := range axes {
		ax := axisOf(conf, axis, rank)
		if taken[ax] {
			errorf(DomainError, "duplicate axis %d in enclose", axis)
		}
		taken[ax] = true
	}
	var inner, outer []int
	for ax := 0; ax < rank; ax++ {
		if taken[ax] {
			inner = append(inner, ax)
		} else {
			outer = append(outer, ax)
		}
	}
	if len(inner) == rank {
		return Enclose(conf, a)
	}
	return &encloseAxes{operand: a, inner: inner, outer: outer}
}

func (e *encloseAxes) Shape() []int {
	return e.memo.shape.force(func() []int {
		sh := e.operand.Shape()
		out := make([]int, len(e.outer))
		for i, ax := range e.outer {
			out[i] = sh[ax]
		}
		return out
	})
}

func (e *encloseAxes) Etype() Etype {
	if len(e.inner) == 0 {
		return e.operand.Etype()
	}
	return EtypeBox
}

func (e *encloseAxes) Prototype() Value {
	return e.memo.proto.force(func() Value { return protoOf(e) })
}

func (e *encloseAxes) Generator() Generator {
	return e.memo.gen.force(func() Generator {
		if len(e.inner) == 0 {
			return e.operand.Generator()
		}
		outShape := e.Shape()
		baseRank := Rank(e.operand)
		coord := make([]int, len(outShape))
		return func(i int) Value {
			CoordOf(i, outShape, coord)
			fixed := make([]int, baseRank)
			for _, ax := range e.inner {
				fixed[ax] = -1
			}
			for k, ax := range e.outer {
				fixed[ax] = coord[k]
			}
			return deferred{newSubarray(e.operand, e.inner, fixed)}
		}
	})
}

// partition groups the cells along one axis into boxed segments: a
// new segment opens where the key grows, cells keyed 0 are elided.
// The segment table is built once, at construction.
type partition struct {
	memo
	operand Array
	axis    int
	segs    [][]int // base positions along the axis, per segment
}

// Partition groups a along the origin-based axis as directed by
// keys, a vector of non-negative integers matching the axis extent:
// each run of equal nonzero keys becomes one boxed segment, a key
// greater than its predecessor opens a new segment, and zero keys
// drop their cells.
func Partition(conf *config.Config, axis int, keys, a Array) Array {
	ax := axisOf(conf, axis, Rank(a))
	kv := render(keys)
	if len(kv.shape) > 1 {
		errorf(RankError, "partition keys of rank %d", len(kv.shape))
	}
	if len(kv.data) != a.Shape()[ax] {
		errorf(LengthError, "partition keys %d do not match axis extent %d",
			len(kv.data), a.Shape()[ax])
	}
	var segs [][]int
	prev := 0
	for i, v := range kv.data {
		k := intValue(v, "partition key")
		if k < 0 {
			errorf(DomainError, "negative partition key %d", k)
		}
		if k == 0 {
			continue
		}
		if len(segs) == 0 || k > prev {
			segs = append(segs, nil)
		}
		segs[len(segs)-1] = append(segs[len(segs)-1], i)
		prev = k
	}
	return &partition{operand: a, axis: ax, segs: segs}
}

func (p *partition) Shape() []int {
	return p.memo.shape.force(func() []int {
		sh := append([]int(nil), p.operand.Shape()...)
		sh[p.axis] = len(p.segs)
		return sh
	})
}

func (p *partition) Etype() Etype {
	return EtypeBox
}

func (p *partition) Prototype() Value {
	return p.memo.proto.force(func() Value { return protoOf(p) })
}

func (p *partition) Generator() Generator {
	return p.memo.gen.force(func() Generator {
		outShape := p.Shape()
		baseRank := Rank(p.operand)
		axis := p.axis
		coord := make([]int, len(outShape))
		return func(i int) Value {
			CoordOf(i, outShape, coord)
			seg := p.segs[coord[axis]]
			fixed := make([]int, baseRank)
			copy(fixed, coord)
			fixed[axis] = -1
			return deferred{&gather1d{operand: p.operand, axis: axis, fixed: fixed, positions: seg}}
		}
	})
}

// gather1d is a view vector over selected positions along one axis of
// its base, the other axes pinned.
type gather1d struct {
	memo
	operand   Array
	axis      int
	fixed     []int
	positions []int
}

func (g *gather1d) Shape() []int {
	return g.memo.shape.force(func() []int { return []int{len(g.positions)} })
}

func (g *gather1d) Etype() Etype {
	return g.operand.Etype()
}

func (g *gather1d) Prototype() Value {
	return g.operand.Prototype()
}

func (g *gather1d) Generator() Generator {
	return g.memo.gen.force(func() Generator { return composedGenerator(g) })
}

func (g *gather1d) base() Array {
	return g.operand
}

func (g *gather1d) step() step {
	return step{
		enc:      encDecoded,
		outShape: g.Shape(),
		inShape:  g.operand.Shape(),
		dec: func(out, in []int) bool {
			copy(in, g.fixed)
			in[g.axis] = g.positions[out[0]]
			return true
		},
	}
}
