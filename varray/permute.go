// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "github.com/garandria/april/config"

// permute reorders the axes of its operand. When two source axes
// share a target, the result is a diagonal section: the output rank
// shrinks and the shared axis runs to the minimum of the contributing
// extents, so every contributing coordinate is the same value.
type permute struct {
	memo
	operand Array
	order   []int // target axis per source axis, zero-based
}

// Permute transposes a. order names, per source axis, its target
// axis in index-origin terms; nil reverses the axis order. Targets
// must form a dense set starting at the origin; a repeated target
// selects the diagonal through those axes.
func Permute(conf *config.Config, order []int, a Array) Array {
	rank := Rank(a)
	ord := make([]int, rank)
	if order == nil {
		for i := range ord {
			ord[i] = rank - 1 - i
		}
		return &permute{operand: a, order: ord}
	}
	if len(order) != rank {
		errorf(RankError, "transpose order %v does not match rank %d", order, rank)
	}
	origin := conf.Origin()
	maxTarget := -1
	for i, t := range order {
		t -= origin
		if t < 0 || t >= rank {
			errorf(DomainError, "transpose target %d out of range for rank %d", order[i], rank)
		}
		ord[i] = t
		if t > maxTarget {
			maxTarget = t
		}
	}
	present := make([]bool, rank)
	for _, t := range ord {
		present[t] = true
	}
	for t := 0; t <= maxTarget; t++ {
		if !present[t] {
			errorf(DomainError, "transpose order %v skips target axis %d", order, t+origin)
		}
	}
	return &permute{operand: a, order: ord}
}

func (p *permute) Shape() []int {
	return p.memo.shape.force(func() []int {
		src := p.operand.Shape()
		outRank := 0
		for _, t := range p.order {
			if t+1 > outRank {
				outRank = t + 1
			}
		}
		out := make([]int, outRank)
		for i := range out {
			out[i] = -1
		}
		for s, t := range p.order {
			if out[t] < 0 || src[s] < out[t] {
				out[t] = src[s]
			}
		}
		return out
	})
}

func (p *permute) Etype() Etype {
	return p.operand.Etype()
}

func (p *permute) Prototype() Value {
	return p.operand.Prototype()
}

func (p *permute) Generator() Generator {
	return p.memo.gen.force(func() Generator { return composedGenerator(p) })
}

func (p *permute) base() Array {
	return p.operand
}

func (p *permute) step() step {
	order := p.order
	return step{
		enc:      encDecoded,
		outShape: p.Shape(),
		inShape:  p.operand.Shape(),
		dec: func(out, in []int) bool {
			for src, t := range order {
				in[src] = out[t]
			}
			return true
		},
	}
}
