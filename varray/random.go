// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"math/rand"

	"github.com/garandria/april/config"
)

// roll replaces each cell n of its operand by one uniform draw. The
// draws are the node's private cache, filled lazily one roll per
// cell, so repeated indexing of the same cell within a render (or
// across renders of a shared node) sees one stable value.
type roll struct {
	memo
	operand Array
	conf    *config.Config
	cache   []Value
}

// Roll draws, per cell n of a, a uniform integer in
// [origin, origin+n) for a positive integer n, a uniform float in
// (0, n) for a fractional n, and a uniform float in (0, 1) for
// n = 0. The configuration's random source supplies the draws;
// seed it for reproducibility.
func Roll(conf *config.Config, a Array) Array {
	return &roll{operand: a, conf: conf}
}

func (r *roll) Shape() []int {
	return r.operand.Shape()
}

func (r *roll) Etype() Etype {
	return EtypeNumber
}

func (r *roll) Prototype() Value {
	return Int(0)
}

func (r *roll) Generator() Generator {
	return r.memo.gen.force(func() Generator {
		og := r.operand.Generator()
		r.cache = make([]Value, SizeOf(r))
		origin := r.conf.Origin()
		rng := r.conf.Random()
		return func(i int) Value {
			if r.cache[i] != nil {
				return r.cache[i]
			}
			var v Value
			switch n := resolveValue(og(i)).(type) {
			case Int:
				switch {
				case n < 0:
					errorf(DomainError, "roll of negative %d", n)
				case n == 0:
					v = Float(rollFloat(rng))
				default:
					v = Int(origin + rng.Intn(int(n)))
				}
			case Float:
				if n <= 0 {
					errorf(DomainError, "roll of non-positive %s", n)
				}
				v = Float(rollFloat(rng) * float64(n))
			default:
				errorf(TypeError, "roll of non-number %s", n)
			}
			r.cache[i] = v
			return v
		}
	})
}

// rollFloat draws uniformly from the open interval (0, 1): a zero
// draw is rejected and retried.
func rollFloat(rng *rand.Rand) float64 {
	for {
		if f := rng.Float64(); f != 0 {
			return f
		}
	}
}

// Deal returns count distinct draws from the population
// [origin, origin+n): an index vector shuffled in place by
// Fisher-Yates and truncated to count, so no value repeats.
func Deal(conf *config.Config, count, n int) Array {
	if count < 0 || n < 0 || count > n {
		errorf(DomainError, "deal %d of %d", count, n)
	}
	origin := conf.Origin()
	rng := conf.Random()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = origin + i
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return NewIntVector(idx[:count]...)
}
