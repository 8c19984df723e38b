// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "github.com/garandria/april/config"

// interval is the lazy index generator: n consecutive integers
// starting at the index origin.
type interval struct {
	memo
	origin int
	n      int
}

// Interval returns the vector of n consecutive integers starting at
// the index origin.
func Interval(conf *config.Config, n int) Array {
	if n < 0 {
		errorf(DomainError, "bad interval %d", n)
	}
	return &interval{origin: conf.Origin(), n: n}
}

func (iv *interval) Shape() []int {
	return iv.memo.shape.force(func() []int { return []int{iv.n} })
}

func (iv *interval) Etype() Etype {
	return EtypeIndex
}

func (iv *interval) Prototype() Value {
	return Int(0)
}

func (iv *interval) Generator() Generator {
	return iv.memo.gen.force(func() Generator {
		origin := iv.origin
		return func(i int) Value { return Int(origin + i) }
	})
}

// fill is a constant array: every cell is the same value.
type fill struct {
	memo
	fshape []int
	v      Value
}

// Fill returns an array of the given shape with v at every cell.
func Fill(shape []int, v Value) Array {
	checkShape(shape)
	return &fill{fshape: append([]int(nil), shape...), v: v}
}

func (f *fill) Shape() []int {
	return f.fshape
}

func (f *fill) Etype() Etype {
	return f.memo.etype.force(func() Etype { return etypeOf(f.v) })
}

func (f *fill) Prototype() Value {
	return f.memo.proto.force(func() Value { return prototypeValue(f.v) })
}

func (f *fill) constValue() Value {
	return f.v
}

func (f *fill) Generator() Generator {
	return f.memo.gen.force(func() Generator {
		v := f.v
		return func(i int) Value { return v }
	})
}
