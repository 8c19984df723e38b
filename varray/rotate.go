// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "github.com/garandria/april/config"

// rotate cycles its operand along one axis. The amount is a scalar
// count or an array of counts, one per cell of the remaining axes,
// taken modulo the axis extent. Chained rotations along the same
// axis fold their amounts additively at construction instead of
// nesting generators. With rev set the axis is reversed instead.
type rotate struct {
	memo
	operand  Array
	axis     int
	rev      bool
	amount   *Concrete // nil when rev, or when constAmt applies
	constAmt int
	constOK  bool
}

// Rotate rotates a along the origin-based axis by amount: cell i of
// the result is cell i+amount of the operand, wrapping around.
func Rotate(conf *config.Config, axis int, amount Array, a Array) Array {
	ax := axisOf(conf, axis, Rank(a))
	amt := render(amount)
	r := &rotate{operand: a, axis: ax}
	if len(amt.shape) == 0 || len(amt.data) == 1 {
		r.constAmt = intValue(amt.data[0], "rotation amount")
		r.constOK = true
	} else {
		restShape := without(a.Shape(), ax)
		if !sameShape(amt.shape, restShape) {
			errorf(LengthError, "rotation amounts %v do not match shape %v on axis %d",
				amt.shape, a.Shape(), axis)
		}
		r.amount = amt
	}
	// Fold rotate over rotate on the same axis.
	if inner, ok := a.(*rotate); ok && inner.axis == ax &&
		r.constOK && inner.constOK && !inner.rev {
		r.operand = inner.operand
		r.constAmt += inner.constAmt
	}
	return r
}

// Reverse reverses a along the origin-based axis.
func Reverse(conf *config.Config, axis int, a Array) Array {
	return &rotate{operand: a, axis: axisOf(conf, axis, Rank(a)), rev: true}
}

// axisOf converts an origin-based axis number to a zero-based one,
// checking it against the rank.
func axisOf(conf *config.Config, axis, rank int) int {
	ax := axis - conf.Origin()
	if ax < 0 || ax >= rank {
		errorf(RankError, "axis %d out of range for rank %d", axis, rank)
	}
	return ax
}

// without returns shape with the given axis removed.
func without(shape []int, axis int) []int {
	out := make([]int, 0, len(shape)-1)
	out = append(out, shape[:axis]...)
	return append(out, shape[axis+1:]...)
}

func (r *rotate) Shape() []int {
	return r.operand.Shape()
}

func (r *rotate) Etype() Etype {
	return r.operand.Etype()
}

func (r *rotate) Prototype() Value {
	return r.operand.Prototype()
}

func (r *rotate) Generator() Generator {
	return r.memo.gen.force(func() Generator { return composedGenerator(r) })
}

func (r *rotate) base() Array {
	return r.operand
}

func (r *rotate) step() step {
	shape := r.operand.Shape()
	axis := r.axis
	d := shape[axis]
	amountAt := func(out []int) int { return r.constAmt }
	if r.amount != nil {
		restShape := without(shape, axis)
		rest := make([]int, len(restShape))
		amountAt = func(out []int) int {
			rest = rest[:0]
			rest = append(rest, out[:axis]...)
			rest = append(rest, out[axis+1:]...)
			return intValue(r.amount.data[LinearOf(rest, restShape)], "rotation amount")
		}
	}
	rev := r.rev
	return step{
		enc:      encDecoded,
		outShape: shape,
		inShape:  shape,
		dec: func(out, in []int) bool {
			copy(in, out)
			if d == 0 {
				return true
			}
			if rev {
				in[axis] = d - 1 - out[axis]
				return true
			}
			x := (out[axis] + amountAt(out)) % d
			if x < 0 {
				x += d
			}
			in[axis] = x
			return true
		},
	}
}
