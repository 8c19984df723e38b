// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "github.com/garandria/april/config"

// Deep indexing. A pick path is a vector of index values addressing
// one location through nested enclosed arrays: a scalar indexes a
// vector level, a coordinate vector indexes a higher-rank level.
// Each path value resolves to a linear offset via the dimensional
// factors of the level it applies to.

// Pick returns the element of a addressed by path, as an array (the
// element itself if enclosed, a rank-0 box of it otherwise). A path
// longer than the nesting is an index error.
func Pick(conf *config.Config, path, a Array) Array {
	v := pickTarget(conf, path, a, nil)
	if e, ok := v.(*Concrete); ok {
		return e
	}
	return NewScalar(v)
}

// PickAssign returns a copy of a with the element addressed by path
// replaced by value (combined with the old element by combine, if
// non-nil). Only the spine of nodes from the root to the addressed
// leaf is rebuilt; all sibling elements are shared with a.
func PickAssign(conf *config.Config, path, a, value Array, combine func(old, new Value) Value) Array {
	repl := elemOf(render(value))
	return pickTarget(conf, path, a, func(old Value) Value {
		if combine != nil {
			return combine(old, repl)
		}
		return repl
	}).(*Concrete)
}

// elemOf converts an array to an element value: a rank-0 array
// contributes its single element, anything else is the boxed array.
func elemOf(c *Concrete) Value {
	if len(c.shape) == 0 {
		return c.data[0]
	}
	return c
}

// pickTarget resolves path within a. With update nil it returns the
// addressed element; otherwise it returns a new root *Concrete whose
// addressed element has been passed through update.
func pickTarget(conf *config.Config, path, a Array, update func(Value) Value) Value {
	p := render(path)
	if len(p.shape) > 1 {
		errorf(RankError, "pick path of rank %d", len(p.shape))
	}
	steps := p.data
	if len(p.shape) == 0 {
		steps = []Value{p.data[0]}
	}
	root := render(a)
	return pickWalk(conf, root, steps, update)
}

func pickWalk(conf *config.Config, c *Concrete, steps []Value, update func(Value) Value) Value {
	if len(steps) == 0 {
		if update == nil {
			return elemValue(c)
		}
		// Replacing the whole array.
		switch v := update(elemValue(c)).(type) {
		case *Concrete:
			return v
		default:
			return NewScalar(v)
		}
	}
	offset := pickOffset(conf, steps[0], c)
	elem := c.data[offset]
	var result Value
	if len(steps) > 1 {
		inner, ok := elem.(*Concrete)
		if !ok {
			errorf(IndexError, "pick path exceeds nesting depth")
		}
		result = pickWalk(conf, inner, steps[1:], update)
	} else if update == nil {
		result = elem
	} else {
		result = update(elem)
	}
	if update == nil {
		return result
	}
	// Rebuild only this spine node; siblings are shared.
	data := make([]Value, len(c.data))
	copy(data, c.data)
	data[offset] = result
	return newConcreteUnchecked(c.shape, data)
}

// elemValue unwraps a rank-0 array for use as an element.
func elemValue(c *Concrete) Value {
	if len(c.shape) == 0 {
		return c.data[0]
	}
	return c
}

// pickOffset resolves one path value against the current nesting
// level: a coordinate vector matching the level's rank, or a scalar
// for a vector level.
func pickOffset(conf *config.Config, v Value, c *Concrete) int {
	origin := conf.Origin()
	var coord []int
	switch v := v.(type) {
	case *Concrete:
		if len(v.shape) > 1 {
			errorf(RankError, "pick path element of rank %d", len(v.shape))
		}
		for _, x := range v.data {
			coord = append(coord, intValue(x, "pick index")-origin)
		}
	default:
		coord = []int{intValue(v, "pick index") - origin}
	}
	if len(coord) != len(c.shape) {
		errorf(RankError, "pick path element of length %d for rank %d", len(coord), len(c.shape))
	}
	for axis, x := range coord {
		if x < 0 || x >= c.shape[axis] {
			errorf(IndexError, "pick index %d out of range for axis extent %d",
				x+origin, c.shape[axis])
		}
	}
	return LinearOf(coord, c.shape)
}
