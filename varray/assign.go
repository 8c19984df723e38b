// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "github.com/garandria/april/config"

// assign is the shared node behind indexed and masked assignment: a
// copy of the base with the selected cells replaced. The selected
// positions are mapped once, at construction, to slots in a dense
// replacement buffer; the generator consults that map per cell.
// Indexing and assignment thus share one index computation: an
// assign node over the same specs as a bracket node renumbers
// identically.
type assign struct {
	memo
	operand Array
	slots   map[int]int // base linear index -> replacement slot
	values  *Concrete
	scalar  bool // values is a single value for every selected cell
	combine func(old, new Value) Value
}

// BracketAssign returns a copy of a with the cells a[specs...]
// replaced by values, which must be a scalar or match the selection
// shape. With combine non-nil the installed value is combine(old,
// new), implementing compound assignment. When an index is named
// more than once the last replacement wins.
func BracketAssign(conf *config.Config, a Array, specs []Array, values Array, combine func(old, new Value) Value) Array {
	b := Bracket(conf, a, specs...).(*bracket)
	sel := b.step()
	baseShape := a.Shape()
	n := size(b.outShape)

	slots := make(map[int]int, n)
	out := make([]int, len(b.outShape))
	in := make([]int, len(baseShape))
	for i := 0; i < n; i++ {
		CoordOf(i, b.outShape, out)
		sel.dec(out, in)
		slots[LinearOf(in, baseShape)] = i
	}

	v := render(values)
	scalar := len(v.shape) == 0
	if !scalar && !sameShape(v.shape, b.outShape) {
		errorf(LengthError, "assignment of shape %v to selection of shape %v", v.shape, b.outShape)
	}
	return &assign{operand: a, slots: slots, values: v, scalar: scalar, combine: combine}
}

// MaskAssign returns a copy of base with the cells where mask is 1
// replaced, in row-major order, by the elements of values: a scalar,
// or one element per selected cell. The mask must be boolean and
// match base's shape.
func MaskAssign(conf *config.Config, mask, base, values Array) Array {
	mv := render(mask)
	if !sameShape(mv.shape, base.Shape()) {
		errorf(LengthError, "mask shape %v does not match shape %v", mv.shape, base.Shape())
	}
	slots := make(map[int]int)
	count := 0
	for i, v := range mv.data {
		switch intValue(v, "mask") {
		case 0:
		case 1:
			slots[i] = count
			count++
		default:
			errorf(DomainError, "mask value %s is not boolean", v)
		}
	}
	v := render(values)
	scalar := len(v.shape) == 0
	if !scalar && len(v.data) != count {
		errorf(LengthError, "%d values for %d selected cells", len(v.data), count)
	}
	return &assign{operand: base, slots: slots, values: v, scalar: scalar}
}

func (a *assign) Shape() []int {
	return a.operand.Shape()
}

func (a *assign) Etype() Etype {
	return a.memo.etype.force(func() Etype {
		return joinEtype(a.operand.Etype(), a.values.Etype())
	})
}

func (a *assign) Prototype() Value {
	return a.operand.Prototype()
}

func (a *assign) Generator() Generator {
	return a.memo.gen.force(func() Generator {
		baseGen := a.operand.Generator()
		return func(i int) Value {
			slot, ok := a.slots[i]
			if !ok {
				return baseGen(i)
			}
			v := a.values.data[0]
			if !a.scalar {
				v = a.values.data[slot]
			}
			if a.combine != nil {
				v = a.combine(resolveValue(baseGen(i)), v)
			}
			return v
		}
	})
}
