// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBracketVector(t *testing.T) {
	conf := testConf()
	v := NewIntVector(10, 20, 30, 40, 50)
	a := Bracket(conf, v, NewIntVector(5, 1, 3))
	require.Equal(t, []int{50, 10, 30}, mustInts(t, conf, a))

	// An index may repeat.
	b := Bracket(conf, v, NewIntVector(2, 2, 2))
	require.Equal(t, []int{20, 20, 20}, mustInts(t, conf, b))
}

func TestBracketScalarCollapses(t *testing.T) {
	conf := testConf()
	a := Reshape([]int{3, 4}, Interval(conf, 12))
	s := Bracket(conf, a, NewScalar(Int(2)), NewScalar(Int(3)))
	require.Equal(t, 0, Rank(s))
	require.Equal(t, []int{7}, mustInts(t, conf, s))

	// A scalar on one axis only collapses that axis.
	row := Bracket(conf, a, NewScalar(Int(2)))
	require.Equal(t, []int{4}, mustShape(t, conf, row))
	require.Equal(t, []int{5, 6, 7, 8}, mustInts(t, conf, row))
}

func TestBracketElided(t *testing.T) {
	conf := testConf()
	a := Reshape([]int{3, 4}, Interval(conf, 12))
	cols := Bracket(conf, a, nil, NewIntVector(4, 1))
	require.Equal(t, []int{3, 2}, mustShape(t, conf, cols))
	require.Equal(t, []int{4, 1, 8, 5, 12, 9}, mustInts(t, conf, cols))

	rows := Bracket(conf, a, NewIntVector(3, 1))
	require.Equal(t, []int{2, 4}, mustShape(t, conf, rows))
	require.Equal(t, []int{9, 10, 11, 12, 1, 2, 3, 4}, mustInts(t, conf, rows))
}

func TestBracketArraySpec(t *testing.T) {
	conf := testConf()
	v := NewIntVector(10, 20, 30, 40)
	// The spec's shape joins the output shape.
	spec := Reshape([]int{2, 2}, NewIntVector(1, 2, 3, 4))
	a := Bracket(conf, v, spec)
	require.Equal(t, []int{2, 2}, mustShape(t, conf, a))
	require.Equal(t, []int{10, 20, 30, 40}, mustInts(t, conf, a))
}

func TestBracketOriginZero(t *testing.T) {
	conf := originConf(0)
	v := NewIntVector(10, 20, 30)
	a := Bracket(conf, v, NewIntVector(0, 2))
	require.Equal(t, []int{10, 30}, mustInts(t, conf, a))
}

func TestBracketErrors(t *testing.T) {
	conf := testConf()
	v := NewIntVector(10, 20, 30)
	kind := evalKind(t, func() Array { return Bracket(conf, v, NewScalar(Int(4))) })
	require.Equal(t, IndexError, kind)
	kind = evalKind(t, func() Array { return Bracket(conf, v, NewScalar(Int(0))) })
	require.Equal(t, IndexError, kind)
	kind = evalKind(t, func() Array {
		return Bracket(conf, v, NewScalar(Int(1)), NewScalar(Int(1)))
	})
	require.Equal(t, RankError, kind)
}

func TestBracketAssign(t *testing.T) {
	conf := testConf()
	v := Interval(conf, 5)
	a := BracketAssign(conf, v, []Array{NewIntVector(2, 4)}, NewIntVector(20, 40), nil)
	require.Equal(t, []int{1, 20, 3, 40, 5}, mustInts(t, conf, a))

	// The base is untouched; assignment is a copy.
	require.Equal(t, []int{1, 2, 3, 4, 5}, mustInts(t, conf, v))
}

func TestBracketAssignScalarValue(t *testing.T) {
	conf := testConf()
	a := Reshape([]int{3, 4}, Interval(conf, 12))
	b := BracketAssign(conf, a, []Array{NewScalar(Int(2))}, NewScalar(Int(0)), nil)
	require.Equal(t, []int{1, 2, 3, 4, 0, 0, 0, 0, 9, 10, 11, 12}, mustInts(t, conf, b))
}

func TestBracketAssignCombine(t *testing.T) {
	conf := testConf()
	add := func(old, new Value) Value {
		a, _ := asFloat(old)
		b, _ := asFloat(new)
		return demote(Float(a + b))
	}
	a := BracketAssign(conf, Interval(conf, 5), []Array{NewIntVector(2, 4)},
		NewIntVector(20, 40), add)
	require.Equal(t, []int{1, 22, 3, 44, 5}, mustInts(t, conf, a))
}

func TestBracketAssignDuplicateLastWins(t *testing.T) {
	conf := testConf()
	a := BracketAssign(conf, Interval(conf, 3), []Array{NewIntVector(2, 2)},
		NewIntVector(7, 8), nil)
	require.Equal(t, []int{1, 8, 3}, mustInts(t, conf, a))
}

func TestBracketAssignShapeMismatch(t *testing.T) {
	conf := testConf()
	kind := evalKind(t, func() Array {
		return BracketAssign(conf, Interval(conf, 5), []Array{NewIntVector(1, 2)},
			NewIntVector(9, 9, 9), nil)
	})
	require.Equal(t, LengthError, kind)
}

func TestMaskAssign(t *testing.T) {
	conf := testConf()
	base := NewIntVector(10, 20, 30, 40, 50)
	mask := NewIntVector(0, 1, 0, 1, 1)
	a := MaskAssign(conf, mask, base, NewIntVector(99, 98, 97))
	require.Equal(t, []int{10, 99, 30, 98, 97}, mustInts(t, conf, a))

	// A scalar value fills every selected cell.
	b := MaskAssign(conf, mask, base, NewScalar(Int(0)))
	require.Equal(t, []int{10, 0, 30, 0, 0}, mustInts(t, conf, b))
}

func TestMaskAssignErrors(t *testing.T) {
	conf := testConf()
	base := NewIntVector(10, 20, 30)
	kind := evalKind(t, func() Array {
		return MaskAssign(conf, NewIntVector(1, 0), base, NewScalar(Int(0)))
	})
	require.Equal(t, LengthError, kind)
	kind = evalKind(t, func() Array {
		return MaskAssign(conf, NewIntVector(1, 2, 0), base, NewScalar(Int(0)))
	})
	require.Equal(t, DomainError, kind)
	kind = evalKind(t, func() Array {
		return MaskAssign(conf, NewIntVector(1, 1, 0), base, NewIntVector(9))
	})
	require.Equal(t, LengthError, kind)
}

func TestPick(t *testing.T) {
	conf := testConf()
	nested := NewVector(Int(1), NewIntVector(2, 3))
	p, err := Render(conf, Pick(conf, NewIntVector(2, 1), nested))
	require.NoError(t, err)
	require.Empty(t, p.Shape())
	require.Equal(t, Int(2), p.Data()[0])

	// A one-step path into the nesting returns the enclosed array.
	q, err := Render(conf, Pick(conf, NewScalar(Int(2)), nested))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, mustInts(t, conf, q))
}

func TestPickMatrixCoordinate(t *testing.T) {
	conf := testConf()
	m := MustRender(Reshape([]int{2, 3}, Interval(conf, 6)))
	// A coordinate vector indexes a higher-rank level.
	p := Pick(conf, NewVector(NewIntVector(2, 3)), m)
	require.Equal(t, []int{6}, mustInts(t, conf, p))
}

func TestPickErrors(t *testing.T) {
	conf := testConf()
	nested := NewVector(Int(1), NewIntVector(2, 3))
	kind := evalKind(t, func() Array { return Pick(conf, NewIntVector(1, 1), nested) })
	require.Equal(t, IndexError, kind)
	kind = evalKind(t, func() Array { return Pick(conf, NewIntVector(3), nested) })
	require.Equal(t, IndexError, kind)
}

func TestPickAssign(t *testing.T) {
	conf := testConf()
	inner := NewIntVector(2, 3)
	nested := NewVector(Int(1), inner)
	a := PickAssign(conf, NewIntVector(2, 1), nested, NewScalar(Int(9)), nil)
	c, err := Render(conf, a)
	require.NoError(t, err)
	require.Equal(t, Int(1), c.Data()[0])
	got := c.Data()[1].(*Concrete)
	require.Equal(t, []int{9, 3}, mustInts(t, conf, got))

	// Only the spine is rebuilt: the original inner array is intact.
	require.Equal(t, []int{2, 3}, mustInts(t, conf, inner))
}

func TestPickAssignCombine(t *testing.T) {
	conf := testConf()
	mul := func(old, new Value) Value {
		a, _ := asFloat(old)
		b, _ := asFloat(new)
		return demote(Float(a * b))
	}
	a := PickAssign(conf, NewScalar(Int(3)), NewIntVector(1, 2, 3), NewScalar(Int(10)), mul)
	require.Equal(t, []int{1, 2, 30}, mustInts(t, conf, a))
}
