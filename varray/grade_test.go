// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGradeUp(t *testing.T) {
	conf := testConf()
	require.Equal(t, []int{2, 3, 1}, mustInts(t, conf, GradeUp(conf, NewIntVector(3, 1, 2))))
	require.Equal(t, []int{1}, mustInts(t, conf, GradeUp(conf, NewIntVector(42))))
	require.Equal(t, []int{}, mustInts(t, conf, GradeUp(conf, NewVector())))
}

func TestGradeStability(t *testing.T) {
	conf := testConf()
	// Ties keep their original order, up and down alike.
	require.Equal(t, []int{2, 4, 1, 3}, mustInts(t, conf, GradeUp(conf, NewIntVector(2, 1, 2, 1))))
	require.Equal(t, []int{1, 3, 2, 4}, mustInts(t, conf, GradeDown(conf, NewIntVector(2, 1, 2, 1))))
}

func TestGradeDown(t *testing.T) {
	conf := testConf()
	require.Equal(t, []int{1, 3, 2}, mustInts(t, conf, GradeDown(conf, NewIntVector(3, 1, 2))))
}

func TestGradeOriginZero(t *testing.T) {
	conf := originConf(0)
	require.Equal(t, []int{1, 2, 0}, mustInts(t, conf, GradeUp(conf, NewIntVector(3, 1, 2))))
}

func TestGradeMajorCells(t *testing.T) {
	conf := testConf()
	a := NewConcrete([]int{3, 2}, []Value{
		Int(2), Int(1),
		Int(1), Int(9),
		Int(2), Int(0),
	})
	require.Equal(t, []int{2, 3, 1}, mustInts(t, conf, GradeUp(conf, a)))
}

func TestGradeMixed(t *testing.T) {
	conf := testConf()
	// Chars order below numbers.
	a := NewVector(Int(1), Char('z'), Float(0.5))
	require.Equal(t, []int{2, 3, 1}, mustInts(t, conf, GradeUp(conf, a)))
}

func TestGradeTolerance(t *testing.T) {
	conf := testConf()
	conf.SetTolerance(1e-6)
	// Within tolerance the values tie, so original order holds.
	a := NewVector(Float(1.0000001), Float(1))
	require.Equal(t, []int{1, 2}, mustInts(t, conf, GradeUp(conf, a)))
}

func TestGradeKey(t *testing.T) {
	conf := testConf()
	key := NewCharVector("abc")
	require.Equal(t, []int{2, 3, 1},
		mustInts(t, conf, GradeUpKey(conf, key, NewCharVector("cab"))))
	require.Equal(t, []int{1, 3, 2},
		mustInts(t, conf, GradeDownKey(conf, key, NewCharVector("cab"))))

	// Elements absent from the key order last.
	require.Equal(t, []int{2, 1},
		mustInts(t, conf, GradeUpKey(conf, key, NewCharVector("xa"))))
}

func TestGradeErrors(t *testing.T) {
	conf := testConf()
	kind := evalKind(t, func() Array { return GradeUp(conf, NewScalar(Int(1))) })
	require.Equal(t, RankError, kind)
	kind = evalKind(t, func() Array {
		return GradeUpKey(conf, NewScalar(Char('a')), NewCharVector("ab"))
	})
	require.Equal(t, RankError, kind)
}
