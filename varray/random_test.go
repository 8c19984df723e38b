// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRollRange(t *testing.T) {
	conf := testConf()
	conf.SetRandomSeed(1)
	got := mustInts(t, conf, Roll(conf, Fill([]int{100}, Int(6))))
	for _, x := range got {
		require.GreaterOrEqual(t, x, 1)
		require.LessOrEqual(t, x, 6)
	}
}

func TestRollOriginZero(t *testing.T) {
	conf := originConf(0)
	conf.SetRandomSeed(1)
	got := mustInts(t, conf, Roll(conf, Fill([]int{100}, Int(6))))
	for _, x := range got {
		require.GreaterOrEqual(t, x, 0)
		require.LessOrEqual(t, x, 5)
	}
}

func TestRollSeeded(t *testing.T) {
	c1 := testConf()
	c1.SetRandomSeed(42)
	c2 := testConf()
	c2.SetRandomSeed(42)
	a := mustInts(t, c1, Roll(c1, Fill([]int{20}, Int(1000))))
	b := mustInts(t, c2, Roll(c2, Fill([]int{20}, Int(1000))))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed, different rolls (-a +b):\n%s", diff)
	}
}

func TestRollCellsAreStable(t *testing.T) {
	conf := testConf()
	conf.SetRandomSeed(7)
	r := Roll(conf, Fill([]int{10}, Int(1000000)))
	g := r.Generator()
	for i := 0; i < 10; i++ {
		require.Equal(t, g(i), g(i), "cell %d changed between reads", i)
	}
	// Rendering the same node again sees the same draws.
	require.Equal(t, mustInts(t, conf, r), mustInts(t, conf, r))
}

func TestRollZeroAndFloat(t *testing.T) {
	conf := testConf()
	conf.SetRandomSeed(3)
	c, err := Render(conf, Roll(conf, NewScalar(Int(0))))
	require.NoError(t, err)
	f, ok := asFloat(c.Data()[0])
	require.True(t, ok)
	require.Greater(t, f, 0.0)
	require.Less(t, f, 1.0)

	c, err = Render(conf, Roll(conf, NewScalar(Float(2.5))))
	require.NoError(t, err)
	f, ok = asFloat(c.Data()[0])
	require.True(t, ok)
	require.Greater(t, f, 0.0)
	require.Less(t, f, 2.5)
}

// zeroThenSource yields a zero word first, then a fixed nonzero one,
// so the first Float64 draw is exactly 0.
type zeroThenSource struct {
	calls int
}

func (s *zeroThenSource) Int63() int64 {
	s.calls++
	if s.calls == 1 {
		return 0
	}
	return 1 << 40
}

func (s *zeroThenSource) Seed(int64) {}

func TestRollFloatOpenInterval(t *testing.T) {
	conf := testConf()
	src := &zeroThenSource{}
	conf.SetRandomSource(src)
	c, err := Render(conf, Roll(conf, NewScalar(Int(0))))
	require.NoError(t, err)
	f, ok := asFloat(c.Data()[0])
	require.True(t, ok)
	// The zero draw is rejected and the source consulted again.
	require.Greater(t, f, 0.0)
	require.GreaterOrEqual(t, src.calls, 2)
}

func TestRollErrors(t *testing.T) {
	conf := testConf()
	conf.SetRandomSeed(1)
	_, err := Render(conf, Roll(conf, NewScalar(Int(-1))))
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, DomainError, e.Kind)

	_, err = Render(conf, Roll(conf, NewScalar(Char('a'))))
	require.ErrorAs(t, err, &e)
	require.Equal(t, TypeError, e.Kind)
}

func TestDeal(t *testing.T) {
	conf := testConf()
	conf.SetRandomSeed(42)
	got := mustInts(t, conf, Deal(conf, 5, 10))
	require.Len(t, got, 5)
	seen := make(map[int]bool)
	for _, x := range got {
		require.GreaterOrEqual(t, x, 1)
		require.LessOrEqual(t, x, 10)
		require.False(t, seen[x], "duplicate %d in deal", x)
		seen[x] = true
	}
}

func TestDealSeeded(t *testing.T) {
	c1 := testConf()
	c1.SetRandomSeed(42)
	c2 := testConf()
	c2.SetRandomSeed(42)
	require.Equal(t, mustInts(t, c1, Deal(c1, 5, 10)), mustInts(t, c2, Deal(c2, 5, 10)))
}

func TestDealWhole(t *testing.T) {
	conf := testConf()
	conf.SetRandomSeed(9)
	got := mustInts(t, conf, Deal(conf, 10, 10))
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)

	require.Empty(t, mustInts(t, conf, Deal(conf, 0, 0)))
}

func TestDealErrors(t *testing.T) {
	conf := testConf()
	kind := evalKind(t, func() Array { return Deal(conf, 5, 3) })
	require.Equal(t, DomainError, kind)
	kind = evalKind(t, func() Array { return Deal(conf, -1, 3) })
	require.Equal(t, DomainError, kind)
}
