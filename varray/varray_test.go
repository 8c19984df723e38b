// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"bytes"
	"strings"
	"testing"

	"github.com/garandria/april/config"
	"github.com/stretchr/testify/require"
)

func testConf() *config.Config {
	return &config.Config{}
}

func originConf(origin int) *config.Config {
	c := &config.Config{}
	c.SetOrigin(origin)
	return c
}

// mustInts renders a and returns its elements as machine ints.
func mustInts(t *testing.T, conf *config.Config, a Array) []int {
	t.Helper()
	c, err := Render(conf, a)
	require.NoError(t, err)
	out := make([]int, len(c.Data()))
	for i, v := range c.Data() {
		n, ok := v.(Int)
		require.True(t, ok, "element %d is %T, want Int", i, v)
		out[i] = int(n)
	}
	return out
}

// mustShape renders a and returns the result's shape.
func mustShape(t *testing.T, conf *config.Config, a Array) []int {
	t.Helper()
	c, err := Render(conf, a)
	require.NoError(t, err)
	return c.Shape()
}

// evalKind runs a constructor expected to fail and returns the error
// class it raised.
func evalKind(t *testing.T, f func() Array) ErrorKind {
	t.Helper()
	_, err := Eval(f)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	return e.Kind
}

func TestRankAndSize(t *testing.T) {
	require.Equal(t, 0, Rank(NewScalar(Int(7))))
	require.Equal(t, 1, SizeOf(NewScalar(Int(7))))
	require.Equal(t, 2, Rank(NewConcrete([]int{2, 3}, make([]Value, 6))))
	require.Equal(t, 6, SizeOf(NewConcrete([]int{2, 3}, make([]Value, 6))))
	require.Equal(t, 0, SizeOf(NewVector()))
}

func TestRenderMemoized(t *testing.T) {
	conf := testConf()
	n := Reshape([]int{2, 3}, Interval(conf, 6))
	c1 := MustRender(n)
	c2 := MustRender(n)
	require.Same(t, c1, c2)

	// A concrete array renders to itself.
	c := NewIntVector(1, 2, 3)
	require.Same(t, c, MustRender(c))
}

func TestRenderSubrenders(t *testing.T) {
	conf := testConf()
	c, err := Render(conf, Enclose(conf, Interval(conf, 3)))
	require.NoError(t, err)
	require.Empty(t, c.Shape())
	inner, ok := c.Data()[0].(*Concrete)
	require.True(t, ok, "enclosed element is %T", c.Data()[0])
	require.Equal(t, []int{1, 2, 3}, mustInts(t, conf, inner))
}

func TestRenderDemotes(t *testing.T) {
	conf := testConf()
	v := NewVector(Float(2.0), Float(2.5))
	c, err := Render(conf, v)
	require.NoError(t, err)
	require.Equal(t, Int(2), c.Data()[0])
	require.Equal(t, Float(2.5), c.Data()[1])

	// Demotion copies; the operand keeps its own elements.
	require.NotSame(t, v, c)
	require.Equal(t, Float(2.0), v.Data()[0])

	// An already-canonical concrete renders as itself.
	w := NewVector(Int(2), Float(2.5))
	require.Same(t, w, MustRender(w))
}

func TestEvalCatchesErrors(t *testing.T) {
	conf := testConf()
	a, err := Eval(func() Array { return Interval(conf, -1) })
	require.Nil(t, a)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, DomainError, e.Kind)
	require.Contains(t, err.Error(), "domain error")
}

func TestEvalPassesThrough(t *testing.T) {
	conf := testConf()
	a, err := Eval(func() Array { return Interval(conf, 3) })
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, mustInts(t, conf, a))
}

func TestRenderTrace(t *testing.T) {
	conf := testConf()
	conf.SetDebug("trace", true)
	var buf bytes.Buffer
	conf.SetErrOutput(&buf)
	_, err := Render(conf, Take([]int{2}, Interval(conf, 5)))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "render ")
	require.Contains(t, buf.String(), " <- ")
}

func TestDescribe(t *testing.T) {
	conf := testConf()
	d := Describe(Take([]int{2}, Drop([]int{1}, Interval(conf, 5))))
	require.Contains(t, d, " <- ")
	// Successive take/drop merge into a single section node.
	require.Equal(t, 1, strings.Count(d, "section"))
}
