// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package varray implements the array engine of the April compiler:
// virtual arrays that describe transformations (reshape, section,
// permute, catenate, rotate, nesting, selection, ordering, encoding,
// random generation, set operations) without computing their
// elements. Operations build a directed acyclic graph of virtual
// arrays; Render forces the outermost node into a concrete nested
// array. Shape, element type, and prototype queries walk the graph on
// demand and memoize their results.
//
// The engine is single-threaded and synchronous. Errors are raised by
// panicking with *Error and recovered into ordinary error returns at
// the public entry points.
package varray

import "github.com/garandria/april/config"

// A Generator maps a row-major linear index to an element value.
type Generator func(i int) Value

// An Array is a virtual array: a lazily-specified multidimensional
// container. Shape, Etype, Prototype and Generator are each computed
// at most once per node and memoized. A rank-0 array has an empty
// shape, not shape [1], and holds exactly one element.
type Array interface {
	// Shape returns the dimension vector. The result is shared and
	// must not be modified.
	Shape() []int
	// Etype returns the most specific known element type.
	Etype() Etype
	// Prototype returns the fill element used for cells beyond the
	// operand data (overtake padding, empty-array fills).
	Prototype() Value
	// Generator returns the element generator. The same Generator
	// value is returned on every call, so per-cell caches (random)
	// are stable within and across renders.
	Generator() Generator
}

// constValuer is a capability of arrays whose every element is one
// known value. Callers branch on it to skip per-cell generator calls
// for degenerate cases.
type constValuer interface {
	constValue() Value
}

// Rank returns the number of axes of a.
func Rank(a Array) int {
	return len(a.Shape())
}

// SizeOf returns the element count of a: the product of its shape,
// 1 for rank 0.
func SizeOf(a Array) int {
	return size(a.Shape())
}

// cell is a memoized lazy field: computed on first force, stable
// thereafter. A panic during computation leaves the cell unset.
type cell[T any] struct {
	done bool
	v    T
}

func (c *cell[T]) force(f func() T) T {
	if !c.done {
		c.v = f()
		c.done = true
	}
	return c.v
}

// memo carries the promise cells shared by every virtual-array node.
// Nodes embed it and route their protocol methods through force.
type memo struct {
	shape    cell[[]int]
	etype    cell[Etype]
	proto    cell[Value]
	gen      cell[Generator]
	rendered cell[*Concrete]
}

// renderCache exposes the render memo to the render pass.
func (m *memo) renderCache() *cell[*Concrete] { return &m.rendered }

type renderCacher interface {
	renderCache() *cell[*Concrete]
}

// deferred wraps a virtual array appearing as a single element of
// another array (an enclosed value). Render resolves it recursively
// in subrendering mode: the result becomes one boxed element rather
// than being spliced into the parent's element stream.
type deferred struct {
	a Array
}

func (d deferred) String() string {
	return d.Sprint(nil)
}

func (d deferred) Sprint(conf *config.Config) string {
	return resolveValue(d).Sprint(conf)
}

// resolveValue forces a deferred element; other values pass through.
func resolveValue(v Value) Value {
	if d, ok := v.(deferred); ok {
		return subrender(d.a)
	}
	return v
}

// protoOf derives a prototype the default way: from the operand's
// first element when there is one, else from the element type.
func protoOf(a Array) Value {
	if SizeOf(a) > 0 {
		return prototypeValue(resolveValue(a.Generator()(0)))
	}
	return protoForEtype(a.Etype())
}
