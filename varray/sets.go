// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"sort"

	"github.com/garandria/april/config"
)

// Operations on "sets", which are really just vectors that can
// contain duplicates rather than sets in the mathematical sense.
// APL's like that. All of them are vector-only: a higher-rank
// operand is a rank error. Equality is valueEqual: chars by code
// point, numbers within the comparison tolerance, nested arrays by
// recursive structural equality.

// Member reports, per element of x, whether it occurs in y. The
// result has x's shape.
func Member(conf *config.Config, x, y Array) Array {
	yv := setVector(y, "membership")
	xc := setOperand(x, "membership")
	tolerance := conf.Tolerance()
	data := make([]Value, len(xc.data))
	for i, v := range xc.data {
		data[i] = Int(0)
		for _, w := range yv {
			if valueEqual(v, w, tolerance) {
				data[i] = Int(1)
				break
			}
		}
	}
	return newConcreteUnchecked(xc.shape, data)
}

// IndexIn returns, per element of x, the origin-based index of its
// first occurrence in the vector y; elements absent from y index one
// past its end.
func IndexIn(conf *config.Config, y, x Array) Array {
	yv := setVector(y, "index-of")
	xc := setOperand(x, "index-of")
	tolerance := conf.Tolerance()
	origin := conf.Origin()
	data := make([]Value, len(xc.data))
	for i, v := range xc.data {
		idx := len(yv)
		for k, w := range yv {
			if valueEqual(v, w, tolerance) {
				idx = k
				break
			}
		}
		data[i] = Int(origin + idx)
	}
	return newConcreteUnchecked(xc.shape, data)
}

// Find marks with 1, per position of the vector in, the starts of
// occurrences of the vector pattern.
func Find(conf *config.Config, pattern, in Array) Array {
	pv := setVector(pattern, "find")
	iv := setVector(in, "find")
	tolerance := conf.Tolerance()
	data := make([]Value, len(iv))
	for i := range data {
		data[i] = Int(0)
		if i+len(pv) > len(iv) {
			continue
		}
		match := true
		for k, w := range pv {
			if !valueEqual(iv[i+k], w, tolerance) {
				match = false
				break
			}
		}
		if match {
			data[i] = Int(1)
		}
	}
	return NewVector(data...)
}

// Intersect returns the elements of u that occur in v, in u's order,
// duplicates retained.
func Intersect(conf *config.Config, u, v Array) Array {
	uv := setVector(u, "intersect")
	vv := setVector(v, "intersect")
	tolerance := conf.Tolerance()
	var out []Value
	for _, x := range uv {
		for _, w := range vv {
			if valueEqual(x, w, tolerance) {
				out = append(out, x)
				break
			}
		}
	}
	return NewVector(out...)
}

// Union returns u followed by the elements of v not already in u.
func Union(conf *config.Config, u, v Array) Array {
	uv := setVector(u, "union")
	vv := setVector(v, "union")
	tolerance := conf.Tolerance()
	out := append([]Value(nil), uv...)
	for _, w := range vv {
		present := false
		for _, x := range uv {
			if valueEqual(x, w, tolerance) {
				present = true
				break
			}
		}
		if !present {
			out = append(out, w)
		}
	}
	return NewVector(out...)
}

// Unique removes duplicates from v, keeping the first occurrence of
// each element in the original order.
func Unique(conf *config.Config, v Array) Array {
	vv := setVector(v, "unique")
	if len(vv) == 0 {
		return NewVector()
	}
	tolerance := conf.Tolerance()
	// Sort and dedup would lose the original order, which must be
	// preserved, so sort indexed copies and re-sort the survivors
	// by index.
	type indexedValue struct {
		i int
		v Value
	}
	sorted := make([]indexedValue, len(vv))
	for i, x := range vv {
		sorted[i] = indexedValue{i, x}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return valueCompare(sorted[i].v, sorted[j].v, tolerance) < 0
	})
	prev := sorted[0]
	uniqued := []indexedValue{prev}
	for _, x := range sorted[1:] {
		if valueCompare(prev.v, x.v, tolerance) != 0 {
			uniqued = append(uniqued, x)
			prev = x
		}
	}
	sort.Slice(uniqued, func(i, j int) bool {
		return uniqued[i].i < uniqued[j].i
	})
	out := make([]Value, len(uniqued))
	for i, x := range uniqued {
		out[i] = x.v
	}
	return NewVector(out...)
}

// Where returns the positions holding nonzero counts: for a vector,
// the origin-based index of each position repeated count times; for
// higher rank, boxed coordinate vectors.
func Where(conf *config.Config, a Array) Array {
	c := render(a)
	if len(c.shape) == 0 {
		errorf(RankError, "where of scalar")
	}
	origin := conf.Origin()
	var out []Value
	coord := make([]int, len(c.shape))
	for i, v := range c.data {
		k := intValue(v, "where count")
		if k < 0 {
			errorf(DomainError, "negative count %d in where", k)
		}
		for ; k > 0; k-- {
			if len(c.shape) == 1 {
				out = append(out, Int(origin+i))
			} else {
				CoordOf(i, c.shape, coord)
				cv := make([]int, len(coord))
				for axis, x := range coord {
					cv[axis] = x + origin
				}
				out = append(out, NewIntVector(cv...))
			}
		}
	}
	return NewVector(out...)
}

// InverseWhere rebuilds the count array Where flattened: given a
// vector of indexes (or of boxed coordinate vectors), it returns the
// array, shaped just large enough, whose cells count their
// occurrences. It is the formal inverse of Where.
func InverseWhere(conf *config.Config, a Array) Array {
	positions := setVector(a, "inverse-where")
	origin := conf.Origin()
	if len(positions) == 0 {
		return NewVector()
	}
	if _, ok := positions[0].(*Concrete); !ok {
		// Vector of plain indexes.
		n := 0
		idx := make([]int, len(positions))
		for i, v := range positions {
			x := intValue(v, "inverse-where index") - origin
			if x < 0 {
				errorf(IndexError, "index %s below the origin", v)
			}
			idx[i] = x
			if x+1 > n {
				n = x + 1
			}
		}
		data := make([]Value, n)
		for i := range data {
			data[i] = Int(0)
		}
		for _, x := range idx {
			data[x] = data[x].(Int) + 1
		}
		return NewVector(data...)
	}
	// Vector of boxed coordinate vectors.
	var shape []int
	coords := make([][]int, len(positions))
	for i, v := range positions {
		cv, ok := v.(*Concrete)
		if !ok || len(cv.shape) != 1 {
			errorf(TypeError, "inverse-where element %s is not a coordinate vector", v)
		}
		if shape == nil {
			shape = make([]int, len(cv.data))
		} else if len(cv.data) != len(shape) {
			errorf(LengthError, "inverse-where coordinate ranks differ")
		}
		coord := make([]int, len(cv.data))
		for axis, x := range cv.data {
			y := intValue(x, "inverse-where coordinate") - origin
			if y < 0 {
				errorf(IndexError, "coordinate %s below the origin", x)
			}
			coord[axis] = y
			if y+1 > shape[axis] {
				shape[axis] = y + 1
			}
		}
		coords[i] = coord
	}
	data := make([]Value, size(shape))
	for i := range data {
		data[i] = Int(0)
	}
	for _, coord := range coords {
		k := LinearOf(coord, shape)
		data[k] = data[k].(Int) + 1
	}
	return NewConcrete(shape, data)
}

// setVector renders a set operand, requiring a vector; a scalar
// passes as a one-element vector.
func setVector(a Array, what string) []Value {
	c := setOperand(a, what)
	return c.data
}

// setOperand renders a set operand of rank at most 1.
func setOperand(a Array, what string) *Concrete {
	c := render(a)
	if len(c.shape) > 1 {
		errorf(RankError, "%s on rank %d; vectors only", what, len(c.shape))
	}
	return c
}
