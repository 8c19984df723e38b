// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"sort"

	"github.com/garandria/april/config"
)

// GradeUp returns the origin-based permutation that sorts the major
// cells of a into ascending order. The sort is stable: cells that
// compare equal keep their original row-major order.
func GradeUp(conf *config.Config, a Array) Array {
	return grade(conf, nil, a, false)
}

// GradeDown is GradeUp with the comparator inverted. Only the
// direction flips; ties still keep original order, which reversing a
// GradeUp result would not preserve.
func GradeDown(conf *config.Config, a Array) Array {
	return grade(conf, nil, a, true)
}

// GradeUpKey grades a by the collation key: each element orders by
// the position of its first occurrence in key, elements absent from
// key ordering last.
func GradeUpKey(conf *config.Config, key, a Array) Array {
	return grade(conf, key, a, false)
}

// GradeDownKey is GradeUpKey with the comparator inverted.
func GradeDownKey(conf *config.Config, key, a Array) Array {
	return grade(conf, key, a, true)
}

func grade(conf *config.Config, key, a Array, down bool) Array {
	c := render(a)
	if len(c.shape) == 0 {
		errorf(RankError, "grade of scalar")
	}
	tolerance := conf.Tolerance()
	n := c.shape[0]
	cellSize := 1
	if n > 0 {
		cellSize = len(c.data) / n
	}

	// With a collation key, compare element ranks instead of the
	// elements themselves: an index-of pass over the key.
	data := c.data
	if key != nil {
		kv := render(key)
		if len(kv.shape) != 1 {
			errorf(RankError, "grade key of rank %d", len(kv.shape))
		}
		data = make([]Value, len(c.data))
		for i, v := range c.data {
			r := len(kv.data)
			for k, kvv := range kv.data {
				if valueEqual(v, kvv, tolerance) {
					r = k
					break
				}
			}
			data[i] = Int(r)
		}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		pi, pj := perm[i]*cellSize, perm[j]*cellSize
		for k := 0; k < cellSize; k++ {
			s := valueCompare(data[pi+k], data[pj+k], tolerance)
			if s != 0 {
				if down {
					return s > 0
				}
				return s < 0
			}
		}
		return false
	})

	origin := conf.Origin()
	out := make([]Value, n)
	for i, p := range perm {
		out[i] = Int(p + origin)
	}
	return NewVector(out...)
}
