// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package april provides a lazy array-processing engine in the style of
APL. Arrays are virtual: structural operations such as reshape, take,
rotate, transpose, catenation, and indexing build a graph of cheap
index-remapping nodes rather than copying data, and composing nodes
fold their index arithmetic together so a chain of transforms costs a
single arithmetic pass per element when the result is finally needed.
Rendering forces a virtual array into a concrete row-major one.

The engine lives in the varray package; the config package carries
the evaluation settings (index origin, comparison tolerance, random
seed, debug flags) that the array operations consult.

A sketch of the shape of the thing:

	var conf config.Config
	a := varray.Reshape([]int{3, 4}, varray.Interval(&conf, 12))
	b := varray.Rotate(&conf, 2, varray.NewScalar(varray.Int(1)), a)
	c, err := varray.Render(&conf, b)

Nothing is computed until Render; a and b are descriptions, not data.
*/
package april
