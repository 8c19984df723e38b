// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"math"

	"github.com/garandria/april/config"
)

// Mixed-radix positional conversion. The radix argument gives the
// place values: digit i weighs the product of the radices after it,
// so decode is a Horner evaluation and encode extracts digits
// high-to-low by repeated floor/mod against a place-value table
// built once per call.

// Decode evaluates digits in the mixed-radix system radix. Scalars
// broadcast; vectors must agree in length.
func Decode(conf *config.Config, radix, digits Array) Array {
	r := numericVector(radix, "decode radix")
	d := numericVector(digits, "decode digits")
	r, d = broadcastPair(r, d, "decode")
	acc := 0.0
	for i := range d {
		acc = acc*r[i] + d[i]
	}
	return NewScalar(demote(Float(acc)))
}

// Encode represents each value of values in the mixed-radix system
// radix, one digit vector per value: a vector result for a scalar
// value, a matrix with one column per value otherwise. A zero radix
// position passes the remaining quotient through unreduced; negative
// radices are a domain error.
func Encode(conf *config.Config, radix, values Array) Array {
	r := numericVector(radix, "encode radix")
	for _, x := range r {
		if x < 0 {
			errorf(DomainError, "negative radix %v", x)
		}
	}
	v := render(values)
	if len(v.shape) > 1 {
		errorf(RankError, "encode of rank %d", len(v.shape))
	}
	n := len(r)
	cols := len(v.data)
	out := make([]Value, n*cols)
	for col, val := range v.data {
		x, ok := asFloat(val)
		if !ok {
			errorf(DomainError, "encode of non-number %s", val)
		}
		for i := n - 1; i >= 0; i-- {
			var digit float64
			if r[i] == 0 {
				digit, x = x, 0
			} else {
				digit = math.Mod(x, r[i])
				if digit < 0 {
					digit += r[i]
				}
				x = (x - digit) / r[i]
			}
			out[i*cols+col] = demote(Float(digit))
		}
	}
	if len(v.shape) == 0 {
		return NewConcrete([]int{n}, out)
	}
	return NewConcrete([]int{n, cols}, out)
}

// numericVector renders a as a float vector, accepting scalars as
// one-element vectors.
func numericVector(a Array, what string) []float64 {
	c := render(a)
	if len(c.shape) > 1 {
		errorf(RankError, "%s of rank %d", what, len(c.shape))
	}
	out := make([]float64, len(c.data))
	for i, v := range c.data {
		x, ok := asFloat(v)
		if !ok {
			errorf(DomainError, "%s %s is not a number", what, v)
		}
		out[i] = x
	}
	return out
}

// broadcastPair extends a one-element operand to the other's length.
func broadcastPair(a, b []float64, what string) ([]float64, []float64) {
	stretch := func(x float64, n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = x
		}
		return out
	}
	switch {
	case len(a) == len(b):
		return a, b
	case len(a) == 1:
		return stretch(a[0], len(b)), b
	case len(b) == 1:
		return a, stretch(b[0], len(a))
	}
	errorf(LengthError, "%s lengths %d and %d mismatch", what, len(a), len(b))
	return nil, nil
}
