// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"fmt"
	"math"
	"strconv"

	"github.com/garandria/april/config"
)

// A Value is one array element: an Int, a Float, a Char, or a nested
// *Concrete for enclosed arrays.
type Value interface {
	String() string
	Sprint(conf *config.Config) string
}

// Int is a machine integer element.
type Int int

func (i Int) String() string {
	return strconv.Itoa(int(i))
}

func (i Int) Sprint(conf *config.Config) string {
	return i.String()
}

// Float is a floating-point element. Whole-valued Floats are demoted
// to Int during rendering.
type Float float64

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f Float) Sprint(conf *config.Config) string {
	if conf != nil && conf.Format() != "%v" {
		return fmt.Sprintf(conf.Format(), float64(f))
	}
	return f.String()
}

// Char is a character element, compared by code point.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

func (c Char) Sprint(conf *config.Config) string {
	return c.String()
}

// asFloat returns the numeric value of v, or reports failure for
// non-numbers.
func asFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Int:
		return float64(v), true
	case Float:
		return float64(v), true
	}
	return 0, false
}

// intValue returns v as an int, raising a domain error if v is not an
// integral number. what names the operand in the error message.
func intValue(v Value, what string) int {
	switch v := v.(type) {
	case Int:
		return int(v)
	case Float:
		if v != Float(math.Trunc(float64(v))) {
			errorf(DomainError, "%s %s is not an integer", what, v)
		}
		return int(v)
	}
	errorf(DomainError, "%s %s is not a number", what, v)
	return 0
}

// demote canonicalizes a value after computation: a Float holding an
// exact integer becomes an Int.
func demote(v Value) Value {
	if f, ok := v.(Float); ok {
		if float64(f) == math.Trunc(float64(f)) && math.Abs(float64(f)) < 1e15 {
			return Int(f)
		}
	}
	return v
}

// valueEqual reports equality of two elements under the comparison
// tolerance: numbers numerically, chars by code point, nested arrays
// by recursive structural equality including shape agreement.
func valueEqual(u, v Value, tolerance float64) bool {
	if uf, ok := asFloat(u); ok {
		vf, ok := asFloat(v)
		return ok && floatEqual(uf, vf, tolerance)
	}
	switch u := u.(type) {
	case Char:
		v, ok := v.(Char)
		return ok && u == v
	case *Concrete:
		v, ok := v.(*Concrete)
		if !ok || !sameShape(u.shape, v.shape) {
			return false
		}
		for i, x := range u.data {
			if !valueEqual(x, v.data[i], tolerance) {
				return false
			}
		}
		return true
	}
	return false
}

// floatEqual compares two floats under a relative tolerance.
// Tolerance zero means exact comparison.
func floatEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	if tolerance == 0 {
		return false
	}
	return math.Abs(a-b) <= tolerance*math.Max(math.Abs(a), math.Abs(b))
}

// valueCompare is a total order over elements, used by grade and the
// set operations. Chars order below numbers; nested arrays order
// above scalars, first by element count, then lexically. Equal
// numbers of different representations (1 and 1.0) compare equal.
func valueCompare(u, v Value, tolerance float64) int {
	uf, uNum := asFloat(u)
	vf, vNum := asFloat(v)
	if uNum && vNum {
		if floatEqual(uf, vf, tolerance) {
			return 0
		}
		if uf < vf {
			return -1
		}
		return 1
	}
	ur, uChar := u.(Char)
	vr, vChar := v.(Char)
	if uChar && vChar {
		return sgn2Int(int(ur), int(vr))
	}
	// Chars below everything else.
	if uChar {
		return -1
	}
	if vChar {
		return 1
	}
	ua, uArr := u.(*Concrete)
	va, vArr := v.(*Concrete)
	if uArr && vArr {
		if len(ua.data) != len(va.data) {
			return sgn2Int(len(ua.data), len(va.data))
		}
		for i, x := range ua.data {
			if s := valueCompare(x, va.data[i], tolerance); s != 0 {
				return s
			}
		}
		return 0
	}
	// Arrays above everything else.
	if uArr {
		return 1
	}
	if vArr {
		return -1
	}
	errorf(TypeError, "cannot compare %T and %T", u, v)
	return 0
}

// sgn2Int returns the signum of a-b.
func sgn2Int(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// prototypeValue returns the fill element standing in for v: zero for
// numbers, space for chars, and for a nested array the same-shaped
// array of prototypes.
func prototypeValue(v Value) Value {
	switch v := v.(type) {
	case Int, Float:
		return Int(0)
	case Char:
		return Char(' ')
	case *Concrete:
		data := make([]Value, len(v.data))
		for i, x := range v.data {
			data[i] = prototypeValue(x)
		}
		return newConcreteUnchecked(v.shape, data)
	}
	return Int(0)
}
