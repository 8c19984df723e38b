// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

// Etype describes the most specific element type an array is known to
// contain. It guides the choice of prototype and the demotion of
// numeric results; Mixed forces boxed storage.
type Etype int

const (
	EtypeEmpty Etype = iota
	EtypeBool        // 0 and 1 only
	EtypeIndex       // non-negative machine ints
	EtypeInt
	EtypeNumber
	EtypeChar
	EtypeBox // enclosed arrays
	EtypeMixed
)

var etypeNames = [...]string{
	EtypeEmpty:  "empty",
	EtypeBool:   "bool",
	EtypeIndex:  "index",
	EtypeInt:    "int",
	EtypeNumber: "number",
	EtypeChar:   "char",
	EtypeBox:    "box",
	EtypeMixed:  "mixed",
}

func (t Etype) String() string {
	if t < 0 || int(t) >= len(etypeNames) {
		return "invalid"
	}
	return etypeNames[t]
}

// numeric reports whether t is within the numeric tower.
func (t Etype) numeric() bool {
	return EtypeBool <= t && t <= EtypeNumber
}

// joinEtype returns the least type containing both a and b.
func joinEtype(a, b Etype) Etype {
	if a == EtypeEmpty {
		return b
	}
	if b == EtypeEmpty {
		return a
	}
	if a == b {
		return a
	}
	if a.numeric() && b.numeric() {
		return max(a, b)
	}
	return EtypeMixed
}

// etypeOf classifies a single element.
func etypeOf(v Value) Etype {
	switch v := v.(type) {
	case Int:
		switch {
		case v == 0 || v == 1:
			return EtypeBool
		case v > 0:
			return EtypeIndex
		}
		return EtypeInt
	case Float:
		return EtypeNumber
	case Char:
		return EtypeChar
	case *Concrete:
		return EtypeBox
	}
	return EtypeMixed
}

// protoForEtype is the default prototype for an element type, used
// when an empty array has no first element to derive one from.
func protoForEtype(t Etype) Value {
	if t == EtypeChar {
		return Char(' ')
	}
	return Int(0)
}
