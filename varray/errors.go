// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import "fmt"

// ErrorKind classifies engine errors so callers can branch on the
// failure class rather than the message text.
type ErrorKind int

const (
	// RankError: operand ranks are incompatible, or an operation
	// restricted to vectors was given a higher-rank array.
	RankError ErrorKind = iota
	// LengthError: operand shapes disagree on an axis.
	LengthError
	// IndexError: an index or pick path is out of range.
	IndexError
	// DomainError: an argument value is outside the operation's
	// domain (negative radix, singular matrix, bad deal count).
	DomainError
	// TypeError: an element has the wrong type for the operation.
	TypeError
)

var kindNames = [...]string{
	RankError:   "rank error",
	LengthError: "length error",
	IndexError:  "index error",
	DomainError: "domain error",
	TypeError:   "type error",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "error"
	}
	return kindNames[k]
}

// Error is the error raised by all engine operations.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.msg
}

// errorf panics with an *Error. Entry points recover it into a
// returned error; see catch.
func errorf(kind ErrorKind, format string, args ...any) {
	panic(&Error{Kind: kind, msg: fmt.Sprintf(format, args...)})
}

// catch converts a panicking *Error into the pointed-to error return.
// Any other panic value is passed along.
func catch(err *error) {
	switch e := recover().(type) {
	case nil:
	case *Error:
		*err = e
	default:
		panic(e)
	}
}
