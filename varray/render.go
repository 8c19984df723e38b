// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"fmt"
	"strings"

	"github.com/garandria/april/config"
)

// Render materializes a into a concrete nested array, forcing the
// whole DAG below it. Enclosed virtual arrays encountered on the way
// are subrendered: forced recursively and installed as single boxed
// elements. The result per node is memoized, so rendering a shared
// operand twice does the work once.
func Render(conf *config.Config, a Array) (c *Concrete, err error) {
	defer catch(&err)
	if conf != nil && conf.Debug("trace") {
		fmt.Fprintf(conf.ErrOutput(), "render %s\n", Describe(a))
	}
	return render(a), nil
}

// MustRender is Render for operands known to be well-formed; it lets
// a raised *Error propagate as a panic.
func MustRender(a Array) *Concrete {
	return render(a)
}

// Eval runs an operation constructor, converting a raised *Error into
// an error return. The surrounding compiler wraps each primitive
// application with it.
func Eval(f func() Array) (a Array, err error) {
	defer catch(&err)
	return f(), nil
}

func render(a Array) *Concrete {
	if c, ok := a.(*Concrete); ok {
		return canonical(c)
	}
	var rc *cell[*Concrete]
	if r, ok := a.(renderCacher); ok {
		rc = r.renderCache()
		if rc.done {
			return rc.v
		}
	}
	shape := append([]int(nil), a.Shape()...)
	data := make([]Value, size(shape))
	if len(data) > 0 {
		gen := a.Generator()
		for i := range data {
			data[i] = demote(resolveValue(gen(i)))
		}
	}
	c := newConcreteUnchecked(shape, data)
	if rc != nil {
		rc.v, rc.done = c, true
	}
	return c
}

// canonical returns c with every whole-valued Float demoted to an
// Int, so caller-supplied concretes render under the same element
// canonicalization as generated ones. When nothing needs demoting, c
// itself is returned and stays shared.
func canonical(c *Concrete) *Concrete {
	for i, v := range c.data {
		if demote(v) == v {
			continue
		}
		data := make([]Value, len(c.data))
		copy(data, c.data[:i])
		for k := i; k < len(c.data); k++ {
			data[k] = demote(c.data[k])
		}
		return newConcreteUnchecked(c.shape, data)
	}
	return c
}

// subrender forces an enclosed array into a single boxed element.
func subrender(a Array) Value {
	return render(a)
}

// Describe returns a one-line account of the renumbering chain rooted
// at a, for the "trace" debugging flag.
func Describe(a Array) string {
	var b strings.Builder
	for {
		fmt.Fprintf(&b, "%T%v", a, a.Shape())
		r, ok := a.(renumberer)
		if !ok {
			return b.String()
		}
		b.WriteString(" <- ")
		a = r.base()
	}
}
