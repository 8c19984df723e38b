// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"bytes"

	"github.com/garandria/april/config"
)

// Sprint formats the array for display: vectors space-separated,
// rank-2 arrays as aligned columns, higher ranks as blank-line
// separated planes. All-character arrays print verbatim, without
// padding or quotes. Nested elements print parenthesized.
func (c *Concrete) Sprint(conf *config.Config) string {
	switch len(c.shape) {
	case 0:
		return sprintElem(conf, c.data[0])
	case 1:
		return sprintVector(conf, c.data)
	}
	nrows := c.shape[0]
	ncols := c.shape[len(c.shape)-1]
	if nrows == 0 || ncols == 0 || len(c.data) == 0 {
		return ""
	}
	var b bytes.Buffer
	if allChars(c.data) {
		writeChars(&b, c.shape, c.data)
		return b.String()
	}
	// Print every element, compute the global width, and lay the
	// planes out so the columns line up.
	strs := make([]string, len(c.data))
	wid := 1
	for i, v := range c.data {
		strs[i] = sprintElem(conf, v)
		if wid < len(strs[i]) {
			wid = len(strs[i])
		}
	}
	writeDims(&b, strs, wid, c.shape)
	return b.String()
}

// sprintElem formats one element; nested arrays are parenthesized.
func sprintElem(conf *config.Config, v Value) string {
	if a, ok := v.(*Concrete); ok {
		return "(" + a.Sprint(conf) + ")"
	}
	return v.Sprint(conf)
}

func sprintVector(conf *config.Config, data []Value) string {
	if allChars(data) {
		var b bytes.Buffer
		for _, v := range data {
			b.WriteRune(rune(v.(Char)))
		}
		return b.String()
	}
	var b bytes.Buffer
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sprintElem(conf, v))
	}
	return b.String()
}

func allChars(data []Value) bool {
	if len(data) == 0 {
		return false
	}
	for _, v := range data {
		if _, ok := v.(Char); !ok {
			return false
		}
	}
	return true
}

// write2d prints one rank-2 plane into the buffer, right-aligning
// each cell to width wid.
func write2d(b *bytes.Buffer, strs []string, wid, nrows, ncols int) {
	index := 0
	for row := 0; row < nrows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < ncols; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			s := strs[index]
			for pad := wid - len(s); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(s)
			index++
		}
	}
}

// writeDims prints the planes of a rank >= 2 array recursively,
// separating successive planes with blank lines.
func writeDims(b *bytes.Buffer, strs []string, wid int, shape []int) {
	if len(shape) == 2 {
		write2d(b, strs, wid, shape[0], shape[1])
		return
	}
	sub := size(shape[1:])
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			b.WriteString("\n\n")
		}
		writeDims(b, strs[i*sub:(i+1)*sub], wid, shape[1:])
	}
}

// writeChars prints an all-character array without padding: each
// trailing-axis row on its own line, planes blank-line separated.
func writeChars(b *bytes.Buffer, shape []int, data []Value) {
	if len(shape) == 1 {
		for _, v := range data {
			b.WriteRune(rune(v.(Char)))
		}
		return
	}
	sub := size(shape[1:])
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			if len(shape) > 2 {
				b.WriteString("\n\n")
			} else {
				b.WriteByte('\n')
			}
		}
		writeChars(b, shape[1:], data[i*sub:(i+1)*sub])
	}
}
