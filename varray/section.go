// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

// A section is the node behind take and drop. Each axis is described
// by a half-open span into the base axis plus pad counts before and
// after it; cells landing in a pad resolve to the prototype
// (overtake), cells in the span resolve through the base. Rank is
// always preserved; drop can shrink an axis to zero but never
// removes it. A section built over another section merges the two
// descriptions at construction, so render time performs one bounds
// check instead of two.
type section struct {
	memo
	operand  Array
	spans    []axisSpan
	outShape []int
}

type axisSpan struct {
	start, end          int // half-open span into the base axis
	padBefore, padAfter int // prototype-filled cells around it
}

// Take returns counts[i] cells along each axis of a, padding with the
// prototype beyond the operand's extent. Negative counts select from
// the trailing end. Axes beyond len(counts) are kept whole. A scalar
// operand is first promoted to a unit array of matching rank.
func Take(counts []int, a Array) Array {
	a = promoteRank(a, len(counts))
	sh := a.Shape()
	if len(counts) > len(sh) {
		errorf(RankError, "take of %d axes from rank %d", len(counts), len(sh))
	}
	spans := make([]axisSpan, len(sh))
	for i, d := range sh {
		if i >= len(counts) {
			spans[i] = axisSpan{start: 0, end: d}
			continue
		}
		c := counts[i]
		if c >= 0 {
			k := min(c, d)
			spans[i] = axisSpan{start: 0, end: k, padAfter: c - k}
		} else {
			k := min(-c, d)
			spans[i] = axisSpan{start: d - k, end: d, padBefore: -c - k}
		}
	}
	return newSection(a, spans)
}

// Drop removes counts[i] cells along each axis of a, from the front
// for positive counts and from the back for negative ones. Dropping
// more than an axis holds leaves the axis empty.
func Drop(counts []int, a Array) Array {
	a = promoteRank(a, len(counts))
	sh := a.Shape()
	if len(counts) > len(sh) {
		errorf(RankError, "drop of %d axes from rank %d", len(counts), len(sh))
	}
	spans := make([]axisSpan, len(sh))
	for i, d := range sh {
		if i >= len(counts) {
			spans[i] = axisSpan{start: 0, end: d}
			continue
		}
		c := counts[i]
		if c >= 0 {
			spans[i] = axisSpan{start: min(c, d), end: d}
		} else {
			spans[i] = axisSpan{start: 0, end: max(0, d+c)}
		}
	}
	return newSection(a, spans)
}

// promoteRank reshapes a rank-0 operand to a unit array of rank n so
// take and drop of scalars behave as on one-element arrays.
func promoteRank(a Array, n int) Array {
	if Rank(a) > 0 || n == 0 {
		return a
	}
	ones := make([]int, n)
	for i := range ones {
		ones[i] = 1
	}
	return Reshape(ones, a)
}

// newSection builds a section, merging with an underlying section so
// successive take/drop on the same base fold into one span/pad pair.
func newSection(a Array, spans []axisSpan) Array {
	if s, ok := a.(*section); ok && len(s.spans) == len(spans) {
		merged := make([]axisSpan, len(spans))
		for i := range spans {
			merged[i] = mergeSpan(s.spans[i], spans[i])
		}
		a, spans = s.operand, merged
	}
	outShape := make([]int, len(spans))
	for i, sp := range spans {
		outShape[i] = sp.padBefore + (sp.end - sp.start) + sp.padAfter
	}
	return &section{operand: a, spans: spans, outShape: outShape}
}

// mergeSpan combines an outer section axis (whose coordinates range
// over the inner section's output axis) with the inner one, yielding
// a single description against the inner section's base.
func mergeSpan(inner, outer axisSpan) axisSpan {
	innerLen := inner.end - inner.start
	spanStart := inner.padBefore
	spanEnd := spanStart + innerLen
	innerExtent := spanEnd + inner.padAfter
	return axisSpan{
		start:     inner.start + clamp(outer.start-spanStart, 0, innerLen),
		end:       inner.start + clamp(outer.end-spanStart, 0, innerLen),
		padBefore: outer.padBefore + overlap(outer.start, outer.end, 0, spanStart),
		padAfter:  outer.padAfter + overlap(outer.start, outer.end, spanEnd, innerExtent),
	}
}

func clamp(x, lo, hi int) int {
	return min(max(x, lo), hi)
}

// overlap returns the length of the intersection of [a1,a2) and [b1,b2).
func overlap(a1, a2, b1, b2 int) int {
	return max(0, min(a2, b2)-max(a1, b1))
}

func (s *section) Shape() []int {
	return s.outShape
}

func (s *section) Etype() Etype {
	return s.memo.etype.force(func() Etype {
		t := s.operand.Etype()
		for _, sp := range s.spans {
			if sp.padBefore > 0 || sp.padAfter > 0 {
				return joinEtype(t, etypeOf(s.Prototype()))
			}
		}
		return t
	})
}

func (s *section) Prototype() Value {
	return s.operand.Prototype()
}

func (s *section) Generator() Generator {
	return s.memo.gen.force(func() Generator { return composedGenerator(s) })
}

func (s *section) base() Array {
	return s.operand
}

func (s *section) step() step {
	spans := s.spans
	return step{
		enc:      encDecoded,
		outShape: s.outShape,
		inShape:  s.operand.Shape(),
		dec: func(out, in []int) bool {
			for axis, sp := range spans {
				x := out[axis] - sp.padBefore
				if x < 0 || x >= sp.end-sp.start {
					return false
				}
				in[axis] = sp.start + x
			}
			return true
		},
	}
}
