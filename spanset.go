// seehuhn.de/go/spanops - run-length encoded pixel regions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package spanops implements sets of pixels stored as run-length encoded
// horizontal spans.
//
// A [SpanSet] stores, for every row, the maximal runs of pixels which belong
// to the set.  SpanSets can be combined using [SpanSet.Union] and
// [SpanSet.Intersect], and split into connected components using
// [SpanSet.Split].  [Extract] and [Insert] convert between SpanSets and
// pixel rasters, and a [Rasteriser] converts vector paths into SpanSets.
//
// All coordinates are integer pixel positions.  Intervals, spans, and boxes
// include both of their end points.
package spanops

import (
	"iter"
	"slices"
	"sort"
	"strings"
)

// SpanSet is an arbitrary set of pixels, represented as a list of
// horizontal spans.
//
// The spans are sorted by row, then by first and last column, and no two
// spans in the same row overlap or touch.  Every SpanSet produced by this
// package has this canonical form, so that two SpanSets represent the same
// pixels exactly when their span lists are equal.
//
// The zero value is the empty set.  SpanSet values never share storage, so
// they can be copied and passed around freely.
type SpanSet struct {
	spans []Span
}

// FromBox returns the set of pixels inside b, with one span per row.
func FromBox(b Box) SpanSet {
	if b.IsEmpty() {
		return SpanSet{}
	}
	spans := make([]Span, 0, b.Height())
	for y := b.Y0(); y <= b.Y1(); y++ {
		spans = append(spans, Span{X: b.X, Y: y})
	}
	return SpanSet{spans: spans}
}

// FromSpans returns the set of pixels covered by any of the given spans.
// The spans may be given in any order and may overlap.
func FromSpans(spans ...Span) SpanSet {
	sorted := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !s.IsEmpty() {
			sorted = append(sorted, s)
		}
	}
	slices.SortFunc(sorted, compareSpans)
	return SpanSet{spans: coalesce(sorted)}
}

// Area returns the number of pixels in the set.
func (s SpanSet) Area() int {
	a := 0
	for _, span := range s.spans {
		a += span.Width()
	}
	return a
}

// BBox returns the smallest box containing all pixels of the set.
func (s SpanSet) BBox() Box {
	var box Box
	for _, span := range s.spans {
		box.ExpandToSpan(span)
	}
	return box
}

// IsEmpty reports whether the set contains no pixels.
func (s SpanSet) IsEmpty() bool { return len(s.spans) == 0 }

// Len returns the number of spans in the set.
func (s SpanSet) Len() int { return len(s.spans) }

// Spans returns a copy of the spans, in canonical order.
func (s SpanSet) Spans() []Span { return slices.Clone(s.spans) }

// All iterates over the spans in canonical order.
func (s SpanSet) All() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for _, span := range s.spans {
			if !yield(span) {
				return
			}
		}
	}
}

// Contains reports whether the pixel (x, y) belongs to the set.
func (s SpanSet) Contains(x, y int) bool {
	i := sort.Search(len(s.spans), func(i int) bool {
		span := s.spans[i]
		return span.Y > y || span.Y == y && span.X1() >= x
	})
	return i < len(s.spans) && s.spans[i].Contains(x, y)
}

// Equal reports whether s and other contain the same pixels.
func (s SpanSet) Equal(other SpanSet) bool {
	return slices.EqualFunc(s.spans, other.spans, Span.Equal)
}

func (s SpanSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, span := range s.spans {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(span.String())
	}
	b.WriteByte('}')
	return b.String()
}
