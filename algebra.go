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

package spanops

import "cmp"

// compareSpans orders spans by row, then first column, then last column.
func compareSpans(a, b Span) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(a.X0(), b.X0()); c != 0 {
		return c
	}
	return cmp.Compare(a.X1(), b.X1())
}

// strictlyBefore reports whether all pixels of a come before all pixels of
// b in row-major order.
func strictlyBefore(a, b Span) bool {
	if a.Y == b.Y {
		return a.X1() < b.X0()
	}
	return a.Y < b.Y
}

// Union returns the pixels contained in s, in other, or in both.
func (s SpanSet) Union(other SpanSet) SpanSet {
	return SpanSet{spans: coalesce(mergeSpans(s.spans, other.spans))}
}

// UnionWith replaces s with the union of s and other.
func (s *SpanSet) UnionWith(other SpanSet) {
	*s = s.Union(other)
}

// Intersect returns the pixels contained in both s and other.
func (s SpanSet) Intersect(other SpanSet) SpanSet {
	a, b := s.spans, other.spans

	var out []Span
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case strictlyBefore(a[i], b[j]):
			i++
		case strictlyBefore(b[j], a[i]):
			j++
		default:
			out = append(out, a[i].Intersect(b[j]))

			// A wide span stays current until it has been intersected
			// with every narrower span it overlaps.
			aEnd, bEnd := a[i].X1(), b[j].X1()
			if aEnd <= bEnd {
				i++
			}
			if bEnd <= aEnd {
				j++
			}
		}
	}
	return SpanSet{spans: out}
}

// IntersectWith replaces s with the intersection of s and other.
func (s *SpanSet) IntersectWith(other SpanSet) {
	*s = s.Intersect(other)
}

// mergeSpans combines two sorted span lists into a new sorted list.
// For equal spans, the span from a comes first.
func mergeSpans(a, b []Span) []Span {
	out := make([]Span, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if compareSpans(b[j], a[i]) < 0 {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// coalesce joins overlapping and touching spans of the same row.
// The input must be sorted; the result reuses its storage.
func coalesce(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	out := spans[:1]
	for _, span := range spans[1:] {
		last := &out[len(out)-1]
		if span.Y == last.Y && span.X0() <= last.X1()+1 {
			if span.X1() > last.X1() {
				last.X = NewInterval(last.X0(), span.X1())
			}
			continue
		}
		out = append(out, span)
	}
	return out
}
