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

import "fmt"

// Span is a horizontal run of pixels X.Min()..X.Max() in row Y.
type Span struct {
	X Interval
	Y int
}

// X0 returns the first column of the span.
func (s Span) X0() int { return s.X.Min() }

// X1 returns the last column of the span.
func (s Span) X1() int { return s.X.Max() }

// Width returns the number of pixels in the span.
func (s Span) Width() int { return s.X.Len() }

// IsEmpty reports whether the span contains no pixels.
func (s Span) IsEmpty() bool { return s.X.IsEmpty() }

// Intersect returns the pixels contained in both s and other.
// Spans in different rows have an empty intersection.
func (s Span) Intersect(other Span) Span {
	if s.Y != other.Y {
		return Span{Y: s.Y}
	}
	return Span{X: s.X.Intersect(other.X), Y: s.Y}
}

// IntersectWith replaces s with the intersection of s and other.
func (s *Span) IntersectWith(other Span) {
	*s = s.Intersect(other)
}

// Contains reports whether the pixel (x, y) belongs to the span.
func (s Span) Contains(x, y int) bool {
	return s.Y == y && s.X.Contains(x)
}

// Overlaps reports whether s and other share at least one pixel.
func (s Span) Overlaps(other Span) bool {
	return s.Y == other.Y && s.X.Overlaps(other.X)
}

// Equal reports whether s and other have the same row and columns.
func (s Span) Equal(other Span) bool {
	return s.Y == other.Y && s.X.Equal(other.X)
}

func (s Span) String() string {
	if s.IsEmpty() {
		return "()"
	}
	return fmt.Sprintf("(x=%s, y=%d)", s.X, s.Y)
}
