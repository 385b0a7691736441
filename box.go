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

// Box is an axis-aligned rectangle of pixels.  The box is empty if
// either of its axes is empty.
type Box struct {
	X, Y Interval
}

// BoxOf returns the smallest box containing the span.
func BoxOf(s Span) Box {
	if s.IsEmpty() {
		return Box{}
	}
	return Box{X: s.X, Y: Point(s.Y)}
}

func (b Box) X0() int { return b.X.Min() }
func (b Box) X1() int { return b.X.Max() }
func (b Box) Y0() int { return b.Y.Min() }
func (b Box) Y1() int { return b.Y.Max() }

// IsEmpty reports whether the box contains no pixels.
func (b Box) IsEmpty() bool { return b.X.IsEmpty() || b.Y.IsEmpty() }

// Width returns the number of columns covered by the box.
func (b Box) Width() int { return b.X.Len() }

// Height returns the number of rows covered by the box.
func (b Box) Height() int { return b.Y.Len() }

// Area returns the number of pixels in the box.
func (b Box) Area() int {
	if b.IsEmpty() {
		return 0
	}
	return b.X.Len() * b.Y.Len()
}

// Intersect returns the pixels contained in both b and other.
func (b Box) Intersect(other Box) Box {
	return Box{X: b.X.Intersect(other.X), Y: b.Y.Intersect(other.Y)}
}

// IntersectWith replaces b with the intersection of b and other.
func (b *Box) IntersectWith(other Box) {
	b.X.IntersectWith(other.X)
	b.Y.IntersectWith(other.Y)
}

// ExpandTo grows the box, if needed, to include the pixel (x, y).
func (b *Box) ExpandTo(x, y int) {
	b.X.ExpandTo(x)
	b.Y.ExpandTo(y)
}

// ExpandedTo returns the smallest box containing b and the pixel (x, y).
func (b Box) ExpandedTo(x, y int) Box {
	b.ExpandTo(x, y)
	return b
}

// ExpandToSpan grows the box, if needed, to include the span.
func (b *Box) ExpandToSpan(s Span) {
	if s.IsEmpty() {
		return
	}
	b.X.ExpandToInterval(s.X)
	b.Y.ExpandTo(s.Y)
}

// ExpandedToSpan returns the smallest box containing b and s.
func (b Box) ExpandedToSpan(s Span) Box {
	b.ExpandToSpan(s)
	return b
}

// ExpandToBox grows the box, if needed, to include other.
func (b *Box) ExpandToBox(other Box) {
	if other.IsEmpty() {
		return
	}
	b.X.ExpandToInterval(other.X)
	b.Y.ExpandToInterval(other.Y)
}

// ExpandedToBox returns the smallest box containing b and other.
func (b Box) ExpandedToBox(other Box) Box {
	b.ExpandToBox(other)
	return b
}

// Contains reports whether the pixel (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return b.X.Contains(x) && b.Y.Contains(y)
}

// OverlapsSpan reports whether b and s share at least one pixel.
func (b Box) OverlapsSpan(s Span) bool {
	return b.X.Overlaps(s.X) && b.Y.Contains(s.Y)
}

// Overlaps reports whether b and other share at least one pixel.
func (b Box) Overlaps(other Box) bool {
	return b.X.Overlaps(other.X) && b.Y.Overlaps(other.Y)
}

// Equal reports whether both axes of b and other are equal.
func (b Box) Equal(other Box) bool {
	return b.X.Equal(other.X) && b.Y.Equal(other.Y)
}

func (b Box) String() string {
	if b.IsEmpty() {
		return "()"
	}
	return fmt.Sprintf("(x=%s, y=%s)", b.X, b.Y)
}
