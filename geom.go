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

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// Rect returns the device-space rectangle covered by the pixels of b.
// Pixel (x, y) covers the unit square [x, x+1] × [y, y+1].
func (b Box) Rect() rect.Rect {
	if b.IsEmpty() {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: float64(b.X0()),
		LLy: float64(b.Y0()),
		URx: float64(b.X1() + 1),
		URy: float64(b.Y1() + 1),
	}
}

// BoxFromRect returns the smallest box containing every pixel which
// intersects the interior of r.
func BoxFromRect(r rect.Rect) Box {
	return Box{
		X: NewInterval(int(math.Floor(r.LLx)), int(math.Ceil(r.URx))-1),
		Y: NewInterval(int(math.Floor(r.LLy)), int(math.Ceil(r.URy))-1),
	}
}
