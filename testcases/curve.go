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


package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var curveCases = []TestCase{
	{
		Name:       "disk",
		Path:       circle(32, 32, 25, false),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Components: 1,
	},
	{
		Name:       "ring_evenodd",
		Path:       concat(circle(32, 32, 28, false), circle(32, 32, 14, false)),
		Width:      64,
		Height:     64,
		Rule:       EvenOdd,
		Components: 1,
	},
	{
		Name:       "ring_nonzero",
		Path:       concat(circle(32, 32, 28, false), circle(32, 32, 14, true)),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Components: 1,
	},
	{
		Name:       "two_disks",
		Path:       concat(circle(16, 16, 10, false), circle(48, 48, 10, true)),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Components: 2,
	},
}

// circle approximates a circle by four cubic Bézier curves.
func circle(cx, cy, r float64, clockwise bool) path.Path {
	// control point distance for a quarter circle
	const k = 0.5522847498
	kr := k * r

	s := 1.0
	if clockwise {
		s = -1
	}
	quarters := [4][3]vec.Vec2{
		{pt(cx+s*kr, cy-r), pt(cx+s*r, cy-kr), pt(cx+s*r, cy)},
		{pt(cx+s*r, cy+kr), pt(cx+s*kr, cy+r), pt(cx, cy+r)},
		{pt(cx-s*kr, cy+r), pt(cx-s*r, cy+kr), pt(cx-s*r, cy)},
		{pt(cx-s*r, cy-kr), pt(cx-s*kr, cy-r), pt(cx, cy-r)},
	}

	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx, cy-r)}) {
			return
		}
		for i := range quarters {
			if !yield(path.CmdCubeTo, quarters[i][:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
