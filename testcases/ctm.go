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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	{
		Name:       "scaled_square",
		Path:       rectangle(5, 5, 15, 15),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		CTM:        matrix.Matrix{2, 0, 0, 2, 0, 0},
		Area:       20 * 20,
		Components: 1,
	},
	{
		Name:       "translated_square",
		Path:       rectangle(0, 0, 10, 10),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		CTM:        matrix.Matrix{1, 0, 0, 1, 20, 30},
		Area:       10 * 10,
		Components: 1,
	},
	{
		Name:       "flipped_rectangle",
		Path:       rectangle(10, 10, 20, 30),
		Width:      64,
		Height:     64,
		Rule:       EvenOdd,
		CTM:        matrix.Matrix{1, 0, 0, -1, 0, 64},
		Area:       10 * 20,
		Components: 1,
	},
}
