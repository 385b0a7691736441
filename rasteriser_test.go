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
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/spanops/testcases"
)

func fillTestCase(r *Rasteriser, tc testcases.TestCase) SpanSet {
	r.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	if tc.Rule == testcases.EvenOdd {
		return r.FillEvenOdd(tc.Path)
	}
	return r.FillNonZero(tc.Path)
}

func TestRasteriserCases(t *testing.T) {
	r := NewRasteriser(rect.Rect{})
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				s := fillTestCase(r, tc)

				if s.IsEmpty() {
					t.Fatal("no pixels were filled")
				}
				if !isCanonical(s) {
					t.Errorf("result %s is not canonical", s)
				}
				canvas := Box{X: NewInterval(0, tc.Width-1), Y: NewInterval(0, tc.Height-1)}
				if bbox := s.BBox(); !canvas.ExpandedToBox(bbox).Equal(canvas) {
					t.Errorf("bbox %s exceeds the canvas %s", bbox, canvas)
				}
				if tc.Area != 0 && s.Area() != tc.Area {
					t.Errorf("area %d, want %d", s.Area(), tc.Area)
				}
				if tc.Components != 0 {
					if n := len(s.Split()); n != tc.Components {
						t.Errorf("%d components, want %d", n, tc.Components)
					}
				}
			})
		}
	}
}

func TestRasteriserMatchesVector(t *testing.T) {
	// For integer-aligned rectangles, the pixels with full coverage are
	// exactly the pixels whose centre is inside.
	rects := [][4]float32{
		{10, 10, 44, 44},
		{0, 0, 64, 1},
		{3, 5, 4, 60},
		{0, 20, 30, 64},
	}
	const w, h = 64, 64
	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	for _, c := range rects {
		z := vector.NewRasterizer(w, h)
		z.MoveTo(c[0], c[1])
		z.LineTo(c[2], c[1])
		z.LineTo(c[2], c[3])
		z.LineTo(c[0], c[3])
		z.ClosePath()
		dst := image.NewAlpha(image.Rect(0, 0, w, h))
		z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
		want := Extract(Alpha(dst), 0xff)

		p := polygonPath(
			vec.Vec2{X: float64(c[0]), Y: float64(c[1])},
			vec.Vec2{X: float64(c[2]), Y: float64(c[1])},
			vec.Vec2{X: float64(c[2]), Y: float64(c[3])},
			vec.Vec2{X: float64(c[0]), Y: float64(c[3])},
		)
		got := r.FillNonZero(p)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("rectangle %v (-want +got):\n%s", c, d)
		}
	}
}

func TestRasteriserPixelCentres(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})

	// the centre of pixel 2 lies on the right edge and is excluded
	got := r.FillNonZero(polygonPath(
		vec.Vec2{X: 0.6, Y: 0.4}, vec.Vec2{X: 2.5, Y: 0.4},
		vec.Vec2{X: 2.5, Y: 0.6}, vec.Vec2{X: 0.6, Y: 0.6},
	))
	want := FromSpans(Span{X: NewInterval(1, 1), Y: 0})
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// degenerate paths have no pixels
	empty := []path.Path{
		polygonPath(),
		polygonPath(vec.Vec2{X: 1, Y: 1}),
		polygonPath(vec.Vec2{X: 0, Y: 5}, vec.Vec2{X: 10, Y: 5}),
		polygonPath(vec.Vec2{X: 20, Y: 20}, vec.Vec2{X: 30, Y: 20}, vec.Vec2{X: 30, Y: 30}),
	}
	for i, p := range empty {
		if s := r.FillNonZero(p); !s.IsEmpty() {
			t.Errorf("path %d gave %s", i, s)
		}
	}
}

func TestRasteriserWindingRules(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
	square := func(x0, y0, x1, y1 float64) []vec.Vec2 {
		return []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	}
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		for _, sq := range [][]vec.Vec2{square(0, 0, 10, 10), square(5, 5, 15, 15)} {
			for cmd, pts := range polygonPath(sq...) {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}

	nonZero := r.FillNonZero(p)
	a := FromBox(Box{X: NewInterval(0, 9), Y: NewInterval(0, 9)})
	b := FromBox(Box{X: NewInterval(5, 14), Y: NewInterval(5, 14)})
	if d := cmp.Diff(a.Union(b), nonZero); d != "" {
		t.Errorf("nonzero (-want +got):\n%s", d)
	}

	evenOdd := r.FillEvenOdd(p)
	overlap := a.Intersect(b)
	if evenOdd.Area() != nonZero.Area()-overlap.Area() {
		t.Errorf("even-odd area %d", evenOdd.Area())
	}
	if !evenOdd.Intersect(overlap).IsEmpty() {
		t.Error("even-odd fill contains the overlap")
	}
}

func TestRasteriserCurves(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 32, URy: 32})
	quad := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 16}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 16, Y: -16}, {X: 32, Y: 16}}) &&
			yield(path.CmdClose, nil)
	}
	s := r.FillNonZero(quad)
	if s.IsEmpty() {
		t.Fatal("no pixels were filled")
	}
	if n := len(s.Split()); n != 1 {
		t.Errorf("%d components", n)
	}
	// the area under the parabola is 2/3 of 32×16
	if a := s.Area(); a < 320 || a > 362 {
		t.Errorf("area %d, want about 341", a)
	}

	r.Flatness = 4
	coarse := r.FillNonZero(quad)
	if coarse.Area() > s.Area() {
		t.Errorf("coarse flattening gave more pixels: %d > %d", coarse.Area(), s.Area())
	}
}

func TestRasteriserRing(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 100, URy: 100})
	ring := makeOPath(50, 50, 45, 30)

	evenOdd := r.FillEvenOdd(ring)
	nonZero := r.FillNonZero(ring)
	if d := cmp.Diff(evenOdd, nonZero); d != "" {
		t.Errorf("fill rules disagree (-even-odd +nonzero):\n%s", d)
	}
	if n := len(evenOdd.Split()); n != 1 {
		t.Errorf("%d components", n)
	}
	// π·(45² - 30²) ≈ 3534
	if a := evenOdd.Area(); a < 3430 || a > 3640 {
		t.Errorf("area %d", a)
	}
	if evenOdd.Contains(50, 50) || !evenOdd.Contains(50, 10) {
		t.Error("wrong pixels inside the ring")
	}
}

func polygonPath(vertices ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, v := range vertices {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{v}) {
				return
			}
		}
		if len(vertices) > 0 {
			yield(path.CmdClose, nil)
		}
	}
}
