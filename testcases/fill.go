package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:       "rectangle",
		Path:       rectangle(10, 10, 44, 44),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Area:       34 * 34,
		Components: 1,
	},
	{
		Name:       "open_rectangle",
		Path:       openRectangle(10, 10, 44, 44),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Area:       34 * 34,
		Components: 1,
	},
	{
		Name:       "clipped_rectangle",
		Path:       rectangle(-10, -10, 20, 100),
		Width:      64,
		Height:     64,
		Rule:       EvenOdd,
		Area:       20 * 64,
		Components: 1,
	},
	{
		Name:       "triangle_nonzero",
		Path:       polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Components: 1,
	},
	{
		// the slanted tips can break off into separate pixels
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
}

// openRectangle builds a rectangle without the final close command.
func openRectangle(x1, y1, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(x1, y1)}) {
			return
		}
		for _, p := range []vec.Vec2{pt(x2, y1), pt(x2, y2), pt(x1, y2)} {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	var pts [5]vec.Vec2
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}
