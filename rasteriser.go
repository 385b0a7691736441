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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64 // top end point
	x1, y1 float64 // bottom end point
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    int     // +1 if the path runs downwards along the edge, -1 otherwise
}

// crossing is the intersection of an edge with the centre line of a row.
type crossing struct {
	x   float64
	dir int
}

// Rasteriser converts vector paths into sets of pixels.  A pixel belongs
// to the filled region if its centre lies inside the path.
//
// Create one instance and reuse it for multiple paths.  Internal buffers
// grow as needed but never shrink.  The returned SpanSets do not share
// memory with the Rasteriser.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip restricts the output to this device-space rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64

	edges     []edge
	active    []int // indices into edges
	crossings []crossing

	// device space bounding box of the collected edges
	haveEdges                          bool
	devXMin, devXMax, devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and
// default values for the other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
}

// FillNonZero returns the pixels inside p, using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillNonZero(p path.Path) SpanSet {
	return r.fill(p, fillNonZero)
}

// FillEvenOdd returns the pixels inside p, using the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillEvenOdd(p path.Path) SpanSet {
	return r.fill(p, fillEvenOdd)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (rule fillRule) inside(winding int) bool {
	if rule == fillEvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

func (r *Rasteriser) fill(p path.Path, rule fillRule) SpanSet {
	xMin, xMax, yMin, yMax, ok := r.collectPathEdges(p)
	if !ok {
		return SpanSet{}
	}

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	nextEdge := 0

	var spans []Span
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		for nextEdge < len(r.edges) && r.edges[nextEdge].y0 <= yc {
			r.active = append(r.active, nextEdge)
			nextEdge++
		}

		r.crossings = r.crossings[:0]
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= yc {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			r.crossings = append(r.crossings, crossing{
				x:   e.x0 + e.dxdy*(yc-e.y0),
				dir: e.dir,
			})
			i++
		}
		if len(r.crossings) == 0 {
			continue
		}
		slices.SortFunc(r.crossings, func(a, b crossing) int {
			return cmp.Compare(a.x, b.x)
		})

		// Between consecutive crossings the winding number is constant.
		// Pixel x is selected if x+0.5 lies in [left, right).
		winding := 0
		for k := 0; k+1 < len(r.crossings); k++ {
			winding += r.crossings[k].dir
			if !rule.inside(winding) {
				continue
			}
			first := max(int(math.Ceil(r.crossings[k].x-0.5)), xMin)
			last := min(int(math.Ceil(r.crossings[k+1].x-0.5))-1, xMax-1)
			if first <= last {
				spans = append(spans, Span{X: NewInterval(first, last), Y: y})
			}
		}
	}

	res := SpanSet{spans: coalesce(spans)}
	Logger().Debug("filled path",
		"edges", len(r.edges), "rows", yMax-yMin, "spans", res.Len())
	return res
}

// collectPathEdges walks the path, transforms it to device space, and
// builds the edge list.  It returns the range of pixels touched by the
// edges, clamped to the clip rectangle, as half-open ranges.
func (r *Rasteriser) collectPathEdges(p path.Path) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.haveEdges = false

	var current, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
			open = true

		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]

		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]

		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}

	if !r.haveEdges {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge adds the segment from p0 to p1, given in user space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	x0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	y0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	x1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	y1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	if dy := y1 - y0; dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	dir := 1
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})

	if !r.haveEdges {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = y0, y1
		r.haveEdges = true
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0)
	r.devYMax = max(r.devYMax, y1)
}

// deviceVector applies the linear part of the CTM to v.
func (r *Rasteriser) deviceVector(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments, which are passed to emit.  All points are in user space,
// the number of segments is chosen based on the device space error.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.deviceVector(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3 by line
// segments, using Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.deviceVector(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.deviceVector(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to cross any row centre line.
	horizontalEdgeThreshold = 1e-10
)
