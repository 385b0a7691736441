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
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the set of pixel types which can be accumulated by Insert.
type Number interface {
	constraints.Integer | constraints.Float
}

// Image is a view onto a row-major raster of pixels of type T.
//
// The pixel (x, y), for x and y inside Bounds, is stored at
// Pix[(y-Bounds.Y0())*Stride + (x-Bounds.X0())].  The caller must make sure
// that Pix holds all pixels covered by Bounds.
type Image[T any] struct {
	Pix    []T
	Stride int
	Bounds Box
}

// NewImage returns a view onto a raster of the given size, stored without
// padding between rows.  The top-left pixel has coordinates (0, 0).
func NewImage[T any](pix []T, width, height int) Image[T] {
	if len(pix) < width*height {
		panic("spanops: pixel slice too short for image size")
	}
	return Image[T]{
		Pix:    pix,
		Stride: width,
		Bounds: Box{X: NewInterval(0, width-1), Y: NewInterval(0, height-1)},
	}
}

// Translate returns a view of the same pixels, with the top-left pixel at
// coordinates (x0, y0).
func (img Image[T]) Translate(x0, y0 int) Image[T] {
	w, h := img.Bounds.Width(), img.Bounds.Height()
	img.Bounds = Box{X: NewInterval(x0, x0+w-1), Y: NewInterval(y0, y0+h-1)}
	return img
}

// offset returns the index into Pix of the pixel (x, y).
func (img Image[T]) offset(x, y int) int {
	return (y-img.Bounds.Y0())*img.Stride + (x - img.Bounds.X0())
}

// Extract returns the set of pixels in img which are equal to value.
func Extract[T comparable](img Image[T], value T) SpanSet {
	bbox := img.Bounds
	if bbox.IsEmpty() {
		return SpanSet{}
	}

	var spans []Span
	for y := bbox.Y0(); y <= bbox.Y1(); y++ {
		row := img.Pix[img.offset(bbox.X0(), y):][:bbox.Width()]
		for i := 0; i < len(row); i++ {
			if row[i] != value {
				continue
			}
			start := i
			for i+1 < len(row) && row[i+1] == value {
				i++
			}
			spans = append(spans, Span{
				X: NewInterval(bbox.X0()+start, bbox.X0()+i),
				Y: y,
			})
		}
	}
	return SpanSet{spans: spans}
}

// Insert adds value to every pixel of img which belongs to s.  Pixels of s
// outside img are ignored.
func Insert[T Number](s SpanSet, img Image[T], value T) {
	for row := range img.rows(s) {
		for i := range row {
			row[i] += value
		}
	}
}

// InsertBool is the version of Insert for boolean rasters.  Adding true
// sets a pixel, adding false leaves it unchanged.
func InsertBool(s SpanSet, img Image[bool], value bool) {
	if !value {
		return
	}
	for row := range img.rows(s) {
		for i := range row {
			row[i] = true
		}
	}
}

// rows iterates over the parts of img covered by the spans of s.
func (img Image[T]) rows(s SpanSet) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, span := range s.spans {
			if !img.Bounds.Y.Contains(span.Y) {
				continue
			}
			x := span.X.Intersect(img.Bounds.X)
			if x.IsEmpty() {
				continue
			}
			start := img.offset(x.Min(), span.Y)
			if !yield(img.Pix[start : start+x.Len()]) {
				return
			}
		}
	}
}

// Gray returns a view onto the pixels of a grayscale image.  The view uses
// the coordinates of the image.
func Gray(img *image.Gray) Image[uint8] {
	return stdImage(img.Pix, img.Stride, img.Rect)
}

// Alpha returns a view onto the pixels of an alpha mask.  The view uses the
// coordinates of the image.
func Alpha(img *image.Alpha) Image[uint8] {
	return stdImage(img.Pix, img.Stride, img.Rect)
}

// Paletted returns a view onto the palette indices of a paletted image.  The
// view uses the coordinates of the image.
func Paletted(img *image.Paletted) Image[uint8] {
	return stdImage(img.Pix, img.Stride, img.Rect)
}

func stdImage(pix []uint8, stride int, r image.Rectangle) Image[uint8] {
	return Image[uint8]{
		Pix:    pix,
		Stride: stride,
		Bounds: Box{
			X: NewInterval(r.Min.X, r.Max.X-1),
			Y: NewInterval(r.Min.Y, r.Max.Y-1),
		},
	}
}
