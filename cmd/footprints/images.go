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


package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/spanops"
)

// loadImage reads an image file and returns a view onto its pixel values.
// Grayscale and paletted images are used as they are.  Other images are
// converted to 8-bit gray first.
func loadImage(fname string) (spanops.Image[uint8], string, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return spanops.Image[uint8]{}, "", err
	}
	defer fd.Close()

	src, format, err := image.Decode(fd)
	if err != nil {
		return spanops.Image[uint8]{}, "", errors.Wrapf(err, "decoding %q", fname)
	}

	switch img := src.(type) {
	case *image.Gray:
		return spanops.Gray(img), format, nil
	case *image.Alpha:
		return spanops.Alpha(img), format, nil
	case *image.Paletted:
		return spanops.Paletted(img), format, nil
	}
	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Rect, src, src.Bounds().Min, draw.Src)
	return spanops.Gray(gray), format, nil
}

// saveImage writes img to fname.  The file format is chosen based on the
// file name extension.
func saveImage(fname string, img image.Image) (err error) {
	var encode func(*os.File) error
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		encode = func(fd *os.File) error { return png.Encode(fd, img) }
	case ".tif", ".tiff":
		encode = func(fd *os.File) error {
			return tiff.Encode(fd, img, &tiff.Options{Compression: tiff.Deflate})
		}
	case ".bmp":
		encode = func(fd *os.File) error { return bmp.Encode(fd, img) }
	default:
		return errors.Errorf("unsupported output format %q", ext)
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if e := fd.Close(); err == nil {
			err = e
		}
	}()
	return errors.Wrapf(encode(fd), "encoding %q", fname)
}
