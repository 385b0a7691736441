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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

// writeTestImage writes a 16×12 grayscale PNG with three white regions:
// a single pixel at (14, 0), a 4×3 box at (2, 1), and a 4×4 box at (9, 6).
func writeTestImage(t *testing.T) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 16, 12))
	white := color.Gray{Y: 255}
	img.SetGray(14, 0, white)
	for y := 1; y <= 3; y++ {
		for x := 2; x <= 5; x++ {
			img.SetGray(x, y, white)
		}
	}
	for y := 6; y <= 9; y++ {
		for x := 9; x <= 12; x++ {
			img.SetGray(x, y, white)
		}
	}

	fname := filepath.Join(t.TempDir(), "in.png")
	fd, err := os.Create(fname)
	require.NoError(t, err)
	require.NoError(t, png.Encode(fd, img))
	require.NoError(t, fd.Close())
	return fname
}

func run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// table splits the output of "detect" into rows of fields, without the
// header line.
func table(t *testing.T, out string) [][]string {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	require.Equal(t, []string{"id", "area", "x0", "x1", "y0", "y1", "spans"}, strings.Fields(lines[0]))
	var rows [][]string
	for _, line := range lines[1:] {
		rows = append(rows, strings.Fields(line))
	}
	return rows
}

func TestDetect(t *testing.T) {
	fname := writeTestImage(t)

	out, _, err := run("detect", fname)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"1", "1", "14", "14", "0", "0", "1"},
		{"2", "12", "2", "5", "1", "3", "3"},
		{"3", "16", "9", "12", "6", "9", "4"},
	}, table(t, out))

	out, _, err = run("detect", "--min-area", "2", "--x0", "100", "--y0", "200", fname)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"1", "12", "102", "105", "201", "203", "3"},
		{"2", "16", "109", "112", "206", "209", "4"},
	}, table(t, out))

	out, _, err = run("detect", "--value", "0", fname)
	require.NoError(t, err)
	rows := table(t, out)
	require.Len(t, rows, 1)
	require.Equal(t, "163", rows[0][1])
}

func TestDetectConfig(t *testing.T) {
	fname := writeTestImage(t)

	cfg := filepath.Join(t.TempDir(), "footprints.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("min-area: 13\n"), 0o644))
	out, _, err := run("detect", "--config", cfg, fname)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "16", "9", "12", "6", "9", "4"}}, table(t, out))

	// the environment takes precedence over the config file
	t.Setenv("FOOTPRINTS_MIN_AREA", "2")
	out, _, err = run("detect", "--config", cfg, fname)
	require.NoError(t, err)
	require.Len(t, table(t, out), 2)

	// flags take precedence over the environment
	out, _, err = run("detect", "--min-area", "1", fname)
	require.NoError(t, err)
	require.Len(t, table(t, out), 3)
}

func TestDetectErrors(t *testing.T) {
	fname := writeTestImage(t)

	_, _, err := run("detect", "--value", "300", fname)
	require.ErrorContains(t, err, "out of range")

	_, _, err = run("detect", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)

	_, _, err = run("detect")
	require.Error(t, err)

	_, _, err = run("detect", "--log-format", "xml", fname)
	require.ErrorContains(t, err, "unknown log format")

	_, _, err = run("detect", "--config", filepath.Join(t.TempDir(), "none.yaml"), fname)
	require.ErrorContains(t, err, "reading config")
}

func TestLabel(t *testing.T) {
	fname := writeTestImage(t)
	dir := t.TempDir()

	outPNG := filepath.Join(dir, "labels.png")
	_, _, err := run("label", fname, outPNG)
	require.NoError(t, err)

	fd, err := os.Open(outPNG)
	require.NoError(t, err)
	defer fd.Close()
	img, err := png.Decode(fd)
	require.NoError(t, err)
	gray, ok := img.(*image.Gray)
	require.True(t, ok, "output is %T", img)
	require.Equal(t, image.Rect(0, 0, 16, 12), gray.Bounds())
	require.EqualValues(t, 1, gray.GrayAt(14, 0).Y)
	require.EqualValues(t, 2, gray.GrayAt(3, 2).Y)
	require.EqualValues(t, 3, gray.GrayAt(10, 7).Y)
	require.EqualValues(t, 0, gray.GrayAt(0, 0).Y)

	outTIFF := filepath.Join(dir, "labels.tiff")
	_, _, err = run("label", "--min-area", "2", fname, outTIFF)
	require.NoError(t, err)
	tf, err := os.Open(outTIFF)
	require.NoError(t, err)
	defer tf.Close()
	img, err = tiff.Decode(tf)
	require.NoError(t, err)
	r, _, _, _ := img.At(3, 2).RGBA()
	require.EqualValues(t, 0x0101, r)
	r, _, _, _ = img.At(14, 0).RGBA()
	require.EqualValues(t, 0, r)

	_, _, err = run("label", fname, filepath.Join(dir, "labels.xyz"))
	require.ErrorContains(t, err, "unsupported output format")
}

func TestVerboseLogging(t *testing.T) {
	fname := writeTestImage(t)

	_, stderr, err := run("detect", "--verbose", "--log-format", "json", fname)
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"split span set"`)
	require.Contains(t, stderr, `"components":3`)
	require.Contains(t, stderr, `"msg":"found footprints"`)

	_, stderr, err = run("detect", fname)
	require.NoError(t, err)
	require.NotContains(t, stderr, "split span set")
	require.Contains(t, stderr, "found footprints")
}
