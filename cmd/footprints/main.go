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


// Command footprints finds connected regions of equal pixel value in
// images.
//
// Usage:
//
//	footprints detect [flags] IMAGE
//	footprints label [flags] IMAGE OUTPUT
//
// The "detect" subcommand prints one line per region, giving its area, its
// bounding box, and the number of spans.  The "label" subcommand writes an
// 8-bit grayscale image in which region k has pixel value k.
//
// Flags can also be set using environment variables with prefix
// FOOTPRINTS_, or using a configuration file given by --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "footprints:", err)
		os.Exit(1)
	}
}
