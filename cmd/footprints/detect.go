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
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"seehuhn.de/go/spanops"
)

func (a *app) newDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect IMAGE",
		Short: "List the connected regions of an image",
		Long: `detect selects all pixels of IMAGE which have the given value and
prints one line for each connected region: its number, its area in pixels,
its bounding box, and the number of spans used to store it.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runDetect,
	}
	addSelectFlags(cmd.Flags())
	return cmd
}

func addSelectFlags(flags *flag.FlagSet) {
	flags.Int("value", 255, "Pixel value which marks a region.")
	flags.Int("x0", 0, "Column of the top-left pixel. Defaults to the image origin.")
	flags.Int("y0", 0, "Row of the top-left pixel. Defaults to the image origin.")
	flags.Int("min-area", 1, "Ignore regions with fewer pixels.")
}

// footprints loads an image and returns the regions selected by the flags,
// in order of their first pixel.
func (a *app) footprints(fname string) ([]spanops.SpanSet, spanops.Image[uint8], error) {
	value := a.conf.GetInt("value")
	if value < 0 || value > 255 {
		return nil, spanops.Image[uint8]{}, errors.Errorf("pixel value %d out of range 0-255", value)
	}

	img, format, err := loadImage(fname)
	if err != nil {
		return nil, img, err
	}
	if a.conf.IsSet("x0") || a.conf.IsSet("y0") {
		img = img.Translate(a.conf.GetInt("x0"), a.conf.GetInt("y0"))
	}
	a.log.Debug("loaded image",
		zap.String("file", fname),
		zap.String("format", format),
		zap.Stringer("bounds", img.Bounds))

	mask := spanops.Extract(img, uint8(value))
	minArea := a.conf.GetInt("min-area")
	var res []spanops.SpanSet
	dropped := 0
	for _, part := range mask.Split() {
		if part.Area() < minArea {
			dropped++
			continue
		}
		res = append(res, part)
	}
	a.log.Info("found footprints",
		zap.String("file", fname),
		zap.Int("pixels", mask.Area()),
		zap.Int("footprints", len(res)),
		zap.Int("dropped", dropped))
	return res, img, nil
}

func (a *app) runDetect(cmd *cobra.Command, args []string) error {
	parts, _, err := a.footprints(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "id\tarea\tx0\tx1\ty0\ty1\tspans\t")
	for i, part := range parts {
		bbox := part.BBox()
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			i+1, part.Area(), bbox.X0(), bbox.X1(), bbox.Y0(), bbox.Y1(), part.Len())
	}
	return w.Flush()
}
