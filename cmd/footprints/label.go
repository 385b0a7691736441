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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/spanops"
)

// maxLabel is the largest region number which fits into a pixel.
const maxLabel = 255

func (a *app) newLabelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label IMAGE OUTPUT",
		Short: "Write an image of the connected regions",
		Long: `label finds the connected regions of IMAGE, like "detect" does, and
writes an 8-bit grayscale image of the same size to OUTPUT.  Pixels of
region k have value k, all other pixels are 0.  The output format is
chosen by the file name extension: .png, .tif, .tiff or .bmp.`,
		Args: cobra.ExactArgs(2),
		RunE: a.runLabel,
	}
	addSelectFlags(cmd.Flags())
	return cmd
}

func (a *app) runLabel(_ *cobra.Command, args []string) error {
	parts, img, err := a.footprints(args[0])
	if err != nil {
		return err
	}
	if len(parts) > maxLabel {
		return errors.Errorf("%d footprints do not fit into 8-bit labels", len(parts))
	}

	b := img.Bounds
	out := image.NewGray(image.Rect(b.X0(), b.Y0(), b.X1()+1, b.Y1()+1))
	labels := spanops.Gray(out)
	for i, part := range parts {
		spanops.Insert(part, labels, uint8(i+1))
	}

	if err := saveImage(args[1], out); err != nil {
		return err
	}
	a.log.Info("wrote labels", zap.String("file", args[1]), zap.Int("footprints", len(parts)))
	return nil
}
