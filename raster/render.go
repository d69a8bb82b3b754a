// seehuhn.de/go/semicircle - elliptical wedges and arcs
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

package raster

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/semicircle/testcases"
)

// RenderExample renders a test case into a new grayscale image of the test
// case size.  Each pixel holds the coverage, from 0 (outside) to 255
// (inside).  All parameters of r are reset.
func (r *Rasterizer) RenderExample(tc testcases.TestCase) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	r.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	emit := func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(min(c, 1)*255 + 0.5)
		}
	}

	d := tc.Path().Data()
	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			r.FillEvenOdd(d, emit)
		} else {
			r.FillNonZero(d, emit)
		}
	case testcases.Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		r.MiterLimit = op.MiterLimit
		r.Stroke(d, emit)
	}
	return img
}
