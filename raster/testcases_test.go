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
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/semicircle/testcases"
)

// TestCatalogue renders all test cases and compares the painted area of
// filled cases with the exact area of the wedge.
func TestCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				r := NewRasterizer(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
				r.Flatness = 0.05
				if tc.CTM != (matrix.Matrix{}) {
					r.CTM = tc.CTM
				}
				c := newCanvas(tc.Width, tc.Height)
				d := tc.Path().Data()

				switch op := tc.Op.(type) {
				case testcases.Fill:
					if op.Rule == testcases.EvenOdd {
						r.FillEvenOdd(d, c.emit)
					} else {
						r.FillNonZero(d, c.emit)
					}
				case testcases.Stroke:
					r.Width = op.Width
					r.Cap = op.Cap
					r.Join = op.Join
					r.MiterLimit = op.MiterLimit
					r.Stroke(d, c.emit)
				}

				for i, v := range c.pix {
					if v < 0 || v > 1+1e-5 {
						t.Fatalf("pixel %d: coverage %g out of range", i, v)
					}
				}
				got := c.sum()
				if got == 0 {
					t.Fatal("nothing was drawn")
				}

				if _, isFill := tc.Op.(testcases.Fill); !isFill {
					return
				}
				want, ok := tc.Area()
				if !ok {
					return
				}
				if math.Abs(got-want)/want > 0.01 {
					t.Errorf("area: got %.2f, want %.2f", got, want)
				}
			})
		}
	}
}

func TestRenderExample(t *testing.T) {
	var quarter testcases.TestCase
	for _, tc := range testcases.All["wedge"] {
		if tc.Name == "quarter_ne" {
			quarter = tc
		}
	}
	if quarter.Name == "" {
		t.Fatal("test case wedge_quarter_ne not found")
	}

	r := NewRasterizer(rect.Rect{})
	img := r.RenderExample(quarter)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("wrong image size %v", b)
	}
	if got := img.GrayAt(40, 20).Y; got != 255 {
		t.Errorf("inside: got %d", got)
	}
	if got := img.GrayAt(20, 40).Y; got != 0 {
		t.Errorf("outside: got %d", got)
	}
	if got := img.GrayAt(31, 20).Y; got != 0 {
		t.Errorf("left of the wedge: got %d", got)
	}
}
