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

package testcases

import "seehuhn.de/go/semicircle/arc"

// circle24 is a circle of radius 24, centered in a 64x64 canvas.
func circle24(start, stop float64, isWedge bool) arc.Spec {
	return arc.Spec{StartDeg: start, StopDeg: stop, RadiusX: 24, Wedge: isWedge}
}

var wedgeCases = []TestCase{
	withSVG(centered("quarter_ne", 64, pt(32, 32), circle24(0, 90, true), Fill{}),
		"M32,32L32,8A24,24 0 0,1 56,32 z"),
	withSVG(centered("quarter_sw", 64, pt(32, 32), circle24(180, 270, true), Fill{}),
		"M32,32L32,56A24,24 0 0,1 8,32 z"),
	withSVG(centered("half_east", 64, pt(32, 32), circle24(0, 180, true), Fill{}),
		"M32,32L32,8A24,24 0 1,1 32,56 z"),
	withSVG(centered("three_quarters", 64, pt(32, 32), circle24(0, 270, true), Fill{}),
		"M32,32L32,8A24,24 0 1,1 8,32 z"),
	// swapped endpoints give the same wedge
	withSVG(centered("reversed", 64, pt(32, 32), circle24(90, 0, true), Fill{}),
		"M32,32L32,8A24,24 0 0,1 56,32 z"),
	// 300°..60° is ordered to 60°..300°, the long way round
	withSVG(centered("reversed_long", 64, pt(32, 32), circle24(300, 60, true), Fill{}),
		"M32,32L52.78461,20A24,24 0 1,1 11.21539,20 z"),
	withSVG(centered("across_north", 64, pt(32, 32), circle24(-45, 45, true), Fill{}),
		"M32,32L15.029437,15.029437A24,24 0 0,1 48.970563,15.029437 z"),
	withSVG(centered("narrow", 64, pt(32, 32), circle24(88, 92, true), Fill{}),
		"M32,32L55.98538,31.162412A24,24 0 0,1 55.98538,32.837588 z"),
	withSVG(centered("beyond_turn", 64, pt(32, 32), circle24(400, 490, true), Fill{}),
		"M32,32L47.426903,13.614933A24,24 0 0,1 50.385067,47.426903 z"),
	withSVG(centered("evenodd", 64, pt(32, 32), circle24(30, 250, true), Fill{Rule: EvenOdd}), ""),
	{
		Name:   "offset_apex",
		Width:  64,
		Height: 64,
		Origin: pt(8, 56),
		Center: pt(32, 32),
		Spec:   arc.Spec{StartDeg: 0, StopDeg: 90, RadiusX: 20, Wedge: true},
		Op:     Fill{},
		SVG:    "M8,56L32,12A20,20 0 0,1 52,32 z",
	},
}

var arcCases = []TestCase{
	// filling an open arc fills the segment cut off by the chord
	withSVG(centered("quarter", 64, pt(32, 32), circle24(0, 90, false), Fill{}),
		"M32,8A24,24 0 0,1 56,32"),
	withSVG(centered("half", 64, pt(32, 32), circle24(90, 270, false), Fill{}),
		"M56,32A24,24 0 1,1 8,32"),
	withSVG(centered("large", 64, pt(32, 32), circle24(30, 300, false), Fill{}),
		"M44,11.21539A24,24 0 1,1 11.21539,20"),
	withSVG(centered("quarter_stroke", 64, pt(32, 32), circle24(0, 90, false), defaultStroke), ""),
}

// withSVG sets the expected SVG path data of a test case.
func withSVG(tc TestCase, svg string) TestCase {
	tc.SVG = svg
	return tc
}
