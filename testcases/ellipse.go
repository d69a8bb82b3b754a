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

var ellipseCases = []TestCase{
	withSVG(centered("quarter", 64, pt(32, 32),
		arc.Spec{StartDeg: 0, StopDeg: 90, RadiusX: 28, RadiusY: 14, Wedge: true}, Fill{}),
		"M32,32L32,18A28,14 0 0,1 60,32 z"),
	// the edge points lie on the rays at 30° and 150°
	withSVG(centered("diagonal", 64, pt(32, 32),
		arc.Spec{StartDeg: 30, StopDeg: 150, RadiusX: 28, RadiusY: 14, Wedge: true}, Fill{}),
		"M32,32L39.765803,18.549235A28,14 0 0,1 39.765803,45.450765 z"),
	withSVG(centered("tall", 64, pt(32, 32),
		arc.Spec{StartDeg: 45, StopDeg: 225, RadiusX: 12, RadiusY: 28, Wedge: true}, Fill{}),
		"M32,32L43.02974,20.97026A12,28 0 1,1 20.97026,43.02974 z"),
	withSVG(centered("open_arc", 64, pt(32, 32),
		arc.Spec{StartDeg: 200, StopDeg: 340, RadiusX: 28, RadiusY: 14}, Fill{}),
		"M26.986756,45.773774A28,14 0 0,1 26.986756,18.226226"),
	centered("wedge_stroke", 64, pt(32, 32),
		arc.Spec{StartDeg: 100, StopDeg: 350, RadiusX: 28, RadiusY: 18, Wedge: true}, defaultStroke),
}

var fullCases = []TestCase{
	withSVG(centered("circle", 64, pt(32, 32), circle24(0, 360, true), Fill{}),
		"M8,32a24,24 0 1,0 48,0 a24,24 0 1,0 -48,0 "),
	withSVG(centered("near_full", 64, pt(32, 32), circle24(0, 359.9999, true), Fill{}),
		"M8,32a24,24 0 1,0 48,0 a24,24 0 1,0 -48,0 "),
	withSVG(centered("zero_width", 64, pt(32, 32), circle24(45, 45, true), Fill{}),
		"M8,32a24,24 0 1,0 48,0 a24,24 0 1,0 -48,0 "),
	withSVG(centered("ellipse", 64, pt(32, 32),
		arc.Spec{StartDeg: 0, StopDeg: 720, RadiusX: 28, RadiusY: 16, Wedge: true}, Fill{}),
		"M4,32a28,16 0 1,0 56,0 a28,16 0 1,0 -56,0 "),
	// open arcs covering a full turn are full ellipses, too
	centered("open", 64, pt(32, 32), circle24(-180, 180, false), Fill{}),
}
