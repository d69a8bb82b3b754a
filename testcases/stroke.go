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

import "seehuhn.de/go/pdf/graphics"

var strokeCases = []TestCase{
	centered("wedge_miter", 64, pt(32, 32), circle24(0, 90, true), Stroke{
		Width:      4,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	}),
	centered("wedge_round", 64, pt(32, 32), circle24(20, 160, true), Stroke{
		Width:      4,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: 10,
	}),
	centered("wedge_bevel", 64, pt(32, 32), circle24(-30, 30, true), Stroke{
		Width:      4,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinBevel,
		MiterLimit: 10,
	}),
	// a narrow wedge exceeds the miter limit at the apex
	centered("narrow_miter_limit", 64, pt(32, 32), circle24(85, 95, true), Stroke{
		Width:      3,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 4,
	}),
	centered("arc_square_cap", 64, pt(32, 32), circle24(0, 180, false), Stroke{
		Width:      6,
		Cap:        graphics.LineCapSquare,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	}),
	centered("arc_round_cap", 64, pt(32, 32), circle24(200, 340, false), Stroke{
		Width:      6,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: 10,
	}),
}
