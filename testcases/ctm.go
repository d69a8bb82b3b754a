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

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/semicircle/arc"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_up",
		Width:  128,
		Height: 128,
		Origin: pt(0, 0),
		Center: pt(0, 0),
		Spec:   arc.Spec{StartDeg: 0, StopDeg: 135, RadiusX: 24, Wedge: true},
		Op:     Fill{},
		CTM:    matrix.Scale(2, 2).Translate(64, 64),
	},
	{
		Name:   "flip_y",
		Width:  64,
		Height: 64,
		Origin: pt(32, 32),
		Center: pt(32, 32),
		Spec:   arc.Spec{StartDeg: 0, StopDeg: 90, RadiusX: 24, Wedge: true},
		Op:     Fill{},
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
	{
		Name:   "rotate_45",
		Width:  64,
		Height: 64,
		Origin: pt(0, 0),
		Center: pt(0, 0),
		Spec:   arc.Spec{StartDeg: 0, StopDeg: 90, RadiusX: 24, Wedge: true},
		Op:     Fill{},
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "anisotropic",
		Width:  128,
		Height: 64,
		Origin: pt(0, 0),
		Center: pt(0, 0),
		Spec:   arc.Spec{StartDeg: 60, StopDeg: 300, RadiusX: 24, Wedge: true},
		Op:     Fill{},
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:   "shear_stroke",
		Width:  64,
		Height: 64,
		Origin: pt(0, 0),
		Center: pt(0, 0),
		Spec:   arc.Spec{StartDeg: 0, StopDeg: 90, RadiusX: 16, Wedge: true},
		Op:     defaultStroke,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(24, 32),
	},
}
