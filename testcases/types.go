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

// Package testcases provides a catalogue of wedge drawings shared by the
// tests of the rendering packages and by the tools in the subdirectories.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/semicircle/arc"
	"seehuhn.de/go/semicircle/wedge"
)

// TestCase defines a single wedge drawing.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Origin vec.Vec2      // apex of the wedge
	Center vec.Vec2      // center of the ellipse
	Spec   arc.Spec      // angles, radii and drawing mode
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)

	// SVG is the expected SVG path string.  If empty, the string is not
	// checked.
	SVG string
}

// Path returns the outline of the wedge, before CTM is applied.
func (tc TestCase) Path() *wedge.Path {
	rx, ry := tc.Spec.Radii()
	return wedge.Build(tc.Origin, tc.Center, tc.Spec.Canonical(), rx, ry, tc.Spec.Wedge)
}

// Area returns the area enclosed by the path, in device pixels, for wedges
// whose apex is the center of the ellipse and for open arcs, whose area is
// the segment cut off by the chord.  The second return value is false in
// all other cases.
func (tc TestCase) Area() (float64, bool) {
	p := tc.Path()
	var a float64
	switch {
	case p.Full:
		a = math.Pi * p.RadiusX * p.RadiusY
	case p.Wedge && p.Origin == p.Center:
		t0, t1 := p.ParametricRange()
		a = 0.5 * p.RadiusX * p.RadiusY * (t1 - t0)
	case !p.Wedge:
		t0, t1 := p.ParametricRange()
		d := t1 - t0
		a = 0.5 * p.RadiusX * p.RadiusY * (d - math.Sin(d))
	default:
		return 0, false
	}
	if tc.CTM != (matrix.Matrix{}) {
		m := tc.CTM
		a *= math.Abs(m[0]*m[3] - m[1]*m[2])
	}
	return a, true
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
}

func (Stroke) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// centered returns a test case whose apex is the center of the ellipse.
func centered(name string, size int, c vec.Vec2, spec arc.Spec, op Operation) TestCase {
	return TestCase{
		Name:   name,
		Width:  size,
		Height: size,
		Origin: c,
		Center: c,
		Spec:   spec,
		Op:     op,
	}
}

// defaultStroke is a one pixel wide stroke with PDF default parameters.
var defaultStroke = Stroke{
	Width:      1,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 10,
}
