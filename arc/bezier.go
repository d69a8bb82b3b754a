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

package arc

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AppendEllipseArc appends cubic Bézier segments approximating the arc of
// the axis-aligned ellipse from parameter t0 to parameter t1.  The current
// point of d must already be at the start of the arc.  Each segment covers
// at most a quarter turn, which keeps the radial error below 0.03% of the
// radius.
func AppendEllipseArc(d *path.Data, center vec.Vec2, rx, ry, t0, t1 float64) *path.Data {
	sweep := t1 - t0
	if sweep == 0 {
		return d
	}
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	arm := 4.0 / 3.0 * math.Tan(step/4)

	angle := t0
	p0 := ellipsePoint(center, rx, ry, angle)
	for range n {
		next := angle + step
		p3 := ellipsePoint(center, rx, ry, next)
		p1 := p0.Add(ellipseTangent(rx, ry, angle).Mul(arm))
		p2 := p3.Sub(ellipseTangent(rx, ry, next).Mul(arm))
		d = d.CubeTo(p1, p2, p3)
		angle = next
		p0 = p3
	}
	return d
}

// ellipsePoint returns the point with parameter t on the ellipse.
func ellipsePoint(center vec.Vec2, rx, ry, t float64) vec.Vec2 {
	sin, cos := math.Sincos(t)
	return vec.Vec2{X: center.X + rx*cos, Y: center.Y + ry*sin}
}

// ellipseTangent returns the derivative of the ellipse parametrisation at t.
func ellipseTangent(rx, ry, t float64) vec.Vec2 {
	sin, cos := math.Sincos(t)
	return vec.Vec2{X: -rx * sin, Y: ry * cos}
}
