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

// Package canvas draws wedges through an immediate-mode drawing context
// with the call set of the HTML canvas 2D API.
//
// Non-circular ellipses are drawn as circles of radius RadiusX under a
// vertical scale transform of RadiusY/RadiusX.  Since the scale is applied
// while the path is built, all y coordinates passed to the context are
// divided by the scale factor.  Arc angles are ellipse parameters, so that
// the arc end points coincide with the edge points of the retained-mode
// backends.
//
// Image paints into an *image.RGBA.  Recorder keeps the calls as a display
// list, for tests and for replaying onto another Context.
package canvas

import (
	"math"

	"seehuhn.de/go/semicircle/wedge"
)

// Context is the subset of the HTML canvas 2D API used for drawing wedges.
//
// Arc appends a circular arc around (x, y).  Angles are in radians,
// measured from the positive x-axis towards the positive y-axis.  If the
// current subpath is non-empty, a straight line joins the current point to
// the start of the arc.
type Context interface {
	Save()
	Restore()
	Scale(sx, sy float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool)
	Fill()
	Stroke()
}

// Style selects the painting operations applied to a path.
type Style struct {
	Fill   bool
	Stroke bool
}

// DefaultStyle fills and strokes.
var DefaultStyle = Style{Fill: true, Stroke: true}

// Adapter draws wedge paths onto a Context.  It implements
// [wedge.Consumer].
type Adapter struct {
	Ctx   Context
	Style Style
}

// Draw issues the context calls for p.  Empty paths produce no calls.
func (a *Adapter) Draw(p *wedge.Path) {
	if p.Empty {
		return
	}

	s := p.ScaleY()
	scaled := s != 1
	if scaled {
		a.Ctx.Save()
		a.Ctx.Scale(1, s)
	}

	a.Ctx.BeginPath()
	cx, cy := p.Center.X, p.Center.Y/s
	switch {
	case p.Full:
		a.Ctx.Arc(cx, cy, p.RadiusX, 0, 2*math.Pi, false)
	case p.Wedge:
		ox, oy := p.Origin.X, p.Origin.Y/s
		t0, t1 := p.ParametricRange()
		a.Ctx.MoveTo(ox, oy)
		a.Ctx.Arc(cx, cy, p.RadiusX, t0, t1, false)
		a.Ctx.LineTo(ox, oy)
	default:
		t0, t1 := p.ParametricRange()
		a.Ctx.Arc(cx, cy, p.RadiusX, t0, t1, false)
	}

	if scaled {
		a.Ctx.Restore()
	}

	if a.Style.Fill {
		a.Ctx.Fill()
	}
	if a.Style.Stroke {
		a.Ctx.Stroke()
	}
}
