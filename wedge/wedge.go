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

// Package wedge turns the canonical form of a partial ellipse, together with
// device-space coordinates, into drawing instructions which do not depend on
// any particular backend.
//
// A [Path] is the single artifact which all backends consume.  Backends
// implement the [Consumer] interface.
package wedge

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle/arc"
)

// Consumer is implemented by drawing backends.
type Consumer interface {
	Draw(p *Path)
}

// SegmentKind distinguishes the segments of a wedge outline.
type SegmentKind uint8

const (
	// SegLine is a straight line segment.
	SegLine SegmentKind = iota

	// SegArc is an elliptical arc.  Arcs always run clockwise on screen.
	SegArc
)

func (k SegmentKind) String() string {
	switch k {
	case SegLine:
		return "line"
	case SegArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Segment is one piece of a wedge outline, in device coordinates.
type Segment struct {
	Kind     SegmentKind
	From, To vec.Vec2

	// LargeArc selects the longer of the two arcs between From and To.
	// It is only used for SegArc.
	LargeArc bool
}

// Path describes a wedge, an open arc or a full ellipse in device space.
type Path struct {
	// Origin is the apex of a wedge.
	Origin vec.Vec2

	// Center is the center of the ellipse.
	Center vec.Vec2

	// RadiusX and RadiusY are the radii of the ellipse, at least 1.
	RadiusX, RadiusY float64

	// Low and High are the canonical angles of the arc, in radians.
	Low, High float64

	// Wedge is true for closed wedges and false for open arcs.
	Wedge bool

	// Full is set if the angle range does not select a proper part of the
	// ellipse.  In this case the full ellipse is drawn and Segments is empty.
	Full bool

	// Empty is set if there is nothing to draw.
	Empty bool

	// Segments lists the outline in drawing order.  For wedges the outline
	// is closed, i.e. the last segment ends at Origin.
	Segments []Segment
}

// Empty returns a path which draws nothing.
func Empty() *Path {
	return &Path{Empty: true}
}

// Build computes the outline of a wedge or arc.  The radii are clamped to
// at least [arc.MinRadius].  If c is not partial, the result describes the
// full ellipse.
func Build(origin, center vec.Vec2, c arc.Canonical, rx, ry float64, wedge bool) *Path {
	rx = arc.ClampRadius(rx)
	ry = arc.ClampRadius(ry)

	p := &Path{
		Origin:  origin,
		Center:  center,
		RadiusX: rx,
		RadiusY: ry,
		Low:     c.Low,
		High:    c.High,
		Wedge:   wedge,
	}
	if !c.IsPartial() {
		p.Full = true
		return p
	}

	start := arc.EdgePoint(center, c.Low, rx, ry)
	stop := arc.EdgePoint(center, c.High, rx, ry)
	arcSeg := Segment{
		Kind:     SegArc,
		From:     start,
		To:       stop,
		LargeArc: c.Sweep() >= math.Pi,
	}

	if wedge {
		p.Segments = []Segment{
			{Kind: SegLine, From: origin, To: start},
			arcSeg,
			{Kind: SegLine, From: stop, To: origin},
		}
	} else {
		p.Segments = []Segment{arcSeg}
	}
	return p
}

// ScaleY returns the ratio RadiusY/RadiusX.
func (p *Path) ScaleY() float64 {
	return p.RadiusY / p.RadiusX
}

// ParametricRange returns the ellipse parameters of the arc end points,
// with t0 <= t1 < t0+2π.  For a full ellipse the range is [0, 2π].
func (p *Path) ParametricRange() (t0, t1 float64) {
	if p.Full {
		return 0, 2 * math.Pi
	}
	t0 = arc.ParametricAngle(p.Low, p.RadiusX, p.RadiusY)
	t1 = arc.ParametricAngle(p.High, p.RadiusX, p.RadiusY)
	sweep := math.Mod(t1-t0, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return t0, t0 + sweep
}

// Bounds returns a rectangle which contains everything drawn by p.
func (p *Path) Bounds() rect.Rect {
	if p.Empty {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: p.Center.X - p.RadiusX,
		LLy: p.Center.Y - p.RadiusY,
		URx: p.Center.X + p.RadiusX,
		URy: p.Center.Y + p.RadiusY,
	}
	if p.Wedge && !p.Full {
		b.LLx = min(b.LLx, p.Origin.X)
		b.LLy = min(b.LLy, p.Origin.Y)
		b.URx = max(b.URx, p.Origin.X)
		b.URy = max(b.URy, p.Origin.Y)
	}
	return b
}

// Data converts p into a path made of lines and cubic Bézier curves.
// Wedges and full ellipses are closed, open arcs are not.
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	if p.Empty {
		return d
	}

	if p.Full {
		start := vec.Vec2{X: p.Center.X + p.RadiusX, Y: p.Center.Y}
		d = d.MoveTo(start)
		d = arc.AppendEllipseArc(d, p.Center, p.RadiusX, p.RadiusY, 0, 2*math.Pi)
		return d.Close()
	}

	t0, t1 := p.ParametricRange()
	for i, seg := range p.Segments {
		if i == 0 {
			d = d.MoveTo(seg.From)
		}
		switch seg.Kind {
		case SegLine:
			d = d.LineTo(seg.To)
		case SegArc:
			d = arc.AppendEllipseArc(d, p.Center, p.RadiusX, p.RadiusY, t0, t1)
		}
	}
	if p.Wedge {
		d = d.Close()
	}
	return d
}
