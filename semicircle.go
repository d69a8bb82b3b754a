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

// Package semicircle implements circles and ellipses restricted to an
// angular range: wedges ("pie slices") and open arcs.
//
// A [Shape] is positioned in world coordinates and drawn in pixel
// coordinates.  The mapping between the two is provided by a [Host].
// Angles are given in degrees, with 0° pointing North and angles increasing
// clockwise.
//
// Shapes are drawn through any [wedge.Consumer], for example the adapters
// in the svgpath, canvas and pdfpage packages.
package semicircle

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle/arc"
	"seehuhn.de/go/semicircle/wedge"
)

// DefaultSpan is the angular width, in degrees, used by SetDirection when
// no span is given.
const DefaultSpan = 10

// Options holds the angular range and the drawing mode of a shape.
type Options struct {
	StartAngle float64 `yaml:"startAngle"`
	StopAngle  float64 `yaml:"stopAngle"`

	// Arc selects an open arc.  If false, the shape is a closed wedge.
	Arc bool `yaml:"arc"`
}

// DefaultOptions returns the options of a shape which covers (almost) the
// full circle.
func DefaultOptions() Options {
	return Options{
		StartAngle: 0,
		StopAngle:  359.9999,
		Arc:        false,
	}
}

// Host maps a shape to the drawing surface.
type Host interface {
	// WorldToPixel maps a point from world coordinates to pixel
	// coordinates.
	WorldToPixel(p vec.Vec2) vec.Vec2

	// ClickTolerance is the slack, in pixels, used for hit testing.
	ClickTolerance() float64

	// Redraw is called after every change of the shape while the shape is
	// attached to the host.
	Redraw(s *Shape)
}

// Viewporter can optionally be implemented by a Host.  Shapes which lie
// entirely outside the viewport are drawn as empty paths.
type Viewporter interface {
	Viewport() rect.Rect
}

// Shape is a wedge or arc of a circle or ellipse.
//
// A Shape is not safe for concurrent use.
type Shape struct {
	center  vec.Vec2
	anchor  *vec.Vec2
	radius  float64
	radiusY float64
	marker  bool
	opts    Options
	host    Host
}

// NewSemiCircle returns a shape whose radius is measured in world units.
// The pixel radii are obtained by mapping the radius along both axes, so
// that non-uniform host transforms give ellipses.
func NewSemiCircle(center vec.Vec2, radius float64, opts Options) *Shape {
	return &Shape{
		center: center,
		radius: radius,
		opts:   opts,
	}
}

// NewSemiCircleMarker returns a shape whose radius is measured in pixels,
// independent of the host transform.  If radiusY is positive, the marker
// is an ellipse with vertical radius radiusY.
func NewSemiCircleMarker(center vec.Vec2, radius, radiusY float64, opts Options) *Shape {
	return &Shape{
		center:  center,
		radius:  radius,
		radiusY: radiusY,
		marker:  true,
		opts:    opts,
	}
}

// AddTo attaches the shape to a host and requests a redraw.
func (s *Shape) AddTo(h Host) *Shape {
	s.host = h
	return s.redraw()
}

// Remove detaches the shape from its host.
func (s *Shape) Remove() *Shape {
	s.host = nil
	return s
}

// Host returns the host the shape is attached to, or nil.
func (s *Shape) Host() Host {
	return s.host
}

func (s *Shape) redraw() *Shape {
	if s.host != nil {
		s.host.Redraw(s)
	}
	return s
}

// Options returns the current options.
func (s *Shape) Options() Options {
	return s.opts
}

// SetStartAngle sets the start of the angular range, in degrees.
func (s *Shape) SetStartAngle(deg float64) *Shape {
	s.opts.StartAngle = deg
	return s.redraw()
}

// SetStopAngle sets the end of the angular range, in degrees.
func (s *Shape) SetStopAngle(deg float64) *Shape {
	s.opts.StopAngle = deg
	return s.redraw()
}

// SetDirection sets the angular range to span degrees centered on the
// given direction.  If span is omitted, DefaultSpan is used.  A zero span
// gives an empty range, which is drawn as a full ellipse.
func (s *Shape) SetDirection(direction float64, span ...float64) *Shape {
	width := float64(DefaultSpan)
	if len(span) > 0 {
		width = span[0]
	}
	s.opts.StartAngle = direction - width/2
	s.opts.StopAngle = direction + width/2
	return s.redraw()
}

// SetArc switches between open arcs (true) and closed wedges (false).
func (s *Shape) SetArc(open bool) *Shape {
	s.opts.Arc = open
	return s.redraw()
}

// SetRadius changes the radius.  The unit is that of the constructor.
func (s *Shape) SetRadius(radius float64) *Shape {
	s.radius = radius
	return s.redraw()
}

// SetCenter moves the shape.
func (s *Shape) SetCenter(center vec.Vec2) *Shape {
	s.center = center
	return s.redraw()
}

// SetAnchor places the apex of the wedge at a point other than the center.
func (s *Shape) SetAnchor(anchor vec.Vec2) *Shape {
	s.anchor = &anchor
	return s.redraw()
}

// Center returns the center in world coordinates.
func (s *Shape) Center() vec.Vec2 {
	return s.center
}

// Radius returns the radius, in world units for shapes created by
// NewSemiCircle and in pixels for markers.
func (s *Shape) Radius() float64 {
	return s.radius
}

// StartAngle returns the smaller of the two range angles, in degrees.
func (s *Shape) StartAngle() float64 {
	return min(s.opts.StartAngle, s.opts.StopAngle)
}

// StopAngle returns the larger of the two range angles, in degrees.
func (s *Shape) StopAngle() float64 {
	return max(s.opts.StartAngle, s.opts.StopAngle)
}

// Direction returns the angle halfway through the range, in degrees.
func (s *Shape) Direction() float64 {
	start, stop := s.StartAngle(), s.StopAngle()
	return stop - (stop-start)/2
}

// Canonical returns the angular range in device space.
func (s *Shape) Canonical() arc.Canonical {
	return arc.Canonicalize(s.opts.StartAngle, s.opts.StopAngle)
}

// IsSemicircle reports whether the shape is drawn as a proper wedge or arc,
// rather than as a full ellipse.
func (s *Shape) IsSemicircle() bool {
	return s.Canonical().IsPartial()
}

// Projection is the pixel-space geometry of a shape.
type Projection struct {
	Center  vec.Vec2
	Origin  vec.Vec2
	RadiusX float64
	RadiusY float64
}

// Project maps the shape to pixel coordinates.  The second return value is
// false if the shape is not attached to a host.
func (s *Shape) Project() (Projection, bool) {
	if s.host == nil {
		return Projection{}, false
	}

	c := s.host.WorldToPixel(s.center)
	pr := Projection{Center: c, Origin: c}
	if s.anchor != nil {
		pr.Origin = s.host.WorldToPixel(*s.anchor)
	}

	if s.marker {
		pr.RadiusX = s.radius
		pr.RadiusY = s.radiusY
		if pr.RadiusY <= 0 {
			pr.RadiusY = pr.RadiusX
		}
	} else {
		ex := s.host.WorldToPixel(s.center.Add(vec.Vec2{X: s.radius}))
		ey := s.host.WorldToPixel(s.center.Add(vec.Vec2{Y: s.radius}))
		pr.RadiusX = ex.Sub(c).Length()
		pr.RadiusY = ey.Sub(c).Length()
	}
	return pr, true
}

// Spec returns the pixel-space parameters of the shape.  The second return
// value is false if the shape is not attached to a host.
func (s *Shape) Spec() (arc.Spec, bool) {
	pr, ok := s.Project()
	if !ok {
		return arc.Spec{}, false
	}
	return arc.Spec{
		StartDeg: s.opts.StartAngle,
		StopDeg:  s.opts.StopAngle,
		RadiusX:  pr.RadiusX,
		RadiusY:  pr.RadiusY,
		Wedge:    !s.opts.Arc,
	}, true
}

// ContainsPoint reports whether the pixel p hits the shape.  The distance
// test uses the horizontal pixel radius, enlarged by the host's click
// tolerance.
func (s *Shape) ContainsPoint(p vec.Vec2) bool {
	pr, ok := s.Project()
	if !ok {
		return false
	}
	return arc.Contains(s.Canonical(), pr.Center, pr.RadiusX, s.host.ClickTolerance(), p)
}

// Path returns the outline of the shape in pixel coordinates.  The path is
// empty if the shape is not attached to a host, or if the host is a
// Viewporter and the shape lies outside the viewport.
func (s *Shape) Path() *wedge.Path {
	pr, ok := s.Project()
	if !ok {
		return wedge.Empty()
	}
	p := wedge.Build(pr.Origin, pr.Center, s.Canonical(), pr.RadiusX, pr.RadiusY, !s.opts.Arc)
	if v, ok := s.host.(Viewporter); ok && !overlaps(p.Bounds(), v.Viewport()) {
		return wedge.Empty()
	}
	return p
}

// Render draws the shape using c.
func (s *Shape) Render(c wedge.Consumer) {
	c.Draw(s.Path())
}

func overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}
