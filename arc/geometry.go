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

// Package arc implements the angle and ellipse geometry of partial ellipses.
//
// Angles passed in by callers are in degrees, with 0° pointing North (up)
// and angles increasing clockwise.  Internally, angles are in radians in the
// usual device-space convention, where the y-axis points down: 0 points to
// the right and positive angles turn clockwise on screen.
package arc

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Spec holds the parameters of a partial ellipse.
type Spec struct {
	StartDeg float64 // start of the angular range, in degrees
	StopDeg  float64 // end of the angular range, in degrees
	RadiusX  float64 // must be positive
	RadiusY  float64 // zero or negative means RadiusY = RadiusX
	Wedge    bool    // closed wedge (true) or open arc (false)
}

// Radii returns the horizontal and vertical radius, with a non-positive
// RadiusY replaced by RadiusX.
func (s Spec) Radii() (rx, ry float64) {
	rx, ry = s.RadiusX, s.RadiusY
	if ry <= 0 {
		ry = rx
	}
	return rx, ry
}

// Canonical returns the canonical form of the angular range of s.
func (s Spec) Canonical() Canonical {
	return Canonicalize(s.StartDeg, s.StopDeg)
}

// FixAngle converts a compass angle in degrees (0 = North, clockwise) to
// radians in device space.
func FixAngle(deg float64) float64 {
	return (deg - 90) * math.Pi / 180
}

// Canonical is a directed angular range in device space.
// The arc always runs clockwise (on screen) from Low to High.
type Canonical struct {
	Low, High float64 // radians, Low <= High
}

// Canonicalize converts the angles to radians and orders them, so that the
// result does not depend on which endpoint is labelled "start".
func Canonicalize(startDeg, stopDeg float64) Canonical {
	if startDeg > stopDeg {
		startDeg, stopDeg = stopDeg, startDeg
	}
	return Canonical{Low: FixAngle(startDeg), High: FixAngle(stopDeg)}
}

// Sweep returns the swept angle High-Low in radians.
func (c Canonical) Sweep() float64 {
	return c.High - c.Low
}

// Mid returns the angle halfway between Low and High.
func (c Canonical) Mid() float64 {
	return c.High - (c.High-c.Low)/2
}

// FullTurnSlack is the amount, in radians, by which a range may fall short
// of a full turn and still count as a full turn.  This makes ranges like
// 0° to 359.9999° full ellipses.
const FullTurnSlack = 1e-3 * math.Pi / 180

// IsPartial reports whether c describes a proper part of the ellipse.
// Ranges covering a full turn (up to FullTurnSlack) and zero-width ranges
// are not partial; such shapes are drawn as full ellipses.
func (c Canonical) IsPartial() bool {
	return c.Sweep() < 2*math.Pi-FullTurnSlack && c.Low != c.High
}

// Normalize folds an angle into the interval (-π, π].
func Normalize(angle float64) float64 {
	a := math.Remainder(angle, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// ContainsAngle reports whether the direction angle lies inside the range.
// The range is half-open: Low is excluded and High is included.
// If c is not partial, every angle is contained.
func (c Canonical) ContainsAngle(angle float64) bool {
	if !c.IsPartial() {
		return true
	}
	lo := Normalize(c.Low)
	hi := Normalize(c.High)
	if hi <= lo {
		hi += 2 * math.Pi
	}
	angle = Normalize(angle)
	if angle <= lo {
		angle += 2 * math.Pi
	}
	return lo < angle && angle <= hi
}

// Contains reports whether p lies inside the wedge with the given center.
// The distance check uses the single radius, enlarged by tolerance; the
// vertical radius of an ellipse is not taken into account.
func Contains(c Canonical, center vec.Vec2, radius, tolerance float64, p vec.Vec2) bool {
	d := p.Sub(center)
	if !c.ContainsAngle(math.Atan2(d.Y, d.X)) {
		return false
	}
	return d.Length() <= radius+tolerance
}

// ParametricAngle converts the direction angle of a ray from the center of
// an axis-aligned ellipse into the parameter t of the point where the ray
// meets the ellipse (rx·cos t, ry·sin t).  Unless cos(angle) is zero, the
// result lies in (-π/2, 3π/2).
func ParametricAngle(angle, rx, ry float64) float64 {
	cos := math.Cos(angle)
	if cos == 0 {
		return angle
	}
	t := math.Atan(rx / ry * math.Tan(angle))
	if cos < 0 {
		t += math.Pi
	}
	return t
}

// EdgePoint returns the point where the ray from center in direction angle
// meets the ellipse with radii rx and ry.
func EdgePoint(center vec.Vec2, angle, rx, ry float64) vec.Vec2 {
	t := ParametricAngle(angle, rx, ry)
	return center.Add(vec.Vec2{X: math.Cos(t) * rx, Y: math.Sin(t) * ry})
}

// MinRadius is the smallest radius used for drawing, in device units.
const MinRadius = 1

// ClampRadius raises r to at least MinRadius.
func ClampRadius(r float64) float64 {
	if !(r >= MinRadius) { // also catches NaN
		return MinRadius
	}
	return r
}
