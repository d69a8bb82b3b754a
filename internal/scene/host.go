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

package scene

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle"
)

// Host places shapes on a fixed-size drawing surface.  It implements
// [semicircle.Host] and [semicircle.Viewporter].
type Host struct {
	Transform matrix.Matrix
	Tolerance float64
	Bounds    rect.Rect

	// OnRedraw, if set, is called whenever an attached shape changes.
	OnRedraw func(s *semicircle.Shape)
}

var (
	_ semicircle.Host       = (*Host)(nil)
	_ semicircle.Viewporter = (*Host)(nil)
)

// WorldToPixel applies the transform.
func (h *Host) WorldToPixel(p vec.Vec2) vec.Vec2 {
	m := h.Transform
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func (h *Host) ClickTolerance() float64 {
	return h.Tolerance
}

func (h *Host) Redraw(s *semicircle.Shape) {
	if h.OnRedraw != nil {
		h.OnRedraw(s)
	}
}

func (h *Host) Viewport() rect.Rect {
	return h.Bounds
}
