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

// Package svgpath serialises wedges into SVG path data.
package svgpath

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/semicircle/wedge"
)

// Setter receives serialised path data, for example an SVG path element.
type Setter interface {
	SetPath(d string)
}

// Adapter is a [wedge.Consumer] which sets the path data of Target.
type Adapter struct {
	Target Setter
}

// Draw implements the [wedge.Consumer] interface.
func (a *Adapter) Draw(p *wedge.Path) {
	a.Target.SetPath(Format(p))
}

// emptyPath is used for shapes which are not visible.
// Some renderers misbehave if the path data is the empty string.
const emptyPath = "M0 0"

// Format returns the SVG path data for p.
func Format(p *wedge.Path) string {
	if p.Empty {
		return emptyPath
	}

	rx, ry := num(p.RadiusX), num(p.RadiusY)

	b := &strings.Builder{}
	if p.Full {
		// two half ellipses, starting at the leftmost point
		b.WriteString("M")
		writePoint(b, p.Center.X-p.RadiusX, p.Center.Y)
		for _, dx := range []float64{2 * p.RadiusX, -2 * p.RadiusX} {
			b.WriteString("a" + rx + "," + ry + " 0 1,0 ")
			b.WriteString(num(dx) + ",0 ")
		}
		return b.String()
	}

	for i, seg := range p.Segments {
		if i == 0 {
			b.WriteString("M")
			writePoint(b, seg.From.X, seg.From.Y)
		}
		switch seg.Kind {
		case wedge.SegLine:
			if p.Wedge && i == len(p.Segments)-1 && seg.To == p.Origin {
				continue // closepath draws the final line
			}
			b.WriteString("L")
			writePoint(b, seg.To.X, seg.To.Y)
		case wedge.SegArc:
			large := "0"
			if seg.LargeArc {
				large = "1"
			}
			b.WriteString("A" + rx + "," + ry + " 0 " + large + ",1 ")
			writePoint(b, seg.To.X, seg.To.Y)
		}
	}
	if p.Wedge {
		b.WriteString(" z")
	}
	return b.String()
}

func writePoint(b *strings.Builder, x, y float64) {
	b.WriteString(num(x))
	b.WriteByte(',')
	b.WriteString(num(y))
}

// num formats a coordinate with at most six decimal places, dropping
// trailing zeros.
func num(x float64) string {
	x = math.Round(x*1e6) / 1e6
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
