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

// Package pdfpage draws wedges into PDF content streams.
//
// The wedge outline is converted to lines and cubic Bézier curves, the only
// curve type supported by PDF.  Coordinates are passed through unchanged;
// callers which use a top-left origin must install a y-flip transform on
// the page first.
package pdfpage

import (
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/semicircle/wedge"
)

// Writer receives path construction and painting operators.
// [seehuhn.de/go/pdf/document.Page] implements this interface.
type Writer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Fill()
	Stroke()
}

// Style selects the painting operators.
type Style struct {
	Fill   bool
	Stroke bool
}

// Adapter draws wedge paths using a Writer.  It implements
// [wedge.Consumer].
type Adapter struct {
	W     Writer
	Style Style
}

// Draw emits the path of p followed by a painting operator.  If both
// filling and stroking are selected, the path is emitted twice, since the
// fill must be painted before the stroke.  Nothing is emitted for empty
// paths.
func (a *Adapter) Draw(p *wedge.Path) {
	if p.Empty {
		return
	}

	d := p.Data()
	if a.Style.Fill {
		WritePath(a.W, d)
		a.W.Fill()
	}
	if a.Style.Stroke {
		WritePath(a.W, d)
		a.W.Stroke()
	}
}

// WritePath emits the path construction operators for d.  Quadratic
// segments are converted to cubic ones.
func WritePath(w Writer, d *path.Data) {
	for cmd, pts := range d.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			w.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			w.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			w.ClosePath()
		}
	}
}
