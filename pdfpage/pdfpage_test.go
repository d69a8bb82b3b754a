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

package pdfpage

import (
	"fmt"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle/arc"
	"seehuhn.de/go/semicircle/wedge"
)

// opWriter records PDF operator names.
type opWriter struct {
	ops  []string
	last vec.Vec2
}

func (w *opWriter) MoveTo(x, y float64) {
	w.ops = append(w.ops, "m")
	w.last = vec.Vec2{X: x, Y: y}
}

func (w *opWriter) LineTo(x, y float64) {
	w.ops = append(w.ops, "l")
	w.last = vec.Vec2{X: x, Y: y}
}

func (w *opWriter) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	w.ops = append(w.ops, "c")
	w.last = vec.Vec2{X: x3, Y: y3}
}

func (w *opWriter) ClosePath() { w.ops = append(w.ops, "h") }
func (w *opWriter) Fill()      { w.ops = append(w.ops, "f") }
func (w *opWriter) Stroke()    { w.ops = append(w.ops, "S") }

func TestAdapter(t *testing.T) {
	center := vec.Vec2{X: 50, Y: 50}
	quarter := wedge.Build(center, center, arc.Canonicalize(0, 90), 20, 20, true)
	openArc := wedge.Build(center, center, arc.Canonicalize(90, 270), 20, 20, false)
	full := wedge.Build(center, center, arc.Canonicalize(0, 360), 20, 10, true)

	cases := []struct {
		p     *wedge.Path
		style Style
		want  []string
	}{
		{quarter, Style{Fill: true}, []string{"m", "l", "c", "l", "h", "f"}},
		{quarter, Style{Stroke: true}, []string{"m", "l", "c", "l", "h", "S"}},
		{quarter, Style{Fill: true, Stroke: true}, []string{"m", "l", "c", "l", "h", "f", "m", "l", "c", "l", "h", "S"}},
		{openArc, Style{Stroke: true}, []string{"m", "c", "c", "S"}},
		{full, Style{Fill: true}, []string{"m", "c", "c", "c", "c", "h", "f"}},
		{quarter, Style{}, nil},
		{wedge.Empty(), Style{Fill: true}, nil},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			w := &opWriter{}
			a := &Adapter{W: w, Style: tc.style}
			a.Draw(tc.p)
			if !slices.Equal(w.ops, tc.want) {
				t.Errorf("got %v, want %v", w.ops, tc.want)
			}
		})
	}
}

func TestWritePathEndPoint(t *testing.T) {
	center := vec.Vec2{X: 50, Y: 50}
	p := wedge.Build(center, center, arc.Canonicalize(0, 90), 20, 20, false)

	w := &opWriter{}
	WritePath(w, p.Data())
	want := vec.Vec2{X: 70, Y: 50}
	if d := w.last.Sub(want).Length(); d > 1e-9 {
		t.Errorf("arc ends at %v, want %v", w.last, want)
	}
}
