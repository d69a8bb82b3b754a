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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestAppendEllipseArc(t *testing.T) {
	center := vec.Vec2{X: 20, Y: 30}
	const rx, ry = 16.0, 9.0

	cases := []struct {
		name   string
		t0, t1 float64
		curves int
	}{
		{"quarter", 0, math.Pi / 2, 1},
		{"half", -math.Pi / 2, math.Pi / 2, 2},
		{"three quarters plus", 0, 1.6 * math.Pi, 4},
		{"full", 0, 2 * math.Pi, 4},
		{"backwards", math.Pi, 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := ellipsePoint(center, rx, ry, tc.t0)
			d := AppendEllipseArc((&path.Data{}).MoveTo(start), center, rx, ry, tc.t0, tc.t1)

			if len(d.Cmds) != tc.curves+1 {
				t.Fatalf("got %d commands, want %d", len(d.Cmds), tc.curves+1)
			}
			for _, cmd := range d.Cmds[1:] {
				if cmd != path.CmdCubeTo {
					t.Fatalf("unexpected command %v", cmd)
				}
			}

			end := d.Coords[len(d.Coords)-1]
			want := ellipsePoint(center, rx, ry, tc.t1)
			if !near(end.X, want.X) || !near(end.Y, want.Y) {
				t.Errorf("arc ends at %v, want %v", end, want)
			}

			// the midpoint of every cubic stays close to the ellipse
			prev := start
			for i := 1; i+2 < len(d.Coords); i += 3 {
				p1, p2, p3 := d.Coords[i], d.Coords[i+1], d.Coords[i+2]
				mid := prev.Mul(0.125).Add(p1.Mul(0.375)).Add(p2.Mul(0.375)).Add(p3.Mul(0.125))
				q := mid.Sub(center)
				u := math.Sqrt(q.X/rx*q.X/rx + q.Y/ry*q.Y/ry)
				if math.Abs(u-1) > 1e-3 {
					t.Errorf("curve %d midpoint %v is off the ellipse (%g)", i/3, mid, u)
				}
				prev = p3
			}
		})
	}
}

func TestAppendEllipseArcEmpty(t *testing.T) {
	d := (&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 1})
	d = AppendEllipseArc(d, vec.Vec2{}, 1, 1, 0.5, 0.5)
	if len(d.Cmds) != 1 {
		t.Errorf("zero sweep added %d commands", len(d.Cmds)-1)
	}
}
