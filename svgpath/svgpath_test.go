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

package svgpath

import (
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle/arc"
	"seehuhn.de/go/semicircle/wedge"
)

func TestFormat(t *testing.T) {
	center := vec.Vec2{X: 50, Y: 50}

	cases := []struct {
		name string
		path *wedge.Path
		want string
	}{
		{
			name: "quarter wedge",
			path: wedge.Build(center, center, arc.Canonicalize(0, 90), 20, 20, true),
			want: "M50,50L50,30A20,20 0 0,1 70,50 z",
		},
		{
			name: "reversed quarter wedge",
			path: wedge.Build(center, center, arc.Canonicalize(90, 0), 20, 20, true),
			want: "M50,50L50,30A20,20 0 0,1 70,50 z",
		},
		{
			name: "open half arc",
			path: wedge.Build(center, center, arc.Canonicalize(90, 270), 20, 20, false),
			want: "M70,50A20,20 0 1,1 30,50",
		},
		{
			name: "elliptical wedge",
			path: wedge.Build(center, center, arc.Canonicalize(180, 270), 40, 10, true),
			want: "M50,50L50,60A40,10 0 0,1 10,50 z",
		},
		{
			name: "wedge with separate origin",
			path: wedge.Build(vec.Vec2{X: 0, Y: 0}, center, arc.Canonicalize(90, 180), 10, 10, true),
			want: "M0,0L60,50A10,10 0 0,1 50,60 z",
		},
		{
			name: "full circle",
			path: wedge.Build(center, center, arc.Canonicalize(0, 360), 20, 20, true),
			want: "M30,50a20,20 0 1,0 40,0 a20,20 0 1,0 -40,0 ",
		},
		{
			name: "full ellipse from zero width range",
			path: wedge.Build(center, center, arc.Canonicalize(10, 10), 20, 5, false),
			want: "M30,50a20,5 0 1,0 40,0 a20,5 0 1,0 -40,0 ",
		},
		{
			name: "empty",
			path: wedge.Empty(),
			want: "M0 0",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.path); got != tc.want {
				t.Errorf("Format() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNum(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{-1e-12, "0"},
		{12.5, "12.5"},
		{49.99999999999999, "50"},
		{-3.1415926535, "-3.141593"},
	}
	for _, tc := range cases {
		if got := num(tc.x); got != tc.want {
			t.Errorf("num(%g) = %q, want %q", tc.x, got, tc.want)
		}
	}
}

func TestAdapterAndDocument(t *testing.T) {
	doc := &Document{Width: 100, Height: 80}
	a := &Adapter{Target: doc.Add("#ff0000", "black", 2)}

	center := vec.Vec2{X: 50, Y: 40}
	a.Draw(wedge.Build(center, center, arc.Canonicalize(0, 90), 20, 20, true))

	if doc.Paths[0].D != "M50,40L50,20A20,20 0 0,1 70,40 z" {
		t.Errorf("unexpected path data %q", doc.Paths[0].D)
	}

	buf := &bytes.Buffer{}
	if err := doc.Write(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="80" viewBox="0 0 100 80">`,
		`d="M50,40L50,20A20,20 0 0,1 70,40 z"`,
		`fill="#ff0000"`,
		`stroke="black"`,
		`stroke-width="2"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}
