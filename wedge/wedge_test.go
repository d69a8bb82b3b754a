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

package wedge

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle/arc"
)

func near(a, b vec.Vec2) bool {
	return a.Sub(b).Length() < 1e-9
}

func TestBuildQuarterWedge(t *testing.T) {
	center := vec.Vec2{X: 50, Y: 50}
	p := Build(center, center, arc.Canonicalize(0, 90), 20, 20, true)

	if p.Full || p.Empty {
		t.Fatalf("unexpected flags: full=%t empty=%t", p.Full, p.Empty)
	}
	if len(p.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(p.Segments))
	}

	north := vec.Vec2{X: 50, Y: 30}
	east := vec.Vec2{X: 70, Y: 50}
	want := []Segment{
		{Kind: SegLine, From: center, To: north},
		{Kind: SegArc, From: north, To: east},
		{Kind: SegLine, From: east, To: center},
	}
	for i, seg := range p.Segments {
		w := want[i]
		if seg.Kind != w.Kind || !near(seg.From, w.From) || !near(seg.To, w.To) {
			t.Errorf("segment %d = %v %v→%v, want %v %v→%v",
				i, seg.Kind, seg.From, seg.To, w.Kind, w.From, w.To)
		}
		if seg.LargeArc {
			t.Errorf("segment %d: quarter arc marked as large", i)
		}
	}
}

func TestBuildOpenArc(t *testing.T) {
	center := vec.Vec2{X: 0, Y: 0}
	origin := vec.Vec2{X: 5, Y: 5}
	p := Build(origin, center, arc.Canonicalize(90, 270), 10, 10, false)

	if len(p.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(p.Segments))
	}
	seg := p.Segments[0]
	if seg.Kind != SegArc {
		t.Fatalf("got %v, want arc", seg.Kind)
	}
	if !near(seg.From, vec.Vec2{X: 10, Y: 0}) || !near(seg.To, vec.Vec2{X: -10, Y: 0}) {
		t.Errorf("arc runs %v→%v", seg.From, seg.To)
	}
	if !seg.LargeArc {
		t.Error("half turn should use the large arc flag")
	}
}

func TestBuildLargeArcFlag(t *testing.T) {
	cases := []struct {
		start, stop float64
		large       bool
	}{
		{0, 90, false},
		{0, 179, false},
		{0, 180, true},
		{10, 300, true},
		{300, 10, true}, // reversed order selects 10..300
		{-10, 10, false},
	}
	for _, tc := range cases {
		p := Build(vec.Vec2{}, vec.Vec2{}, arc.Canonicalize(tc.start, tc.stop), 10, 10, true)
		if got := p.Segments[1].LargeArc; got != tc.large {
			t.Errorf("%g..%g: large arc = %t, want %t", tc.start, tc.stop, got, tc.large)
		}
	}
}

func TestBuildFull(t *testing.T) {
	for _, c := range []arc.Canonical{arc.Canonicalize(0, 360), arc.Canonicalize(45, 45)} {
		p := Build(vec.Vec2{}, vec.Vec2{X: 1, Y: 2}, c, 3, 4, true)
		if !p.Full {
			t.Errorf("%v: expected full ellipse", c)
		}
		if len(p.Segments) != 0 {
			t.Errorf("%v: full ellipse has %d segments", c, len(p.Segments))
		}
	}
}

func TestBuildClampsRadii(t *testing.T) {
	p := Build(vec.Vec2{}, vec.Vec2{}, arc.Canonicalize(0, 90), 0, 0, true)
	if p.RadiusX != 1 || p.RadiusY != 1 {
		t.Errorf("radii = %g, %g, want 1, 1", p.RadiusX, p.RadiusY)
	}
	if s := p.ScaleY(); s != 1 || math.IsNaN(s) {
		t.Errorf("ScaleY() = %g", s)
	}
}

func TestParametricRange(t *testing.T) {
	cases := []struct {
		start, stop float64
		rx, ry      float64
	}{
		{0, 90, 10, 10},
		{0, 90, 30, 10},
		{170, 190, 30, 10},
		{-100, 100, 5, 20},
		{10, 350, 12, 7},
	}
	for _, tc := range cases {
		c := arc.Canonicalize(tc.start, tc.stop)
		p := Build(vec.Vec2{}, vec.Vec2{}, c, tc.rx, tc.ry, false)
		t0, t1 := p.ParametricRange()
		if t1 < t0 || t1 >= t0+2*math.Pi {
			t.Errorf("%g..%g: range [%g, %g] not normalised", tc.start, tc.stop, t0, t1)
		}
		// both ends map to the arc end points
		from := vec.Vec2{X: tc.rx * math.Cos(t0), Y: tc.ry * math.Sin(t0)}
		to := vec.Vec2{X: tc.rx * math.Cos(t1), Y: tc.ry * math.Sin(t1)}
		if !near(from, p.Segments[0].From) || !near(to, p.Segments[0].To) {
			t.Errorf("%g..%g: range does not match the edge points", tc.start, tc.stop)
		}
		// the large arc flag agrees with the parametric sweep
		if (t1-t0 >= math.Pi) != p.Segments[0].LargeArc {
			t.Errorf("%g..%g: parametric sweep %g disagrees with large arc flag", tc.start, tc.stop, t1-t0)
		}
	}
}

func TestBounds(t *testing.T) {
	p := Build(vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 10, Y: 20}, arc.Canonicalize(0, 90), 5, 3, true)
	b := p.Bounds()
	if b.LLx != 5 || b.LLy != 0 || b.URx != 100 || b.URy != 23 {
		t.Errorf("Bounds() = %v", b)
	}

	p = Build(vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 10, Y: 20}, arc.Canonicalize(0, 90), 5, 3, false)
	b = p.Bounds()
	if b.LLx != 5 || b.LLy != 17 || b.URx != 15 || b.URy != 23 {
		t.Errorf("open arc Bounds() = %v", b)
	}
}

func TestData(t *testing.T) {
	center := vec.Vec2{X: 32, Y: 32}

	wedge := Build(center, center, arc.Canonicalize(0, 90), 20, 20, true).Data()
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdCubeTo, path.CmdLineTo, path.CmdClose}
	checkCmds(t, "wedge", wedge, wantCmds)

	open := Build(center, center, arc.Canonicalize(0, 180), 20, 20, false).Data()
	checkCmds(t, "arc", open, []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo})

	full := Build(center, center, arc.Canonicalize(0, 360), 20, 10, true).Data()
	checkCmds(t, "full", full, []path.Command{
		path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose,
	})

	if d := Empty().Data(); len(d.Cmds) != 0 {
		t.Errorf("empty path has %d commands", len(d.Cmds))
	}
}

func checkCmds(t *testing.T, name string, d *path.Data, want []path.Command) {
	t.Helper()
	if len(d.Cmds) != len(want) {
		t.Errorf("%s: got %d commands %v, want %v", name, len(d.Cmds), d.Cmds, want)
		return
	}
	for i := range want {
		if d.Cmds[i] != want[i] {
			t.Errorf("%s: command %d is %v, want %v", name, i, d.Cmds[i], want[i])
		}
	}
}
