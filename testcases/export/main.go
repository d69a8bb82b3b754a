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

// Command export writes all test cases to testdata/testcases.json, for use
// by renderers written in other languages.  Each case carries its SVG path
// data and the equivalent path made of lines and cubic Bézier curves.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/semicircle/svgpath"
	"seehuhn.de/go/semicircle/testcases"
)

func main() {
	if err := run("testdata/testcases.json"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fname string) (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	StartAngle float64       `json:"start_angle"`
	StopAngle  float64       `json:"stop_angle"`
	RadiusX    float64       `json:"radius_x"`
	RadiusY    float64       `json:"radius_y"`
	Wedge      bool          `json:"wedge"`
	SVG        string        `json:"svg"`
	Path       []jsonSegment `json:"path"`
	CTM        []float64     `json:"ctm,omitempty"`
	Op         string        `json:"op"`
	FillRule   string        `json:"fill_rule,omitempty"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	p := tc.Path()
	rx, ry := tc.Spec.Radii()
	jtc := jsonTestCase{
		Name:       category + "_" + tc.Name,
		Width:      tc.Width,
		Height:     tc.Height,
		StartAngle: tc.Spec.StartDeg,
		StopAngle:  tc.Spec.StopDeg,
		RadiusX:    rx,
		RadiusY:    ry,
		Wedge:      tc.Spec.Wedge,
		SVG:        svgpath.Format(p),
		Path:       pathToJSON(p.Data().Iter()),
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		if op.Rule == testcases.EvenOdd {
			jtc.FillRule = "evenodd"
		} else {
			jtc.FillRule = "nonzero"
		}
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
	}
	return jtc
}

var cmdNames = map[path.Command]string{
	path.CmdMoveTo: "M",
	path.CmdLineTo: "L",
	path.CmdQuadTo: "Q",
	path.CmdCubeTo: "C",
	path.CmdClose:  "Z",
}

// pathToJSON lists the segments of p, one entry per path command.
func pathToJSON(p path.Path) []jsonSegment {
	segs := []jsonSegment{}
	for cmd, pts := range p {
		coords := make([][]float64, 0, len(pts))
		for _, v := range pts {
			coords = append(coords, []float64{v.X, v.Y})
		}
		segs = append(segs, jsonSegment{Cmd: cmdNames[cmd], Pts: coords})
	}
	return segs
}
