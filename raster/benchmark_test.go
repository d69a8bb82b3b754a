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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle/arc"
	"seehuhn.de/go/semicircle/wedge"
)

// benchmarkWedge returns a 300° elliptical wedge filling most of a square
// canvas of the given size.
func benchmarkWedge(size int) *path.Data {
	c := float64(size) / 2
	center := vec.Vec2{X: c, Y: c}
	p := wedge.Build(center, center, arc.Canonicalize(30, 330), 0.45*float64(size), 0.3*float64(size), true)
	return p.Data()
}

// BenchmarkRasterizerWedge benchmarks our rasterizer filling a wedge.
func BenchmarkRasterizerWedge(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			d := benchmarkWedge(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(d, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorWedge benchmarks x/image/vector filling the same wedge.
func BenchmarkVectorWedge(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})
			d := benchmarkWedge(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addToVector(r, d)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeWedge benchmarks stroking the outline of a wedge.
func BenchmarkStrokeWedge(b *testing.B) {
	const size = 200
	clip := rect.Rect{URx: size, URy: size}
	r := NewRasterizer(clip)
	d := benchmarkWedge(size)
	emit := func(y, xMin int, coverage []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Width = 3
		r.Stroke(d, emit)
	}
}

// addToVector replays a path on a vector.Rasterizer.
func addToVector(r *vector.Rasterizer, d *path.Data) {
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p := d.Coords[k]
			r.MoveTo(float32(p.X), float32(p.Y))
			k++
		case path.CmdLineTo:
			p := d.Coords[k]
			r.LineTo(float32(p.X), float32(p.Y))
			k++
		case path.CmdQuadTo:
			p, q := d.Coords[k], d.Coords[k+1]
			r.QuadTo(float32(p.X), float32(p.Y), float32(q.X), float32(q.Y))
			k += 2
		case path.CmdCubeTo:
			p, q, s := d.Coords[k], d.Coords[k+1], d.Coords[k+2]
			r.CubeTo(float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), float32(s.X), float32(s.Y))
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

// TestAgainstVector compares our coverage with x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 64
	d := benchmarkWedge(size)

	ours := image.NewAlpha(image.Rect(0, 0, size, size))
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.Flatness = 0.05
	r.FillNonZero(d, func(y, xMin int, coverage []float32) {
		row := ours.Pix[y*ours.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
	})

	theirs := image.NewAlpha(image.Rect(0, 0, size, size))
	v := vector.NewRasterizer(size, size)
	addToVector(v, d)
	v.Draw(theirs, theirs.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})

	bad := 0
	for i := range ours.Pix {
		diff := int(ours.Pix[i]) - int(theirs.Pix[i])
		if diff > 32 || diff < -32 {
			bad++
		}
	}
	if bad > size*size/100 {
		t.Errorf("%d of %d pixels differ by more than 32 levels", bad, size*size)
	}
}
