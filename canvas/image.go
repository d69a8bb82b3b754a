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

package canvas

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/semicircle/arc"
	"seehuhn.de/go/semicircle/raster"
)

// Image is a Context which paints into an RGBA image.
//
// As in the HTML canvas, the current transform is applied to the
// coordinates when the path is built, so that later changes of the
// transform do not affect path segments already added.  The line width is
// scaled by the transform in effect when Stroke is called.
type Image struct {
	Dst *image.RGBA

	FillColor   color.Color
	StrokeColor color.Color
	LineWidth   float64
	Cap         graphics.LineCapStyle
	Join        graphics.LineJoinStyle

	ctm   matrix.Matrix
	stack []matrix.Matrix
	path  *path.Data
	arc   *path.Data
	r     *raster.Rasterizer
}

var _ Context = (*Image)(nil)

// NewImage returns a context which draws into dst, using black for
// filling and stroking and a line width of 1.
func NewImage(dst *image.RGBA) *Image {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Image{
		Dst:         dst,
		FillColor:   color.Black,
		StrokeColor: color.Black,
		LineWidth:   1,
		Cap:         graphics.LineCapButt,
		Join:        graphics.LineJoinMiter,
		ctm:         matrix.Identity,
		path:        &path.Data{},
		arc:         &path.Data{},
		r:           raster.NewRasterizer(clip),
	}
}

// Save pushes the current transform.
func (c *Image) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the transform pushed by the matching Save.  Unbalanced calls
// are ignored.
func (c *Image) Restore() {
	if n := len(c.stack); n > 0 {
		c.ctm = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Scale scales user space by sx horizontally and sy vertically.
func (c *Image) Scale(sx, sy float64) {
	m := c.ctm
	c.ctm = matrix.Matrix{m[0] * sx, m[1] * sx, m[2] * sy, m[3] * sy, m[4], m[5]}
}

// BeginPath discards the current path.
func (c *Image) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
}

// MoveTo starts a new subpath.
func (c *Image) MoveTo(x, y float64) {
	c.path = c.path.MoveTo(c.apply(vec.Vec2{X: x, Y: y}))
}

// LineTo adds a straight line.  Without a current point it acts like
// MoveTo.
func (c *Image) LineTo(x, y float64) {
	p := c.apply(vec.Vec2{X: x, Y: y})
	if len(c.path.Cmds) == 0 {
		c.path = c.path.MoveTo(p)
		return
	}
	c.path = c.path.LineTo(p)
}

// Arc adds a circular arc.  Clockwise arcs whose angles differ by at least
// 2π, and counterclockwise arcs whose angles differ by at most -2π, are full
// circles.  Otherwise the sweep is reduced modulo 2π.
func (c *Image) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	var sweep float64
	if counterclockwise {
		if startAngle-endAngle >= 2*math.Pi {
			sweep = -2 * math.Pi
		} else {
			sweep = -positiveMod(startAngle-endAngle, 2*math.Pi)
		}
	} else {
		if endAngle-startAngle >= 2*math.Pi {
			sweep = 2 * math.Pi
		} else {
			sweep = positiveMod(endAngle-startAngle, 2*math.Pi)
		}
	}

	center := vec.Vec2{X: x, Y: y}
	sin, cos := math.Sincos(startAngle)
	start := vec.Vec2{X: x + radius*cos, Y: y + radius*sin}

	// Build the arc in user space, then map all control points to device
	// space.  Affine maps preserve Bézier curves.
	c.arc.Cmds = c.arc.Cmds[:0]
	c.arc.Coords = c.arc.Coords[:0]
	c.arc = c.arc.MoveTo(start)
	c.arc = arc.AppendEllipseArc(c.arc, center, radius, radius, startAngle, startAngle+sweep)

	if len(c.path.Cmds) == 0 {
		c.path = c.path.MoveTo(c.apply(start))
	} else {
		c.path = c.path.LineTo(c.apply(start))
	}
	c.path.Cmds = append(c.path.Cmds, c.arc.Cmds[1:]...)
	for _, p := range c.arc.Coords[1:] {
		c.path.Coords = append(c.path.Coords, c.apply(p))
	}
}

// Fill fills the current path with FillColor, using the nonzero winding
// rule.
func (c *Image) Fill() {
	c.r.CTM = matrix.Identity
	c.r.FillNonZero(c.path, c.painter(c.FillColor))
}

// Stroke strokes the current path with StrokeColor.
func (c *Image) Stroke() {
	c.r.CTM = matrix.Identity
	c.r.Width = c.LineWidth * math.Sqrt(math.Abs(c.ctm[0]*c.ctm[3]-c.ctm[1]*c.ctm[2]))
	c.r.Cap = c.Cap
	c.r.Join = c.Join
	c.r.Stroke(c.path, c.painter(c.StrokeColor))
}

// apply maps a point from user space to device space.
func (c *Image) apply(p vec.Vec2) vec.Vec2 {
	m := c.ctm
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// painter returns an emit function which composites col over the
// destination, weighted by the coverage.
func (c *Image) painter(col color.Color) raster.EmitFunc {
	sr, sg, sb, sa := col.RGBA()
	return func(y, xMin int, coverage []float32) {
		off := c.Dst.PixOffset(xMin, y)
		pix := c.Dst.Pix[off : off+4*len(coverage)]
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			a := float64(min(cov, 1))
			p := pix[4*i : 4*i+4]
			inv := 1 - float64(sa)/0xffff*a
			p[0] = blend(p[0], sr, a, inv)
			p[1] = blend(p[1], sg, a, inv)
			p[2] = blend(p[2], sb, a, inv)
			p[3] = blend(p[3], sa, a, inv)
		}
	}
}

// blend computes one channel of premultiplied source-over compositing.
func blend(dst uint8, src uint32, a, inv float64) uint8 {
	v := float64(src)/0xffff*255*a + float64(dst)*inv
	return uint8(min(max(math.Round(v), 0), 255))
}

func positiveMod(x, m float64) float64 {
	x = math.Mod(x, m)
	if x < 0 {
		x += m
	}
	return x
}
