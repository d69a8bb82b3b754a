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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The stroke is built as a union of polygons: one quadrilateral for every
// flattened line segment, plus join and cap geometry.  All polygons are
// oriented the same way and filled together with the nonzero rule, so that
// overlapping parts are painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flattenSubpaths(p)

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]
	d := r.Width / 2
	for i := range r.flatOffsets {
		pts, closed := r.subpath(i)
		r.strokeSubpath(pts, closed, d)
	}

	r.resetEdges()
	for i := range r.strokeOffsets {
		poly := r.polygon(i)
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.fillEdges(fillNonZero, emit)
}

// flattenSubpaths converts p into polylines, dropping zero-length segments.
func (r *Rasterizer) flattenSubpaths(p *path.Data) {
	r.flat = r.flat[:0]
	r.flatOffsets = r.flatOffsets[:0]
	r.flatClosed = r.flatClosed[:0]

	var current, start vec.Vec2
	appendPoint := func(a, b vec.Vec2) {
		if len(r.flatOffsets) == 0 {
			// drawing without a preceding MoveTo starts at the origin
			r.flatOffsets = append(r.flatOffsets, 0)
			r.flatClosed = append(r.flatClosed, false)
			r.flat = append(r.flat, a)
		}
		last := r.flat[len(r.flat)-1]
		if b.Sub(last).Length() >= zeroLengthThreshold {
			r.flat = append(r.flat, b)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			r.flatOffsets = append(r.flatOffsets, len(r.flat))
			r.flatClosed = append(r.flatClosed, false)
			r.flat = append(r.flat, current)
			k++
		case path.CmdLineTo:
			appendPoint(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], appendPoint)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], appendPoint)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if len(r.flatOffsets) > 0 {
				r.flatClosed[len(r.flatClosed)-1] = true
			}
			current = start
		}
	}
}

// subpath returns the points of flattened subpath i.  For closed subpaths,
// a final point equal to the first one is removed.
func (r *Rasterizer) subpath(i int) ([]vec.Vec2, bool) {
	end := len(r.flat)
	if i+1 < len(r.flatOffsets) {
		end = r.flatOffsets[i+1]
	}
	pts := r.flat[r.flatOffsets[i]:end]
	closed := r.flatClosed[i]
	if closed && len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}
	return pts, closed
}

// polygon returns stroke polygon i.
func (r *Rasterizer) polygon(i int) []vec.Vec2 {
	end := len(r.stroke)
	if i+1 < len(r.strokeOffsets) {
		end = r.strokeOffsets[i+1]
	}
	return r.stroke[r.strokeOffsets[i]:end]
}

// strokeSubpath adds the stroke polygons for one polyline.
// d is half the line width.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		// a lone point has no direction; only round caps are visible
		if r.Cap == graphics.LineCapRound {
			r.addCircle(pts[0], d)
		}
		return
	}

	n := len(pts)
	numSegs := n - 1
	if closed {
		numSegs = n
	}
	for i := range numSegs {
		a, b := pts[i], pts[(i+1)%n]
		t := unit(b.Sub(a))
		nv := normal(t).Mul(d)
		r.addPolygon(a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	// joins
	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		r.addJoin(pts[i], unit(pts[i].Sub(prev)), unit(next.Sub(pts[i])), d)
	}

	if !closed {
		r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
		r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
	}
}

// addJoin adds the join geometry at P, where a segment with direction t1
// meets a segment with direction t2.
func (r *Rasterizer) addJoin(P, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return // straight continuation
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(P, d)
		return
	}

	// The outer side of the corner is where the offset lines diverge.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := normal(t1).Mul(side)
	n2 := normal(t2).Mul(side)
	a := P.Add(n1.Mul(d))
	b := P.Add(n2.Mul(d))

	if r.Join == graphics.LineJoinMiter {
		// miter length relative to the line width is 1/cos(α/2), where α
		// is the angle between the two normals
		cosHalf := math.Sqrt(max(0, (1+n1.X*n2.X+n1.Y*n2.Y)/2))
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit {
			tip := P.Add(n1.Add(n2).Mul(d / (2 * cosHalf * cosHalf)))
			r.addPolygon(P, a, tip, b)
			return
		}
	}
	r.addPolygon(P, a, b)
}

// addCap adds the cap at the end point P of an open subpath.
// t points away from the subpath.
func (r *Rasterizer) addCap(P, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		nv := normal(t).Mul(d)
		ext := P.Add(t.Mul(d))
		r.addPolygon(P.Add(nv), ext.Add(nv), ext.Sub(nv), P.Sub(nv))
	}
}

// addCircle adds a polygon approximating the circle with the given center
// and radius.  The number of vertices depends on the device space radius
// and the flatness tolerance.
func (r *Rasterizer) addCircle(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)
	n := 8
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.stroke)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.stroke = append(r.stroke, center.Add(vec.Vec2{X: cos * radius, Y: sin * radius}))
	}
	r.finishPolygon(start)
}

// addPolygon adds a polygon with the given vertices.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	start := len(r.stroke)
	r.stroke = append(r.stroke, pts...)
	r.finishPolygon(start)
}

// finishPolygon records the polygon starting at r.stroke[start], making
// sure it has positive orientation.  Degenerate polygons are discarded.
func (r *Rasterizer) finishPolygon(start int) {
	poly := r.stroke[start:]
	var area float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	if len(poly) < 3 || math.Abs(area) < zeroLengthThreshold {
		r.stroke = r.stroke[:start]
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.strokeOffsets = append(r.strokeOffsets, start)
}

// unit returns v scaled to length 1.
func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}

// normal returns t rotated by 90 degrees.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}
