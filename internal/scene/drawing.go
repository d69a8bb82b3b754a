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

package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/semicircle"
	"seehuhn.de/go/semicircle/canvas"
	"seehuhn.de/go/semicircle/pdfpage"
	"seehuhn.de/go/semicircle/svgpath"
)

// Item is a shape of a drawing together with its paint.
type Item struct {
	Name  string
	Shape *semicircle.Shape

	Fill, Stroke       color.RGBA
	HasFill, HasStroke bool
	StrokeWidth        float64
}

// Drawing is a scene whose shapes are attached to a host.
type Drawing struct {
	Width, Height int
	Background    color.RGBA
	Host          *Host
	Items         []Item
}

// Build creates the shapes of the scene and attaches them to a new host.
func (sc *Scene) Build(set *Settings) (*Drawing, error) {
	bg, hasBG, err := ParseColor(sc.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if !hasBG {
		bg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	d := &Drawing{
		Width:      sc.Width,
		Height:     sc.Height,
		Background: bg,
		Host: &Host{
			Transform: sc.View.Matrix(),
			Tolerance: set.ClickTolerance,
			Bounds:    rect.Rect{URx: float64(sc.Width), URy: float64(sc.Height)},
		},
	}

	for i := range sc.Shapes {
		spec := &sc.Shapes[i]
		shape, err := spec.NewShape()
		if err != nil {
			return nil, err
		}

		item := Item{
			Name:        spec.Name,
			Shape:       shape,
			StrokeWidth: spec.StrokeWidth,
		}
		if item.Name == "" {
			item.Name = fmt.Sprintf("shape%d", i+1)
		}
		item.Fill, item.HasFill, err = ParseColor(spec.Fill)
		if err != nil {
			return nil, fmt.Errorf("%s: fill: %w", item.Name, err)
		}
		item.Stroke, item.HasStroke, err = ParseColor(spec.Stroke)
		if err != nil {
			return nil, fmt.Errorf("%s: stroke: %w", item.Name, err)
		}
		if !item.HasFill && !item.HasStroke {
			item.Stroke, item.HasStroke = color.RGBA{R: 0, G: 0, B: 0, A: 255}, true
		}

		shape.AddTo(d.Host)
		d.Items = append(d.Items, item)
	}
	return d, nil
}

// HitTest returns the names of all shapes containing the pixel p, topmost
// first.
func (d *Drawing) HitTest(p vec.Vec2) []string {
	var names []string
	for i := len(d.Items) - 1; i >= 0; i-- {
		if d.Items[i].Shape.ContainsPoint(p) {
			names = append(names, d.Items[i].Name)
		}
	}
	return names
}

// WriteSVG writes the drawing as an SVG file.
func (d *Drawing) WriteSVG(w io.Writer) error {
	doc := &svgpath.Document{Width: d.Width, Height: d.Height}
	bg := doc.Add(hexColor(d.Background), "", 0)
	bg.D = fmt.Sprintf("M0,0H%dV%dH0z", d.Width, d.Height)

	for _, item := range d.Items {
		var fill, stroke string
		if item.HasFill {
			fill = hexColor(item.Fill)
		}
		if item.HasStroke {
			stroke = hexColor(item.Stroke)
		}
		el := doc.Add(fill, stroke, item.StrokeWidth)
		item.Shape.Render(&svgpath.Adapter{Target: el})
	}
	return doc.Write(w)
}

// Image rasterizes the drawing.
func (d *Drawing) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(d.Background), image.Point{}, draw.Src)

	ctx := canvas.NewImage(img)
	for _, item := range d.Items {
		ctx.FillColor = item.Fill
		ctx.StrokeColor = item.Stroke
		ctx.LineWidth = item.StrokeWidth
		a := &canvas.Adapter{
			Ctx:   ctx,
			Style: canvas.Style{Fill: item.HasFill, Stroke: item.HasStroke},
		}
		item.Shape.Render(a)
	}
	return img
}

// WritePNG writes the rasterized drawing as a PNG image.
func (d *Drawing) WritePNG(w io.Writer) error {
	return png.Encode(w, d.Image())
}

// WritePDF writes the drawing as a single-page PDF file.  Colors are
// converted to gray levels.
func (d *Drawing) WritePDF(fname string) error {
	paper := &pdf.Rectangle{URx: float64(d.Width), URy: float64(d.Height)}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(gray(d.Background)))
	page.Rectangle(0, 0, float64(d.Width), float64(d.Height))
	page.Fill()

	// PDF origin is bottom-left; pixel coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(d.Height)})

	for _, item := range d.Items {
		if item.HasFill {
			page.SetFillColor(pdfcolor.DeviceGray(gray(item.Fill)))
		}
		if item.HasStroke {
			page.SetStrokeColor(pdfcolor.DeviceGray(gray(item.Stroke)))
			page.SetLineWidth(item.StrokeWidth)
		}
		a := &pdfpage.Adapter{
			W:     page,
			Style: pdfpage.Style{Fill: item.HasFill, Stroke: item.HasStroke},
		}
		item.Shape.Render(a)
	}
	return page.Close()
}
