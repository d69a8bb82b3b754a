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
	"encoding/xml"
	"fmt"
	"io"
)

// Document is a minimal SVG document made of path elements.
type Document struct {
	Width, Height int
	Paths         []*Element
}

// Element is an SVG path element.  It implements [Setter].
type Element struct {
	D           string
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// SetPath implements the [Setter] interface.
func (e *Element) SetPath(d string) {
	e.D = d
}

// Add appends a new path element to the document.
func (doc *Document) Add(fill, stroke string, strokeWidth float64) *Element {
	e := &Element{Fill: fill, Stroke: stroke, StrokeWidth: strokeWidth}
	doc.Paths = append(doc.Paths, e)
	return e
}

type xmlSVG struct {
	XMLName xml.Name  `xml:"svg"`
	NS      string    `xml:"xmlns,attr"`
	Width   int       `xml:"width,attr"`
	Height  int       `xml:"height,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Paths   []xmlPath `xml:"path"`
}

type xmlPath struct {
	D           string `xml:"d,attr"`
	Fill        string `xml:"fill,attr"`
	Stroke      string `xml:"stroke,attr,omitempty"`
	StrokeWidth string `xml:"stroke-width,attr,omitempty"`
}

// Write writes the document as a standalone SVG file.
func (doc *Document) Write(w io.Writer) error {
	out := xmlSVG{
		NS:      "http://www.w3.org/2000/svg",
		Width:   doc.Width,
		Height:  doc.Height,
		ViewBox: fmt.Sprintf("0 0 %d %d", doc.Width, doc.Height),
	}
	for _, e := range doc.Paths {
		fill := e.Fill
		if fill == "" {
			fill = "none"
		}
		p := xmlPath{D: e.D, Fill: fill, Stroke: e.Stroke}
		if e.Stroke != "" && e.StrokeWidth > 0 {
			p.StrokeWidth = num(e.StrokeWidth)
		}
		out.Paths = append(out.Paths, p)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
