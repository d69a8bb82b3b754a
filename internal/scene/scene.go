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

// Package scene reads scene descriptions for the semicircle command.
//
// A scene is a YAML file listing wedges and arcs together with their
// colors, and the mapping from world coordinates to pixels:
//
//	width: 200
//	height: 200
//	view:
//	  scale: [2, 2]
//	  offset: [100, 100]
//	shapes:
//	  - name: beam
//	    kind: circle
//	    center: [0, 0]
//	    radius: 40
//	    direction: 45
//	    span: 30
//	    fill: "#ff8000"
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/semicircle"
)

// Scene is the contents of a scene file.
type Scene struct {
	Width      int         `yaml:"width,omitempty"`
	Height     int         `yaml:"height,omitempty"`
	Background string      `yaml:"background,omitempty"`
	View       View        `yaml:"view,omitempty"`
	Shapes     []ShapeSpec `yaml:"shapes"`
}

// View describes the map from world coordinates to pixels: world points
// are scaled and then shifted by Offset.
type View struct {
	Scale  [2]float64 `yaml:"scale,omitempty"`
	Offset [2]float64 `yaml:"offset,omitempty"`
}

// Matrix returns the world to pixel transformation.  A zero scale factor
// is read as 1.
func (v View) Matrix() matrix.Matrix {
	sx, sy := v.Scale[0], v.Scale[1]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return matrix.Scale(sx, sy).Translate(v.Offset[0], v.Offset[1])
}

// Kinds of shapes.
const (
	KindMarker = "marker" // radius in pixels
	KindCircle = "circle" // radius in world units
)

// ShapeSpec describes one shape of a scene.
type ShapeSpec struct {
	Name    string      `yaml:"name,omitempty"`
	Kind    string      `yaml:"kind"`
	Center  [2]float64  `yaml:"center"`
	Anchor  *[2]float64 `yaml:"anchor,omitempty"`
	Radius  float64     `yaml:"radius"`
	RadiusY float64     `yaml:"radiusY,omitempty"`

	semicircle.Options `yaml:",inline"`

	// If Direction is set, the angular range is Span degrees centered on
	// Direction, and StartAngle and StopAngle are ignored.
	Direction *float64 `yaml:"direction,omitempty"`
	Span      float64  `yaml:"span,omitempty"`

	Fill        string  `yaml:"fill,omitempty"`
	Stroke      string  `yaml:"stroke,omitempty"`
	StrokeWidth float64 `yaml:"strokeWidth,omitempty"`
}

// UnmarshalYAML decodes a shape, starting from the default options.
func (s *ShapeSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain ShapeSpec
	p := plain{
		Kind:        KindMarker,
		Options:     semicircle.DefaultOptions(),
		StrokeWidth: 1,
	}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = ShapeSpec(p)
	return nil
}

// NewShape creates the shape described by s.
func (s *ShapeSpec) NewShape() (*semicircle.Shape, error) {
	if !(s.Radius > 0) {
		return nil, fmt.Errorf("shape %q: radius must be positive, got %g", s.Name, s.Radius)
	}

	center := vec.Vec2{X: s.Center[0], Y: s.Center[1]}
	var shape *semicircle.Shape
	switch s.Kind {
	case KindMarker:
		shape = semicircle.NewSemiCircleMarker(center, s.Radius, s.RadiusY, s.Options)
	case KindCircle:
		if s.RadiusY != 0 {
			return nil, fmt.Errorf("shape %q: radiusY is only allowed for markers", s.Name)
		}
		shape = semicircle.NewSemiCircle(center, s.Radius, s.Options)
	default:
		return nil, fmt.Errorf("shape %q: unknown kind %q", s.Name, s.Kind)
	}

	if s.Direction != nil {
		if s.Span > 0 {
			shape.SetDirection(*s.Direction, s.Span)
		} else {
			shape.SetDirection(*s.Direction)
		}
	}
	if s.Anchor != nil {
		shape.SetAnchor(vec.Vec2{X: s.Anchor[0], Y: s.Anchor[1]})
	}
	return shape, nil
}

// Parse decodes a scene.  Missing sizes are taken from set.
func Parse(data []byte, set *Settings) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if sc.Width == 0 {
		sc.Width = set.Width
	}
	if sc.Height == 0 {
		sc.Height = set.Height
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", sc.Width, sc.Height)
	}
	return &sc, nil
}

// Load reads a scene file.
func Load(fname string, set *Settings) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	sc, err := Parse(data, set)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return sc, nil
}

// Marshal encodes the scene as YAML.
func (sc *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(sc)
}
