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
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black": {R: 0, G: 0, B: 0, A: 255},
	"white": {R: 255, G: 255, B: 255, A: 255},
	"red":   {R: 255, G: 0, B: 0, A: 255},
	"green": {R: 0, G: 128, B: 0, A: 255},
	"blue":  {R: 0, G: 0, B: 255, A: 255},
	"gray":  {R: 128, G: 128, B: 128, A: 255},
}

// ParseColor parses "#rgb", "#rrggbb" or one of a few color names.  The
// empty string and "none" give ok == false.
func ParseColor(s string) (c color.RGBA, ok bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return color.RGBA{}, false, nil
	}
	if c, found := namedColors[s]; found {
		return c, true, nil
	}

	hex, found := strings.CutPrefix(s, "#")
	if !found || len(hex) != 3 && len(hex) != 6 {
		return color.RGBA{}, false, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true, nil
}

// hexColor formats c as "#rrggbb".
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// gray returns the luminance of c, in the range 0 to 1.
func gray(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
