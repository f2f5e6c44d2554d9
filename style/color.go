// seehuhn.de/go/pdfnote - highlight compositor for PDF page notes
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

package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is a colour in the sRGB colour space.
// The zero value (black) is used to mean "no colour set".
type RGB struct {
	R, G, B uint8
}

// RGBFromFloats converts PDF DeviceRGB components in the range [0, 1].
// Values outside this range are clamped.
func RGBFromFloats(r, g, b float64) RGB {
	return RGB{R: toByte(r), G: toByte(g), B: toByte(b)}
}

func toByte(x float64) uint8 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(math.Round(x * 255))
}

// IsZero reports whether c is black, i.e. whether no colour is set.
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// CSS returns the colour in the form #rrggbb.
func (c RGB) CSS() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.CSS()
}

// ParseColor parses a colour given as "#rgb", "#rrggbb", "rgb(r, g, b)"
// or as an SVG colour name like "red" or "lightyellow".
func ParseColor(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 3:
			v, err := strconv.ParseUint(hex, 16, 16)
			if err != nil {
				break
			}
			r, g, b := uint8(v>>8&15), uint8(v>>4&15), uint8(v&15)
			return RGB{R: r * 17, G: g * 17, B: b * 17}, nil
		case 6:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				break
			}
			return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
		}
		return RGB{}, fmt.Errorf("invalid colour %q", s)
	}

	if args, ok := strings.CutPrefix(s, "rgb("); ok {
		args, ok = strings.CutSuffix(args, ")")
		parts := strings.Split(args, ",")
		if !ok || len(parts) != 3 {
			return RGB{}, fmt.Errorf("invalid colour %q", s)
		}
		var comp [3]uint8
		for i, part := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
			}
			comp[i] = uint8(v)
		}
		return RGB{R: comp[0], G: comp[1], B: comp[2]}, nil
	}

	if c, ok := colornames.Map[s]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	return RGB{}, fmt.Errorf("unknown colour %q", s)
}

// Background returns the style used for highlights in colour c.
func Background(c RGB) Style {
	return New("background-color", c.CSS())
}
