// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and the uniform color images
// used for stroking and filling.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// letters are the classic single-letter plotting color codes.
var letters = map[string]color.RGBA{
	"b": {0, 0, 255, 255},
	"g": {0, 128, 0, 255},
	"r": {255, 0, 0, 255},
	"c": {0, 191, 191, 255},
	"m": {191, 0, 191, 255},
	"y": {191, 191, 0, 255},
	"k": {0, 0, 0, 255},
	"w": {255, 255, 255, 255},
}

// FromString returns the color specified by the given string.
// It accepts:
//   - hex values like #f00, #ff0000, and #ff0000ff
//   - standard SVG 1.1 color names like red and darkslategray
//   - the single-letter codes b, g, r, c, m, y, k, and w
//   - "none" and "", which return the zero (fully transparent) color
func FromString(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, nil
	}
	if s[0] == '#' {
		return FromHex(s)
	}
	low := strings.ToLower(s)
	if low == "none" {
		return color.RGBA{}, nil
	}
	if c, ok := letters[low]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[low]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("colors.FromString: name not found: %q", s)
}

// FromHex parses the given hex color string and returns the resulting color.
// Both 3, 6, and 8 digit forms are supported, with or without a leading #.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		var r, g, b, a int
		format := "%02x%02x%02x%02x"
		if _, err := fmt.Sscanf(hex, format, &r, &g, &b, &a); err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// IsNil reports whether the given color is nil or fully transparent.
func IsNil(c color.Color) bool {
	return c == nil || AsRGBA(c) == (color.RGBA{})
}

// ApplyOpacity applies the given opacity (0-1) to the given color
// and returns the result. The color is alpha-premultiplied, so all
// channels are scaled.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	r := AsRGBA(c)
	if opacity >= 1 {
		return r
	}
	if opacity <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		uint8(float32(r.R) * opacity),
		uint8(float32(r.G) * opacity),
		uint8(float32(r.B) * opacity),
		uint8(float32(r.A) * opacity),
	}
}
