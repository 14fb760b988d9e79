// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the default styling parameters applied to
// newly created lines, and saving / loading of those parameters in
// TOML or YAML files.
package config

import (
	"github.com/plotline/plotline/styles"
)

// Params contains the default styling parameters
// applied to newly created lines.
type Params struct {

	// Color is the stroke and default marker color,
	// as a color name, single-letter code, or hex string
	Color string

	// LineWidth is the stroke width in points
	LineWidth float32

	// LineStyle is the line style name or short code (e.g. "-", "--")
	LineStyle string

	// Marker is the marker name or short code (e.g. "o", "s")
	Marker string

	// MarkerSize is the marker size in points
	MarkerSize float32

	// MarkerEdgeWidth is the marker outline width in points
	MarkerEdgeWidth float32

	// Antialiased is whether strokes are antialiased
	Antialiased bool

	// SolidCapStyle is the cap style used for solid lines
	SolidCapStyle styles.LineCaps

	// SolidJoinStyle is the join style used for solid lines
	SolidJoinStyle styles.LineJoins

	// DashCapStyle is the cap style used for dashed lines
	DashCapStyle styles.LineCaps

	// DashJoinStyle is the join style used for dashed lines
	DashJoinStyle styles.LineJoins

	// PickRadius is the hit-test radius in points
	PickRadius float32

	// DPI is the display resolution in dots per inch,
	// used to convert point sizes to device dots
	DPI float32
}

// Defaults sets standard default values for all parameters.
func (pr *Params) Defaults() {
	pr.Color = "b"
	pr.LineWidth = 0.5
	pr.LineStyle = "-"
	pr.Marker = "none"
	pr.MarkerSize = 6
	pr.MarkerEdgeWidth = 0.5
	pr.Antialiased = true
	pr.SolidCapStyle = styles.LineCapButt
	pr.SolidJoinStyle = styles.LineJoinMiter
	pr.DashCapStyle = styles.LineCapButt
	pr.DashJoinStyle = styles.LineJoinRound
	pr.PickRadius = 5
	pr.DPI = 100
}

// NewParams returns a new [Params] value with standard default values.
func NewParams() *Params {
	pr := &Params{}
	pr.Defaults()
	return pr
}
