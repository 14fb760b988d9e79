// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the abstract renderer interface that line
// drawing targets, and the graphics context passed to it.
package render

import (
	"image"

	"github.com/plotline/plotline/colors"
	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/path"
	"github.com/plotline/plotline/styles"
	"github.com/plotline/plotline/units"
)

// Renderer is the interface for all backend rendering outputs.
// Coordinates are in device dots with the y axis pointing up;
// backends with a y-down device space flip on output.
type Renderer interface {
	// Size returns the size of the render target, in its preferred units.
	// For images, it will be [units.UnitDot] to indicate the actual raw
	// pixel size.
	Size() (units.Units, math32.Vector2)

	// OpenGroup opens a named logical group of drawing calls.
	// Every OpenGroup is paired with a following CloseGroup.
	OpenGroup(name string)

	// CloseGroup closes the group opened by the matching OpenGroup.
	CloseGroup()

	// DrawPath strokes the path transformed by the given matrix,
	// using the given graphics context.
	DrawPath(gc *GC, p path.Path, m math32.Matrix2)

	// DrawMarkers stamps the marker template, scaled by markerTransform,
	// at the end point of every command of p, positioned by pathTransform.
	// If face is non-nil the template is filled with it before its
	// outline is stroked with the graphics context.
	DrawMarkers(gc *GC, template path.Path, markerTransform math32.Matrix2, p path.Path, pathTransform math32.Matrix2, face image.Image)

	// PointsToPixels converts a size in typography points to device dots.
	PointsToPixels(points float32) float32
}

// GC is a graphics context: the plain stroke parameters for one drawing
// call, in device units.
type GC struct {

	// Color is the stroke color image; stroking is off if nil
	Color image.Image

	// Alpha is a global alpha factor between 0 and 1,
	// applied on top of the alpha in Color
	Alpha float32

	// Width is the stroke width in dots
	Width float32

	// Cap is how segment ends are drawn
	Cap styles.LineCaps

	// Join is how segments are joined
	Join styles.LineJoins

	// Dashes is the dash pattern in dots, alternating
	// painted and skipped lengths; nil is a solid stroke
	Dashes []float32

	// DashOffset is the offset into the dash pattern in dots
	DashOffset float32

	// Antialiased is whether the stroke is antialiased
	Antialiased bool
}

// NewGC returns a new [GC] with standard defaults:
// an opaque black stroke of width 1.
func NewGC() *GC {
	gc := &GC{}
	gc.Defaults()
	return gc
}

// Defaults sets standard default values for the graphics context.
func (gc *GC) Defaults() {
	gc.Color = colors.Uniform(colors.Black)
	gc.Alpha = 1
	gc.Width = 1
	gc.Cap = styles.LineCapButt
	gc.Join = styles.LineJoinMiter
	gc.Dashes = nil
	gc.DashOffset = 0
	gc.Antialiased = true
}
