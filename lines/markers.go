// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"image"

	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/path"
	"github.com/plotline/plotline/render"
)

// the marker shape stamped at each data point
type Markers int32 //enums:enum -trim-prefix Marker -transform kebab

const (
	MarkerPoint Markers = iota
	MarkerPixel
	MarkerCircle
	MarkerTriangleDown
	MarkerTriangleUp
	MarkerTriangleLeft
	MarkerTriangleRight
	MarkerTriDown
	MarkerTriUp
	MarkerTriLeft
	MarkerTriRight
	MarkerSquare
	MarkerPentagon
	MarkerHexagon1
	MarkerHexagon2
	MarkerPlus
	MarkerX
	MarkerDiamond
	MarkerThinDiamond
	MarkerVLine
	MarkerHLine
	MarkerTickLeft
	MarkerTickRight
	MarkerTickUp
	MarkerTickDown
	MarkerCaretLeft
	MarkerCaretRight
	MarkerCaretUp
	MarkerCaretDown
	MarkerNone
)

// markerCodes are the single-character aliases accepted by
// [Line.SetMarker] in addition to the canonical marker names.
var markerCodes = map[string]Markers{
	".":    MarkerPoint,
	",":    MarkerPixel,
	"o":    MarkerCircle,
	"v":    MarkerTriangleDown,
	"^":    MarkerTriangleUp,
	"<":    MarkerTriangleLeft,
	">":    MarkerTriangleRight,
	"1":    MarkerTriDown,
	"2":    MarkerTriUp,
	"3":    MarkerTriLeft,
	"4":    MarkerTriRight,
	"s":    MarkerSquare,
	"p":    MarkerPentagon,
	"h":    MarkerHexagon1,
	"H":    MarkerHexagon2,
	"+":    MarkerPlus,
	"x":    MarkerX,
	"D":    MarkerDiamond,
	"d":    MarkerThinDiamond,
	"|":    MarkerVLine,
	"_":    MarkerHLine,
	"None": MarkerNone,
	" ":    MarkerNone,
	"":     MarkerNone,
}

// filledMarkers are the markers whose "auto" edge color resolves to
// black instead of the line color.
var filledMarkers = map[Markers]bool{
	MarkerCircle:        true,
	MarkerTriangleUp:    true,
	MarkerTriangleDown:  true,
	MarkerTriangleLeft:  true,
	MarkerTriangleRight: true,
	MarkerSquare:        true,
	MarkerThinDiamond:   true,
	MarkerDiamond:       true,
	MarkerHexagon1:      true,
	MarkerHexagon2:      true,
	MarkerPentagon:      true,
}

// Unit-space marker templates, built once and shared by all lines.
var (
	circleTemplate   = *path.New().Circle(0, 0, 1)
	rectTemplate     = *path.New().Rectangle(0, 0, 1, 1)
	triangleTemplate = *path.New().Polygon(math32.Vec2(0, 1), math32.Vec2(-1, -1), math32.Vec2(1, -1))
	pentagonTemplate = *path.New().RegularPolygon(5, 1, true)
	hexagonTemplate  = *path.New().RegularPolygon(6, 1, true)
	stickTemplate    = *path.New().Line(0, -1, 0, 1)
	tickHTemplate    = *path.New().Line(0, 0.5, 1, 0.5)
	tickVTemplate    = *path.New().Line(-0.5, 0, -0.5, 1)
	plusTemplate     = *path.New().Line(-1, 0, 1, 0).Line(0, -1, 0, 1)
	xTemplate        = *path.New().Line(-1, -1, 1, 1).Line(-1, 1, 1, -1)
	spokeTemplate    = *path.New().Line(0, 0, 0, -1).Line(0, 0, 0.8, 0.5).Line(0, 0, -0.8, 0.5)
	caretTemplate    = *path.New().Polyline(math32.Vec2(-1, 1.5), math32.Vec2(0, 0), math32.Vec2(1, 1.5))
)

// markerDef ties a marker to its template, its fill class, and the
// transform mapping the unit template to a given size in dots.
type markerDef struct {
	template  path.Path
	fillable  bool
	transform func(size float32) math32.Matrix2
}

func rotDeg(deg float32) math32.Matrix2 {
	return math32.Rotate2D(math32.DegToRad(deg))
}

func scaled(sx, sy float32) math32.Matrix2 {
	return math32.Scale2D(sx, sy)
}

// markerDefs dispatches each marker to its template and transform.
// It is shared, read-only state: never written after init.
var markerDefs = [MarkersN]markerDef{
	MarkerPoint: {circleTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(0.25*sz, 0.25*sz)
	}},
	MarkerPixel: {rectTemplate, true, func(sz float32) math32.Matrix2 {
		return math32.Translate2D(-0.5, -0.5)
	}},
	MarkerCircle: {circleTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerTriangleUp: {triangleTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerTriangleDown: {triangleTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, -0.5*sz)
	}},
	MarkerTriangleLeft: {triangleTemplate, true, func(sz float32) math32.Matrix2 {
		return rotDeg(90).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerTriangleRight: {triangleTemplate, true, func(sz float32) math32.Matrix2 {
		return rotDeg(-90).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerSquare: {rectTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(sz, sz).Mul(math32.Translate2D(-0.5, -0.5))
	}},
	MarkerDiamond: {rectTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(sz, sz).Mul(rotDeg(45)).Mul(math32.Translate2D(-0.5, -0.5))
	}},
	MarkerThinDiamond: {rectTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(0.6*sz, sz).Mul(rotDeg(45)).Mul(math32.Translate2D(-0.5, -0.5))
	}},
	MarkerPentagon: {pentagonTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerHexagon1: {hexagonTemplate, true, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerHexagon2: {hexagonTemplate, true, func(sz float32) math32.Matrix2 {
		return rotDeg(30).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerVLine: {stickTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerHLine: {stickTemplate, false, func(sz float32) math32.Matrix2 {
		return rotDeg(90).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerTickLeft: {tickHTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(-sz, 1)
	}},
	MarkerTickRight: {tickHTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(sz, 1)
	}},
	MarkerTickUp: {tickVTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(1, sz)
	}},
	MarkerTickDown: {tickVTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(1, -sz)
	}},
	MarkerPlus: {plusTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerX: {xTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerTriDown: {spokeTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerTriUp: {spokeTemplate, false, func(sz float32) math32.Matrix2 {
		return rotDeg(180).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerTriLeft: {spokeTemplate, false, func(sz float32) math32.Matrix2 {
		return rotDeg(90).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerTriRight: {spokeTemplate, false, func(sz float32) math32.Matrix2 {
		return rotDeg(270).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerCaretDown: {caretTemplate, false, func(sz float32) math32.Matrix2 {
		return scaled(0.5*sz, 0.5*sz)
	}},
	MarkerCaretUp: {caretTemplate, false, func(sz float32) math32.Matrix2 {
		return rotDeg(180).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerCaretLeft: {caretTemplate, false, func(sz float32) math32.Matrix2 {
		return rotDeg(90).Mul(scaled(0.5*sz, 0.5*sz))
	}},
	MarkerCaretRight: {caretTemplate, false, func(sz float32) math32.Matrix2 {
		return rotDeg(270).Mul(scaled(0.5*sz, 0.5*sz))
	}},
}

// drawMarkerPass stamps the current marker at every valid vertex,
// with its own graphics context separate from the line stroke.
func (ln *Line) drawMarkerPass(rd render.Renderer) {
	def := &markerDefs[ln.Marker]
	if def.transform == nil {
		return
	}
	gc := render.NewGC()
	gc.Color = ln.markerEdgeImage()
	gc.Width = rd.PointsToPixels(ln.MarkerEdgeWidth)
	gc.Alpha = ln.Alpha
	gc.Antialiased = ln.Antialiased
	var face image.Image
	if def.fillable {
		face = ln.markerFaceImage()
	}
	sz := rd.PointsToPixels(ln.MarkerSize)
	rd.DrawMarkers(gc, def.template, def.transform(sz), ln.cache.Marks, ln.cache.Transform, face)
}
