// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/path"
	"github.com/plotline/plotline/render"
)

// the style a line is stroked with: solid, dashed, a staircase, or
// nothing at all
type LineStyles int32 //enums:enum -trim-prefix LineStyle -transform kebab

const (
	// LineStyleSolid is a continuous stroke
	LineStyleSolid LineStyles = iota

	// LineStyleDashed strokes with the dash pattern (6, 6) in points,
	// or the line's custom dash sequence if one is set
	LineStyleDashed

	// LineStyleDashDot strokes with the dash pattern (3, 5, 1, 5)
	LineStyleDashDot

	// LineStyleDotted strokes with the dash pattern (1, 3)
	LineStyleDotted

	// LineStyleStepsPre draws a staircase that steps in y before x
	LineStyleStepsPre

	// LineStyleStepsMid draws a staircase stepping at x midpoints
	LineStyleStepsMid

	// LineStyleStepsPost draws a staircase that steps in x before y
	LineStyleStepsPost

	// LineStyleNone draws no line (markers may still be drawn)
	LineStyleNone
)

// lineStyleCodes are the short-code aliases accepted by
// [Line.SetLineStyle] in addition to the canonical style names.
// "steps" is equivalent to "steps-pre" and is kept for
// backward compatibility.
var lineStyleCodes = map[string]LineStyles{
	"-":     LineStyleSolid,
	"--":    LineStyleDashed,
	"-.":    LineStyleDashDot,
	":":     LineStyleDotted,
	"steps": LineStyleStepsPre,
	"None":  LineStyleNone,
	" ":     LineStyleNone,
	"":      LineStyleNone,
}

// Per-style dash patterns, as on/off ink lengths in points,
// scaled to device dots at draw time.
var (
	dashedPattern  = []float32{6, 6}
	dashDotPattern = []float32{3, 5, 1, 5}
	dottedPattern  = []float32{1, 3}
)

// lineDraw strokes the cached line path in one style.
type lineDraw func(ln *Line, rd render.Renderer, gc *render.GC)

// lineDraws dispatches each line style to its drawing routine.
// It is shared, read-only state: never written after init.
var lineDraws = [LineStylesN]lineDraw{
	LineStyleSolid:     drawSolid,
	LineStyleDashed:    drawDashed,
	LineStyleDashDot:   drawDashDot,
	LineStyleDotted:    drawDotted,
	LineStyleStepsPre:  drawStepsPre,
	LineStyleStepsMid:  drawStepsMid,
	LineStyleStepsPost: drawStepsPost,
	LineStyleNone:      drawNothing,
}

func drawNothing(ln *Line, rd render.Renderer, gc *render.GC) {}

func drawSolid(ln *Line, rd render.Renderer, gc *render.GC) {
	p, m := ln.cache.PathAndTransform()
	rd.DrawPath(gc, p, m)
}

func drawDashed(ln *Line, rd render.Renderer, gc *render.GC) {
	seq := dashedPattern
	if len(ln.dashSeq) > 0 {
		seq = ln.dashSeq
	}
	gc.Dashes = scalePoints(rd, seq)
	p, m := ln.cache.PathAndTransform()
	rd.DrawPath(gc, p, m)
}

func drawDashDot(ln *Line, rd render.Renderer, gc *render.GC) {
	gc.Dashes = scalePoints(rd, dashDotPattern)
	p, m := ln.cache.PathAndTransform()
	rd.DrawPath(gc, p, m)
}

func drawDotted(ln *Line, rd render.Renderer, gc *render.GC) {
	gc.Dashes = scalePoints(rd, dottedPattern)
	p, m := ln.cache.PathAndTransform()
	rd.DrawPath(gc, p, m)
}

func drawStepsPre(ln *Line, rd render.Renderer, gc *render.GC) {
	rd.DrawPath(gc, stepsPath(&ln.cache, StepsPre), ln.cache.Transform)
}

func drawStepsMid(ln *Line, rd render.Renderer, gc *render.GC) {
	rd.DrawPath(gc, stepsPath(&ln.cache, StepsMid), ln.cache.Transform)
}

func drawStepsPost(ln *Line, rd render.Renderer, gc *render.GC) {
	rd.DrawPath(gc, stepsPath(&ln.cache, StepsPost), ln.cache.Transform)
}

// scalePoints converts a dash pattern from points to device dots.
func scalePoints(rd render.Renderer, pts []float32) []float32 {
	ds := make([]float32, len(pts))
	for i, d := range pts {
		ds[i] = rd.PointsToPixels(d)
	}
	return ds
}

// stepsPath expands each stroke subpath into a staircase.
func stepsPath(pc *PathCache, expand func([]math32.Vector2) []math32.Vector2) path.Path {
	var p path.Path
	for _, run := range pc.RunVerts() {
		for i, v := range expand(run) {
			if i == 0 {
				p.MoveTo(v.X, v.Y)
			} else {
				p.LineTo(v.X, v.Y)
			}
		}
	}
	return p
}

// StepsPre expands polyline vertices into a staircase where each step
// in y precedes the step in x: n vertices become 2n-1, with x values
// x0, x0, x1, x1, … and y values y0, y1, y1, y2, ….
func StepsPre(verts []math32.Vector2) []math32.Vector2 {
	n := len(verts)
	if n == 0 {
		return nil
	}
	sv := make([]math32.Vector2, 2*n-1)
	for i, v := range verts {
		sv[2*i].X = v.X
		sv[2*i].Y = v.Y
		if i > 0 {
			sv[2*i-1].X = verts[i-1].X
			sv[2*i-1].Y = v.Y
		}
	}
	return sv
}

// StepsPost expands polyline vertices into a staircase where each step
// in x precedes the step in y: n vertices become 2n-1, with x values
// x0, x1, x1, x2, … and y values y0, y0, y1, y1, ….
func StepsPost(verts []math32.Vector2) []math32.Vector2 {
	n := len(verts)
	if n == 0 {
		return nil
	}
	sv := make([]math32.Vector2, 2*n-1)
	for i, v := range verts {
		sv[2*i].X = v.X
		sv[2*i].Y = v.Y
		if i > 0 {
			sv[2*i-1].X = v.X
			sv[2*i-1].Y = verts[i-1].Y
		}
	}
	return sv
}

// StepsMid expands polyline vertices into a staircase stepping at the
// x midpoints: n vertices become 2n, with doubled midpoint x values
// between the original first and last, and each y value doubled.
func StepsMid(verts []math32.Vector2) []math32.Vector2 {
	n := len(verts)
	if n == 0 {
		return nil
	}
	sv := make([]math32.Vector2, 2*n)
	for i, v := range verts {
		sv[2*i].Y = v.Y
		sv[2*i+1].Y = v.Y
		if i > 0 {
			mid := 0.5 * (verts[i-1].X + v.X)
			sv[2*i-1].X = mid
			sv[2*i].X = mid
		}
	}
	sv[0].X = verts[0].X
	sv[2*n-1].X = verts[n-1].X
	return sv
}
