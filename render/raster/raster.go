// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster implements the renderer interface on top of the
// gogpu/gg raster graphics context, producing images and PNG files.
package raster

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/plotline/plotline/colors"
	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/path"
	"github.com/plotline/plotline/render"
	"github.com/plotline/plotline/styles"
	"github.com/plotline/plotline/units"
)

// Renderer is a raster backend rendering into an in-memory image.
// The device space is y-up; the underlying context is inverted once at
// creation so output appears in the usual image orientation.
type Renderer struct {
	ctx    *gg.Context
	width  int
	height int
	dpi    float32
}

// New returns a new raster renderer of the given pixel size and
// resolution in dots per inch, cleared to white.
func New(width, height int, dpi float32) *Renderer {
	ctx := gg.NewContext(width, height)
	ctx.ClearWithColor(gg.White)
	ctx.InvertY()
	return &Renderer{ctx: ctx, width: width, height: height, dpi: dpi}
}

func (rd *Renderer) Size() (units.Units, math32.Vector2) {
	return units.UnitDot, math32.Vec2(float32(rd.width), float32(rd.height))
}

// OpenGroup is a no-op: raster output has no grouping structure.
func (rd *Renderer) OpenGroup(name string) {}

func (rd *Renderer) CloseGroup() {}

func (rd *Renderer) DrawPath(gc *render.GC, p path.Path, m math32.Matrix2) {
	if gc.Color == nil || gc.Width <= 0 || p.Empty() {
		return
	}
	rd.setStroke(gc)
	rd.addPath(p.Clone().Transform(m))
	rd.ctx.Stroke()
}

func (rd *Renderer) DrawMarkers(gc *render.GC, template path.Path, mm math32.Matrix2, p path.Path, pm math32.Matrix2, face image.Image) {
	stroke := gc.Color != nil && gc.Width > 0
	if len(template) == 0 || (!stroke && face == nil) {
		return
	}
	tp := template.Clone().Transform(mm)
	if stroke {
		rd.setStroke(gc)
	}
	for _, pt := range p.Points() {
		dev := pm.MulVector2AsPoint(pt)
		mp := tp.Clone().Translate(dev.X, dev.Y)
		rd.addPath(mp)
		if face != nil {
			rd.ctx.SetColor(colors.ApplyOpacity(colors.ToUniform(face), gc.Alpha))
			rd.ctx.FillPreserve()
			if stroke {
				rd.ctx.SetColor(colors.ApplyOpacity(colors.ToUniform(gc.Color), gc.Alpha))
			}
		}
		if stroke {
			rd.ctx.Stroke()
		} else {
			rd.ctx.ClearPath()
		}
	}
}

func (rd *Renderer) PointsToPixels(points float32) float32 {
	return points * rd.dpi / 72
}

// Image returns the rendered image.
func (rd *Renderer) Image() image.Image {
	return rd.ctx.Image()
}

// SavePNG saves the rendered image to a PNG file.
func (rd *Renderer) SavePNG(filename string) error {
	return rd.ctx.SavePNG(filename)
}

var ggCaps = map[styles.LineCaps]gg.LineCap{
	styles.LineCapButt:       gg.LineCapButt,
	styles.LineCapRound:      gg.LineCapRound,
	styles.LineCapProjecting: gg.LineCapSquare,
}

var ggJoins = map[styles.LineJoins]gg.LineJoin{
	styles.LineJoinMiter: gg.LineJoinMiter,
	styles.LineJoinRound: gg.LineJoinRound,
	styles.LineJoinBevel: gg.LineJoinBevel,
}

// setStroke configures the context stroke state from the graphics
// context. The antialiased flag has no per-stroke control here and is
// ignored.
func (rd *Renderer) setStroke(gc *render.GC) {
	rd.ctx.SetColor(colors.ApplyOpacity(colors.ToUniform(gc.Color), gc.Alpha))
	rd.ctx.SetLineWidth(float64(gc.Width))
	rd.ctx.SetLineCap(ggCaps[gc.Cap])
	rd.ctx.SetLineJoin(ggJoins[gc.Join])
	if len(gc.Dashes) > 0 {
		ds := make([]float64, len(gc.Dashes))
		for i, d := range gc.Dashes {
			ds[i] = float64(d)
		}
		rd.ctx.SetDash(ds...)
		rd.ctx.SetDashOffset(float64(gc.DashOffset))
	} else {
		rd.ctx.ClearDash()
	}
}

// addPath replays the path commands into the context.
func (rd *Renderer) addPath(p path.Path) {
	rd.ctx.ClearPath()
	for i := 0; i < len(p); {
		cmd := p[i]
		switch cmd {
		case path.MoveTo:
			rd.ctx.MoveTo(float64(p[i+1]), float64(p[i+2]))
		case path.LineTo:
			rd.ctx.LineTo(float64(p[i+1]), float64(p[i+2]))
		case path.QuadTo:
			rd.ctx.QuadraticTo(float64(p[i+1]), float64(p[i+2]), float64(p[i+3]), float64(p[i+4]))
		case path.CubeTo:
			rd.ctx.CubicTo(float64(p[i+1]), float64(p[i+2]), float64(p[i+3]), float64(p[i+4]), float64(p[i+5]), float64(p[i+6]))
		case path.Close:
			rd.ctx.ClosePath()
		}
		i += path.CmdLen(cmd)
	}
}
