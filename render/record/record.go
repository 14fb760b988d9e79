// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record provides a renderer that records every drawing call
// with its arguments, for inspection in tests.
package record

import (
	"image"

	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/path"
	"github.com/plotline/plotline/render"
	"github.com/plotline/plotline/units"
)

// Recorded op kinds, named after the [render.Renderer] methods.
const (
	OpenGroup   = "open-group"
	CloseGroup  = "close-group"
	DrawPath    = "draw-path"
	DrawMarkers = "draw-markers"
)

// Op is one recorded renderer call. Only the fields relevant to its
// Kind are set.
type Op struct {
	Kind string

	// Name is the group name for an [OpenGroup] op
	Name string

	// GC is a copy of the graphics context at call time
	GC render.GC

	// Path is a copy of the drawn path
	Path path.Path

	// Matrix is the path transform
	Matrix math32.Matrix2

	// Template is a copy of the marker template for a [DrawMarkers] op
	Template path.Path

	// MarkerMatrix is the marker template transform for a [DrawMarkers] op
	MarkerMatrix math32.Matrix2

	// Face is the marker fill source for a [DrawMarkers] op; nil if unfilled
	Face image.Image
}

// Renderer records drawing calls into Ops instead of rasterizing them.
type Renderer struct {
	Width  float32
	Height float32
	DPI    float32
	Ops    []Op
}

// New returns a new recording renderer with the given size in dots
// and resolution in dots per inch.
func New(width, height, dpi float32) *Renderer {
	return &Renderer{Width: width, Height: height, DPI: dpi}
}

func (rd *Renderer) Size() (units.Units, math32.Vector2) {
	return units.UnitDot, math32.Vec2(rd.Width, rd.Height)
}

func (rd *Renderer) OpenGroup(name string) {
	rd.Ops = append(rd.Ops, Op{Kind: OpenGroup, Name: name})
}

func (rd *Renderer) CloseGroup() {
	rd.Ops = append(rd.Ops, Op{Kind: CloseGroup})
}

func (rd *Renderer) DrawPath(gc *render.GC, p path.Path, m math32.Matrix2) {
	rd.Ops = append(rd.Ops, Op{Kind: DrawPath, GC: copyGC(gc), Path: p.Clone(), Matrix: m})
}

func (rd *Renderer) DrawMarkers(gc *render.GC, template path.Path, mm math32.Matrix2, p path.Path, pm math32.Matrix2, face image.Image) {
	rd.Ops = append(rd.Ops, Op{Kind: DrawMarkers, GC: copyGC(gc), Template: template.Clone(), MarkerMatrix: mm, Path: p.Clone(), Matrix: pm, Face: face})
}

func (rd *Renderer) PointsToPixels(points float32) float32 {
	return points * rd.DPI / 72
}

// Reset clears the recorded ops, preserving the slice memory.
func (rd *Renderer) Reset() {
	rd.Ops = rd.Ops[:0]
}

// Kinds returns the kinds of all recorded ops, in order.
func (rd *Renderer) Kinds() []string {
	ks := make([]string, len(rd.Ops))
	for i := range rd.Ops {
		ks[i] = rd.Ops[i].Kind
	}
	return ks
}

// Find returns the first recorded op of the given kind, or nil.
func (rd *Renderer) Find(kind string) *Op {
	for i := range rd.Ops {
		if rd.Ops[i].Kind == kind {
			return &rd.Ops[i]
		}
	}
	return nil
}

// copyGC copies the context, including its dash slice, so later
// mutation by the caller does not alter the record.
func copyGC(gc *render.GC) render.GC {
	cp := *gc
	if gc.Dashes != nil {
		cp.Dashes = make([]float32, len(gc.Dashes))
		copy(cp.Dashes, gc.Dashes)
	}
	return cp
}
