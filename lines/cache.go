// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"github.com/plotline/plotline/data"
	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/path"
)

// PathCache holds the paths derived from a line's valid vertices,
// along with the affine transform mapping them to device space.
// The paths are in data space and are not pre-multiplied by the
// transform, so a pure transform change only rebinds the matrix and
// never rebuilds the vertices.
type PathCache struct {

	// Line is the stroke path: one subpath per contiguous valid run,
	// so gaps in the data break the stroke
	Line path.Path

	// Marks is the marker stamp path visiting every valid vertex,
	// ignoring run boundaries
	Marks path.Path

	// Verts is the compressed list of valid vertices, in order
	Verts []math32.Vector2

	// Transform maps data space to device space
	Transform math32.Matrix2

	stale bool
}

// Invalidate marks the cached paths as needing a rebuild from source
// data on next use.
func (pc *PathCache) Invalidate() {
	pc.stale = true
}

// Valid reports whether the cached paths are up to date.
func (pc *PathCache) Valid() bool {
	return !pc.stale
}

// Update rebuilds the cached paths and vertex list from the given
// full-length coordinate arrays and validity mask.
func (pc *PathCache) Update(x, y []float64, mask data.Mask) {
	pc.Line.Reset()
	pc.Marks.Reset()
	pc.Verts = pc.Verts[:0]
	for _, rn := range mask.Runs() {
		for i := rn.Start; i < rn.End; i++ {
			v := math32.Vec2(float32(x[i]), float32(y[i]))
			if i == rn.Start {
				pc.Line.MoveTo(v.X, v.Y)
			} else {
				pc.Line.LineTo(v.X, v.Y)
			}
			if len(pc.Verts) == 0 {
				pc.Marks.MoveTo(v.X, v.Y)
			} else {
				pc.Marks.LineTo(v.X, v.Y)
			}
			pc.Verts = append(pc.Verts, v)
		}
	}
	pc.stale = false
}

// PathAndTransform returns the stroke path and the device transform to
// draw it under.
func (pc *PathCache) PathAndTransform() (path.Path, math32.Matrix2) {
	return pc.Line, pc.Transform
}

// DeviceVerts returns the valid vertices transformed to device space.
func (pc *PathCache) DeviceVerts() []math32.Vector2 {
	dv := make([]math32.Vector2, len(pc.Verts))
	for i, v := range pc.Verts {
		dv[i] = pc.Transform.MulVector2AsPoint(v)
	}
	return dv
}

// RunVerts returns the vertices of the stroke path, one slice per
// subpath, so per-run reshaping (the steps styles) can work on each
// contiguous run separately.
func (pc *PathCache) RunVerts() [][]math32.Vector2 {
	var runs [][]math32.Vector2
	var cur []math32.Vector2
	p := pc.Line
	for i := 0; i < len(p); {
		cmd := p[i]
		n := path.CmdLen(cmd)
		v := math32.Vec2(p[i+n-3], p[i+n-2])
		if cmd == path.MoveTo {
			if len(cur) > 0 {
				runs = append(runs, cur)
			}
			cur = []math32.Vector2{v}
		} else {
			cur = append(cur, v)
		}
		i += n
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
