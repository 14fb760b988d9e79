// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path provides a compact, efficient representation of 2D paths
// as a flat slice of float32 values, along with builders for the common
// shapes used as line geometry and marker templates.
package path

import (
	"github.com/plotline/plotline/math32"
)

// Path is a flattened path of commands. Each command starts and ends
// with its verb value, with the verb's coordinates in between, so the
// path can be traversed in both directions:
//
//	MoveTo: (x, y)
//	LineTo: (x, y)
//	QuadTo: (cpx, cpy, x, y)
//	CubeTo: (cpx1, cpy1, cpx2, cpy2, x, y)
//	Close:  (x, y), the coordinates of the subpath start
type Path []float32

// Path command verbs.
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	QuadTo float32 = 2
	CubeTo float32 = 3
	Close  float32 = 4
)

var cmdLens = [5]int{4, 4, 6, 8, 4}

// CmdLen returns the number of slice elements the given command verb
// occupies, including both verb values.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// New returns a new empty path.
func New() *Path {
	return &Path{}
}

// Reset clears the path without deallocating its memory.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	q := make(Path, len(p))
	copy(q, p)
	return q
}

// Empty reports whether the path contains no commands beyond an
// initial MoveTo.
func (p Path) Empty() bool {
	return len(p) <= CmdLen(MoveTo)
}

// Pos returns the current position of the pen: the end point of the
// last command.
func (p Path) Pos() math32.Vector2 {
	if len(p) > 0 {
		return math32.Vec2(p[len(p)-3], p[len(p)-2])
	}
	return math32.Vector2{}
}

// StartPos returns the start point of the current subpath: the end
// point of the most recent MoveTo.
func (p Path) StartPos() math32.Vector2 {
	for i := len(p); i > 0; {
		cmd := p[i-1]
		if cmd == MoveTo {
			return math32.Vec2(p[i-3], p[i-2])
		}
		i -= CmdLen(cmd)
	}
	return math32.Vector2{}
}

// MoveTo moves the pen to (x, y) without drawing. A MoveTo directly
// following another MoveTo replaces it.
func (p *Path) MoveTo(x, y float32) {
	if len(*p) > 0 && (*p)[len(*p)-1] == MoveTo {
		(*p)[len(*p)-3] = x
		(*p)[len(*p)-2] = y
		return
	}
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// LineTo adds a line segment to (x, y). On an empty path the segment
// starts at the origin; after a Close it starts a new subpath at the
// closed subpath's start.
func (p *Path) LineTo(x, y float32) {
	p.startCmd()
	*p = append(*p, LineTo, x, y, LineTo)
}

// QuadTo adds a quadratic Bézier with control point (cpx, cpy)
// and end point (x, y).
func (p *Path) QuadTo(cpx, cpy, x, y float32) {
	p.startCmd()
	*p = append(*p, QuadTo, cpx, cpy, x, y, QuadTo)
}

// CubeTo adds a cubic Bézier with control points (cpx1, cpy1) and
// (cpx2, cpy2) and end point (x, y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float32) {
	p.startCmd()
	*p = append(*p, CubeTo, cpx1, cpy1, cpx2, cpy2, x, y, CubeTo)
}

func (p *Path) startCmd() {
	if len(*p) == 0 {
		p.MoveTo(0, 0)
	} else if (*p)[len(*p)-1] == Close {
		p.MoveTo((*p)[len(*p)-3], (*p)[len(*p)-2])
	}
}

// Close closes the current subpath back to its start point.
// Closing an empty or already closed subpath does nothing; a trailing
// lone MoveTo is removed.
func (p *Path) Close() {
	if len(*p) == 0 || (*p)[len(*p)-1] == Close {
		return
	}
	if (*p)[len(*p)-1] == MoveTo {
		*p = (*p)[:len(*p)-CmdLen(MoveTo)]
		return
	}
	end := p.StartPos()
	*p = append(*p, Close, end.X, end.Y, Close)
}

// Points returns the end point of every command in the path. For a
// polyline built from MoveTo and LineTo commands this is its vertex list.
func (p Path) Points() []math32.Vector2 {
	var pts []math32.Vector2
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		pts = append(pts, math32.Vec2(p[i+n-3], p[i+n-2]))
		i += n
	}
	return pts
}

// Transform transforms the path by the given matrix, modifying it
// in place and returning it.
func (p Path) Transform(m math32.Matrix2) Path {
	for i := 0; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo, LineTo, Close:
			end := m.MulVector2AsPoint(math32.Vec2(p[i+1], p[i+2]))
			p[i+1] = end.X
			p[i+2] = end.Y
		case QuadTo:
			cp := m.MulVector2AsPoint(math32.Vec2(p[i+1], p[i+2]))
			end := m.MulVector2AsPoint(math32.Vec2(p[i+3], p[i+4]))
			p[i+1] = cp.X
			p[i+2] = cp.Y
			p[i+3] = end.X
			p[i+4] = end.Y
		case CubeTo:
			cp1 := m.MulVector2AsPoint(math32.Vec2(p[i+1], p[i+2]))
			cp2 := m.MulVector2AsPoint(math32.Vec2(p[i+3], p[i+4]))
			end := m.MulVector2AsPoint(math32.Vec2(p[i+5], p[i+6]))
			p[i+1] = cp1.X
			p[i+2] = cp1.Y
			p[i+3] = cp2.X
			p[i+4] = cp2.Y
			p[i+5] = end.X
			p[i+6] = end.Y
		}
		i += CmdLen(cmd)
	}
	return p
}

// Translate translates the path by (x, y), modifying it in place
// and returning it.
func (p Path) Translate(x, y float32) Path {
	return p.Transform(math32.Translate2D(x, y))
}

// Scale scales the path by (x, y), modifying it in place and returning it.
func (p Path) Scale(x, y float32) Path {
	return p.Transform(math32.Scale2D(x, y))
}

// FastBounds returns a conservative bounding box of the path, computed
// over all points including Bézier control points.
func (p Path) FastBounds() math32.Box2 {
	bx := math32.B2Empty()
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		for j := i + 1; j < i+n-1; j += 2 {
			bx.ExpandByPoint(math32.Vec2(p[j], p[j+1]))
		}
		i += n
	}
	return bx
}
