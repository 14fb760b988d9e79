// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"testing"

	"github.com/plotline/plotline/base/tolassert"
	"github.com/plotline/plotline/math32"
	"github.com/stretchr/testify/assert"
)

func TestPathCommands(t *testing.T) {
	p := New()
	assert.True(t, p.Empty())

	p.MoveTo(1, 2)
	p.MoveTo(3, 4) // replaces the previous MoveTo
	assert.Equal(t, Path{MoveTo, 3, 4, MoveTo}, *p)
	assert.True(t, p.Empty())

	p.LineTo(5, 6)
	assert.False(t, p.Empty())
	assert.Equal(t, math32.Vec2(5, 6), p.Pos())
	assert.Equal(t, math32.Vec2(3, 4), p.StartPos())

	p.Close()
	assert.Equal(t, Path{MoveTo, 3, 4, MoveTo, LineTo, 5, 6, LineTo, Close, 3, 4, Close}, *p)
	p.Close() // already closed
	assert.Equal(t, 12, len(*p))

	// a LineTo after a Close starts a new subpath at the closed start
	p.LineTo(9, 9)
	assert.Equal(t, math32.Vec2(3, 4), p.StartPos())

	p.Reset()
	assert.Equal(t, 0, len(*p))

	// LineTo on an empty path starts at the origin
	p.LineTo(2, 0)
	assert.Equal(t, Path{MoveTo, 0, 0, MoveTo, LineTo, 2, 0, LineTo}, *p)

	// closing a trailing lone MoveTo removes it
	q := New()
	q.Line(0, 0, 1, 1)
	q.MoveTo(5, 5)
	q.Close()
	assert.Equal(t, math32.Vec2(1, 1), q.Pos())
}

func TestPoints(t *testing.T) {
	p := New().Polyline(math32.Vec2(0, 0), math32.Vec2(1, 1), math32.Vec2(2, 0))
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, p.Points())

	degen := New().Polyline(math32.Vec2(1, 1))
	assert.Nil(t, degen.Points())
}

func TestTransform(t *testing.T) {
	p := New().Polyline(math32.Vec2(0, 0), math32.Vec2(1, 0))
	p.Transform(math32.Translate2D(10, 20).Mul(math32.Scale2D(2, 2)))
	assert.Equal(t, []math32.Vector2{{X: 10, Y: 20}, {X: 12, Y: 20}}, p.Points())

	q := New().Polyline(math32.Vec2(1, 1), math32.Vec2(2, 2)).Clone()
	q.Translate(1, 0)
	assert.Equal(t, []math32.Vector2{{X: 2, Y: 1}, {X: 3, Y: 2}}, q.Points())
	q.Scale(2, 3)
	assert.Equal(t, []math32.Vector2{{X: 4, Y: 3}, {X: 6, Y: 6}}, q.Points())
}

func TestFastBounds(t *testing.T) {
	p := New().Polyline(math32.Vec2(-1, 2), math32.Vec2(3, -4), math32.Vec2(0, 0))
	assert.Equal(t, math32.B2(-1, -4, 3, 2), p.FastBounds())

	c := New().Circle(0, 0, 1)
	b := c.FastBounds()
	tolassert.Equal(t, -1, b.Min.X)
	tolassert.Equal(t, 1, b.Max.Y)
}

func TestShapes(t *testing.T) {
	r := New().Rectangle(0, 0, 2, 1)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}, r.Points())

	c := New().Circle(1, 1, 0.5)
	assert.Equal(t, math32.Vec2(1.5, 1), c.StartPos())

	sq := New().RegularPolygon(4, 1, true)
	pts := sq.Points()
	assert.Equal(t, 5, len(pts)) // 4 vertices plus the Close endpoint
	tolassert.EqualTol(t, 0, pts[0].X, 1.0e-6)
	tolassert.EqualTol(t, 1, pts[0].Y, 1.0e-6)
	tolassert.EqualTol(t, -1, pts[1].X, 1.0e-6)
	tolassert.EqualTol(t, 0, pts[1].Y, 1.0e-6)
}
