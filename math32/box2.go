// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// SetEmpty sets this bounding box to empty (min above max).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty reports whether this bounding box is empty (max < min on either axis).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this bounding box as the vector from Min to Max.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ExpandByPoint expands this bounding box to include the given point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByPoints expands this bounding box to include all of the given points.
func (b *Box2) ExpandByPoints(points []Vector2) {
	for _, point := range points {
		b.ExpandByPoint(point)
	}
}

// ExpandByBox expands this bounding box to include the other given bounding box.
func (b *Box2) ExpandByBox(box Box2) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ExpandByScalar expands this bounding box on all sides by the given scalar.
func (b *Box2) ExpandByScalar(scalar float32) {
	b.Min = b.Min.SubScalar(scalar)
	b.Max = b.Max.AddScalar(scalar)
}

// ContainsPoint reports whether this bounding box contains the given point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// MulMatrix2 returns the axis-aligned bounding box of this box
// with the given matrix applied to all four of its corners.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	nb := B2Empty()
	nb.ExpandByPoint(m.MulVector2AsPoint(b.Min))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y)))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y)))
	nb.ExpandByPoint(m.MulVector2AsPoint(b.Max))
	return nb
}
