// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line2 represents a 2D line segment defined by a start and an end point.
type Line2 struct {
	Start Vector2
	End   Vector2
}

// NewLine2 returns a new [Line2] with the given start and end points.
func NewLine2(start, end Vector2) Line2 {
	return Line2{start, end}
}

// Set sets this line segment's start and end points.
func (l *Line2) Set(start, end Vector2) {
	l.Start = start
	l.End = end
}

// Center returns the center point of this line segment.
func (l Line2) Center() Vector2 {
	return l.Start.Add(l.End).MulScalar(0.5)
}

// Delta returns the vector from the start to the end point of this line segment.
func (l Line2) Delta() Vector2 {
	return l.End.Sub(l.Start)
}

// DistanceSquared returns the square of the distance
// from the start point to the end point.
func (l Line2) DistanceSquared() float32 {
	return l.Start.DistanceToSquared(l.End)
}

// Distance returns the distance from the start point to the end point.
func (l Line2) Distance() float32 {
	return l.Start.DistanceTo(l.End)
}

// ClosestPointToPoint returns the point on this line segment closest
// to the given point. For a zero-length segment it returns the start point.
func (l Line2) ClosestPointToPoint(point Vector2) Vector2 {
	d := l.Delta()
	lsq := d.LengthSquared()
	if lsq == 0 {
		return l.Start
	}
	t := Clamp(d.Dot(point.Sub(l.Start))/lsq, 0, 1)
	return l.Start.Add(d.MulScalar(t))
}
