// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/plotline/plotline/math32"
)

// kappa is the control point distance for approximating a quarter
// circle with a cubic Bézier: 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498307936

// Line adds a line segment from (x1, y1) to (x2, y2).
func (p *Path) Line(x1, y1, x2, y2 float32) *Path {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// Polyline adds multiple connected lines, with no final Close.
func (p *Path) Polyline(points ...math32.Vector2) *Path {
	sz := len(points)
	if sz < 2 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < sz; i++ {
		p.LineTo(points[i].X, points[i].Y)
	}
	return p
}

// Polygon adds multiple connected lines with a final Close.
func (p *Path) Polygon(points ...math32.Vector2) *Path {
	p.Polyline(points...)
	p.Close()
	return p
}

// Rectangle adds a rectangle of width w and height h with its
// lower-left corner at (x, y).
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	if w == 0 || h == 0 {
		return p
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// Circle adds a circle at the given center coordinates with radius r.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse at the given center coordinates with radii
// rx and ry, as four cubic Bézier quadrants.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	if rx == 0 || ry == 0 {
		return p
	}
	kx := rx * kappa
	ky := ry * kappa
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}

// RegularPolygon adds a regular polygon with n vertices inscribed in a
// circle of radius r. The up boolean defines whether the first vertex
// points upward or is rotated half a step.
func (p *Path) RegularPolygon(n int, r float32, up bool) *Path {
	if n < 3 || r == 0 {
		return p
	}
	dtheta := 2 * math32.Pi / float32(n)
	theta0 := float32(0.5 * math32.Pi)
	if !up {
		theta0 += dtheta / 2
	}
	for i := 0; i < n; i++ {
		sintheta, costheta := math32.Sincos(theta0 + float32(i)*dtheta)
		if i == 0 {
			p.MoveTo(r*costheta, r*sintheta)
		} else {
			p.LineTo(r*costheta, r*sintheta)
		}
	}
	p.Close()
	return p
}
