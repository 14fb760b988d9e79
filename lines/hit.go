// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"github.com/plotline/plotline/math32"
)

// PointHits returns the indices of all vertices within radius of the
// query point (cx, cy). Comparisons use squared distances.
func PointHits(cx, cy float32, pts []math32.Vector2, radius float32) []int {
	r2 := radius * radius
	var res []int
	for i, p := range pts {
		dx := cx - p.X
		dy := cy - p.Y
		if dx*dx+dy*dy <= r2 {
			res = append(res, i)
		}
	}
	return res
}

// SegmentHits returns the indices of all polyline vertices within
// radius of the query point (cx, cy), followed by the start indices of
// all segments within radius of it. A segment only counts when the
// foot of the perpendicular from the query point lies on it and
// neither of its endpoints is itself a vertex hit, so a hit near a
// vertex is reported once. With fewer than 2 vertices this reduces to
// a pure point-distance test.
func SegmentHits(cx, cy float32, pts []math32.Vector2, radius float32) []int {
	if len(pts) < 2 {
		return PointHits(cx, cy, pts, radius)
	}
	r2 := radius * radius
	pointHit := make([]bool, len(pts))
	var res []int
	for i, p := range pts {
		dx := cx - p.X
		dy := cy - p.Y
		if dx*dx+dy*dy <= r2 {
			pointHit[i] = true
			res = append(res, i)
		}
	}
	for i := 0; i+1 < len(pts); i++ {
		if pointHit[i] || pointHit[i+1] {
			continue
		}
		sdx := pts[i+1].X - pts[i].X
		sdy := pts[i+1].Y - pts[i].Y
		l2 := sdx*sdx + sdy*sdy
		// a zero-length segment makes u non-finite, which fails the
		// range test on its own
		u := ((cx-pts[i].X)*sdx + (cy-pts[i].Y)*sdy) / l2
		if !(u >= 0 && u <= 1) {
			continue
		}
		fx := pts[i].X + u*sdx
		fy := pts[i].Y + u*sdy
		dx := cx - fx
		dy := cy - fy
		if dx*dx+dy*dy <= r2 {
			res = append(res, i)
		}
	}
	return res
}
