// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"github.com/plotline/plotline/math32"
	"github.com/stretchr/testify/assert"
)

func TestPointHits(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 3, Y: 4}}

	assert.Equal(t, []int{0}, PointHits(0.5, 0, pts, 1))
	assert.Equal(t, []int{0, 2}, PointHits(0, 0, pts, 5))
	assert.Nil(t, PointHits(50, 50, pts, 5))

	// a point exactly at the radius still hits
	assert.Equal(t, []int{0}, PointHits(0, 0, pts[2:], 5))
}

func TestSegmentHits(t *testing.T) {
	seg := []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}}

	assert.Equal(t, []int{0}, SegmentHits(5, 0.5, seg, 1))
	assert.Nil(t, SegmentHits(5, 2, seg, 1))

	// beyond either end the projection leaves [0, 1]
	assert.Nil(t, SegmentHits(-2, 0, seg, 1))
	assert.Nil(t, SegmentHits(12, 0, seg, 1))
}

func TestSegmentHitsPointsFirst(t *testing.T) {
	// vertex 0 and the far segment starting at vertex 2 are both in
	// range; the vertex index must come first
	pts := []math32.Vector2{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 1}, {X: -100, Y: 1},
	}
	assert.Equal(t, []int{0, 2}, SegmentHits(0, 0.5, pts, 0.6))
}

func TestSegmentHitsNearVertex(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}

	// a hit vertex suppresses its adjacent segments
	assert.Equal(t, []int{1}, SegmentHits(10, 0.5, pts, 1))

	// mid-segment hit away from any vertex
	assert.Equal(t, []int{1}, SegmentHits(10.3, 5, pts, 1))
}

func TestSegmentHitsDegenerate(t *testing.T) {
	// single point degrades to a point test
	one := []math32.Vector2{{X: 2, Y: 2}}
	assert.Equal(t, []int{0}, SegmentHits(2, 2.5, one, 1))
	assert.Nil(t, SegmentHits(5, 5, one, 1))

	assert.Nil(t, SegmentHits(0, 0, nil, 1))

	// zero-length segments are skipped, not a crash
	rep := []math32.Vector2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}}
	assert.Equal(t, []int{1}, SegmentHits(5, 0.3, rep, 1))

	coincident := []math32.Vector2{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}
	assert.Equal(t, []int{0, 1, 2}, SegmentHits(5, 5.2, coincident, 1))
}
