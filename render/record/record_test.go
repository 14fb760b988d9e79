// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"testing"

	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/path"
	"github.com/plotline/plotline/render"
	"github.com/plotline/plotline/units"
	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	rd := New(64, 48, 72)
	assert.Equal(t, float32(6), rd.PointsToPixels(6))

	un, sz := rd.Size()
	assert.Equal(t, units.UnitDot, un)
	assert.Equal(t, math32.Vec2(64, 48), sz)

	gc := render.NewGC()
	gc.Dashes = []float32{4, 2}
	p := path.New().Line(0, 0, 10, 10)

	rd.OpenGroup("line2d")
	rd.DrawPath(gc, *p, math32.Identity2())
	rd.CloseGroup()

	assert.Equal(t, []string{OpenGroup, DrawPath, CloseGroup}, rd.Kinds())
	assert.Equal(t, "line2d", rd.Ops[0].Name)

	// the recorded gc is isolated from later mutation
	gc.Dashes[0] = 99
	op := rd.Find(DrawPath)
	assert.NotNil(t, op)
	assert.Equal(t, []float32{4, 2}, op.GC.Dashes)

	assert.Nil(t, rd.Find(DrawMarkers))

	rd.Reset()
	assert.Empty(t, rd.Ops)
}
