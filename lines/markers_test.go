// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"github.com/plotline/plotline/colors"
	"github.com/plotline/plotline/math32"
	"github.com/plotline/plotline/render/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawMarkers draws a fresh line with the given marker and returns
// the recorded markers op.
func drawMarkers(t *testing.T, marker string, set func(ln *Line)) *record.Op {
	ln, err := New([]float64{0, 10}, []float64{0, 0}, nil)
	require.NoError(t, err)
	ln.SetMarker(marker)
	if set != nil {
		set(ln)
	}
	rd := record.New(100, 100, 72)
	ln.Draw(rd)
	op := rd.Find(record.DrawMarkers)
	require.NotNil(t, op)
	return op
}

func TestMarkerTransforms(t *testing.T) {
	// square: the unit rect is centered and scaled to the marker size
	op := drawMarkers(t, "s", nil)
	assert.Equal(t, math32.Vec2(-3, -3), op.MarkerMatrix.MulVector2AsPoint(math32.Vec2(0, 0)))
	assert.Equal(t, math32.Vec2(3, 3), op.MarkerMatrix.MulVector2AsPoint(math32.Vec2(1, 1)))

	// triangle-down: the apex of the unit triangle flips below center
	op = drawMarkers(t, "v", nil)
	assert.Equal(t, math32.Vec2(0, -3), op.MarkerMatrix.MulVector2AsPoint(math32.Vec2(0, 1)))

	// the marker path stamps every valid data point
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}}, op.Path.Points())
}

func TestMarkerAutoColors(t *testing.T) {
	// filled markers default to a black edge and the line color face
	op := drawMarkers(t, "o", nil)
	assert.Equal(t, colors.Black, colors.ToUniform(op.GC.Color))
	require.NotNil(t, op.Face)
	assert.Equal(t, colors.Blue, colors.ToUniform(op.Face))

	// stroke-only markers take the line color and no face
	op = drawMarkers(t, "+", nil)
	assert.Equal(t, colors.Blue, colors.ToUniform(op.GC.Color))
	assert.Nil(t, op.Face)

	// point fills, but is not in the black-edge class
	op = drawMarkers(t, ".", nil)
	assert.Equal(t, colors.Blue, colors.ToUniform(op.GC.Color))
	require.NotNil(t, op.Face)
}

func TestMarkerColorOverrides(t *testing.T) {
	op := drawMarkers(t, "o", func(ln *Line) {
		require.NoError(t, ln.SetMarkerEdgeColor("r"))
		require.NoError(t, ln.SetMarkerFaceColor("none"))
	})
	assert.Equal(t, colors.Red, colors.ToUniform(op.GC.Color))
	assert.Nil(t, op.Face)

	op = drawMarkers(t, "o", func(ln *Line) {
		require.NoError(t, ln.SetMarkerEdgeColor("none"))
	})
	assert.Nil(t, op.GC.Color)
}

func TestMarkerGC(t *testing.T) {
	op := drawMarkers(t, "o", func(ln *Line) {
		ln.MarkerEdgeWidth = 2
		ln.Alpha = 0.25
	})
	assert.Equal(t, float32(2), op.GC.Width)
	assert.Equal(t, float32(0.25), op.GC.Alpha)
}

func TestMarkerNone(t *testing.T) {
	ln, err := New([]float64{0, 10}, []float64{0, 0}, nil)
	require.NoError(t, err)
	rd := record.New(100, 100, 72)
	ln.Draw(rd)
	assert.Nil(t, rd.Find(record.DrawMarkers))
}

func TestMarkersEnum(t *testing.T) {
	assert.Equal(t, "triangle-up", MarkerTriangleUp.String())
	assert.Equal(t, "thin-diamond", MarkerThinDiamond.String())

	var mk Markers
	assert.NoError(t, mk.SetString("caret-down"))
	assert.Equal(t, MarkerCaretDown, mk)
	assert.Error(t, mk.SetString("star"))
}

func TestMarkerCodes(t *testing.T) {
	assert.Equal(t, MarkerCircle, markerCodes["o"])
	assert.Equal(t, MarkerDiamond, markerCodes["D"])
	assert.Equal(t, MarkerThinDiamond, markerCodes["d"])
	assert.Equal(t, MarkerHexagon1, markerCodes["h"])
	assert.Equal(t, MarkerHexagon2, markerCodes["H"])
	assert.Equal(t, MarkerTriDown, markerCodes["1"])

	// every drawable marker has a template and transform
	for _, mk := range MarkersValues() {
		if mk == MarkerNone {
			continue
		}
		assert.NotNil(t, markerDefs[mk].transform, "%v", mk)
		assert.NotEmpty(t, markerDefs[mk].template, "%v", mk)
	}
}
