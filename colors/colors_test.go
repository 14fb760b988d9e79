// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := map[string]color.RGBA{
		"":          {},
		"none":      {},
		"None":      {},
		"k":         {0, 0, 0, 255},
		"b":         {0, 0, 255, 255},
		"g":         {0, 128, 0, 255},
		"w":         {255, 255, 255, 255},
		"red":       {255, 0, 0, 255},
		"RoyalBlue": {65, 105, 225, 255},
		"#f00":      {255, 0, 0, 255},
		"#ff8000":   {255, 128, 0, 255},
		"#ff800080": {255, 128, 0, 128},
	}
	for s, want := range tests {
		c, err := FromString(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, c, s)
	}

	_, err := FromString("sharpvermilion")
	assert.Error(t, err)
}

func TestUniform(t *testing.T) {
	u := Uniform(color.RGBA{10, 20, 30, 255})
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, ToUniform(u))
	assert.Equal(t, color.RGBA{}, ToUniform(nil))

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(color.RGBA{}))
	assert.False(t, IsNil(color.RGBA{0, 0, 0, 255}))
}

func TestApplyOpacity(t *testing.T) {
	c := color.RGBA{100, 200, 40, 255}
	assert.Equal(t, c, ApplyOpacity(c, 1))
	assert.Equal(t, color.RGBA{}, ApplyOpacity(c, 0))
	assert.Equal(t, color.RGBA{50, 100, 20, 127}, ApplyOpacity(c, 0.5))
}
