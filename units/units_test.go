// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/plotline/plotline/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestToDots(t *testing.T) {
	uc := &Context{}
	uc.Defaults()
	assert.Equal(t, float32(160), uc.DPI)

	tests := map[Value]float32{
		Dp(3):    3,
		Px(96):   160,
		Pt(72):   160,
		In(2):    320,
		Mm(25.4): 160,
		Cm(2.54): 160,
		Q(101.6): 160,
		Pc(6):    160,
		Dot(42):  42,
	}
	for val, want := range tests {
		v := val
		tolassert.Equal(t, want, v.ToDots(uc))
		tolassert.Equal(t, want, v.Dots)
	}
}

func TestConvert(t *testing.T) {
	uc := &Context{DPI: 72}

	v := Pt(36).Convert(UnitIn, uc)
	assert.Equal(t, UnitIn, v.Unit)
	tolassert.Equal(t, 0.5, v.Value)
	tolassert.Equal(t, 36, v.Dots)

	pt := In(1).Convert(UnitPt, uc)
	tolassert.Equal(t, 72, pt.Value)
}

func TestSetters(t *testing.T) {
	v := Value{}
	v.Pt(4)
	assert.Equal(t, Pt(4), v)
	v.Px(12)
	assert.Equal(t, Px(12), v)

	assert.Equal(t, "4pt", Pt(4).String())
}

func TestUnitsString(t *testing.T) {
	assert.Equal(t, "pt", UnitPt.String())
	assert.Equal(t, "dot", UnitDot.String())

	var u Units
	assert.NoError(t, u.SetString("mm"))
	assert.Equal(t, UnitMm, u)
	assert.Error(t, u.SetString("furlong"))
	assert.Equal(t, UnitMm, u)
}
