// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/plotline/plotline/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, vt, va Vector2) {
	tolassert.EqualTol(t, vt.X, va.X, standardTol)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol)
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vy, Identity2().MulVector2AsPoint(vy))
	assert.Equal(t, vxy, Identity2().MulVector2AsPoint(vxy))

	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))
	tolAssertEqualVector(t, vxy, Rotate2D(DegToRad(45)).MulVector2AsPoint(vx).MulScalar(Sqrt2))
	tolAssertEqualVector(t, vxy, Rotate2D(DegToRad(-45)).MulVector2AsPoint(vy).MulScalar(Sqrt2))

	// multiplication order is *reverse* of the order transformations logically apply
	tolAssertEqualVector(t, vy.MulScalar(2),
		Scale2D(2, 2).Mul(Rotate2D(DegToRad(90))).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, Vec2(2, 1),
		Translate2D(2, 0).Mul(Rotate2D(DegToRad(90))).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, Vec2(0, 2),
		Rotate2D(DegToRad(90)).Mul(Translate2D(2, 0)).MulVector2AsPoint(v0))

	// builder methods apply before the receiver, matching the Mul order
	tolAssertEqualVector(t,
		Translate2D(2, 0).Mul(Rotate2D(DegToRad(90))).MulVector2AsPoint(vx),
		Translate2D(2, 0).Rotate(DegToRad(90)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t,
		Scale2D(2, 3).Mul(Translate2D(1, 1)).MulVector2AsPoint(vx),
		Scale2D(2, 3).Translate(1, 1).MulVector2AsPoint(vx))

	tolassert.EqualTol(t, DegToRad(-90), Rotate2D(DegToRad(-90)).ExtractRot(), standardTol)
	tolassert.EqualTol(t, DegToRad(-45), Rotate2D(DegToRad(-45)).ExtractRot(), standardTol)
	tolassert.EqualTol(t, DegToRad(45), Rotate2D(DegToRad(45)).ExtractRot(), standardTol)
	tolassert.EqualTol(t, DegToRad(90), Rotate2D(DegToRad(90)).ExtractRot(), standardTol)

	scx, scy := Scale2D(2, 3).ExtractScale()
	tolassert.EqualTol(t, 2, scx, standardTol)
	tolassert.EqualTol(t, 3, scy, standardTol)
}

func TestMatrix2Inverse(t *testing.T) {
	m := Translate2D(4, -2).Mul(Rotate2D(DegToRad(30))).Mul(Scale2D(2, 2))
	mi := m.Inverse()

	for _, v := range []Vector2{Vec2(0, 0), Vec2(1, 0), Vec2(-3, 7), Vec2(0.5, -0.25)} {
		tolAssertEqualVector(t, v, mi.MulVector2AsPoint(m.MulVector2AsPoint(v)))
	}
	tolassert.EqualTol(t, 1, m.Mul(mi).Det(), standardTol)
}
