// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 3x2 affine transformation matrix in row major order:
//
//	[XX XY X0]
//	[YX YY Y0]
//
// The omitted last row of the full 3x3 matrix is always [0 0 1].
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a [Matrix2] that translates by the given offsets.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a [Matrix2] that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a [Matrix2] that rotates by the given angle in radians,
// counter clockwise for positive angles in a standard right-handed
// coordinate system (clockwise when Y increases downward).
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Mul returns a*b, which applies b first and then a when transforming points.
// The multiplication order is therefore the reverse of the order in which
// the transformations logically apply.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// Translate returns a copy of this matrix with a translation by the
// given offsets applied before it.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a copy of this matrix with a scaling by the
// given factors applied before it.
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a copy of this matrix with a rotation by the
// given angle in radians applied before it.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// MulVector2AsPoint returns the given point transformed by this matrix,
// including the translation component.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// MulVector2AsVector returns the given vector transformed by this matrix,
// without the translation component.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// IsIdentity reports whether this matrix is the identity.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Det returns the determinant of this matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of this matrix.
// A singular matrix yields non-finite components.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	return Matrix2{
		XX: a.YY / det,
		YX: -a.YX / det,
		XY: -a.XY / det,
		YY: a.XX / det,
		X0: (a.XY*a.Y0 - a.YY*a.X0) / det,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) / det,
	}
}

// ExtractRot extracts the rotation angle in radians from this matrix.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}

// ExtractScale extracts the x and y scale factors from this matrix.
// The y factor is signed by the determinant so that reflections
// are reported as a negative scale.
func (a Matrix2) ExtractScale() (scx, scy float32) {
	scx = Sqrt(a.XX*a.XX + a.YX*a.YX)
	scy = a.Det() / scx
	return
}
