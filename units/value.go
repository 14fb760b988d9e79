// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "fmt"

// Value is a dimension value with a unit, and a cached conversion
// of that value into rendered dots.
type Value struct {
	// Value is the value in terms of the specified unit.
	Value float32

	// Unit is the unit used for the value.
	Unit Units

	// Dots is the computed value in rendered dots,
	// set by the most recent call to [Value.ToDots].
	Dots float32
}

// New returns a new [Value] with the given value and unit.
func New(val float32, un Units) Value {
	return Value{Value: val, Unit: un}
}

// Dp returns a new density-independent pixel [Value].
func Dp(val float32) Value { return New(val, UnitDp) }

// Px returns a new CSS pixel [Value].
func Px(val float32) Value { return New(val, UnitPx) }

// Pt returns a new point [Value].
func Pt(val float32) Value { return New(val, UnitPt) }

// In returns a new inch [Value].
func In(val float32) Value { return New(val, UnitIn) }

// Mm returns a new millimeter [Value].
func Mm(val float32) Value { return New(val, UnitMm) }

// Cm returns a new centimeter [Value].
func Cm(val float32) Value { return New(val, UnitCm) }

// Q returns a new quarter-millimeter [Value].
func Q(val float32) Value { return New(val, UnitQ) }

// Pc returns a new pica [Value].
func Pc(val float32) Value { return New(val, UnitPc) }

// Dot returns a new [Value] directly in rendered dots.
func Dot(val float32) Value { return Value{Value: val, Unit: UnitDot, Dots: val} }

// Set sets the value and unit of this value.
func (v *Value) Set(val float32, un Units) {
	v.Value = val
	v.Unit = un
}

// Dp sets the value in density-independent pixels.
func (v *Value) Dp(val float32) { v.Set(val, UnitDp) }

// Px sets the value in CSS pixels.
func (v *Value) Px(val float32) { v.Set(val, UnitPx) }

// Pt sets the value in points.
func (v *Value) Pt(val float32) { v.Set(val, UnitPt) }

// In sets the value in inches.
func (v *Value) In(val float32) { v.Set(val, UnitIn) }

// Mm sets the value in millimeters.
func (v *Value) Mm(val float32) { v.Set(val, UnitMm) }

// Cm sets the value in centimeters.
func (v *Value) Cm(val float32) { v.Set(val, UnitCm) }

// ToDots converts the value into rendered dots under the given
// context, caching and returning the result.
func (v *Value) ToDots(uc *Context) float32 {
	v.Dots = uc.ToDots(v.Value, v.Unit)
	return v.Dots
}

// Convert returns the value converted to the given unit
// under the given context.
func (v Value) Convert(to Units, uc *Context) Value {
	dots := uc.ToDots(v.Value, v.Unit)
	res := New(dots/uc.ToDotsFactor(to), to)
	res.Dots = dots
	return res
}

func (v Value) String() string {
	return fmt.Sprintf("%g%v", v.Value, v.Unit)
}
