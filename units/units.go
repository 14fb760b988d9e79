// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units supplies dimensional units of measure (points, pixels,
// physical units), unit values, and the conversion context needed to
// resolve them into rendered dots.
package units

// Units is an enum of unit types for scalar dimension values.
type Units int32 //enums:enum -trim-prefix Unit -transform lower

const (
	// UnitDp is density-independent pixels: 1/160th of an inch.
	UnitDp Units = iota

	// UnitPx is CSS pixels: 1/96th of an inch.
	UnitPx

	// UnitPt is typography points: 1/72th of an inch.
	UnitPt

	// UnitIn is physical inches.
	UnitIn

	// UnitMm is physical millimeters.
	UnitMm

	// UnitCm is physical centimeters.
	UnitCm

	// UnitQ is quarter-millimeters: 1/40th of a centimeter.
	UnitQ

	// UnitPc is picas: 1/6th of an inch.
	UnitPc

	// UnitDot is actual rendered dots (raw display pixels).
	// A [Value] in dots is used directly without conversion.
	UnitDot
)

// Context specifies everything needed to resolve unit values
// into rendered dots.
type Context struct {
	// DPI is the dots-per-inch of the rendering target.
	DPI float32
}

// Defaults sets the context to a standard high-density display (160 DPI).
func (uc *Context) Defaults() {
	uc.DPI = 160
}

// ToDotsFactor returns the factor that converts the given unit
// into rendered dots under this context.
func (uc *Context) ToDotsFactor(un Units) float32 {
	switch un {
	case UnitDp:
		return uc.DPI / 160
	case UnitPx:
		return uc.DPI / 96
	case UnitPt:
		return uc.DPI / 72
	case UnitIn:
		return uc.DPI
	case UnitMm:
		return uc.DPI / 25.4
	case UnitCm:
		return uc.DPI / 2.54
	case UnitQ:
		return uc.DPI / 101.6
	case UnitPc:
		return uc.DPI / 6
	default: // UnitDot
		return 1
	}
}

// ToDots converts the given value in the given unit into rendered dots.
func (uc *Context) ToDots(val float32, un Units) float32 {
	return val * uc.ToDotsFactor(un)
}
