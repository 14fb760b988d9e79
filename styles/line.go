// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles defines shared stroke styling types for line rendering.
package styles

// end-cap of a line: how the ends of stroked segments are drawn
type LineCaps int32 //enums:enum -trim-prefix LineCap -transform kebab

const (
	// LineCapButt indicates to draw no line caps; the stroke stops
	// exactly at the segment end.
	LineCapButt LineCaps = iota

	// LineCapRound indicates to draw a semicircle on each line
	// end with a diameter of the stroke width.
	LineCapRound

	// LineCapProjecting indicates to extend the stroke past the
	// segment end by half of the stroke width, squared off.
	LineCapProjecting
)

// the way in which line segments are joined together
type LineJoins int32 //enums:enum -trim-prefix LineJoin -transform kebab

const (
	LineJoinMiter LineJoins = iota
	LineJoinRound
	LineJoinBevel
)
