// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Commonly referenced colors.
var (
	Black       = colornames.Black
	White       = colornames.White
	Red         = colornames.Red
	Blue        = colornames.Blue
	Transparent = color.RGBA{}
)
