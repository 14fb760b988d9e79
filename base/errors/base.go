// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides error handling helpers on top of the
// standard library errors package, which it re-exports.
package errors

import "errors"

// Aliases for the standard library errors package so that
// this package can be used as a drop-in replacement for it.
var (
	New    = errors.New
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)
