// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data defines the data access interfaces and validity masking
// used by line primitives.
package data

import (
	"math"
	"strconv"

	"github.com/plotline/plotline/base/errors"
)

var (
	// ErrInfinity indicates that infinite values were found in data
	// that does not allow them.
	ErrInfinity = errors.New("data: infinity values not allowed")

	// ErrNoData indicates that no usable data points were present.
	ErrNoData = errors.New("data: no data points")
)

// CheckFloats returns [ErrInfinity] if any of the arguments are infinite,
// and [ErrNoData] if there are no non-NaN values among them.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// CheckNaNs returns true if any of the floats are NaN.
func CheckNaNs(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

// Valuer is the interface for a 1D sequence of data values,
// supporting float64 and string representations.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D returns the float64 value at given index.
	Float1D(i int) float64

	// String1D returns the string value at given index.
	String1D(i int) string
}

// Values provides a minimal implementation of [Valuer]
// using a slice of float64.
type Values []float64

func (vs Values) Len() int              { return len(vs) }
func (vs Values) Float1D(i int) float64 { return vs[i] }
func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}

// Converter converts raw coordinate values into plain float64 data values,
// for data expressed in external units (dates, categories). A nil Converter
// means values are used as they are.
type Converter interface {
	// Convert returns the converted version of the given values.
	// It must not modify the input slice.
	Convert(vals []float64) []float64
}

// Equal reports whether the two slices have the same length and
// exactly equal contents. NaN is not equal to itself, so slices
// containing NaN always differ.
func Equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
