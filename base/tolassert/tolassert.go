// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (in other words, near equality).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the two given numbers are within a standard
// tolerance (0.001) of each other.
func Equal[T constraints.Float](t *testing.T, expected T, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are within
// the given tolerance of each other.
func EqualTol[T constraints.Float](t *testing.T, expected T, actual T, tol T, msgAndArgs ...any) bool {
	if actual >= expected-tol && actual <= expected+tol {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}
