// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	err := New("oops")
	assert.Equal(t, err, Log(err))
	assert.NoError(t, Log(nil))

	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 3, Log1(3, err))

	a, b := Log2("x", 4, nil)
	assert.Equal(t, "x", a)
	assert.Equal(t, 4, b)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("oops")) })
	assert.Equal(t, 3, Must1(3, nil))
	assert.Panics(t, func() { Must1(3, New("oops")) })
}
