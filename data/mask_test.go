// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuns(t *testing.T) {
	tests := []struct {
		mask Mask
		want []Run
	}{
		{Mask{}, nil},
		{Mask{false}, nil},
		{Mask{true}, []Run{{0, 1}}},
		{Mask{true, true, true}, []Run{{0, 3}}},
		{Mask{false, false, false}, nil},
		{Mask{true, false, true}, []Run{{0, 1}, {2, 3}}},
		{Mask{false, true, true, false, true}, []Run{{1, 3}, {4, 5}}},
		{Mask{true, true, false, false, true, true, true}, []Run{{0, 2}, {4, 7}}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.mask.Runs(), "%v", test.mask)
	}
}

// every valid index must land in exactly one run, runs must be ordered and
// disjoint, and compressed runs must exactly tile [0, Count()).
func TestRunsPartition(t *testing.T) {
	masks := []Mask{
		NewMask(6),
		make(Mask, 6),
		{true, false, true, false, true, false},
		{false, true, true, true, false, false, true},
		{true},
		{false},
		{true, true, false, true},
	}
	for _, mk := range masks {
		covered := make([]int, len(mk))
		prevEnd := -1
		for _, r := range mk.Runs() {
			assert.Less(t, prevEnd, r.Start, "%v", mk)
			assert.Less(t, r.Start, r.End, "%v", mk)
			for i := r.Start; i < r.End; i++ {
				assert.True(t, mk[i], "%v", mk)
				covered[i]++
			}
			prevEnd = r.End
		}
		for i, ok := range mk {
			if ok {
				assert.Equal(t, 1, covered[i], "%v at %d", mk, i)
			} else {
				assert.Equal(t, 0, covered[i], "%v at %d", mk, i)
			}
		}

		off := 0
		for _, r := range mk.RunsCompressed() {
			assert.Equal(t, off, r.Start, "%v", mk)
			off = r.End
		}
		assert.Equal(t, mk.Count(), off, "%v", mk)
	}
}

func TestCompress(t *testing.T) {
	mk := Mask{true, false, true, true, false}
	assert.Equal(t, []float64{1, 3, 4}, mk.Compress([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 3, mk.Count())

	mk.And(Mask{true, true, false, true, true})
	assert.Equal(t, Mask{true, false, false, true, false}, mk)
}

func TestMaskFinite(t *testing.T) {
	xs := []float64{1, math.NaN(), 3, 4}
	ys := []float64{1, 2, math.Inf(1), 4}
	mk := NewMask(4)
	mk.MaskFinite(xs, ys)
	assert.Equal(t, Mask{true, false, false, true}, mk)
}

func TestCheckFloats(t *testing.T) {
	assert.NoError(t, CheckFloats(1, 2, 3))
	assert.NoError(t, CheckFloats(math.NaN(), 1))
	assert.ErrorIs(t, CheckFloats(1, math.Inf(1)), ErrInfinity)
	assert.ErrorIs(t, CheckFloats(math.NaN(), math.NaN()), ErrNoData)
	assert.ErrorIs(t, CheckFloats(), ErrNoData)

	assert.True(t, CheckNaNs(1, math.NaN()))
	assert.False(t, CheckNaNs(1, 2))
}

func TestValues(t *testing.T) {
	vs := Values{1.5, 2, 3}
	assert.Equal(t, 3, vs.Len())
	assert.Equal(t, 2.0, vs.Float1D(1))
	assert.Equal(t, "1.5", vs.String1D(0))

	assert.True(t, Equal([]float64{1, 2}, []float64{1, 2}))
	assert.False(t, Equal([]float64{1, 2}, []float64{1, 3}))
	assert.False(t, Equal([]float64{1}, []float64{1, 2}))
	assert.False(t, Equal([]float64{math.NaN()}, []float64{math.NaN()}))
}
