// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import "math"

// Mask is a validity bitmap alongside a data array: true marks a valid
// element, false an invalid one. Invalid elements are excluded from
// drawing and hit testing, splitting a polyline into separate runs.
type Mask []bool

// Run is a contiguous index range, from Start up to but not including End.
type Run struct {
	Start, End int
}

// Len returns the number of indexes in the run.
func (r Run) Len() int { return r.End - r.Start }

// NewMask returns a new all-valid mask of length n.
func NewMask(n int) Mask {
	mk := make(Mask, n)
	for i := range mk {
		mk[i] = true
	}
	return mk
}

// Count returns the number of valid elements.
func (mk Mask) Count() int {
	n := 0
	for _, ok := range mk {
		if ok {
			n++
		}
	}
	return n
}

// And sets this mask to the conjunction of itself and the other mask,
// which must have the same length.
func (mk Mask) And(other Mask) {
	for i := range mk {
		mk[i] = mk[i] && other[i]
	}
}

// Runs returns the maximal runs of consecutive valid indexes,
// in the original index space. An all-invalid mask returns nil.
func (mk Mask) Runs() []Run {
	var runs []Run
	start := -1
	for i, ok := range mk {
		if ok && start < 0 {
			start = i
		} else if !ok && start >= 0 {
			runs = append(runs, Run{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, Run{start, len(mk)})
	}
	return runs
}

// RunsCompressed returns the maximal runs of consecutive valid indexes,
// re-indexed into the compressed space of an array holding only the
// valid elements: the runs tile [0, Count()) in order.
func (mk Mask) RunsCompressed() []Run {
	runs := mk.Runs()
	off := 0
	for i, r := range runs {
		n := r.Len()
		runs[i] = Run{off, off + n}
		off += n
	}
	return runs
}

// Compress returns the elements of vals at valid indexes.
// vals must have the same length as the mask.
func (mk Mask) Compress(vals []float64) []float64 {
	res := make([]float64, 0, len(vals))
	for i, ok := range mk {
		if ok {
			res = append(res, vals[i])
		}
	}
	return res
}

// MaskFinite marks as invalid every index at which either of the
// given arrays is NaN or infinite.
func (mk Mask) MaskFinite(xs, ys []float64) {
	for i := range mk {
		if !finite(xs[i]) || !finite(ys[i]) {
			mk[i] = false
		}
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
