// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package ewma implements exponentially weighted moving average filters for
// sequentially arriving scalar samples. Two variants are provided: a
// floating point filter and an integer-only filter for targets where
// floating point arithmetic is unavailable or unwanted. Both are single-pole
// IIR low-pass filters with O(1) memory: each output depends only on the
// previous output and the new sample.
package ewma

import "golang.org/x/exp/constraints"

// Number is the set of sample types a Filter can smooth.
type Number interface {
	constraints.Integer | constraints.Float
}

// Filter is the contract shared by the float and integer filter variants:
// feed samples one at a time, read the current average and the exponentially
// fading local extrema of the series.
type Filter[T Number] interface {
	// Update pushes the next sample of the series into the filter and
	// returns the new average.
	Update(sample T) (T, error)

	// Value returns the current average. The second return value is false
	// until the first sample has been ingested.
	Value() (T, bool)

	// Range returns the fading local minimum and maximum of the series. The
	// third return value is false until the first sample has been ingested.
	Range() (minimum, maximum T, ok bool)
}

// Default smoothing factors, chosen for slow decay (heavy smoothing).
const (
	DefaultAlpha            = 0.01
	DefaultAlphaNumerator   = 1
	DefaultAlphaDenominator = 100
)

var (
	_ Filter[float64] = (*FloatFilter[float64])(nil)
	_ Filter[int64]   = (*IntFilter[int64])(nil)
)
