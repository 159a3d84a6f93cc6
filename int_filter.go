// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ewma

import (
	"fmt"

	"github.com/pion/logging"
	"golang.org/x/exp/constraints"
)

// IntOption is a functional option for an IntFilter.
type IntOption[T constraints.Integer] func(*IntFilter[T]) error

// WithIntLoggerFactory configures a custom logger factory for an IntFilter.
func WithIntLoggerFactory[T constraints.Integer](lf logging.LoggerFactory) IntOption[T] {
	return func(f *IntFilter[T]) error {
		f.log = lf.NewLogger("ewma_int_filter")

		return nil
	}
}

// WithIntInitialValue seeds the filter at construction time instead of with
// the first sample.
func WithIntInitialValue[T constraints.Integer](value T) IntOption[T] {
	return func(f *IntFilter[T]) error {
		f.seed(value)

		return nil
	}
}

// IntFilter smooths a series of integer samples using only integer
// arithmetic. The smoothing factor is the exact rational num/den, so the
// update is average += (num * (sample - average)) / den with truncating
// division (toward zero). Truncation loses at most one rounding unit per
// update and the error does not accumulate: fed a constant signal, the
// average stalls strictly less than den/num away from it and never drifts
// further.
//
// The difference sample - average and the intermediate product
// num * |difference| are overflow-checked for every instantiated width,
// signed or unsigned. The truncated step never exceeds the difference, so
// every successful update lands between the old average and the sample and
// the average itself cannot overflow.
//
// Unless seeded via WithIntInitialValue, the first sample becomes the
// initial average. An IntFilter is a plain sequentially mutated value and
// makes no thread-safety guarantee.
type IntFilter[T constraints.Integer] struct {
	log         logging.LeveledLogger
	initialized bool
	num         T
	den         T
	average     T
	localMin    T
	localMax    T
}

// NewIntFilter creates an IntFilter with smoothing factor num/den. The ratio
// must satisfy 0 < num <= den.
func NewIntFilter[T constraints.Integer](num, den T, opts ...IntOption[T]) (*IntFilter[T], error) {
	if num <= 0 || den < num {
		return nil, fmt.Errorf("%w: alpha ratio must satisfy 0 < num <= den, got %v/%v", ErrInvalidParameter, num, den)
	}
	f := &IntFilter[T]{
		log: logging.NewDefaultLoggerFactory().NewLogger("ewma_int_filter"),
		num: num,
		den: den,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (f *IntFilter[T]) seed(value T) {
	f.initialized = true
	f.average = value
	f.localMin = value
	f.localMax = value
}

// Update pushes the next sample into the filter and returns the new average.
// On ErrArithmeticOverflow the filter is left unchanged; the caller may skip
// the sample and continue.
func (f *IntFilter[T]) Update(sample T) (T, error) {
	if !f.initialized {
		f.seed(sample)

		return f.average, nil
	}

	average, err := f.approach(f.average, sample)
	if err != nil {
		return 0, err
	}

	// Extrema are computed before anything is committed so a failed update
	// leaves the filter untouched.
	localMax := f.localMax
	localMin := f.localMin
	switch {
	case sample > localMax:
		localMax = sample
	case sample > average:
		if localMax, err = f.approach(localMax, sample); err != nil {
			return 0, err
		}
	}
	switch {
	case sample < localMin:
		localMin = sample
	case sample < average:
		if localMin, err = f.approach(localMin, sample); err != nil {
			return 0, err
		}
	}

	f.average = average
	f.localMax = localMax
	f.localMin = localMin

	f.log.Tracef("sample=%v, average=%v", sample, f.average)

	return f.average, nil
}

// approach moves current toward target by (num * |target - current|) / den,
// truncated toward zero.
func (f *IntFilter[T]) approach(current, target T) (T, error) {
	if current == target {
		return current, nil
	}
	downward := target < current
	var diff T
	if downward {
		diff = current - target
	} else {
		diff = target - current
	}
	if diff < 0 {
		// Signed subtraction wrapped around.
		return 0, fmt.Errorf("%w: difference between %v and %v is not representable", ErrArithmeticOverflow, target, current)
	}
	product := f.num * diff
	if product/diff != f.num {
		return 0, fmt.Errorf("%w: product %v * %v is not representable", ErrArithmeticOverflow, f.num, diff)
	}
	step := product / f.den
	if downward {
		return current - step, nil
	}

	return current + step, nil
}

// Value returns the current average. The second return value is false until
// the first sample has been ingested.
func (f *IntFilter[T]) Value() (T, bool) {
	return f.average, f.initialized
}

// Range returns the fading local minimum and maximum of the series. The
// third return value is false until the first sample has been ingested.
func (f *IntFilter[T]) Range() (minimum, maximum T, ok bool) {
	return f.localMin, f.localMax, f.initialized
}
