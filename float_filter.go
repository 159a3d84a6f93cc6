// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ewma

import (
	"fmt"
	"math"

	"github.com/pion/logging"
	"golang.org/x/exp/constraints"
)

// FloatOption is a functional option for a FloatFilter.
type FloatOption[T constraints.Float] func(*FloatFilter[T]) error

// WithFloatLoggerFactory configures a custom logger factory for a
// FloatFilter.
func WithFloatLoggerFactory[T constraints.Float](lf logging.LoggerFactory) FloatOption[T] {
	return func(f *FloatFilter[T]) error {
		f.log = lf.NewLogger("ewma_float_filter")

		return nil
	}
}

// WithFloatInitialValue seeds the filter at construction time instead of
// with the first sample.
func WithFloatInitialValue[T constraints.Float](value T) FloatOption[T] {
	return func(f *FloatFilter[T]) error {
		if !isFinite(value) {
			return fmt.Errorf("%w: initial value must be finite, got %v", ErrInvalidParameter, value)
		}
		f.seed(value)

		return nil
	}
}

// FloatFilter smooths a series of floating point samples with the recurrence
// average += alpha * (sample - average). It additionally tracks the
// exponentially weighted variance of the series and exponentially fading
// local extrema.
//
// Unless seeded via WithFloatInitialValue, the first sample becomes the
// initial average. A FloatFilter is a plain sequentially mutated value and
// makes no thread-safety guarantee.
type FloatFilter[T constraints.Float] struct {
	log         logging.LeveledLogger
	initialized bool
	alpha       T
	average     T
	variance    T
	localMin    T
	localMax    T
}

// NewFloatFilter creates a FloatFilter with smoothing factor alpha in
// (0, 1]. Alpha close to 1 discards history fast and tracks noise; alpha
// close to 0 smooths heavily and responds slowly.
func NewFloatFilter[T constraints.Float](alpha T, opts ...FloatOption[T]) (*FloatFilter[T], error) {
	if math.IsNaN(float64(alpha)) || alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: alpha must be in (0, 1], got %v", ErrInvalidParameter, alpha)
	}
	f := &FloatFilter[T]{
		log:   logging.NewDefaultLoggerFactory().NewLogger("ewma_float_filter"),
		alpha: alpha,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (f *FloatFilter[T]) seed(value T) {
	f.initialized = true
	f.average = value
	f.variance = 0
	f.localMin = value
	f.localMax = value
}

// Update pushes the next sample into the filter and returns the new average.
// Non-finite samples fail with ErrInvalidInput and leave the filter
// unchanged; a NaN let through would poison every later output.
func (f *FloatFilter[T]) Update(sample T) (T, error) {
	if !isFinite(sample) {
		return 0, fmt.Errorf("%w: sample must be finite, got %v", ErrInvalidInput, sample)
	}
	if !f.initialized {
		f.seed(sample)

		return f.average, nil
	}

	delta := sample - f.average
	f.average += f.alpha * delta
	f.variance = (1 - f.alpha) * (f.variance + f.alpha*delta*delta)

	// A new extreme replaces the old one outright; a sample between the
	// average and an extreme pulls that extreme toward it, so the extrema
	// fade toward the average over time.
	switch {
	case sample > f.localMax:
		f.localMax = sample
	case sample > f.average:
		f.localMax += f.alpha * (sample - f.localMax)
	}
	switch {
	case sample < f.localMin:
		f.localMin = sample
	case sample < f.average:
		f.localMin += f.alpha * (sample - f.localMin)
	}

	f.log.Tracef("sample=%v, average=%v, variance=%v", sample, f.average, f.variance)

	return f.average, nil
}

// Value returns the current average. The second return value is false until
// the first sample has been ingested.
func (f *FloatFilter[T]) Value() (T, bool) {
	return f.average, f.initialized
}

// Variance returns the exponentially weighted variance of the series. The
// second return value is false until the first sample has been ingested.
func (f *FloatFilter[T]) Variance() (T, bool) {
	return f.variance, f.initialized
}

// Range returns the fading local minimum and maximum of the series. The
// third return value is false until the first sample has been ingested.
func (f *FloatFilter[T]) Range() (minimum, maximum T, ok bool) {
	return f.localMin, f.localMax, f.initialized
}

func isFinite[T constraints.Float](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
