// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ewma

import "errors"

var (
	// ErrInvalidParameter is returned by the constructors when the smoothing
	// factor is out of range.
	ErrInvalidParameter = errors.New("invalid filter parameter")

	// ErrInvalidInput is returned by FloatFilter.Update when the sample is
	// NaN or infinite.
	ErrInvalidInput = errors.New("invalid input sample")

	// ErrArithmeticOverflow is returned by IntFilter.Update when an
	// intermediate computation does not fit the filter's integer width.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)
