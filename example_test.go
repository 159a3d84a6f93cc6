// SPDX-FileCopyrightText: 2025 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package ewma_test

import (
	"fmt"

	"github.com/pion/ewma"
)

func ExampleFloatFilter() {
	filter, err := ewma.NewFloatFilter(0.5)
	if err != nil {
		panic(err)
	}
	for _, sample := range []float64{10, 20, 20} {
		average, err := filter.Update(sample)
		if err != nil {
			panic(err)
		}
		fmt.Println(average)
	}
	// Output:
	// 10
	// 15
	// 17.5
}

func ExampleIntFilter() {
	filter, err := ewma.NewIntFilter[int64](
		ewma.DefaultAlphaNumerator,
		ewma.DefaultAlphaDenominator,
	)
	if err != nil {
		panic(err)
	}
	for _, sample := range []int64{0, 1000, 1000, 1000} {
		average, err := filter.Update(sample)
		if err != nil {
			panic(err)
		}
		fmt.Println(average)
	}
	// Output:
	// 0
	// 10
	// 19
	// 28
}
