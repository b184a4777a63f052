// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
)

// maxRatioTicks bounds the grid of a ratio chart. Denser grids fall
// back to the default ticker.
const maxRatioTicks = 40

// ratioTicks returns grid lines at round distances above and below
// 1.0 covering ys. The spacing is picked from the values between the
// 4th and 96th percentile, so a few outliers don't squash the grid.
func ratioTicks(ys []float64, ylog bool) (plot.Ticker, bool) {
	vs := append([]float64(nil), ys...)
	sort.Float64s(vs)
	const nth = 25
	trim := (len(vs) + nth/2) / nth
	low, high := vs[trim], vs[len(vs)-trim-1]
	lo, hi := vs[0], vs[len(vs)-1]

	var ticks []plot.Tick
	add := func(t float64, k int) bool {
		if ylog && t <= 0 {
			return false
		}
		ticks = append(ticks, plot.Tick{Value: t, Label: fmt.Sprintf("%.[2]*[1]g", t, k)})
		return len(ticks) <= maxRatioTicks
	}
	below := func(step float64, k int) {
		for t := 1.0; t > lo && add(t, k); t -= step {
		}
	}
	above := func(start, step float64, k int) {
		for t := start; t < hi && add(t, k); t += step {
		}
	}

	switch {
	case high <= 1 && low == 1:
		ticks = []plot.Tick{{Value: 1, Label: "1.0"}}
	case high <= 1:
		below(roundish(1 - low))
	case low >= 1:
		step, k := roundish(high - 1)
		above(1, step, k+1)
	default:
		step, k := roundish(1 - low)
		smax, kmax := roundish(high - 1)
		if smax > step {
			step, k = smax, kmax
		}
		below(step, k+1)
		above(1+step, step, k+1)
	}
	if len(ticks) > maxRatioTicks {
		return nil, false
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return plot.ConstantTicks(ticks), true
}

// roundish finds a round fraction no greater than x, and the number
// of significant digits needed to print multiples of it. x is a
// distance from 1.0, so 1 ± roundish(x) is a good place for a grid
// line. x must be positive.
func roundish(x float64) (float64, int) {
	switch {
	case x >= 1:
		return math.Trunc(x), 0
	case x >= 0.5:
		return 0.5, 1
	case x >= 0.25:
		return 0.25, 2
	case x >= 0.2:
		return 0.2, 1
	case x >= 0.1:
		return 0.1, 1
	}
	r, n := roundish(x * 10)
	return r / 10, n + 1
}
