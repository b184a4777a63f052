// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"testing"

	"gonum.org/v1/plot"
)

func TestRoundish(t *testing.T) {
	for _, test := range []struct {
		x    float64
		want float64
		k    int
	}{
		{3.7, 3, 0},
		{1, 1, 0},
		{0.6, 0.5, 1},
		{0.3, 0.25, 2},
		{0.22, 0.2, 1},
		{0.15, 0.1, 1},
		{0.03, 0.025, 3},
	} {
		got, k := roundish(test.x)
		if got != test.want || k != test.k {
			t.Errorf("roundish(%v) = %v, %d; want %v, %d", test.x, got, k, test.want, test.k)
		}
	}
}

func tickValues(t *testing.T, ys []float64, ylog bool) []float64 {
	t.Helper()
	m, ok := ratioTicks(ys, ylog)
	if !ok {
		t.Fatalf("ratioTicks(%v) found no grid", ys)
	}
	var vs []float64
	for _, tk := range m.(plot.ConstantTicks) {
		vs = append(vs, tk.Value)
	}
	return vs
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRatioTicks(t *testing.T) {
	for _, test := range []struct {
		ys   []float64
		ylog bool
		want []float64
	}{
		{[]float64{1, 1}, false, []float64{1}},
		{[]float64{0.4, 1.6}, false, []float64{0.5, 1, 1.5}},
		{[]float64{0.05, 0.9}, true, []float64{0.5, 1}},
		{[]float64{1.2, 3.5}, false, []float64{1, 3}},
	} {
		if got := tickValues(t, test.ys, test.ylog); !equal(got, test.want) {
			t.Errorf("ratioTicks(%v) = %v, want %v", test.ys, got, test.want)
		}
	}

	// A tight cluster just below 1.0 with a far outlier would need
	// thousands of lines.
	ys := []float64{0.0001, 0.9995}
	for i := 0; i < 28; i++ {
		ys = append(ys, 0.999)
	}
	if m, ok := ratioTicks(ys, false); ok {
		t.Errorf("got %d ticks, want default ticker", len(m.(plot.ConstantTicks)))
	}
}
