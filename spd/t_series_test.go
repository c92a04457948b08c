// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spd

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_series01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("series01. interpolation and integration")

	s := NewSeriesData([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})

	chk.Float64(tst, "value at node", 1e-15, s.ValueAt(2), 4)
	chk.Float64(tst, "value between nodes", 1e-15, s.ValueAt(1.5), 2.5)
	chk.Float64(tst, "value clamped left", 1e-15, s.ValueAt(-1), 0)
	chk.Float64(tst, "value clamped right", 1e-15, s.ValueAt(10), 9)

	// trapezoid over the full range
	chk.Float64(tst, "integral [0,3]", 1e-15, s.Integrate(0, 3), 0.5+2.5+6.5)

	// partial cell
	chk.Float64(tst, "integral [0.5,1]", 1e-14, s.Integrate(0.5, 1), 0.5*(0.5+1)*0.5)

	// degenerate ranges
	chk.Float64(tst, "integral a>=b", 1e-15, s.Integrate(2, 2), 0)
	chk.Float64(tst, "integral outside", 1e-15, s.Integrate(5, 6), 0)
}

func Test_series02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("series02. multiplication on the union grid")

	a := NewSeriesData([]float64{0, 2}, []float64{1, 3})
	b := NewSeriesData([]float64{0, 1, 2}, []float64{2, 2, 2})
	c := a.Mul(b)

	chk.Int(tst, "union size", c.Len(), 3)
	chk.Float64(tst, "product at 0", 1e-15, c.V(0), 2)
	chk.Float64(tst, "product at 1", 1e-15, c.V(1), 4)
	chk.Float64(tst, "product at 2", 1e-15, c.V(2), 6)
}

func Test_series03(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("series03. sum and resampling")

	s := NewSeriesData([]float64{1, 2, 3, 4}, []float64{10, 20, 30, 40})

	chk.Float64(tst, "sum [2,3]", 1e-15, s.Sum(2, 3), 50)
	chk.Float64(tst, "sum all", 1e-15, s.Sum(0, 10), 100)

	r := s.Interpolate([]float64{1.5, 2.5})
	chk.Int(tst, "resampled size", r.Len(), 2)
	chk.Float64(tst, "resampled first", 1e-15, r.V(0), 15)
	chk.Float64(tst, "resampled second", 1e-15, r.V(1), 25)
}

func Test_series04(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("series04. band integration identity for constant data")

	// a constant property must integrate to itself regardless of source
	prop := NewSeriesData([]float64{0.3, 2.5}, []float64{0.75, 0.75})
	source := NewSeriesData([]float64{0.3, 0.5, 1.0, 2.5}, []float64{100, 900, 400, 10})

	num := prop.Mul(source).Integrate(0.3, 2.5)
	den := source.Integrate(0.3, 2.5)
	chk.Float64(tst, "weighted average", 1e-12, num/den, 0.75)
}
