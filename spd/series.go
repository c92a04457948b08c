// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spd

import "sort"

// Point holds one (wavelength, value) pair of a spectral curve
type Point struct {
	X float64 // wavelength [µm] (or any abscissa)
	V float64 // value
}

// Series is a 1D curve of (x, value) pairs with strictly increasing x.
// Between tabulated points the curve is piecewise linear; outside the
// tabulated domain it holds the nearest end value.
type Series struct {
	pts []Point
}

// NewSeries returns an empty curve
func NewSeries() *Series {
	return &Series{}
}

// NewSeriesData builds a curve from parallel x and value slices
func NewSeriesData(xs, vs []float64) *Series {
	o := new(Series)
	for i, x := range xs {
		o.Add(x, vs[i])
	}
	return o
}

// NewSeriesPoints builds a curve from (x, value) pairs given as a flat
// table [][2]float64
func NewSeriesPoints(table [][2]float64) *Series {
	o := new(Series)
	for _, row := range table {
		o.Add(row[0], row[1])
	}
	return o
}

// Add appends one point. Points must be appended in increasing x order
func (o *Series) Add(x, v float64) {
	o.pts = append(o.pts, Point{x, v})
}

// Len returns the number of points
func (o *Series) Len() int {
	return len(o.pts)
}

// X returns the abscissa of point i
func (o *Series) X(i int) float64 {
	return o.pts[i].X
}

// V returns the value of point i
func (o *Series) V(i int) float64 {
	return o.pts[i].V
}

// XValues returns the abscissas in input order
func (o *Series) XValues() (xs []float64) {
	xs = make([]float64, len(o.pts))
	for i, p := range o.pts {
		xs[i] = p.X
	}
	return
}

// Values returns the values in input order
func (o *Series) Values() (vs []float64) {
	vs = make([]float64, len(o.pts))
	for i, p := range o.pts {
		vs[i] = p.V
	}
	return
}

// ValueAt evaluates the curve at x by linear interpolation, clamping to
// the end values outside the domain. An empty curve evaluates to zero
func (o *Series) ValueAt(x float64) float64 {
	n := len(o.pts)
	if n == 0 {
		return 0
	}
	if x <= o.pts[0].X {
		return o.pts[0].V
	}
	if x >= o.pts[n-1].X {
		return o.pts[n-1].V
	}
	k := sort.Search(n, func(i int) bool { return o.pts[i].X >= x })
	lo, hi := o.pts[k-1], o.pts[k]
	t := (x - lo.X) / (hi.X - lo.X)
	return lo.V + t*(hi.V-lo.V)
}

// Integrate computes the trapezoidal integral of the curve over [a,b].
// The curve is clamped to its end values outside the tabulated domain.
// The result is zero when a >= b, when [a,b] lies wholly outside the
// tabulated domain, or when the curve has fewer than two points
func (o *Series) Integrate(a, b float64) (res float64) {
	n := len(o.pts)
	if n < 2 || a >= b {
		return 0
	}
	if b <= o.pts[0].X || a >= o.pts[n-1].X {
		return 0
	}
	if a < o.pts[0].X {
		res += o.pts[0].V * (o.pts[0].X - a)
		a = o.pts[0].X
	}
	if b > o.pts[n-1].X {
		res += o.pts[n-1].V * (b - o.pts[n-1].X)
		b = o.pts[n-1].X
	}
	for i := 0; i < n-1; i++ {
		x0, x1 := o.pts[i].X, o.pts[i+1].X
		if x1 <= a || x0 >= b {
			continue
		}
		lo, hi := x0, x1
		if lo < a {
			lo = a
		}
		if hi > b {
			hi = b
		}
		v0 := o.ValueAt(lo)
		v1 := o.ValueAt(hi)
		res += 0.5 * (v0 + v1) * (hi - lo)
	}
	return
}

// Sum adds the tabulated values falling inside [a,b] without weighting.
// It serves band summation of data that is already banded
func (o *Series) Sum(a, b float64) (res float64) {
	for _, p := range o.pts {
		if p.X >= a && p.X <= b {
			res += p.V
		}
	}
	return
}

// Interpolate resamples the curve onto the grid xs
func (o *Series) Interpolate(xs []float64) (res *Series) {
	res = NewSeries()
	for _, x := range xs {
		res.Add(x, o.ValueAt(x))
	}
	return
}

// Mul multiplies two curves pointwise on the union of their grids,
// interpolating either side linearly
func (o *Series) Mul(other *Series) (res *Series) {
	xs := UnionGrid(o.XValues(), other.XValues())
	res = NewSeries()
	for _, x := range xs {
		res.Add(x, o.ValueAt(x)*other.ValueAt(x))
	}
	return
}

// Scale returns a new curve with all values multiplied by m
func (o *Series) Scale(m float64) (res *Series) {
	res = NewSeries()
	for _, p := range o.pts {
		res.Add(p.X, p.V*m)
	}
	return
}

// UnionGrid merges two increasing grids removing duplicates
func UnionGrid(a, b []float64) (xs []float64) {
	xs = make([]float64, 0, len(a)+len(b))
	xs = append(xs, a...)
	xs = append(xs, b...)
	sort.Float64s(xs)
	k := 0
	for i, x := range xs {
		if i > 0 && x == xs[k-1] {
			continue
		}
		xs[k] = x
		k++
	}
	return xs[:k]
}
