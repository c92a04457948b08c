// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gm2 implements the 2D geometry used by shading cells: points,
// segments, polylines, enclosure view factors and beam projections
package gm2

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Point is a location in the cell cross-section plane
type Point struct {
	X, Y float64
}

// PolarPoint creates a point from polar coordinates with the angle in
// degrees
func PolarPoint(angleDeg, radius float64) Point {
	a := angleDeg * math.Pi / 180
	return Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
}

// Dist returns the distance to another point
func (o Point) Dist(p Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Translate shifts the point
func (o Point) Translate(dx, dy float64) Point {
	return Point{X: o.X + dx, Y: o.Y + dy}
}

// Segment is a directed straight segment
type Segment struct {
	A, B Point
}

// Length returns the segment length
func (o Segment) Length() float64 {
	return o.A.Dist(o.B)
}

// Midpoint returns the segment centre
func (o Segment) Midpoint() Point {
	return Point{X: 0.5 * (o.A.X + o.B.X), Y: 0.5 * (o.A.Y + o.B.Y)}
}

// AngleDeg returns the direction angle in degrees
func (o Segment) AngleDeg() float64 {
	return math.Atan2(o.B.Y-o.A.Y, o.B.X-o.A.X) * 180 / math.Pi
}

// Normal returns the unit normal obtained by rotating the direction
// clockwise; for a clockwise enclosure loop it faces the interior
func (o Segment) Normal() Point {
	dx, dy := o.B.X-o.A.X, o.B.Y-o.A.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return Point{}
	}
	return Point{X: dy / l, Y: -dx / l}
}

// Translate shifts the segment
func (o Segment) Translate(dx, dy float64) Segment {
	return Segment{A: o.A.Translate(dx, dy), B: o.B.Translate(dx, dy)}
}

// Polyline is an ordered chain of segments
type Polyline struct {
	segs []Segment
}

// AppendSegment adds one segment to the chain
func (o *Polyline) AppendSegment(s Segment) {
	o.segs = append(o.segs, s)
}

// AppendPolyline adds all segments of another chain
func (o *Polyline) AppendPolyline(p *Polyline) {
	o.segs = append(o.segs, p.segs...)
}

// Len returns the number of segments
func (o *Polyline) Len() int {
	return len(o.segs)
}

// Seg returns segment i
func (o *Polyline) Seg(i int) Segment {
	return o.segs[i]
}

// FirstPoint returns the first point of the chain
func (o *Polyline) FirstPoint() Point {
	return o.segs[0].A
}

// LastPoint returns the last point of the chain
func (o *Polyline) LastPoint() Point {
	return o.segs[len(o.segs)-1].B
}

// Translate shifts the whole chain
func (o *Polyline) Translate(dx, dy float64) (res *Polyline) {
	res = new(Polyline)
	for _, s := range o.segs {
		res.AppendSegment(s.Translate(dx, dy))
	}
	return
}

// ViewFactors computes the enclosure view factor matrix with Hottel's
// crossed strings. The polyline must form a closed clockwise loop; each
// row i holds F(i→j) and satisfies reciprocity Ai·Fij = Aj·Fji
func (o *Polyline) ViewFactors() (vf *la.Matrix, err error) {
	n := len(o.segs)
	if n < 3 {
		return nil, chk.Err("view factors: enclosure needs at least 3 segments")
	}
	vf = la.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		si := o.segs[i]
		li := si.Length()
		if li == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			sj := o.segs[j]
			if !mutuallyVisible(si, sj) {
				continue
			}
			crossed := si.A.Dist(sj.A) + si.B.Dist(sj.B)
			uncrossed := si.A.Dist(sj.B) + si.B.Dist(sj.A)
			f := (crossed - uncrossed) / (2 * li)
			if f < 0 {
				f = 0
			}
			vf.Set(i, j, f)
		}
	}
	return
}

// mutuallyVisible reports whether any part of b lies in front of a's
// interior normal and vice versa
func mutuallyVisible(a, b Segment) bool {
	return inFront(a, b) && inFront(b, a)
}

// inFront reports whether segment b has a point on the interior side of a
func inFront(a, b Segment) bool {
	n := a.Normal()
	const tol = 1e-12
	da := n.X*(b.A.X-a.A.X) + n.Y*(b.A.Y-a.A.Y)
	db := n.X*(b.B.X-a.A.X) + n.Y*(b.B.Y-a.A.Y)
	return da > tol || db > tol
}
