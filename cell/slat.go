// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"math"

	"github.com/cpmech/gofen/gm2"
	"github.com/cpmech/gosl/chk"
)

// VenetianGeometry describes one venetian blind cell
type VenetianGeometry struct {
	SlatWidth       float64 // [m]
	SlatSpacing     float64 // [m]
	SlatTiltAngle   float64 // [deg]
	CurvatureRadius float64 // [m]; 0 means flat, otherwise |R| > width/2
	NumSegments     int     // slat mesh refinement
}

// Validate checks the geometric constraints
func (o VenetianGeometry) Validate() (err error) {
	if o.SlatWidth <= 0 || o.SlatSpacing <= 0 {
		return chk.Err("venetian geometry: slat width and spacing must be positive")
	}
	if o.NumSegments < 1 {
		return chk.Err("venetian geometry: at least one slat segment is required")
	}
	r := math.Abs(o.CurvatureRadius)
	if r != 0 && r <= o.SlatWidth/2 {
		return chk.Err("venetian geometry: curvature radius %g must be zero or exceed half the slat width", o.CurvatureRadius)
	}
	return
}

// buildSlat meshes one slat into segments. positive builds the slat from
// its exterior end towards the interior (top slat); the negative
// direction reverses the walk (bottom slat). The slat is translated so
// its exterior end sits at (0, spacing)
func buildSlat(g VenetianGeometry, spacing float64, positive bool) (res *gm2.Polyline) {
	res = new(gm2.Polyline)
	n := g.NumSegments
	if math.Abs(g.CurvatureRadius) > g.SlatWidth/2 {
		// circular arc slat
		r := math.Abs(g.CurvatureRadius)
		theta := 2 * math.Asin(g.SlatWidth/(2*r)) * 180 / math.Pi
		sign := 90.0
		if g.CurvatureRadius < 0 {
			sign = -90.0
		}
		theta1 := sign + g.SlatTiltAngle - theta/2
		theta2 := sign + g.SlatTiltAngle + theta/2
		dTheta := (theta2 - theta1) / float64(n)
		start := theta2
		if !positive {
			start = theta1
		}
		p0 := gm2.PolarPoint(start, r)
		for i := 1; i <= n; i++ {
			next := start + dTheta*float64(i)
			if positive {
				next = start - dTheta*float64(i)
			}
			p1 := gm2.PolarPoint(next, r)
			res.AppendSegment(gm2.Segment{A: p0, B: p1})
			p0 = p1
		}
	} else {
		// flat slat
		dw := g.SlatWidth / float64(n)
		start := 0.0
		if !positive {
			start = g.SlatWidth
		}
		p0 := gm2.PolarPoint(g.SlatTiltAngle, start)
		for i := 1; i <= n; i++ {
			next := float64(i) * dw
			if !positive {
				next = g.SlatWidth - float64(i)*dw
			}
			p1 := gm2.PolarPoint(g.SlatTiltAngle, next)
			res.AppendSegment(gm2.Segment{A: p0, B: p1})
			p0 = p1
		}
	}
	ref := res.FirstPoint()
	if !positive {
		ref = res.LastPoint()
	}
	return res.Translate(-ref.X, -ref.Y+spacing)
}
