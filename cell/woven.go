// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"math"

	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gosl/chk"
)

// Woven describes a plain weave of cylindrical threads
type Woven struct {
	Diameter float64 // thread diameter [m]
	Spacing  float64 // thread spacing [m]
}

// Validate checks the geometric constraints
func (o Woven) Validate() (err error) {
	if o.Diameter <= 0 || o.Spacing <= 0 {
		return chk.Err("woven screen: dimensions must be positive")
	}
	if o.Diameter > o.Spacing {
		return chk.Err("woven screen: thread diameter exceeds the spacing")
	}
	return
}

// Openness returns the open fraction at normal incidence, (1 - d/s)²
func (o Woven) Openness() float64 {
	g := 1 - o.Diameter/o.Spacing
	if g < 0 {
		g = 0
	}
	return g * g
}

// BeamOpenness returns the through fraction at oblique incidence: the
// thread shadow grows with the profile angle in each weave direction
func (o Woven) BeamOpenness(d bsdf.BeamDirection) float64 {
	t := d.Theta * math.Pi / 180
	p := d.Phi * math.Pi / 180
	pax := math.Atan(math.Abs(math.Tan(t) * math.Cos(p)))
	pay := math.Atan(math.Abs(math.Tan(t) * math.Sin(p)))
	gx := 1 - o.Diameter/o.Spacing/math.Cos(pax)
	gy := 1 - o.Diameter/o.Spacing/math.Cos(pay)
	if gx <= 0 || gy <= 0 {
		return 0
	}
	return gx * gy
}
