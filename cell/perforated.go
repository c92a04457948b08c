// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"math"

	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
)

// ShadeDescription is the geometric part of a flat shade cell: the
// direction dependent fraction of the beam passing straight through
type ShadeDescription interface {
	Openness() float64
	BeamOpenness(d bsdf.BeamDirection) float64
}

// CircularPerforated describes a screen with circular holes on a
// rectangular pitch
type CircularPerforated struct {
	X, Y      float64 // pitch [m]
	Thickness float64 // [m]
	Radius    float64 // hole radius [m]
}

// Validate checks the geometric constraints
func (o CircularPerforated) Validate() (err error) {
	if o.X <= 0 || o.Y <= 0 || o.Thickness <= 0 || o.Radius <= 0 {
		return chk.Err("circular perforation: dimensions must be positive")
	}
	if o.Openness() > 1 {
		return chk.Err("circular perforation: holes exceed the pitch")
	}
	return
}

// Openness returns the open area fraction at normal incidence
func (o CircularPerforated) Openness() float64 {
	return math.Pi * o.Radius * o.Radius / (o.X * o.Y)
}

// BeamOpenness returns the through fraction at oblique incidence: the
// overlap of the entrance and exit circles of the hole cylinder
func (o CircularPerforated) BeamOpenness(d bsdf.BeamDirection) float64 {
	e := o.Thickness * math.Tan(d.Theta*math.Pi/180)
	r := o.Radius
	if e >= 2*r {
		return 0
	}
	// lens area of two circles radius r offset e
	lens := 2*r*r*math.Acos(e/(2*r)) - 0.5*e*math.Sqrt(4*r*r-e*e)
	return lens / (o.X * o.Y)
}

// RectangularPerforated describes a screen with rectangular holes
type RectangularPerforated struct {
	X, Y         float64 // pitch [m]
	Thickness    float64 // [m]
	XHole, YHole float64 // hole dimensions [m]
}

// Validate checks the geometric constraints
func (o RectangularPerforated) Validate() (err error) {
	if o.X <= 0 || o.Y <= 0 || o.Thickness <= 0 || o.XHole <= 0 || o.YHole <= 0 {
		return chk.Err("rectangular perforation: dimensions must be positive")
	}
	if o.XHole > o.X || o.YHole > o.Y {
		return chk.Err("rectangular perforation: holes exceed the pitch")
	}
	return
}

// Openness returns the open area fraction at normal incidence
func (o RectangularPerforated) Openness() float64 {
	return o.XHole * o.YHole / (o.X * o.Y)
}

// BeamOpenness returns the through fraction at oblique incidence via the
// projected overlap of entrance and exit rectangles
func (o RectangularPerforated) BeamOpenness(d bsdf.BeamDirection) float64 {
	t := d.Theta * math.Pi / 180
	p := d.Phi * math.Pi / 180
	sx := o.Thickness * math.Tan(t) * math.Abs(math.Cos(p))
	sy := o.Thickness * math.Tan(t) * math.Abs(math.Sin(p))
	fx := o.XHole - sx
	fy := o.YHole - sy
	if fx <= 0 || fy <= 0 {
		return 0
	}
	return fx * fy / (o.X * o.Y)
}

// Perforated combines a shade description with a material: the beam
// passes unchanged through the openings while the blocked part scatters
// uniformly with the material properties
type Perforated struct {
	base
	desc ShadeDescription
}

// NewPerforated creates a perforated (or woven) shade cell
func NewPerforated(mat mdl.Material, desc ShadeDescription, rotation float64) *Perforated {
	return &Perforated{base{mat: mat, rotation: rotation}, desc}
}

// Description returns the geometric description
func (o *Perforated) Description() ShadeDescription {
	return o.desc
}

// View returns the cell view at one material state
func (o *Perforated) View(wl int) bsdf.CellView {
	return &shadeView{cell: o, wl: wl}
}

type shadeView struct {
	cell *Perforated
	wl   int
}

func (o *shadeView) TDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	return o.cell.desc.BeamOpenness(o.cell.rotate(d))
}

func (o *shadeView) RDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	return 0
}

func (o *shadeView) TDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	d = o.cell.rotate(d)
	blocked := 1 - o.cell.desc.BeamOpenness(d)
	return o.cell.matProp(o.wl, spd.PropT, side, d.Theta) * blocked
}

func (o *shadeView) RDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	d = o.cell.rotate(d)
	blocked := 1 - o.cell.desc.BeamOpenness(d)
	return o.cell.matProp(o.wl, spd.PropR, side, d.Theta) * blocked
}

func (o *shadeView) TDifDif(side spd.Side) float64 {
	op := o.cell.desc.Openness()
	return op + o.cell.matProp(o.wl, spd.PropT, side, 0)*(1-op)
}

func (o *shadeView) RDifDif(side spd.Side) float64 {
	op := o.cell.desc.Openness()
	return o.cell.matProp(o.wl, spd.PropR, side, 0) * (1 - op)
}
