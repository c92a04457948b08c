// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SingleBand is a material with constant properties over one band
type SingleBand struct {
	tf, tb, rf, rb float64
	lo, hi         float64
}

// add model to database
func init() {
	allocators["single-band"] = func(prms dbf.Params) (Material, error) {
		var vals [4]float64
		var err error
		for i, name := range []string{"Tf", "Tb", "Rf", "Rb"} {
			if vals[i], err = prm(prms, name); err != nil {
				return nil, err
			}
		}
		lo := prmDefault(prms, "minLambda", 0.3)
		hi := prmDefault(prms, "maxLambda", 2.5)
		return NewSingleBand(vals[0], vals[1], vals[2], vals[3], lo, hi)
	}
}

// NewSingleBand creates a constant material over [lo,hi]
func NewSingleBand(tf, tb, rf, rb, lo, hi float64) (o *SingleBand, err error) {
	if lo >= hi {
		return nil, chk.Err("single band material: invalid range [%g,%g]", lo, hi)
	}
	if tf+rf > 1+1e-12 || tb+rb > 1+1e-12 {
		return nil, chk.Err("single band material: T+R exceeds unity")
	}
	return &SingleBand{tf: tf, tb: tb, rf: rf, rb: rb, lo: lo, hi: hi}, nil
}

// Range returns the covered wavelength range
func (o *SingleBand) Range() (lo, hi float64) {
	return o.lo, o.hi
}

// Wavelengths returns the band edges
func (o *SingleBand) Wavelengths() []float64 {
	return []float64{o.lo, o.hi}
}

// BandSize returns the number of band wavelengths
func (o *SingleBand) BandSize() int {
	return 2
}

// Property returns the constant property; the angle is ignored
func (o *SingleBand) Property(prop spd.Property, side spd.Side, theta float64) float64 {
	switch prop {
	case spd.PropT:
		if side == spd.SideFront {
			return o.tf
		}
		return o.tb
	case spd.PropR:
		if side == spd.SideFront {
			return o.rf
		}
		return o.rb
	}
	if side == spd.SideFront {
		return 1 - o.tf - o.rf
	}
	return 1 - o.tb - o.rb
}

// PropertyAt returns the property at band wavelength i
func (o *SingleBand) PropertyAt(i int, prop spd.Property, side spd.Side, theta float64) float64 {
	return o.Property(prop, side, theta)
}

// PropertyAtWavelength returns the constant property
func (o *SingleBand) PropertyAtWavelength(wl float64, prop spd.Property, side spd.Side, theta float64) float64 {
	return o.Property(prop, side, theta)
}
