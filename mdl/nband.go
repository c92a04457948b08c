// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
)

// NBand is a material backed by a measured spectral sample; oblique
// incidence is handled by the Fresnel angular scaling of the sample
type NBand struct {
	angular *spd.AngularSample
	lo, hi  float64
}

// NewNBand creates an n-band material from sample data; the source may
// be nil when only per-wavelength properties are queried
func NewNBand(data *spd.SampleData, source *spd.Series, thickness float64, mtype spd.MaterialType) (o *NBand, err error) {
	if data.Len() == 0 {
		return nil, chk.Err("n-band material: sample data is empty")
	}
	sample := spd.NewSample(data, source)
	angular, err := spd.NewAngularSample(sample, thickness, mtype)
	if err != nil {
		return
	}
	wls := data.Wavelengths()
	o = &NBand{angular: angular, lo: wls[0], hi: wls[len(wls)-1]}
	return
}

// NewNBandFlipped creates the material with front and back swapped
func NewNBandFlipped(data *spd.SampleData, source *spd.Series, thickness float64, mtype spd.MaterialType) (o *NBand, err error) {
	return NewNBand(data.Flipped(), source, thickness, mtype)
}

// SetSource rebinds the source curve
func (o *NBand) SetSource(source *spd.Series) {
	data := o.angular.Sample().Data()
	thickness, mtype := o.angular.Thickness(), o.angular.Type()
	sample := spd.NewSample(data, source)
	o.angular, _ = spd.NewAngularSample(sample, thickness, mtype)
}

// AngularSample exposes the Fresnel machinery
func (o *NBand) AngularSample() *spd.AngularSample {
	return o.angular
}

// Range returns the measured wavelength range
func (o *NBand) Range() (lo, hi float64) {
	return o.lo, o.hi
}

// Wavelengths returns the measured grid
func (o *NBand) Wavelengths() []float64 {
	return o.angular.Sample().Data().Wavelengths()
}

// BandSize returns the number of measured wavelengths
func (o *NBand) BandSize() int {
	return o.angular.Sample().Data().Len()
}

// Property returns the source weighted band average at incidence theta
func (o *NBand) Property(prop spd.Property, side spd.Side, theta float64) float64 {
	res, err := o.angular.Property(o.lo, o.hi, prop, side, theta)
	if err != nil {
		chk.Panic("n-band material: %v", err)
	}
	return res
}

// PropertyAt returns the property of measured wavelength i at theta
func (o *NBand) PropertyAt(i int, prop spd.Property, side spd.Side, theta float64) float64 {
	s, err := o.angular.SampleAt(theta)
	if err != nil {
		chk.Panic("n-band material: %v", err)
	}
	r := s.Data().Row(i)
	switch prop {
	case spd.PropT:
		if side == spd.SideFront {
			return r.Tf
		}
		return r.Tb
	case spd.PropR:
		if side == spd.SideFront {
			return r.Rf
		}
		return r.Rb
	}
	if side == spd.SideFront {
		return 1 - r.Tf - r.Rf
	}
	return 1 - r.Tb - r.Rb
}

// PropertyAtWavelength interpolates the angular sample at wl
func (o *NBand) PropertyAtWavelength(wl float64, prop spd.Property, side spd.Side, theta float64) float64 {
	s, err := o.angular.SampleAt(theta)
	if err != nil {
		chk.Panic("n-band material: %v", err)
	}
	return s.Data().Curve(prop, side).ValueAt(wl)
}
