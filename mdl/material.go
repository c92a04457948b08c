// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements optical material models delivering the four
// scalar properties (Tf, Tb, Rf, Rb) per wavelength and per side
package mdl

import (
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material delivers optical properties of a glazing or shade material.
// Properties depend on the incidence angle theta [deg] for models backed
// by measured spectral samples; simpler models ignore the angle
type Material interface {

	// Range returns the wavelength range [µm] the material covers
	Range() (lo, hi float64)

	// Wavelengths returns the band grid
	Wavelengths() []float64

	// BandSize returns the number of band wavelengths
	BandSize() int

	// Property returns the band averaged property at incidence theta
	Property(prop spd.Property, side spd.Side, theta float64) float64

	// PropertyAt returns the property of band wavelength i at theta
	PropertyAt(i int, prop spd.Property, side spd.Side, theta float64) float64

	// PropertyAtWavelength evaluates the property at an arbitrary
	// wavelength [µm], interpolating measured data when needed
	PropertyAtWavelength(wl float64, prop spd.Property, side spd.Side, theta float64) float64
}

// New returns a new material model from the database of registered
// allocators; prms carry the model parameters
func New(name string, prms dbf.Params) (model Material, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material %q is not available in 'mdl' database", name)
	}
	return allocator(prms)
}

// allocators holds all parameter-constructible materials; name => allocator
var allocators = map[string]func(prms dbf.Params) (Material, error){}

// prm fetches one named parameter
func prm(prms dbf.Params, name string) (val float64, err error) {
	for _, p := range prms {
		if p.N == name {
			return p.V, nil
		}
	}
	return 0, chk.Err("material: parameter %q is missing", name)
}

// prmDefault fetches one named parameter with a fallback
func prmDefault(prms dbf.Params, name string, def float64) float64 {
	for _, p := range prms {
		if p.N == name {
			return p.V
		}
	}
	return def
}
