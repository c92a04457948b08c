// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cell implements shading and glazing cells: the combination of
// a material model with a geometric cell description delivering the
// scalar scattering fractions per incoming direction
package cell

import (
	"math"

	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
)

// base holds what every cell shares: the material, and an optional
// rotation applied to incoming directions before all calculations
type base struct {
	mat      mdl.Material
	rotation float64
	bandWls  []float64 // optional common grid overriding the material grid
}

// Wavelengths returns the band grid
func (o *base) Wavelengths() []float64 {
	if o.bandWls != nil {
		return o.bandWls
	}
	return o.mat.Wavelengths()
}

// SetBandWavelengths rebinds the band grid to a common wavelength set
func (o *base) SetBandWavelengths(wls []float64) error {
	o.bandWls = wls
	return nil
}

// Material returns the material model
func (o *base) Material() mdl.Material {
	return o.mat
}

// rotate applies the cell rotation to an incoming direction
func (o *base) rotate(d bsdf.BeamDirection) bsdf.BeamDirection {
	if o.rotation == 0 {
		return d
	}
	return d.Rotate(o.rotation)
}

// matProp evaluates the material at the total band or one wavelength
func (o *base) matProp(wl int, prop spd.Property, side spd.Side, theta float64) float64 {
	if wl == bsdf.TotalBand {
		return o.mat.Property(prop, side, theta)
	}
	if o.bandWls != nil {
		return o.mat.PropertyAtWavelength(o.bandWls[wl], prop, side, theta)
	}
	return o.mat.PropertyAt(wl, prop, side, theta)
}

// hemispherical integration grid over the incidence angle [deg]
const nQuadAngles = 10

// hemispherize integrates f(θ) over the hemisphere with the cosine-sine
// weighting, normalised so a constant f integrates to itself
func hemispherize(f func(theta float64) float64) float64 {
	dt := 90.0 / float64(nQuadAngles-1)
	num, den := 0.0, 0.0
	for i := 0; i < nQuadAngles-1; i++ {
		t0 := float64(i) * dt
		t1 := t0 + dt
		w0 := math.Sin(2 * t0 * math.Pi / 180)
		w1 := math.Sin(2 * t1 * math.Pi / 180)
		num += 0.5 * (f(t0)*w0 + f(t1)*w1)
		den += 0.5 * (w0 + w1)
	}
	return num / den
}
