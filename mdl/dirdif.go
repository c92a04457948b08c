// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
)

// DirDif couples two materials describing a sample measured with
// separate specular and diffuse channels. The diffuse channel may be
// unphysical (negative inferred absorptance); it is reported unclamped
type DirDif struct {
	spec Material
	dif  Material
}

// NewDirDif combines the specular and diffuse channel materials
func NewDirDif(spec, dif Material) (o *DirDif, err error) {
	if spec == nil || dif == nil {
		return nil, chk.Err("direct-diffuse material: both channels are required")
	}
	return &DirDif{spec: spec, dif: dif}, nil
}

// Specular returns the specular channel
func (o *DirDif) Specular() Material {
	return o.spec
}

// Diffuse returns the diffuse channel
func (o *DirDif) Diffuse() Material {
	return o.dif
}

// Range returns the range of the specular channel
func (o *DirDif) Range() (lo, hi float64) {
	return o.spec.Range()
}

// Wavelengths returns the grid of the specular channel
func (o *DirDif) Wavelengths() []float64 {
	return o.spec.Wavelengths()
}

// BandSize returns the band size of the specular channel
func (o *DirDif) BandSize() int {
	return o.spec.BandSize()
}

// Property returns the sum of both channels; unphysical combinations are
// reported unclamped
func (o *DirDif) Property(prop spd.Property, side spd.Side, theta float64) float64 {
	if prop == spd.PropAbs {
		return 1 - o.Property(spd.PropT, side, theta) - o.Property(spd.PropR, side, theta)
	}
	return o.spec.Property(prop, side, theta) + o.dif.Property(prop, side, theta)
}

// PropertyAt returns the summed property of band wavelength i
func (o *DirDif) PropertyAt(i int, prop spd.Property, side spd.Side, theta float64) float64 {
	if prop == spd.PropAbs {
		return 1 - o.PropertyAt(i, spd.PropT, side, theta) - o.PropertyAt(i, spd.PropR, side, theta)
	}
	return o.spec.PropertyAt(i, prop, side, theta) + o.dif.PropertyAt(i, prop, side, theta)
}

// PropertyAtWavelength returns the summed property at wl
func (o *DirDif) PropertyAtWavelength(wl float64, prop spd.Property, side spd.Side, theta float64) float64 {
	if prop == spd.PropAbs {
		return 1 - o.PropertyAtWavelength(wl, spd.PropT, side, theta) - o.PropertyAtWavelength(wl, spd.PropR, side, theta)
	}
	return o.spec.PropertyAtWavelength(wl, prop, side, theta) + o.dif.PropertyAtWavelength(wl, prop, side, theta)
}
