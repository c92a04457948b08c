// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsdf

import (
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// PreLoadedLayer wraps measured goniophotometric BSDF matrices so they
// can enter multilayer compositions like computed layers
type PreLoadedLayer struct {
	hemi    *Hemisphere
	wls     []float64
	perWl   []*Integrator
	results *Integrator
}

// PreLoadedMatrices holds the four matrices of one wavelength
type PreLoadedMatrices struct {
	Wl             float64
	Tf, Tb, Rf, Rb *la.Matrix
}

// NewPreLoadedLayer validates matrix dimensions against the hemisphere
// and stores the per-wavelength data
func NewPreLoadedLayer(hemi *Hemisphere, data []PreLoadedMatrices) (o *PreLoadedLayer, err error) {
	if len(data) == 0 {
		return nil, chk.Err("preloaded layer: no wavelength data")
	}
	n := hemi.Size()
	o = &PreLoadedLayer{hemi: hemi}
	for _, d := range data {
		for _, m := range []*la.Matrix{d.Tf, d.Tb, d.Rf, d.Rb} {
			if m.M != n || m.N != n {
				return nil, chk.Err("preloaded layer: matrix size %dx%d does not match basis size %d", m.M, m.N, n)
			}
		}
		integ := NewIntegrator(hemi)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				integ.tau[spd.SideFront].Set(i, j, d.Tf.Get(i, j))
				integ.tau[spd.SideBack].Set(i, j, d.Tb.Get(i, j))
				integ.rho[spd.SideFront].Set(i, j, d.Rf.Get(i, j))
				integ.rho[spd.SideBack].Set(i, j, d.Rb.Get(i, j))
			}
		}
		o.wls = append(o.wls, d.Wl)
		o.perWl = append(o.perWl, integ)
	}
	return
}

// Hemisphere returns the basis
func (o *PreLoadedLayer) Hemisphere() *Hemisphere {
	return o.hemi
}

// Wavelengths returns the measured grid
func (o *PreLoadedLayer) Wavelengths() []float64 {
	return o.wls
}

// SetBandWavelengths accepts only the measured grid: goniophotometric
// data cannot be re-evaluated at other wavelengths
func (o *PreLoadedLayer) SetBandWavelengths(wls []float64) (err error) {
	if len(wls) != len(o.wls) {
		return chk.Err("preloaded layer: cannot rebind %d measured wavelengths to a grid of %d", len(o.wls), len(wls))
	}
	for i, wl := range wls {
		if wl != o.wls[i] {
			return chk.Err("preloaded layer: wavelength %g does not match measured %g", wl, o.wls[i])
		}
	}
	return
}

// WavelengthResults returns the stored per-wavelength integrators
func (o *PreLoadedLayer) WavelengthResults(cb ProgressCallback) (res []*Integrator, err error) {
	if cb != nil {
		for i := range o.perWl {
			cb(i+1, len(o.perWl))
		}
	}
	return o.perWl, nil
}

// Results returns the plain average over the measured wavelengths
func (o *PreLoadedLayer) Results() (res *Integrator, err error) {
	if o.results == nil {
		n := o.hemi.Size()
		o.results = NewIntegrator(o.hemi)
		w := 1.0 / float64(len(o.perWl))
		for _, integ := range o.perWl {
			for s := 0; s < 2; s++ {
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						o.results.tau[s].Set(i, j, o.results.tau[s].Get(i, j)+w*integ.tau[s].Get(i, j))
						o.results.rho[s].Set(i, j, o.results.rho[s].Get(i, j)+w*integ.rho[s].Get(i, j))
					}
				}
			}
		}
	}
	return o.results, nil
}
