// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsdf

import (
	"math"

	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
)

// Distribution selects how a cell scatters the non-specular part
type Distribution int

const (
	// UniformDiffuse spreads the scattered energy uniformly over the
	// outgoing hemisphere
	UniformDiffuse Distribution = iota

	// DirectionalDiffuse resolves the outgoing distribution per direction
	DirectionalDiffuse
)

// ProgressCallback reports progress of multi-wavelength builds; it is
// invoked once per wavelength with current in [1,total]
type ProgressCallback func(current, total int)

// CellView exposes the scalar scattering fractions of a cell for one
// material state (total band or a single wavelength)
type CellView interface {
	TDirDir(side spd.Side, d BeamDirection) float64
	RDirDir(side spd.Side, d BeamDirection) float64
	TDirDif(side spd.Side, d BeamDirection) float64
	RDirDif(side spd.Side, d BeamDirection) float64
	TDifDif(side spd.Side) float64
	RDifDif(side spd.Side) float64
}

// DirectionalView adds the direction-resolved outgoing distribution
type DirectionalView interface {
	CellView
	TDirOut(side spd.Side, in, out BeamDirection) float64
	RDirOut(side spd.Side, in, out BeamDirection) float64
}

// Cell provides material-state views of a shading or glazing cell
type Cell interface {
	Wavelengths() []float64
	SetBandWavelengths(wls []float64) error
	View(wavelengthIndex int) CellView // TotalBand for the band average
}

// TotalBand selects the band averaged view of a cell
const TotalBand = -1

// Layer assembles the BSDF matrices of one cell on a hemisphere basis.
// Results are evaluated lazily and cached
type Layer struct {
	cell Cell
	hemi *Hemisphere
	dist Distribution

	results   *Integrator
	wlResults []*Integrator
}

// NewLayer creates a BSDF layer maker
func NewLayer(cell Cell, hemi *Hemisphere, dist Distribution) *Layer {
	return &Layer{cell: cell, hemi: hemi, dist: dist}
}

// Hemisphere returns the basis
func (o *Layer) Hemisphere() *Hemisphere {
	return o.hemi
}

// Cell returns the wrapped cell
func (o *Layer) Cell() Cell {
	return o.cell
}

// Wavelengths returns the cell band grid
func (o *Layer) Wavelengths() []float64 {
	return o.cell.Wavelengths()
}

// SetBandWavelengths rebinds the cell to a common grid and drops the
// cached per-wavelength results
func (o *Layer) SetBandWavelengths(wls []float64) (err error) {
	if err = o.cell.SetBandWavelengths(wls); err != nil {
		return
	}
	o.wlResults = nil
	return
}

// Results returns the total-band integrator
func (o *Layer) Results() (res *Integrator, err error) {
	if o.results == nil {
		o.results, err = o.build(o.cell.View(TotalBand))
		if err != nil {
			return
		}
	}
	return o.results, nil
}

// WavelengthResults returns one integrator per cell wavelength. The
// callback, when given, is invoked once per wavelength
func (o *Layer) WavelengthResults(cb ProgressCallback) (res []*Integrator, err error) {
	if o.wlResults == nil {
		wls := o.cell.Wavelengths()
		o.wlResults = make([]*Integrator, len(wls))
		for i := range wls {
			o.wlResults[i], err = o.build(o.cell.View(i))
			if err != nil {
				o.wlResults = nil
				return
			}
			if cb != nil {
				cb(i+1, len(wls))
			}
		}
	}
	return o.wlResults, nil
}

// build fills the matrices for one material state. Cells report
// numerical failures by panicking; those are converted into errors here
func (o *Layer) build(v CellView) (res *Integrator, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = chk.Err("bsdf layer: %v", r)
		}
	}()
	res = NewIntegrator(o.hemi)
	n := o.hemi.Size()
	var dv DirectionalView
	if o.dist == DirectionalDiffuse {
		var ok bool
		if dv, ok = v.(DirectionalView); !ok {
			return nil, chk.Err("bsdf layer: cell does not resolve directional-diffuse distributions")
		}
	}
	for i := 0; i < n; i++ {
		pin := o.hemi.Patch(i)
		din := pin.Direction()
		for s := 0; s < 2; s++ {
			side := spd.Side(s)

			// specular diagonal
			res.AddTau(side, i, i, v.TDirDir(side, din)/pin.Lambda)
			res.AddRho(side, i, i, v.RDirDir(side, din)/pin.Lambda)

			// scattered part
			switch o.dist {
			case UniformDiffuse:
				tdf := v.TDirDif(side, din) / math.Pi
				rdf := v.RDirDif(side, din) / math.Pi
				if tdf == 0 && rdf == 0 {
					continue
				}
				for j := 0; j < n; j++ {
					res.AddTau(side, j, i, tdf)
					res.AddRho(side, j, i, rdf)
				}
			case DirectionalDiffuse:
				for j := 0; j < n; j++ {
					dout := o.hemi.Patch(j).Direction()
					res.AddTau(side, j, i, dv.TDirOut(side, din, dout)/math.Pi)
					res.AddRho(side, j, i, dv.RDirOut(side, din, dout)/math.Pi)
				}
			}
		}
	}
	return
}
