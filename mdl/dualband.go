// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// NFRCRatio is the default fraction of the solar band energy falling
// into the visible range
const NFRCRatio = 0.49

// visible and solar band edges [µm]
const (
	visLo   = 0.38
	visHi   = 0.78
	solarLo = 0.3
	solarHi = 2.5
)

// small grid offset keeping the band edges sharp under interpolation
const bandEdgeEps = 1e-6

// DualBand splits a solar measurement into visible and non-visible
// parts weighted by the visible ratio
type DualBand struct {
	vis   *SingleBand // visible band values
	nv    *SingleBand // non-visible band values
	ratio float64
	wls   []float64
}

// add model to database
func init() {
	allocators["dual-band"] = func(prms dbf.Params) (Material, error) {
		var vals [8]float64
		var err error
		names := []string{"Tfsol", "Tbsol", "Rfsol", "Rbsol", "Tfvis", "Tbvis", "Rfvis", "Rbvis"}
		for i, name := range names {
			if vals[i], err = prm(prms, name); err != nil {
				return nil, err
			}
		}
		ratio := prmDefault(prms, "ratio", NFRCRatio)
		return NewDualBand(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7], ratio)
	}
}

// NewDualBand creates a dual band material from solar and visible
// averages; ratio weighs the visible share of the solar band
func NewDualBand(tfSol, tbSol, rfSol, rbSol, tfVis, tbVis, rfVis, rbVis, ratio float64) (o *DualBand, err error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, chk.Err("dual band material: ratio %g out of (0,1)", ratio)
	}
	split := func(sol, vis float64) float64 {
		nv := (sol - ratio*vis) / (1 - ratio)
		if nv < 0 {
			nv = 0
		}
		if nv > 1 {
			nv = 1
		}
		return nv
	}
	vis, err := NewSingleBand(tfVis, tbVis, rfVis, rbVis, visLo, visHi)
	if err != nil {
		return
	}
	nv, err := NewSingleBand(split(tfSol, tfVis), split(tbSol, tbVis), split(rfSol, rfVis), split(rbSol, rbVis), solarLo, solarHi)
	if err != nil {
		return
	}
	o = &DualBand{vis: vis, nv: nv, ratio: ratio}
	o.wls = []float64{solarLo, visLo - bandEdgeEps, visLo, visHi, visHi + bandEdgeEps, solarHi}
	return
}

// Range returns the solar range
func (o *DualBand) Range() (lo, hi float64) {
	return solarLo, solarHi
}

// Wavelengths returns the band grid with sharp visible edges
func (o *DualBand) Wavelengths() []float64 {
	return o.wls
}

// BandSize returns the number of band wavelengths
func (o *DualBand) BandSize() int {
	return len(o.wls)
}

// Property returns the solar average
func (o *DualBand) Property(prop spd.Property, side spd.Side, theta float64) float64 {
	// recombine the split bands with the ratio
	return o.ratio*o.vis.Property(prop, side, theta) + (1-o.ratio)*o.nv.Property(prop, side, theta)
}

// PropertyAt returns the property of band wavelength i
func (o *DualBand) PropertyAt(i int, prop spd.Property, side spd.Side, theta float64) float64 {
	return o.PropertyAtWavelength(o.wls[i], prop, side, theta)
}

// PropertyAtWavelength returns the visible or non-visible value
func (o *DualBand) PropertyAtWavelength(wl float64, prop spd.Property, side spd.Side, theta float64) float64 {
	if wl >= visLo && wl <= visHi {
		return o.vis.Property(prop, side, theta)
	}
	return o.nv.Property(prop, side, theta)
}
