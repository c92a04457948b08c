// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spd

import "github.com/cpmech/gosl/chk"

// tolerance for the physical bound T + R <= 1 of measured rows
const sampleDataTol = 1e-3

// SampleRow is one measured record of a spectral sample
type SampleRow struct {
	Wl float64 // wavelength [µm]
	Tf float64 // front transmittance
	Rf float64 // front reflectance
	Tb float64 // back transmittance
	Rb float64 // back reflectance
}

// SampleData holds the measured optical properties of a sample keyed by
// wavelength. It is immutable after construction
type SampleData struct {
	rows []SampleRow
}

// NewSampleData validates and stores measured rows. Rows must be sorted
// by wavelength, without duplicates, and satisfy T + R <= 1 per side
// within tolerance
func NewSampleData(rows []SampleRow) (o *SampleData, err error) {
	for i, r := range rows {
		if i > 0 && r.Wl <= rows[i-1].Wl {
			return nil, chk.Err("sample data: wavelengths must be strictly increasing (row %d: %g after %g)", i, r.Wl, rows[i-1].Wl)
		}
		if r.Tf+r.Rf > 1+sampleDataTol || r.Tb+r.Rb > 1+sampleDataTol {
			return nil, chk.Err("sample data: T+R exceeds unity at λ=%g", r.Wl)
		}
	}
	return &SampleData{rows: rows}, nil
}

// NewSampleDataTable builds sample data from a flat table of
// (λ, Tf, Rf, Rb) rows with symmetric transmittance (Tb = Tf)
func NewSampleDataTable(table [][4]float64) (o *SampleData, err error) {
	rows := make([]SampleRow, len(table))
	for i, t := range table {
		rows[i] = SampleRow{Wl: t[0], Tf: t[1], Rf: t[2], Tb: t[1], Rb: t[3]}
	}
	return NewSampleData(rows)
}

// Len returns the number of measured rows
func (o *SampleData) Len() int {
	return len(o.rows)
}

// Row returns measured row i
func (o *SampleData) Row(i int) SampleRow {
	return o.rows[i]
}

// Wavelengths returns the measured wavelength grid
func (o *SampleData) Wavelengths() (wls []float64) {
	wls = make([]float64, len(o.rows))
	for i, r := range o.rows {
		wls[i] = r.Wl
	}
	return
}

// Curve extracts one channel as a Series
func (o *SampleData) Curve(prop Property, side Side) (res *Series) {
	res = NewSeries()
	for _, r := range o.rows {
		res.Add(r.Wl, o.value(r, prop, side))
	}
	return
}

// Interpolate resamples all four channels onto the grid wls
func (o *SampleData) Interpolate(wls []float64) (res *SampleData) {
	tf := o.Curve(PropT, SideFront).Interpolate(wls)
	tb := o.Curve(PropT, SideBack).Interpolate(wls)
	rf := o.Curve(PropR, SideFront).Interpolate(wls)
	rb := o.Curve(PropR, SideBack).Interpolate(wls)
	rows := make([]SampleRow, len(wls))
	for i, wl := range wls {
		rows[i] = SampleRow{Wl: wl, Tf: tf.V(i), Tb: tb.V(i), Rf: rf.V(i), Rb: rb.V(i)}
	}
	return &SampleData{rows: rows}
}

// Flipped swaps the front and back channels of every row
func (o *SampleData) Flipped() (res *SampleData) {
	rows := make([]SampleRow, len(o.rows))
	for i, r := range o.rows {
		rows[i] = SampleRow{Wl: r.Wl, Tf: r.Tb, Tb: r.Tf, Rf: r.Rb, Rb: r.Rf}
	}
	return &SampleData{rows: rows}
}

func (o *SampleData) value(r SampleRow, prop Property, side Side) float64 {
	switch prop {
	case PropT:
		if side == SideFront {
			return r.Tf
		}
		return r.Tb
	case PropR:
		if side == SideFront {
			return r.Rf
		}
		return r.Rb
	}
	// absorptance from conservation
	if side == SideFront {
		return 1 - r.Tf - r.Rf
	}
	return 1 - r.Tb - r.Rb
}
