// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"testing"

	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_material01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("material01. single band model")

	mat, err := NewSingleBand(0.1, 0.1, 0.7, 0.7, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	lo, hi := mat.Range()
	chk.Float64(tst, "lo", 1e-15, lo, 0.3)
	chk.Float64(tst, "hi", 1e-15, hi, 2.5)
	chk.Int(tst, "band size", mat.BandSize(), 2)
	chk.Float64(tst, "Tf", 1e-15, mat.Property(spd.PropT, spd.SideFront, 0), 0.1)
	chk.Float64(tst, "Rb", 1e-15, mat.Property(spd.PropR, spd.SideBack, 45), 0.7)
	chk.Float64(tst, "Abs", 1e-15, mat.Property(spd.PropAbs, spd.SideFront, 0), 0.2)

	_, err = NewSingleBand(0.6, 0.6, 0.6, 0.6, 0.3, 2.5)
	if err == nil {
		tst.Errorf("test failed: T+R > 1 must be rejected\n")
		return
	}

	_, err = NewSingleBand(0.1, 0.1, 0.1, 0.1, 2.5, 0.3)
	if err == nil {
		tst.Errorf("test failed: inverted range must be rejected\n")
		return
	}
}

func Test_material02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("material02. dual band split and recombination")

	// solar and visible averages recombine through the ratio
	mat, err := NewDualBand(0.6, 0.6, 0.2, 0.2, 0.8, 0.8, 0.1, 0.1, NFRCRatio)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// inside the visible band the visible value rules
	chk.Float64(tst, "T visible", 1e-12, mat.PropertyAtWavelength(0.55, spd.PropT, spd.SideFront, 0), 0.8)

	// outside it the non-visible split applies
	tnv := (0.6 - NFRCRatio*0.8) / (1 - NFRCRatio)
	chk.Float64(tst, "T infrared", 1e-12, mat.PropertyAtWavelength(1.5, spd.PropT, spd.SideFront, 0), tnv)

	// recombination returns the solar average
	chk.Float64(tst, "T recombined", 1e-12, mat.Property(spd.PropT, spd.SideFront, 0), 0.6)

	_, err = NewDualBand(0.6, 0.6, 0.2, 0.2, 0.8, 0.8, 0.1, 0.1, 1.5)
	if err == nil {
		tst.Errorf("test failed: ratio out of range must be rejected\n")
		return
	}
}

func Test_material03(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("material03. n-band model over measured data")

	data, err := spd.NewSampleDataTable([][4]float64{
		{0.3, 0.1, 0.05, 0.05},
		{0.5, 0.9, 0.08, 0.08},
		{2.5, 0.6, 0.05, 0.05},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	source := spd.NewSeriesData([]float64{0.3, 2.5}, []float64{1, 1})
	mat, err := NewNBand(data, source, 3.0e-3, spd.Monolithic)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Int(tst, "band size", mat.BandSize(), 3)
	chk.Float64(tst, "T at grid point", 1e-12, mat.PropertyAt(1, spd.PropT, spd.SideFront, 0), 0.9)
	chk.Float64(tst, "T interpolated", 1e-12, mat.PropertyAtWavelength(0.4, spd.PropT, spd.SideFront, 0), 0.5)

	// flipped variant swaps sides
	flipped, err := NewNBandFlipped(data, source, 3.0e-3, spd.Monolithic)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "flipped Rf", 1e-12,
		flipped.PropertyAt(1, spd.PropR, spd.SideFront, 0),
		mat.PropertyAt(1, spd.PropR, spd.SideBack, 0))
}

func Test_material04(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("material04. database allocation from parameters")

	mat, err := New("single-band", dbf.Params{
		&dbf.P{N: "Tf", V: 0.2},
		&dbf.P{N: "Tb", V: 0.2},
		&dbf.P{N: "Rf", V: 0.5},
		&dbf.P{N: "Rb", V: 0.5},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "allocated Tf", 1e-15, mat.Property(spd.PropT, spd.SideFront, 0), 0.2)

	_, err = New("unknown-model", nil)
	if err == nil {
		tst.Errorf("test failed: unknown model must be rejected\n")
		return
	}

	_, err = New("single-band", dbf.Params{&dbf.P{N: "Tf", V: 0.2}})
	if err == nil {
		tst.Errorf("test failed: missing parameters must be rejected\n")
		return
	}
}

func Test_material05(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("material05. direct-diffuse channels pass unclamped")

	spec, err := NewSingleBand(0.6, 0.6, 0.1, 0.1, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	dif, err := NewSingleBand(0.5, 0.5, 0.3, 0.3, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	dd, err := NewDirDif(spec, dif)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// the combined absorptance of this diagnostic material is negative
	chk.Float64(tst, "T combined", 1e-15, dd.Property(spd.PropT, spd.SideFront, 0), 1.1)
	chk.Float64(tst, "Abs diagnostic", 1e-15, dd.Property(spd.PropAbs, spd.SideFront, 0), -0.5)
}
