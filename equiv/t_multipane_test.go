// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"testing"

	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/cell"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gofen/spectra"
	"github.com/cpmech/gosl/chk"
)

// nfrcLayer builds a specular BSDF layer from one of the reference
// samples bound to the ASTM solar source
func nfrcLayer(tst *testing.T, hemi *bsdf.Hemisphere, data *spd.SampleData, thickness float64) *bsdf.Layer {
	mat, err := mdl.NewNBand(data, spectra.SolarRadiationASTME891(), thickness, spd.Monolithic)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return nil
	}
	return cell.NewSpecularLayer(mat, hemi)
}

func Test_multipane01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("multipane01. double clear glazing over the solar band")

	hemi, err := bsdf.NewHemisphere(bsdf.BasisQuarter)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	l102 := nfrcLayer(tst, hemi, spectra.NFRC102(), 3.048e-3)
	l103 := nfrcLayer(tst, hemi, spectra.NFRC103(), 5.715e-3)
	if l102 == nil || l103 == nil {
		return
	}

	mp, err := NewMultiPaneBSDF([]Layer{l102, l103},
		CalculationProperties{Source: spectra.SolarRadiationASTME891()}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	const lo, hi = 0.3, 2.5
	tol := 0.02 // reference sample tables are tabulated to 1e-4

	T, err := mp.DirDir(lo, hi, spd.SideFront, spd.PropT, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T dir-dir", tol, T, 0.65227)

	R, err := mp.DirDir(lo, hi, spd.SideFront, spd.PropR, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "R dir-dir", tol, R, 0.12473)

	A1, err := mp.Abs(lo, hi, spd.SideFront, 1, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "abs layer 1", tol, A1, 0.09607)

	A2, err := mp.Abs(lo, hi, spd.SideFront, 2, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "abs layer 2", tol, A2, 0.12690)

	// conservation at normal incidence
	chk.Float64(tst, "conservation", 1e-8, T+R+A1+A2, 1)

	// invalid queries
	if _, err = mp.Abs(lo, hi, spd.SideFront, 0, 0, 0); err == nil {
		tst.Errorf("test failed: layer index 0 must be rejected\n")
		return
	}
	if _, err = mp.Abs(lo, hi, spd.SideFront, 3, 0, 0); err == nil {
		tst.Errorf("test failed: layer index 3 must be rejected\n")
		return
	}
	if _, err = mp.DirDir(hi, lo, spd.SideFront, spd.PropT, 0, 0); err == nil {
		tst.Errorf("test failed: inverted band must be rejected\n")
		return
	}
	if _, err = mp.DirDir(lo, hi, spd.SideFront, spd.PropT, 120, 0); err == nil {
		tst.Errorf("test failed: θ=120 must be rejected\n")
		return
	}
}

func Test_multipane02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("multipane02. progress callback over the common grid")

	hemi, err := bsdf.NewHemisphere(bsdf.BasisSmall)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mat, err := mdl.NewSingleBand(0.8, 0.8, 0.1, 0.1, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	layer := cell.NewSpecularLayer(mat, hemi)

	common := spectra.CondensedSpectrumDefault()
	var calls []int
	total := 0
	_, err = NewMultiPaneBSDF([]Layer{layer},
		CalculationProperties{Source: spectra.SolarRadiationASTME891(), CommonWavelengths: common},
		func(current, totalWl int) {
			calls = append(calls, current)
			total = totalWl
		})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Int(tst, "total equals grid", total, len(common))
	chk.Int(tst, "one call per wavelength", len(calls), len(common))
	for i, c := range calls {
		chk.Int(tst, "monotone current", c, i+1)
	}
}

func Test_multipane03(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("multipane03. constant layer is source independent")

	hemi, err := bsdf.NewHemisphere(bsdf.BasisQuarter)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mat, err := mdl.NewSingleBand(0.6, 0.6, 0.25, 0.25, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	layer := cell.NewSpecularLayer(mat, hemi)

	for _, source := range []*spd.Series{
		spectra.SolarRadiationASTME891(),
		spd.NewSeriesData([]float64{0.3, 2.5}, []float64{1, 1}),
	} {
		mp, err := NewMultiPaneBSDF([]Layer{layer}, CalculationProperties{Source: source}, nil)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		T, err := mp.DirDir(0.3, 2.5, spd.SideFront, spd.PropT, 0, 0)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, "T independent of source", 1e-10, T, 0.6)
	}
}

func Test_multipane04(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("multipane04. banded matrix retrieval")

	hemi, err := bsdf.NewHemisphere(bsdf.BasisSmall)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mat, err := mdl.NewSingleBand(0.5, 0.5, 0.2, 0.2, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mp, err := NewMultiPaneBSDF([]Layer{cell.NewSpecularLayer(mat, hemi)},
		CalculationProperties{Source: spectra.SolarRadiationASTME891()}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	m, err := mp.Matrix(0.3, 2.5, spd.SideFront, spd.PropT)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "matrix size", m.M, 7)
	for i := 0; i < m.M; i++ {
		chk.Float64(tst, "diag entry", 1e-10, m.Get(i, i)*hemi.Patch(i).Lambda, 0.5)
	}
}
