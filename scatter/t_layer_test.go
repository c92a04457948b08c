// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"testing"

	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gofen/spectra"
	"github.com/cpmech/gosl/chk"
)

func Test_scatter01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("scatter01. clear glazing scattering layer at normal incidence")

	mat, err := mdl.NewNBand(spectra.NFRC102(), spectra.SolarRadiationASTME891(), 3.048e-3, spd.Monolithic)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	layer := NewSpecularLayer(mat)
	layer.SetSourceData(spectra.SolarRadiationASTME891())

	const lo, hi = 0.3, 2.5
	tol := 0.02 // reference sample tables are tabulated to 1e-4

	check := func(label string, prop spd.Property, sc spd.Scattering, correct float64) {
		v, err2 := layer.Property(lo, hi, prop, spd.SideFront, sc, 0, 0)
		if err2 != nil {
			tst.Errorf("test failed: %v\n", err2)
			return
		}
		chk.Float64(tst, label, tol, v, correct)
	}
	check("T dir-dir", spd.PropT, spd.DirectDirect, 0.833807)
	check("R dir-dir", spd.PropR, spd.DirectDirect, 0.074816)
	check("T dir-dif", spd.PropT, spd.DirectDiffuse, 0)
	check("R dir-dif", spd.PropR, spd.DirectDiffuse, 0)
	check("T dif-dif", spd.PropT, spd.DiffuseDiffuse, 0.752655)
	check("R dif-dif", spd.PropR, spd.DiffuseDiffuse, 0.146041)

	A, err := layer.Absorptance(lo, hi, spd.SideFront, spd.Direct, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A direct", tol, A, 0.091376)

	Ad, err := layer.Absorptance(lo, hi, spd.SideFront, spd.Diffuse, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A diffuse", tol, Ad, 0.101303)
}

func Test_scatter02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("scatter02. oblique incidence of the clear glazing")

	mat, err := mdl.NewNBand(spectra.NFRC102(), spectra.SolarRadiationASTME891(), 3.048e-3, spd.Monolithic)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	layer := NewSpecularLayer(mat)
	layer.SetSourceData(spectra.SolarRadiationASTME891())

	const lo, hi = 0.3, 2.5
	T45, err := layer.Property(lo, hi, spd.PropT, spd.SideFront, spd.DirectDirect, 45, 90)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T at 45 deg", 0.02, T45, 0.809175)

	R45, err := layer.Property(lo, hi, spd.PropR, spd.SideFront, spd.DirectDirect, 45, 90)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "R at 45 deg", 0.02, R45, 0.088811)

	// conservation at oblique incidence
	A45, err := layer.Absorptance(lo, hi, spd.SideFront, spd.Direct, 45, 90)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "conservation", 1e-8, T45+R45+A45, 1)
}

func Test_scatter03(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("scatter03. perfectly diffuse layer")

	mat, err := mdl.NewSingleBand(0.4, 0.4, 0.3, 0.3, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	layer := NewPerfectlyDiffuseLayer(mat)

	const lo, hi = 0.3, 2.5
	T, err := layer.Property(lo, hi, spd.PropT, spd.SideFront, spd.DirectHemispherical, 30, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T dir-hem", 1e-12, T, 0.4)

	Tdd, err := layer.Property(lo, hi, spd.PropT, spd.SideFront, spd.DirectDirect, 30, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "no beam survives", 1e-15, Tdd, 0)
}

func Test_multilayer01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("multilayer01. specular over diffuse stack")

	specMat, err := mdl.NewSingleBand(0.8, 0.8, 0.1, 0.1, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	difMat, err := mdl.NewSingleBand(0.3, 0.3, 0.5, 0.5, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	stack, err := NewMultiLayer(NewSpecularLayer(specMat), NewPerfectlyDiffuseLayer(difMat))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	const lo, hi = 0.3, 2.5

	// no beam survives the diffuser
	Tdd, err := stack.Property(lo, hi, spd.PropT, spd.SideFront, spd.DirectDirect, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T dir-dir", 1e-12, Tdd, 0)

	// closed form of the two-layer composition: the beam reaching the
	// diffuser converts and reflects between the layers diffusely
	Tds, err := stack.Property(lo, hi, spd.PropT, spd.SideFront, spd.DirectDiffuse, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	den := 1 - 0.1*0.5
	chk.Float64(tst, "T dir-dif", 1e-12, Tds, 0.8*0.3/den)

	// conservation with per-layer absorptances
	R, err := stack.Property(lo, hi, spd.PropR, spd.SideFront, spd.DirectHemispherical, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	A1, err := stack.AbsorptanceLayer(lo, hi, 1, spd.SideFront, spd.Direct, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	A2, err := stack.AbsorptanceLayer(lo, hi, 2, spd.SideFront, spd.Direct, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "conservation", 1e-10, Tdd+Tds+R+A1+A2, 1)

	// diffuse excitation conserves as well
	Tff, err := stack.Property(lo, hi, spd.PropT, spd.SideFront, spd.DiffuseDiffuse, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	Rff, err := stack.Property(lo, hi, spd.PropR, spd.SideFront, spd.DiffuseDiffuse, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	A1d, err := stack.AbsorptanceLayer(lo, hi, 1, spd.SideFront, spd.Diffuse, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	A2d, err := stack.AbsorptanceLayer(lo, hi, 2, spd.SideFront, spd.Diffuse, 0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "diffuse conservation", 1e-10, Tff+Rff+A1d+A2d, 1)

	// index validation
	if _, err = stack.AbsorptanceLayer(lo, hi, 3, spd.SideFront, spd.Direct, 0, 0); err == nil {
		tst.Errorf("test failed: layer index 3 must be rejected\n")
		return
	}
}
