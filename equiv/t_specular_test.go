// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"testing"

	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gofen/spectra"
	"github.com/cpmech/gosl/chk"
)

func angularSample(tst *testing.T, data *spd.SampleData, thickness float64) *spd.AngularSample {
	sample := spd.NewSample(data, spectra.SolarRadiationASTME891())
	angular, err := spd.NewAngularSample(sample, thickness, spd.Monolithic)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return nil
	}
	return angular
}

func Test_mpspecular01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("mpspecular01. double clear glazing per incidence angle")

	s102 := angularSample(tst, spectra.NFRC102(), 3.048e-3)
	s103 := angularSample(tst, spectra.NFRC103(), 5.715e-3)
	if s102 == nil || s103 == nil {
		return
	}
	mp, err := NewMultiPaneSpecular([]*spd.AngularSample{s102, s103},
		CalculationProperties{Source: spectra.SolarRadiationASTME891()})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "layers", mp.NumLayers(), 2)

	const lo, hi = 0.3, 2.5
	tol := 0.02 // reference sample tables are tabulated to 1e-4

	T0, err := mp.Property(lo, hi, spd.PropT, spd.SideFront, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T at normal", tol, T0, 0.65227)

	// conservation across layers at any angle
	for _, theta := range []float64{0, 30, 60} {
		T, err := mp.Property(lo, hi, spd.PropT, spd.SideFront, theta)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		R, err := mp.Property(lo, hi, spd.PropR, spd.SideFront, theta)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		A1, err := mp.Abs(lo, hi, spd.SideFront, 1, theta)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		A2, err := mp.Abs(lo, hi, spd.SideFront, 2, theta)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Float64(tst, "conservation", 1e-8, T+R+A1+A2, 1)
	}

	// hemispherical value sits below the normal incidence one
	Them, err := mp.PropertyHem(lo, hi, spd.PropT, spd.SideFront)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if Them >= T0 {
		tst.Errorf("test failed: hemispherical T %g should be below normal %g\n", Them, T0)
		return
	}

	// angle validation
	if _, err = mp.Property(lo, hi, spd.PropT, spd.SideFront, 95); err == nil {
		tst.Errorf("test failed: θ=95 must be rejected\n")
		return
	}
}
