// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsdf

import (
	"testing"

	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_preloaded01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("preloaded01. measured matrices enter unchanged")

	hemi, err := NewHemisphere(BasisSmall)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	n := hemi.Size()

	diag := func(v float64) *la.Matrix {
		m := la.NewMatrix(n, n)
		for i := 0; i < n; i++ {
			m.Set(i, i, v/hemi.Patch(i).Lambda)
		}
		return m
	}
	data := []PreLoadedMatrices{
		{Wl: 0.5, Tf: diag(0.6), Tb: diag(0.6), Rf: diag(0.2), Rb: diag(0.2)},
		{Wl: 1.5, Tf: diag(0.4), Tb: diag(0.4), Rf: diag(0.3), Rb: diag(0.3)},
	}
	layer, err := NewPreLoadedLayer(hemi, data)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	res, err := layer.WavelengthResults(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "wavelengths", len(res), 2)
	chk.Float64(tst, "first T", 1e-12, res[0].DirHem(spd.SideFront, spd.PropT, 0), 0.6)
	chk.Float64(tst, "second R", 1e-12, res[1].DirHem(spd.SideFront, spd.PropR, 3), 0.3)

	avg, err := layer.Results()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "averaged T", 1e-12, avg.DirHem(spd.SideFront, spd.PropT, 0), 0.5)
}

func Test_preloaded02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("preloaded02. basis mismatch is rejected")

	hemi, err := NewHemisphere(BasisSmall)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	wrong := la.NewMatrix(5, 5)
	_, err = NewPreLoadedLayer(hemi, []PreLoadedMatrices{
		{Wl: 0.5, Tf: wrong, Tb: wrong, Rf: wrong, Rb: wrong},
	})
	if err == nil {
		tst.Errorf("test failed: wrong matrix size must be rejected\n")
		return
	}

	// rebinding to a different grid is refused as well
	ok := la.NewMatrix(hemi.Size(), hemi.Size())
	layer, err := NewPreLoadedLayer(hemi, []PreLoadedMatrices{
		{Wl: 0.5, Tf: ok, Tb: ok, Rf: ok, Rb: ok},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = layer.SetBandWavelengths([]float64{0.4, 0.6}); err == nil {
		tst.Errorf("test failed: regridding measured data must be rejected\n")
		return
	}
}
