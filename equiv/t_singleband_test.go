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
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// specularSingleBand builds a specular BSDF layer from constant
// properties on the quarter basis
func specularSingleBand(tst *testing.T, hemi *bsdf.Hemisphere, t, r float64) *bsdf.Layer {
	mat, err := mdl.NewSingleBand(t, t, r, r, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return nil
	}
	return cell.NewSpecularLayer(mat, hemi)
}

func Test_equiv01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("equiv01. two specular layers against the closed form")

	hemi, err := bsdf.NewHemisphere(bsdf.BasisQuarter)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	l1 := specularSingleBand(tst, hemi, 0.8, 0.1)
	l2 := specularSingleBand(tst, hemi, 0.7, 0.15)
	if l1 == nil || l2 == nil {
		return
	}
	r1, err := l1.Results()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r2, err := l2.Results()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	sb := NewSingleBand(hemi.Lambdas(), integratorProps(r1),
		r1.AbsVector(spd.SideFront), r1.AbsVector(spd.SideBack))
	err = sb.AddLayer(integratorProps(r2), r2.AbsVector(spd.SideFront), r2.AbsVector(spd.SideBack))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// closed form of the specular double layer
	den := 1 - 0.1*0.15
	T12 := 0.8 * 0.7 / den
	R12 := 0.1 + 0.8*0.8*0.15/den
	A1 := 0.1 + 0.1*0.15*0.8/den
	A2 := 0.15 * 0.8 / den

	for i := 0; i < hemi.Size(); i++ {
		lam := hemi.Patch(i).Lambda
		chk.Float64(tst, "T diag", 1e-9, sb.Tau(spd.SideFront).Get(i, i)*lam, T12)
		chk.Float64(tst, "R diag", 1e-9, sb.Rho(spd.SideFront).Get(i, i)*lam, R12)
		chk.Float64(tst, "abs layer 1", 1e-9, sb.LayerAbs(0, spd.SideFront)[i], A1)
		chk.Float64(tst, "abs layer 2", 1e-9, sb.LayerAbs(1, spd.SideFront)[i], A2)

		// conservation with the per-layer split
		sum := T12 + R12 + sb.LayerAbs(0, spd.SideFront)[i] + sb.LayerAbs(1, spd.SideFront)[i]
		chk.Float64(tst, "conservation", 1e-9, sum, 1)
	}
}

func Test_equiv02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("equiv02. round trip with a clear layer")

	hemi, err := bsdf.NewHemisphere(bsdf.BasisSmall)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	layer := specularSingleBand(tst, hemi, 0.7, 0.2)
	clear := specularSingleBand(tst, hemi, 1.0, 0.0)
	if layer == nil || clear == nil {
		return
	}
	rl, err := layer.Results()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	rc, err := clear.Results()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	sb := NewSingleBand(hemi.Lambdas(), integratorProps(rl),
		rl.AbsVector(spd.SideFront), rl.AbsVector(spd.SideBack))
	err = sb.AddLayer(integratorProps(rc), rc.AbsVector(spd.SideFront), rc.AbsVector(spd.SideBack))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// composing with the identity layer reproduces the layer itself
	tau := sb.Tau(spd.SideFront)
	rho := sb.Rho(spd.SideFront)
	tauRef := rl.Tau(spd.SideFront)
	rhoRef := rl.Rho(spd.SideFront)
	for i := 0; i < hemi.Size(); i++ {
		for j := 0; j < hemi.Size(); j++ {
			chk.Float64(tst, "tau round trip", 1e-12, tau.Get(i, j), tauRef.Get(i, j))
			chk.Float64(tst, "rho round trip", 1e-12, rho.Get(i, j), rhoRef.Get(i, j))
		}
	}
}

func Test_equiv03(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("equiv03. triple stack conservation with diffusers")

	hemi, err := bsdf.NewHemisphere(bsdf.BasisQuarter)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mat1, err := mdl.NewSingleBand(0.2, 0.2, 0.5, 0.5, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	layers := []*bsdf.Layer{
		specularSingleBand(tst, hemi, 0.8, 0.1),
		cell.NewPerfectlyDiffuseLayer(mat1, hemi),
		specularSingleBand(tst, hemi, 0.7, 0.15),
	}

	var sb *SingleBand
	for k, l := range layers {
		res, err2 := l.Results()
		if err2 != nil {
			tst.Errorf("test failed: %v\n", err2)
			return
		}
		if k == 0 {
			sb = NewSingleBand(hemi.Lambdas(), integratorProps(res),
				res.AbsVector(spd.SideFront), res.AbsVector(spd.SideBack))
			continue
		}
		if err = sb.AddLayer(integratorProps(res), res.AbsVector(spd.SideFront), res.AbsVector(spd.SideBack)); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
	}

	// conservation per incoming direction on both sides
	for _, side := range []spd.Side{spd.SideFront, spd.SideBack} {
		for i := 0; i < hemi.Size(); i++ {
			sum := dirHemSum(hemi, sb.Tau(side), i) + dirHemSum(hemi, sb.Rho(side), i)
			for k := 0; k < sb.NumLayers(); k++ {
				sum += sb.LayerAbs(k, side)[i]
			}
			chk.Float64(tst, "conservation", 1e-8, sum, 1)
		}
	}
}

func dirHemSum(hemi *bsdf.Hemisphere, m *la.Matrix, in int) (res float64) {
	for j := 0; j < hemi.Size(); j++ {
		res += m.Get(j, in) * hemi.Patch(j).Lambda
	}
	return
}
