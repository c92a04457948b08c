// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsdf

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_hemi01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("hemi01. patch counts and solid angle sums")

	sizes := map[Basis]int{
		BasisSmall:   7,
		BasisQuarter: 41,
		BasisHalf:    73,
		BasisFull:    145,
	}
	for basis, size := range sizes {
		hemi, err := NewHemisphere(basis)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Int(tst, "size", hemi.Size(), size)

		sumOmega, sumLambda := 0.0, 0.0
		for _, p := range hemi.Patches() {
			sumOmega += p.SolidAngle
			sumLambda += p.Lambda
		}
		chk.Float64(tst, "solid angles sum to 2π", 1e-9, sumOmega, 2*math.Pi)
		chk.Float64(tst, "lambdas sum to π", 1e-9, sumLambda, math.Pi)
	}
}

func Test_hemi02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("hemi02. canonical patch ordering of the quarter basis")

	hemi, err := NewHemisphere(BasisQuarter)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// first patch is the pole cap
	p0 := hemi.Patch(0)
	chk.Float64(tst, "pole theta", 1e-15, p0.Theta, 0)
	chk.Float64(tst, "pole lower bound", 1e-15, p0.ThetaLo, 0)
	chk.Float64(tst, "pole upper bound", 1e-15, p0.ThetaHi, 9)

	// second band carries 8 sectors at 18 degrees
	p1 := hemi.Patch(1)
	chk.Float64(tst, "band theta", 1e-15, p1.Theta, 18)
	chk.Float64(tst, "band phi", 1e-15, p1.Phi, 0)
	chk.Float64(tst, "band dphi", 1e-15, p1.DeltaPhi, 45)

	// last band reaches 90 degrees
	pl := hemi.Patch(hemi.Size() - 1)
	chk.Float64(tst, "last theta", 1e-15, pl.Theta, 76.5)
	chk.Float64(tst, "last upper bound", 1e-15, pl.ThetaHi, 90)
}

func Test_hemi03(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("hemi03. patch lookup")

	hemi, err := NewHemisphere(BasisQuarter)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	idx, err := hemi.PatchIndex(0, 0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "pole index", idx, 0)

	idx, err = hemi.PatchIndex(18, 45)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "second sector", idx, 2)

	// negative azimuth wraps
	idx, err = hemi.PatchIndex(18, -45)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "wrapped sector", idx, 8)

	_, err = hemi.PatchIndex(95, 0)
	if err == nil {
		tst.Errorf("test failed: θ=95 must be rejected\n")
		return
	}
}

func Test_direction01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("direction01. profile angle and rotation")

	d := BeamDirection{Theta: 0, Phi: 0}
	chk.Float64(tst, "profile at normal", 1e-15, d.ProfileAngle(), 0)

	d = BeamDirection{Theta: 45, Phi: 0}
	chk.Float64(tst, "profile along slats", 1e-12, d.ProfileAngle(), 0)

	d = BeamDirection{Theta: 45, Phi: 90}
	chk.Float64(tst, "profile across slats", 1e-12, d.ProfileAngle(), -45)

	r := BeamDirection{Theta: 30, Phi: 350}.Rotate(20)
	chk.Float64(tst, "rotated phi", 1e-12, r.Phi, 10)
}
