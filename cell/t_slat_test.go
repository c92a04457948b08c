// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_slat01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("slat01. flat slat meshing")

	g := VenetianGeometry{SlatWidth: 0.010, SlatSpacing: 0.012, SlatTiltAngle: 30, NumSegments: 4}

	top := buildSlat(g, g.SlatSpacing, true)
	chk.Int(tst, "segments", top.Len(), 4)

	// the exterior end sits at (0, spacing)
	chk.Float64(tst, "first x", 1e-15, top.FirstPoint().X, 0)
	chk.Float64(tst, "first y", 1e-15, top.FirstPoint().Y, 0.012)

	// the slat length is preserved by the mesh
	total := 0.0
	for i := 0; i < top.Len(); i++ {
		total += top.Seg(i).Length()
	}
	chk.Float64(tst, "meshed length", 1e-12, total, 0.010)

	// the interior end follows the tilt
	chk.Float64(tst, "last x", 1e-12, top.LastPoint().X, 0.010*math.Cos(30*math.Pi/180))
	chk.Float64(tst, "last y", 1e-12, top.LastPoint().Y, 0.012+0.010*math.Sin(30*math.Pi/180))

	// the bottom slat runs interior to exterior and ends at the origin
	bottom := buildSlat(g, 0, false)
	chk.Float64(tst, "bottom last x", 1e-15, bottom.LastPoint().X, 0)
	chk.Float64(tst, "bottom last y", 1e-15, bottom.LastPoint().Y, 0)
}

func Test_slat02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("slat02. curved slat meshing")

	g := VenetianGeometry{
		SlatWidth: 0.010, SlatSpacing: 0.012, SlatTiltAngle: 0,
		CurvatureRadius: 0.010, NumSegments: 5,
	}
	slat := buildSlat(g, g.SlatSpacing, true)
	chk.Int(tst, "segments", slat.Len(), 5)

	// the chord between the slat ends equals the slat width
	chord := slat.FirstPoint().Dist(slat.LastPoint())
	chk.Float64(tst, "chord", 1e-12, chord, 0.010)

	// the meshed arc is longer than the chord
	total := 0.0
	for i := 0; i < slat.Len(); i++ {
		total += slat.Seg(i).Length()
	}
	if total <= chord {
		tst.Errorf("test failed: arc length %g not above chord %g\n", total, chord)
		return
	}

	// opposite curvature mirrors the bulge
	g.CurvatureRadius = -0.010
	mirror := buildSlat(g, g.SlatSpacing, true)
	chk.Float64(tst, "mirrored chord", 1e-12, mirror.FirstPoint().Dist(mirror.LastPoint()), 0.010)
}

func Test_slat03(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("slat03. backward flow sibling")

	desc, err := NewVenetianDescription(VenetianGeometry{
		SlatWidth: 0.010, SlatSpacing: 0.010, SlatTiltAngle: 45, NumSegments: 2,
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	back, err := desc.BackwardFlowCell()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "flipped tilt", 1e-15, back.Geometry().SlatTiltAngle, -45)
	chk.Int(tst, "same mesh", back.NumberOfSegments(), desc.NumberOfSegments())
}
