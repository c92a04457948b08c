// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"testing"

	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
)

// flat45Cell builds the reference venetian cell: flat slats at 45
// degrees, width = spacing = 10 mm, two segments per slat
func flat45Cell(tst *testing.T) *Venetian {
	mat, err := mdl.NewSingleBand(0.1, 0.1, 0.7, 0.7, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return nil
	}
	g := VenetianGeometry{
		SlatWidth:     0.010,
		SlatSpacing:   0.010,
		SlatTiltAngle: 45,
		NumSegments:   2,
	}
	c, err := NewVenetian(mat, g, 0, false)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return nil
	}
	return c
}

func Test_venetian01(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("venetian01. geometry validation")

	mat, err := mdl.NewSingleBand(0.1, 0.1, 0.7, 0.7, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	bad := []VenetianGeometry{
		{SlatWidth: 0, SlatSpacing: 0.01, NumSegments: 1},
		{SlatWidth: 0.01, SlatSpacing: -1, NumSegments: 1},
		{SlatWidth: 0.01, SlatSpacing: 0.01, NumSegments: 0},
		{SlatWidth: 0.01, SlatSpacing: 0.01, CurvatureRadius: 0.004, NumSegments: 1},
	}
	for i, g := range bad {
		if _, err := NewVenetian(mat, g, 0, false); err == nil {
			tst.Errorf("test failed: invalid geometry %d must be rejected\n", i)
			return
		}
	}

	// a curvature radius above half the width is legal
	ok := VenetianGeometry{SlatWidth: 0.01, SlatSpacing: 0.01, CurvatureRadius: 0.006, NumSegments: 2}
	if _, err := NewVenetian(mat, ok, 0, false); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
}

func Test_venetian02(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("venetian02. enclosure view factors")

	desc, err := NewVenetianDescription(VenetianGeometry{
		SlatWidth: 0.010, SlatSpacing: 0.010, SlatTiltAngle: 0, NumSegments: 1,
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "enclosure size", desc.NumberOfSegments(), 4)

	vf, err := desc.ViewFactors()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	n := desc.NumberOfSegments()
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += vf.Get(i, j)

			// equal-length surfaces make reciprocity a plain symmetry
			chk.Float64(tst, "reciprocity", 1e-12, vf.Get(i, j), vf.Get(j, i))
		}
		chk.Float64(tst, "row sum", 1e-12, sum, 1)
	}
}

func Test_venetian03(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("venetian03. diffuse-diffuse of flat 45 degree slats")

	c := flat45Cell(tst)
	if c == nil {
		return
	}
	v := c.View(bsdf.TotalBand)

	chk.Float64(tst, "Tdif front", 1e-6, v.TDifDif(spd.SideFront), 0.47122586752693946)
	chk.Float64(tst, "Rdif front", 1e-6, v.RDifDif(spd.SideFront), 0.34565694288233745)

	// symmetric slat properties make both sides equal
	chk.Float64(tst, "Tdif back", 1e-6, v.TDifDif(spd.SideBack), 0.47122586752693946)
	chk.Float64(tst, "Rdif back", 1e-6, v.RDifDif(spd.SideBack), 0.34565694288233745)
}

func Test_venetian04(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("venetian04. direct properties of flat 45 degree slats")

	c := flat45Cell(tst)
	if c == nil {
		return
	}
	v := c.View(bsdf.TotalBand)
	normal := bsdf.BeamDirection{Theta: 0, Phi: 0}

	chk.Float64(tst, "Tdirdir front", 1e-6, v.TDirDir(spd.SideFront, normal), 0.29289321881345237)
	chk.Float64(tst, "Tdirdif front", 1e-6, v.TDirDif(spd.SideFront, normal), 0.15853813605369510)
	chk.Float64(tst, "Rdirdif front", 1e-6, v.RDirDif(spd.SideFront, normal), 0.35939548999199644)

	chk.Float64(tst, "Tdirdir back", 1e-6, v.TDirDir(spd.SideBack, normal), 0.29289321881345237)
	chk.Float64(tst, "Tdirdif back", 1e-6, v.TDirDif(spd.SideBack, normal), 0.15853813605369516)
	chk.Float64(tst, "Rdirdif back", 1e-6, v.RDirDif(spd.SideBack, normal), 0.35939548999199655)

	// a direction along the slat axis carries no profile deflection and
	// reproduces the normal incidence values
	along := bsdf.BeamDirection{Theta: 18, Phi: 180}
	chk.Float64(tst, "Tdirdir along slats", 1e-6, v.TDirDir(spd.SideFront, along), 0.29289321881345237)
	chk.Float64(tst, "Tdirdif along slats", 1e-6, v.TDirDif(spd.SideFront, along), 0.15853813605369510)
	chk.Float64(tst, "Rdirdif along slats", 1e-6, v.RDirDif(spd.SideFront, along), 0.35939548999199644)
}

func Test_venetian05(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("venetian05. directional-diffuse distribution at zero tilt")

	mat, err := mdl.NewSingleBand(0.9, 0.9, 0.0, 0.0, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	c, err := NewVenetian(mat, VenetianGeometry{
		SlatWidth: 0.010, SlatSpacing: 0.010, SlatTiltAngle: 0, NumSegments: 1,
	}, 0, false)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	v := c.View(bsdf.TotalBand).(bsdf.DirectionalView)

	in := bsdf.BeamDirection{Theta: 18, Phi: 45}
	out := bsdf.BeamDirection{Theta: 18, Phi: 270}

	tdd := v.TDirOut(spd.SideFront, in, out)
	rdd := v.RDirOut(spd.SideFront, in, out)
	chk.Float64(tst, "Tdir out", 1e-4, tdd, 0.10711940268416009)
	chk.Float64(tst, "Rdir out", 1e-4, rdd, 0.10711940268416009)
}

func Test_venetian06(tst *testing.T) {

	//Verbose()
	chk.PrintTitle("venetian06. zero tilt symmetry")

	mat, err := mdl.NewSingleBand(0.0, 0.0, 0.2, 0.2, 0.3, 2.5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	c, err := NewVenetian(mat, VenetianGeometry{
		SlatWidth: 0.010, SlatSpacing: 0.010, SlatTiltAngle: 0, NumSegments: 1,
	}, 0, false)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	v := c.View(bsdf.TotalBand)

	chk.Float64(tst, "Tdif symmetry", 1e-12, v.TDifDif(spd.SideFront), v.TDifDif(spd.SideBack))
	chk.Float64(tst, "Rdif symmetry", 1e-12, v.RDifDif(spd.SideFront), v.RDifDif(spd.SideBack))

	// conservation under diffuse excitation
	sum := v.TDifDif(spd.SideFront) + v.RDifDif(spd.SideFront)
	if sum > 1+1e-10 {
		tst.Errorf("test failed: diffuse T+R = %g exceeds unity\n", sum)
		return
	}
}
