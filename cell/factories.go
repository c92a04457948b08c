// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/mdl"
)

// NewSpecularLayer builds the BSDF layer of a specular glazing
func NewSpecularLayer(mat mdl.Material, hemi *bsdf.Hemisphere) *bsdf.Layer {
	return bsdf.NewLayer(NewSpecular(mat, 0), hemi, bsdf.UniformDiffuse)
}

// NewFlippedSpecularLayer builds a specular layer rotated by 180 degrees
// with the material already flipped by the caller
func NewFlippedSpecularLayer(mat mdl.Material, hemi *bsdf.Hemisphere) *bsdf.Layer {
	return bsdf.NewLayer(NewSpecular(mat, 180), hemi, bsdf.UniformDiffuse)
}

// NewPerfectlyDiffuseLayer builds the BSDF layer of an ideal diffuser
func NewPerfectlyDiffuseLayer(mat mdl.Material, hemi *bsdf.Hemisphere) *bsdf.Layer {
	return bsdf.NewLayer(NewPerfectlyDiffuse(mat, 0), hemi, bsdf.UniformDiffuse)
}

// NewHomogeneousDiffuseLayer builds the BSDF layer of a diffuser with
// angular material response
func NewHomogeneousDiffuseLayer(mat mdl.Material, hemi *bsdf.Hemisphere) *bsdf.Layer {
	return bsdf.NewLayer(NewHomogeneousDiffuse(mat, 0), hemi, bsdf.UniformDiffuse)
}

// NewDirDifLayer builds the BSDF layer of a material with separate
// specular and diffuse measured channels
func NewDirDifLayer(dd *mdl.DirDif, hemi *bsdf.Hemisphere) *bsdf.Layer {
	return bsdf.NewLayer(NewDirDif(dd, 0), hemi, bsdf.UniformDiffuse)
}

// NewCircularPerforatedLayer builds the BSDF layer of a screen with
// circular holes
func NewCircularPerforatedLayer(mat mdl.Material, hemi *bsdf.Hemisphere, x, y, thickness, radius float64) *bsdf.Layer {
	desc := CircularPerforated{X: x, Y: y, Thickness: thickness, Radius: radius}
	return bsdf.NewLayer(NewPerforated(mat, desc, 0), hemi, bsdf.UniformDiffuse)
}

// NewRectangularPerforatedLayer builds the BSDF layer of a screen with
// rectangular holes
func NewRectangularPerforatedLayer(mat mdl.Material, hemi *bsdf.Hemisphere, x, y, thickness, xHole, yHole float64) *bsdf.Layer {
	desc := RectangularPerforated{X: x, Y: y, Thickness: thickness, XHole: xHole, YHole: yHole}
	return bsdf.NewLayer(NewPerforated(mat, desc, 0), hemi, bsdf.UniformDiffuse)
}

// NewWovenLayer builds the BSDF layer of a woven screen
func NewWovenLayer(mat mdl.Material, hemi *bsdf.Hemisphere, diameter, spacing float64) *bsdf.Layer {
	desc := Woven{Diameter: diameter, Spacing: spacing}
	return bsdf.NewLayer(NewPerforated(mat, desc, 0), hemi, bsdf.UniformDiffuse)
}

// NewVenetianLayer builds the BSDF layer of a venetian blind with the
// chosen scattering distribution
func NewVenetianLayer(mat mdl.Material, hemi *bsdf.Hemisphere, g VenetianGeometry, dist bsdf.Distribution, symmetric bool) (res *bsdf.Layer, err error) {
	c, err := NewVenetian(mat, g, 0, symmetric)
	if err != nil {
		return
	}
	return bsdf.NewLayer(c, hemi, dist), nil
}
