// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
)

// PerfectlyDiffuse scatters everything Lambertian with the normal
// incidence material properties
type PerfectlyDiffuse struct {
	base
}

// NewPerfectlyDiffuse creates a perfectly diffusing cell
func NewPerfectlyDiffuse(mat mdl.Material, rotation float64) *PerfectlyDiffuse {
	return &PerfectlyDiffuse{base{mat: mat, rotation: rotation}}
}

// View returns the cell view at one material state
func (o *PerfectlyDiffuse) View(wl int) bsdf.CellView {
	return &diffuseView{base: &o.base, wl: wl, angular: false}
}

// HomogeneousDiffuse scatters everything Lambertian with the material
// evaluated at the incidence angle
type HomogeneousDiffuse struct {
	base
}

// NewHomogeneousDiffuse creates a homogeneously diffusing cell
func NewHomogeneousDiffuse(mat mdl.Material, rotation float64) *HomogeneousDiffuse {
	return &HomogeneousDiffuse{base{mat: mat, rotation: rotation}}
}

// View returns the cell view at one material state
func (o *HomogeneousDiffuse) View(wl int) bsdf.CellView {
	return &diffuseView{base: &o.base, wl: wl, angular: true}
}

type diffuseView struct {
	base    *base
	wl      int
	angular bool
}

func (o *diffuseView) theta(d bsdf.BeamDirection) float64 {
	if o.angular {
		return o.base.rotate(d).Theta
	}
	return 0
}

func (o *diffuseView) TDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	return 0
}

func (o *diffuseView) RDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	return 0
}

func (o *diffuseView) TDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	return o.base.matProp(o.wl, spd.PropT, side, o.theta(d))
}

func (o *diffuseView) RDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	return o.base.matProp(o.wl, spd.PropR, side, o.theta(d))
}

func (o *diffuseView) TDifDif(side spd.Side) float64 {
	if o.angular {
		return hemispherize(func(theta float64) float64 {
			return o.base.matProp(o.wl, spd.PropT, side, theta)
		})
	}
	return o.base.matProp(o.wl, spd.PropT, side, 0)
}

func (o *diffuseView) RDifDif(side spd.Side) float64 {
	if o.angular {
		return hemispherize(func(theta float64) float64 {
			return o.base.matProp(o.wl, spd.PropR, side, theta)
		})
	}
	return o.base.matProp(o.wl, spd.PropR, side, 0)
}

// DirDifCell exposes a material measured with separate specular and
// diffuse channels: the specular channel behaves like a specular cell
// while the diffuse channel scatters Lambertian
type DirDifCell struct {
	base
	dd *mdl.DirDif
}

// NewDirDif creates a direct-diffuse cell
func NewDirDif(dd *mdl.DirDif, rotation float64) *DirDifCell {
	return &DirDifCell{base{mat: dd, rotation: rotation}, dd}
}

// View returns the cell view at one material state
func (o *DirDifCell) View(wl int) bsdf.CellView {
	return &dirDifView{cell: o, wl: wl}
}

type dirDifView struct {
	cell *DirDifCell
	wl   int
}

func (o *dirDifView) chan2(m mdl.Material, wl int, prop spd.Property, side spd.Side, theta float64) float64 {
	if wl == bsdf.TotalBand {
		return m.Property(prop, side, theta)
	}
	return m.PropertyAt(wl, prop, side, theta)
}

func (o *dirDifView) TDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	d = o.cell.rotate(d)
	return o.chan2(o.cell.dd.Specular(), o.wl, spd.PropT, side, d.Theta)
}

func (o *dirDifView) RDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	d = o.cell.rotate(d)
	return o.chan2(o.cell.dd.Specular(), o.wl, spd.PropR, side, d.Theta)
}

func (o *dirDifView) TDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	d = o.cell.rotate(d)
	return o.chan2(o.cell.dd.Diffuse(), o.wl, spd.PropT, side, d.Theta)
}

func (o *dirDifView) RDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	d = o.cell.rotate(d)
	return o.chan2(o.cell.dd.Diffuse(), o.wl, spd.PropR, side, d.Theta)
}

func (o *dirDifView) TDifDif(side spd.Side) float64 {
	spec := hemispherize(func(theta float64) float64 {
		return o.chan2(o.cell.dd.Specular(), o.wl, spd.PropT, side, theta)
	})
	dif := hemispherize(func(theta float64) float64 {
		return o.chan2(o.cell.dd.Diffuse(), o.wl, spd.PropT, side, theta)
	})
	return spec + dif
}

func (o *dirDifView) RDifDif(side spd.Side) float64 {
	spec := hemispherize(func(theta float64) float64 {
		return o.chan2(o.cell.dd.Specular(), o.wl, spd.PropR, side, theta)
	})
	dif := hemispherize(func(theta float64) float64 {
		return o.chan2(o.cell.dd.Diffuse(), o.wl, spd.PropR, side, theta)
	})
	return spec + dif
}
