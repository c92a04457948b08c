// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
)

// Specular is a cell transmitting and reflecting only specularly; the
// angular behaviour comes entirely from the material model
type Specular struct {
	base
}

// NewSpecular creates a specular cell
func NewSpecular(mat mdl.Material, rotation float64) *Specular {
	return &Specular{base{mat: mat, rotation: rotation}}
}

// View returns the cell view at one material state
func (o *Specular) View(wl int) bsdf.CellView {
	return &specView{cell: o, wl: wl}
}

type specView struct {
	cell *Specular
	wl   int
}

func (o *specView) TDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	d = o.cell.rotate(d)
	return o.cell.matProp(o.wl, spd.PropT, side, d.Theta)
}

func (o *specView) RDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	d = o.cell.rotate(d)
	return o.cell.matProp(o.wl, spd.PropR, side, d.Theta)
}

func (o *specView) TDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	return 0
}

func (o *specView) RDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	return 0
}

func (o *specView) TDifDif(side spd.Side) float64 {
	return hemispherize(func(theta float64) float64 {
		return o.cell.matProp(o.wl, spd.PropT, side, theta)
	})
}

func (o *specView) RDifDif(side spd.Side) float64 {
	return hemispherize(func(theta float64) float64 {
		return o.cell.matProp(o.wl, spd.PropR, side, theta)
	})
}
