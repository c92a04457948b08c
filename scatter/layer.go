// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scatter implements the scalar direct/diffuse lumped model of
// single layers and their multilayer composition
package scatter

import (
	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/cell"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
)

// Layer models one layer by its scalar scattering fractions; banded
// queries weight the per-wavelength cell properties with the bound
// source (and detector)
type Layer struct {
	cell     bsdf.Cell
	source   *spd.Series
	detector *spd.Series
}

// NewLayer wraps any cell into a scattering layer
func NewLayer(c bsdf.Cell) *Layer {
	return &Layer{cell: c}
}

// NewSpecularLayer creates the scattering layer of a specular glazing
func NewSpecularLayer(mat mdl.Material) *Layer {
	return NewLayer(cell.NewSpecular(mat, 0))
}

// NewPerfectlyDiffuseLayer creates the layer of an ideal diffuser
func NewPerfectlyDiffuseLayer(mat mdl.Material) *Layer {
	return NewLayer(cell.NewPerfectlyDiffuse(mat, 0))
}

// NewCircularPerforatedLayer creates the layer of a perforated screen
func NewCircularPerforatedLayer(mat mdl.Material, x, y, thickness, radius float64) *Layer {
	return NewLayer(cell.NewPerforated(mat, cell.CircularPerforated{X: x, Y: y, Thickness: thickness, Radius: radius}, 0))
}

// NewRectangularPerforatedLayer creates the layer of a screen with
// rectangular holes
func NewRectangularPerforatedLayer(mat mdl.Material, x, y, thickness, xHole, yHole float64) *Layer {
	return NewLayer(cell.NewPerforated(mat, cell.RectangularPerforated{X: x, Y: y, Thickness: thickness, XHole: xHole, YHole: yHole}, 0))
}

// NewWovenLayer creates the layer of a woven screen
func NewWovenLayer(mat mdl.Material, diameter, spacing float64) *Layer {
	return NewLayer(cell.NewPerforated(mat, cell.Woven{Diameter: diameter, Spacing: spacing}, 0))
}

// NewVenetianLayer creates the layer of a venetian blind
func NewVenetianLayer(mat mdl.Material, g cell.VenetianGeometry) (res *Layer, err error) {
	c, err := cell.NewVenetian(mat, g, 0, false)
	if err != nil {
		return
	}
	return NewLayer(c), nil
}

// SetSourceData binds the source spectrum enabling banded queries
func (o *Layer) SetSourceData(source *spd.Series) {
	o.source = source
}

// SetDetectorData binds a detector sensitivity curve
func (o *Layer) SetDetectorData(detector *spd.Series) {
	o.detector = detector
}

// raw evaluates one scattering fraction on a cell view
func raw(v bsdf.CellView, prop spd.Property, side spd.Side, sc spd.Scattering, d bsdf.BeamDirection) float64 {
	switch sc {
	case spd.DirectDirect:
		if prop == spd.PropT {
			return v.TDirDir(side, d)
		}
		return v.RDirDir(side, d)
	case spd.DirectDiffuse:
		if prop == spd.PropT {
			return v.TDirDif(side, d)
		}
		return v.RDirDif(side, d)
	case spd.DirectHemispherical:
		if prop == spd.PropT {
			return v.TDirDir(side, d) + v.TDirDif(side, d)
		}
		return v.RDirDir(side, d) + v.RDirDif(side, d)
	case spd.DiffuseDiffuse:
		if prop == spd.PropT {
			return v.TDifDif(side)
		}
		return v.RDifDif(side)
	}
	return 0
}

// banded integrates a per-wavelength value over [lo,hi]. Cells report
// numerical failures by panicking; those are converted into errors here
func (o *Layer) banded(lo, hi float64, f func(v bsdf.CellView) float64) (res float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = 0
			err = chk.Err("scattering layer: %v", r)
		}
	}()
	if lo >= hi {
		return 0, chk.Err("scattering layer: invalid band [%g,%g]", lo, hi)
	}
	if o.source == nil {
		// no source bound: the cell view already carries band averages
		return f(o.cell.View(bsdf.TotalBand)), nil
	}
	wls := o.cell.Wavelengths()
	w := o.source.Interpolate(wls)
	if o.detector != nil {
		w = w.Mul(o.detector.Interpolate(wls))
	}
	num := spd.NewSeries()
	for i, wl := range wls {
		num.Add(wl, f(o.cell.View(i))*w.V(i))
	}
	den := w.Integrate(lo, hi)
	if den == 0 {
		return 0, chk.Err("scattering layer: source vanishes over [%g,%g]", lo, hi)
	}
	return num.Integrate(lo, hi) / den, nil
}

// Property returns the banded scattering fraction for a direction
func (o *Layer) Property(lo, hi float64, prop spd.Property, side spd.Side, sc spd.Scattering, theta, phi float64) (res float64, err error) {
	if theta < 0 || theta > 90 {
		return 0, chk.Err("scattering layer: incidence angle %g out of [0,90]", theta)
	}
	d := bsdf.BeamDirection{Theta: theta, Phi: phi}
	return o.banded(lo, hi, func(v bsdf.CellView) float64 {
		return raw(v, prop, side, sc, d)
	})
}

// Absorptance returns the banded absorptance for direct or diffuse
// excitation; unphysical materials may yield negative values, which are
// reported as computed
func (o *Layer) Absorptance(lo, hi float64, side spd.Side, simple spd.ScatteringSimple, theta, phi float64) (res float64, err error) {
	d := bsdf.BeamDirection{Theta: theta, Phi: phi}
	return o.banded(lo, hi, func(v bsdf.CellView) float64 {
		if simple == spd.Direct {
			return 1 - v.TDirDir(side, d) - v.TDirDif(side, d) - v.RDirDir(side, d) - v.RDirDif(side, d)
		}
		return 1 - v.TDifDif(side) - v.RDifDif(side)
	})
}

// props collects the layer state for the multilayer composition
func (o *Layer) props(lo, hi float64, side spd.Side, d bsdf.BeamDirection) (p surfaceProps, err error) {
	get := func(prop spd.Property, sc spd.Scattering) (v float64) {
		if err != nil {
			return
		}
		v, err = o.banded(lo, hi, func(view bsdf.CellView) float64 {
			return raw(view, prop, side, sc, d)
		})
		return
	}
	p.Tdd = get(spd.PropT, spd.DirectDirect)
	p.Tds = get(spd.PropT, spd.DirectDiffuse)
	p.Tff = get(spd.PropT, spd.DiffuseDiffuse)
	p.Rdd = get(spd.PropR, spd.DirectDirect)
	p.Rds = get(spd.PropR, spd.DirectDiffuse)
	p.Rff = get(spd.PropR, spd.DiffuseDiffuse)
	return
}

// surfaceProps holds the scalar fractions of one side
type surfaceProps struct {
	Tdd, Tds, Tff float64
	Rdd, Rds, Rff float64
}
