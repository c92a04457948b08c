// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"math"

	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Layer is a source of per-wavelength BSDF matrices; bsdf.Layer and
// bsdf.PreLoadedLayer satisfy it
type Layer interface {
	Hemisphere() *bsdf.Hemisphere
	Wavelengths() []float64
	SetBandWavelengths(wls []float64) error
	WavelengthResults(cb bsdf.ProgressCallback) ([]*bsdf.Integrator, error)
}

// CalculationProperties bind the source spectrum, the common wavelength
// grid and an optional detector to a multi-pane calculation
type CalculationProperties struct {
	Source            *spd.Series
	CommonWavelengths []float64
	Detector          *spd.Series
}

// MultiPaneBSDF composes a stack of BSDF layers per wavelength and
// aggregates scalar properties over bands weighted by source (and
// detector when supplied)
type MultiPaneBSDF struct {
	layers []Layer
	hemi   *bsdf.Hemisphere
	props  CalculationProperties
	cb     bsdf.ProgressCallback

	wls   []float64
	perWl []*SingleBand
}

// NewMultiPaneBSDF creates the stack; layers are ordered from the
// outdoor side inwards
func NewMultiPaneBSDF(layers []Layer, props CalculationProperties, cb bsdf.ProgressCallback) (o *MultiPaneBSDF, err error) {
	if len(layers) == 0 {
		return nil, chk.Err("multipane: at least one layer is required")
	}
	if props.Source == nil {
		return nil, chk.Err("multipane: source spectrum is required")
	}
	hemi := layers[0].Hemisphere()
	for _, l := range layers[1:] {
		if l.Hemisphere().Size() != hemi.Size() {
			return nil, chk.Err("multipane: layers use different basis sizes")
		}
	}
	o = &MultiPaneBSDF{layers: layers, hemi: hemi, props: props, cb: cb}
	err = o.compute()
	return
}

// SetCalculationProperties rebinds source, grid and detector. A changed
// grid recomputes the per-wavelength reductions at once; source and
// detector enter the band averages at query time
func (o *MultiPaneBSDF) SetCalculationProperties(props CalculationProperties) (err error) {
	regrid := !sameGrid(o.props.CommonWavelengths, props.CommonWavelengths)
	o.props = props
	if regrid {
		o.perWl = nil
		return o.compute()
	}
	return
}

// NumLayers returns the number of layers in the stack
func (o *MultiPaneBSDF) NumLayers() int {
	return len(o.layers)
}

// Hemisphere returns the basis
func (o *MultiPaneBSDF) Hemisphere() *bsdf.Hemisphere {
	return o.hemi
}

// Wavelengths returns the effective common grid
func (o *MultiPaneBSDF) Wavelengths() []float64 {
	return o.wls
}

// compute reduces the stack at every common wavelength
func (o *MultiPaneBSDF) compute() (err error) {
	o.wls = o.props.CommonWavelengths
	if o.wls == nil {
		var union []float64
		for _, l := range o.layers {
			union = spd.UnionGrid(union, l.Wavelengths())
		}
		o.wls = union
	} else {
		for _, l := range o.layers {
			if err = l.SetBandWavelengths(o.wls); err != nil {
				return
			}
		}
	}

	perLayer := make([][]*bsdf.Integrator, len(o.layers))
	for k, l := range o.layers {
		if o.props.CommonWavelengths == nil && len(o.layers) > 1 {
			if err = l.SetBandWavelengths(o.wls); err != nil {
				return
			}
		}
		if perLayer[k], err = l.WavelengthResults(nil); err != nil {
			return
		}
		if len(perLayer[k]) != len(o.wls) {
			return chk.Err("multipane: layer %d delivered %d wavelengths for a grid of %d", k+1, len(perLayer[k]), len(o.wls))
		}
	}

	lambda := o.hemi.Lambdas()
	o.perWl = make([]*SingleBand, len(o.wls))
	for i := range o.wls {
		first := perLayer[0][i]
		sb := NewSingleBand(lambda, integratorProps(first),
			first.AbsVector(spd.SideFront), first.AbsVector(spd.SideBack))
		for k := 1; k < len(o.layers); k++ {
			integ := perLayer[k][i]
			if err = sb.AddLayer(integratorProps(integ),
				integ.AbsVector(spd.SideFront), integ.AbsVector(spd.SideBack)); err != nil {
				return
			}
		}
		o.perWl[i] = sb
		if o.cb != nil {
			o.cb(i+1, len(o.wls))
		}
	}
	return
}

// integratorProps adapts a bsdf integrator to the reducer input
func integratorProps(integ *bsdf.Integrator) LayerProps {
	return LayerProps{
		Tf: integ.Tau(spd.SideFront),
		Tb: integ.Tau(spd.SideBack),
		Rf: integ.Rho(spd.SideFront),
		Rb: integ.Rho(spd.SideBack),
	}
}

// weighting returns source (times detector) on the common grid
func (o *MultiPaneBSDF) weighting() (res *spd.Series) {
	res = o.props.Source.Interpolate(o.wls)
	if o.props.Detector != nil {
		res = res.Mul(o.props.Detector.Interpolate(o.wls))
	}
	return
}

// bandAverage integrates f over [lo,hi] weighted by the source curve
func (o *MultiPaneBSDF) bandAverage(lo, hi float64, f func(sb *SingleBand) float64) (res float64, err error) {
	if lo >= hi {
		return 0, chk.Err("multipane: invalid band [%g,%g]", lo, hi)
	}
	w := o.weighting()
	num := spd.NewSeries()
	for i, sb := range o.perWl {
		num.Add(o.wls[i], f(sb)*w.V(i))
	}
	den := w.Integrate(lo, hi)
	if den == 0 {
		return 0, chk.Err("multipane: source vanishes over [%g,%g]", lo, hi)
	}
	return num.Integrate(lo, hi) / den, nil
}

// patch resolves a direction to its hemisphere patch
func (o *MultiPaneBSDF) patch(theta, phi float64) (idx int, err error) {
	return o.hemi.PatchIndex(theta, phi)
}

// DiffDiff returns the band averaged diffuse-diffuse property
func (o *MultiPaneBSDF) DiffDiff(lo, hi float64, side spd.Side, prop spd.Property) (res float64, err error) {
	return o.bandAverage(lo, hi, func(sb *SingleBand) float64 {
		return o.diffDiffOf(sb, side, prop)
	})
}

func (o *MultiPaneBSDF) diffDiffOf(sb *SingleBand, side spd.Side, prop spd.Property) (res float64) {
	for i := 0; i < o.hemi.Size(); i++ {
		res += o.dirHemOf(sb, side, prop, i) * o.hemi.Patch(i).Lambda
	}
	return res / math.Pi
}

func (o *MultiPaneBSDF) dirHemOf(sb *SingleBand, side spd.Side, prop spd.Property, in int) (res float64) {
	var m *la.Matrix
	switch prop {
	case spd.PropT:
		m = sb.Tau(side)
	case spd.PropR:
		m = sb.Rho(side)
	default:
		t := o.dirHemOf(sb, side, spd.PropT, in)
		r := o.dirHemOf(sb, side, spd.PropR, in)
		return 1 - t - r
	}
	for j := 0; j < o.hemi.Size(); j++ {
		res += m.Get(j, in) * o.hemi.Patch(j).Lambda
	}
	return
}

// DirHem returns the band averaged direction-hemispherical property
func (o *MultiPaneBSDF) DirHem(lo, hi float64, side spd.Side, prop spd.Property, theta, phi float64) (res float64, err error) {
	in, err := o.patch(theta, phi)
	if err != nil {
		return
	}
	return o.bandAverage(lo, hi, func(sb *SingleBand) float64 {
		return o.dirHemOf(sb, side, prop, in)
	})
}

// DirDir returns the band averaged specular (diagonal) contribution
func (o *MultiPaneBSDF) DirDir(lo, hi float64, side spd.Side, prop spd.Property, theta, phi float64) (res float64, err error) {
	in, err := o.patch(theta, phi)
	if err != nil {
		return
	}
	lam := o.hemi.Patch(in).Lambda
	return o.bandAverage(lo, hi, func(sb *SingleBand) float64 {
		if prop == spd.PropT {
			return sb.Tau(side).Get(in, in) * lam
		}
		return sb.Rho(side).Get(in, in) * lam
	})
}

// Abs returns the band averaged absorptance of one layer (1-based) for
// a direct incidence
func (o *MultiPaneBSDF) Abs(lo, hi float64, side spd.Side, layer int, theta, phi float64) (res float64, err error) {
	if layer < 1 || layer > len(o.layers) {
		return 0, chk.Err("multipane: layer index %d out of [1,%d]", layer, len(o.layers))
	}
	in, err := o.patch(theta, phi)
	if err != nil {
		return
	}
	return o.bandAverage(lo, hi, func(sb *SingleBand) float64 {
		return sb.LayerAbs(layer-1, side)[in]
	})
}

// AbsDiff returns the band averaged absorptance of one layer (1-based)
// for diffuse incidence
func (o *MultiPaneBSDF) AbsDiff(lo, hi float64, side spd.Side, layer int) (res float64, err error) {
	if layer < 1 || layer > len(o.layers) {
		return 0, chk.Err("multipane: layer index %d out of [1,%d]", layer, len(o.layers))
	}
	return o.bandAverage(lo, hi, func(sb *SingleBand) float64 {
		a := sb.LayerAbs(layer-1, side)
		sum := 0.0
		for i := 0; i < o.hemi.Size(); i++ {
			sum += a[i] * o.hemi.Patch(i).Lambda
		}
		return sum / math.Pi
	})
}

// Matrix returns the band averaged matrix of one property
func (o *MultiPaneBSDF) Matrix(lo, hi float64, side spd.Side, prop spd.Property) (res *la.Matrix, err error) {
	if lo >= hi {
		return nil, chk.Err("multipane: invalid band [%g,%g]", lo, hi)
	}
	n := o.hemi.Size()
	res = la.NewMatrix(n, n)
	w := o.weighting()
	den := w.Integrate(lo, hi)
	if den == 0 {
		return nil, chk.Err("multipane: source vanishes over [%g,%g]", lo, hi)
	}
	get := func(sb *SingleBand) *la.Matrix {
		if prop == spd.PropT {
			return sb.Tau(side)
		}
		return sb.Rho(side)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			num := spd.NewSeries()
			for k, sb := range o.perWl {
				num.Add(o.wls[k], get(sb).Get(i, j)*w.V(k))
			}
			res.Set(i, j, num.Integrate(lo, hi)/den)
		}
	}
	return
}

// sameGrid compares two wavelength grids
func sameGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
