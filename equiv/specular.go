// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"math"

	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// MultiPaneSpecular composes thin specular glazings evaluated at a
// single incidence angle; the composition degenerates to the 1x1 case
// of the BSDF inter-reflection algebra
type MultiPaneSpecular struct {
	samples []*spd.AngularSample
	props   CalculationProperties
	wls     []float64
}

// NewMultiPaneSpecular creates the stack from the per-layer angular
// samples, ordered from the outdoor side inwards
func NewMultiPaneSpecular(samples []*spd.AngularSample, props CalculationProperties) (o *MultiPaneSpecular, err error) {
	if len(samples) == 0 {
		return nil, chk.Err("multipane specular: at least one layer is required")
	}
	if props.Source == nil {
		return nil, chk.Err("multipane specular: source spectrum is required")
	}
	o = &MultiPaneSpecular{samples: samples, props: props}
	o.wls = props.CommonWavelengths
	if o.wls == nil {
		for _, s := range samples {
			o.wls = spd.UnionGrid(o.wls, s.Sample().Data().Wavelengths())
		}
	}
	return
}

// NumLayers returns the number of layers
func (o *MultiPaneSpecular) NumLayers() int {
	return len(o.samples)
}

// Wavelengths returns the effective common grid
func (o *MultiPaneSpecular) Wavelengths() []float64 {
	return o.wls
}

// reduce composes the stack at one wavelength and angle
func (o *MultiPaneSpecular) reduce(wl, theta float64) (sb *SingleBand, err error) {
	lambda := la.Vector{1}
	scalar := func(v float64) *la.Matrix {
		m := la.NewMatrix(1, 1)
		m.Set(0, 0, v)
		return m
	}
	for k, s := range o.samples {
		at, err2 := s.SampleAt(theta)
		if err2 != nil {
			return nil, err2
		}
		data := at.Data()
		tf := data.Curve(spd.PropT, spd.SideFront).ValueAt(wl)
		tb := data.Curve(spd.PropT, spd.SideBack).ValueAt(wl)
		rf := data.Curve(spd.PropR, spd.SideFront).ValueAt(wl)
		rb := data.Curve(spd.PropR, spd.SideBack).ValueAt(wl)
		p := LayerProps{Tf: scalar(tf), Tb: scalar(tb), Rf: scalar(rf), Rb: scalar(rb)}
		absF := la.Vector{1 - tf - rf}
		absB := la.Vector{1 - tb - rb}
		if k == 0 {
			sb = NewSingleBand(lambda, p, absF, absB)
			continue
		}
		if err = sb.AddLayer(p, absF, absB); err != nil {
			return
		}
	}
	return
}

// weighting returns source (times detector) on the common grid
func (o *MultiPaneSpecular) weighting() (res *spd.Series) {
	res = o.props.Source.Interpolate(o.wls)
	if o.props.Detector != nil {
		res = res.Mul(o.props.Detector.Interpolate(o.wls))
	}
	return
}

// bandAverage integrates a scalar functional over [lo,hi]
func (o *MultiPaneSpecular) bandAverage(lo, hi, theta float64, f func(sb *SingleBand) float64) (res float64, err error) {
	if lo >= hi {
		return 0, chk.Err("multipane specular: invalid band [%g,%g]", lo, hi)
	}
	if theta < 0 || theta > 90 {
		return 0, chk.Err("multipane specular: incidence angle %g out of [0,90]", theta)
	}
	w := o.weighting()
	num := spd.NewSeries()
	for i, wl := range o.wls {
		sb, err2 := o.reduce(wl, theta)
		if err2 != nil {
			return 0, err2
		}
		num.Add(wl, f(sb)*w.V(i))
	}
	den := w.Integrate(lo, hi)
	if den == 0 {
		return 0, chk.Err("multipane specular: source vanishes over [%g,%g]", lo, hi)
	}
	return num.Integrate(lo, hi) / den, nil
}

// Property returns the band averaged property at incidence theta
func (o *MultiPaneSpecular) Property(lo, hi float64, prop spd.Property, side spd.Side, theta float64) (res float64, err error) {
	return o.bandAverage(lo, hi, theta, func(sb *SingleBand) float64 {
		switch prop {
		case spd.PropT:
			return sb.Tau(side).Get(0, 0)
		case spd.PropR:
			return sb.Rho(side).Get(0, 0)
		}
		return 1 - sb.Tau(side).Get(0, 0) - sb.Rho(side).Get(0, 0)
	})
}

// Abs returns the band averaged absorptance of layer (1-based) at theta
func (o *MultiPaneSpecular) Abs(lo, hi float64, side spd.Side, layer int, theta float64) (res float64, err error) {
	if layer < 1 || layer > len(o.samples) {
		return 0, chk.Err("multipane specular: layer index %d out of [1,%d]", layer, len(o.samples))
	}
	return o.bandAverage(lo, hi, theta, func(sb *SingleBand) float64 {
		return sb.LayerAbs(layer-1, side)[0]
	})
}

// PropertyHem returns the hemispherically integrated property
func (o *MultiPaneSpecular) PropertyHem(lo, hi float64, prop spd.Property, side spd.Side) (res float64, err error) {
	angles := utl.LinSpace(0, 90, 10)
	num, den := 0.0, 0.0
	for i := 0; i < len(angles)-1; i++ {
		t0, t1 := angles[i], angles[i+1]
		v0, err2 := o.Property(lo, hi, prop, side, t0)
		if err2 != nil {
			return 0, err2
		}
		v1, err2 := o.Property(lo, hi, prop, side, t1)
		if err2 != nil {
			return 0, err2
		}
		w0 := math.Sin(2 * t0 * math.Pi / 180)
		w1 := math.Sin(2 * t1 * math.Pi / 180)
		num += 0.5 * (v0*w0 + v1*w1)
		den += 0.5 * (w0 + w1)
	}
	return num / den, nil
}

// AbsHem returns the hemispherically integrated layer absorptance
func (o *MultiPaneSpecular) AbsHem(lo, hi float64, side spd.Side, layer int) (res float64, err error) {
	angles := utl.LinSpace(0, 90, 10)
	num, den := 0.0, 0.0
	for i := 0; i < len(angles)-1; i++ {
		t0, t1 := angles[i], angles[i+1]
		v0, err2 := o.Abs(lo, hi, side, layer, t0)
		if err2 != nil {
			return 0, err2
		}
		v1, err2 := o.Abs(lo, hi, side, layer, t1)
		if err2 != nil {
			return 0, err2
		}
		w0 := math.Sin(2 * t0 * math.Pi / 180)
		w1 := math.Sin(2 * t1 * math.Pi / 180)
		num += 0.5 * (v0*w0 + v1*w1)
		den += 0.5 * (w0 + w1)
	}
	return num / den, nil
}
