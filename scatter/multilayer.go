// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/equiv"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// MultiLayer composes scattering layers with the inter-reflection
// equations on the two-state (direct, diffuse) basis
type MultiLayer struct {
	layers []*Layer
}

// NewMultiLayer creates the stack ordered from the outdoor side inwards
func NewMultiLayer(layers ...*Layer) (o *MultiLayer, err error) {
	if len(layers) == 0 {
		return nil, chk.Err("multilayer scattered: at least one layer is required")
	}
	return &MultiLayer{layers: layers}, nil
}

// NumLayers returns the number of layers
func (o *MultiLayer) NumLayers() int {
	return len(o.layers)
}

// layerMatrices converts scalar fractions into the 2x2 scattering
// matrices: state 0 is the collimated beam, state 1 the diffuse field
func layerMatrices(front, back surfaceProps) equiv.LayerProps {
	build := func(p surfaceProps, reflect bool) *la.Matrix {
		m := la.NewMatrix(2, 2)
		if reflect {
			m.Set(0, 0, p.Rdd)
			m.Set(1, 0, p.Rds)
			m.Set(1, 1, p.Rff)
		} else {
			m.Set(0, 0, p.Tdd)
			m.Set(1, 0, p.Tds)
			m.Set(1, 1, p.Tff)
		}
		return m
	}
	return equiv.LayerProps{
		Tf: build(front, false),
		Tb: build(back, false),
		Rf: build(front, true),
		Rb: build(back, true),
	}
}

// reduce composes the whole stack for one incidence
func (o *MultiLayer) reduce(lo, hi float64, d bsdf.BeamDirection) (sb *equiv.SingleBand, err error) {
	lambda := la.Vector{1, 1}
	for k, l := range o.layers {
		front, err2 := l.props(lo, hi, spd.SideFront, d)
		if err2 != nil {
			return nil, err2
		}
		back, err2 := l.props(lo, hi, spd.SideBack, d)
		if err2 != nil {
			return nil, err2
		}
		p := layerMatrices(front, back)
		absF := la.Vector{
			1 - front.Tdd - front.Tds - front.Rdd - front.Rds,
			1 - front.Tff - front.Rff,
		}
		absB := la.Vector{
			1 - back.Tdd - back.Tds - back.Rdd - back.Rds,
			1 - back.Tff - back.Rff,
		}
		if k == 0 {
			sb = equiv.NewSingleBand(lambda, p, absF, absB)
			continue
		}
		if err = sb.AddLayer(p, absF, absB); err != nil {
			return
		}
	}
	return
}

// Property returns the composed scattering fraction of the stack
func (o *MultiLayer) Property(lo, hi float64, prop spd.Property, side spd.Side, sc spd.Scattering, theta, phi float64) (res float64, err error) {
	if theta < 0 || theta > 90 {
		return 0, chk.Err("multilayer scattered: incidence angle %g out of [0,90]", theta)
	}
	sb, err := o.reduce(lo, hi, bsdf.BeamDirection{Theta: theta, Phi: phi})
	if err != nil {
		return
	}
	get := func(m *la.Matrix) float64 {
		switch sc {
		case spd.DirectDirect:
			return m.Get(0, 0)
		case spd.DirectDiffuse:
			return m.Get(1, 0)
		case spd.DirectHemispherical:
			return m.Get(0, 0) + m.Get(1, 0)
		case spd.DiffuseDiffuse:
			return m.Get(1, 1)
		}
		return 0
	}
	if prop == spd.PropT {
		return get(sb.Tau(side)), nil
	}
	return get(sb.Rho(side)), nil
}

// AbsorptanceLayer returns the absorptance of layer (1-based) for
// direct or diffuse excitation of the stack
func (o *MultiLayer) AbsorptanceLayer(lo, hi float64, layer int, side spd.Side, simple spd.ScatteringSimple, theta, phi float64) (res float64, err error) {
	if layer < 1 || layer > len(o.layers) {
		return 0, chk.Err("multilayer scattered: layer index %d out of [1,%d]", layer, len(o.layers))
	}
	sb, err := o.reduce(lo, hi, bsdf.BeamDirection{Theta: theta, Phi: phi})
	if err != nil {
		return
	}
	a := sb.LayerAbs(layer-1, side)
	if simple == spd.Direct {
		return a[0], nil
	}
	return a[1], nil
}
