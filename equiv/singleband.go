// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package equiv reduces stacks of scattering layers into one equivalent
// layer by solving the pairwise inter-reflections, and exposes the
// multi-pane front ends aggregating the reduction over wavelength bands
package equiv

import (
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LayerProps holds the four scattering matrices of one layer in stored
// (lambda normalised) form, indexed (outgoing, incoming)
type LayerProps struct {
	Tf, Tb, Rf, Rb *la.Matrix
}

// SingleBand composes layers top to bottom at one wavelength. The
// lambda vector carries the projected solid angles interposed in every
// matrix product; per-layer absorptance vectors are propagated through
// the same inter-reflection factorisation
type SingleBand struct {
	lambda la.Vector
	n      int

	// combined stack in hat form (columns premultiplied by lambda)
	tf, tb, rf, rb *la.Matrix

	// per layer, per incidence side absorptance vectors
	absF []la.Vector
	absB []la.Vector
}

// NewSingleBand starts a stack with its first (topmost) layer; absF and
// absB are the layer's per-direction absorptances for front and back
// incidence
func NewSingleBand(lambda la.Vector, p LayerProps, absF, absB la.Vector) (o *SingleBand) {
	o = &SingleBand{lambda: lambda, n: len(lambda)}
	o.tf = o.hat(p.Tf)
	o.tb = o.hat(p.Tb)
	o.rf = o.hat(p.Rf)
	o.rb = o.hat(p.Rb)
	o.absF = []la.Vector{cloneVec(absF)}
	o.absB = []la.Vector{cloneVec(absB)}
	return
}

// NumLayers returns the number of composed layers
func (o *SingleBand) NumLayers() int {
	return len(o.absF)
}

// hat premultiplies columns by the lambda weights: the stored matrix
// becomes an irradiance-to-irradiance operator
func (o *SingleBand) hat(m *la.Matrix) (res *la.Matrix) {
	res = la.NewMatrix(o.n, o.n)
	for i := 0; i < o.n; i++ {
		for j := 0; j < o.n; j++ {
			res.Set(i, j, m.Get(i, j)*o.lambda[j])
		}
	}
	return
}

// unhat converts back to stored form
func (o *SingleBand) unhat(m *la.Matrix) (res *la.Matrix) {
	res = la.NewMatrix(o.n, o.n)
	for i := 0; i < o.n; i++ {
		for j := 0; j < o.n; j++ {
			res.Set(i, j, m.Get(i, j)/o.lambda[j])
		}
	}
	return
}

// AddLayer composes the stack with the next layer below it
func (o *SingleBand) AddLayer(p LayerProps, absF, absB la.Vector) (err error) {
	tfL, tbL := o.hat(p.Tf), o.hat(p.Tb)
	rfL, rbL := o.hat(p.Rf), o.hat(p.Rb)

	// inter-reflection factor between stack back and layer front
	down, err := interReflect(o.rb, rfL, o.tf) // flux onto the layer front
	if err != nil {
		return
	}
	up := mul(rfL, down) // flux onto the stack back

	vup, err := interReflect(rfL, o.rb, tbL) // back incidence: flux onto the stack back
	if err != nil {
		return
	}
	wdown := mul(o.rb, vup) // back incidence: flux onto the layer front

	// propagate the per-layer absorptances of the stack
	for k := range o.absF {
		o.absF[k] = addVec(o.absF[k], vecMat(o.absB[k], up))
		o.absB[k] = vecMat(o.absB[k], vup)
	}

	// append the new layer
	o.absF = append(o.absF, vecMat(absF, down))
	o.absB = append(o.absB, addVec(cloneVec(absB), vecMat(absF, wdown)))

	// combined matrices
	newTf := mul(tfL, down)
	newRf := addMat(o.rf, mul(o.tb, up))
	newTb := mul(o.tb, vup)
	newRb := addMat(rbL, mul(tfL, wdown))
	o.tf, o.rf, o.tb, o.rb = newTf, newRf, newTb, newRb
	return
}

// Tau returns the combined transmittance matrix in stored form
func (o *SingleBand) Tau(side spd.Side) *la.Matrix {
	if side == spd.SideFront {
		return o.unhat(o.tf)
	}
	return o.unhat(o.tb)
}

// Rho returns the combined reflectance matrix in stored form
func (o *SingleBand) Rho(side spd.Side) *la.Matrix {
	if side == spd.SideFront {
		return o.unhat(o.rf)
	}
	return o.unhat(o.rb)
}

// LayerAbs returns the per-direction absorptance of layer k (0-based)
// for incidence on the given side of the stack
func (o *SingleBand) LayerAbs(k int, side spd.Side) la.Vector {
	if side == spd.SideFront {
		return o.absF[k]
	}
	return o.absB[k]
}

// interReflect returns (I - a·b)⁻¹ · t
func interReflect(a, b, t *la.Matrix) (res *la.Matrix, err error) {
	n := a.M
	sys := la.NewMatrix(n, n)
	prod := mul(a, b)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -prod.Get(i, j)
			if i == j {
				v += 1
			}
			sys.Set(i, j, v)
		}
	}
	inv := la.NewMatrix(n, n)
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("equivalent layer: inter-reflection system is singular: %v", r)
		}
	}()
	la.MatInv(inv, sys, false)
	return mul(inv, t), nil
}

// mul returns a·b
func mul(a, b *la.Matrix) (res *la.Matrix) {
	res = la.NewMatrix(a.M, b.N)
	la.MatMatMul(res, 1, a, b)
	return
}

// addMat returns a + b
func addMat(a, b *la.Matrix) (res *la.Matrix) {
	res = la.NewMatrix(a.M, a.N)
	for i := 0; i < a.M; i++ {
		for j := 0; j < a.N; j++ {
			res.Set(i, j, a.Get(i, j)+b.Get(i, j))
		}
	}
	return
}

// vecMat returns vᵀ·m as a vector: the absorptance row propagated
// through a flux field
func vecMat(v la.Vector, m *la.Matrix) (res la.Vector) {
	n := m.N
	res = la.NewVector(n)
	for j := 0; j < n; j++ {
		s := 0.0
		for i := 0; i < m.M; i++ {
			s += v[i] * m.Get(i, j)
		}
		res[j] = s
	}
	return
}

// addVec returns a + b
func addVec(a, b la.Vector) (res la.Vector) {
	res = la.NewVector(len(a))
	for i := range a {
		res[i] = a[i] + b[i]
	}
	return
}

func cloneVec(a la.Vector) (res la.Vector) {
	res = la.NewVector(len(a))
	copy(res, a)
	return
}
