// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsdf

import (
	"math"

	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Integrator holds the scattering matrices of one layer at one
// wavelength (or the total band): transmittance and reflectance matrices
// per side in lambda-normalised form, indexed (outgoing, incoming)
type Integrator struct {
	hemi *Hemisphere
	tau  [2]*la.Matrix
	rho  [2]*la.Matrix
}

// NewIntegrator allocates zeroed matrices over the hemisphere
func NewIntegrator(hemi *Hemisphere) (o *Integrator) {
	n := hemi.Size()
	o = &Integrator{hemi: hemi}
	for s := 0; s < 2; s++ {
		o.tau[s] = la.NewMatrix(n, n)
		o.rho[s] = la.NewMatrix(n, n)
	}
	return
}

// Hemisphere returns the discretisation the matrices are built on
func (o *Integrator) Hemisphere() *Hemisphere {
	return o.hemi
}

// Size returns the matrix dimension
func (o *Integrator) Size() int {
	return o.hemi.Size()
}

// Tau returns the transmittance matrix of one side
func (o *Integrator) Tau(side spd.Side) *la.Matrix {
	return o.tau[side]
}

// Rho returns the reflectance matrix of one side
func (o *Integrator) Rho(side spd.Side) *la.Matrix {
	return o.rho[side]
}

// Matrix returns the requested matrix
func (o *Integrator) Matrix(side spd.Side, prop spd.Property) (res *la.Matrix, err error) {
	switch prop {
	case spd.PropT:
		return o.tau[side], nil
	case spd.PropR:
		return o.rho[side], nil
	}
	return nil, chk.Err("integrator: no matrix for property %d", prop)
}

// AddTau accumulates into the transmittance matrix
func (o *Integrator) AddTau(side spd.Side, out, in int, v float64) {
	o.tau[side].Set(out, in, o.tau[side].Get(out, in)+v)
}

// AddRho accumulates into the reflectance matrix
func (o *Integrator) AddRho(side spd.Side, out, in int, v float64) {
	o.rho[side].Set(out, in, o.rho[side].Get(out, in)+v)
}

// DirDir returns the lambda-weighted diagonal contribution, the direct
// to direct part of a property for incoming patch i
func (o *Integrator) DirDir(side spd.Side, prop spd.Property, i int) float64 {
	m, err := o.Matrix(side, prop)
	if err != nil {
		return 0
	}
	return m.Get(i, i) * o.hemi.Patch(i).Lambda
}

// DirHem returns the hemispherical integral in the outgoing index for
// incoming patch i
func (o *Integrator) DirHem(side spd.Side, prop spd.Property, i int) (res float64) {
	if prop == spd.PropAbs {
		return o.Abs(side, i)
	}
	m, _ := o.Matrix(side, prop)
	for j := 0; j < o.hemi.Size(); j++ {
		res += m.Get(j, i) * o.hemi.Patch(j).Lambda
	}
	return
}

// Abs returns the absorptance for incoming patch i from conservation
func (o *Integrator) Abs(side spd.Side, i int) float64 {
	return 1 - o.DirHem(side, spd.PropT, i) - o.DirHem(side, spd.PropR, i)
}

// AbsVector returns the per-direction absorptances of one side
func (o *Integrator) AbsVector(side spd.Side) (res la.Vector) {
	n := o.hemi.Size()
	res = la.NewVector(n)
	for i := 0; i < n; i++ {
		res[i] = o.Abs(side, i)
	}
	return
}

// DiffDiff returns the diffuse-diffuse property: the cosine-weighted
// integral of the direction-hemispherical values over all incidences
func (o *Integrator) DiffDiff(side spd.Side, prop spd.Property) (res float64) {
	for i := 0; i < o.hemi.Size(); i++ {
		res += o.DirHem(side, prop, i) * o.hemi.Patch(i).Lambda
	}
	return res / math.Pi
}

// AbsDiff returns the diffuse absorptance of one side
func (o *Integrator) AbsDiff(side spd.Side) (res float64) {
	for i := 0; i < o.hemi.Size(); i++ {
		res += o.Abs(side, i) * o.hemi.Patch(i).Lambda
	}
	return res / math.Pi
}

// At returns one matrix entry
func (o *Integrator) At(side spd.Side, prop spd.Property, out, in int) float64 {
	m, err := o.Matrix(side, prop)
	if err != nil {
		return 0
	}
	return m.Get(out, in)
}
