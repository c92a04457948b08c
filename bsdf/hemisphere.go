// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsdf

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Basis selects one of the fixed hemispherical partitions
type Basis int

const (
	// BasisSmall has 7 patches (azimuthally symmetric rings)
	BasisSmall Basis = iota

	// BasisQuarter has 41 patches
	BasisQuarter

	// BasisHalf has 73 patches
	BasisHalf

	// BasisFull has 145 patches
	BasisFull
)

// basisRow is one theta band of a basis definition: the band centre and
// the number of azimuth sectors
type basisRow struct {
	theta float64
	nPhi  int
}

// basis tables of the WINDOW hemispherical partitions
var basisTables = map[Basis][]basisRow{
	BasisSmall:   {{0, 1}, {13, 1}, {26, 1}, {39, 1}, {52, 1}, {65, 1}, {80.75, 1}},
	BasisQuarter: {{0, 1}, {18, 8}, {36, 12}, {54, 12}, {76.5, 8}},
	BasisHalf:    {{0, 1}, {13, 8}, {26, 12}, {39, 16}, {52, 20}, {65, 8}, {80.75, 8}},
	BasisFull:    {{0, 1}, {10, 8}, {20, 16}, {30, 20}, {40, 24}, {50, 24}, {60, 24}, {70, 16}, {82.5, 12}},
}

// Patch is one solid-angle bin of the upper hemisphere
type Patch struct {
	Theta    float64 // band centre polar angle [deg]
	Phi      float64 // sector centre azimuth [deg]
	ThetaLo  float64 // band lower bound [deg]
	ThetaHi  float64 // band upper bound [deg]
	DeltaPhi float64 // sector width [deg]

	SolidAngle float64 // Δφ·(cosθlo − cosθhi); sums to 2π over a basis
	Lambda     float64 // projected solid angle; sums to π over a basis
}

// Direction returns the patch centre as a beam direction
func (o Patch) Direction() BeamDirection {
	return BeamDirection{Theta: o.Theta, Phi: o.Phi}
}

// Hemisphere is a discretisation of the unit upper hemisphere. Patch
// ordering is canonical: theta bands from the pole outwards, azimuth
// sectors counter-clockwise from zero
type Hemisphere struct {
	basis   Basis
	patches []Patch
}

// NewHemisphere creates the discretisation for one of the fixed bases
func NewHemisphere(basis Basis) (o *Hemisphere, err error) {
	rows, ok := basisTables[basis]
	if !ok {
		return nil, chk.Err("hemisphere: unknown basis %d", basis)
	}
	o = &Hemisphere{basis: basis}
	for i, row := range rows {
		lo := 0.0
		if i > 0 {
			lo = 0.5 * (rows[i-1].theta + row.theta)
		}
		hi := 90.0
		if i < len(rows)-1 {
			hi = 0.5 * (row.theta + rows[i+1].theta)
		}
		dphi := 360.0 / float64(row.nPhi)
		for k := 0; k < row.nPhi; k++ {
			p := Patch{
				Theta:    row.theta,
				Phi:      float64(k) * dphi,
				ThetaLo:  lo,
				ThetaHi:  hi,
				DeltaPhi: dphi,
			}
			loR := lo * math.Pi / 180
			hiR := hi * math.Pi / 180
			dpR := dphi * math.Pi / 180
			p.SolidAngle = dpR * (math.Cos(loR) - math.Cos(hiR))
			p.Lambda = 0.5 * dpR * (math.Sin(hiR)*math.Sin(hiR) - math.Sin(loR)*math.Sin(loR))
			o.patches = append(o.patches, p)
		}
	}
	return
}

// Basis returns the basis used to build the hemisphere
func (o *Hemisphere) Basis() Basis {
	return o.basis
}

// Size returns the number of patches
func (o *Hemisphere) Size() int {
	return len(o.patches)
}

// Patch returns patch i
func (o *Hemisphere) Patch(i int) Patch {
	return o.patches[i]
}

// Patches returns the full patch list
func (o *Hemisphere) Patches() []Patch {
	return o.patches
}

// Lambdas returns the projected solid angles as a vector
func (o *Hemisphere) Lambdas() (res la.Vector) {
	res = la.NewVector(len(o.patches))
	for i, p := range o.patches {
		res[i] = p.Lambda
	}
	return
}

// LambdaMatrix returns diag(Λ1..ΛN), the radiance-to-irradiance step of
// the matrix algebra
func (o *Hemisphere) LambdaMatrix() (res *la.Matrix) {
	n := len(o.patches)
	res = la.NewMatrix(n, n)
	for i, p := range o.patches {
		res.Set(i, i, p.Lambda)
	}
	return
}

// PatchIndex locates the patch containing direction (theta, phi) [deg]
func (o *Hemisphere) PatchIndex(theta, phi float64) (idx int, err error) {
	if theta < 0 || theta > 90 {
		return 0, chk.Err("hemisphere: theta %g out of [0,90]", theta)
	}
	phi = math.Mod(phi, 360)
	if phi < 0 {
		phi += 360
	}
	for i, p := range o.patches {
		if theta < p.ThetaLo || theta > p.ThetaHi {
			continue
		}
		d := math.Mod(phi-p.Phi+540, 360) - 180
		if math.Abs(d) <= 0.5*p.DeltaPhi {
			return i, nil
		}
	}
	// no sector matched: take the first (innermost) band containing theta
	for i, p := range o.patches {
		if theta >= p.ThetaLo && theta <= p.ThetaHi {
			return i, nil
		}
	}
	return 0, chk.Err("hemisphere: no patch contains (θ=%g, φ=%g)", theta, phi)
}
