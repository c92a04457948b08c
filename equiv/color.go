// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equiv

import (
	"math"

	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
)

// visible band used by all colour integrations [µm]
const (
	colorLo = 0.38
	colorHi = 0.78
)

// Observer holds the three colour matching functions of a CIE observer
type Observer struct {
	X, Y, Z *spd.Series
}

// Color computes colourimetric outputs of a layer stack under a given
// illuminant and observer
type Color struct {
	mp     *MultiPaneBSDF
	source *spd.Series
	wls    []float64
	obs    Observer
}

// NewColor builds the colour calculator; source is the illuminant
// (typically D65)
func NewColor(layers []Layer, source *spd.Series, obs Observer, commonWls []float64, cb bsdf.ProgressCallback) (o *Color, err error) {
	if obs.X == nil || obs.Y == nil || obs.Z == nil {
		return nil, chk.Err("color: all three observer curves are required")
	}
	mp, err := NewMultiPaneBSDF(layers, CalculationProperties{Source: source, CommonWavelengths: commonWls}, cb)
	if err != nil {
		return
	}
	return &Color{mp: mp, source: source, wls: commonWls, obs: obs}, nil
}

// query evaluates one banded property with the given detector bound
func (o *Color) query(prop spd.Property, side spd.Side, sc spd.Scattering, theta, phi float64, detector *spd.Series) (res float64, err error) {
	err = o.mp.SetCalculationProperties(CalculationProperties{Source: o.source, CommonWavelengths: o.wls, Detector: detector})
	if err != nil {
		return
	}
	switch sc {
	case spd.DirectDirect:
		return o.mp.DirDir(colorLo, colorHi, side, prop, theta, phi)
	case spd.DirectHemispherical, spd.DirectDiffuse:
		return o.mp.DirHem(colorLo, colorHi, side, prop, theta, phi)
	case spd.DiffuseDiffuse:
		return o.mp.DiffDiff(colorLo, colorHi, side, prop)
	}
	return 0, chk.Err("color: unknown scattering %d", sc)
}

// normalisation returns ∫S·curve over the visible band
func (o *Color) normalisation(curve *spd.Series) float64 {
	return o.source.Mul(curve).Integrate(colorLo, colorHi)
}

// Trichromatic returns the CIE XYZ tuple of a property
func (o *Color) Trichromatic(prop spd.Property, side spd.Side, sc spd.Scattering, theta, phi float64) (x, y, z float64, err error) {
	sy := o.normalisation(o.obs.Y)
	if sy == 0 {
		return 0, 0, 0, chk.Err("color: observer Y weighting vanishes")
	}
	k := 100 / sy
	tx, err := o.query(prop, side, sc, theta, phi, o.obs.X)
	if err != nil {
		return
	}
	ty, err := o.query(prop, side, sc, theta, phi, o.obs.Y)
	if err != nil {
		return
	}
	tz, err := o.query(prop, side, sc, theta, phi, o.obs.Z)
	if err != nil {
		return
	}
	x = k * tx * o.normalisation(o.obs.X)
	y = k * ty * sy
	z = k * tz * o.normalisation(o.obs.Z)
	return
}

// RGB returns the sRGB coordinates clipped to [0,255]
func (o *Color) RGB(prop spd.Property, side spd.Side, sc spd.Scattering, theta, phi float64) (r, g, b int, err error) {
	x, y, z, err := o.Trichromatic(prop, side, sc, theta, phi)
	if err != nil {
		return
	}
	x, y, z = x/100, y/100, z/100
	rl := 3.2406*x - 1.5372*y - 0.4986*z
	gl := -0.9689*x + 1.8758*y + 0.0415*z
	bl := 0.0557*x - 0.2040*y + 1.0570*z
	encode := func(c float64) int {
		if c <= 0.0031308 {
			c = 12.92 * c
		} else {
			c = 1.055*math.Pow(c, 1/2.4) - 0.055
		}
		v := int(math.Round(c * 255))
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return v
	}
	return encode(rl), encode(gl), encode(bl), nil
}

// CIELab returns the L*a*b* coordinates relative to the illuminant white
func (o *Color) CIELab(prop spd.Property, side spd.Side, sc spd.Scattering, theta, phi float64) (L, a, b float64, err error) {
	x, y, z, err := o.Trichromatic(prop, side, sc, theta, phi)
	if err != nil {
		return
	}
	sy := o.normalisation(o.obs.Y)
	xn := 100 * o.normalisation(o.obs.X) / sy
	yn := 100.0
	zn := 100 * o.normalisation(o.obs.Z) / sy
	f := func(t float64) float64 {
		const delta = 6.0 / 29.0
		if t > delta*delta*delta {
			return math.Cbrt(t)
		}
		return t/(3*delta*delta) + 4.0/29.0
	}
	L = 116*f(y/yn) - 16
	a = 500 * (f(x/xn) - f(y/yn))
	b = 200 * (f(y/yn) - f(z/zn))
	return
}

// DominantWavelengthAndPurity returns the dominant wavelength [µm] and
// the excitation purity of a property. Purity may exceed one when the
// sample point lies outside the spectral locus; it is not clamped
func (o *Color) DominantWavelengthAndPurity(prop spd.Property, side spd.Side, sc spd.Scattering, theta, phi float64) (wl, purity float64, err error) {
	x, y, z, err := o.Trichromatic(prop, side, sc, theta, phi)
	if err != nil {
		return
	}
	sum := x + y + z
	if sum == 0 {
		return 0, 0, chk.Err("color: black stimulus has no dominant wavelength")
	}
	sx, sy := x/sum, y/sum

	// white point of the bare illuminant
	wx := o.normalisation(o.obs.X)
	wy := o.normalisation(o.obs.Y)
	wz := o.normalisation(o.obs.Z)
	wsum := wx + wy + wz
	wxc, wyc := wx/wsum, wy/wsum

	dx, dy := sx-wxc, sy-wyc
	if dx == 0 && dy == 0 {
		return 0, 0, nil
	}

	// walk the spectral locus looking for the ray intersection
	wls := o.obs.X.XValues()
	var prevLx, prevLy, prevWl float64
	found := false
	for i, lambda := range wls {
		xv := o.obs.X.ValueAt(lambda)
		yv := o.obs.Y.ValueAt(lambda)
		zv := o.obs.Z.ValueAt(lambda)
		s := xv + yv + zv
		if s == 0 {
			continue
		}
		lx, ly := xv/s, yv/s
		if i > 0 {
			t, u, ok := raySegment(wxc, wyc, dx, dy, prevLx, prevLy, lx, ly)
			if ok && t > 0 {
				wl = prevWl + u*(lambda-prevWl)
				// the sample sits at t=1 along the ray; the locus at t
				purity = 1 / t
				found = true
				break
			}
		}
		prevLx, prevLy, prevWl = lx, ly, lambda
	}
	if !found {
		return 0, 0, chk.Err("color: no locus intersection found")
	}
	return
}

// raySegment intersects the ray p + t·d (t scaled so t=1 at p+d) with
// the segment a-b; u is the position along the segment
func raySegment(px, py, dx, dy, ax, ay, bx, by float64) (t, u float64, ok bool) {
	ex, ey := bx-ax, by-ay
	den := dx*ey - dy*ex
	if den == 0 {
		return
	}
	t = ((ax-px)*ey - (ay-py)*ex) / den
	u = ((ax-px)*dy - (ay-py)*dx) / den
	if u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}
