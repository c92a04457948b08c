// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spd

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// AngularSample scales a measured sample to oblique incidence using a
// Fresnel based deconstruction of the normal incidence measurement.
// Monolithic and Laminate panes use the uncoated two-surface model with
// Beer-Lambert bulk absorption; Coated panes keep the measured normal
// reflectance and scale it with the reference glass curve
type AngularSample struct {
	sample    *Sample
	thickness float64 // [m]
	mtype     MaterialType

	cache map[float64]*Sample // keyed by incidence angle [deg]
}

// NewAngularSample wraps a sample with its thickness and material type
func NewAngularSample(sample *Sample, thickness float64, mtype MaterialType) (o *AngularSample, err error) {
	if thickness <= 0 {
		return nil, chk.Err("angular sample: thickness must be positive")
	}
	o = &AngularSample{sample: sample, thickness: thickness, mtype: mtype, cache: make(map[float64]*Sample)}
	return
}

// Sample returns the wrapped normal incidence sample
func (o *AngularSample) Sample() *Sample {
	return o.sample
}

// Thickness returns the pane thickness [m]
func (o *AngularSample) Thickness() float64 {
	return o.thickness
}

// Type returns the material type of the angular model
func (o *AngularSample) Type() MaterialType {
	return o.mtype
}

// SampleAt returns the sample transformed to incidence angle theta [deg]
func (o *AngularSample) SampleAt(theta float64) (res *Sample, err error) {
	if theta < 0 || theta > 90 {
		return nil, chk.Err("angular sample: incidence angle %g out of [0,90]", theta)
	}
	if s, ok := o.cache[theta]; ok {
		return s, nil
	}
	data := o.sample.Data()
	rows := make([]SampleRow, data.Len())
	for i := 0; i < data.Len(); i++ {
		r := data.Row(i)
		tf, rf := o.anglePair(r.Wl, r.Tf, r.Rf, theta)
		tb, rb := o.anglePair(r.Wl, r.Tb, r.Rb, theta)
		rows[i] = SampleRow{Wl: r.Wl, Tf: tf, Rf: rf, Tb: tb, Rb: rb}
	}
	res = NewSample(&SampleData{rows: rows}, o.sample.Source())
	if o.sample.detector != nil {
		res.SetDetectorData(o.sample.detector)
	}
	res.wls = o.sample.wls
	o.cache[theta] = res
	return res, nil
}

// Property returns the band averaged property at incidence angle theta
func (o *AngularSample) Property(lo, hi float64, prop Property, side Side, theta float64) (res float64, err error) {
	s, err := o.SampleAt(theta)
	if err != nil {
		return
	}
	return s.Property(lo, hi, prop, side)
}

// anglePair converts one (T,R) pair measured at normal incidence to the
// given incidence angle
func (o *AngularSample) anglePair(wl, t0, r0, theta float64) (t, r float64) {
	switch o.mtype {
	case Coated:
		return coatedAngle(t0, r0, theta)
	default:
		return uncoatedAngle(t0, r0, theta)
	}
}

// uncoatedAngle deconstructs the normal incidence measurement of a clear
// pane into surface reflectivity and internal transmittance, then
// reassembles both polarizations at oblique incidence
func uncoatedAngle(t0, r0, theta float64) (t, r float64) {
	if theta == 0 {
		return t0, r0
	}
	rho0, n := surfaceReflectivity(t0, r0)
	a0 := internalTransmittance(t0, rho0)

	thetaR := theta * math.Pi / 180
	sinT := math.Sin(thetaR) / n
	cosT := math.Sqrt(1 - sinT*sinT)
	cosI := math.Cos(thetaR)

	// amplitude reflectivities squared for s and p polarization
	rs := sq((cosI - n*cosT) / (cosI + n*cosT))
	rp := sq((n*cosI - cosT) / (n*cosI + cosT))

	// path-lengthened internal transmittance
	a := a0
	if a0 > 0 && a0 < 1 {
		a = math.Pow(a0, 1/cosT)
	}

	ts, rsTot := paneProps(rs, a)
	tp, rpTot := paneProps(rp, a)
	return 0.5 * (ts + tp), 0.5 * (rsTot + rpTot)
}

// coatedAngle keeps the measured normal reflectance and scales both
// properties with the angular ratio of an uncoated reference pane
func coatedAngle(t0, r0, theta float64) (t, r float64) {
	if theta == 0 {
		return t0, r0
	}
	// reference clear glass with the sample's own normal properties
	tref, rref := uncoatedAngle(t0, r0, theta)
	t = tref
	// reflectance stays at the measured normal value and only grows with
	// the reference curve at oblique incidence
	r = rref
	if r < r0 {
		r = r0
	}
	if t+r > 1 {
		t = 1 - r
	}
	return
}

// surfaceReflectivity solves the two-surface pane equations for the
// single-surface reflectivity and the equivalent refractive index
func surfaceReflectivity(t0, r0 float64) (rho, n float64) {
	beta := t0*t0 - r0*r0 + 2*r0 + 1
	disc := beta*beta - 4*(2-r0)*r0
	if disc < 0 {
		disc = 0
	}
	rho = (beta - math.Sqrt(disc)) / (2 * (2 - r0))
	if rho < 0 {
		rho = 0
	}
	if rho >= 1 {
		rho = 1 - 1e-12
	}
	root := math.Sqrt(rho)
	n = (1 + root) / (1 - root)
	if n < 1 {
		n = 1
	}
	return
}

// internalTransmittance extracts the Beer-Lambert bulk factor from the
// measured transmittance and the surface reflectivity
func internalTransmittance(t0, rho float64) (a float64) {
	if t0 <= 0 {
		return 0
	}
	if rho == 0 {
		return t0
	}
	num := math.Sqrt(math.Pow(1-rho, 4)+4*rho*rho*t0*t0) - sq(1-rho)
	den := 2 * rho * rho * t0
	if den == 0 {
		return t0
	}
	a = num / den
	if a > 1 {
		a = 1
	}
	return
}

// paneProps assembles total pane transmittance and reflectance from one
// polarization's surface reflectivity and the internal transmittance
func paneProps(rho, a float64) (t, r float64) {
	den := 1 - rho*rho*a*a
	if den == 0 {
		return 0, rho
	}
	t = sq(1-rho) * a / den
	r = rho * (1 + a*t)
	return
}

func sq(x float64) float64 {
	return x * x
}
