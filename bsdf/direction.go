// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bsdf implements the hemispherical discretisation and the
// bidirectional scattering matrices of optical layers
package bsdf

import "math"

// BeamDirection is a collimated direction given by the polar angle Theta
// from the layer normal and the azimuth Phi, both in degrees
type BeamDirection struct {
	Theta float64
	Phi   float64
}

// ProfileAngle returns the projection of the direction onto the plane
// perpendicular to the slat axis, in degrees. Azimuth zero runs along
// the slat axis and carries no deflection
func (o BeamDirection) ProfileAngle() float64 {
	t := o.Theta * math.Pi / 180
	p := o.Phi * math.Pi / 180
	return -math.Atan(math.Tan(t)*math.Sin(p)) * 180 / math.Pi
}

// Rotate shifts the azimuth by the given cell rotation angle [deg]
func (o BeamDirection) Rotate(angle float64) BeamDirection {
	phi := math.Mod(o.Phi+angle, 360)
	if phi < 0 {
		phi += 360
	}
	return BeamDirection{Theta: o.Theta, Phi: phi}
}

// CosTheta returns the cosine of the polar angle
func (o BeamDirection) CosTheta() float64 {
	return math.Cos(o.Theta * math.Pi / 180)
}
