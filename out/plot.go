// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of optical results: plots of
// spectral curves and maps of BSDF matrices
package out

import (
	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotSeries plots one spectral curve
//  label -- legend entry; "" skips the legend
func PlotSeries(s *spd.Series, label string) {
	plt.Plot(s.XValues(), s.Values(), &plt.A{L: label, NoClip: true})
}

// PlotSeriesEnd finalises a spectral plot and saves it to dirout/fnkey
func PlotSeriesEnd(dirout, fnkey string) (err error) {
	plt.Gll("$\\lambda\\;[\\mu m]$", "value", nil)
	return plt.Save(dirout, fnkey)
}

// PlotMatrix draws one BSDF matrix as an intensity map
func PlotMatrix(m *la.Matrix, dirout, fnkey string) (err error) {
	n := m.M
	xx := utl.Alloc(n, n)
	yy := utl.Alloc(n, n)
	zz := utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xx[i][j] = float64(j)
			yy[i][j] = float64(i)
			zz[i][j] = m.Get(i, j)
		}
	}
	plt.ContourF(xx, yy, zz, nil)
	plt.Gll("incoming patch", "outgoing patch", nil)
	return plt.Save(dirout, fnkey)
}

// PlotHemisphere reports the patch layout of a basis as a scatter of the
// patch centres, azimuth against polar angle on cartesian axes
func PlotHemisphere(hemi *bsdf.Hemisphere, dirout, fnkey string) (err error) {
	n := hemi.Size()
	theta := make([]float64, n)
	phi := make([]float64, n)
	for i := 0; i < n; i++ {
		p := hemi.Patch(i)
		theta[i] = p.Theta
		phi[i] = p.Phi
	}
	plt.Plot(phi, theta, &plt.A{M: "o", Ls: "none", L: io.Sf("basis %d patches", n)})
	plt.Gll("$\\phi$ [deg]", "$\\theta$ [deg]", nil)
	return plt.Save(dirout, fnkey)
}
