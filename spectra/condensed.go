// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spectra holds the canonical reference curves: source spectra,
// illuminants, observers and the measured samples exercised by the
// test suite
package spectra

// GenerateSpectrum builds a condensed wavelength grid [µm]: the UV edge,
// nVisible bands over the visible range and nIR bands up to 2.5 µm
func GenerateSpectrum(nVisible, nIR int) (wls []float64) {
	const (
		uvLo  = 0.3
		visLo = 0.38
		visHi = 0.78
		irHi  = 2.5
	)
	wls = append(wls, uvLo)
	for i := 0; i <= nVisible; i++ {
		wls = append(wls, visLo+float64(i)*(visHi-visLo)/float64(nVisible))
	}
	for i := 1; i <= nIR; i++ {
		wls = append(wls, visHi+float64(i)*(irHi-visHi)/float64(nIR))
	}
	return
}

// CondensedSpectrumDefault returns the default condensed grid with five
// visible and ten infrared bands
func CondensedSpectrumDefault() []float64 {
	return GenerateSpectrum(5, 10)
}
