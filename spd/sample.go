// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spd

import "github.com/cpmech/gosl/chk"

// Sample couples measured sample data with a source curve and an
// optional detector curve and integrates optical properties over bands
type Sample struct {
	data     *SampleData
	source   *Series
	detector *Series
	wls      []float64 // effective integration grid
}

// NewSample creates a sample bound to a source curve
func NewSample(data *SampleData, source *Series) (o *Sample) {
	o = &Sample{data: data, source: source}
	o.wls = data.Wavelengths()
	return
}

// Data returns the measured data
func (o *Sample) Data() *SampleData {
	return o.data
}

// Source returns the bound source curve
func (o *Sample) Source() *Series {
	return o.source
}

// SetDetectorData binds a detector sensitivity curve
func (o *Sample) SetDetectorData(detector *Series) {
	o.detector = detector
}

// SetWavelengths repoints the integration grid
func (o *Sample) SetWavelengths(set WavelengthSet, custom []float64) (err error) {
	switch set {
	case WlSource:
		if o.source == nil {
			return chk.Err("sample: cannot use source wavelengths without a source")
		}
		o.wls = o.source.XValues()
	case WlData:
		o.wls = o.data.Wavelengths()
	case WlCustom:
		if len(custom) == 0 {
			return chk.Err("sample: custom wavelength set is empty")
		}
		o.wls = custom
	}
	return
}

// Wavelengths returns the effective integration grid
func (o *Sample) Wavelengths() []float64 {
	return o.wls
}

// weighting returns source (times detector when set) resampled on the
// integration grid
func (o *Sample) weighting() (res *Series, err error) {
	if o.source == nil {
		return nil, chk.Err("sample: source curve is required for band integration")
	}
	res = o.source.Interpolate(o.wls)
	if o.detector != nil {
		res = res.Mul(o.detector.Interpolate(o.wls))
	}
	return
}

// Energy integrates one channel weighted by source (and detector) over
// [lo,hi]; the result carries the source magnitude
func (o *Sample) Energy(lo, hi float64, prop Property, side Side) (res float64, err error) {
	w, err := o.weighting()
	if err != nil {
		return
	}
	curve := o.data.Curve(prop, side).Interpolate(o.wls).Mul(w)
	return curve.Integrate(lo, hi), nil
}

// Property returns the band averaged value of one channel: the energy
// numerator divided by the integral of the weighting curve
func (o *Sample) Property(lo, hi float64, prop Property, side Side) (res float64, err error) {
	if lo >= hi {
		return 0, chk.Err("sample: invalid band [%g,%g]", lo, hi)
	}
	num, err := o.Energy(lo, hi, prop, side)
	if err != nil {
		return
	}
	w, err := o.weighting()
	if err != nil {
		return
	}
	den := w.Integrate(lo, hi)
	if den == 0 {
		return 0, chk.Err("sample: weighting curve vanishes over [%g,%g]", lo, hi)
	}
	return num / den, nil
}
