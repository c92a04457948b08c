// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import "github.com/cpmech/gofen/spd"

// PhotopicDetector returns the CIE photopic luminous efficiency V at
// 5 nm steps over the visible range
func PhotopicDetector() *spd.Series {
	return spd.NewSeriesPoints(photopicDetector)
}

// WavelengthSetPhotopic returns the 5 nm visible grid used by photopic
// integrations
func WavelengthSetPhotopic() []float64 {
	return []float64{
		0.38, 0.385, 0.39, 0.395, 0.4, 0.405, 0.41, 0.415,
		0.42, 0.425, 0.43, 0.435, 0.44, 0.445, 0.45, 0.455,
		0.46, 0.465, 0.47, 0.475, 0.48, 0.485, 0.49, 0.495,
		0.5, 0.505, 0.51, 0.515, 0.52, 0.525, 0.53, 0.535,
		0.54, 0.545, 0.55, 0.555, 0.56, 0.565, 0.57, 0.575,
		0.58, 0.585, 0.59, 0.595, 0.6, 0.605, 0.61, 0.615,
		0.62, 0.625, 0.63, 0.635, 0.64, 0.645, 0.65, 0.655,
		0.66, 0.665, 0.67, 0.675, 0.68, 0.685, 0.69, 0.695,
		0.7, 0.705, 0.71, 0.715, 0.72, 0.725, 0.73, 0.735,
		0.74, 0.745, 0.75, 0.755, 0.76, 0.765, 0.77, 0.775,
		0.78,
	}
}

var photopicDetector = [][2]float64{
	{0.38, 0}, {0.385, 0.0001}, {0.39, 0.0001}, {0.395, 0.0002},
	{0.4, 0.0004}, {0.405, 0.0006}, {0.41, 0.0012}, {0.415, 0.0022},
	{0.42, 0.004}, {0.425, 0.0073}, {0.43, 0.0116}, {0.435, 0.0168},
	{0.44, 0.023}, {0.445, 0.0298}, {0.45, 0.038}, {0.455, 0.048},
	{0.46, 0.06}, {0.465, 0.0739}, {0.47, 0.091}, {0.475, 0.1126},
	{0.48, 0.139}, {0.485, 0.1693}, {0.49, 0.208}, {0.495, 0.2586},
	{0.5, 0.323}, {0.505, 0.4073}, {0.51, 0.503}, {0.515, 0.6082},
	{0.52, 0.71}, {0.525, 0.7932}, {0.53, 0.862}, {0.535, 0.9149},
	{0.54, 0.954}, {0.545, 0.9803}, {0.55, 0.995}, {0.555, 1},
	{0.56, 0.995}, {0.565, 0.9786}, {0.57, 0.952}, {0.575, 0.9154},
	{0.58, 0.87}, {0.585, 0.8163}, {0.59, 0.757}, {0.595, 0.6949},
	{0.6, 0.631}, {0.605, 0.5668}, {0.61, 0.503}, {0.615, 0.4412},
	{0.62, 0.381}, {0.625, 0.321}, {0.63, 0.265}, {0.635, 0.217},
	{0.64, 0.175}, {0.645, 0.1382}, {0.65, 0.107}, {0.655, 0.0816},
	{0.66, 0.061}, {0.665, 0.0446}, {0.67, 0.032}, {0.675, 0.0232},
	{0.68, 0.017}, {0.685, 0.0119}, {0.69, 0.0082}, {0.695, 0.0057},
	{0.7, 0.0041}, {0.705, 0.0029}, {0.71, 0.0021}, {0.715, 0.0015},
	{0.72, 0.001}, {0.725, 0.0007}, {0.73, 0.0005}, {0.735, 0.0004},
	{0.74, 0.0002}, {0.745, 0.0002}, {0.75, 0.0001}, {0.755, 0.0001},
	{0.76, 0.0001}, {0.765, 0}, {0.77, 0}, {0.775, 0},
	{0.78, 0},
}
