// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import "github.com/cpmech/gofen/spd"

// ObserverX1964 returns the CIE 1964 10 degree colour matching function x
func ObserverX1964() *spd.Series {
	return column(observer1964, 1)
}

// ObserverY1964 returns the CIE 1964 10 degree colour matching function y
func ObserverY1964() *spd.Series {
	return column(observer1964, 2)
}

// ObserverZ1964 returns the CIE 1964 10 degree colour matching function z
func ObserverZ1964() *spd.Series {
	return column(observer1964, 3)
}

// ObserverX1931 returns the CIE 1931 2 degree colour matching function x
func ObserverX1931() *spd.Series {
	return column(observer1931, 1)
}

// ObserverY1931 returns the CIE 1931 2 degree colour matching function y
func ObserverY1931() *spd.Series {
	return column(observer1931, 2)
}

// ObserverZ1931 returns the CIE 1931 2 degree colour matching function z
func ObserverZ1931() *spd.Series {
	return column(observer1931, 3)
}

func column(table [][4]float64, col int) (res *spd.Series) {
	res = spd.NewSeries()
	for _, row := range table {
		res.Add(row[0], row[col])
	}
	return
}

// CIE 1964 supplementary observer, 10 nm steps; wavelengths in µm
var observer1964 = [][4]float64{
	{0.380, 0.000160, 0.000017, 0.000705},
	{0.390, 0.002362, 0.000253, 0.010482},
	{0.400, 0.019110, 0.002004, 0.086011},
	{0.410, 0.084736, 0.008756, 0.389366},
	{0.420, 0.204492, 0.021391, 0.972542},
	{0.430, 0.314679, 0.038676, 1.553480},
	{0.440, 0.383734, 0.062077, 1.967280},
	{0.450, 0.370702, 0.089456, 1.994800},
	{0.460, 0.302273, 0.128201, 1.745370},
	{0.470, 0.195618, 0.185190, 1.317560},
	{0.480, 0.080507, 0.253589, 0.772125},
	{0.490, 0.016172, 0.339133, 0.415254},
	{0.500, 0.003816, 0.460777, 0.218502},
	{0.510, 0.037465, 0.606741, 0.112044},
	{0.520, 0.117749, 0.761757, 0.060709},
	{0.530, 0.236491, 0.875211, 0.030451},
	{0.540, 0.376772, 0.961988, 0.013676},
	{0.550, 0.529826, 0.991761, 0.003988},
	{0.560, 0.705224, 0.997340, 0.000000},
	{0.570, 0.878655, 0.955552, 0.000000},
	{0.580, 1.014160, 0.868934, 0.000000},
	{0.590, 1.118520, 0.777405, 0.000000},
	{0.600, 1.123990, 0.658341, 0.000000},
	{0.610, 1.030480, 0.527963, 0.000000},
	{0.620, 0.856297, 0.398057, 0.000000},
	{0.630, 0.647467, 0.283493, 0.000000},
	{0.640, 0.431567, 0.179828, 0.000000},
	{0.650, 0.268329, 0.107633, 0.000000},
	{0.660, 0.152568, 0.060281, 0.000000},
	{0.670, 0.081261, 0.031800, 0.000000},
	{0.680, 0.040851, 0.015905, 0.000000},
	{0.690, 0.019941, 0.007749, 0.000000},
	{0.700, 0.009577, 0.003718, 0.000000},
	{0.710, 0.004553, 0.001768, 0.000000},
	{0.720, 0.002089, 0.000846, 0.000000},
	{0.730, 0.000952, 0.000372, 0.000000},
	{0.740, 0.000432, 0.000175, 0.000000},
	{0.750, 0.000200, 0.000082, 0.000000},
	{0.760, 0.000097, 0.000040, 0.000000},
	{0.770, 0.000050, 0.000020, 0.000000},
	{0.780, 0.000025, 0.000010, 0.000000},
}

// CIE 1931 standard observer, 10 nm steps; wavelengths in µm
var observer1931 = [][4]float64{
	{0.380, 0.001368, 0.000039, 0.006450},
	{0.390, 0.004243, 0.000120, 0.020050},
	{0.400, 0.014310, 0.000396, 0.067850},
	{0.410, 0.043510, 0.001210, 0.207400},
	{0.420, 0.134380, 0.004000, 0.645600},
	{0.430, 0.283900, 0.011600, 1.385600},
	{0.440, 0.348280, 0.023000, 1.747060},
	{0.450, 0.336200, 0.038000, 1.772110},
	{0.460, 0.290800, 0.060000, 1.669200},
	{0.470, 0.195360, 0.090980, 1.287640},
	{0.480, 0.095640, 0.139020, 0.812950},
	{0.490, 0.032010, 0.208020, 0.465180},
	{0.500, 0.004900, 0.323000, 0.272000},
	{0.510, 0.009300, 0.503000, 0.158200},
	{0.520, 0.063270, 0.710000, 0.078250},
	{0.530, 0.165500, 0.862000, 0.042160},
	{0.540, 0.290400, 0.954000, 0.020300},
	{0.550, 0.433450, 0.994950, 0.008750},
	{0.560, 0.594500, 0.995000, 0.003900},
	{0.570, 0.762100, 0.952000, 0.002100},
	{0.580, 0.916300, 0.870000, 0.001650},
	{0.590, 1.026300, 0.757000, 0.001100},
	{0.600, 1.062200, 0.631000, 0.000800},
	{0.610, 1.002600, 0.503000, 0.000340},
	{0.620, 0.854450, 0.381000, 0.000190},
	{0.630, 0.642400, 0.265000, 0.000050},
	{0.640, 0.447900, 0.175000, 0.000020},
	{0.650, 0.283500, 0.107000, 0.000000},
	{0.660, 0.164900, 0.061000, 0.000000},
	{0.670, 0.087400, 0.032000, 0.000000},
	{0.680, 0.046770, 0.017000, 0.000000},
	{0.690, 0.022700, 0.008210, 0.000000},
	{0.700, 0.011359, 0.004102, 0.000000},
	{0.710, 0.005790, 0.002091, 0.000000},
	{0.720, 0.002899, 0.001047, 0.000000},
	{0.730, 0.001440, 0.000520, 0.000000},
	{0.740, 0.000690, 0.000249, 0.000000},
	{0.750, 0.000332, 0.000120, 0.000000},
	{0.760, 0.000166, 0.000060, 0.000000},
	{0.770, 0.000083, 0.000030, 0.000000},
	{0.780, 0.000042, 0.000015, 0.000000},
}
