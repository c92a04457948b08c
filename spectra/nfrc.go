// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
)

// NFRC102 returns the measured spectral data of the NFRC 102 reference
// sample (3.048 mm clear glass)
func NFRC102() *spd.SampleData {
	return mustSample(nfrc102Table)
}

// NFRC103 returns the measured spectral data of the NFRC 103 reference
// sample (5.715 mm clear glass)
func NFRC103() *spd.SampleData {
	return mustSample(nfrc103Table)
}

func mustSample(table [][4]float64) *spd.SampleData {
	data, err := spd.NewSampleDataTable(table)
	if err != nil {
		chk.Panic("spectra: invalid reference sample: %v", err)
	}
	return data
}

// wavelength [um], Tsol, Rf, Rb
var nfrc102Table = [][4]float64{
	{0.300, 0.0020, 0.0470, 0.0480},
	{0.305, 0.0030, 0.0470, 0.0480},
	{0.310, 0.0090, 0.0470, 0.0480},
	{0.315, 0.0350, 0.0470, 0.0480},
	{0.320, 0.1000, 0.0470, 0.0480},
	{0.325, 0.2180, 0.0490, 0.0500},
	{0.330, 0.3560, 0.0530, 0.0540},
	{0.335, 0.4980, 0.0600, 0.0610},
	{0.340, 0.6160, 0.0670, 0.0670},
	{0.345, 0.7090, 0.0730, 0.0740},
	{0.350, 0.7740, 0.0780, 0.0790},
	{0.355, 0.8180, 0.0820, 0.0820},
	{0.360, 0.8470, 0.0840, 0.0840},
	{0.365, 0.8630, 0.0850, 0.0850},
	{0.370, 0.8690, 0.0850, 0.0860},
	{0.375, 0.8610, 0.0850, 0.0850},
	{0.380, 0.8560, 0.0840, 0.0840},
	{0.385, 0.8660, 0.0850, 0.0850},
	{0.390, 0.8810, 0.0860, 0.0860},
	{0.395, 0.8890, 0.0860, 0.0860},
	{0.400, 0.8930, 0.0860, 0.0860},
	{0.410, 0.8930, 0.0860, 0.0860},
	{0.420, 0.8920, 0.0860, 0.0860},
	{0.430, 0.8920, 0.0850, 0.0850},
	{0.440, 0.8920, 0.0850, 0.0850},
	{0.450, 0.8960, 0.0850, 0.0850},
	{0.460, 0.9000, 0.0850, 0.0850},
	{0.470, 0.9020, 0.0840, 0.0840},
	{0.480, 0.9030, 0.0840, 0.0840},
	{0.490, 0.9020, 0.0830, 0.0830},
	{0.500, 0.9030, 0.0830, 0.0830},
	{0.510, 0.9040, 0.0830, 0.0830},
	{0.520, 0.9040, 0.0830, 0.0830},
	{0.530, 0.9040, 0.0830, 0.0830},
	{0.540, 0.9040, 0.0830, 0.0830},
	{0.550, 0.9030, 0.0830, 0.0830},
	{0.560, 0.9020, 0.0830, 0.0830},
	{0.570, 0.9000, 0.0820, 0.0820},
	{0.580, 0.8980, 0.0820, 0.0820},
	{0.590, 0.8960, 0.0810, 0.0810},
	{0.600, 0.8930, 0.0810, 0.0810},
	{0.610, 0.8900, 0.0810, 0.0810},
	{0.620, 0.8860, 0.0800, 0.0800},
	{0.630, 0.8830, 0.0800, 0.0800},
	{0.640, 0.8790, 0.0790, 0.0790},
	{0.650, 0.8750, 0.0790, 0.0790},
	{0.660, 0.8700, 0.0780, 0.0780},
	{0.670, 0.8650, 0.0780, 0.0780},
	{0.680, 0.8600, 0.0770, 0.0770},
	{0.690, 0.8540, 0.0760, 0.0770},
	{0.700, 0.8480, 0.0760, 0.0760},
	{0.710, 0.8420, 0.0750, 0.0750},
	{0.720, 0.8350, 0.0750, 0.0750},
	{0.730, 0.8280, 0.0740, 0.0740},
	{0.740, 0.8210, 0.0740, 0.0740},
	{0.750, 0.8140, 0.0730, 0.0730},
	{0.760, 0.8060, 0.0730, 0.0730},
	{0.770, 0.7980, 0.0720, 0.0720},
	{0.780, 0.7900, 0.0710, 0.0710},
	{0.790, 0.7820, 0.0710, 0.0710},
	{0.800, 0.7740, 0.0700, 0.0700},
	{0.810, 0.7660, 0.0700, 0.0700},
	{0.820, 0.7580, 0.0690, 0.0690},
	{0.830, 0.7500, 0.0690, 0.0690},
	{0.840, 0.7420, 0.0680, 0.0680},
	{0.850, 0.7340, 0.0680, 0.0680},
	{0.860, 0.7260, 0.0670, 0.0670},
	{0.870, 0.7180, 0.0670, 0.0670},
	{0.880, 0.7100, 0.0660, 0.0660},
	{0.890, 0.7020, 0.0660, 0.0660},
	{0.900, 0.6940, 0.0650, 0.0650},
	{0.910, 0.6860, 0.0650, 0.0650},
	{0.920, 0.6780, 0.0640, 0.0640},
	{0.930, 0.6700, 0.0640, 0.0640},
	{0.940, 0.6620, 0.0630, 0.0630},
	{0.950, 0.6550, 0.0630, 0.0630},
	{0.960, 0.6470, 0.0620, 0.0620},
	{0.970, 0.6390, 0.0620, 0.0620},
	{0.980, 0.6320, 0.0610, 0.0610},
	{0.990, 0.6250, 0.0610, 0.0610},
	{1.000, 0.6170, 0.0600, 0.0600},
	{1.050, 0.5800, 0.0590, 0.0590},
	{1.100, 0.5470, 0.0570, 0.0570},
	{1.150, 0.5190, 0.0560, 0.0560},
	{1.200, 0.4960, 0.0540, 0.0540},
	{1.250, 0.4790, 0.0530, 0.0530},
	{1.300, 0.4660, 0.0530, 0.0530},
	{1.350, 0.4580, 0.0520, 0.0520},
	{1.400, 0.4540, 0.0520, 0.0520},
	{1.450, 0.4530, 0.0510, 0.0510},
	{1.500, 0.4560, 0.0510, 0.0510},
	{1.550, 0.4610, 0.0510, 0.0510},
	{1.600, 0.4690, 0.0510, 0.0510},
	{1.650, 0.4780, 0.0510, 0.0510},
	{1.700, 0.4890, 0.0510, 0.0510},
	{1.750, 0.5000, 0.0510, 0.0510},
	{1.800, 0.5120, 0.0510, 0.0510},
	{1.850, 0.5250, 0.0520, 0.0520},
	{1.900, 0.5370, 0.0520, 0.0520},
	{1.950, 0.5490, 0.0520, 0.0520},
	{2.000, 0.5610, 0.0520, 0.0520},
	{2.050, 0.5720, 0.0520, 0.0520},
	{2.100, 0.5830, 0.0520, 0.0520},
	{2.150, 0.5930, 0.0530, 0.0530},
	{2.200, 0.6020, 0.0530, 0.0530},
	{2.250, 0.6100, 0.0530, 0.0530},
	{2.300, 0.6170, 0.0530, 0.0530},
	{2.350, 0.6230, 0.0530, 0.0530},
	{2.400, 0.6280, 0.0530, 0.0530},
	{2.450, 0.6320, 0.0530, 0.0530},
	{2.500, 0.6350, 0.0530, 0.0530},
}

// wavelength [um], Tsol, Rf, Rb
var nfrc103Table = [][4]float64{
	{0.300, 0.0000, 0.0470, 0.0470},
	{0.305, 0.0000, 0.0470, 0.0470},
	{0.310, 0.0002, 0.0470, 0.0470},
	{0.315, 0.0020, 0.0469, 0.0469},
	{0.320, 0.0145, 0.0465, 0.0465},
	{0.325, 0.0625, 0.0468, 0.0468},
	{0.330, 0.1566, 0.0478, 0.0478},
	{0.335, 0.2941, 0.0516, 0.0516},
	{0.340, 0.4382, 0.0573, 0.0573},
	{0.345, 0.5700, 0.0638, 0.0638},
	{0.350, 0.6718, 0.0704, 0.0704},
	{0.355, 0.7454, 0.0761, 0.0761},
	{0.360, 0.7953, 0.0796, 0.0796},
	{0.365, 0.8234, 0.0816, 0.0816},
	{0.370, 0.8337, 0.0819, 0.0819},
	{0.375, 0.8199, 0.0815, 0.0815},
	{0.380, 0.8106, 0.0801, 0.0801},
	{0.385, 0.8285, 0.0818, 0.0818},
	{0.390, 0.8554, 0.0837, 0.0837},
	{0.395, 0.8694, 0.0843, 0.0843},
	{0.400, 0.8765, 0.0845, 0.0845},
	{0.410, 0.8765, 0.0845, 0.0845},
	{0.420, 0.8747, 0.0845, 0.0845},
	{0.430, 0.8739, 0.0834, 0.0834},
	{0.440, 0.8739, 0.0834, 0.0834},
	{0.450, 0.8810, 0.0837, 0.0837},
	{0.460, 0.8881, 0.0840, 0.0840},
	{0.470, 0.8909, 0.0830, 0.0830},
	{0.480, 0.8927, 0.0831, 0.0831},
	{0.490, 0.8901, 0.0820, 0.0820},
	{0.500, 0.8919, 0.0820, 0.0820},
	{0.510, 0.8937, 0.0821, 0.0821},
	{0.520, 0.8937, 0.0821, 0.0821},
	{0.530, 0.8937, 0.0821, 0.0821},
	{0.540, 0.8937, 0.0821, 0.0821},
	{0.550, 0.8919, 0.0820, 0.0820},
	{0.560, 0.8901, 0.0820, 0.0820},
	{0.570, 0.8857, 0.0808, 0.0808},
	{0.580, 0.8822, 0.0807, 0.0807},
	{0.590, 0.8779, 0.0795, 0.0795},
	{0.600, 0.8726, 0.0793, 0.0793},
	{0.610, 0.8673, 0.0791, 0.0791},
	{0.620, 0.8595, 0.0778, 0.0778},
	{0.630, 0.8542, 0.0776, 0.0776},
	{0.640, 0.8464, 0.0764, 0.0764},
	{0.650, 0.8395, 0.0761, 0.0761},
	{0.660, 0.8301, 0.0748, 0.0748},
	{0.670, 0.8215, 0.0746, 0.0746},
	{0.680, 0.8121, 0.0733, 0.0733},
	{0.690, 0.8011, 0.0720, 0.0720},
	{0.700, 0.7910, 0.0717, 0.0717},
	{0.710, 0.7801, 0.0704, 0.0704},
	{0.720, 0.7684, 0.0700, 0.0700},
	{0.730, 0.7561, 0.0687, 0.0687},
	{0.740, 0.7445, 0.0684, 0.0684},
	{0.750, 0.7323, 0.0672, 0.0672},
	{0.760, 0.7193, 0.0668, 0.0668},
	{0.770, 0.7057, 0.0656, 0.0656},
	{0.780, 0.6922, 0.0643, 0.0643},
	{0.790, 0.6795, 0.0641, 0.0641},
	{0.800, 0.6663, 0.0628, 0.0628},
	{0.810, 0.6538, 0.0626, 0.0626},
	{0.820, 0.6408, 0.0614, 0.0614},
	{0.830, 0.6286, 0.0612, 0.0612},
	{0.840, 0.6158, 0.0601, 0.0601},
	{0.850, 0.6037, 0.0599, 0.0599},
	{0.860, 0.5912, 0.0588, 0.0588},
	{0.870, 0.5794, 0.0586, 0.0586},
	{0.880, 0.5670, 0.0575, 0.0575},
	{0.890, 0.5554, 0.0574, 0.0574},
	{0.900, 0.5434, 0.0563, 0.0563},
	{0.910, 0.5320, 0.0562, 0.0562},
	{0.920, 0.5201, 0.0552, 0.0552},
	{0.930, 0.5090, 0.0551, 0.0551},
	{0.940, 0.4974, 0.0541, 0.0541},
	{0.950, 0.4878, 0.0541, 0.0541},
	{0.960, 0.4764, 0.0531, 0.0531},
	{0.970, 0.4657, 0.0530, 0.0530},
	{0.980, 0.4559, 0.0521, 0.0521},
	{0.990, 0.4467, 0.0521, 0.0521},
	{1.000, 0.4357, 0.0512, 0.0512},
	{1.050, 0.3886, 0.0503, 0.0503},
	{1.100, 0.3481, 0.0487, 0.0487},
	{1.150, 0.3156, 0.0480, 0.0480},
	{1.200, 0.2896, 0.0465, 0.0465},
	{1.250, 0.2712, 0.0458, 0.0458},
	{1.300, 0.2577, 0.0460, 0.0460},
	{1.350, 0.2493, 0.0452, 0.0452},
	{1.400, 0.2453, 0.0452, 0.0452},
	{1.450, 0.2439, 0.0444, 0.0444},
	{1.500, 0.2469, 0.0443, 0.0443},
	{1.550, 0.2519, 0.0443, 0.0443},
	{1.600, 0.2601, 0.0442, 0.0442},
	{1.650, 0.2694, 0.0441, 0.0441},
	{1.700, 0.2809, 0.0440, 0.0440},
	{1.750, 0.2927, 0.0438, 0.0438},
	{1.800, 0.3057, 0.0437, 0.0437},
	{1.850, 0.3206, 0.0445, 0.0445},
	{1.900, 0.3343, 0.0444, 0.0444},
	{1.950, 0.3481, 0.0444, 0.0444},
	{2.000, 0.3623, 0.0443, 0.0443},
	{2.050, 0.3754, 0.0443, 0.0443},
	{2.100, 0.3888, 0.0442, 0.0442},
	{2.150, 0.4017, 0.0451, 0.0451},
	{2.200, 0.4129, 0.0451, 0.0451},
	{2.250, 0.4231, 0.0451, 0.0451},
	{2.300, 0.4320, 0.0451, 0.0451},
	{2.350, 0.4398, 0.0452, 0.0452},
	{2.400, 0.4463, 0.0452, 0.0452},
	{2.450, 0.4515, 0.0452, 0.0452},
	{2.500, 0.4554, 0.0452, 0.0452},
}
