// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"strings"

	json5 "github.com/KevinWang15/go-json5"
	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/cell"
	"github.com/cpmech/gofen/equiv"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// exit codes of the command line interface
const (
	exitOK       = 0
	exitUsage    = 1
	exitGeometry = 2
	exitSpectral = 3
	exitNumeric  = 4
)

// materialInput describes one material in a geometry file
type materialInput struct {
	Type   string             `json:"type"`
	Params map[string]float64 `json:"params"`
}

// layerInput describes one layer in a geometry file
type layerInput struct {
	Type     string             `json:"type"`
	Material materialInput      `json:"material"`
	Geometry map[string]float64 `json:"geometry"`
}

// geometryInput is the root of a geometry file
type geometryInput struct {
	Basis  string       `json:"basis"`
	Layers []layerInput `json:"layers"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitUsage)
	}
	switch os.Args[1] {
	case "solve":
		if len(os.Args) != 4 {
			usage()
			os.Exit(exitUsage)
		}
		os.Exit(cmdSolve(os.Args[2], os.Args[3]))
	case "bsdf":
		if len(os.Args) != 4 {
			usage()
			os.Exit(exitUsage)
		}
		os.Exit(cmdBSDF(os.Args[2], os.Args[3]))
	default:
		usage()
		os.Exit(exitUsage)
	}
}

func usage() {
	io.Pf("gofen -- glazing and shading optical calculator\n\n")
	io.Pf("usage:\n")
	io.Pf("  gofen solve <geometry.json5> <spectrum.csv>\n")
	io.Pf("  gofen bsdf  <geometry.json5> <basis>\n")
}

// cmdSolve computes the banded properties of a layer stack
func cmdSolve(geomFn, specFn string) int {
	stack, hemi, err := loadGeometry(geomFn)
	if err != nil {
		io.PfRed("invalid geometry: %v\n", err)
		return exitGeometry
	}
	source, err := loadSpectrum(specFn)
	if err != nil {
		io.PfRed("spectral data error: %v\n", err)
		return exitSpectral
	}
	mp, err := equiv.NewMultiPaneBSDF(stack, equiv.CalculationProperties{Source: source}, nil)
	if err != nil {
		io.PfRed("numerical failure: %v\n", err)
		return exitNumeric
	}

	wls := mp.Wavelengths()
	lo, hi := wls[0], wls[len(wls)-1]
	report := map[string]interface{}{"minLambda": lo, "maxLambda": hi, "basisSize": hemi.Size()}
	scalars := []struct {
		key string
		f   func() (float64, error)
	}{
		{"TauDirDir", func() (float64, error) { return mp.DirDir(lo, hi, spd.SideFront, spd.PropT, 0, 0) }},
		{"RhoDirDir", func() (float64, error) { return mp.DirDir(lo, hi, spd.SideFront, spd.PropR, 0, 0) }},
		{"TauDirHem", func() (float64, error) { return mp.DirHem(lo, hi, spd.SideFront, spd.PropT, 0, 0) }},
		{"RhoDirHem", func() (float64, error) { return mp.DirHem(lo, hi, spd.SideFront, spd.PropR, 0, 0) }},
		{"TauDiffDiff", func() (float64, error) { return mp.DiffDiff(lo, hi, spd.SideFront, spd.PropT) }},
		{"RhoDiffDiff", func() (float64, error) { return mp.DiffDiff(lo, hi, spd.SideFront, spd.PropR) }},
	}
	for _, s := range scalars {
		v, err2 := s.f()
		if err2 != nil {
			io.PfRed("numerical failure: %v\n", err2)
			return exitNumeric
		}
		report[s.key] = v
	}
	abs := make([]float64, mp.NumLayers())
	for k := 1; k <= mp.NumLayers(); k++ {
		if abs[k-1], err = mp.Abs(lo, hi, spd.SideFront, k, 0, 0); err != nil {
			io.PfRed("numerical failure: %v\n", err)
			return exitNumeric
		}
	}
	report["absorptance"] = abs

	buf, _ := json.MarshalIndent(report, "", "  ")
	io.Pf("%s\n", string(buf))
	return exitOK
}

// cmdBSDF prints the transmittance matrix of a stack on a chosen basis
func cmdBSDF(geomFn, basisName string) int {
	basis, err := parseBasis(basisName)
	if err != nil {
		io.PfRed("invalid geometry: %v\n", err)
		return exitGeometry
	}
	hemi, err := bsdf.NewHemisphere(basis)
	if err != nil {
		io.PfRed("invalid geometry: %v\n", err)
		return exitGeometry
	}
	stack, _, err := loadGeometryWithBasis(geomFn, hemi)
	if err != nil {
		io.PfRed("invalid geometry: %v\n", err)
		return exitGeometry
	}
	mp, err := equiv.NewMultiPaneBSDF(stack, equiv.CalculationProperties{Source: defaultSource()}, nil)
	if err != nil {
		io.PfRed("numerical failure: %v\n", err)
		return exitNumeric
	}
	wls := mp.Wavelengths()
	m, err := mp.Matrix(wls[0], wls[len(wls)-1], spd.SideFront, spd.PropT)
	if err != nil {
		io.PfRed("numerical failure: %v\n", err)
		return exitNumeric
	}
	for i := 0; i < m.M; i++ {
		var row []string
		for j := 0; j < m.N; j++ {
			row = append(row, io.Sf("%.9f", m.Get(i, j)))
		}
		io.Pf("%s\n", strings.Join(row, " "))
	}
	return exitOK
}

// defaultSource returns a flat unit source for matrix dumps
func defaultSource() (res *spd.Series) {
	res = spd.NewSeries()
	res.Add(0.3, 1)
	res.Add(2.5, 1)
	return
}

// parseBasis resolves a basis name
func parseBasis(name string) (basis bsdf.Basis, err error) {
	switch strings.ToLower(name) {
	case "small":
		return bsdf.BasisSmall, nil
	case "quarter":
		return bsdf.BasisQuarter, nil
	case "half":
		return bsdf.BasisHalf, nil
	case "full":
		return bsdf.BasisFull, nil
	}
	return 0, chk.Err("unknown basis %q", name)
}

// loadGeometry reads the geometry file with its embedded basis
func loadGeometry(fn string) (stack []equiv.Layer, hemi *bsdf.Hemisphere, err error) {
	var input geometryInput
	if err = readJSON5(fn, &input); err != nil {
		return
	}
	basis := bsdf.BasisQuarter
	if input.Basis != "" {
		if basis, err = parseBasis(input.Basis); err != nil {
			return
		}
	}
	if hemi, err = bsdf.NewHemisphere(basis); err != nil {
		return
	}
	stack, _, err = loadGeometryWithBasis(fn, hemi)
	return
}

// loadGeometryWithBasis builds the layer stack on a given hemisphere
func loadGeometryWithBasis(fn string, hemi *bsdf.Hemisphere) (stack []equiv.Layer, input geometryInput, err error) {
	if err = readJSON5(fn, &input); err != nil {
		return
	}
	if len(input.Layers) == 0 {
		err = chk.Err("geometry %q contains no layers", fn)
		return
	}
	for _, l := range input.Layers {
		layer, err2 := buildLayer(l, hemi)
		if err2 != nil {
			return nil, input, err2
		}
		stack = append(stack, layer)
	}
	return
}

// buildLayer creates one BSDF layer from its description
func buildLayer(l layerInput, hemi *bsdf.Hemisphere) (res equiv.Layer, err error) {
	prms := dbf.Params{}
	for name, val := range l.Material.Params {
		prms = append(prms, &dbf.P{N: name, V: val})
	}
	mat, err := mdl.New(l.Material.Type, prms)
	if err != nil {
		return
	}
	g := l.Geometry
	switch l.Type {
	case "specular":
		return cell.NewSpecularLayer(mat, hemi), nil
	case "perfectly-diffuse":
		return cell.NewPerfectlyDiffuseLayer(mat, hemi), nil
	case "homogeneous-diffuse":
		return cell.NewHomogeneousDiffuseLayer(mat, hemi), nil
	case "perforated-circular":
		desc := cell.CircularPerforated{X: g["x"], Y: g["y"], Thickness: g["thickness"], Radius: g["radius"]}
		if err = desc.Validate(); err != nil {
			return
		}
		return cell.NewCircularPerforatedLayer(mat, hemi, desc.X, desc.Y, desc.Thickness, desc.Radius), nil
	case "perforated-rectangular":
		desc := cell.RectangularPerforated{X: g["x"], Y: g["y"], Thickness: g["thickness"], XHole: g["xHole"], YHole: g["yHole"]}
		if err = desc.Validate(); err != nil {
			return
		}
		return cell.NewRectangularPerforatedLayer(mat, hemi, desc.X, desc.Y, desc.Thickness, desc.XHole, desc.YHole), nil
	case "woven":
		desc := cell.Woven{Diameter: g["diameter"], Spacing: g["spacing"]}
		if err = desc.Validate(); err != nil {
			return
		}
		return cell.NewWovenLayer(mat, hemi, desc.Diameter, desc.Spacing), nil
	case "venetian":
		vg := cell.VenetianGeometry{
			SlatWidth:       g["slatWidth"],
			SlatSpacing:     g["slatSpacing"],
			SlatTiltAngle:   g["slatTiltAngle"],
			CurvatureRadius: g["curvatureRadius"],
			NumSegments:     int(g["numSegments"]),
		}
		if vg.NumSegments == 0 {
			vg.NumSegments = 1
		}
		return cell.NewVenetianLayer(mat, hemi, vg, bsdf.UniformDiffuse, false)
	}
	return nil, chk.Err("unknown layer type %q", l.Type)
}

// readJSON5 loads one JSON5 file
func readJSON5(fn string, target interface{}) (err error) {
	buf, err := os.ReadFile(fn)
	if err != nil {
		return chk.Err("cannot read %q: %v", fn, err)
	}
	if err = json5.Unmarshal(buf, target); err != nil {
		return chk.Err("cannot parse %q: %v", fn, err)
	}
	return
}

// loadSpectrum reads a CSV of (wavelength, value) rows
func loadSpectrum(fn string) (res *spd.Series, err error) {
	buf, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read %q: %v", fn, err)
	}
	res = spd.NewSeries()
	prev := -1.0
	for i, line := range strings.Split(string(buf), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ';' || r == ' ' || r == '\t' })
		if len(fields) < 2 {
			return nil, chk.Err("%q:%d: need wavelength and value", fn, i+1)
		}
		wl := io.Atof(fields[0])
		if wl <= prev {
			return nil, chk.Err("%q:%d: wavelengths must be strictly increasing", fn, i+1)
		}
		res.Add(wl, io.Atof(fields[1]))
		prev = wl
	}
	if res.Len() < 2 {
		return nil, chk.Err("%q: spectrum needs at least two rows", fn)
	}
	return
}
