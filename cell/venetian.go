// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"sync"

	"github.com/cpmech/gofen/bsdf"
	"github.com/cpmech/gofen/gm2"
	"github.com/cpmech/gofen/mdl"
	"github.com/cpmech/gofen/spd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// VenetianDescription holds the meshed enclosure of one venetian cell.
// The enclosure surfaces are indexed canonically: 0 is the exterior
// opening, 1..N the top slat from the exterior inwards, N+1 the interior
// opening, and N+2..2N+1 the bottom slat from the interior outwards
type VenetianDescription struct {
	geom        VenetianGeometry
	top, bottom *gm2.Polyline
	enclosure   *gm2.Polyline
	beam        *gm2.BeamGeometry
	vf          *la.Matrix
}

// NewVenetianDescription validates the geometry and meshes the slats
func NewVenetianDescription(g VenetianGeometry) (o *VenetianDescription, err error) {
	if err = g.Validate(); err != nil {
		return
	}
	o = &VenetianDescription{geom: g}
	o.top = buildSlat(g, g.SlatSpacing, true)
	o.bottom = buildSlat(g, 0, false)

	o.enclosure = new(gm2.Polyline)
	o.enclosure.AppendSegment(gm2.Segment{A: o.bottom.LastPoint(), B: o.top.FirstPoint()})
	o.enclosure.AppendPolyline(o.top)
	o.enclosure.AppendSegment(gm2.Segment{A: o.top.LastPoint(), B: o.bottom.FirstPoint()})
	o.enclosure.AppendPolyline(o.bottom)

	o.beam = new(gm2.BeamGeometry)
	o.beam.AppendPolyline(o.top)
	o.beam.AppendPolyline(o.bottom)
	return
}

// Geometry returns the defining geometry
func (o *VenetianDescription) Geometry() VenetianGeometry {
	return o.geom
}

// BackwardFlowCell returns the sibling cell with the tilt sign flipped
func (o *VenetianDescription) BackwardFlowCell() (res *VenetianDescription, err error) {
	g := o.geom
	g.SlatTiltAngle = -g.SlatTiltAngle
	return NewVenetianDescription(g)
}

// NumberOfSegments returns the enclosure surface count 2N+2
func (o *VenetianDescription) NumberOfSegments() int {
	return 2 + o.top.Len() + o.bottom.Len()
}

// SegmentLength returns the length of enclosure surface i
func (o *VenetianDescription) SegmentLength(i int) float64 {
	return o.enclosure.Seg(i).Length()
}

// ViewFactors returns the enclosure view factor matrix (computed once)
func (o *VenetianDescription) ViewFactors() (vf *la.Matrix, err error) {
	if o.vf == nil {
		o.vf, err = o.enclosure.ViewFactors()
		if err != nil {
			return
		}
	}
	return o.vf, nil
}

// BeamViewFactors projects a unit beam at the given profile angle [deg]
func (o *VenetianDescription) BeamViewFactors(profileAngle float64, side spd.Side) []gm2.BeamViewFactor {
	return o.beam.BeamViewFactors(profileAngle, side == spd.SideFront)
}

// TDirDir returns the direct-to-direct fraction for the direction
func (o *VenetianDescription) TDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	return o.beam.DirectToDirect(-d.ProfileAngle(), side == spd.SideFront)
}

// segmentIrradiance holds the forward and backward irradiance at one
// slat position
type segmentIrradiance struct {
	Ef, Eb float64
}

// beamSegView pairs the entry-opening claim of one enclosure surface
// with the fraction of the surface actually struck
type beamSegView struct {
	viewFactor float64
	percent    float64
}

// venetianEnergy solves the radiosity network of one flow direction of a
// venetian cell for fixed slat optical properties
type venetianEnergy struct {
	desc           *VenetianDescription
	tf, tb, rf, rb float64

	n      int   // half the enclosure surface count
	f, b   []int // front and back side mesh indices into the enclosure
	energy *la.Matrix

	mu       sync.Mutex
	irrCache map[bsdf.BeamDirection][]segmentIrradiance
	radCache map[bsdf.BeamDirection][]float64
}

// newVenetianEnergy assembles the radiosity matrix for one geometry
func newVenetianEnergy(desc *VenetianDescription, tf, tb, rf, rb float64) (o *venetianEnergy, err error) {
	o = &venetianEnergy{
		desc: desc, tf: tf, tb: tb, rf: rf, rb: rb,
		irrCache: make(map[bsdf.BeamDirection][]segmentIrradiance),
		radCache: make(map[bsdf.BeamDirection][]float64),
	}
	o.n = desc.NumberOfSegments() / 2
	o.f = make([]int, o.n)
	o.b = make([]int, o.n)
	for i := 0; i < o.n; i++ {
		o.f[i] = 2*o.n - 1 - i
		o.b[i] = i
	}
	vf, err := desc.ViewFactors()
	if err != nil {
		return nil, err
	}
	o.energy = o.formEnergyMatrix(vf)
	return
}

// formEnergyMatrix builds the 2n x 2n radiosity balance: front-face
// unknowns occupy the first n columns, back-face unknowns the rest
func (o *venetianEnergy) formEnergyMatrix(vf *la.Matrix) (res *la.Matrix) {
	n := o.n
	res = la.NewMatrix(2*n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {

			// upper left
			if i != n-1 {
				v := vf.Get(o.b[i+1], o.f[j])*o.tf + vf.Get(o.f[i], o.f[j])*o.rf
				if i == j {
					v -= 1
				}
				res.Set(j, i, v)
			} else if i == j {
				res.Set(j, i, -1)
			}

			// lower left
			if i != n-1 {
				v := vf.Get(o.b[i+1], o.b[j])*o.tf + vf.Get(o.f[i], o.b[j])*o.rf
				res.Set(j+n, i, v)
			}

			// upper right
			if i != 0 {
				v := vf.Get(o.f[i-1], o.f[j])*o.tb + vf.Get(o.b[i], o.f[j])*o.rb
				res.Set(j, i+n, v)
			}

			// lower right
			if i != 0 {
				v := vf.Get(o.f[i-1], o.b[j])*o.tb + vf.Get(o.b[i], o.b[j])*o.rb
				if i == j {
					v -= 1
				}
				res.Set(j+n, i+n, v)
			} else if i == j {
				res.Set(j+n, i+n, -1)
			}
		}
	}
	return
}

// solve runs the dense solver converting a singular system into an error
func (o *venetianEnergy) solve(rhs la.Vector) (x la.Vector, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("venetian: radiosity system is singular: %v", r)
		}
	}()
	x = la.NewVector(len(rhs))
	la.DenSolve(x, o.energy, rhs, true)
	return
}

// beamVector maps the beam view factors onto enclosure surface indices
// and injects the direct-to-direct exit at the opening of the given side
func (o *venetianEnergy) beamVector(d bsdf.BeamDirection, side spd.Side) (res []beamSegView) {
	pa := d.ProfileAngle()
	if side == spd.SideFront {
		pa = -pa
	}
	bvf := o.desc.BeamViewFactors(pa, side)

	res = make([]beamSegView, 2*o.n)
	for _, v := range bvf {
		var index int
		switch v.Enclosure {
		case 0: // top slat
			index = v.Segment + 1
		case 1: // bottom slat
			index = o.n + 1 + v.Segment
		default:
			chk.Panic("venetian: invalid enclosure index %d", v.Enclosure)
		}
		res[index].viewFactor = v.Value
		res[index].percent = v.PercentHit
	}
	openIndex := o.n
	if side == spd.SideBack {
		openIndex = 0
	}
	res[openIndex].viewFactor = o.desc.TDirDir(side, d)
	return
}

// slatIrradiances solves the beam excitation and wraps the solution into
// per-position forward/backward irradiances (memoised per direction)
func (o *venetianEnergy) slatIrradiances(d bsdf.BeamDirection) (res []segmentIrradiance, err error) {
	o.mu.Lock()
	if cached, ok := o.irrCache[d]; ok {
		o.mu.Unlock()
		return cached, nil
	}
	o.mu.Unlock()

	bvf := o.beamVector(d, spd.SideFront)
	rhs := la.NewVector(2 * o.n)
	for i := 0; i < 2*o.n; i++ {
		var index int
		if i < o.n {
			index = o.f[i]
		} else {
			index = o.b[i-o.n]
		}
		rhs[i] = -bvf[index].viewFactor
	}
	x, err := o.solve(rhs)
	if err != nil {
		return
	}

	res = make([]segmentIrradiance, o.n+1)
	for i := 0; i <= o.n; i++ {
		switch {
		case i == 0:
			res[i] = segmentIrradiance{Ef: 1, Eb: x[o.n]}
		case i == o.n:
			res[i] = segmentIrradiance{Ef: x[i-1], Eb: 0}
		default:
			res[i] = segmentIrradiance{Ef: x[i-1], Eb: x[o.n+i]}
		}
	}

	o.mu.Lock()
	o.irrCache[d] = res
	o.mu.Unlock()
	return
}

// slatRadiances derives the outgoing surface radiances from the
// irradiances (memoised per direction)
func (o *venetianEnergy) slatRadiances(d bsdf.BeamDirection) (res []float64, err error) {
	o.mu.Lock()
	if cached, ok := o.radCache[d]; ok {
		o.mu.Unlock()
		return cached, nil
	}
	o.mu.Unlock()

	irr, err := o.slatIrradiances(d)
	if err != nil {
		return
	}
	res = make([]float64, 2*o.n)
	for i := 0; i < len(irr); i++ {
		switch {
		case i == 0:
			res[o.b[i]] = 1
		case i == len(irr)-1:
			res[o.f[i-1]] = irr[i].Ef
		default:
			res[o.b[i]] = o.tf*irr[i].Ef + o.rb*irr[i].Eb
			res[o.f[i-1]] = o.tb*irr[i].Eb + o.rf*irr[i].Ef
		}
	}

	o.mu.Lock()
	o.radCache[d] = res
	o.mu.Unlock()
	return
}

// TDirDir returns the unscattered through fraction
func (o *venetianEnergy) TDirDir(d bsdf.BeamDirection) float64 {
	return o.desc.TDirDir(spd.SideFront, d)
}

// TDirDif returns the scattered transmittance: the interior opening
// irradiance less the direct-to-direct part
func (o *venetianEnergy) TDirDif(d bsdf.BeamDirection) (res float64, err error) {
	irr, err := o.slatIrradiances(d)
	if err != nil {
		return
	}
	return irr[o.n].Ef - o.TDirDir(d), nil
}

// RDirDif returns the scattered reflectance at the exterior opening
func (o *venetianEnergy) RDirDif(d bsdf.BeamDirection) (res float64, err error) {
	irr, err := o.slatIrradiances(d)
	if err != nil {
		return
	}
	return irr[0].Eb, nil
}

// dirOut sums the slat radiances towards one outgoing direction leaving
// through the opening of the given side
func (o *venetianEnergy) dirOut(in, out bsdf.BeamDirection, side spd.Side) (res float64, err error) {
	rad, err := o.slatRadiances(in)
	if err != nil {
		return
	}
	bvf := o.beamVector(out, side)

	// beam-to-beam energy is excluded: the walk starts after the opening
	for i := 1; i < len(rad); i++ {
		if bvf[i].viewFactor == 0 {
			continue
		}
		res += rad[i] * bvf[i].percent * bvf[i].viewFactor / o.desc.SegmentLength(i)
	}
	return res * o.desc.SegmentLength(o.n), nil
}

// TDirOut returns the direction resolved scattered transmittance
func (o *venetianEnergy) TDirOut(in, out bsdf.BeamDirection) (res float64, err error) {
	return o.dirOut(in, out, spd.SideBack)
}

// RDirOut returns the direction resolved scattered reflectance
func (o *venetianEnergy) RDirOut(in, out bsdf.BeamDirection) (res float64, err error) {
	return o.dirOut(in, out, spd.SideFront)
}

// diffuseVector builds the excitation of a uniformly lit exterior opening
func (o *venetianEnergy) diffuseVector() (rhs la.Vector, err error) {
	vf, err := o.desc.ViewFactors()
	if err != nil {
		return
	}
	rhs = la.NewVector(2 * o.n)
	for i := 0; i < o.n; i++ {
		rhs[i] = -vf.Get(o.b[0], o.f[i])
		rhs[i+o.n] = -vf.Get(o.b[0], o.b[i])
	}
	return
}

// TDifDif returns the diffuse-to-diffuse transmittance
func (o *venetianEnergy) TDifDif() (res float64, err error) {
	rhs, err := o.diffuseVector()
	if err != nil {
		return
	}
	x, err := o.solve(rhs)
	if err != nil {
		return
	}
	return x[o.n-1], nil
}

// RDifDif returns the diffuse-to-diffuse reflectance
func (o *venetianEnergy) RDifDif() (res float64, err error) {
	rhs, err := o.diffuseVector()
	if err != nil {
		return
	}
	x, err := o.solve(rhs)
	if err != nil {
		return
	}
	return x[o.n], nil
}

// Venetian is the venetian blind cell: forward and backward flow
// radiosity networks per material state
type Venetian struct {
	base
	desc     *VenetianDescription
	backDesc *VenetianDescription
	total    [2]*venetianEnergy
	band     [][2]*venetianEnergy
}

// NewVenetian creates a venetian cell; symmetric reuses the forward
// geometry for the backward flow
func NewVenetian(mat mdl.Material, g VenetianGeometry, rotation float64, symmetric bool) (o *Venetian, err error) {
	desc, err := NewVenetianDescription(g)
	if err != nil {
		return
	}
	backDesc := desc
	if !symmetric {
		backDesc, err = desc.BackwardFlowCell()
		if err != nil {
			return
		}
	}
	o = &Venetian{base: base{mat: mat, rotation: rotation}, desc: desc, backDesc: backDesc}

	o.total, err = o.makePair(
		mat.Property(spd.PropT, spd.SideFront, 0),
		mat.Property(spd.PropT, spd.SideBack, 0),
		mat.Property(spd.PropR, spd.SideFront, 0),
		mat.Property(spd.PropR, spd.SideBack, 0))
	if err != nil {
		return
	}
	err = o.rebuildBand()
	return
}

// makePair builds the forward and backward flow networks for one set of
// slat properties
func (o *Venetian) makePair(tf, tb, rf, rb float64) (pair [2]*venetianEnergy, err error) {
	if pair[spd.SideFront], err = newVenetianEnergy(o.desc, tf, tb, rf, rb); err != nil {
		return
	}
	pair[spd.SideBack], err = newVenetianEnergy(o.backDesc, tf, tb, rf, rb)
	return
}

// rebuildBand recreates the per-wavelength networks on the current grid
func (o *Venetian) rebuildBand() (err error) {
	n := len(o.Wavelengths())
	o.band = make([][2]*venetianEnergy, n)
	for i := range o.band {
		o.band[i], err = o.makePair(
			o.matProp(i, spd.PropT, spd.SideFront, 0),
			o.matProp(i, spd.PropT, spd.SideBack, 0),
			o.matProp(i, spd.PropR, spd.SideFront, 0),
			o.matProp(i, spd.PropR, spd.SideBack, 0))
		if err != nil {
			return
		}
	}
	return
}

// SetBandWavelengths rebinds the band grid and rebuilds the networks
func (o *Venetian) SetBandWavelengths(wls []float64) (err error) {
	if err = o.base.SetBandWavelengths(wls); err != nil {
		return
	}
	return o.rebuildBand()
}

// Description returns the forward flow geometry
func (o *Venetian) Description() *VenetianDescription {
	return o.desc
}

// View returns the cell view at one material state
func (o *Venetian) View(wl int) bsdf.CellView {
	return &venetianView{cell: o, wl: wl}
}

type venetianView struct {
	cell *Venetian
	wl   int
}

func (o *venetianView) energy(side spd.Side) *venetianEnergy {
	if o.wl == bsdf.TotalBand {
		return o.cell.total[side]
	}
	return o.cell.band[o.wl][side]
}

func (o *venetianView) TDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	return o.energy(side).TDirDir(o.cell.rotate(d))
}

func (o *venetianView) RDirDir(side spd.Side, d bsdf.BeamDirection) float64 {
	return 0
}

func (o *venetianView) TDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	res, err := o.energy(side).TDirDif(o.cell.rotate(d))
	if err != nil {
		chk.Panic("%v", err)
	}
	return res
}

func (o *venetianView) RDirDif(side spd.Side, d bsdf.BeamDirection) float64 {
	res, err := o.energy(side).RDirDif(o.cell.rotate(d))
	if err != nil {
		chk.Panic("%v", err)
	}
	return res
}

func (o *venetianView) TDifDif(side spd.Side) float64 {
	res, err := o.energy(side).TDifDif()
	if err != nil {
		chk.Panic("%v", err)
	}
	return res
}

func (o *venetianView) RDifDif(side spd.Side) float64 {
	res, err := o.energy(side).RDifDif()
	if err != nil {
		chk.Panic("%v", err)
	}
	return res
}

func (o *venetianView) TDirOut(side spd.Side, in, out bsdf.BeamDirection) float64 {
	res, err := o.energy(side).TDirOut(o.cell.rotate(in), o.cell.rotate(out))
	if err != nil {
		chk.Panic("%v", err)
	}
	return res
}

func (o *venetianView) RDirOut(side spd.Side, in, out bsdf.BeamDirection) float64 {
	res, err := o.energy(side).RDirOut(o.cell.rotate(in), o.cell.rotate(out))
	if err != nil {
		chk.Panic("%v", err)
	}
	return res
}
