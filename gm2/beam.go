// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gm2

import (
	"math"
	"sort"
)

// BeamViewFactor describes how much of a unit beam entering a cell hits
// one slat segment
type BeamViewFactor struct {
	Enclosure  int     // 0 = top slat, 1 = bottom slat
	Segment    int     // segment index within the slat
	Value      float64 // fraction of the entry opening claimed by the segment
	PercentHit float64 // fraction of the segment that is actually struck
}

// BeamGeometry projects a collimated beam through the opening of a
// shading cell bounded by a top and a bottom slat. The cell spans from
// the entry opening at minimum x to the exit opening at maximum x
type BeamGeometry struct {
	slats []*Polyline
}

// AppendPolyline adds one slat (first call: top, second call: bottom)
func (o *BeamGeometry) AppendPolyline(p *Polyline) {
	o.slats = append(o.slats, p)
}

// interval is a span on the entry-opening coordinate with bookkeeping for
// the claiming sweep
type interval struct {
	lo, hi   float64
	dist     float64 // distance proxy along the beam
	enc, seg int
	full     float64 // unclipped projection length
	exit     bool
}

// BeamViewFactors returns the per-segment claims of a unit beam at the
// given profile angle [deg]. fromFront selects entry through the
// minimum-x opening; otherwise the beam enters at maximum x
func (o *BeamGeometry) BeamViewFactors(profileAngle float64, fromFront bool) []BeamViewFactor {
	claims, _ := o.sweep(profileAngle, fromFront)
	return claims
}

// DirectToDirect returns the fraction of the beam leaving through the
// opposite opening without striking a slat
func (o *BeamGeometry) DirectToDirect(profileAngle float64, fromFront bool) float64 {
	_, dtd := o.sweep(profileAngle, fromFront)
	return dtd
}

// sweep performs the nearest-first claiming of the entry opening
func (o *BeamGeometry) sweep(profileAngle float64, fromFront bool) (claims []BeamViewFactor, dtd float64) {
	if len(o.slats) < 2 {
		return nil, 1
	}
	top, bot := o.slats[0], o.slats[1]

	xEntry, xExit := o.openingX(fromFront)
	entryLo, entryHi := o.openingSpan(xEntry)
	opening := entryHi - entryLo
	if opening <= 0 {
		return nil, 0
	}

	pa := profileAngle * math.Pi / 180
	if math.Abs(pa) >= math.Pi/2 {
		return nil, 0
	}
	m := math.Tan(pa)

	// entry coordinate of a ray through p: walk back along the beam to the
	// entry plane; slope is the same for either side because the beam
	// reverses both components
	project := func(p Point) float64 {
		return p.Y + m*math.Abs(p.X-xEntry)
	}
	distOf := func(p Point) float64 {
		return math.Abs(p.X - xEntry)
	}

	var ivs []interval
	addSegs := func(enc int, slat *Polyline) {
		for i := 0; i < slat.Len(); i++ {
			s := slat.Seg(i)
			a, b := project(s.A), project(s.B)
			lo, hi := math.Min(a, b), math.Max(a, b)
			ivs = append(ivs, interval{
				lo: lo, hi: hi,
				dist: 0.5 * (distOf(s.A) + distOf(s.B)),
				enc:  enc, seg: i,
				full: hi - lo,
			})
		}
	}
	addSegs(0, top)
	addSegs(1, bot)

	// the exit opening is claimed last
	exitLo, exitHi := o.openingSpan(xExit)
	exitIv := interval{
		lo: math.Min(project(Point{xExit, exitLo}), project(Point{xExit, exitHi})),
		hi: math.Max(project(Point{xExit, exitLo}), project(Point{xExit, exitHi})),
		dist: math.Abs(xExit - xEntry),
		exit: true,
	}
	exitIv.full = exitIv.hi - exitIv.lo
	ivs = append(ivs, exitIv)

	sort.SliceStable(ivs, func(i, j int) bool {
		if ivs[i].exit != ivs[j].exit {
			return ivs[j].exit
		}
		return ivs[i].dist < ivs[j].dist
	})

	// claimed spans of the entry opening
	var taken [][2]float64
	for _, iv := range ivs {
		lo, hi := math.Max(iv.lo, entryLo), math.Min(iv.hi, entryHi)
		if hi <= lo {
			continue
		}
		got := claim(&taken, lo, hi)
		if got <= 0 {
			continue
		}
		if iv.exit {
			dtd = got / opening
			continue
		}
		bvf := BeamViewFactor{Enclosure: iv.enc, Segment: iv.seg, Value: got / opening}
		if iv.full > 0 {
			bvf.PercentHit = got / iv.full
		}
		claims = append(claims, bvf)
	}
	return
}

// openingX returns entry and exit plane positions
func (o *BeamGeometry) openingX(fromFront bool) (xEntry, xExit float64) {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, slat := range o.slats {
		for _, p := range []Point{slat.FirstPoint(), slat.LastPoint()} {
			xmin = math.Min(xmin, p.X)
			xmax = math.Max(xmax, p.X)
		}
	}
	if fromFront {
		return xmin, xmax
	}
	return xmax, xmin
}

// openingSpan returns the vertical span of the opening at plane x
func (o *BeamGeometry) openingSpan(x float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	const tol = 1e-9
	for _, slat := range o.slats {
		for _, p := range []Point{slat.FirstPoint(), slat.LastPoint()} {
			if math.Abs(p.X-x) < tol {
				lo = math.Min(lo, p.Y)
				hi = math.Max(hi, p.Y)
			}
		}
	}
	return
}

// claim subtracts already taken spans from [lo,hi], records the rest and
// returns the newly claimed length
func claim(taken *[][2]float64, lo, hi float64) (got float64) {
	free := [][2]float64{{lo, hi}}
	for _, t := range *taken {
		var next [][2]float64
		for _, f := range free {
			if t[1] <= f[0] || t[0] >= f[1] {
				next = append(next, f)
				continue
			}
			if t[0] > f[0] {
				next = append(next, [2]float64{f[0], t[0]})
			}
			if t[1] < f[1] {
				next = append(next, [2]float64{t[1], f[1]})
			}
		}
		free = next
	}
	for _, f := range free {
		got += f[1] - f[0]
		*taken = append(*taken, f)
	}
	return
}
