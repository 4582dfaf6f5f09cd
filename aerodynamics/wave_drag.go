package aerodynamics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/aerostruct/types"
	"github.com/notargets/aerostruct/utils"
)

/*
	Wave drag of a lifting surface from the Korn equation.

	MDD   = ka/cosL - (t/c)/cosL^2 - CL/(10 cosL^3)
	Mcrit = MDD - (0.1/80)^(1/3)
	CDw   = 20 (M - Mcrit)^4,  M > Mcrit

	cosL and t/c are panel area weighted averages over the surface.
*/

var (
	// Mcrit is offset from MDD so that dCDw/dM = 0.1 at MDD
	McritOffset = math.Cbrt(0.1 / 80.)
)

type WaveDrag struct {
	Surface   types.SurfaceConfig
	Ka        float64
	Ny        int       // number of spanwise mesh stations
	ChordMean utils.CSR // (Ny-1) x Ny, nodal chord to panel mean chord
}

type WaveDragPartials struct {
	Mach, CL        float64
	LengthsSpanwise []float64
	Widths          []float64
	Chords          []float64
	ToverC          []float64
}

type WaveDragResult struct {
	CDw        float64
	MDD, Mcrit float64 // Left at zero when wave drag is disabled
	Partials   WaveDragPartials
}

// averages carries the area weighted sums shared by the value and the partials
type averages struct {
	meanChord, areas []float64
	sumArea          float64 // sum(c*w)
	sumCos           float64 // sum(c*w*cosL) = sum(c*w^2/l)
	sumToc           float64 // sum(c*w*t/c)
	avgCos, avgToc   float64
	MDD, Mcrit       float64
}

func NewWaveDrag(ny int, surface types.SurfaceConfig) (wd *WaveDrag, err error) {
	if ny < 2 {
		err = &types.ShapeMismatchError{Input: "mesh stations (ny)", Want: 2, Got: ny}
		return
	}
	wd = &WaveDrag{
		Surface:   surface,
		Ka:        types.AirfoilTechnologyFactor,
		Ny:        ny,
		ChordMean: utils.NewNodeAverage(ny),
	}
	return
}

func (wd *WaveDrag) NumPanels() int { return wd.Ny - 1 }

func (wd *WaveDrag) Compute(fc types.FlightCondition, geom types.PanelGeometry) (CDw float64, err error) {
	var res WaveDragResult
	if res, err = wd.Evaluate(fc, geom); err != nil {
		return
	}
	CDw = res.CDw
	return
}

func (wd *WaveDrag) ComputePartials(fc types.FlightCondition, geom types.PanelGeometry) (p WaveDragPartials, err error) {
	var res WaveDragResult
	if res, err = wd.Evaluate(fc, geom); err != nil {
		return
	}
	p = res.Partials
	return
}

// Evaluate returns the wave drag coefficient together with its gradient.
// All partials are explicitly zero when wave drag is disabled or M <= Mcrit.
func (wd *WaveDrag) Evaluate(fc types.FlightCondition, geom types.PanelGeometry) (res WaveDragResult, err error) {
	if err = wd.validate(fc, geom); err != nil {
		err = fmt.Errorf("wave drag for surface %q: %w", wd.Surface.Name, err)
		return
	}
	res.Partials = wd.zeroPartials()
	if !wd.Surface.WithWave {
		return
	}
	var av averages
	if av, err = wd.average(fc, geom); err != nil {
		res = WaveDragResult{}
		err = fmt.Errorf("wave drag for surface %q: %w", wd.Surface.Name, err)
		return
	}
	res.MDD, res.Mcrit = av.MDD, av.Mcrit
	if !(fc.Mach > av.Mcrit) {
		return
	}
	dM := fc.Mach - av.Mcrit
	res.CDw = 20 * utils.POW(dM, 4)
	wd.partials(fc, geom, av, &res.Partials)
	if wd.Surface.Symmetry {
		res.scale(2)
	}
	return
}

func (wd *WaveDrag) average(fc types.FlightCondition, geom types.PanelGeometry) (av averages, err error) {
	var (
		nP     = wd.NumPanels()
		cosL   = make([]float64, nP)
		w, l   = geom.Widths, geom.LengthsSpanwise
		ka, CL = wd.Ka, fc.CL
	)
	av.meanChord = wd.ChordMean.MulVec(geom.Chords, false)
	av.areas = make([]float64, nP)
	for i := 0; i < nP; i++ {
		cosL[i] = w[i] / l[i]
		av.areas[i] = av.meanChord[i] * w[i]
	}
	if err = types.CheckPositive("cos_sweep", cosL); err != nil {
		return
	}
	av.sumArea = floats.Sum(av.areas)
	if av.sumArea == 0 || math.IsNaN(av.sumArea) {
		err = &types.DomainError{Input: "panel_areas", Index: -1, Value: av.sumArea,
			Reason: "sum of panel areas must be nonzero"}
		return
	}
	av.sumCos = floats.Dot(cosL, av.areas)
	av.sumToc = floats.Dot(geom.ToverC, av.areas)
	av.avgCos = av.sumCos / av.sumArea
	av.avgToc = av.sumToc / av.sumArea
	if !(av.avgCos > 0) {
		err = &types.DomainError{Input: "avg_cos_sweep", Index: -1, Value: av.avgCos,
			Reason: "area weighted cos(sweep) must be positive"}
		return
	}
	av.MDD = ka/av.avgCos - av.avgToc/utils.POW(av.avgCos, 2) - CL/(10*utils.POW(av.avgCos, 3))
	av.Mcrit = av.MDD - McritOffset
	return
}

// partials fills p for the M > Mcrit branch, before any symmetry scaling
func (wd *WaveDrag) partials(fc types.FlightCondition, geom types.PanelGeometry, av averages, p *WaveDragPartials) {
	var (
		nP       = wd.NumPanels()
		w, l     = geom.Widths, geom.LengthsSpanwise
		toc, c   = geom.ToverC, av.meanChord
		A, A2    = av.sumArea, av.sumArea * av.sumArea
		cosL     = av.avgCos
		dCDwdMDD = -80 * utils.POW(fc.Mach-av.Mcrit, 3)
		dMDDdCL  = -1. / (10 * utils.POW(cosL, 3))
		dMDDdavg = (-10*wd.Ka*cosL*cosL + 20*av.avgToc*cosL + 3*fc.CL) / (10 * utils.POW(cosL, 4))
		dMDDdtoc = -1. / (cosL * cosL)
		kCos     = dCDwdMDD * dMDDdavg
		kToc     = dCDwdMDD * dMDDdtoc
		dCDwdc   = make([]float64, nP) // with respect to panel mean chord
	)
	p.Mach = -dCDwdMDD
	p.CL = dCDwdMDD * dMDDdCL
	for i := 0; i < nP; i++ {
		var (
			davgdw = 2*c[i]*w[i]/l[i]/A - c[i]*av.sumCos/A2
			dtocdw = c[i]*toc[i]/A - c[i]*av.sumToc/A2
			davgdl = -c[i] * w[i] * w[i] / (l[i] * l[i]) / A
			davgdc = w[i]*w[i]/l[i]/A - w[i]*av.sumCos/A2
			dtocdc = toc[i]*w[i]/A - w[i]*av.sumToc/A2
		)
		p.Widths[i] = kCos*davgdw + kToc*dtocdw
		p.LengthsSpanwise[i] = kCos * davgdl
		p.ToverC[i] = kToc * av.areas[i] / A
		dCDwdc[i] = kCos*davgdc + kToc*dtocdc
	}
	// Panel mean chords back to the nodes
	copy(p.Chords, wd.ChordMean.MulVec(dCDwdc, true))
}

func (wd *WaveDrag) zeroPartials() WaveDragPartials {
	nP := wd.NumPanels()
	return WaveDragPartials{
		LengthsSpanwise: make([]float64, nP),
		Widths:          make([]float64, nP),
		Chords:          make([]float64, nP+1),
		ToverC:          make([]float64, nP),
	}
}

func (wd *WaveDrag) validate(fc types.FlightCondition, geom types.PanelGeometry) (err error) {
	if err = geom.CheckShape(wd.NumPanels()); err != nil {
		return
	}
	if !wd.Surface.WithWave {
		return
	}
	if err = types.CheckFinite("Mach_number", []float64{fc.Mach}); err != nil {
		return
	}
	if err = types.CheckFinite("CL", []float64{fc.CL}); err != nil {
		return
	}
	for _, in := range []struct {
		name string
		x    []float64
	}{
		{"widths", geom.Widths},
		{"chords", geom.Chords},
		{"t_over_c", geom.ToverC},
	} {
		if err = types.CheckFinite(in.name, in.x); err != nil {
			return
		}
	}
	err = types.CheckPositive("lengths_spanwise", geom.LengthsSpanwise)
	return
}

func (res *WaveDragResult) scale(s float64) {
	res.CDw *= s
	res.Partials.Mach *= s
	res.Partials.CL *= s
	floats.Scale(s, res.Partials.LengthsSpanwise)
	floats.Scale(s, res.Partials.Widths)
	floats.Scale(s, res.Partials.Chords)
	floats.Scale(s, res.Partials.ToverC)
}
