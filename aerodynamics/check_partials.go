package aerodynamics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/aerostruct/types"
	"github.com/notargets/aerostruct/utils"
)

// PartialCheck compares one analytic partial block against central finite differences
type PartialCheck struct {
	Wrt            string
	Analytic, FD   []float64
	MaxAbs, MaxRel float64
}

type PartialsCheck []PartialCheck

func (pc PartialsCheck) MaxRel() (maxRel float64) {
	for _, c := range pc {
		maxRel = math.Max(maxRel, c.MaxRel)
	}
	return
}

func (pc PartialsCheck) Print() {
	for _, c := range pc {
		fmt.Printf("CDw wrt %-16s max abs err = %10.4e, max rel err = %10.4e\n", c.Wrt, c.MaxAbs, c.MaxRel)
	}
}

// CheckPartials perturbs each input of the wave drag evaluation in turn and compares the
// resulting central differences with the analytic gradient
func (wd *WaveDrag) CheckPartials(fc types.FlightCondition, geom types.PanelGeometry, step float64) (pc PartialsCheck, err error) {
	var (
		res     WaveDragResult
		evalErr error
	)
	if res, err = wd.Evaluate(fc, geom); err != nil {
		return
	}
	// f evaluates CDw with one input block replaced by x
	block := func(set func(fc *types.FlightCondition, g *types.PanelGeometry, x []float64)) func([]float64) float64 {
		return func(x []float64) float64 {
			var (
				fcP   = fc
				geomP = geom.Copy()
			)
			set(&fcP, &geomP, x)
			CDw, err := wd.Compute(fcP, geomP)
			if err != nil && evalErr == nil {
				evalErr = err
			}
			return CDw
		}
	}
	blocks := []struct {
		wrt      string
		x0       []float64
		analytic []float64
		set      func(fc *types.FlightCondition, g *types.PanelGeometry, x []float64)
	}{
		{"Mach_number", []float64{fc.Mach}, []float64{res.Partials.Mach},
			func(fc *types.FlightCondition, _ *types.PanelGeometry, x []float64) { fc.Mach = x[0] }},
		{"CL", []float64{fc.CL}, []float64{res.Partials.CL},
			func(fc *types.FlightCondition, _ *types.PanelGeometry, x []float64) { fc.CL = x[0] }},
		{"lengths_spanwise", geom.LengthsSpanwise, res.Partials.LengthsSpanwise,
			func(_ *types.FlightCondition, g *types.PanelGeometry, x []float64) { g.LengthsSpanwise = x }},
		{"widths", geom.Widths, res.Partials.Widths,
			func(_ *types.FlightCondition, g *types.PanelGeometry, x []float64) { g.Widths = x }},
		{"chords", geom.Chords, res.Partials.Chords,
			func(_ *types.FlightCondition, g *types.PanelGeometry, x []float64) { g.Chords = x }},
		{"t_over_c", geom.ToverC, res.Partials.ToverC,
			func(_ *types.FlightCondition, g *types.PanelGeometry, x []float64) { g.ToverC = x }},
	}
	for _, b := range blocks {
		x0 := make([]float64, len(b.x0))
		copy(x0, b.x0)
		fdGrad := utils.FDGradient(block(b.set), x0, step)
		if evalErr != nil {
			err = fmt.Errorf("checking partials wrt %s: %w", b.wrt, evalErr)
			return
		}
		c := PartialCheck{Wrt: b.wrt, Analytic: b.analytic, FD: fdGrad}
		for i := range fdGrad {
			c.MaxAbs = math.Max(c.MaxAbs, math.Abs(fdGrad[i]-b.analytic[i]))
			c.MaxRel = math.Max(c.MaxRel, utils.RelErr(fdGrad[i], b.analytic[i]))
		}
		pc = append(pc, c)
	}
	return
}

// DragRise evaluates the wave drag over a range of Mach numbers at fixed CL
func (wd *WaveDrag) DragRise(geom types.PanelGeometry, CL float64, machs []float64) (res []WaveDragResult, err error) {
	res = make([]WaveDragResult, len(machs))
	for i, M := range machs {
		if res[i], err = wd.Evaluate(types.FlightCondition{Mach: M, CL: CL}, geom); err != nil {
			res = nil
			return
		}
	}
	return
}

// MachRange returns n evenly spaced Mach numbers from min to max inclusive
func MachRange(min, max float64, n int) (machs []float64) {
	if n < 2 {
		return []float64{min}
	}
	return floats.Span(make([]float64, n), min, max)
}
