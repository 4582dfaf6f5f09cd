package types

import "fmt"

// Airfoil technology factor (Korn equation), NASA supercritical section
const AirfoilTechnologyFactor = 0.95

type SurfaceConfig struct {
	Name     string
	WithWave bool
	Symmetry bool
}

func (sc SurfaceConfig) String() string {
	return fmt.Sprintf("%s: with_wave = %v, symmetry = %v", sc.Name, sc.WithWave, sc.Symmetry)
}

type FlightCondition struct {
	Mach, CL float64
}

// PanelGeometry holds the per panel quantities produced by the VLM geometry stage.
// Chords are nodal, so there is one more chord than there are panels.
type PanelGeometry struct {
	Widths          []float64 // numerator of cos(sweep)
	LengthsSpanwise []float64 // quarter chord spanwise length, denominator of cos(sweep)
	Chords          []float64 // one per mesh station
	ToverC          []float64 // streamwise thickness to chord
}

func (pg PanelGeometry) NumPanels() int { return len(pg.Widths) }

func (pg PanelGeometry) Copy() PanelGeometry {
	cp := func(x []float64) []float64 {
		if x == nil {
			return nil
		}
		return append([]float64(nil), x...)
	}
	return PanelGeometry{
		Widths:          cp(pg.Widths),
		LengthsSpanwise: cp(pg.LengthsSpanwise),
		Chords:          cp(pg.Chords),
		ToverC:          cp(pg.ToverC),
	}
}

// CheckShape verifies all arrays against a panel count fixed at setup time
func (pg PanelGeometry) CheckShape(nPanels int) (err error) {
	if err = CheckLen("widths", pg.Widths, nPanels); err != nil {
		return
	}
	if err = CheckLen("lengths_spanwise", pg.LengthsSpanwise, nPanels); err != nil {
		return
	}
	if err = CheckLen("chords", pg.Chords, nPanels+1); err != nil {
		return
	}
	err = CheckLen("t_over_c", pg.ToverC, nPanels)
	return
}

func CheckLen(name string, x []float64, want int) error {
	if len(x) != want {
		return &ShapeMismatchError{Input: name, Want: want, Got: len(x)}
	}
	return nil
}
