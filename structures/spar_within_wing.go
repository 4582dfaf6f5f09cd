package structures

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/aerostruct/types"
	"github.com/notargets/aerostruct/utils"
)

// SparWithinWing constrains each tubular spar element to fit inside the airfoil thickness.
// Clearance entries that are zero or negative mean the spar fits, so the caller
// enforces clearance <= 0.
type SparWithinWing struct {
	Nx, Ny      int
	stationMean utils.CSR
}

type ClearanceResult struct {
	Clearance         []float64
	MaxRadius         []float64
	DClearanceDRadius *mat.DiagDense
}

func NewSparWithinWing(nx, ny int) (sw *SparWithinWing, err error) {
	if nx < 2 {
		err = &types.ShapeMismatchError{Input: "chordwise mesh rows (nx)", Want: 2, Got: nx}
		return
	}
	if ny < 2 {
		err = &types.ShapeMismatchError{Input: "mesh stations (ny)", Want: 2, Got: ny}
		return
	}
	sw = &SparWithinWing{
		Nx:          nx,
		Ny:          ny,
		stationMean: utils.NewNodeAverage(ny),
	}
	return
}

func (sw *SparWithinWing) NumPanels() int { return sw.Ny - 1 }

// MaxRadius is the largest spar radius allowed by the t/c envelope of each panel
func (sw *SparWithinWing) MaxRadius(mesh types.Mesh, toverc []float64) (maxR []float64, err error) {
	if err = sw.checkMesh(mesh); err != nil {
		return
	}
	if err = types.CheckLen("t_over_c", toverc, sw.NumPanels()); err != nil {
		return
	}
	if err = types.CheckFinite("t_over_c", toverc); err != nil {
		return
	}
	if err = types.CheckFinite("mesh", mesh.X); err != nil {
		return
	}
	maxR = radii(sw.stationMean, mesh, toverc)
	return
}

func (sw *SparWithinWing) Compute(mesh types.Mesh, radius, toverc []float64) (clearance []float64, err error) {
	var res ClearanceResult
	if res, err = sw.Evaluate(mesh, radius, toverc); err != nil {
		return
	}
	clearance = res.Clearance
	return
}

// ComputePartials returns the Jacobian of clearance with respect to radius, the identity.
// Mesh sensitivities are not provided. Each call allocates a new matrix.
func (sw *SparWithinWing) ComputePartials() *mat.DiagDense {
	n := sw.NumPanels()
	return mat.NewDiagDense(n, utils.ConstArray(n, 1))
}

func (sw *SparWithinWing) Evaluate(mesh types.Mesh, radius, toverc []float64) (res ClearanceResult, err error) {
	if err = sw.checkRadius(radius); err != nil {
		err = fmt.Errorf("spar within wing: %w", err)
		return
	}
	if res.MaxRadius, err = sw.MaxRadius(mesh, toverc); err != nil {
		err = fmt.Errorf("spar within wing: %w", err)
		return
	}
	res.Clearance = make([]float64, sw.NumPanels())
	for i, r := range radius {
		res.Clearance[i] = r - res.MaxRadius[i]
	}
	res.DClearanceDRadius = sw.ComputePartials()
	return
}

// Satisfied reports whether every spar element fits inside the wing
func Satisfied(clearance []float64) bool {
	for _, c := range clearance {
		if c > 0 {
			return false
		}
	}
	return true
}

func (sw *SparWithinWing) checkMesh(mesh types.Mesh) (err error) {
	nx, ny := mesh.Dims()
	if nx != sw.Nx {
		return &types.ShapeMismatchError{Input: "mesh nx", Want: sw.Nx, Got: nx}
	}
	if ny != sw.Ny {
		return &types.ShapeMismatchError{Input: "mesh ny", Want: sw.Ny, Got: ny}
	}
	return types.CheckLen("mesh", mesh.X, nx*ny*3)
}

func (sw *SparWithinWing) checkRadius(radius []float64) (err error) {
	if err = types.CheckLen("radius", radius, sw.NumPanels()); err != nil {
		return
	}
	return types.CheckFinite("radius", radius)
}
