package structures

import (
	"github.com/notargets/aerostruct/types"
	"github.com/notargets/aerostruct/utils"
)

// Radii returns the airfoil half thickness of each panel, t/c times the panel mean chord over two.
// The mesh and t/c shapes must already be consistent.
func Radii(mesh types.Mesh, toverc []float64) (r []float64) {
	return radii(utils.NewNodeAverage(mesh.Ny), mesh, toverc)
}

func radii(stationMean utils.CSR, mesh types.Mesh, toverc []float64) (r []float64) {
	mean := stationMean.MulVec(mesh.StationChords(), false)
	r = make([]float64, len(mean))
	for i, c := range mean {
		r[i] = toverc[i] * c / 2
	}
	return
}
