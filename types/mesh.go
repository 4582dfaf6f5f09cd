package types

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Mesh stores the nodal coordinates of a lifting surface, shaped [nx, ny, 3].
// The i index runs chordwise from the leading edge, j runs spanwise.
type Mesh struct {
	Nx, Ny int
	X      []float64 // row major: ((i*Ny)+j)*3 + k
}

func NewMesh(nx, ny int, x []float64) (m Mesh, err error) {
	if nx < 1 || ny < 1 {
		err = fmt.Errorf("mesh dimensions must be positive: nx, ny = %d, %d", nx, ny)
		return
	}
	if x == nil {
		x = make([]float64, nx*ny*3)
	}
	if err = CheckLen("mesh", x, nx*ny*3); err != nil {
		return
	}
	m = Mesh{Nx: nx, Ny: ny, X: x}
	return
}

// NewMeshFromNodes builds a mesh from nested [nx][ny][3] coordinates, as read from an input deck
func NewMeshFromNodes(nodes [][][3]float64) (m Mesh, err error) {
	var (
		nx = len(nodes)
		ny int
	)
	if nx == 0 {
		err = fmt.Errorf("mesh has no chordwise rows")
		return
	}
	ny = len(nodes[0])
	if m, err = NewMesh(nx, ny, nil); err != nil {
		return
	}
	for i, row := range nodes {
		if len(row) != ny {
			err = &ShapeMismatchError{Input: fmt.Sprintf("mesh row %d", i), Want: ny, Got: len(row)}
			return
		}
		for j, pt := range row {
			m.Set(i, j, pt)
		}
	}
	return
}

func (m Mesh) Dims() (nx, ny int) { return m.Nx, m.Ny }

func (m Mesh) At(i, j, k int) float64 { return m.X[(i*m.Ny+j)*3+k] }

func (m Mesh) Node(i, j int) (pt [3]float64) {
	copy(pt[:], m.X[(i*m.Ny+j)*3:(i*m.Ny+j)*3+3])
	return
}

func (m Mesh) Set(i, j int, pt [3]float64) {
	copy(m.X[(i*m.Ny+j)*3:], pt[:])
}

// StationChords returns the leading edge to trailing edge distance at each spanwise station
func (m Mesh) StationChords() (chords []float64) {
	chords = make([]float64, m.Ny)
	for j := 0; j < m.Ny; j++ {
		le, te := m.Node(0, j), m.Node(m.Nx-1, j)
		chords[j] = floats.Distance(te[:], le[:], 2)
	}
	return
}
