package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) DOK {
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:        m.M.ToCSR(),
		readOnly: m.readOnly,
		name:     m.name,
	}
}

type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
func (m CSR) NNZ() int                      { return m.M.NNZ() }
func (m CSR) Name() string                  { return m.name }
func (m CSR) IsReadOnly() bool              { return m.readOnly }

func (m CSR) SetReadOnly(name ...string) CSR {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return m
}

// MulVec returns A*x, or A^T*x when trans is set, in a newly allocated slice
func (m CSR) MulVec(x []float64, trans bool) (y []float64) {
	var (
		nr, nc = m.Dims()
		nIn    = nc
		nOut   = nr
	)
	if trans {
		nIn, nOut = nr, nc
	}
	if len(x) != nIn {
		err := fmt.Errorf("dimension mismatch in MulVec for \"%v\": len(x) = %d, want %d", m.name, len(x), nIn)
		panic(err)
	}
	// MulVecTo accumulates into dst
	y = make([]float64, nOut)
	m.M.MulVecTo(y, trans, x)
	return
}

// NewBandOperator builds an nr x nc operator with a constant value on each of the listed diagonals.
// Offset 0 is the main diagonal, +1 the superdiagonal.
func NewBandOperator(nr, nc int, offsets []int, vals []float64) (R CSR) {
	if len(offsets) != len(vals) {
		panic(fmt.Errorf("band operator needs one value per diagonal: %d offsets, %d values",
			len(offsets), len(vals)))
	}
	D := NewDOK(nr, nc)
	for i := 0; i < nr; i++ {
		for n, off := range offsets {
			j := i + off
			if j < 0 || j >= nc {
				continue
			}
			D.Set(i, j, vals[n])
		}
	}
	R = D.ToCSR()
	return
}

// NewNodeAverage returns the (nNodes-1) x nNodes operator mapping nodal values to the mean of each adjacent pair
func NewNodeAverage(nNodes int) (R CSR) {
	R = NewBandOperator(nNodes-1, nNodes, []int{0, 1}, []float64{0.5, 0.5})
	return R.SetReadOnly("node average")
}
