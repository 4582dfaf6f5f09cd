package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNodeAverage(t *testing.T) {
	A := NewNodeAverage(4)
	nr, nc := A.Dims()
	require.Equal(t, 3, nr)
	require.Equal(t, 4, nc)
	assert.Equal(t, 6, A.NNZ())
	assert.True(t, A.IsReadOnly())
	assert.Equal(t, "node average", A.Name())
	raw := A.RawMatrix()
	assert.Equal(t, []int{0, 2, 4, 6}, raw.Indptr)
	assert.ElementsMatch(t, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, raw.Data)
	fmt.Printf("A = \n%v\n", mat.Formatted(A, mat.Squeeze()))
	/*
		⎡0.5  0.5    0    0⎤
		⎢  0  0.5  0.5    0⎥
		⎣  0    0  0.5  0.5⎦
	*/
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			switch j - i {
			case 0, 1:
				assert.Equal(t, 0.5, A.At(i, j))
			default:
				assert.Equal(t, 0., A.At(i, j))
			}
		}
	}
	// Forward: panel means
	mean := A.MulVec([]float64{1, 3, 5, 9}, false)
	assert.Equal(t, []float64{2, 4, 7}, mean)
	// Transpose: scatter panel values back to the nodes
	nodal := A.MulVec([]float64{2, 4, 6}, true)
	assert.Equal(t, []float64{1, 3, 5, 3}, nodal)
	// Repeated products must not accumulate
	nodal = A.MulVec([]float64{2, 4, 6}, true)
	assert.Equal(t, []float64{1, 3, 5, 3}, nodal)

	assert.Panics(t, func() { A.MulVec([]float64{1, 2}, false) })
}

func TestBandOperator(t *testing.T) {
	B := NewBandOperator(3, 3, []int{-1, 0, 1}, []float64{-1, 2, -1})
	assert.Equal(t, 7, B.NNZ())
	assert.False(t, B.IsReadOnly())
	assert.Equal(t, 2., B.At(1, 1))
	assert.Equal(t, -1., B.At(2, 1))
	assert.Equal(t, 0., B.At(2, 0))
	assert.Equal(t, []float64{0, 0, 4}, B.MulVec([]float64{1, 2, 3}, false))

	D := NewDOK(2, 2)
	D.readOnly = true
	assert.Panics(t, func() { D.Set(0, 0, 1) })
	assert.Panics(t, func() { NewBandOperator(2, 2, []int{0}, []float64{1, 2}) })
}
