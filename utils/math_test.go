package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	for p := -10; p <= 10; p++ {
		assert.InDelta(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1.e-12)
	}
	assert.Equal(t, []float64{2, 2, 2}, ConstArray(3, 2))
}

func TestFDGradient(t *testing.T) {
	f := func(x []float64) float64 {
		return x[0]*x[0]*x[1] + math.Sin(x[1])
	}
	x := []float64{1.5, 0.3}
	grad := FDGradient(f, x, 1.e-6)
	assert.InDelta(t, 2*1.5*0.3, grad[0], 1.e-6)
	assert.InDelta(t, 1.5*1.5+math.Cos(0.3), grad[1], 1.e-6)
	// x is left unchanged
	assert.Equal(t, []float64{1.5, 0.3}, x)

	assert.Equal(t, 0.5, RelErr(0.5, 1))
	assert.InDelta(t, 0.1, RelErr(100, 90), 1.e-12)
}
