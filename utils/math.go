package utils

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// FDGradient approximates the gradient of f at x with second order central differences
func FDGradient(f func(x []float64) float64, x []float64, step float64) (grad []float64) {
	grad = make([]float64, len(x))
	fd.Gradient(grad, f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
	return
}

// RelErr is |a-b| scaled by the larger magnitude, falling back to the absolute difference near zero
func RelErr(a, b float64) float64 {
	var (
		diff  = math.Abs(a - b)
		scale = math.Max(math.Abs(a), math.Abs(b))
	)
	if scale < 1 {
		return diff
	}
	return diff / scale
}
