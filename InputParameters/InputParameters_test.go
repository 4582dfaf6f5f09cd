package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/aerostruct/types"
)

func TestWaveDragParameters(t *testing.T) {
	fileInput := []byte(`
Title: "Single panel"
Surface: wing
WithWave: true
Symmetry: false
Mach: 1.6
CL: 0.33
Widths: [0.2]
LengthsSpanwise: [1.0]
Chords: [1.0, 1.0]
ToverC: [0.1]
`)
	var ip WaveDragParameters
	require.NoError(t, ip.Parse(fileInput))
	ip.Print()
	assert.Equal(t, "Single panel", ip.Title)
	assert.Equal(t, types.SurfaceConfig{Name: "wing", WithWave: true}, ip.Surf())
	assert.Equal(t, types.FlightCondition{Mach: 1.6, CL: 0.33}, ip.Flight())
	assert.Equal(t, 2, ip.NumStations())
	assert.Equal(t, []float64{1, 1}, ip.Geometry().Chords)
	require.NoError(t, ip.Validate())

	ip.ToverC = nil
	var sme *types.ShapeMismatchError
	require.True(t, errors.As(ip.Validate(), &sme))
	assert.Equal(t, "t_over_c", sme.Input)

	ip.Chords = []float64{1}
	require.True(t, errors.As(ip.Validate(), &sme))
	assert.Equal(t, "Chords", sme.Input)
}

func TestSparParameters(t *testing.T) {
	fileInput := []byte(`
Title: Tapered wing
Mesh:
  - [[0, 0, 0], [0, 1, 0], [0, 2, 0]]
  - [[1, 0, 0], [0.9, 1, 0], [0.8, 2, 0]]
Radius: [0.04, 0.05]
ToverC: [0.12, 0.12]
`)
	var ip SparParameters
	require.NoError(t, ip.Parse(fileInput))
	ip.Print()
	require.NoError(t, ip.Validate())
	m, err := ip.GetMesh()
	require.NoError(t, err)
	nx, ny := m.Dims()
	assert.Equal(t, 2, nx)
	assert.Equal(t, 3, ny)
	assert.Equal(t, 0.9, m.At(1, 1, 0))

	ip.Radius = []float64{0.1}
	var sme *types.ShapeMismatchError
	require.True(t, errors.As(ip.Validate(), &sme))
	assert.Equal(t, "Radius", sme.Input)

	ip.Mesh = nil
	require.Error(t, ip.Validate())
}
