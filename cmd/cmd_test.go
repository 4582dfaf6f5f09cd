package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/aerostruct/types"
)

func writeDeck(t *testing.T, name, contents string) string {
	fileName := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fileName, []byte(contents), 0644))
	return fileName
}

const waveDeck = `
Title: Two panel wing
Surface: wing
WithWave: true
Symmetry: true
Mach: 1.6
CL: 0.33
Widths: [0.2, 0.2]
LengthsSpanwise: [1.0, 2.0]
Chords: [1.0, 1.0, 1.0]
ToverC: [0.1, 0.12]
`

func TestRunWaveDrag(t *testing.T) {
	m := &WaveDragModel{
		InputFile: writeDeck(t, "wing.yaml", waveDeck),
		Check:     true,
		CheckStep: 1.e-6,
		MachMin:   0.5,
		MachMax:   2,
		MachSteps: 4,
	}
	ip, err := processWaveDragInput(m)
	require.NoError(t, err)
	assert.True(t, ip.Symmetry)
	res, err := RunWaveDrag(m, ip)
	require.NoError(t, err)
	assert.Greater(t, res.CDw, 0.)
	assert.Len(t, res.Partials.Chords, 3)

	// Overrides from the command line win over the deck
	noSym, withWave := false, false
	m.Symmetry, m.WithWave = &noSym, &withWave
	ip, err = processWaveDragInput(m)
	require.NoError(t, err)
	assert.False(t, ip.Symmetry)
	res, err = RunWaveDrag(m, ip)
	require.NoError(t, err)
	assert.Equal(t, 0., res.CDw)
}

func TestWaveDragInputErrors(t *testing.T) {
	_, err := processWaveDragInput(&WaveDragModel{})
	require.Error(t, err)

	_, err = processWaveDragInput(&WaveDragModel{InputFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	bad := writeDeck(t, "bad.yaml", `
Surface: wing
WithWave: true
Widths: [0.2, 0.2]
LengthsSpanwise: [1.0]
Chords: [1.0, 1.0, 1.0]
ToverC: [0.1, 0.1]
`)
	_, err = processWaveDragInput(&WaveDragModel{InputFile: bad})
	var sme *types.ShapeMismatchError
	require.True(t, errors.As(err, &sme))
	assert.Equal(t, "lengths_spanwise", sme.Input)
}

func TestRunSpar(t *testing.T) {
	deck := writeDeck(t, "spar.yaml", `
Title: Tapered wing
Mesh:
  - [[0, 0, 0], [0, 1, 0], [0, 2, 0]]
  - [[1, 0, 0], [0.9, 1, 0], [0.8, 2, 0]]
Radius: [0.01, 0.08]
ToverC: [0.12, 0.12]
`)
	ip, err := processSparInput(deck)
	require.NoError(t, err)
	res, err := RunSpar(ip)
	require.NoError(t, err)
	// Panel chords 0.95 and 0.85
	assert.InDelta(t, 0.01-0.12*0.95/2, res.Clearance[0], 1.e-12)
	assert.InDelta(t, 0.08-0.12*0.85/2, res.Clearance[1], 1.e-12)

	_, err = processSparInput("")
	require.Error(t, err)
}

func TestCommands(t *testing.T) {
	rootCmd.SetArgs([]string{"wavedrag", "-I", writeDeck(t, "wing.yaml", waveDeck), "--noWave"})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"wavedrag", "-I", ""})
	require.Error(t, rootCmd.Execute())
}

func TestProfileWrittenOnFailure(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("profile", "false")
		_ = rootCmd.PersistentFlags().Set("profilePath", ".")
	})
	rootCmd.SetArgs([]string{"wavedrag", "-I", "", "--profile", "--profilePath", dir})
	require.Error(t, run())
	assert.Nil(t, prof)
	assert.FileExists(t, filepath.Join(dir, "cpu.pprof"))
	stopProfile()
}

func TestMachSweepFlags(t *testing.T) {
	t.Cleanup(func() { _ = WaveDragCmd.Flags().Set("machSteps", "0") })
	rootCmd.SetArgs([]string{"wavedrag", "-I", writeDeck(t, "wing.yaml", waveDeck),
		"--machMin", "0.5", "--machMax", "2", "--machSteps", "3"})
	require.NoError(t, run())
}
