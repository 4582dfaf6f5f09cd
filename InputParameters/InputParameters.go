package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/aerostruct/types"
)

// Parameters obtained from the YAML input file for the wave drag of one lifting surface
type WaveDragParameters struct {
	Title           string    `yaml:"Title"`
	Surface         string    `yaml:"Surface"`
	WithWave        bool      `yaml:"WithWave"`
	Symmetry        bool      `yaml:"Symmetry"`
	Mach            float64   `yaml:"Mach"`
	CL              float64   `yaml:"CL"`
	Widths          []float64 `yaml:"Widths"`
	LengthsSpanwise []float64 `yaml:"LengthsSpanwise"`
	Chords          []float64 `yaml:"Chords"` // One per mesh station
	ToverC          []float64 `yaml:"ToverC"`
}

func (ip *WaveDragParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *WaveDragParameters) Surf() types.SurfaceConfig {
	return types.SurfaceConfig{Name: ip.Surface, WithWave: ip.WithWave, Symmetry: ip.Symmetry}
}

func (ip *WaveDragParameters) Flight() types.FlightCondition {
	return types.FlightCondition{Mach: ip.Mach, CL: ip.CL}
}

func (ip *WaveDragParameters) Geometry() types.PanelGeometry {
	return types.PanelGeometry{
		Widths:          ip.Widths,
		LengthsSpanwise: ip.LengthsSpanwise,
		Chords:          ip.Chords,
		ToverC:          ip.ToverC,
	}
}

// NumStations is the spanwise node count implied by the chord array
func (ip *WaveDragParameters) NumStations() int { return len(ip.Chords) }

func (ip *WaveDragParameters) Validate() (err error) {
	if len(ip.Chords) < 2 {
		return &types.ShapeMismatchError{Input: "Chords", Want: 2, Got: len(ip.Chords)}
	}
	return ip.Geometry().CheckShape(len(ip.Chords) - 1)
}

func (ip *WaveDragParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Surface\n", ip.Surface)
	fmt.Printf("%v\t\t\t= WithWave\n", ip.WithWave)
	fmt.Printf("%v\t\t\t= Symmetry\n", ip.Symmetry)
	fmt.Printf("%8.5f\t\t= Mach\n", ip.Mach)
	fmt.Printf("%8.5f\t\t= CL\n", ip.CL)
	fmt.Printf("[%d]\t\t\t= Panels\n", len(ip.Widths))
	fmt.Printf("Widths = %v\n", ip.Widths)
	fmt.Printf("LengthsSpanwise = %v\n", ip.LengthsSpanwise)
	fmt.Printf("Chords = %v\n", ip.Chords)
	fmt.Printf("ToverC = %v\n", ip.ToverC)
}

// Parameters obtained from the YAML input file for the spar clearance constraint
type SparParameters struct {
	Title  string         `yaml:"Title"`
	Mesh   [][][3]float64 `yaml:"Mesh"` // [nx][ny][3], leading edge row first
	Radius []float64      `yaml:"Radius"`
	ToverC []float64      `yaml:"ToverC"`
}

func (ip *SparParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *SparParameters) GetMesh() (types.Mesh, error) {
	return types.NewMeshFromNodes(ip.Mesh)
}

func (ip *SparParameters) Validate() (err error) {
	var m types.Mesh
	if m, err = ip.GetMesh(); err != nil {
		return
	}
	_, ny := m.Dims()
	if err = types.CheckLen("Radius", ip.Radius, ny-1); err != nil {
		return
	}
	return types.CheckLen("ToverC", ip.ToverC, ny-1)
}

func (ip *SparParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	ny := 0
	if len(ip.Mesh) != 0 {
		ny = len(ip.Mesh[0])
	}
	fmt.Printf("[%d, %d]\t\t\t= Mesh nx, ny\n", len(ip.Mesh), ny)
	fmt.Printf("Radius = %v\n", ip.Radius)
	fmt.Printf("ToverC = %v\n", ip.ToverC)
}
