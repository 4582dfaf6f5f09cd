/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/aerostruct/InputParameters"
	"github.com/notargets/aerostruct/aerodynamics"
)

type WaveDragModel struct {
	InputFile          string
	Check              bool
	CheckStep          float64
	MachMin, MachMax   float64
	MachSteps          int
	Symmetry, WithWave *bool // overrides for the input deck when set
}

// WaveDragCmd represents the wavedrag command
var WaveDragCmd = &cobra.Command{
	Use:   "wavedrag",
	Short: "Wave drag coefficient and its derivatives for one lifting surface",
	Long: `
Computes CDw from the Korn equation using area weighted sweep and t/c, along with the
analytic partials with respect to Mach, CL, lengths_spanwise, widths, chords and t/c.

aerostruct wavedrag -I wing.yaml --check`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			m  = &WaveDragModel{}
			ip *InputParameters.WaveDragParameters
		)
		if m.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			return
		}
		m.Check, _ = cmd.Flags().GetBool("check")
		m.CheckStep = viper.GetFloat64("wavedrag.checkStep")
		m.MachMin, _ = cmd.Flags().GetFloat64("machMin")
		m.MachMax, _ = cmd.Flags().GetFloat64("machMax")
		m.MachSteps, _ = cmd.Flags().GetInt("machSteps")
		if cmd.Flags().Changed("symmetry") {
			sym, _ := cmd.Flags().GetBool("symmetry")
			m.Symmetry = &sym
		}
		if cmd.Flags().Changed("noWave") {
			noWave, _ := cmd.Flags().GetBool("noWave")
			withWave := !noWave
			m.WithWave = &withWave
		}
		if ip, err = processWaveDragInput(m); err != nil {
			return
		}
		_, err = RunWaveDrag(m, ip)
		return
	},
}

func init() {
	rootCmd.AddCommand(WaveDragCmd)
	WaveDragCmd.Flags().StringP("inputFile", "I", "", "YAML file with the surface, flight condition and panel geometry")
	WaveDragCmd.Flags().BoolP("check", "c", false, "compare analytic partials against central finite differences")
	WaveDragCmd.Flags().Float64("checkStep", 1.e-6, "finite difference step for --check")
	WaveDragCmd.Flags().Float64("machMin", 0, "start of a Mach sweep (drag rise), disabled when machSteps is 0")
	WaveDragCmd.Flags().Float64("machMax", 0, "end of a Mach sweep")
	WaveDragCmd.Flags().Int("machSteps", 0, "number of Mach numbers in the sweep")
	WaveDragCmd.Flags().Bool("symmetry", false, "override the Symmetry flag of the input deck")
	WaveDragCmd.Flags().Bool("noWave", false, "disable wave drag regardless of the input deck")
	_ = viper.BindPFlag("wavedrag.checkStep", WaveDragCmd.Flags().Lookup("checkStep"))
}

func processWaveDragInput(m *WaveDragModel) (ip *InputParameters.WaveDragParameters, err error) {
	var data []byte
	if len(m.InputFile) == 0 {
		exampleFile := `
########################################
Title: "Single panel"
Surface: wing
WithWave: true
Symmetry: false
Mach: 1.6
CL: 0.33
Widths: [0.2]
LengthsSpanwise: [1.0]
Chords: [1.0, 1.0] # one per mesh station
ToverC: [0.1]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputFile) in YAML format")
		return
	}
	if data, err = os.ReadFile(m.InputFile); err != nil {
		return
	}
	ip = &InputParameters.WaveDragParameters{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", m.InputFile, err)
		return
	}
	if m.Symmetry != nil {
		ip.Symmetry = *m.Symmetry
	}
	if m.WithWave != nil {
		ip.WithWave = *m.WithWave
	}
	if err = ip.Validate(); err != nil {
		err = fmt.Errorf("input deck %s: %w", m.InputFile, err)
	}
	return
}

func RunWaveDrag(m *WaveDragModel, ip *InputParameters.WaveDragParameters) (res aerodynamics.WaveDragResult, err error) {
	var (
		wd     *aerodynamics.WaveDrag
		logger = log.WithFields(log.Fields{
			"surface": ip.Surface,
			"panels":  ip.NumStations() - 1,
		})
	)
	ip.Print()
	logger.Debug(ip.Surf().String())
	if wd, err = aerodynamics.NewWaveDrag(ip.NumStations(), ip.Surf()); err != nil {
		return
	}
	if res, err = wd.Evaluate(ip.Flight(), ip.Geometry()); err != nil {
		return
	}
	logger.WithFields(log.Fields{"MDD": res.MDD, "Mcrit": res.Mcrit}).Debug("evaluated wave drag")
	fmt.Printf("CDw = %12.6e, MDD = %8.5f, Mcrit = %8.5f\n", res.CDw, res.MDD, res.Mcrit)
	fmt.Printf("dCDw/dMach = %12.6e\n", res.Partials.Mach)
	fmt.Printf("dCDw/dCL = %12.6e\n", res.Partials.CL)
	fmt.Printf("dCDw/dlengths_spanwise = %v\n", res.Partials.LengthsSpanwise)
	fmt.Printf("dCDw/dwidths = %v\n", res.Partials.Widths)
	fmt.Printf("dCDw/dchords = %v\n", res.Partials.Chords)
	fmt.Printf("dCDw/dt_over_c = %v\n", res.Partials.ToverC)

	if m.Check {
		var pc aerodynamics.PartialsCheck
		if pc, err = wd.CheckPartials(ip.Flight(), ip.Geometry(), m.CheckStep); err != nil {
			return
		}
		pc.Print()
		logger.WithField("maxRel", pc.MaxRel()).Info("checked partials")
	}

	if m.MachSteps > 0 {
		var (
			machs = aerodynamics.MachRange(m.MachMin, m.MachMax, m.MachSteps)
			sweep []aerodynamics.WaveDragResult
		)
		if sweep, err = wd.DragRise(ip.Geometry(), ip.CL, machs); err != nil {
			return
		}
		fmt.Printf("%8s, %14s\n", "Mach", "CDw")
		for i, r := range sweep {
			fmt.Printf("%8.4f, %14.6e\n", machs[i], r.CDw)
		}
	}
	return
}
