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
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/aerostruct/InputParameters"
	"github.com/notargets/aerostruct/structures"
	"github.com/notargets/aerostruct/types"
)

// SparCmd represents the spar command
var SparCmd = &cobra.Command{
	Use:   "spar",
	Short: "Spar within wing clearance constraint",
	Long: `
Computes radius - max_radius for each spar element, where max_radius is half the airfoil
thickness from t/c and the mesh chord. All entries <= 0 means the spar fits.

aerostruct spar -I spar.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			inputFile string
			ip        *InputParameters.SparParameters
		)
		if inputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			return
		}
		if ip, err = processSparInput(inputFile); err != nil {
			return
		}
		_, err = RunSpar(ip)
		return
	},
}

func init() {
	rootCmd.AddCommand(SparCmd)
	SparCmd.Flags().StringP("inputFile", "I", "", "YAML file with the mesh, spar radius and t/c")
}

func processSparInput(inputFile string) (ip *InputParameters.SparParameters, err error) {
	var data []byte
	if len(inputFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputFile) in YAML format")
		return
	}
	if data, err = os.ReadFile(inputFile); err != nil {
		return
	}
	ip = &InputParameters.SparParameters{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", inputFile, err)
		return
	}
	if err = ip.Validate(); err != nil {
		err = fmt.Errorf("input deck %s: %w", inputFile, err)
	}
	return
}

func RunSpar(ip *InputParameters.SparParameters) (res structures.ClearanceResult, err error) {
	var (
		sw   *structures.SparWithinWing
		mesh types.Mesh
	)
	ip.Print()
	if mesh, err = ip.GetMesh(); err != nil {
		return
	}
	nx, ny := mesh.Dims()
	if sw, err = structures.NewSparWithinWing(nx, ny); err != nil {
		return
	}
	if res, err = sw.Evaluate(mesh, ip.Radius, ip.ToverC); err != nil {
		return
	}
	fmt.Printf("max radius = %v\n", res.MaxRadius)
	fmt.Printf("spar_within_wing = %v\n", res.Clearance)
	fmt.Printf("d(spar_within_wing)/d(radius) = \n%v\n", mat.Formatted(res.DClearanceDRadius, mat.Squeeze()))
	logger := log.WithFields(log.Fields{"nx": nx, "ny": ny})
	if structures.Satisfied(res.Clearance) {
		logger.Info("spar fits within the wing")
	} else {
		logger.Warn("spar exceeds the airfoil thickness")
	}
	return
}
