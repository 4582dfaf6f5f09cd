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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	prof    interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aerostruct",
	Short: "Wave drag and spar clearance evaluators for aerostructural optimization",
	Long: `
Evaluates the wave drag coefficient of a lifting surface (Korn equation) and the
spar within wing clearance constraint, together with their analytic derivatives.

aerostruct wavedrag -I wing.yaml
aerostruct spar -I spar.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
		if viper.GetBool("profile") {
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath(viper.GetString("profilePath")), profile.Quiet)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// run executes the command tree, the CPU profile is written whether or not the command fails
func run() (err error) {
	defer stopProfile()
	err = rootCmd.Execute()
	return
}

func stopProfile() {
	if prof != nil {
		prof.Stop()
		prof = nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.aerostruct.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile (cpu.pprof)")
	rootCmd.PersistentFlags().String("profilePath", ".", "directory for the CPU profile")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("profilePath", rootCmd.PersistentFlags().Lookup("profilePath"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".aerostruct" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".aerostruct")
	}

	viper.SetEnvPrefix("aerostruct")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}
