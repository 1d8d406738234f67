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
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gonavier/InputParameters"
	"github.com/notargets/gonavier/mesh"
	"github.com/notargets/gonavier/solver"
	"github.com/notargets/gonavier/utils"
)

type Model3D struct {
	ICFile  string
	Profile bool
}

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Three dimensional solver on a box with a sea floor",
	Long: `Three dimensional solver on a box with a sea floor, open or walled sides
and an optional lid driven top layer. Flags override the input file, which
overrides the built in still water defaults.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		m3d := &Model3D{
			ICFile:  viper.GetString("inputConditionsFile"),
			Profile: viper.GetBool("profile"),
		}
		ip, err := processInput(m3d)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if m3d.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		ip.Print()
		if _, _, err = Run3D(ip, logrus.StandardLogger()); err != nil {
			logrus.WithError(err).Error("run failed")
			os.Exit(1)
		}
	},
}

func processInput(m3d *Model3D) (ip *InputParameters.InputParameters3D, err error) {
	ip = InputParameters.NewInputParameters3D()
	if len(m3d.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(m3d.ICFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return
		}
	}
	if viper.IsSet("steps") {
		ip.Steps = viper.GetInt("steps")
	}
	if viper.IsSet("timeStep") {
		ip.TimeStep = viper.GetFloat64("timeStep")
	}
	if viper.IsSet("parallelDegree") {
		ip.ParallelDegree = viper.GetInt("parallelDegree")
	}
	err = ip.Validate()
	return
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	ThreeDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CellsEast, CellsNorth, CellsUp\n\t- TimeStep, Steps")
	ThreeDCmd.Flags().IntP("steps", "s", 0, "number of time steps, overrides the input file")
	ThreeDCmd.Flags().Float64P("timeStep", "t", 0, "time step in seconds, overrides the input file")
	ThreeDCmd.Flags().IntP("parallelDegree", "p", 0, "goroutines per layer evaluation, 0 uses GOMAXPROCS")
	ThreeDCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
	for _, name := range []string{"inputConditionsFile", "steps", "timeStep", "parallelDegree", "profile"} {
		if err := viper.BindPFlag(name, ThreeDCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// Run3D steps the configured box, evaluating each layer in parallel before
// the next one so that recursion depth stays at one layer
func Run3D(ip *InputParameters.InputParameters3D, log logrus.FieldLogger) (sum mesh.Summary, stats solver.StepperStats, err error) {
	defer solver.Recover(&err)
	var (
		cr      *mesh.Creator
		ext     = ip.Extents()
		start   = time.Now()
		stepper = solver.NewStepper(
			solver.WithNewton(ip.NewtonStep, ip.NewtonPrecision, ip.NewtonMaxIterations),
			solver.WithLog(log),
		)
	)
	if cr, err = ip.Creator(); err != nil {
		return
	}
	m := mesh.NewFromCreator(cr, stepper, mesh.WithLogger(log))
	for i := 0; i < ip.Steps; i++ {
		m = m.Step(ip.TimeStep)
		m.Evaluate(ext, ip.ParallelDegree)
		sum = m.Summarize(ext)
		log.WithFields(logrus.Fields{
			"layer":    sum.Layer,
			"time":     float64(sum.Layer) * ip.TimeStep,
			"pressure": sum.Pressure.Mean,
			"maxSpeed": sum.Speed.Max,
		}).Info("step")
	}
	if ip.Steps == 0 {
		sum = m.Summarize(ext)
	}
	stats = stepper.Stats()
	log.WithFields(logrus.Fields{
		"solved":       stats.Solved,
		"nonConverged": stats.NonConverged,
		"negativeRoot": stats.NegativeRoot,
		"elapsed":      time.Since(start),
		"memory":       utils.GetMemUsage(),
	}).Info("done")
	return
}
