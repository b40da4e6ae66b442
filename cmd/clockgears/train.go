package main

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/spf13/cobra"

	"github.com/watchmakers/gears"
	"github.com/watchmakers/gears/bs978"
	"github.com/watchmakers/gears/draw"
	"github.com/watchmakers/gears/obj"
	"github.com/watchmakers/gears/train"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Generate an assembled four-wheel train STL",
	Long: "Train reads a TOML train definition, lays out the four arbors, picks\n" +
		"tooth proportions for every wheel and pinion from the BS 978 tables,\n" +
		"and writes the assembled train as one STL.",
	RunE: runTrain,
}

func init() {
	f := trainCmd.Flags()
	f.StringP("config", "c", "train.toml", "train definition file")
	f.StringP("output", "o", "train.stl", "output STL file")
	f.Bool("pitch-only", false, "emit pitch-circle disks instead of toothed gears")
	f.String("diagram", "", "also write a 2D layout diagram to this file")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	configPath, _ := f.GetString("config")
	output, _ := f.GetString("output")
	pitchOnly, _ := f.GetBool("pitch-only")
	diagram, _ := f.GetString("diagram")

	cfg, err := loadTrainConfig(configPath)
	if err != nil {
		return err
	}
	style, err := gears.ParseRootStyle(cfg.Root)
	if err != nil {
		return err
	}
	layout, err := train.Solve(cfg.Angle, cfg.Span, cfg.Module, cfg.Counts.counts())
	if err != nil {
		return err
	}
	if diagram != "" {
		if err := draw.Train(layout, diagram); err != nil {
			return err
		}
	}

	renderCfg := renderConfig(cmd)
	renderCfg.PitchCirclesOnly = pitchOnly
	var parts [4]obj.Parts
	if !pitchOnly {
		parts, err = trainParts(cfg, style)
		if err != nil {
			return err
		}
	}
	scene, err := obj.Scene(layout, parts, cfg.Width, renderCfg)
	if err != nil {
		return err
	}
	if err := writeSTL(output, scene, renderCfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote train to %s\n", output)
	return nil
}

// trainParts builds the wheel and pinion solids for every arbor. Wheels take
// driving-wheel proportions against the pinion they mesh with; the input
// pinion is motion work (it drives its wheel) and the rest are driven.
func trainParts(cfg *trainConfig, style gears.RootStyle) ([4]obj.Parts, error) {
	var parts [4]obj.Parts
	c := cfg.Counts.counts()

	wheel := func(teeth, mateLeaves int) (sdf.SDF3, error) {
		spec := bs978.DrivingWheel(teeth, mateLeaves).Spec(teeth, cfg.Module)
		s, err := gears.WheelSolid(spec, style, cfg.Width)
		if err != nil {
			return nil, err
		}
		if cfg.Bore > 0 {
			return obj.Bore(s, cfg.Bore)
		}
		return s, nil
	}
	pinion := func(p bs978.Proportions, leaves int) (sdf.SDF3, error) {
		s, err := gears.WheelSolid(p.Spec(leaves, cfg.Module), gears.RootSquare, cfg.Width)
		if err != nil {
			return nil, err
		}
		if cfg.Bore > 0 {
			return obj.Bore(s, cfg.Bore)
		}
		return s, nil
	}
	driven := func(leaves int) (bs978.Proportions, error) {
		return bs978.DrivenPinion(leaves, bs978.FamilyAuto)
	}

	var err error
	if parts[0].Pinion, err = pinion(bs978.SometimesDriven(c.InputPinion), c.InputPinion); err != nil {
		return parts, err
	}
	if parts[1].Wheel, err = wheel(c.SecondWheel, c.InputPinion); err != nil {
		return parts, err
	}
	p2, err := driven(c.SecondPinion)
	if err != nil {
		return parts, err
	}
	if parts[1].Pinion, err = pinion(p2, c.SecondPinion); err != nil {
		return parts, err
	}
	if parts[2].Wheel, err = wheel(c.ThirdWheel, c.SecondPinion); err != nil {
		return parts, err
	}
	p3, err := driven(c.ThirdPinion)
	if err != nil {
		return parts, err
	}
	if parts[2].Pinion, err = pinion(p3, c.ThirdPinion); err != nil {
		return parts, err
	}
	if parts[3].Wheel, err = wheel(c.FourthWheel, c.ThirdPinion); err != nil {
		return parts, err
	}
	return parts, nil
}
