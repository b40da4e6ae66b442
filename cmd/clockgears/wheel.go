package main

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
	"github.com/spf13/cobra"

	"github.com/watchmakers/gears"
	"github.com/watchmakers/gears/bs978"
	"github.com/watchmakers/gears/obj"
)

var wheelCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Generate a single driving wheel STL",
	Long: "Wheel builds one driving wheel with proportions selected from the\n" +
		"BS 978 table for the pinion it mates with, optionally crossed out\n" +
		"and bored.",
	RunE: runWheel,
}

func init() {
	f := wheelCmd.Flags()
	f.Int("teeth", 48, "wheel tooth count")
	f.Float64("module", 1, "gear module")
	f.Int("pinion", 10, "leaf count of the mating pinion")
	f.String("root", "rounded", "root style: square or rounded")
	f.Float64("width", 2, "axial width")
	f.Float64("bore", 0, "arbor bore diameter, 0 for none")
	f.Int("spokes", 0, "spokes to leave when crossing out, 0 to skip")
	f.Float64("rim", 0, "crossing rim diameter")
	f.Float64("hub", 0, "crossing hub diameter")
	f.Float64("spoke-width", 0, "crossing spoke width")
	f.StringP("output", "o", "wheel.stl", "output STL file")
	rootCmd.AddCommand(wheelCmd)
}

func runWheel(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	teeth, _ := f.GetInt("teeth")
	module, _ := f.GetFloat64("module")
	pinion, _ := f.GetInt("pinion")
	rootName, _ := f.GetString("root")
	width, _ := f.GetFloat64("width")
	bore, _ := f.GetFloat64("bore")
	spokes, _ := f.GetInt("spokes")
	output, _ := f.GetString("output")

	style, err := gears.ParseRootStyle(rootName)
	if err != nil {
		return err
	}
	spec := bs978.DrivingWheel(teeth, pinion).Spec(teeth, module)
	solid, err := gears.WheelSolid(spec, style, width)
	if err != nil {
		return err
	}
	if spokes > 0 {
		rim, _ := f.GetFloat64("rim")
		hub, _ := f.GetFloat64("hub")
		spokeWidth, _ := f.GetFloat64("spoke-width")
		solid, err = obj.CrossOut(solid, obj.Crossing{
			Spokes:      spokes,
			RimDiameter: rim,
			HubDiameter: hub,
			SpokeWidth:  spokeWidth,
		})
		if err != nil {
			return err
		}
	}
	if bore > 0 {
		solid, err = obj.Bore(solid, bore)
		if err != nil {
			return err
		}
	}
	if err := writeSTL(output, solid, renderConfig(cmd)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d-tooth wheel to %s\n", teeth, output)
	return nil
}

func writeSTL(path string, s sdf.SDF3, cfg gears.Config) error {
	return render.CreateSTL(path, render.NewOctreeRenderer(s, cfg.Cells()))
}
