package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/watchmakers/gears"
)

var rootCmd = &cobra.Command{
	Use:   "clockgears",
	Short: "Cycloidal clock gear generator",
	Long: "Clockgears builds 3D models of cycloidal (ogive form) clock gears\n" +
		"using the tooth proportions of BS 978 Part 2: single wheels, pinions,\n" +
		"and fully laid out four-wheel trains.",
	SilenceUsage: true,
}

// Execute runs the CLI, exiting nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int("cells", 0, "octree mesh resolution, 0 for the default")
}

// renderConfig reads the shared flags into a gears.Config.
func renderConfig(cmd *cobra.Command) gears.Config {
	cells, _ := cmd.Flags().GetInt("cells")
	return gears.Config{MeshCells: cells}
}
