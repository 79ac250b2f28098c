package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "polycalc",
	Short: "polycalc - land-survey line-table calculator",
	Long: `polycalc converts a textual line table (bearings, deltas, radii and
deflection angles in D.MMSS notation) into polyline geometry, checks
curve tangency and closure, and emits a listing, a PNEZD point table,
and a DXF drawing.

Examples:
  polycalc calc linedata.txt                  # Listing to stdout
  polycalc calc linedata.txt --dxf parcel.dxf # Also write the drawing
  polycalc calc linedata.txt --points pts.txt # PNEZD table to a file`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
