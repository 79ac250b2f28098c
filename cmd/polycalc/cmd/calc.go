package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveyworks/polycalc/pkg/cogo"
	"github.com/surveyworks/polycalc/pkg/dxf"
	"github.com/surveyworks/polycalc/pkg/geom"
	"github.com/surveyworks/polycalc/pkg/report"
)

var (
	calcOutput    string
	calcPoints    string
	calcDXF       string
	calcUnits     string
	calcTolerance float64
)

var calcCmd = &cobra.Command{
	Use:   "calc <linedata_file>",
	Short: "Interpret a line-table file",
	Long: `Interprets a line-table command file, printing a listing with
computed courses, curve data, tangency warnings and closure gaps,
followed by the point table.

The exit status is nonzero when any command in the file failed; the
run always continues past failures so one pass reports every
transcription problem.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringVarP(&calcOutput, "output", "o", "", "write the listing to a file instead of stdout")
	calcCmd.Flags().StringVar(&calcPoints, "points", "", "write the PNEZD point table to a file")
	calcCmd.Flags().StringVar(&calcDXF, "dxf", "", "write a DXF drawing of the polylines")
	calcCmd.Flags().StringVar(&calcUnits, "units", "foot", "drawing units for DXF output (foot|meter)")
	calcCmd.Flags().Float64Var(&calcTolerance, "tolerance", geom.NonTangentTolerance,
		"angular tolerance in decimal degrees for non-tangency warnings")
}

func runCalc(cmd *cobra.Command, args []string) error {
	units, err := parseUnits(calcUnits)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("error opening line data: %w", err)
	}
	defer f.Close()

	opts := []cogo.Option{cogo.WithTolerance(calcTolerance)}
	if verbose {
		opts = append(opts, cogo.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	interp, err := cogo.New(opts...)
	if err != nil {
		return fmt.Errorf("error building interpreter: %w", err)
	}
	if err := interp.Run(f); err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}

	var out io.Writer = os.Stdout
	if calcOutput != "" {
		of, err := os.Create(calcOutput)
		if err != nil {
			return fmt.Errorf("error creating listing file: %w", err)
		}
		defer of.Close()
		out = of
	}
	rep := report.NewWriter(out)
	if err := rep.WriteListing(interp.Rows()); err != nil {
		return err
	}
	if err := rep.WritePointTable(interp.Points()); err != nil {
		return err
	}
	if err := rep.WriteSummary(interp.ErrorCount(), len(interp.Rows())); err != nil {
		return err
	}

	if calcPoints != "" {
		if err := writePointFile(calcPoints, interp); err != nil {
			return err
		}
	}
	if calcDXF != "" {
		if err := writeDXFFile(calcDXF, interp, units); err != nil {
			return err
		}
	}

	if n := interp.ErrorCount(); n > 0 {
		return fmt.Errorf("%d of %d commands failed", n, len(interp.Rows()))
	}
	return nil
}

func parseUnits(s string) (dxf.Units, error) {
	switch s {
	case "foot":
		return dxf.Foot, nil
	case "meter":
		return dxf.Meter, nil
	default:
		return 0, fmt.Errorf("unknown units %q (want foot or meter)", s)
	}
}

func writePointFile(path string, interp *cogo.Interpreter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating point file: %w", err)
	}
	defer f.Close()
	return report.NewWriter(f).WritePointTable(interp.Points())
}

func writeDXFFile(path string, interp *cogo.Interpreter, units dxf.Units) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating DXF file: %w", err)
	}
	defer f.Close()
	if err := dxf.Write(f, interp.Polylines(), units); err != nil {
		return fmt.Errorf("error writing DXF: %w", err)
	}
	return nil
}
