// Package report renders interpreter output as a human-readable
// listing and a PNEZD point table. It consumes computed rows only and
// performs no geometry of its own.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/surveyworks/polycalc/pkg/angle"
	"github.com/surveyworks/polycalc/pkg/cogo"
	"github.com/surveyworks/polycalc/pkg/geom"
)

// Writer renders listing rows and point tables to one output stream.
type Writer struct {
	w io.Writer
}

// NewWriter wraps an output stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteListing renders one block per processed command, in input
// order.
func (r *Writer) WriteListing(rows []cogo.ListingRow) error {
	for _, row := range rows {
		if err := r.writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

func (r *Writer) writeRow(row cogo.ListingRow) error {
	var err error
	switch {
	case row.Err != nil:
		_, err = fmt.Fprintf(r.w, "\n### line %d: %s\n### error: %v\n", row.Line, row.Text, row.Err)
	case row.Segment != nil:
		err = r.writeSegment(row)
	case row.Closure != nil:
		c := row.Closure
		_, err = fmt.Fprintf(r.w, "\nClosure to %s\nGap . . . . . . Distance: %.3f      Course: %s\n",
			c.TargetID, c.Distance, angle.FormatBearing(c.Azimuth))
	case row.Stored != nil:
		p := row.Stored
		note := ""
		if row.Note != "" {
			note = "  (" + row.Note + ")"
		}
		_, err = fmt.Fprintf(r.w, "\nStored %s . . .  N: %.3f        E: %.3f%s\n",
			p.ID, p.Point.Northing, p.Point.Easting, note)
	default:
		_, err = fmt.Fprintf(r.w, "\n%s: %s\n", row.ID, row.Note)
	}
	return err
}

func (r *Writer) writeSegment(row cogo.ListingRow) error {
	seg := row.Segment
	if _, err := fmt.Fprintf(r.w, "\nSegment: %s\n", row.ID); err != nil {
		return err
	}
	fmt.Fprintf(r.w, "Begin . . . . .  N: %.3f        E: %.3f\n", seg.Start.Northing, seg.Start.Easting)
	fmt.Fprintf(r.w, "End . . . . . .  N: %.3f        E: %.3f\n", seg.End.Northing, seg.End.Easting)

	switch seg.Kind {
	case geom.KindLine:
		fmt.Fprintf(r.w, "  Distance: %.3f      Course: %s\n",
			seg.Distance, angle.FormatBearing(seg.OutAzimuth))
	case geom.KindDeflection:
		fmt.Fprintf(r.w, "  Distance: %.3f      Course: %s      Deflection: %s %s\n",
			seg.Distance, angle.FormatBearing(seg.OutAzimuth),
			seg.Direction, angle.FormatDMS(seg.Delta))
	default:
		fmt.Fprintf(r.w, "   Tangent: %.3f       Chord: %.3f      Course: %s\n",
			seg.TangentLen, seg.Chord, angle.FormatBearing(chordAzimuth(seg)))
		fmt.Fprintf(r.w, "Arc Length: %.3f      Radius: %.3f       Delta: %s %s\n",
			seg.ArcLen, seg.Radius, seg.Direction, angle.FormatDMS(seg.Delta))
	}
	if seg.NonTangent {
		fmt.Fprintf(r.w, "### Segment %s is not tangent to the previous segment.\n", row.ID)
		fmt.Fprintf(r.w, "### Difference in tangents: %s\n", angle.FormatDMS(seg.TangencyGap))
	}
	return nil
}

// chordAzimuth recovers the chord course from the segment endpoints.
func chordAzimuth(seg *geom.Segment) float64 {
	_, az := geom.Closure(seg.Start, seg.End)
	return az
}

// WritePointTable renders the PNEZD coordinate list in store order.
// Elevation is always the 0.0 placeholder.
func (r *Writer) WritePointTable(points []cogo.StoredPoint) error {
	if len(points) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(r.w, "\nPoint Table\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(r.w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNORTHING\tEASTING\tELEV\tDESCRIPTION")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.1f\t%s\n",
			p.ID, p.Point.Northing, p.Point.Easting, 0.0, p.Description)
	}
	return tw.Flush()
}

// WriteSummary reports the error count; the exit status mirrors it.
func (r *Writer) WriteSummary(errCount, total int) error {
	var err error
	if errCount > 0 {
		_, err = fmt.Fprintf(r.w, "\n%d of %d commands failed\n", errCount, total)
	} else {
		_, err = fmt.Fprintf(r.w, "\n%d commands processed, no errors\n", total)
	}
	return err
}
