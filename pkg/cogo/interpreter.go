// Package cogo runs the coordinate-geometry interpreter: it feeds
// line-table commands through the parser, dispatches them against the
// geometry engine, and maintains the polyline store, branch stack and
// coordinate table. Errors follow a continue-and-report policy so one
// pass over a transcribed table surfaces every problem.
package cogo

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/surveyworks/polycalc/pkg/angle"
	"github.com/surveyworks/polycalc/pkg/geom"
	"github.com/surveyworks/polycalc/pkg/linedata"
)

// Interpreter owns all run state. It is not safe for concurrent use;
// processing is strictly one command at a time in file order.
type Interpreter struct {
	parser    *linedata.Parser
	log       *slog.Logger
	tolerance float64

	polylines []*Polyline
	// current indexes the polyline that segment commands append to.
	// It equals the last index except after RESUME, which points it
	// back at the pre-branch polyline.
	current  int
	branches *arraystack.Stack
	coords   *CoordinateTable

	rows     []ListingRow
	errCount int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger installs a logger for per-command diagnostics. Logging
// is disabled by default.
func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.log = l
		}
	}
}

// WithTolerance sets the non-tangency tolerance in decimal degrees.
func WithTolerance(deg float64) Option {
	return func(in *Interpreter) { in.tolerance = deg }
}

// New builds an interpreter with fresh state.
func New(opts ...Option) (*Interpreter, error) {
	parser, err := linedata.NewParser()
	if err != nil {
		return nil, err
	}
	in := &Interpreter{
		parser:    parser,
		log:       newNopLogger(),
		tolerance: geom.NonTangentTolerance,
		current:   -1,
		branches:  arraystack.New(),
		coords:    NewCoordinateTable(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in, nil
}

// Run processes the command file one line at a time. Blank lines and
// lines starting with '#' are skipped. Command failures are recorded
// in the listing and do not stop the run; Run itself only fails on a
// read error.
func (in *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		in.exec(line, text)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading command file: %w", err)
	}
	return nil
}

// Rows returns the listing rows in input order.
func (in *Interpreter) Rows() []ListingRow { return in.rows }

// Polylines returns the polyline store in creation order.
func (in *Interpreter) Polylines() []*Polyline { return in.polylines }

// Points returns the coordinate table in first-store order.
func (in *Interpreter) Points() []StoredPoint { return in.coords.Points() }

// ErrorCount returns the number of failed commands.
func (in *Interpreter) ErrorCount() int { return in.errCount }

func (in *Interpreter) exec(line int, text string) {
	row := ListingRow{Line: line, Text: text}
	cmd, err := in.parser.ParseLine(line, text)
	if err != nil {
		in.record(row, err)
		return
	}
	row.ID = cmd.ID
	err = in.apply(line, text, cmd, &row)
	in.record(row, err)
}

func (in *Interpreter) record(row ListingRow, err error) {
	row.Err = err
	if err != nil {
		in.errCount++
		in.log.Warn("command failed", "line", row.Line, "error", err)
	} else {
		in.log.Debug("command ok", "line", row.Line, "id", row.ID, "note", row.Note)
	}
	in.rows = append(in.rows, row)
}

// apply dispatches one parsed command. On error the store is
// untouched: every branch validates fully before mutating.
func (in *Interpreter) apply(line int, text string, cmd *linedata.Command, row *ListingRow) error {
	b := cmd.Body
	switch {
	case b.Begin != nil:
		return in.begin(b.Begin, row)
	case b.Line != nil:
		return in.lineSegment(line, b.Line, row)
	case b.Curve != nil:
		return in.curveSegment(line, b.Curve, row)
	case b.Deflection != nil:
		return in.deflectionSegment(line, b.Deflection, row)
	case b.Store != nil:
		return in.store(b.Store.ID, b.Store.Coords, "", row)
	case b.Point != nil:
		return in.store(b.Point.ID, b.Point.Coords,
			strings.Join(b.Point.Description, " "), row)
	case b.Recall != nil:
		return in.recall(b.Recall, row)
	case b.Branch != nil:
		return in.branch(row)
	case b.Resume != nil:
		return in.resume(row)
	case b.Undo != nil:
		return in.undo(row)
	case b.Close != nil:
		return in.closeTo(b.Close, row)
	case b.Join != nil:
		return in.join(row)
	default:
		return &linedata.ParseError{Line: line, Text: text, Reason: "unrecognized command"}
	}
}

// currentPolyline resolves the polyline segment commands append to.
func (in *Interpreter) currentPolyline() (*Polyline, error) {
	if in.current < 0 {
		return nil, &ReferenceError{Reason: "no current polyline (BEGIN required)"}
	}
	return in.polylines[in.current], nil
}

// dms validates a raw D.MMSS token, classifying failures as parse
// errors on the originating line.
func (in *Interpreter) dms(line int, text, token string) (float64, error) {
	deg, err := angle.ParseDMS(token)
	if err != nil {
		return 0, &linedata.ParseError{Line: line, Text: text, Reason: err.Error()}
	}
	return deg, nil
}

func (in *Interpreter) bearingAzimuth(line int, text string, quadrant int, token string) (float64, error) {
	brg, err := in.dms(line, text, token)
	if err != nil {
		return 0, err
	}
	az, err := angle.QuadrantBearingToAzimuth(quadrant, brg)
	if err != nil {
		return 0, &linedata.ParseError{Line: line, Text: text, Reason: err.Error()}
	}
	return az, nil
}

func parseDirection(s string) geom.Direction {
	if strings.EqualFold(strings.TrimPrefix(strings.ToUpper(s), "D"), "R") {
		return geom.Right
	}
	return geom.Left
}

func (in *Interpreter) pushPolyline(seed geom.Point, row *ListingRow) {
	in.polylines = append(in.polylines, &Polyline{Seed: seed})
	in.current = len(in.polylines) - 1
	row.Note = fmt.Sprintf("polyline %d begun at N %.3f E %.3f",
		in.current+1, seed.Northing, seed.Easting)
}

func (in *Interpreter) begin(cmd *linedata.BeginCmd, row *ListingRow) error {
	var seed geom.Point
	if cmd.Coords != nil {
		seed = geom.Point{Northing: cmd.Coords.Northing, Easting: cmd.Coords.Easting}
	} else {
		p, ok := in.coords.Lookup(cmd.Ref)
		if !ok {
			return &ReferenceError{Reason: fmt.Sprintf("unknown coordinate id %q", cmd.Ref)}
		}
		seed = p
	}
	in.pushPolyline(seed, row)
	return nil
}

// appendSegment flags a tangency break against a preceding curve,
// appends the segment, and records a copy on the listing row. The row
// keeps its own copy so later UNDO or JOIN slice edits cannot rewrite
// an already-reported command.
func (in *Interpreter) appendSegment(poly *Polyline, seg geom.Segment, row *ListingRow) {
	if n := len(poly.Segments); n > 0 && !seg.NonTangent && poly.Segments[n-1].Kind.IsCurve() {
		if gap := angle.Diff(poly.Segments[n-1].OutAzimuth, seg.InAzimuth); gap > in.tolerance {
			seg.NonTangent = true
			seg.TangencyGap = gap
		}
	}
	poly.Segments = append(poly.Segments, seg)
	row.Segment = &seg
}

func (in *Interpreter) lineSegment(line int, cmd *linedata.LineCmd, row *ListingRow) error {
	poly, err := in.currentPolyline()
	if err != nil {
		return err
	}
	az, err := in.bearingAzimuth(line, row.Text, cmd.Quadrant, cmd.Bearing)
	if err != nil {
		return err
	}
	seg, err := geom.NewLine(poly.Endpoint(), az, cmd.Distance)
	if err != nil {
		return err
	}
	in.appendSegment(poly, seg, row)
	return nil
}

func (in *Interpreter) curveSegment(line int, cmd *linedata.CurveCmd, row *ListingRow) error {
	poly, err := in.currentPolyline()
	if err != nil {
		return err
	}
	delta, err := in.dms(line, row.Text, cmd.Delta)
	if err != nil {
		return err
	}
	dir := parseDirection(cmd.Direction)

	var seg geom.Segment
	if cmd.IsRadial() {
		radialAz, err := in.bearingAzimuth(line, row.Text, cmd.Radial.Quadrant, cmd.Radial.Bearing)
		if err != nil {
			return err
		}
		var prev *float64
		if out, ok := poly.OutAzimuth(); ok {
			prev = &out
		}
		seg, err = geom.NewNonTangentCurve(poly.Endpoint(), prev, dir, delta, cmd.Radius, radialAz, in.tolerance)
		if err != nil {
			return err
		}
	} else {
		out, ok := poly.OutAzimuth()
		if !ok {
			return &ReferenceError{Reason: "no back tangent for curve (previous segment required)"}
		}
		seg, err = geom.NewTangentCurve(poly.Endpoint(), out, dir, delta, cmd.Radius)
		if err != nil {
			return err
		}
	}
	in.appendSegment(poly, seg, row)
	return nil
}

func (in *Interpreter) deflectionSegment(line int, cmd *linedata.DeflectionCmd, row *ListingRow) error {
	poly, err := in.currentPolyline()
	if err != nil {
		return err
	}
	out, ok := poly.OutAzimuth()
	if !ok {
		return &ReferenceError{Reason: "no back tangent for deflection (previous segment required)"}
	}
	delta, err := in.dms(line, row.Text, cmd.Delta)
	if err != nil {
		return err
	}
	seg, err := geom.NewDeflection(poly.Endpoint(), out, parseDirection(cmd.Direction), delta, cmd.Distance)
	if err != nil {
		return err
	}
	in.appendSegment(poly, seg, row)
	return nil
}

func (in *Interpreter) store(id string, coords *linedata.Coordinates, description string, row *ListingRow) error {
	var p geom.Point
	if coords != nil {
		p = geom.Point{Northing: coords.Northing, Easting: coords.Easting}
	} else {
		poly, err := in.currentPolyline()
		if err != nil {
			return err
		}
		p = poly.Endpoint()
	}
	replaced := in.coords.Store(id, p, description)
	row.Stored = &StoredPoint{ID: id, Point: p, Description: description}
	if replaced {
		row.Note = fmt.Sprintf("coordinate %q redefined", id)
	}
	return nil
}

func (in *Interpreter) recall(cmd *linedata.RecallCmd, row *ListingRow) error {
	p, ok := in.coords.Lookup(cmd.ID)
	if !ok {
		return &ReferenceError{Reason: fmt.Sprintf("unknown coordinate id %q", cmd.ID)}
	}
	in.pushPolyline(p, row)
	return nil
}

func (in *Interpreter) branch(row *ListingRow) error {
	poly, err := in.currentPolyline()
	if err != nil {
		return err
	}
	in.branches.Push(in.current)
	from := in.current
	in.pushPolyline(poly.Endpoint(), row)
	row.Note = fmt.Sprintf("branched from polyline %d; %s", from+1, row.Note)
	return nil
}

func (in *Interpreter) resume(row *ListingRow) error {
	v, ok := in.branches.Pop()
	if !ok {
		return &ReferenceError{Reason: "branch stack is empty"}
	}
	in.current = v.(int)
	row.Note = fmt.Sprintf("resumed polyline %d", in.current+1)
	return nil
}

func (in *Interpreter) undo(row *ListingRow) error {
	poly, err := in.currentPolyline()
	if err != nil {
		return err
	}
	if len(poly.Segments) == 0 {
		return &ReferenceError{Reason: "no segments to undo"}
	}
	poly.Segments = poly.Segments[:len(poly.Segments)-1]
	end := poly.Endpoint()
	row.Note = fmt.Sprintf("segment removed; endpoint N %.3f E %.3f", end.Northing, end.Easting)
	return nil
}

func (in *Interpreter) closeTo(cmd *linedata.CloseCmd, row *ListingRow) error {
	poly, err := in.currentPolyline()
	if err != nil {
		return err
	}
	target, ok := in.coords.Lookup(cmd.ID)
	if !ok {
		return &ReferenceError{Reason: fmt.Sprintf("unknown coordinate id %q", cmd.ID)}
	}
	dist, az := geom.Closure(poly.Endpoint(), target)
	row.Closure = &ClosureResult{TargetID: cmd.ID, Target: target, Distance: dist, Azimuth: az}
	return nil
}

// join merges the last polyline onto the one before it. The victim
// must not be a pending branch target (branch stack indices must stay
// valid) and its seed must coincide with the previous endpoint.
func (in *Interpreter) join(row *ListingRow) error {
	n := len(in.polylines)
	if n < 2 {
		return &ReferenceError{Reason: "join requires two polylines"}
	}
	victim := n - 1
	for _, v := range in.branches.Values() {
		if v.(int) == victim {
			return &ReferenceError{Reason: "cannot join a polyline with a pending branch"}
		}
	}
	dst, src := in.polylines[n-2], in.polylines[n-1]
	if dst.Endpoint().Distance(src.Seed) > 1e-6 {
		return &geom.GeometryError{Reason: "polylines do not meet"}
	}
	dst.Segments = append(dst.Segments, src.Segments...)
	in.polylines = in.polylines[:n-1]
	if in.current == victim {
		in.current = n - 2
	}
	row.Note = fmt.Sprintf("polyline %d joined onto %d", victim+1, victim)
	return nil
}
