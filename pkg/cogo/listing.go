package cogo

import "github.com/surveyworks/polycalc/pkg/geom"

// ClosureResult is the gap computed by a CLOSE command.
type ClosureResult struct {
	TargetID string
	Target   geom.Point
	Distance float64
	Azimuth  float64
}

// ListingRow records the outcome of one processed command line.
// Exactly one row is appended per non-blank, non-comment input line,
// whether the command succeeded or not.
type ListingRow struct {
	Line int
	ID   string
	Text string

	// Err is set when the command failed; the store was left exactly
	// as it was before the command.
	Err error

	// Segment is set for line/curve/deflection commands.
	Segment *geom.Segment

	// Closure is set for CLOSE commands.
	Closure *ClosureResult

	// Stored is set for STORE/POINT commands.
	Stored *StoredPoint

	// Note carries state-machine annotations: polyline starts,
	// branch/resume targets, coordinate redefinitions.
	Note string
}
