// Package geom implements the coordinate-geometry engine: segment
// constructors that turn bearings, deltas, radii and distances into
// endpoints and derived curve quantities. All azimuths are decimal
// degrees measured clockwise from grid north, so a displacement is
// (d·cos(az), d·sin(az)) in (northing, easting).
package geom

import (
	"math"

	"github.com/surveyworks/polycalc/pkg/angle"
)

// GeometryError reports a segment whose parameters are geometrically
// invalid (non-positive radius or distance, delta out of range).
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string { return e.Reason }

// Direction selects the turning sense of a curve or deflection.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "R"
	}
	return "L"
}

// sign is +1 for right-hand (clockwise on a north-up map) turns and
// -1 for left-hand turns.
func (d Direction) sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// Kind tags the segment variants.
type Kind int

const (
	KindLine Kind = iota
	KindTangentCurve
	KindNonTangentCurve
	KindDeflection
)

// IsCurve reports whether the kind is a circular-arc variant.
func (k Kind) IsCurve() bool {
	return k == KindTangentCurve || k == KindNonTangentCurve
}

// Segment is one computed traverse element. Segments are immutable
// once constructed; the interpreter only ever appends or removes them.
type Segment struct {
	Kind  Kind
	Start Point
	End   Point

	// InAzimuth is the tangent direction entering the segment and
	// OutAzimuth the direction leaving it, for chaining the next
	// segment. For lines both equal the course azimuth.
	InAzimuth  float64
	OutAzimuth float64

	// Distance is the straight length of a line or deflection leg.
	Distance float64

	// Curve quantities. Delta is the central angle in decimal
	// degrees (also set for deflections, where it is the deflection
	// angle). Bulge is tan(delta/4), negative for right-hand curves,
	// zero for straight segments.
	Direction  Direction
	Delta      float64
	Radius     float64
	Chord      float64
	TangentLen float64
	ArcLen     float64
	Bulge      float64

	// RadialAzimuth is the given BC-to-RP azimuth of an explicitly
	// radial curve. NonTangent is set when that radial disagrees with
	// the incoming tangent by more than the tolerance; TangencyGap is
	// the disagreement in decimal degrees.
	RadialAzimuth float64
	NonTangent    bool
	TangencyGap   float64
}

// displace returns p moved dist units along azimuth az.
func displace(p Point, az, dist float64) Point {
	rad := angle.Radians(az)
	return Point{
		Northing: p.Northing + dist*math.Cos(rad),
		Easting:  p.Easting + dist*math.Sin(rad),
	}
}

// NewLine constructs a straight segment along the given azimuth.
func NewLine(start Point, azimuth, distance float64) (Segment, error) {
	if distance <= 0 {
		return Segment{}, &GeometryError{Reason: "distance must be positive"}
	}
	az := angle.Normalize(azimuth)
	return Segment{
		Kind:       KindLine,
		Start:      start,
		End:        displace(start, az, distance),
		InAzimuth:  az,
		OutAzimuth: az,
		Distance:   distance,
	}, nil
}

func checkCurve(delta, radius float64) error {
	if radius <= 0 {
		return &GeometryError{Reason: "radius must be positive"}
	}
	if delta <= 0 || delta >= 180 {
		return &GeometryError{Reason: "delta must lie in (0°, 180°)"}
	}
	return nil
}

// curveFrom builds the common curve fields given the tangent-in
// azimuth at the BC.
func curveFrom(start Point, tangentIn float64, dir Direction, delta, radius float64) Segment {
	half := delta / 2
	chord := 2 * radius * math.Sin(angle.Radians(half))
	chordAz := angle.Normalize(tangentIn + dir.sign()*half)
	bulge := math.Tan(angle.Radians(delta) / 4)
	if dir == Right {
		bulge = -bulge
	}
	return Segment{
		Start:      start,
		End:        displace(start, chordAz, chord),
		InAzimuth:  angle.Normalize(tangentIn),
		OutAzimuth: angle.Normalize(tangentIn + dir.sign()*delta),
		Direction:  dir,
		Delta:      delta,
		Radius:     radius,
		Chord:      chord,
		TangentLen: radius * math.Tan(angle.Radians(half)),
		ArcLen:     radius * angle.Radians(delta),
		Bulge:      bulge,
	}
}

// NewTangentCurve constructs a circular curve tangent to the incoming
// azimuth (the previous segment's outgoing azimuth).
func NewTangentCurve(start Point, inAzimuth float64, dir Direction, delta, radius float64) (Segment, error) {
	if err := checkCurve(delta, radius); err != nil {
		return Segment{}, err
	}
	seg := curveFrom(start, inAzimuth, dir, delta, radius)
	seg.Kind = KindTangentCurve
	return seg, nil
}

// NonTangentTolerance is the default angular tolerance, in decimal
// degrees, for flagging an explicitly radial curve as non-tangent.
// One arc-minute is the finest unit a D.MMSS bearing can express.
const NonTangentTolerance = 1.0 / 60

// NewNonTangentCurve constructs a curve specified by an explicit
// radial (BC-to-RP) azimuth instead of the back tangent. The tangent
// at the BC is perpendicular to the radial: for a right-hand curve
// the center lies 90° clockwise of travel, so tangent = radial - 90°,
// and the mirror for left. If prevAzimuth is non-nil the radial is
// checked against the perpendicular of the incoming tangent and the
// segment is flagged non-tangent when they disagree by more than
// tolerance degrees.
func NewNonTangentCurve(start Point, prevAzimuth *float64, dir Direction, delta, radius, radialAzimuth, tolerance float64) (Segment, error) {
	if err := checkCurve(delta, radius); err != nil {
		return Segment{}, err
	}
	tangentIn := angle.Normalize(radialAzimuth - dir.sign()*90)
	seg := curveFrom(start, tangentIn, dir, delta, radius)
	seg.Kind = KindNonTangentCurve
	seg.RadialAzimuth = angle.Normalize(radialAzimuth)
	if prevAzimuth != nil {
		expected := angle.Normalize(*prevAzimuth + dir.sign()*90)
		if gap := angle.Diff(expected, radialAzimuth); gap > tolerance {
			seg.NonTangent = true
			seg.TangencyGap = gap
		}
	}
	return seg, nil
}

// NewDeflection constructs a straight leg whose azimuth deflects from
// the previous outgoing azimuth by delta degrees, right or left.
func NewDeflection(start Point, prevAzimuth float64, dir Direction, delta, distance float64) (Segment, error) {
	if delta < 0 || delta >= 360 {
		return Segment{}, &GeometryError{Reason: "deflection must lie in [0°, 360°)"}
	}
	seg, err := NewLine(start, prevAzimuth+dir.sign()*delta, distance)
	if err != nil {
		return Segment{}, err
	}
	seg.Kind = KindDeflection
	seg.Direction = dir
	seg.Delta = delta
	return seg, nil
}

// Closure computes the gap from one point to another as a distance
// and azimuth. For a correctly transcribed closed traverse the
// distance from the computed endpoint back to the stored start is
// near zero.
func Closure(from, to Point) (distance, azimuth float64) {
	v := to.Sub(from)
	distance = from.Distance(to)
	azimuth = angle.Normalize(angle.Degrees(math.Atan2(v.Easting, v.Northing)))
	return distance, azimuth
}
