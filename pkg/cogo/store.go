package cogo

import (
	"strings"

	"github.com/surveyworks/polycalc/pkg/geom"
)

// Polyline is an ordered run of segments plus the seed point the
// first segment starts from. A polyline with no segments is valid;
// its endpoint is the seed.
type Polyline struct {
	Seed     geom.Point
	Segments []geom.Segment
}

// Endpoint returns the last vertex of the polyline.
func (p *Polyline) Endpoint() geom.Point {
	if len(p.Segments) == 0 {
		return p.Seed
	}
	return p.Segments[len(p.Segments)-1].End
}

// OutAzimuth returns the outgoing tangent azimuth of the last
// segment, or false if the polyline has no segments yet.
func (p *Polyline) OutAzimuth() (float64, bool) {
	if len(p.Segments) == 0 {
		return 0, false
	}
	return p.Segments[len(p.Segments)-1].OutAzimuth, true
}

// Vertices returns the seed followed by each segment endpoint.
func (p *Polyline) Vertices() []geom.Point {
	out := make([]geom.Point, 0, len(p.Segments)+1)
	out = append(out, p.Seed)
	for _, seg := range p.Segments {
		out = append(out, seg.End)
	}
	return out
}

// StoredPoint is one named coordinate with its optional description.
type StoredPoint struct {
	ID          string
	Point       geom.Point
	Description string
}

// CoordinateTable maps case-insensitive identifiers to points while
// preserving first-store order for the point table. Re-storing an
// existing id replaces its value in place.
type CoordinateTable struct {
	index  map[string]int
	points []StoredPoint
}

// NewCoordinateTable returns an empty table.
func NewCoordinateTable() *CoordinateTable {
	return &CoordinateTable{index: make(map[string]int)}
}

func coordKey(id string) string { return strings.ToUpper(id) }

// Store saves a point under id, replacing any existing entry. It
// reports whether an entry was replaced.
func (t *CoordinateTable) Store(id string, p geom.Point, description string) (replaced bool) {
	key := coordKey(id)
	if i, ok := t.index[key]; ok {
		t.points[i].Point = p
		t.points[i].Description = description
		return true
	}
	t.index[key] = len(t.points)
	t.points = append(t.points, StoredPoint{ID: id, Point: p, Description: description})
	return false
}

// Lookup resolves a stored id, case-insensitively.
func (t *CoordinateTable) Lookup(id string) (geom.Point, bool) {
	i, ok := t.index[coordKey(id)]
	if !ok {
		return geom.Point{}, false
	}
	return t.points[i].Point, true
}

// Points returns the stored points in first-store order.
func (t *CoordinateTable) Points() []StoredPoint {
	out := make([]StoredPoint, len(t.points))
	copy(out, t.points)
	return out
}
