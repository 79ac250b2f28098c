package geom

import "math"

// Point is a plane-grid coordinate pair. Northing increases toward
// grid north, easting toward grid east. Elevation is not modeled.
type Point struct {
	Northing float64
	Easting  float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{p.Northing + q.Northing, p.Easting + q.Easting}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.Northing - q.Northing, p.Easting - q.Easting}
}

// Distance returns the straight-line distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.Northing-q.Northing, p.Easting-q.Easting)
}
