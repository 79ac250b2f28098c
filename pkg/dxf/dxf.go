// Package dxf writes computed polylines as a minimal DXF drawing:
// one LWPOLYLINE per polyline with bulge values on curve vertices.
// It is a pure formatter over validated geometry.
package dxf

import (
	"fmt"
	"io"

	"github.com/surveyworks/polycalc/pkg/cogo"
)

// Units is the DXF $INSUNITS drawing-units code.
type Units int

const (
	Foot  Units = 2
	Meter Units = 6
)

// Write emits the drawing. DXF XY maps to easting/northing; a bulge
// on a vertex describes the arc to the following vertex.
func Write(w io.Writer, polylines []*cogo.Polyline, units Units) error {
	wr := &groupWriter{w: w}

	wr.pair(0, "SECTION")
	wr.pair(2, "HEADER")
	wr.pair(9, "$INSUNITS")
	wr.pair(70, fmt.Sprintf("%d", int(units)))
	wr.pair(0, "ENDSEC")

	wr.pair(0, "SECTION")
	wr.pair(2, "ENTITIES")
	for _, poly := range polylines {
		writePolyline(wr, poly)
	}
	wr.pair(0, "ENDSEC")
	wr.pair(0, "EOF")
	return wr.err
}

func writePolyline(wr *groupWriter, poly *cogo.Polyline) {
	vertices := poly.Vertices()
	wr.pair(0, "LWPOLYLINE")
	wr.pair(8, "0")
	wr.pair(90, fmt.Sprintf("%d", len(vertices)))
	wr.pair(70, "0")
	for i, v := range vertices {
		wr.pair(10, fmt.Sprintf("%.6f", v.Easting))
		wr.pair(20, fmt.Sprintf("%.6f", v.Northing))
		// Vertex i starts segment i; curves carry their bulge here.
		if i < len(poly.Segments) && poly.Segments[i].Bulge != 0 {
			wr.pair(42, fmt.Sprintf("%.9f", poly.Segments[i].Bulge))
		}
	}
}

// groupWriter emits DXF group-code/value pairs, remembering the first
// write error.
type groupWriter struct {
	w   io.Writer
	err error
}

func (g *groupWriter) pair(code int, value string) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, "%d\n%s\n", code, value)
}
