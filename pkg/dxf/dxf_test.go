package dxf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyworks/polycalc/pkg/cogo"
)

func TestWrite(t *testing.T) {
	interp, err := cogo.New()
	require.NoError(t, err)
	require.NoError(t, interp.Run(strings.NewReader(`
1 BEGIN 100.0 200.0
2 1 45.0000 50.0
3 R 60.0000 100.0
4 BEGIN 0.0 0.0
5 1 0.0000 10.0
`)))
	require.Zero(t, interp.ErrorCount())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, interp.Polylines(), Foot))
	out := buf.String()

	assert.Contains(t, out, "$INSUNITS")
	assert.Contains(t, out, "9\n$INSUNITS\n70\n2\n")
	assert.Equal(t, 2, strings.Count(out, "LWPOLYLINE"))
	assert.True(t, strings.HasSuffix(out, "0\nEOF\n"))

	// The first polyline has three vertices (seed, line end, curve
	// end); the curve's start vertex carries a negative bulge.
	assert.Contains(t, out, "90\n3\n")
	assert.Contains(t, out, "42\n-")

	// X is easting, Y is northing.
	assert.Contains(t, out, "10\n200.000000\n20\n100.000000\n")
}

func TestWriteMeterUnits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, Meter))
	assert.Contains(t, buf.String(), "9\n$INSUNITS\n70\n6\n")
}
