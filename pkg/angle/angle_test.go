package angle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDMS(t *testing.T) {
	tests := []struct {
		token string
		want  float64
	}{
		{"73.1430", 73.0 + 14.0/60 + 30.0/3600},
		{"0.0000", 0},
		{"90.0000", 90},
		{"-27.2800", -(27.0 + 28.0/60)},
		{"359.5959", 359 + 59.0/60 + 59.0/3600},
	}
	for _, tt := range tests {
		got, err := ParseDMS(tt.token)
		require.NoError(t, err, "token %q", tt.token)
		assert.InDelta(t, tt.want, got, 1e-12, "token %q", tt.token)
	}
}

func TestParseDMSRejectsMalformed(t *testing.T) {
	for _, token := range []string{
		"",
		"abc",
		"73.6030", // minutes >= 60
		"73.1460", // seconds >= 60
		"360.0000",
		"73.143",  // three fraction digits
		"73.14301", // five fraction digits
		"73",
	} {
		_, err := ParseDMS(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestFormatDMS(t *testing.T) {
	assert.Equal(t, `73°14'30.0"`, FormatDMS(73.0+14.0/60+30.0/3600))
	assert.Equal(t, `0°00'00.0"`, FormatDMS(0))
	assert.Equal(t, `-27°28'00.0"`, FormatDMS(-(27.0+28.0/60)))
	// Seconds rounding up to 60 must carry into minutes and degrees.
	assert.Equal(t, `30°00'00.0"`, FormatDMS(29.9999999))
}

func TestQuadrantBearingToAzimuth(t *testing.T) {
	tests := []struct {
		quadrant int
		bearing  float64
		want     float64
	}{
		{1, 30, 30},
		{2, 30, 150},
		{3, 30, 210},
		{4, 30, 330},
		{1, 0, 0},
		{4, 0, 0}, // 360 normalizes to 0
	}
	for _, tt := range tests {
		got, err := QuadrantBearingToAzimuth(tt.quadrant, tt.bearing)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "quadrant %d bearing %v", tt.quadrant, tt.bearing)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestQuadrantBearingToAzimuthRejectsBadInput(t *testing.T) {
	_, err := QuadrantBearingToAzimuth(1, 90)
	assert.Error(t, err, "bearing must be < 90")
	_, err = QuadrantBearingToAzimuth(1, -1)
	assert.Error(t, err)
	_, err = QuadrantBearingToAzimuth(5, 30)
	assert.Error(t, err)
	_, err = QuadrantBearingToAzimuth(0, 30)
	assert.Error(t, err)
}

func TestAzimuthToQuadrantBearingRoundTrip(t *testing.T) {
	for _, az := range []float64{0, 10, 89.99, 90.01, 135, 179.5, 180.5, 269, 271, 359.9} {
		q, brg := AzimuthToQuadrantBearing(az)
		back, err := QuadrantBearingToAzimuth(q, brg)
		require.NoError(t, err, "azimuth %v", az)
		assert.InDelta(t, Normalize(az), back, 1e-9, "azimuth %v", az)
	}
}

func TestFormatBearing(t *testing.T) {
	assert.Equal(t, `N73°14'30.0"W`, FormatBearing(360-(73.0+14.0/60+30.0/3600)))
	assert.Equal(t, `N45°00'00.0"E`, FormatBearing(45))
	assert.Equal(t, `S30°00'00.0"E`, FormatBearing(150))
	assert.Equal(t, `S10°00'00.0"W`, FormatBearing(190))
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 10, Normalize(370), 1e-12)
	assert.InDelta(t, 350, Normalize(-10), 1e-12)
	assert.InDelta(t, 0, Normalize(360), 1e-12)
}

func TestDiff(t *testing.T) {
	assert.InDelta(t, 2, Diff(359, 1), 1e-12)
	assert.InDelta(t, 2, Diff(1, 359), 1e-12)
	assert.InDelta(t, 180, Diff(0, 180), 1e-12)
	assert.InDelta(t, 0, Diff(45, 45), 1e-12)
}
