// Package angle converts between the sexagesimal notations used in
// land-survey line tables (D.MMSS tokens, quadrant bearings) and
// decimal degrees / azimuths.
package angle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// dmsPattern matches a D.MMSS token: optional sign, 1-3 degree digits,
// then exactly two minute digits and two second digits.
var dmsPattern = regexp.MustCompile(`^(-)?(\d{1,3})\.(\d{2})(\d{2})$`)

// ParseDMS converts a D.MMSS token (e.g. "73.1430" = 73°14'30") to
// decimal degrees. A leading '-' is allowed for signed deltas.
func ParseDMS(token string) (float64, error) {
	m := dmsPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("invalid DMS token %q: want D.MMSS", token)
	}
	deg, _ := strconv.Atoi(m[2])
	min, _ := strconv.Atoi(m[3])
	sec, _ := strconv.Atoi(m[4])
	if deg >= 360 {
		return 0, fmt.Errorf("invalid DMS token %q: degrees must be < 360", token)
	}
	if min >= 60 || sec >= 60 {
		return 0, fmt.Errorf("invalid DMS token %q: minutes and seconds must be < 60", token)
	}
	d := float64(deg) + float64(min)/60 + float64(sec)/3600
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}

// FormatDMS renders decimal degrees as dd°mm'ss.s", carrying over when
// seconds round up to 60.
func FormatDMS(deg float64) string {
	sign := ""
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	d, m, s := splitDMS(deg)
	return fmt.Sprintf(`%s%d°%02d'%04.1f"`, sign, d, m, s)
}

func splitDMS(deg float64) (d, m int, s float64) {
	d = int(deg)
	rem := (deg - float64(d)) * 60
	m = int(rem)
	s = (rem - float64(m)) * 60
	s = math.Round(s*10) / 10
	if s >= 60 {
		s = 0
		m++
	}
	if m >= 60 {
		m = 0
		d++
	}
	return d, m, s
}

// Radians converts decimal degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to decimal degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Normalize wraps an azimuth into [0, 360).
func Normalize(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az
}

// Diff returns the magnitude of the smallest angle between two
// azimuths, in degrees, in [0, 180].
func Diff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return math.Abs(d)
}

// QuadrantBearingToAzimuth converts a quadrant (1=NE, 2=SE, 3=SW, 4=NW)
// and a bearing in decimal degrees to an azimuth clockwise from north.
// The bearing must lie in [0, 90).
func QuadrantBearingToAzimuth(quadrant int, bearing float64) (float64, error) {
	if bearing < 0 || bearing >= 90 {
		return 0, fmt.Errorf("bearing %s out of range [0°, 90°)", FormatDMS(bearing))
	}
	switch quadrant {
	case 1:
		return Normalize(bearing), nil
	case 2:
		return Normalize(180 - bearing), nil
	case 3:
		return Normalize(180 + bearing), nil
	case 4:
		return Normalize(360 - bearing), nil
	default:
		return 0, fmt.Errorf("quadrant %d out of range [1, 4]", quadrant)
	}
}

// AzimuthToQuadrantBearing is the inverse of QuadrantBearingToAzimuth,
// used when reporting computed courses.
func AzimuthToQuadrantBearing(az float64) (quadrant int, bearing float64) {
	az = Normalize(az)
	quadrant = int(az/90) + 1
	if quadrant > 4 {
		quadrant = 4
	}
	switch quadrant {
	case 1:
		bearing = az
	case 2:
		bearing = 180 - az
	case 3:
		bearing = az - 180
	case 4:
		bearing = 360 - az
	}
	return quadrant, bearing
}

// quadrantLetters indexes compass letters by quadrant-1.
var quadrantLetters = [4]string{"NE", "SE", "SW", "NW"}

// FormatBearing renders an azimuth as a quadrant bearing, e.g.
// `N73°14'30.0"W` for azimuth 286.7583°.
func FormatBearing(az float64) string {
	q, brg := AzimuthToQuadrantBearing(az)
	d, m, s := splitDMS(brg)
	letters := quadrantLetters[q-1]
	return fmt.Sprintf(`%c%d°%02d'%04.1f"%c`, letters[0], d, m, s, letters[1])
}
