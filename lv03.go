// Package lv03 converts coordinates between the global WGS84 system and
// the Swiss national coordinate systems LV03 (CH1903) and LV95 (CH1903+).
// The projection uses swisstopo's published approximation formulas, which
// are accurate to about a meter within Switzerland.
package lv03

import "errors"

// ErrOutOfBounds is returned when a coordinate does not fall inside the
// representable Swiss LV03 region, whether it was supplied directly or
// produced by the forward projection. The rejection reason (south/west of
// the minimum extent, north/east of the maximum extent, or swapped axes)
// is not distinguished.
var ErrOutOfBounds = errors.New("coordinate outside the Swiss LV03 bounds")

// EPSG codes of the coordinate systems handled by this package.
const (
	EPSGLV03  = 21781
	EPSGLV95  = 2056
	EPSGWGS84 = 4326
)

// LV03 validity bounds, approximating the bounding box of Switzerland.
const (
	lv03MinNorth = 70000.0
	lv03MaxNorth = 300000.0
	lv03MinEast  = 480000.0
	lv03MaxEast  = 850000.0
)

// LV03 is a point in the legacy Swiss national coordinate system CH1903/LV03:
// northing (X) and easting (Y) in meters, altitude in meters. Values can only
// be constructed inside the Swiss bounding region, where the easting is
// always numerically larger than the northing.
type LV03 struct {
	North    float64
	East     float64
	Altitude float64
}

// NewLV03 validates the given coordinates against the Swiss bounding region
// and returns the point. Returns ErrOutOfBounds when north or east falls
// outside [70000, 300000] x [480000, 850000] or when north exceeds east.
func NewLV03(north, east, altitude float64) (LV03, error) {
	if north < lv03MinNorth || east < lv03MinEast {
		// south or west of the Swiss minimum extent
		return LV03{}, ErrOutOfBounds
	}
	if north > lv03MaxNorth || east > lv03MaxEast {
		return LV03{}, ErrOutOfBounds
	}
	if north > east {
		// axes swapped: in Switzerland the easting always exceeds the northing
		return LV03{}, ErrOutOfBounds
	}
	return LV03{North: north, East: east, Altitude: altitude}, nil
}

// ToWGS84 projects the point to WGS84 longitude/latitude. The projection is
// total: every LV03 value maps to a WGS84 value. It is an approximate
// inverse of WGS84.ToLV03, with sub-meter round-trip drift near the
// projection's Bern origin.
func (p LV03) ToWGS84() WGS84 {
	// Auxiliary projection units relative to the Bern origin.
	y := (p.East - 600000.0) / 1000000.0
	y2 := y * y
	y3 := y * y2
	x := (p.North - 200000.0) / 1000000.0
	x2 := x * x
	x3 := x * x2

	lambda := 2.6779094 +
		4.728982*y +
		0.791484*y*x +
		0.1306*y*x2 -
		0.0436*y3
	phi := 16.9023892 +
		3.238272*x -
		0.270978*y2 -
		0.002528*x2 -
		0.0447*y2*x -
		0.0140*x3

	altitude := p.Altitude + 49.55 - 12.6*y - 22.64*x

	// The polynomials yield 10000" units; scale to decimal degrees.
	return WGS84{
		Longitude: lambda * 100.0 / 36.0,
		Latitude:  phi * 100.0 / 36.0,
		Altitude:  altitude,
	}
}

// ToLV95 shifts the point into the LV95 frame. The shift is exact and
// lossless.
func (p LV03) ToLV95() LV95 {
	return LV95{
		North:    p.North + lv95NorthOffset,
		East:     p.East + lv95EastOffset,
		Altitude: p.Altitude,
	}
}

// DistanceSquared returns the squared 3D Euclidean distance in square meters
// between the two points, treating north, east and altitude as an orthonormal
// space. This is a metropolitan-scale approximation; convert LV95 points to
// LV03 before measuring.
func (p LV03) DistanceSquared(q LV03) float64 {
	dNorth := p.North - q.North
	dEast := p.East - q.East
	dAltitude := p.Altitude - q.Altitude
	return dNorth*dNorth + dEast*dEast + dAltitude*dAltitude
}
