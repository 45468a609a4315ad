package lv03

import (
	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
	"github.com/golang/geo/s2"
)

// wgs84Ellipsoid backs surface distance computations between WGS84 points.
var wgs84Ellipsoid = ellipsoid.Init(
	"WGS84",
	ellipsoid.Degrees,
	ellipsoid.Meter,
	ellipsoid.LongitudeIsSymmetric,
	ellipsoid.BearingIsSymmetric)

// WGS84 is a geographic point in the World Geodetic System 1984: longitude
// and latitude in decimal degrees, altitude in meters. Any numeric triple is
// a syntactically valid WGS84 value; whether it lies inside the Swiss
// projection's region is only decided by ToLV03.
type WGS84 struct {
	Longitude float64
	Latitude  float64
	Altitude  float64
}

// FromLatLng builds a WGS84 point from an s2.LatLng and an altitude in
// meters.
func FromLatLng(ll s2.LatLng, altitude float64) WGS84 {
	return WGS84{
		Longitude: ll.Lng.Degrees(),
		Latitude:  ll.Lat.Degrees(),
		Altitude:  altitude,
	}
}

// LatLng returns the point as an s2.LatLng, dropping the altitude.
func (w WGS84) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(w.Latitude, w.Longitude)
}

// ToLV03 projects the point into the LV03 frame using swisstopo's
// approximation formulas. Returns ErrOutOfBounds when the projected point
// does not fall inside the Swiss LV03 region, which is the only signal that
// the input is not a Swiss-region coordinate.
func (w WGS84) ToLV03() (LV03, error) {
	// Latitude and longitude as arc seconds relative to the Bern origin,
	// scaled to the formulas' auxiliary units.
	phi := (3600.0*w.Latitude - 169028.66) / 10000.0
	phi2 := phi * phi
	phi3 := phi * phi2
	lambda := (3600.0*w.Longitude - 26782.5) / 10000.0
	lambda2 := lambda * lambda
	lambda3 := lambda * lambda2

	e := 2600072.37 +
		211455.93*lambda -
		10938.51*lambda*phi -
		0.36*lambda*phi2 -
		44.54*lambda3
	n := 1200147.07 +
		308807.95*phi +
		3745.25*lambda2 +
		76.63*phi2 -
		194.56*lambda2*phi +
		119.79*phi3

	east := e - 2000000.0
	north := n - 1000000.0
	altitude := w.Altitude - 49.55 + 2.73*lambda + 6.94*phi
	return NewLV03(north, east, altitude)
}

// DistanceTo returns the ellipsoidal surface distance in meters between the
// two points. Altitude is ignored.
func (w WGS84) DistanceTo(p WGS84) float64 {
	distance, _ := wgs84Ellipsoid.To(w.Latitude, w.Longitude, p.Latitude, p.Longitude)
	return distance
}
