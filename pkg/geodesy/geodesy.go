// Package geodesy provides small earth-geometry helpers: radii of
// curvature, degree/kilometer conversions and great-circle distance. All
// functions take degrees and return kilometers (or degrees per kilometer)
// and are pure; they do not interact with the grid codec.
package geodesy

import "math"

const (
	// WGS84 ellipsoid, kilometers.
	equatorialRadiusKm = 6378.137
	eccentricitySq     = 0.00669437999014

	// Mean earth radius used for spherical distance.
	meanRadiusKm = 6371.0

	degToRad = math.Pi / 180
)

// MeridionalRadius is the radius of curvature along a meridian at the
// given latitude, in kilometers.
func MeridionalRadius(lat float64) float64 {
	s := math.Sin(lat * degToRad)
	return equatorialRadiusKm * (1 - eccentricitySq) /
		math.Pow(1-eccentricitySq*s*s, 1.5)
}

// NormalRadius is the radius of curvature in the prime vertical at the
// given latitude, in kilometers.
func NormalRadius(lat float64) float64 {
	s := math.Sin(lat * degToRad)
	return equatorialRadiusKm / math.Sqrt(1-eccentricitySq*s*s)
}

// DegreesPerKmLat converts one kilometer along a meridian into degrees of
// latitude at the given latitude.
func DegreesPerKmLat(lat float64) float64 {
	return 1 / (degToRad * MeridionalRadius(lat))
}

// DegreesPerKmLng converts one kilometer along a parallel into degrees of
// longitude at the given latitude. Undefined at the poles, where a
// parallel has zero length.
func DegreesPerKmLng(lat float64) float64 {
	return 1 / (degToRad * NormalRadius(lat) * math.Cos(lat*degToRad))
}

// Distance is the great-circle distance between two points in kilometers,
// by the spherical law of cosines on the mean earth radius.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := lat1 * degToRad
	p2 := lat2 * degToRad
	dl := (lng2 - lng1) * degToRad

	cosc := math.Sin(p1)*math.Sin(p2) + math.Cos(p1)*math.Cos(p2)*math.Cos(dl)
	// rounding can push the cosine a hair outside [-1, 1]
	cosc = math.Min(1, math.Max(-1, cosc))
	return meanRadiusKm * math.Acos(cosc)
}
