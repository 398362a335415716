// Package geo converts between degree/minute notation, decimal degrees and
// ground distances on a spherical Earth.
package geo

import "math"

const (
	// EarthRadius is the equatorial radius in meters.
	EarthRadius = 6378137.0

	// MetersPerDegree is the length of one degree of arc along a meridian.
	MetersPerDegree = 2 * math.Pi * EarthRadius / 360.0

	MinutesPerDegree = 60.0
)

// MinToDecimal merges a degrees field and a minutes field into decimal degrees.
// The sign of the result follows the degrees field.
func MinToDecimal(degrees, minutes float64) float64 {
	if degrees < 0 {
		return degrees - minutes/MinutesPerDegree
	}
	return degrees + minutes/MinutesPerDegree
}

// MetersToLat returns the latitude span in degrees covered by a north/south distance.
func MetersToLat(meters float64) float64 {
	return meters / MetersPerDegree
}

// MetersToLong returns the longitude span in degrees covered by an east/west
// distance at the given latitude. Meridians converge toward the poles, so the
// span grows as |latitude| grows.
func MetersToLong(meters, latitude float64) float64 {
	return MetersToLat(meters) / math.Cos(latitude*math.Pi/180.0)
}
