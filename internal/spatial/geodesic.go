package spatial

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

const earthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between two lon/lat
// points in meters.
func HaversineMeters(a, b orb.Point) float64 {
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(a[1], a[0]))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b[1], b[0]))

	angle := s1.Angle(s2.ChordAngleBetweenPoints(p1, p2).Angle())
	return angle.Radians() * earthRadiusMeters
}

// MoveToward returns the point distanceMeters along the great-circle path
// from a toward b. If the distance exceeds the separation, b is returned.
func MoveToward(a, b orb.Point, distanceMeters float64) orb.Point {
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(a[1], a[0]))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b[1], b[0]))

	totalAngle := s1.Angle(s2.ChordAngleBetweenPoints(p1, p2).Angle())
	totalMeters := totalAngle.Radians() * earthRadiusMeters
	if distanceMeters >= totalMeters {
		return b
	}

	interpolated := s2.Interpolate(distanceMeters/totalMeters, p1, p2)
	ll := s2.LatLngFromPoint(interpolated)
	return orb.Point{ll.Lng.Degrees(), ll.Lat.Degrees()}
}

// DestinationPoint returns the point reached from start by traveling the
// given distance in meters along the given compass bearing in degrees
// (0 = north, 90 = east).
func DestinationPoint(start orb.Point, bearing, distanceMeters float64) orb.Point {
	latRad := start[1] * math.Pi / 180
	lonRad := start[0] * math.Pi / 180
	bearingRad := bearing * math.Pi / 180

	distRatio := distanceMeters / earthRadiusMeters

	newLatRad := math.Asin(
		math.Sin(latRad)*math.Cos(distRatio) +
			math.Cos(latRad)*math.Sin(distRatio)*math.Cos(bearingRad),
	)
	newLonRad := lonRad + math.Atan2(
		math.Sin(bearingRad)*math.Sin(distRatio)*math.Cos(latRad),
		math.Cos(distRatio)-math.Sin(latRad)*math.Sin(newLatRad),
	)

	return orb.Point{newLonRad * 180 / math.Pi, newLatRad * 180 / math.Pi}
}
