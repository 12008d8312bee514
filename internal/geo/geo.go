// Package geo provides the spherical geometry used by the road-network API:
// coordinate validation, point distances and polyline lengths over the
// GeoJSON-like geometries stored in the database.
package geo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/phrazzld/roadnet-api/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius used to convert angles to distances.
const EarthRadiusMeters = 6371008.8

var (
	// ErrInvalidCoordinate is returned for a longitude/latitude pair outside
	// [-180, 180] x [-90, 90].
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnsupportedGeometry is returned when an operation is asked to handle
	// a geometry type it does not understand.
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")
)

// ValidateLngLat checks that lng/lat (in degrees) name a point on the sphere.
func ValidateLngLat(lng, lat float64) error {
	if !s2.LatLngFromDegrees(lat, lng).IsValid() {
		return fmt.Errorf("%w: longitude %v, latitude %v", ErrInvalidCoordinate, lng, lat)
	}
	return nil
}

// LngLat validates lng/lat (in degrees) and returns the position.
func LngLat(lng, lat float64) (s2.LatLng, error) {
	if err := ValidateLngLat(lng, lat); err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLngFromDegrees(lat, lng), nil
}

// PointOf returns the position of a Point geometry.
func PointOf(g domain.Geometry) (s2.LatLng, error) {
	if g.Type != "Point" {
		return s2.LatLng{}, fmt.Errorf("%w: %q is not a Point", ErrUnsupportedGeometry, g.Type)
	}

	var position []float64
	if err := json.Unmarshal(g.Coordinates, &position); err != nil {
		return s2.LatLng{}, fmt.Errorf("decode point coordinates: %w", err)
	}
	return toLatLng(position)
}

// Distance returns the great-circle distance between a and b in metres.
func Distance(a, b s2.LatLng) float64 {
	return angleToMeters(a.Distance(b))
}

// Length returns the great-circle length in metres of a LineString or
// MultiLineString geometry. Points have zero length.
func Length(g domain.Geometry) (float64, error) {
	switch g.Type {
	case "Point":
		return 0, nil
	case "LineString":
		var line [][]float64
		if err := json.Unmarshal(g.Coordinates, &line); err != nil {
			return 0, fmt.Errorf("decode line coordinates: %w", err)
		}
		return lineLength(line)
	case "MultiLineString":
		var lines [][][]float64
		if err := json.Unmarshal(g.Coordinates, &lines); err != nil {
			return 0, fmt.Errorf("decode multi-line coordinates: %w", err)
		}
		var total float64
		for _, line := range lines {
			l, err := lineLength(line)
			if err != nil {
				return 0, err
			}
			total += l
		}
		return total, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedGeometry, g.Type)
	}
}

func lineLength(line [][]float64) (float64, error) {
	latLngs := make([]s2.LatLng, 0, len(line))
	for _, position := range line {
		ll, err := toLatLng(position)
		if err != nil {
			return 0, err
		}
		latLngs = append(latLngs, ll)
	}
	return angleToMeters(s2.PolylineFromLatLngs(latLngs).Length()), nil
}

// toLatLng converts a GeoJSON position ([lng, lat, ...]) to an s2.LatLng.
func toLatLng(position []float64) (s2.LatLng, error) {
	if len(position) < 2 {
		return s2.LatLng{}, fmt.Errorf("%w: position needs longitude and latitude", ErrInvalidCoordinate)
	}
	return LngLat(position[0], position[1])
}

func angleToMeters(a s1.Angle) float64 {
	return a.Radians() * EarthRadiusMeters
}
