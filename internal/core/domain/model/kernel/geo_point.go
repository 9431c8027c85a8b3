package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a GPS fix reported by a driver device.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(52.5200, 13.4050)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates latitude in [-90, 90] and longitude in [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}
