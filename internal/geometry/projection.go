package geometry

import (
	"github.com/pkg/errors"
	"github.com/wroge/wgs84"
)

// Transform reprojects a single coordinate pair into geodetic lon/lat.
type Transform func(x, y float64) (lon, lat float64)

// LonLat is the identity transform for sources already in lon/lat.
func LonLat() Transform {
	return func(x, y float64) (float64, float64) { return x, y }
}

// FromCRS builds a transform from any wgs84 coordinate reference system.
func FromCRS(crs wgs84.CoordinateReferenceSystem) Transform {
	f := wgs84.Transform(crs, wgs84.LonLat())
	return func(x, y float64) (float64, float64) {
		lon, lat, _ := f(x, y, 0)
		return lon, lat
	}
}

// FromEPSG builds a transform from an EPSG code known to the wgs84 registry.
func FromEPSG(code int) (Transform, error) {
	crs := wgs84.EPSG().Code(code)
	if crs == nil {
		return nil, errors.Errorf("unknown epsg code %d", code)
	}
	return FromCRS(crs), nil
}

// ETRS89PortugalTM06 is the projected system (EPSG:3763) used by the CAOP
// boundary files for continental Portugal.
func ETRS89PortugalTM06() wgs84.CoordinateReferenceSystem {
	return wgs84.ETRS89().TransverseMercator(-8.13310833333333, 39.6682583333333, 1, 0, 0)
}
