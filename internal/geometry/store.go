package geometry

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
)

// Store indexes administrative boundary features by region code. Geometries
// are reprojected to lon/lat on load; lookups after Load are read-only and
// safe for concurrent use.
type Store struct {
	transform  Transform
	geometries map[string]orb.MultiPolygon
}

func NewStore(transform Transform) *Store {
	if transform == nil {
		transform = LonLat()
	}
	return &Store{
		transform:  transform,
		geometries: make(map[string]orb.MultiPolygon),
	}
}

// Load reads GeoJSON feature collections and indexes every polygonal feature
// by the value of codeProperty. Features sharing a region code (one region
// split across files) are merged by union.
func (s *Store) Load(paths []string, codeProperty string) error {
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read geometry file %s", path)
		}
		fc, err := geojson.UnmarshalFeatureCollection(raw)
		if err != nil {
			return errors.Wrapf(err, "parse geometry file %s", path)
		}
		for _, feature := range fc.Features {
			if err := s.add(feature, codeProperty); err != nil {
				return errors.Wrapf(err, "feature in %s", path)
			}
		}
	}
	return nil
}

func (s *Store) add(feature *geojson.Feature, codeProperty string) error {
	code := feature.Properties.MustString(codeProperty, "")
	if code == "" {
		// Features without a region code cannot be referenced and are skipped.
		return nil
	}

	normalized, err := domain.NewMultiPolygon(feature.Geometry)
	if err != nil {
		return errors.Wrapf(err, "region %s", code)
	}
	mp := s.reproject(normalized.MultiPolygon)

	if existing, ok := s.geometries[code]; ok {
		merged, err := Union(existing, mp)
		if err != nil {
			return errors.Wrapf(err, "merge region %s", code)
		}
		s.geometries[code] = merged
		return nil
	}
	s.geometries[code] = mp
	return nil
}

// Find returns the boundary for a region code.
func (s *Store) Find(code string) (orb.MultiPolygon, error) {
	mp, ok := s.geometries[code]
	if !ok {
		return nil, errors.Wrapf(domain.ErrGeometryNotFound, "region code %s", code)
	}
	return mp, nil
}

// Len reports how many region codes are indexed.
func (s *Store) Len() int {
	return len(s.geometries)
}

func (s *Store) reproject(mp orb.MultiPolygon) orb.MultiPolygon {
	out := make(orb.MultiPolygon, len(mp))
	for i, poly := range mp {
		out[i] = make(orb.Polygon, len(poly))
		for j, ring := range poly {
			out[i][j] = make(orb.Ring, len(ring))
			for k, pt := range ring {
				lon, lat := s.transform(pt[0], pt[1])
				out[i][j][k] = orb.Point{lon, lat}
			}
		}
	}
	return out
}
