// Package source defines the per-country import capability. Each country
// supplies raw data in its national formats; the importer only ever sees the
// shapes below.
package source

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/geocode"
	"github.com/ubiwhere/go-postal-codes/internal/geometry"
)

// ReferenceRow is one row of a country's administrative reference table: one
// locality with its full ancestry and the region code that links it to a
// boundary feature.
type ReferenceRow struct {
	District   string
	County     string
	Locality   string
	RegionCode string

	// DistrictCode and CountyCode are the national numeric codes postal
	// records use to declare their administrative context. They scope the
	// containment search during resolution.
	DistrictCode string
	CountyCode   string
}

// PostalRecord is one raw postal code row before spatial resolution.
type PostalRecord struct {
	PostalCode   int
	Extension    int
	DistrictCode string
	CountyCode   string
	Designation  string
	LocalityName string

	ArteryType  string
	Prep1       string
	ArteryTitle string
	Prep2       string
	ArteryName  string
	ArteryLocal string
}

// Source loads everything needed to import one country.
type Source interface {
	CountryName() string
	CountryCode() string
	LoadReferenceTable() ([]ReferenceRow, error)
	LoadGeometries() (*geometry.Store, error)
	LoadPostalRecords() ([]PostalRecord, error)
	Geocoder() (geocode.Resolver, error)
}

// Config carries what every source needs to find its datasets.
type Config struct {
	DataDir string
	Logger  *zap.Logger
}

// Factory builds a source from configuration.
type Factory func(cfg Config) (Source, error)

// Registry maps source names to factories. It is built explicitly at the
// orchestrator boundary, read once per run.
type Registry map[string]Factory

func (r Registry) New(name string, cfg Config) (Source, error) {
	factory, ok := r[name]
	if !ok {
		return nil, errors.Errorf("no import source registered for %q", name)
	}
	return factory(cfg)
}
