package geocode

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// GeoNames postal dataset column layout (tab separated, no header).
const (
	colPostalCode = 1
	colLatitude   = 9
	colLongitude  = 10
	minColumns    = 11
)

// GeoNames is a Resolver backed by a GeoNames postal code dump loaded fully
// into memory. Lookups are read-only and safe for concurrent use.
type GeoNames struct {
	points map[string]orb.Point
}

// NewGeoNames loads a GeoNames postal TSV file. Rows without coordinates are
// skipped; later rows for the same code win, matching the dataset convention
// that more specific entries come last.
func NewGeoNames(path string) (*GeoNames, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open geonames dataset")
	}
	defer f.Close()

	g := &GeoNames{points: make(map[string]orb.Point)}
	if err := g.load(f); err != nil {
		return nil, errors.Wrapf(err, "parse geonames dataset %s", path)
	}
	return g, nil
}

func (g *GeoNames) load(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(row) < minColumns {
			continue
		}
		lat, err := strconv.ParseFloat(row[colLatitude], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(row[colLongitude], 64)
		if err != nil {
			continue
		}
		g.points[row[colPostalCode]] = orb.Point{lon, lat}
	}
}

func (g *GeoNames) Resolve(postalCode, extension int) (*orb.Point, error) {
	pt, ok := g.points[Key(postalCode, extension)]
	if !ok {
		return nil, nil
	}
	return &pt, nil
}

// Len reports how many postal codes carry coordinates.
func (g *GeoNames) Len() int {
	return len(g.points)
}
