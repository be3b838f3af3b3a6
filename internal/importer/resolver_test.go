package importer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/geocode"
	"github.com/ubiwhere/go-postal-codes/internal/source"
)

type fakeGeocoder map[string]orb.Point

func (f fakeGeocoder) Resolve(postalCode, extension int) (*orb.Point, error) {
	pt, ok := f[geocode.Key(postalCode, extension)]
	if !ok {
		return nil, nil
	}
	return &pt, nil
}

type failingGeocoder struct{}

func (failingGeocoder) Resolve(int, int) (*orb.Point, error) {
	return nil, errors.New("dataset corrupted")
}

func box(minX, minY, maxX, maxY float64) orb.MultiPolygon {
	return orb.MultiPolygon{
		orb.Polygon{
			orb.Ring{
				{minX, minY},
				{maxX, minY},
				{maxX, maxY},
				{minX, maxY},
				{minX, minY},
			},
		},
	}
}

// resolverHierarchy covers the Porto county with two localities: Sé to the
// west of longitude -8.60, Bonfim to the east.
func resolverHierarchy() *hierarchy {
	sé := &localityInfo{
		id:       uuid.New(),
		name:     "Sé",
		county:   "Porto",
		district: "Porto",
		polygon:  box(-8.62, 41.13, -8.60, 41.16),
	}
	bonfim := &localityInfo{
		id:       uuid.New(),
		name:     "Bonfim",
		county:   "Porto",
		district: "Porto",
		polygon:  box(-8.60, 41.13, -8.58, 41.16),
	}
	return &hierarchy{
		country: domain.Country{ID: uuid.New(), Name: "Portugal"},
		byAdminCode: map[adminKey][]*localityInfo{
			{districtCode: "13", countyCode: "12"}: {sé, bonfim},
		},
	}
}

func record(code, ext int) source.PostalRecord {
	return source.PostalRecord{
		PostalCode:   code,
		Extension:    ext,
		DistrictCode: "13",
		CountyCode:   "12",
		Designation:  "PORTO",
		LocalityName: "Porto",
		ArteryType:   "Rua",
		ArteryName:   "de Dom Hugo",
	}
}

func TestFallbackCandidateOrdering(t *testing.T) {
	records := []source.PostalRecord{
		record(4000, 7),
		record(4000, 12),
		record(4000, 50),
		record(4000, 3),
		// Duplicate pair collapses into one candidate.
		record(4000, 12),
		// Different designation group, never a candidate.
		{PostalCode: 4000, Extension: 1, DistrictCode: "13", CountyCode: "12", Designation: "OTHER"},
	}
	r := newRecordResolver(fakeGeocoder{}, resolverHierarchy(), records, 1, zap.NewNop())

	got := r.fallbackCandidates(record(4000, 7))
	require.Equal(t, []codePair{
		{code: 4000, ext: 3},
		{code: 4000, ext: 12},
		{code: 4000, ext: 50},
	}, got)
}

func TestResolvePrimaryContainment(t *testing.T) {
	h := resolverHierarchy()
	geocoder := fakeGeocoder{
		"4000-007": {-8.61, 41.1494}, // inside Sé
	}
	r := newRecordResolver(geocoder, h, []source.PostalRecord{record(4000, 7)}, 1, zap.NewNop())

	code, err := r.resolveOne(record(4000, 7))
	require.NoError(t, err)
	require.NotNil(t, code)

	sé := h.byAdminCode[adminKey{districtCode: "13", countyCode: "12"}][0]
	assert.Equal(t, sé.id, code.LocalityID)
	assert.Equal(t, 4000, code.PostalCode)
	assert.Equal(t, 7, code.PostalCodeExtension)
	assert.Equal(t, "Rua de Dom Hugo, Sé, Porto, Porto, Portugal", code.FullAddress)
}

func TestResolveFallbackToNearbyExtension(t *testing.T) {
	h := resolverHierarchy()
	geocoder := fakeGeocoder{
		// Primary point sits in the Atlantic, outside every boundary, the
		// way coastline records do.
		"4000-007": {-9.50, 41.14},
		// A sibling record two extensions away lands inside Bonfim.
		"4000-009": {-8.59, 41.14},
		// A farther sibling would land in Sé, but must never be tried first.
		"4000-050": {-8.61, 41.14},
	}
	records := []source.PostalRecord{record(4000, 7), record(4000, 9), record(4000, 50)}
	r := newRecordResolver(geocoder, h, records, 1, zap.NewNop())

	code, err := r.resolveOne(record(4000, 7))
	require.NoError(t, err)
	require.NotNil(t, code)

	bonfim := h.byAdminCode[adminKey{districtCode: "13", countyCode: "12"}][1]
	assert.Equal(t, bonfim.id, code.LocalityID)
	// The record keeps its own code pair, only the locality comes from the
	// candidate.
	assert.Equal(t, 7, code.PostalCodeExtension)
}

func TestResolveScopedToDeclaredAdminContext(t *testing.T) {
	h := resolverHierarchy()
	geocoder := fakeGeocoder{
		"4000-007": {-8.61, 41.14}, // inside Sé geometrically
	}
	rec := record(4000, 7)
	rec.DistrictCode, rec.CountyCode = "03", "03" // declares another county
	r := newRecordResolver(geocoder, h, []source.PostalRecord{rec}, 1, zap.NewNop())

	code, err := r.resolveOne(rec)
	require.NoError(t, err)
	assert.Nil(t, code)
}

func TestResolveUnresolvableIsSkippedNotFatal(t *testing.T) {
	h := resolverHierarchy()
	records := []source.PostalRecord{record(4000, 7), record(4000, 9)}
	r := newRecordResolver(fakeGeocoder{}, h, records, 2, zap.NewNop())

	codes, err := r.resolveAll(context.Background(), records)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestResolveAllParallelKeepsShardOrder(t *testing.T) {
	h := resolverHierarchy()
	geocoder := fakeGeocoder{}
	var records []source.PostalRecord
	for ext := 1; ext <= 40; ext++ {
		geocoder[geocode.Key(4100, ext)] = orb.Point{-8.61, 41.14}
		records = append(records, record(4100, ext))
	}
	r := newRecordResolver(geocoder, h, records, 4, zap.NewNop())

	codes, err := r.resolveAll(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, codes, 40)
	for i, code := range codes {
		assert.Equal(t, i+1, code.PostalCodeExtension)
	}
}

func TestResolveAllWorkerErrorAbortsBatch(t *testing.T) {
	h := resolverHierarchy()
	records := []source.PostalRecord{record(4000, 7), record(4000, 9)}
	r := newRecordResolver(failingGeocoder{}, h, records, 2, zap.NewNop())

	_, err := r.resolveAll(context.Background(), records)
	require.Error(t, err)
}

func TestResolveAllCancelledContext(t *testing.T) {
	h := resolverHierarchy()
	records := []source.PostalRecord{record(4000, 7)}
	r := newRecordResolver(fakeGeocoder{}, h, records, 1, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.resolveAll(ctx, records)
	require.ErrorIs(t, err, context.Canceled)
}
