package importer

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ubiwhere/go-postal-codes/internal/domain"
	"github.com/ubiwhere/go-postal-codes/internal/geocode"
	"github.com/ubiwhere/go-postal-codes/internal/source"
)

type codePair struct {
	code int
	ext  int
}

// candidateKey groups raw records that describe the same postal designation
// inside the same declared district and county. Records in one group are each
// other's fallback candidates.
type candidateKey struct {
	designation  string
	districtCode string
	countyCode   string
}

// recordResolver binds raw postal records to localities by point-in-polygon
// containment. It only reads the frozen hierarchy and geocoder, so a single
// instance serves all workers.
type recordResolver struct {
	geocoder   geocode.Resolver
	hierarchy  *hierarchy
	candidates map[candidateKey][]codePair
	workers    int
	logger     *zap.Logger
}

func newRecordResolver(geocoder geocode.Resolver, h *hierarchy, records []source.PostalRecord, workers int, logger *zap.Logger) *recordResolver {
	if workers < 1 {
		workers = 1
	}
	r := &recordResolver{
		geocoder:   geocoder,
		hierarchy:  h,
		candidates: make(map[candidateKey][]codePair),
		workers:    workers,
		logger:     logger,
	}

	// Index the distinct code pairs per designation group once, rather than
	// rescanning the whole table for every failing record.
	seen := make(map[candidateKey]map[codePair]struct{})
	for _, rec := range records {
		key := candidateKeyOf(rec)
		pair := codePair{code: rec.PostalCode, ext: rec.Extension}
		if _, ok := seen[key]; !ok {
			seen[key] = make(map[codePair]struct{})
		}
		if _, ok := seen[key][pair]; ok {
			continue
		}
		seen[key][pair] = struct{}{}
		r.candidates[key] = append(r.candidates[key], pair)
	}
	return r
}

func candidateKeyOf(rec source.PostalRecord) candidateKey {
	return candidateKey{
		designation:  rec.Designation,
		districtCode: rec.DistrictCode,
		countyCode:   rec.CountyCode,
	}
}

// resolveAll fans record resolution out over disjoint shards. Workers share
// only read-only state and accumulate their own batches; the merged result
// keeps input order per shard. A worker error cancels the whole batch.
func (r *recordResolver) resolveAll(ctx context.Context, records []source.PostalRecord) ([]domain.PostalCode, error) {
	shards := shard(records, r.workers)
	resolved := make([][]domain.PostalCode, len(shards))
	skipped := make([]int, len(shards))

	g, ctx := errgroup.WithContext(ctx)
	for i, part := range shards {
		i, part := i, part
		g.Go(func() error {
			for _, rec := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				code, err := r.resolveOne(rec)
				if err != nil {
					return err
				}
				if code == nil {
					skipped[i]++
					continue
				}
				resolved[i] = append(resolved[i], *code)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.PostalCode
	var totalSkipped int
	for i := range shards {
		out = append(out, resolved[i]...)
		totalSkipped += skipped[i]
	}
	r.logger.Info("postal record resolution finished",
		zap.Int("resolved", len(out)),
		zap.Int("skipped", totalSkipped),
	)
	return out, nil
}

// resolveOne tries the record's own code pair first, then every fallback
// candidate in increasing extension distance. A nil result with a nil error
// means the record is unresolvable and is dropped, never fatal: a country
// import finishes even with a long tail of codes that cannot be geocoded
// confidently.
func (r *recordResolver) resolveOne(rec source.PostalRecord) (*domain.PostalCode, error) {
	scope := r.hierarchy.byAdminCode[adminKey{districtCode: rec.DistrictCode, countyCode: rec.CountyCode}]

	primary := codePair{code: rec.PostalCode, ext: rec.Extension}
	var lastPoint *orb.Point
	for _, pair := range append([]codePair{primary}, r.fallbackCandidates(rec)...) {
		point, err := r.geocoder.Resolve(pair.code, pair.ext)
		if err != nil {
			return nil, err
		}
		if point == nil {
			continue
		}
		lastPoint = point
		if locality := containing(scope, *point); locality != nil {
			return r.materialize(rec, locality), nil
		}
	}

	fields := []zap.Field{
		zap.String("designation", rec.Designation),
		zap.String("district_code", rec.DistrictCode),
		zap.String("county_code", rec.CountyCode),
		zap.String("postal_code", geocode.Key(rec.PostalCode, rec.Extension)),
	}
	if lastPoint != nil {
		fields = append(fields, zap.Float64("lon", lastPoint[0]), zap.Float64("lat", lastPoint[1]))
	}
	r.logger.Warn("no locality found for postal record", fields...)
	return nil, nil
}

// fallbackCandidates returns the other code pairs of the record's designation
// group ordered by absolute extension distance, closest first. Nearby
// extensions are the most likely to share a locality. Equal distances order
// by extension so the sequence is fully deterministic.
func (r *recordResolver) fallbackCandidates(rec source.PostalRecord) []codePair {
	primary := codePair{code: rec.PostalCode, ext: rec.Extension}

	var candidates []codePair
	for _, pair := range r.candidates[candidateKeyOf(rec)] {
		if pair != primary {
			candidates = append(candidates, pair)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := absDelta(candidates[i].ext, primary.ext), absDelta(candidates[j].ext, primary.ext)
		if di != dj {
			return di < dj
		}
		if candidates[i].ext != candidates[j].ext {
			return candidates[i].ext < candidates[j].ext
		}
		return candidates[i].code < candidates[j].code
	})
	return candidates
}

func (r *recordResolver) materialize(rec source.PostalRecord, locality *localityInfo) *domain.PostalCode {
	code := &domain.PostalCode{
		ID:                  uuid.New(),
		LocalityID:          locality.id,
		ArteryType:          nullString(rec.ArteryType),
		Prep1:               nullString(rec.Prep1),
		ArteryTitle:         nullString(rec.ArteryTitle),
		Prep2:               nullString(rec.Prep2),
		ArteryName:          nullString(rec.ArteryName),
		ArteryLocal:         nullString(rec.ArteryLocal),
		PostalCode:          rec.PostalCode,
		PostalCodeExtension: rec.Extension,
		PostalDesignation:   nullString(rec.Designation),
	}
	code.FullAddress = FullAddress(code, locality.name, locality.county, locality.district, r.hierarchy.country.Name)
	return code
}

func containing(scope []*localityInfo, point orb.Point) *localityInfo {
	for _, locality := range scope {
		if len(locality.polygon) == 0 {
			continue
		}
		if planar.MultiPolygonContains(locality.polygon, point) {
			return locality
		}
	}
	return nil
}

func absDelta(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// shard splits records into up to n contiguous, disjoint parts.
func shard(records []source.PostalRecord, n int) [][]source.PostalRecord {
	if len(records) == 0 {
		return nil
	}
	if n > len(records) {
		n = len(records)
	}
	size := (len(records) + n - 1) / n
	parts := make([][]source.PostalRecord, 0, n)
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		parts = append(parts, records[start:end])
	}
	return parts
}
